package models

// ProfileFeedback accumulates reaction counters for generated scenarios.
type ProfileFeedback struct {
	Positive       int      `json:"positive"`
	Negative       int      `json:"negative"`
	PositiveTopics []string `json:"positiveTopics"`
	NegativeTopics []string `json:"negativeTopics"`
}

// Profile carries accumulated user preferences. The pipeline only reads it to
// enrich prompts; ownership and persistence stay with the caller.
type Profile struct {
	Industry         string          `json:"industry"`
	PreferredTones   []string        `json:"preferredTones"`
	PreferredFormats []string        `json:"preferredFormats"`
	GenerationCount  int             `json:"generationCount"`
	TopicHistory     []string        `json:"topicHistory"`
	Feedback         ProfileFeedback `json:"feedback"`

	BusinessName        string `json:"businessName,omitempty"`
	BusinessDescription string `json:"businessDescription,omitempty"`
	TargetNiche         string `json:"targetNiche,omitempty"`
	UniqueSellingPoints string `json:"uniqueSellingPoints,omitempty"`
	ContentGoals        string `json:"contentGoals,omitempty"`
	PersonalStyle       string `json:"personalStyle,omitempty"`
}

// GrowthTrend describes where the account sits against its target follower
// trajectory for the current week.
type GrowthTrend string

const (
	GrowthTrendExceeding GrowthTrend = "exceeding"
	GrowthTrendOnTrack   GrowthTrend = "on-track"
	GrowthTrendLagging   GrowthTrend = "lagging"
)

// GrowthContext is an optional signal passed into scenario generation.
type GrowthContext struct {
	Trend             GrowthTrend `json:"trend"`
	WeekNumber        int         `json:"weekNumber,omitempty"`
	CurrentFollowers  int         `json:"currentFollowers,omitempty"`
	ExpectedFollowers int         `json:"expectedFollowers,omitempty"`
	Goal              string      `json:"goal,omitempty"`
}
