package models

// WeeklyTask is one recurring action in the weekly schedule.
type WeeklyTask struct {
	Day         string `json:"day"`
	Action      string `json:"action"`
	ContentType string `json:"contentType"`
}

// Milestone is a weekly checkpoint of the growth plan.
type Milestone struct {
	Week              int      `json:"week"`
	Target            string   `json:"target"`
	Metric            string   `json:"metric"`
	Checkpoints       []string `json:"checkpoints"`
	ExpectedFollowers int      `json:"expectedFollowers,omitempty"`
}

// DifficultyOption is one of the three plan variants the model proposes.
type DifficultyOption struct {
	Level         string `json:"level"`
	Label         string `json:"label"`
	DurationWeeks int    `json:"durationWeeks"`
	ReelsPerWeek  int    `json:"reelsPerWeek"`
	Description   string `json:"description"`
}

// GrowthPlan is the model-generated account growth plan.
type GrowthPlan struct {
	Summary          string             `json:"summary"`
	WeeklySchedule   []WeeklyTask       `json:"weeklySchedule"`
	Milestones       []Milestone        `json:"milestones"`
	ContentPillars   []string           `json:"contentPillars"`
	BestPostingTimes []string           `json:"bestPostingTimes"`
	ExpectedGrowth   string             `json:"expectedGrowth"`
	Tips             []string           `json:"tips"`
	DifficultyOpts   []DifficultyOption `json:"difficultyOptions"`
}
