package models

// ReelAnalysis explains why one reference reel performed well. The scenario
// response carries one entry per reference reel actually used.
type ReelAnalysis struct {
	HookType           string `json:"hookType"`
	DominantEmotion    string `json:"dominantEmotion"`
	TempoStructure     string `json:"tempoStructure"`
	AttentionMechanism string `json:"attentionMechanism"`
	WhyItWorks         string `json:"whyItWorks"`
}

// ShortVideoContent carries the fields specific to a short-video scenario.
type ShortVideoContent struct {
	Hook                   string   `json:"hook"`
	HookVisual             string   `json:"hookVisual,omitempty"`
	HookRules              string   `json:"hookRules,omitempty"`
	MainContent            []string `json:"mainContent"`
	MainContentRules       string   `json:"mainContentRules,omitempty"`
	MusicMood              string   `json:"musicMood,omitempty"`
	SubtitleStyle          string   `json:"subtitleStyle,omitempty"`
	CameraWork             string   `json:"cameraWork,omitempty"`
	EstimatedRecordingTime string   `json:"estimatedRecordingTime,omitempty"`
	FilmingTips            []string `json:"filmingTips,omitempty"`
}

// CarouselSlide is one slide of a carousel scenario, in display order.
type CarouselSlide struct {
	Title  string `json:"title"`
	Body   string `json:"body"`
	Visual string `json:"visual,omitempty"`
}

// CarouselContent carries the fields specific to a carousel scenario.
type CarouselContent struct {
	Slides      []CarouselSlide `json:"slides"`
	DesignNotes string          `json:"designNotes,omitempty"`
}

// StaticPostContent carries the fields specific to a static-post scenario.
type StaticPostContent struct {
	Caption          string `json:"caption"`
	PhotoDescription string `json:"photoDescription,omitempty"`
}

// Scenario is the structured result of a generation run: a shared envelope
// plus exactly one content-type variant.
type Scenario struct {
	ContentType ContentType `json:"contentType"`

	Topic    string `json:"topic,omitempty"`
	Format   string `json:"format,omitempty"`
	Tone     string `json:"tone,omitempty"`
	Duration string `json:"duration,omitempty"`

	CTA          string `json:"cta"`
	CTAPunchline string `json:"ctaPunchline,omitempty"`

	ViralPotential  string `json:"viralPotential,omitempty"`
	ViralReason     string `json:"viralReason,omitempty"`
	BestPublishTime string `json:"bestPublishTime,omitempty"`
	NeedsFollowUp   bool   `json:"needsFollowUp"`
	FollowUpTopic   string `json:"followUpTopic,omitempty"`

	Patterns     []string       `json:"patterns"`
	ReelAnalyses []ReelAnalysis `json:"reelAnalyses,omitempty"`

	ShortVideo *ShortVideoContent `json:"shortVideo,omitempty"`
	Carousel   *CarouselContent   `json:"carousel,omitempty"`
	StaticPost *StaticPostContent `json:"staticPost,omitempty"`
}

// ScenarioPayload is the flat JSON shape the model is instructed to return.
// The prompt contract keeps it flat so the model has one object to fill in;
// ToScenario folds it into the tagged Scenario.
type ScenarioPayload struct {
	Topic    string `json:"topic"`
	Format   string `json:"format"`
	Tone     string `json:"tone"`
	Duration string `json:"duration"`

	Hook                   string   `json:"hook"`
	HookVisual             string   `json:"hookVisual"`
	HookRules              string   `json:"hookRules"`
	MainContent            []string `json:"mainContent"`
	MainContentRules       string   `json:"mainContentRules"`
	MusicMood              string   `json:"musicMood"`
	SubtitleStyle          string   `json:"subtitleStyle"`
	CameraWork             string   `json:"cameraWork"`
	EstimatedRecordingTime string   `json:"estimatedRecordingTime"`
	FilmingTips            []string `json:"filmingTips"`

	Slides      []CarouselSlide `json:"slides"`
	DesignNotes string          `json:"designNotes"`

	Caption          string `json:"caption"`
	PhotoDescription string `json:"photoDescription"`

	CTA             string `json:"cta"`
	CTAPunchline    string `json:"ctaPunchline"`
	ViralPotential  string `json:"viralPotential"`
	ViralReason     string `json:"viralReason"`
	BestPublishTime string `json:"bestPublishTime"`
	NeedsFollowUp   bool   `json:"needsFollowUp"`
	FollowUpTopic   string `json:"followUpTopic"`

	Patterns     []string       `json:"patterns"`
	ReelAnalyses []ReelAnalysis `json:"reelAnalyses"`
}

// ToScenario folds the flat model response into the tagged scenario shape for
// the given content type.
func (p ScenarioPayload) ToScenario(ct ContentType) Scenario {
	s := Scenario{
		ContentType:     ct,
		Topic:           p.Topic,
		Format:          p.Format,
		Tone:            p.Tone,
		Duration:        p.Duration,
		CTA:             p.CTA,
		CTAPunchline:    p.CTAPunchline,
		ViralPotential:  p.ViralPotential,
		ViralReason:     p.ViralReason,
		BestPublishTime: p.BestPublishTime,
		NeedsFollowUp:   p.NeedsFollowUp,
		FollowUpTopic:   p.FollowUpTopic,
		Patterns:        p.Patterns,
		ReelAnalyses:    p.ReelAnalyses,
	}
	if s.Patterns == nil {
		s.Patterns = []string{}
	}

	switch ct {
	case ContentTypeCarousel:
		slides := p.Slides
		if slides == nil {
			slides = []CarouselSlide{}
		}
		s.Carousel = &CarouselContent{Slides: slides, DesignNotes: p.DesignNotes}
	case ContentTypeStaticPost:
		s.StaticPost = &StaticPostContent{Caption: p.Caption, PhotoDescription: p.PhotoDescription}
	default:
		mainContent := p.MainContent
		if mainContent == nil {
			mainContent = []string{}
		}
		s.ShortVideo = &ShortVideoContent{
			Hook:                   p.Hook,
			HookVisual:             p.HookVisual,
			HookRules:              p.HookRules,
			MainContent:            mainContent,
			MainContentRules:       p.MainContentRules,
			MusicMood:              p.MusicMood,
			SubtitleStyle:          p.SubtitleStyle,
			CameraWork:             p.CameraWork,
			EstimatedRecordingTime: p.EstimatedRecordingTime,
			FilmingTips:            p.FilmingTips,
		}
	}
	return s
}

// FallbackScenario builds a structurally valid scenario when the model's
// final output could not be parsed. The raw text lands in the content type's
// primary text field so nothing is silently lost; every list stays empty.
func FallbackScenario(ct ContentType, rawText string) Scenario {
	s := Scenario{
		ContentType: ct,
		Patterns:    []string{},
	}
	switch ct {
	case ContentTypeCarousel:
		s.Carousel = &CarouselContent{Slides: []CarouselSlide{{Body: rawText}}}
	case ContentTypeStaticPost:
		s.StaticPost = &StaticPostContent{Caption: rawText}
	default:
		s.ShortVideo = &ShortVideoContent{Hook: rawText, MainContent: []string{}}
	}
	return s
}
