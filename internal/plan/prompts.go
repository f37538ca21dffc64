package plan

import (
	"fmt"
	"strings"

	"github.com/WojtekZaniewski/reel-scenario-agent/internal/models"
)

// Prompt builders render run context into the three LLM instructions. All of
// them are deterministic for identical inputs and never fail.

const maxCaptionChars = 300

// BuildAccountSuggestionPrompt asks the model for reference accounts worth
// scraping for the brief's niche.
func BuildAccountSuggestionPrompt(brief models.Brief, profile *models.Profile) string {
	var sb strings.Builder

	sb.WriteString("You are an expert on viral Instagram Reels and short-form content marketing.\n\n")
	sb.WriteString("Based on the brief below, suggest 6-10 Instagram accounts (usernames) that create viral short-form content in this niche. ")
	sb.WriteString("The accounts will be used as INSPIRATION for a new content scenario.\n\n")

	writeBriefSection(&sb, brief)
	writeProfileSection(&sb, profile)

	sb.WriteString("\nRULES:\n")
	sb.WriteString("- Only suggest REAL accounts that exist and are active; never invent or guess usernames\n")
	sb.WriteString("- Mix large creator accounts and smaller niche accounts with viral posts\n")
	sb.WriteString("- Give plain usernames WITHOUT the @ sign\n")
	sb.WriteString("- Focus on accounts that publish short-form video regularly\n")

	sb.WriteString("\nRespond ONLY with JSON in this shape:\n")
	sb.WriteString("{\n")
	sb.WriteString("  \"accounts\": [\"username1\", \"username2\"],\n")
	sb.WriteString("  \"reasoning\": \"Short explanation of why these accounts\"\n")
	sb.WriteString("}")

	return sb.String()
}

// BuildScenarioPrompt renders the final generation instruction from the brief,
// the enriched reference reels and optional profile/growth context. With no
// reference reels the analysis block is replaced by a general-knowledge
// instruction and the reelAnalyses field is dropped from the contract.
func BuildScenarioPrompt(brief models.Brief, reels []models.Reel, profile *models.Profile, growth *models.GrowthContext) string {
	var sb strings.Builder

	sb.WriteString("You are an expert at creating viral short-form social media content.\n\n")

	writeBriefSection(&sb, brief)
	writeProfileSection(&sb, profile)
	writeGrowthSection(&sb, growth)

	if len(reels) > 0 {
		sb.WriteString("\nANALYSIS OF TOP VIRAL REELS FROM THE NICHE:\n")
		sb.WriteString(summarizeReels(reels))
		sb.WriteString("\nStudy why each of these performed well and apply those mechanics to the scenario below.\n")
	} else {
		sb.WriteString("\nNo reference posts are available for this run. ")
		sb.WriteString("Rely on your general knowledge of what performs well in this niche instead of analysing specific posts.\n")
	}

	sb.WriteString("\nCONTENT PSYCHOLOGY RULES:\n")
	sb.WriteString("- The first 3 seconds decide everything: the hook must interrupt scrolling with curiosity, controversy or a bold promise\n")
	sb.WriteString("- Build desire before trust: show the outcome first, explain the method second\n")
	sb.WriteString("- One idea per piece of content; cutting scope beats cramming\n")
	sb.WriteString("- Keep pacing tight: a new visual or informational beat every 2-4 seconds\n")
	sb.WriteString("- End with exactly one call to action\n")
	sb.WriteString(fmt.Sprintf("- Controversy level %d/5 (%s): calibrate how provocative the framing is accordingly\n",
		brief.ControversyLevel, controversyLabel(brief.ControversyLevel)))

	sb.WriteString("\nCreate a scenario for the brief above.\n")
	sb.WriteString("\nRespond ONLY with JSON in this shape:\n")
	sb.WriteString(scenarioContract(brief.ContentType, len(reels) > 0))

	return sb.String()
}

// BuildGrowthPlanPrompt renders the account-growth-plan instruction.
func BuildGrowthPlanPrompt(goal, industry, notes string, profile *models.Profile, currentFollowers int) string {
	var sb strings.Builder

	sb.WriteString("You are a social media growth strategist for small businesses.\n\n")
	sb.WriteString("GOAL: " + goal + "\n")
	if industry != "" {
		sb.WriteString("INDUSTRY: " + industry + "\n")
	}
	if notes != "" {
		sb.WriteString("NOTES: " + notes + "\n")
	}
	if currentFollowers > 0 {
		sb.WriteString(fmt.Sprintf("CURRENT FOLLOWERS: %d\n", currentFollowers))
	}
	writeProfileSection(&sb, profile)

	sb.WriteString("\nBENCHMARKS (use as grounding, do not repeat verbatim):\n")
	sb.WriteString("- Small accounts posting 3-4 reels per week typically grow 5-15% per month\n")
	sb.WriteString("- Posting consistency matters more than production quality below 10k followers\n")
	sb.WriteString("- Accounts replying to every comment in the first hour see roughly 2x reach on subsequent posts\n")
	sb.WriteString("- Carousel posts retain saves best; reels drive discovery; static posts maintain presence\n")

	sb.WriteString("\nBuild a realistic growth plan with a weekly schedule, weekly milestones and three difficulty variants (easy, medium, hard) the user can choose between.\n")

	sb.WriteString("\nRespond ONLY with JSON in this shape:\n")
	sb.WriteString(`{
  "summary": "One-paragraph plan summary",
  "weeklySchedule": [{"day": "Monday", "action": "...", "contentType": "reel"}],
  "milestones": [{"week": 1, "target": "...", "metric": "...", "checkpoints": ["..."], "expectedFollowers": 0}],
  "contentPillars": ["..."],
  "bestPostingTimes": ["..."],
  "expectedGrowth": "Narrative of expected growth",
  "tips": ["..."],
  "difficultyOptions": [
    {"level": "easy", "label": "...", "durationWeeks": 0, "reelsPerWeek": 0, "description": "..."},
    {"level": "medium", "label": "...", "durationWeeks": 0, "reelsPerWeek": 0, "description": "..."},
    {"level": "hard", "label": "...", "durationWeeks": 0, "reelsPerWeek": 0, "description": "..."}
  ]
}`)

	return sb.String()
}

func writeBriefSection(sb *strings.Builder, brief models.Brief) {
	sb.WriteString("BRIEF:\n")
	sb.WriteString("- Content type: " + string(brief.ContentType) + "\n")
	sb.WriteString("- Subject/treatment: " + brief.Treatment + "\n")
	if brief.TargetAudience != "" {
		sb.WriteString("- Target audience: " + brief.TargetAudience + "\n")
	}
	if len(brief.Tones) > 0 {
		sb.WriteString("- Tone: " + strings.Join(brief.Tones, ", ") + "\n")
	}
	if brief.Industry != "" {
		sb.WriteString("- Industry: " + brief.Industry + "\n")
	}
	if brief.Format != "" && brief.Format != models.FormatRandom {
		sb.WriteString("- Format: " + brief.Format + "\n")
	}
	if brief.ContentType == models.ContentTypeCarousel && brief.SlideCount > 0 {
		sb.WriteString(fmt.Sprintf("- Slide count: %d\n", brief.SlideCount))
	} else if brief.Duration != "" {
		sb.WriteString("- Duration: " + brief.Duration + "\n")
	}
	if brief.Language != "" {
		sb.WriteString("- Language of the output: " + brief.Language + "\n")
	}
	if brief.Notes != "" {
		sb.WriteString("- Additional notes: " + brief.Notes + "\n")
	}
}

func writeProfileSection(sb *strings.Builder, profile *models.Profile) {
	if profile == nil {
		return
	}
	sb.WriteString("\nBUSINESS PROFILE:\n")
	if profile.BusinessName != "" {
		sb.WriteString("- Business: " + profile.BusinessName + "\n")
	}
	if profile.BusinessDescription != "" {
		sb.WriteString("- About: " + profile.BusinessDescription + "\n")
	}
	if profile.TargetNiche != "" {
		sb.WriteString("- Niche: " + profile.TargetNiche + "\n")
	}
	if profile.UniqueSellingPoints != "" {
		sb.WriteString("- Unique selling points: " + profile.UniqueSellingPoints + "\n")
	}
	if profile.ContentGoals != "" {
		sb.WriteString("- Content goals: " + profile.ContentGoals + "\n")
	}
	if profile.PersonalStyle != "" {
		sb.WriteString("- Personal style: " + profile.PersonalStyle + "\n")
	}
	if len(profile.PreferredTones) > 0 {
		sb.WriteString("- Preferred tones: " + strings.Join(profile.PreferredTones, ", ") + "\n")
	}
	if len(profile.TopicHistory) > 0 {
		sb.WriteString("- Recently covered topics (avoid repeating): " + strings.Join(profile.TopicHistory, ", ") + "\n")
	}
	if len(profile.Feedback.PositiveTopics) > 0 {
		sb.WriteString("- Topics the user liked: " + strings.Join(profile.Feedback.PositiveTopics, ", ") + "\n")
	}
	if len(profile.Feedback.NegativeTopics) > 0 {
		sb.WriteString("- Topics the user disliked: " + strings.Join(profile.Feedback.NegativeTopics, ", ") + "\n")
	}
}

func writeGrowthSection(sb *strings.Builder, growth *models.GrowthContext) {
	if growth == nil {
		return
	}
	sb.WriteString("\nGROWTH CONTEXT:\n")
	switch growth.Trend {
	case models.GrowthTrendExceeding:
		sb.WriteString("- The account is ahead of its follower target this week; content can afford to experiment\n")
	case models.GrowthTrendLagging:
		sb.WriteString("- The account is behind its follower target this week; prioritize proven, high-reach formats\n")
	default:
		sb.WriteString("- The account is on track against its follower target this week\n")
	}
	if growth.Goal != "" {
		sb.WriteString("- Growth goal: " + growth.Goal + "\n")
	}
	if growth.CurrentFollowers > 0 {
		sb.WriteString(fmt.Sprintf("- Current followers: %d (week %d target: %d)\n",
			growth.CurrentFollowers, growth.WeekNumber, growth.ExpectedFollowers))
	}
}

func summarizeReels(reels []models.Reel) string {
	if len(reels) > 5 {
		reels = reels[:5]
	}
	var sb strings.Builder
	for i, r := range reels {
		owner := r.OwnerUsername
		if owner == "" {
			owner = "unknown"
		}
		sb.WriteString(fmt.Sprintf("%d. [@%s | Viral Score: %d/100 | Views: %d | Likes: %d]\n",
			i+1, owner, r.ViralScore, r.Metrics.Views, r.Metrics.Likes))
		if r.Caption != "" {
			sb.WriteString("   Caption: " + truncateCaption(r.Caption) + "\n")
		} else {
			sb.WriteString("   (no caption)\n")
		}
	}
	return sb.String()
}

func truncateCaption(caption string) string {
	runes := []rune(caption)
	if len(runes) <= maxCaptionChars {
		return caption
	}
	return string(runes[:maxCaptionChars]) + "..."
}

func controversyLabel(level int) string {
	if label, ok := models.ControversyLabels[level]; ok {
		return label
	}
	return models.ControversyLabels[3]
}

// scenarioContract renders the JSON contract block for the brief's content
// type. The reelAnalyses array is requested only when reference reels exist.
func scenarioContract(ct models.ContentType, withAnalyses bool) string {
	var sb strings.Builder
	sb.WriteString("{\n")
	if withAnalyses {
		sb.WriteString(`  "reelAnalyses": [
    {"hookType": "...", "dominantEmotion": "...", "tempoStructure": "...", "attentionMechanism": "...", "whyItWorks": "..."}
  ],
`)
	}
	sb.WriteString(`  "topic": "One-line topic of the content",
  "format": "Format name",
  "tone": "Tone of voice used",
  "duration": "Target duration or size",
`)
	switch ct {
	case models.ContentTypeCarousel:
		sb.WriteString(`  "slides": [
    {"title": "Slide title", "body": "Slide copy", "visual": "What the slide should show"}
  ],
  "designNotes": "Overall visual direction for the carousel",
`)
	case models.ContentTypeStaticPost:
		sb.WriteString(`  "caption": "Full post caption",
  "photoDescription": "What the photo should show",
`)
	default:
		sb.WriteString(`  "hook": "Spoken/on-screen text of the first 3 seconds",
  "hookVisual": "What is on screen during the hook",
  "hookRules": "Why this hook works",
  "mainContent": ["Beat 1", "Beat 2", "Beat 3"],
  "mainContentRules": "Pacing notes for the beats",
  "musicMood": "Suggested music mood",
  "subtitleStyle": "Subtitle styling suggestion",
  "cameraWork": "Camera work suggestion",
  "estimatedRecordingTime": "Rough recording time",
  "filmingTips": ["Tip 1", "Tip 2"],
`)
	}
	sb.WriteString(`  "cta": "Call to action",
  "ctaPunchline": "Short memorable closing line",
  "viralPotential": "low | medium | high",
  "viralReason": "Why this can perform",
  "bestPublishTime": "Suggested publish day/time",
  "needsFollowUp": false,
  "followUpTopic": "Follow-up topic if needsFollowUp is true",
  "patterns": ["Viral pattern observed or applied"]
}`)
	return sb.String()
}
