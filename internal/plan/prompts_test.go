package plan

import (
	"strings"
	"testing"

	"github.com/WojtekZaniewski/reel-scenario-agent/internal/models"
)

func testBrief() models.Brief {
	return models.Brief{
		ContentType:      models.ContentTypeShortVideo,
		Treatment:        "gel manicure",
		TargetAudience:   "women 25-40",
		Tones:            []string{"educational"},
		Industry:         "beauty",
		Language:         "en",
		ControversyLevel: 3,
	}
}

func testReels() []models.Reel {
	return []models.Reel{
		{
			ID:            "1",
			OwnerUsername: "nailart_pro",
			ViralScore:    88,
			Caption:       "3 mistakes that ruin your manicure",
			Metrics:       models.ReelMetrics{Views: 250000, Likes: 12000},
		},
	}
}

func TestBuildAccountSuggestionPromptDeterministic(t *testing.T) {
	brief := testBrief()
	a := BuildAccountSuggestionPrompt(brief, nil)
	b := BuildAccountSuggestionPrompt(brief, nil)
	if a != b {
		t.Fatal("prompt must be deterministic for identical inputs")
	}
	if !strings.Contains(a, "gel manicure") {
		t.Fatal("prompt must carry the treatment")
	}
	if !strings.Contains(a, "6-10") {
		t.Fatal("prompt must ask for 6-10 accounts")
	}
	if !strings.Contains(a, "never invent") {
		t.Fatal("prompt must warn against fabricated usernames")
	}
	if !strings.Contains(a, `"accounts"`) || !strings.Contains(a, `"reasoning"`) {
		t.Fatal("prompt must state the JSON contract")
	}
}

func TestBuildScenarioPromptWithReels(t *testing.T) {
	prompt := BuildScenarioPrompt(testBrief(), testReels(), nil, nil)

	if !strings.Contains(prompt, "@nailart_pro") {
		t.Fatal("prompt must summarize reference reels with owner")
	}
	if !strings.Contains(prompt, "Viral Score: 88/100") {
		t.Fatal("prompt must include the viral score")
	}
	if !strings.Contains(prompt, `"reelAnalyses"`) {
		t.Fatal("reelAnalyses must be requested when reference reels exist")
	}
	if !strings.Contains(prompt, `"hook"`) || !strings.Contains(prompt, `"mainContent"`) {
		t.Fatal("short-video contract must request hook and mainContent")
	}
	if strings.Contains(prompt, `"slides"`) {
		t.Fatal("short-video contract must not request slides")
	}
}

func TestBuildScenarioPromptWithoutReels(t *testing.T) {
	prompt := BuildScenarioPrompt(testBrief(), nil, nil, nil)

	if !strings.Contains(prompt, "No reference posts are available") {
		t.Fatal("prompt must swap in the general-knowledge block when no reels exist")
	}
	if strings.Contains(prompt, `"reelAnalyses"`) {
		t.Fatal("reelAnalyses must be dropped when no reference reels exist")
	}
}

func TestBuildScenarioPromptContentTypeBranches(t *testing.T) {
	brief := testBrief()

	brief.ContentType = models.ContentTypeCarousel
	brief.SlideCount = 7
	carousel := BuildScenarioPrompt(brief, nil, nil, nil)
	if !strings.Contains(carousel, `"slides"`) || !strings.Contains(carousel, `"designNotes"`) {
		t.Fatal("carousel contract must request slides and designNotes")
	}
	if !strings.Contains(carousel, "Slide count: 7") {
		t.Fatal("carousel brief must carry the slide count")
	}

	brief.ContentType = models.ContentTypeStaticPost
	static := BuildScenarioPrompt(brief, nil, nil, nil)
	if !strings.Contains(static, `"caption"`) || !strings.Contains(static, `"photoDescription"`) {
		t.Fatal("static-post contract must request caption and photoDescription")
	}
	if strings.Contains(static, `"hook"`) {
		t.Fatal("static-post contract must not request a hook")
	}
}

func TestBuildScenarioPromptTruncatesCaptions(t *testing.T) {
	reels := testReels()
	reels[0].Caption = strings.Repeat("x", 500)
	prompt := BuildScenarioPrompt(testBrief(), reels, nil, nil)

	if strings.Contains(prompt, strings.Repeat("x", 400)) {
		t.Fatal("captions must be truncated in the reel summary")
	}
	if !strings.Contains(prompt, strings.Repeat("x", maxCaptionChars)+"...") {
		t.Fatal("truncated caption must end with an ellipsis")
	}
}

func TestBuildScenarioPromptGrowthContext(t *testing.T) {
	growth := &models.GrowthContext{Trend: models.GrowthTrendLagging, Goal: "10k followers"}
	prompt := BuildScenarioPrompt(testBrief(), nil, nil, growth)
	if !strings.Contains(prompt, "behind its follower target") {
		t.Fatal("lagging trend must be reflected in the prompt")
	}
	if !strings.Contains(prompt, "10k followers") {
		t.Fatal("growth goal must be included")
	}
}

func TestBuildScenarioPromptProfile(t *testing.T) {
	profile := &models.Profile{
		BusinessName: "Glow Studio",
		TopicHistory: []string{"cuticle care"},
		Feedback:     models.ProfileFeedback{NegativeTopics: []string{"price lists"}},
	}
	prompt := BuildScenarioPrompt(testBrief(), nil, profile, nil)
	if !strings.Contains(prompt, "Glow Studio") {
		t.Fatal("profile business name must be included")
	}
	if !strings.Contains(prompt, "cuticle care") {
		t.Fatal("topic history must be included")
	}
	if !strings.Contains(prompt, "price lists") {
		t.Fatal("disliked topics must be included")
	}
}

func TestBuildGrowthPlanPrompt(t *testing.T) {
	prompt := BuildGrowthPlanPrompt("10k followers in 3 months", "beauty", "only organic", nil, 1200)

	if !strings.Contains(prompt, "10k followers in 3 months") {
		t.Fatal("goal must be included")
	}
	if !strings.Contains(prompt, "CURRENT FOLLOWERS: 1200") {
		t.Fatal("current followers must be included")
	}
	if !strings.Contains(prompt, "BENCHMARKS") {
		t.Fatal("benchmark grounding must be included")
	}
	if !strings.Contains(prompt, `"difficultyOptions"`) {
		t.Fatal("contract must request difficulty options")
	}
	for _, level := range []string{`"easy"`, `"medium"`, `"hard"`} {
		if !strings.Contains(prompt, level) {
			t.Fatalf("contract must request the %s variant", level)
		}
	}
}
