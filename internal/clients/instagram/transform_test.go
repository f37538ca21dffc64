package instagram

import (
	"testing"
)

func TestNormalizeReelDefaultsMissingCounters(t *testing.T) {
	reel := normalizeReel(ReelItem{PK: "9", Code: "XYZ"}, "someuser")
	if reel.ID != "9" || reel.Shortcode != "XYZ" {
		t.Fatalf("unexpected identity fields: %+v", reel)
	}
	if reel.Metrics.Views != 0 || reel.Metrics.Likes != 0 || reel.Metrics.Comments != 0 {
		t.Fatalf("expected zero counters, got %+v", reel.Metrics)
	}
	if reel.Metrics.EngagementRate != 0 {
		t.Fatalf("expected zero engagement rate with zero views, got %f", reel.Metrics.EngagementRate)
	}
	if reel.ViralScore != 0 {
		t.Fatalf("expected zero viral score, got %d", reel.ViralScore)
	}
	if reel.ThumbnailURL != "" {
		t.Fatal("expected no thumbnail when candidates are absent")
	}
}

func TestNormalizeReelFallsBackToID(t *testing.T) {
	reel := normalizeReel(ReelItem{ID: "fallback-id", Code: "XYZ"}, "someuser")
	if reel.ID != "fallback-id" {
		t.Fatalf("expected id fallback when pk missing, got %s", reel.ID)
	}
}

func TestNormalizeReelsSortsByScoreDescending(t *testing.T) {
	raw := reelsFixture()
	reels := normalizeReels(raw, "someuser")
	if len(reels) != 2 {
		t.Fatalf("expected 2 reels, got %d", len(reels))
	}
	for i := 1; i < len(reels); i++ {
		if reels[i-1].ViralScore < reels[i].ViralScore {
			t.Fatalf("reels not sorted by viral score: %d before %d",
				reels[i-1].ViralScore, reels[i].ViralScore)
		}
	}
}

func TestNormalizeReelsEmptyResponse(t *testing.T) {
	reels := normalizeReels(ReelsResponse{}, "someuser")
	if len(reels) != 0 {
		t.Fatalf("expected no reels, got %d", len(reels))
	}
}
