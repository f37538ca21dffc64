package viral

import "testing"

func TestScoreZero(t *testing.T) {
	if got := Score(0, 0, 0); got != 0 {
		t.Fatalf("expected 0 for empty post, got %d", got)
	}
}

func TestScoreBounds(t *testing.T) {
	cases := []struct {
		views, likes, comments int64
	}{
		{0, 0, 0},
		{1, 0, 0},
		{100, 1_000_000, 1_000_000},
		{100_000, 10_000, 500},
		{10_000_000, 5_000_000, 2_000_000},
	}
	for _, tc := range cases {
		got := Score(tc.views, tc.likes, tc.comments)
		if got < 0 || got > 100 {
			t.Fatalf("Score(%d, %d, %d) = %d, out of [0,100]", tc.views, tc.likes, tc.comments, got)
		}
	}
}

func TestScoreCapsAtBaselines(t *testing.T) {
	// Views and likes exactly at baseline contribute their full weights and
	// no more; with zero comments the engagement rate (10%) caps out too.
	if got := Score(100_000, 10_000, 0); got != 100 {
		t.Fatalf("expected 100 at both baselines, got %d", got)
	}
	// Pushing views far past the baseline must not add anything beyond the cap.
	if got := Score(100_000_000, 0, 0); got != 40 {
		t.Fatalf("expected views contribution capped at 40, got %d", got)
	}
	if got := Score(0, 100_000_000, 0); got != 30 {
		t.Fatalf("expected likes contribution capped at 30, got %d", got)
	}
}

func TestScoreMonotonic(t *testing.T) {
	base := Score(50_000, 2_000, 100)
	if Score(60_000, 2_000, 100) < base {
		t.Fatalf("score decreased when views grew")
	}
	if Score(50_000, 3_000, 100) < base {
		t.Fatalf("score decreased when likes grew")
	}
	if Score(50_000, 2_000, 500) < base {
		t.Fatalf("score decreased when comments grew")
	}
}

func TestEngagementRate(t *testing.T) {
	if got := EngagementRate(0, 10, 10); got != 0 {
		t.Fatalf("expected 0 rate with no views, got %f", got)
	}
	if got := EngagementRate(1000, 50, 50); got != 10 {
		t.Fatalf("expected 10%%, got %f", got)
	}
}
