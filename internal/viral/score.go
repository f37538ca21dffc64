// Package viral scores a short-video post's breakout potential from its
// raw engagement counters.
package viral

import "math"

const (
	viewsWeight      = 40.0
	likesWeight      = 30.0
	engagementWeight = 30.0

	viewsBaseline = 100_000.0
	likesBaseline = 10_000.0
)

// Score rates a post 0-100 from view, like and comment counts. It is the sum
// of three capped sub-scores: views against a 100k baseline (max 40), likes
// against a 10k baseline (max 30), and engagement rate (max 30).
func Score(views, likes, comments int64) int {
	viewsScore := math.Min(float64(views)/viewsBaseline*viewsWeight, viewsWeight)
	likesScore := math.Min(float64(likes)/likesBaseline*likesWeight, likesWeight)
	engagementScore := math.Min(EngagementRate(views, likes, comments)*engagementWeight, engagementWeight)

	return int(math.Round(viewsScore + likesScore + engagementScore))
}

// EngagementRate returns (likes+comments)/views as a percentage, 0 when the
// post has no views.
func EngagementRate(views, likes, comments int64) float64 {
	if views <= 0 {
		return 0
	}
	return float64(likes+comments) / float64(views) * 100
}
