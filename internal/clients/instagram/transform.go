package instagram

import (
	"sort"

	"github.com/WojtekZaniewski/reel-scenario-agent/internal/models"
	"github.com/WojtekZaniewski/reel-scenario-agent/internal/viral"
)

// normalizeReels flattens a provider reels response into the internal reel
// shape, scoring each as it goes. The result is sorted by viral score
// descending. Missing counters default to zero rather than failing the item.
func normalizeReels(raw ReelsResponse, username string) []models.Reel {
	edges := raw.Result.Edges
	reels := make([]models.Reel, 0, len(edges))
	for _, edge := range edges {
		reels = append(reels, normalizeReel(edge.Node.Media, username))
	}
	sort.SliceStable(reels, func(i, j int) bool {
		return reels[i].ViralScore > reels[j].ViralScore
	})
	return reels
}

func normalizeReel(item ReelItem, username string) models.Reel {
	views := item.PlayCount
	likes := item.LikeCount
	comments := item.CommentCount

	id := item.PK
	if id == "" {
		id = item.ID
	}

	var thumbnail string
	if item.ImageVersions2 != nil && len(item.ImageVersions2.Candidates) > 0 {
		thumbnail = item.ImageVersions2.Candidates[0].URL
	}

	return models.Reel{
		ID:        id,
		Shortcode: item.Code,
		Caption:   "",
		Metrics: models.ReelMetrics{
			Views:          views,
			Likes:          likes,
			Comments:       comments,
			EngagementRate: viral.EngagementRate(views, likes, comments),
		},
		ViralScore:    viral.Score(views, likes, comments),
		Timestamp:     0,
		ThumbnailURL:  thumbnail,
		OwnerUsername: username,
	}
}
