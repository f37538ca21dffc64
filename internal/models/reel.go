package models

// ReelMetrics holds the raw engagement counters of a scraped post.
type ReelMetrics struct {
	Views          int64   `json:"views"`
	Likes          int64   `json:"likes"`
	Comments       int64   `json:"comments"`
	EngagementRate float64 `json:"engagementRate"`
}

// Reel is one scraped short-video record. Reels are created by the scraper
// response normalizer, deduplicated by ID, optionally enriched with a fetched
// caption, consumed by prompt construction and then discarded.
type Reel struct {
	ID            string      `json:"id"`
	Shortcode     string      `json:"shortcode"`
	Caption       string      `json:"caption"`
	Metrics       ReelMetrics `json:"metrics"`
	ViralScore    int         `json:"viralScore"`
	Timestamp     int64       `json:"timestamp"`
	ThumbnailURL  string      `json:"thumbnailUrl,omitempty"`
	OwnerUsername string      `json:"ownerUsername,omitempty"`
}
