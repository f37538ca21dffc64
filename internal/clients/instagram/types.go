package instagram

// Raw response shapes from the instagram120 RapidAPI provider. Only the
// fields the normalizer reads are declared; everything else is ignored.

// ReelItem is one media node in the provider's reels response.
type ReelItem struct {
	PK           string `json:"pk"`
	ID           string `json:"id"`
	Code         string `json:"code"`
	MediaType    int    `json:"media_type"`
	PlayCount    int64  `json:"play_count"`
	LikeCount    int64  `json:"like_count"`
	CommentCount int64  `json:"comment_count"`
	ImageVersions2 *struct {
		Candidates []struct {
			URL    string `json:"url"`
			Width  int    `json:"width"`
			Height int    `json:"height"`
		} `json:"candidates"`
	} `json:"image_versions2"`
	ProductType string `json:"product_type"`
}

// ReelsResponse is the provider's recent-reels-by-username payload.
type ReelsResponse struct {
	Result struct {
		Edges []struct {
			Node struct {
				Media ReelItem `json:"media"`
			} `json:"node"`
		} `json:"edges"`
	} `json:"result"`
}

// MediaResponse is the provider's single-post-by-shortcode payload.
type MediaResponse struct {
	Caption *struct {
		Text string `json:"text"`
	} `json:"caption"`
	User *struct {
		Username string `json:"username"`
		FullName string `json:"full_name"`
	} `json:"user"`
}
