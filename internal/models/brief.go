package models

// ContentType selects the kind of content a generation run produces.
type ContentType string

const (
	ContentTypeShortVideo ContentType = "short-video"
	ContentTypeCarousel   ContentType = "carousel"
	ContentTypeStaticPost ContentType = "static-post"
)

// Valid reports whether the content type is one of the known kinds.
func (ct ContentType) Valid() bool {
	switch ct {
	case ContentTypeShortVideo, ContentTypeCarousel, ContentTypeStaticPost:
		return true
	}
	return false
}

// Brief is the user's intent for one generation run. It is constructed by the
// caller and immutable for the duration of the run.
type Brief struct {
	ContentType      ContentType `json:"contentType"`
	Treatment        string      `json:"treatment"`
	TargetAudience   string      `json:"targetAudience"`
	Tones            []string    `json:"tones"`
	Industry         string      `json:"industry"`
	Format           string      `json:"format"`
	Duration         string      `json:"duration"`
	SlideCount       int         `json:"slideCount,omitempty"`
	Language         string      `json:"language"`
	ControversyLevel int         `json:"controversyLevel"`
	Notes            string      `json:"notes,omitempty"`
}

// FormatRandom asks the system to choose the format itself.
const FormatRandom = "random"

// ControversyLabels maps the 1-5 controversy scale to its display labels.
var ControversyLabels = map[int]string{
	1: "safe",
	2: "gentle",
	3: "balanced",
	4: "bold",
	5: "controversial",
}

// IndustryOptions enumerates the supported industry tags.
var IndustryOptions = []string{"beauty", "fitness", "gastro", "ecommerce", "local", "marketing", "other"}

// ToneOptions enumerates the supported tone tags.
var ToneOptions = []string{"educational", "funny", "controversial", "motivational", "sales"}

// FormatOptions enumerates the supported short-video format tags.
var FormatOptions = []string{"hook-transformation", "storytelling", "qa", "before-after", "behind-scenes", FormatRandom}
