package plan

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
)

// ErrNoJSON means the text contained no {...} span at all.
var ErrNoJSON = errors.New("no JSON object found in text")

// ExtractJSON pulls a single JSON object out of free-form model output and
// unmarshals it into out. The model is instructed to respond with JSON only
// but often wraps it in prose, so the span from the first '{' to the last '}'
// is taken greedily. The heuristic can mis-pick boundaries when prose after
// the object contains a stray '}'; callers treat any failure as recoverable.
func ExtractJSON(text string, out any) error {
	start := strings.Index(text, "{")
	end := strings.LastIndex(text, "}")
	if start == -1 || end == -1 || end < start {
		return ErrNoJSON
	}
	if err := json.Unmarshal([]byte(text[start:end+1]), out); err != nil {
		return fmt.Errorf("parse extracted JSON: %w", err)
	}
	return nil
}
