package plan

import (
	"errors"
	"testing"
)

func TestExtractJSONRoundTrip(t *testing.T) {
	text := "Sure, here is the result you asked for:\n" +
		`{"accounts": ["fitcoach", "yogalife"], "reasoning": "both post reels daily"}` +
		"\nLet me know if you need anything else."

	var got AccountSuggestion
	if err := ExtractJSON(text, &got); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got.Accounts) != 2 || got.Accounts[0] != "fitcoach" {
		t.Fatalf("unexpected accounts: %v", got.Accounts)
	}
	if got.Reasoning != "both post reels daily" {
		t.Fatalf("unexpected reasoning: %q", got.Reasoning)
	}
}

func TestExtractJSONNotFound(t *testing.T) {
	var out map[string]any
	err := ExtractJSON("no braces here", &out)
	if !errors.Is(err, ErrNoJSON) {
		t.Fatalf("expected ErrNoJSON, got %v", err)
	}
}

func TestExtractJSONParseError(t *testing.T) {
	var out map[string]any
	err := ExtractJSON("{not valid json}", &out)
	if err == nil {
		t.Fatal("expected parse error")
	}
	if errors.Is(err, ErrNoJSON) {
		t.Fatal("parse failure must be distinguishable from absence")
	}
}

func TestExtractJSONGreedySpan(t *testing.T) {
	// The greedy first-{ to last-} heuristic swallows trailing prose braces.
	var out map[string]any
	err := ExtractJSON(`{"a": 1} and by the way }`, &out)
	if err == nil {
		t.Fatal("expected parse error from greedy span")
	}
	if errors.Is(err, ErrNoJSON) {
		t.Fatalf("expected parse error, got %v", err)
	}
}

func TestExtractJSONMultilineObject(t *testing.T) {
	text := "```json\n{\n  \"goal\": \"10k followers\"\n}\n```"
	var out map[string]any
	if err := ExtractJSON(text, &out); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out["goal"] != "10k followers" {
		t.Fatalf("unexpected payload: %v", out)
	}
}
