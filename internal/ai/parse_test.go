package ai

import (
	"testing"
)

func TestStripFences(t *testing.T) {
	testCases := []struct {
		in   string
		want string
	}{
		{`[{"a":1}]`, `[{"a":1}]`},
		{"```json\n[1,2]\n```", "[1,2]"},
		{"```\n{\"x\":true}\n```", `{"x":true}`},
		{"  \n```json\n{}\n```\n  ", "{}"},
	}

	for _, tc := range testCases {
		got := stripFences(tc.in)
		if got != tc.want {
			t.Errorf("stripFences(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestParseBatch_Valid(t *testing.T) {
	raw := `[
		{"question": "What is a goroutine?", "answer": "A lightweight thread."},
		{"question": "What is a channel?", "answer": "A typed conduit."}
	]`

	batch, err := parseBatch(raw, 2)
	if err != nil {
		t.Fatalf("parseBatch() error = %v, want nil", err)
	}
	if batch[0].Question != "What is a goroutine?" {
		t.Errorf("first question = %q", batch[0].Question)
	}
	if batch[1].Answer != "A typed conduit." {
		t.Errorf("second answer = %q", batch[1].Answer)
	}
}

func TestParseBatch_CountMismatch(t *testing.T) {
	raw := `[{"question": "q", "answer": "a"}]`

	if _, err := parseBatch(raw, 3); err == nil {
		t.Error("parseBatch() with wrong length error = nil, want error")
	}
}

func TestParseBatch_Malformed(t *testing.T) {
	testCases := []string{
		"",
		"not json at all",
		`{"question": "q"}`, // object, not array
		`[{"question": "", "answer": "a"}]`,
		`[{"question": "q", "answer": "  "}]`,
	}

	for _, raw := range testCases {
		if _, err := parseBatch(raw, 1); err == nil {
			t.Errorf("parseBatch(%q) error = nil, want error", raw)
		}
	}
}

func TestParseExplanation_Valid(t *testing.T) {
	raw := "```json\n" + `{
		"title": "Goroutines",
		"explanation": "A goroutine is ...",
		"sources": [
			{"title": "Go docs", "url": "https://go.dev/doc", "description": "Official documentation"}
		]
	}` + "\n```"

	exp, err := parseExplanation(raw)
	if err != nil {
		t.Fatalf("parseExplanation() error = %v, want nil", err)
	}
	if exp.Title != "Goroutines" {
		t.Errorf("title = %q", exp.Title)
	}
	if len(exp.Sources) != 1 || exp.Sources[0].URL != "https://go.dev/doc" {
		t.Errorf("sources = %+v", exp.Sources)
	}
}

func TestParseExplanation_EmptySources(t *testing.T) {
	raw := `{"title": "T", "explanation": "E"}`

	exp, err := parseExplanation(raw)
	if err != nil {
		t.Fatalf("parseExplanation() error = %v, want nil", err)
	}
	if exp.Sources == nil || len(exp.Sources) != 0 {
		t.Errorf("sources = %v, want empty non-nil slice", exp.Sources)
	}
}

func TestParseExplanation_IncompleteSource(t *testing.T) {
	raw := `{
		"title": "T",
		"explanation": "E",
		"sources": [{"title": "Go docs", "url": "", "description": "d"}]
	}`

	if _, err := parseExplanation(raw); err == nil {
		t.Error("parseExplanation() with incomplete source error = nil, want error")
	}
}

func TestParseExplanation_MissingBody(t *testing.T) {
	if _, err := parseExplanation(`{"title": "T"}`); err == nil {
		t.Error("parseExplanation() without explanation error = nil, want error")
	}
}
