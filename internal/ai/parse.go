package ai

import (
	"encoding/json"
	"fmt"
	"strings"
)

// stripFences removes a surrounding markdown code fence. Models are
// told to return pure JSON, but some wrap it in ```json blocks anyway.
func stripFences(s string) string {
	s = strings.TrimSpace(s)
	if !strings.HasPrefix(s, "```") {
		return s
	}
	s = strings.TrimPrefix(s, "```")
	if idx := strings.Index(s, "\n"); idx >= 0 {
		// drop the language tag line ("json")
		s = s[idx+1:]
	}
	s = strings.TrimSuffix(strings.TrimSpace(s), "```")
	return strings.TrimSpace(s)
}

// parseBatch decodes a JSON array of question/answer pairs and checks
// it against the requested count.
func parseBatch(raw string, count int) ([]QuestionAnswer, error) {
	var batch []QuestionAnswer
	if err := json.Unmarshal([]byte(stripFences(raw)), &batch); err != nil {
		return nil, fmt.Errorf("malformed batch response: %v", err)
	}
	if len(batch) != count {
		return nil, fmt.Errorf("expected %d questions, got %d", count, len(batch))
	}
	for i, qa := range batch {
		if strings.TrimSpace(qa.Question) == "" || strings.TrimSpace(qa.Answer) == "" {
			return nil, fmt.Errorf("entry %d has empty question or answer", i)
		}
	}
	return batch, nil
}

// parseExplanation decodes a single explanation document. Sources may
// be empty, but every present source must be structurally complete.
func parseExplanation(raw string) (*Explanation, error) {
	var exp Explanation
	if err := json.Unmarshal([]byte(stripFences(raw)), &exp); err != nil {
		return nil, fmt.Errorf("malformed explanation response: %v", err)
	}
	if strings.TrimSpace(exp.Title) == "" || strings.TrimSpace(exp.Explanation) == "" {
		return nil, fmt.Errorf("explanation missing title or body")
	}
	for i, src := range exp.Sources {
		if src.Title == "" || src.URL == "" || src.Description == "" {
			return nil, fmt.Errorf("source %d is incomplete", i)
		}
	}
	if exp.Sources == nil {
		exp.Sources = []Source{}
	}
	return &exp, nil
}
