package domain

import (
	"fmt"
	"strings"
)

// ExtractionResult is the structured output of one pipeline run.
type ExtractionResult struct {
	RawText string   `json:"rawText"`
	Skills  []string `json:"skills"`
	Emails  []string `json:"emails"`
	Phones  []string `json:"phones"`
}

// NewExtractionResult builds a result whose lists encode as [] rather than null.
func NewExtractionResult(rawText string, skills, emails, phones []string) *ExtractionResult {
	return &ExtractionResult{
		RawText: rawText,
		Skills:  nonNil(skills),
		Emails:  nonNil(emails),
		Phones:  nonNil(phones),
	}
}

func nonNil(values []string) []string {
	if values == nil {
		return []string{}
	}
	return values
}

// SkillMatchMode selects how vocabulary entries are located in text.
type SkillMatchMode string

const (
	// SkillMatchSubstring matches case-insensitive substrings anywhere,
	// including inside longer words ("Java" matches "JavaScript").
	SkillMatchSubstring SkillMatchMode = "substring"
	// SkillMatchWord only matches entries not flanked by letters or digits.
	SkillMatchWord SkillMatchMode = "word"
)

// ParseSkillMatchMode converts a config value into a SkillMatchMode.
// An empty value selects SkillMatchSubstring.
func ParseSkillMatchMode(value string) (SkillMatchMode, error) {
	switch SkillMatchMode(strings.ToLower(strings.TrimSpace(value))) {
	case "", SkillMatchSubstring:
		return SkillMatchSubstring, nil
	case SkillMatchWord:
		return SkillMatchWord, nil
	default:
		return "", fmt.Errorf("unknown skill match mode %q (want %q or %q)", value, SkillMatchSubstring, SkillMatchWord)
	}
}
