package service

import (
	"regexp"
	"strings"

	"resume-parser/internal/domain"
)

var (
	// local-part@domain.tld, tld at least two letters.
	emailPattern = regexp.MustCompile(`[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}`)

	// Optional +, a digit, seven or more digits/whitespace/hyphens, a digit.
	// Matches long numeric IDs as well as phone numbers.
	phonePattern = regexp.MustCompile(`\+?\d[\d\s-]{7,}\d`)
)

// ExtractEmails returns every email-shaped substring of text in order of
// appearance. Duplicates are kept.
func ExtractEmails(text string) []string {
	return findAll(emailPattern, text)
}

// ExtractPhones returns every phone-shaped substring of text in order of
// appearance. Duplicates are kept and nothing is normalized.
func ExtractPhones(text string) []string {
	return findAll(phonePattern, text)
}

func findAll(re *regexp.Regexp, text string) []string {
	matches := re.FindAllString(text, -1)
	if matches == nil {
		return []string{}
	}
	return matches
}

// ExtractSkills returns the vocabulary entries found in text as
// case-insensitive substrings, in vocabulary order.
func ExtractSkills(text string, vocabulary domain.SkillVocabulary) []string {
	return NewSkillMatcher(vocabulary, domain.SkillMatchSubstring).Match(text)
}

// SkillMatcher finds vocabulary entries in text. It is immutable and safe
// for concurrent use.
type SkillMatcher struct {
	mode     domain.SkillMatchMode
	skills   []string
	folded   []string
	patterns []*regexp.Regexp
}

// NewSkillMatcher prepares a matcher for vocabulary. Unknown modes behave
// like domain.SkillMatchSubstring.
func NewSkillMatcher(vocabulary domain.SkillVocabulary, mode domain.SkillMatchMode) *SkillMatcher {
	skills := vocabulary.Skills()
	m := &SkillMatcher{
		mode:   mode,
		skills: skills,
		folded: make([]string, len(skills)),
	}
	for i, skill := range skills {
		m.folded[i] = strings.ToLower(skill)
	}

	if mode == domain.SkillMatchWord {
		m.patterns = make([]*regexp.Regexp, len(skills))
		for i, skill := range skills {
			m.patterns[i] = regexp.MustCompile(`(?i)(?:^|[^\p{L}\p{N}])` + regexp.QuoteMeta(skill) + `(?:[^\p{L}\p{N}]|$)`)
		}
	}

	return m
}

// Mode returns the match mode in effect.
func (m *SkillMatcher) Mode() domain.SkillMatchMode {
	if m.mode == domain.SkillMatchWord {
		return domain.SkillMatchWord
	}
	return domain.SkillMatchSubstring
}

// Match returns the matching entries in vocabulary order.
func (m *SkillMatcher) Match(text string) []string {
	found := make([]string, 0)

	if m.patterns != nil {
		for i, re := range m.patterns {
			if re.MatchString(text) {
				found = append(found, m.skills[i])
			}
		}
		return found
	}

	lowered := strings.ToLower(text)
	for i, skill := range m.folded {
		if strings.Contains(lowered, skill) {
			found = append(found, m.skills[i])
		}
	}
	return found
}
