package domain

import "strings"

// SkillVocabulary is an ordered, immutable set of skill names.
// The zero value is an empty vocabulary.
type SkillVocabulary struct {
	skills []string
}

// NewSkillVocabulary trims each name, drops empty names and drops later
// entries that equal an earlier one ignoring case.
func NewSkillVocabulary(names ...string) SkillVocabulary {
	seen := make(map[string]struct{}, len(names))
	skills := make([]string, 0, len(names))
	for _, name := range names {
		name = strings.TrimSpace(name)
		if name == "" {
			continue
		}
		key := strings.ToLower(name)
		if _, dup := seen[key]; dup {
			continue
		}
		seen[key] = struct{}{}
		skills = append(skills, name)
	}
	return SkillVocabulary{skills: skills}
}

// Skills returns a copy of the vocabulary entries in order.
func (v SkillVocabulary) Skills() []string {
	out := make([]string, len(v.skills))
	copy(out, v.skills)
	return out
}

// Len returns the number of entries.
func (v SkillVocabulary) Len() int {
	return len(v.skills)
}

// Contains reports whether name is an entry, compared exactly.
func (v SkillVocabulary) Contains(name string) bool {
	for _, s := range v.skills {
		if s == name {
			return true
		}
	}
	return false
}
