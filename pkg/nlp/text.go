// Package nlp holds the small text-normalization helpers used when
// matching skill names against resume text.
package nlp

import (
	"regexp"
	"strings"
)

var (
	nonWord    = regexp.MustCompile(`[^\p{L}\p{N}]+`)
	multiSpace = regexp.MustCompile(`\s+`)
)

// Normalize lowercases a string and replaces every non-alphanumeric run
// with one space.
func Normalize(s string) string {
	s = strings.ToLower(s)
	s = nonWord.ReplaceAllString(s, " ")
	s = multiSpace.ReplaceAllString(s, " ")
	return strings.TrimSpace(s)
}

// ContainsPhrase checks for a normalized phrase as whole words.
// "rest api" is found in "... rest api ..." but not in "... rest apis ...".
func ContainsPhrase(normalizedText, normalizedPhrase string) bool {
	if normalizedPhrase == "" {
		return false
	}
	hay := " " + normalizedText + " "
	needle := " " + normalizedPhrase + " "
	return strings.Contains(hay, needle)
}

// skill aliases for explicit-mention matching
var aliases = map[string][]string{
	"javascript": {"js"},
	"js":         {"javascript"},
	"typescript": {"ts"},
	"ts":         {"typescript"},
	"python":     {"py"},
	"react":      {"reactjs", "react js"},
	"node js":    {"node", "nodejs"},
	"postgresql": {"postgres"},
	"postgres":   {"postgresql"},
	"mongodb":    {"mongo"},
	"kubernetes": {"k8s"},
	"k8s":        {"kubernetes"},
	"golang":     {"go"},
	"go":         {"golang"},
}

// SkillVariants returns the normalized skill plus its common aliases,
// including a collapsed form without separators ("node.js" -> "nodejs").
func SkillVariants(skill string) []string {
	base := Normalize(skill)
	if base == "" {
		return nil
	}
	seen := map[string]bool{}
	var out []string
	add := func(s string) {
		if s == "" || seen[s] {
			return
		}
		seen[s] = true
		out = append(out, s)
	}
	add(base)
	add(strings.ReplaceAll(base, " ", ""))
	for _, alias := range aliases[base] {
		add(Normalize(alias))
	}
	return out
}
