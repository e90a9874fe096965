// Package skills extracts taxonomy skills from free-form résumé text.
package skills

import (
	"strings"

	"golang.org/x/text/cases"
)

// Fold returns the case-folded form of s used for all skill comparisons.
// A cases.Caser carries state, so one is created per call.
func Fold(s string) string {
	return cases.Fold().String(strings.TrimSpace(s))
}

// Set is a case-insensitive set of skill names.
type Set map[string]struct{}

// NewSet builds a Set from display names.
func NewSet(names ...string) Set {
	set := make(Set, len(names))
	for _, n := range names {
		if k := Fold(n); k != "" {
			set[k] = struct{}{}
		}
	}
	return set
}

// Contains reports whether name is in the set, ignoring case.
func (s Set) Contains(name string) bool {
	_, ok := s[Fold(name)]
	return ok
}

// Len returns the number of distinct skills.
func (s Set) Len() int {
	return len(s)
}

// Mentioned returns the skills whose name occurs anywhere in text, ignoring
// case. Order follows names.
func Mentioned(text string, names []string) []string {
	folded := Fold(text)
	found := make([]string, 0)
	for _, n := range names {
		if k := Fold(n); k != "" && strings.Contains(folded, k) {
			found = append(found, n)
		}
	}
	return found
}
