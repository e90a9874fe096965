// Package types provides type definitions for structured data used throughout the resume-analyzer system.
//
//nolint:revive // types is a standard Go package name pattern
package types

// Taxonomy is the skill taxonomy: an ordered list of categories, each holding
// canonical skill phrases. It is loaded once and never mutated afterwards.
type Taxonomy struct {
	Categories []Category `json:"categories"`
}

// Category is a named group of canonical skill phrases.
type Category struct {
	Name   string   `json:"name"`
	Skills []string `json:"skills"`
}

// Len returns the number of categories. A nil taxonomy has none.
func (t *Taxonomy) Len() int {
	if t == nil {
		return 0
	}
	return len(t.Categories)
}

// SkillCount returns the total number of phrases across all categories.
func (t *Taxonomy) SkillCount() int {
	if t == nil {
		return 0
	}
	n := 0
	for _, c := range t.Categories {
		n += len(c.Skills)
	}
	return n
}
