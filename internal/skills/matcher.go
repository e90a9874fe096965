package skills

import (
	"strings"

	"github.com/jonathan/resume-analyzer/internal/types"
)

// Extraction is the result of matching a text against the taxonomy.
type Extraction struct {
	// Categorized maps category name to the skills found in it.
	Categorized map[string][]string
	// Flat lists every distinct skill found, in order of first appearance.
	Flat []string
}

type phrase struct {
	tokens     []string
	key        string
	display    string
	categories []string
}

// Matcher finds taxonomy phrases in text. It is built once and is safe for
// concurrent use.
type Matcher struct {
	byFirstToken map[string][]*phrase
	phrases      int
}

// NewMatcher compiles every phrase of the taxonomy. A phrase listed in several
// categories is compiled once and reported under each of them. A nil taxonomy
// produces a matcher that never matches.
func NewMatcher(tax *types.Taxonomy) *Matcher {
	m := &Matcher{byFirstToken: make(map[string][]*phrase)}
	if tax == nil {
		return m
	}

	byKey := make(map[string]*phrase)
	for _, cat := range tax.Categories {
		for _, name := range cat.Skills {
			tokens := Tokenize(Fold(name))
			if len(tokens) == 0 {
				continue
			}
			key := strings.Join(tokens, " ")

			if p, ok := byKey[key]; ok {
				if !containsString(p.categories, cat.Name) {
					p.categories = append(p.categories, cat.Name)
				}
				continue
			}

			p := &phrase{
				tokens:     tokens,
				key:        key,
				display:    strings.TrimSpace(name),
				categories: []string{cat.Name},
			}
			byKey[key] = p
			m.byFirstToken[tokens[0]] = append(m.byFirstToken[tokens[0]], p)
			m.phrases++
		}
	}
	return m
}

// Len returns the number of distinct phrases compiled.
func (m *Matcher) Len() int {
	if m == nil {
		return 0
	}
	return m.phrases
}

// Extract returns the taxonomy skills that occur in text as exact contiguous
// token sequences, ignoring case.
func (m *Matcher) Extract(text string) Extraction {
	out := Extraction{
		Categorized: make(map[string][]string),
		Flat:        []string{},
	}
	if m == nil || len(m.byFirstToken) == 0 {
		return out
	}

	tokens := Tokenize(Fold(text))
	seen := make(map[string]bool)

	for i, tok := range tokens {
		for _, p := range m.byFirstToken[tok] {
			if seen[p.key] || !hasSequence(tokens[i:], p.tokens) {
				continue
			}
			seen[p.key] = true
			out.Flat = append(out.Flat, p.display)
			for _, c := range p.categories {
				out.Categorized[c] = append(out.Categorized[c], p.display)
			}
		}
	}
	return out
}

func hasSequence(tokens, want []string) bool {
	if len(tokens) < len(want) {
		return false
	}
	for i, w := range want {
		if tokens[i] != w {
			return false
		}
	}
	return true
}

func containsString(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}
