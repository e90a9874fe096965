package ranking

import (
	"fmt"
	"math"
	"regexp"
	"sort"
	"strings"

	"github.com/jonathan/resume-analyzer/internal/types"
)

// termRegex selects words of two or more letters, digits or underscores.
var termRegex = regexp.MustCompile(`[\p{L}\p{N}_]{2,}`)

// VectorModel is a fitted TF-IDF vectorizer together with the L2-normalized
// vector of every role. It is the JSON artifact written by build-model.
type VectorModel struct {
	Vocabulary map[string]int `json:"vocabulary"`
	IDF        []float64      `json:"idf"`
	RoleNames  []string       `json:"role_names"`
	Matrix     [][]float64    `json:"matrix"`
}

// FitVectorModel fits the vectorizer on one document per role, the role's
// required skills joined by spaces. Terms are lower-cased; idf is smoothed
// (ln((1+n)/(1+df)) + 1) and rows are L2-normalized.
func FitVectorModel(catalog *types.RoleCatalog) *VectorModel {
	roles := catalog.Roles()
	docs := make([][]string, len(roles))
	df := make(map[string]int)

	for i, role := range roles {
		docs[i] = analyzeTerms(strings.Join(role.RequiredSkills, " "))
		seen := make(map[string]bool)
		for _, term := range docs[i] {
			if !seen[term] {
				seen[term] = true
				df[term]++
			}
		}
	}

	terms := make([]string, 0, len(df))
	for term := range df {
		terms = append(terms, term)
	}
	sort.Strings(terms)

	m := &VectorModel{
		Vocabulary: make(map[string]int, len(terms)),
		IDF:        make([]float64, len(terms)),
		RoleNames:  make([]string, len(roles)),
		Matrix:     make([][]float64, len(roles)),
	}

	n := float64(len(roles))
	for i, term := range terms {
		m.Vocabulary[term] = i
		m.IDF[i] = math.Log((1+n)/(1+float64(df[term]))) + 1
	}

	for i, role := range roles {
		m.RoleNames[i] = role.Name
		m.Matrix[i] = m.vectorize(docs[i])
	}
	return m
}

// Validate checks that the artifact is internally consistent.
func (m *VectorModel) Validate() error {
	if m == nil {
		return &ModelError{Message: "model is nil"}
	}
	if len(m.IDF) != len(m.Vocabulary) {
		return &ModelError{Message: fmt.Sprintf("idf has %d entries for a vocabulary of %d", len(m.IDF), len(m.Vocabulary))}
	}
	for term, idx := range m.Vocabulary {
		if idx < 0 || idx >= len(m.IDF) {
			return &ModelError{Message: fmt.Sprintf("term %q has out of range index %d", term, idx)}
		}
	}
	if len(m.RoleNames) != len(m.Matrix) {
		return &ModelError{Message: fmt.Sprintf("%d role names for %d matrix rows", len(m.RoleNames), len(m.Matrix))}
	}
	for i, row := range m.Matrix {
		if len(row) != len(m.IDF) {
			return &ModelError{Message: fmt.Sprintf("row %d has %d columns, want %d", i, len(row), len(m.IDF))}
		}
	}
	return nil
}

// Transform returns the L2-normalized TF-IDF vector of text. Unknown terms are ignored.
func (m *VectorModel) Transform(text string) []float64 {
	return m.vectorize(analyzeTerms(text))
}

// Similarities returns the cosine similarity between text and every role, in
// RoleNames order.
func (m *VectorModel) Similarities(text string) ([]float64, error) {
	if err := m.Validate(); err != nil {
		return nil, err
	}

	query := m.Transform(text)
	sims := make([]float64, len(m.Matrix))
	for i, row := range m.Matrix {
		var dot float64
		for j, v := range query {
			dot += v * row[j]
		}
		sims[i] = dot
	}
	return sims, nil
}

func (m *VectorModel) vectorize(terms []string) []float64 {
	vec := make([]float64, len(m.IDF))
	for _, term := range terms {
		if idx, ok := m.Vocabulary[term]; ok {
			vec[idx]++
		}
	}

	var norm float64
	for i := range vec {
		vec[i] *= m.IDF[i]
		norm += vec[i] * vec[i]
	}
	if norm == 0 {
		return vec
	}

	norm = math.Sqrt(norm)
	for i := range vec {
		vec[i] /= norm
	}
	return vec
}

func analyzeTerms(text string) []string {
	return termRegex.FindAllString(strings.ToLower(text), -1)
}
