package skills

import (
	"testing"

	"github.com/jonathan/resume-analyzer/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testTaxonomy() *types.Taxonomy {
	return &types.Taxonomy{
		Categories: []types.Category{
			{Name: "Programming Languages", Skills: []string{"Python", "Java", "JavaScript", "C++", "C#", "Go"}},
			{Name: "Web", Skills: []string{"React", "Node.js", "REST API"}},
			{Name: "AI/ML", Skills: []string{"Machine Learning", "TensorFlow", "Python"}},
			{Name: "DevOps", Skills: []string{"CI/CD", "Docker", ".NET"}},
		},
	}
}

func TestTokenize(t *testing.T) {
	tests := []struct {
		in   string
		want []string
	}{
		{"Node.js, React.", []string{"Node.js", ",", "React", "."}},
		{"(C++ and C#)", []string{"(", "C++", "and", "C#", ")"}},
		{"CI/CD pipelines", []string{"CI", "CD", "pipelines"}},
		{"built .NET apps", []string{"built", ".NET", "apps"}},
		{"state-of-the-art", []string{"state-of-the-art"}},
		{"", nil},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, Tokenize(tt.in))
		})
	}
}

func TestExtract_CaseInsensitiveAndCanonical(t *testing.T) {
	m := NewMatcher(testTaxonomy())

	got := m.Extract("Experienced in PYTHON, node.js and machine learning.")

	assert.Equal(t, []string{"Python", "Node.js", "Machine Learning"}, got.Flat)
	assert.Equal(t, []string{"Python"}, got.Categorized["Programming Languages"])
	assert.Equal(t, []string{"Python", "Machine Learning"}, got.Categorized["AI/ML"])
	assert.Equal(t, []string{"Node.js"}, got.Categorized["Web"])
}

func TestExtract_TokenBoundaries(t *testing.T) {
	m := NewMatcher(testTaxonomy())

	got := m.Extract("JavaScript developer, good at Google products")
	assert.Equal(t, []string{"JavaScript"}, got.Flat, "Java and Go must not match inside longer words")
}

func TestExtract_SymbolSkills(t *testing.T) {
	m := NewMatcher(testTaxonomy())

	got := m.Extract("Wrote C++ and C# services, shipped with CI/CD on .NET")
	assert.Equal(t, []string{"C++", "C#", "CI/CD", ".NET"}, got.Flat)
}

func TestExtract_PhraseMustBeContiguous(t *testing.T) {
	m := NewMatcher(testTaxonomy())

	got := m.Extract("machine vision and deep learning")
	assert.Empty(t, got.Flat)
}

func TestExtract_ReportsEachSkillOnce(t *testing.T) {
	m := NewMatcher(testTaxonomy())

	got := m.Extract("Docker, docker, DOCKER")
	assert.Equal(t, []string{"Docker"}, got.Flat)
	assert.Equal(t, []string{"Docker"}, got.Categorized["DevOps"])
}

func TestExtract_EmptyInputs(t *testing.T) {
	m := NewMatcher(testTaxonomy())
	got := m.Extract("")
	assert.NotNil(t, got.Flat)
	assert.Empty(t, got.Flat)
	assert.Empty(t, got.Categorized)

	empty := NewMatcher(nil)
	assert.Equal(t, 0, empty.Len())
	assert.Empty(t, empty.Extract("Python everywhere").Flat)

	var nilMatcher *Matcher
	assert.Empty(t, nilMatcher.Extract("Python").Flat)
}

func TestNewMatcher_DeduplicatesPhrases(t *testing.T) {
	m := NewMatcher(testTaxonomy())
	require.Equal(t, 14, m.Len())
}

func TestSet(t *testing.T) {
	s := NewSet("Python", "python", " Go ", "")
	assert.Equal(t, 2, s.Len())
	assert.True(t, s.Contains("PYTHON"))
	assert.True(t, s.Contains("go"))
	assert.False(t, s.Contains("Rust"))
}

func TestMentioned(t *testing.T) {
	got := Mentioned("Built a React front end backed by Node.js", []string{"Node.js", "Python", "React"})
	assert.Equal(t, []string{"Node.js", "React"}, got)
	assert.Empty(t, Mentioned("", []string{"Go"}))
}
