package ranking

import (
	"errors"
	"testing"

	"github.com/jonathan/resume-analyzer/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func vectorCatalog() *types.RoleCatalog {
	return types.NewRoleCatalog([]types.RoleDefinition{
		{Name: "Django Developer", RequiredSkills: []string{"Python", "Django"}},
		{Name: "Spring Developer", RequiredSkills: []string{"Java", "Spring"}},
		{Name: "Polyglot", RequiredSkills: []string{"Python", "Java"}},
	})
}

func TestFitVectorModel(t *testing.T) {
	m := FitVectorModel(vectorCatalog())

	require.NoError(t, m.Validate())
	assert.Equal(t, []string{"Django Developer", "Spring Developer", "Polyglot"}, m.RoleNames)
	assert.Equal(t, map[string]int{"django": 0, "java": 1, "python": 2, "spring": 3}, m.Vocabulary)
	assert.Greater(t, m.IDF[0], m.IDF[2], "rarer terms get a higher idf")
}

func TestVectorModel_Similarities(t *testing.T) {
	m := FitVectorModel(vectorCatalog())

	sims, err := m.Similarities("Python Django")
	require.NoError(t, err)
	require.Len(t, sims, 3)

	assert.InDelta(t, 1.0, sims[0], 1e-9)
	assert.InDelta(t, 0.0, sims[1], 1e-9)
	assert.Greater(t, sims[2], 0.0)
	assert.Less(t, sims[2], sims[0])
}

func TestVectorModel_UnknownTermsGiveZeroVector(t *testing.T) {
	m := FitVectorModel(vectorCatalog())

	sims, err := m.Similarities("Haskell OCaml")
	require.NoError(t, err)
	for _, s := range sims {
		assert.Equal(t, 0.0, s)
	}
}

func TestVectorModel_ShapeErrors(t *testing.T) {
	tests := []struct {
		name  string
		model *VectorModel
	}{
		{"nil", nil},
		{"idf length", &VectorModel{Vocabulary: map[string]int{"go": 0}, IDF: nil}},
		{"index out of range", &VectorModel{Vocabulary: map[string]int{"go": 3}, IDF: []float64{1}}},
		{"role count", &VectorModel{Vocabulary: map[string]int{}, RoleNames: []string{"A"}}},
		{"row width", &VectorModel{
			Vocabulary: map[string]int{"go": 0},
			IDF:        []float64{1},
			RoleNames:  []string{"A"},
			Matrix:     [][]float64{{1, 2}},
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := tt.model.Similarities("go")
			require.Error(t, err)
			var modelErr *ModelError
			assert.True(t, errors.As(err, &modelErr))
		})
	}
}
