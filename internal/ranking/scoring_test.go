package ranking

import (
	"testing"

	"github.com/jonathan/resume-analyzer/internal/skills"
	"github.com/jonathan/resume-analyzer/internal/types"
	"github.com/stretchr/testify/assert"
)

func TestScoreRole_Weighted(t *testing.T) {
	role := types.RoleDefinition{
		Name:           "Data Engineer",
		RequiredSkills: []string{"Python", "SQL", "Docker"},
		Weights:        map[string]float64{"python": 2},
	}

	got := ScoreRole(role, skills.NewSet("python"))

	assert.Equal(t, 50.0, got.Score)
	assert.Equal(t, []string{"Python"}, got.Matched)
	assert.Equal(t, []string{"SQL", "Docker"}, got.Missing)
}

func TestScoreRole_RoundsToOneDecimal(t *testing.T) {
	role := types.RoleDefinition{Name: "Analyst", RequiredSkills: []string{"Excel", "SQL", "Tableau"}}

	got := ScoreRole(role, skills.NewSet("SQL"))
	assert.Equal(t, 33.3, got.Score)
}

func TestScoreRole_GenericPenalty(t *testing.T) {
	required := []string{"Java", "Git", "SQL", "Linux"}
	user := skills.NewSet("Java", "Git")

	specific := ScoreRole(types.RoleDefinition{Name: "Backend Developer", RequiredSkills: required}, user)
	for name := range GenericRoles {
		generic := ScoreRole(types.RoleDefinition{Name: name, RequiredSkills: required}, user)
		assert.Equal(t, 50.0, specific.Score)
		assert.Equal(t, 45.0, generic.Score, name)
	}
}

func TestScoreRole_ZeroTotalWeight(t *testing.T) {
	got := ScoreRole(types.RoleDefinition{Name: "Empty"}, skills.NewSet("Go"))
	assert.Equal(t, 0.0, got.Score)
	assert.Empty(t, got.Matched)
	assert.Empty(t, got.Missing)

	zero := types.RoleDefinition{
		Name:           "Zero",
		RequiredSkills: []string{"Go"},
		Weights:        map[string]float64{"Go": 0},
	}
	assert.Equal(t, 0.0, ScoreRole(zero, skills.NewSet("Go")).Score)
}

func TestScoreRole_WithinRange(t *testing.T) {
	role := types.RoleDefinition{
		Name:           "Programmer",
		RequiredSkills: []string{"C", "C++", "Python", "Go"},
		Weights:        map[string]float64{"C": 3, "go": 0.5},
	}

	userSets := []skills.Set{
		skills.NewSet(),
		skills.NewSet("C"),
		skills.NewSet("C", "C++"),
		skills.NewSet("C", "C++", "Python", "Go"),
		skills.NewSet("Rust", "Haskell"),
	}
	for _, u := range userSets {
		got := ScoreRole(role, u)
		assert.GreaterOrEqual(t, got.Score, 0.0)
		assert.LessOrEqual(t, got.Score, 100.0)
	}
}

func TestWeightFor(t *testing.T) {
	weights := map[string]float64{"Python": 3, "docker": 2}

	assert.Equal(t, 3.0, weightFor(weights, "Python"))
	assert.Equal(t, 3.0, weightFor(weights, "PYTHON"))
	assert.Equal(t, 2.0, weightFor(weights, "Docker"))
	assert.Equal(t, 1.0, weightFor(weights, "Go"))
	assert.Equal(t, 1.0, weightFor(nil, "Go"))
}
