// Package ranking scores résumé skills against the job-role catalog.
package ranking

import (
	"math"
	"sort"

	"github.com/jonathan/resume-analyzer/internal/skills"
	"github.com/jonathan/resume-analyzer/internal/types"
)

const (
	defaultSkillWeight = 1.0

	// genericPenalty is applied to catch-all titles so specific roles rank above them.
	genericPenalty = 0.9
)

// GenericRoles are catch-all titles whose scores are reduced by 10%.
var GenericRoles = map[string]bool{
	"Software Engineer":      true,
	"Software Developer":     true,
	"Software Test Engineer": true,
	"Programmer":             true,
}

// RoleScore is the weighted compatibility of one role with a skill set.
type RoleScore struct {
	Score   float64
	Matched []string
	Missing []string
}

// ScoreRole computes the weighted percentage of role's required skills present
// in userSkills, rounded to one decimal. Matched and Missing keep the role's
// own casing and order.
func ScoreRole(role types.RoleDefinition, userSkills skills.Set) RoleScore {
	out := RoleScore{
		Matched: make([]string, 0, len(role.RequiredSkills)),
		Missing: make([]string, 0),
	}

	var score, total float64
	for _, skill := range role.RequiredSkills {
		w := weightFor(role.Weights, skill)
		total += w
		if userSkills.Contains(skill) {
			score += w
			out.Matched = append(out.Matched, skill)
		} else {
			out.Missing = append(out.Missing, skill)
		}
	}

	if total <= 0 {
		return out
	}

	percent := score / total * 100
	if GenericRoles[role.Name] {
		percent *= genericPenalty
	}
	out.Score = roundTenth(percent)
	return out
}

// weightFor looks up the declared weight of skill ignoring case, defaulting to 1.
// An exact key wins; otherwise keys are compared case-folded in sorted order
// so the result does not depend on map iteration.
func weightFor(weights map[string]float64, skill string) float64 {
	if len(weights) == 0 {
		return defaultSkillWeight
	}
	if w, ok := weights[skill]; ok {
		return w
	}

	keys := make([]string, 0, len(weights))
	for k := range weights {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	folded := skills.Fold(skill)
	for _, k := range keys {
		if skills.Fold(k) == folded {
			return weights[k]
		}
	}
	return defaultSkillWeight
}

func roundTenth(v float64) float64 {
	return math.Round(v*10) / 10
}
