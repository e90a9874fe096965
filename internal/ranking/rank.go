package ranking

import (
	"sort"
	"strings"

	"github.com/jonathan/resume-analyzer/internal/skills"
	"github.com/jonathan/resume-analyzer/internal/types"
)

// RankRoles scores every role of the catalog and sorts the results by score,
// descending. Ties keep catalog order.
func RankRoles(catalog *types.RoleCatalog, userSkills skills.Set) []types.MatchResult {
	roles := catalog.Roles()
	matches := make([]types.MatchResult, 0, len(roles))

	for _, role := range roles {
		rs := ScoreRole(role, userSkills)
		matches = append(matches, types.MatchResult{
			JobTitle:      role.Name,
			Score:         rs.Score,
			MatchedSkills: rs.Matched,
			MissingSkills: rs.Missing,
			Description:   role.Description,
		})
	}

	sort.SliceStable(matches, func(i, j int) bool {
		return matches[i].Score > matches[j].Score
	})

	return matches
}

// PrioritizeTarget moves the match for target to the front and marks it.
// An exact case-insensitive title match is preferred; otherwise the first
// title containing target is used. The input slice is not modified.
func PrioritizeTarget(matches []types.MatchResult, target string) []types.MatchResult {
	target = strings.TrimSpace(target)
	if target == "" || len(matches) == 0 {
		return matches
	}

	idx := -1
	for i, m := range matches {
		if strings.EqualFold(m.JobTitle, target) {
			idx = i
			break
		}
	}
	if idx < 0 {
		lowerTarget := strings.ToLower(target)
		for i, m := range matches {
			if strings.Contains(strings.ToLower(m.JobTitle), lowerTarget) {
				idx = i
				break
			}
		}
	}
	if idx < 0 {
		return matches
	}

	promoted := matches[idx]
	promoted.IsTarget = true

	out := make([]types.MatchResult, 0, len(matches))
	out = append(out, promoted)
	out = append(out, matches[:idx]...)
	out = append(out, matches[idx+1:]...)
	return out
}

// Top returns at most n matches. n <= 0 returns all of them.
func Top(matches []types.MatchResult, n int) []types.MatchResult {
	if n <= 0 || len(matches) <= n {
		return matches
	}
	return matches[:n]
}
