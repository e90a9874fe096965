// Package analysis turns résumé text into skills, role matches and per-entry feedback.
package analysis

import (
	"fmt"
	"sort"
	"strings"

	"github.com/jonathan/resume-analyzer/internal/entries"
	"github.com/jonathan/resume-analyzer/internal/skills"
	"github.com/jonathan/resume-analyzer/internal/types"
)

// Inferred project roles.
const (
	RoleLead        = "Team Lead / Manager"
	RoleArchitect   = "System Architect / Core Developer"
	RoleSupport     = "Maintenance & Support"
	RoleContributor = "Contributor / Developer"
)

const (
	baseProjectScore    = 60
	pointsPerSkill      = 4
	maxSkillPoints      = 20
	impactPoints        = 10
	methodologyPoints   = 10
	rolePoints          = 5
	maxProjectScore     = 100
	minNamedTitleLength = 3
	maxDescriptionRunes = 200
	maxRelevantRoles    = 3
	strongStackSkills   = 3
)

// AnalyzeProjects splits a projects section into entries and scores each one.
// userSkills are the skills extracted from the whole résumé.
func AnalyzeProjects(section string, userSkills []string, catalog *types.RoleCatalog) []types.ProjectAnalysis {
	results := make([]types.ProjectAnalysis, 0)
	if strings.TrimSpace(section) == "" {
		return results
	}

	for i, entry := range entries.SplitProjects(section) {
		results = append(results, analyzeProject(i, entry, userSkills, catalog))
	}
	return results
}

func analyzeProject(idx int, entry string, userSkills []string, catalog *types.RoleCatalog) types.ProjectAnalysis {
	title, description := entries.ParseProjectTitle(entry)
	lower := strings.ToLower(entry)
	stack := skills.Mentioned(entry, userSkills)
	role := inferProjectRole(lower)

	name := title
	if len([]rune(title)) <= minNamedTitleLength {
		name = fmt.Sprintf("Project %d", idx+1)
	}

	score := ProjectScore(len(stack), impactKeywords.in(lower), methodologyKeywords.in(lower), role != RoleContributor)

	return types.ProjectAnalysis{
		Name:          name,
		Summary:       projectSummary(lower, len(stack)),
		Description:   truncateDescription(description),
		Advantages:    projectAdvantages(lower, stack),
		Disadvantages: projectDisadvantages(lower),
		Relevance:     relevantRoles(lower, stack, catalog),
		TechStack:     stack,
		Role:          role,
		Score:         score,
		Tier:          TierFor(score),
	}
}

// ProjectScore combines the scoring signals of a project. The result is capped at 100.
func ProjectScore(skillCount int, hasImpact, hasMethodology, hasRole bool) int {
	score := baseProjectScore + min(skillCount*pointsPerSkill, maxSkillPoints)
	if hasImpact {
		score += impactPoints
	}
	if hasMethodology {
		score += methodologyPoints
	}
	if hasRole {
		score += rolePoints
	}
	return min(score, maxProjectScore)
}

// TierFor maps a project score to its tier.
func TierFor(score int) types.Tier {
	switch {
	case score >= 90:
		return types.TierS
	case score >= 85:
		return types.TierA
	case score >= 75:
		return types.TierB
	default:
		return types.TierC
	}
}

func projectSummary(lower string, skillCount int) string {
	switch {
	case apiKeywords.in(lower):
		return "API-driven backend system."
	case frontendKeywords.in(lower):
		return "Frontend user interface application."
	case dataKeywords.in(lower):
		return "Data science / ML implementation."
	default:
		return fmt.Sprintf("A %d-tech stack project.", skillCount)
	}
}

func projectAdvantages(lower string, stack []string) []string {
	var adv []string
	if len(stack) >= strongStackSkills {
		adv = append(adv, fmt.Sprintf("Strong Tech Stack: Integrates %s.", strings.Join(stack[:strongStackSkills], ", ")))
	}
	if userKeywords.in(lower) {
		adv = append(adv, "User-Centric: Addresses real-world user needs.")
	}
	if performanceKeywords.in(lower) {
		adv = append(adv, "Performance: Focus on efficiency and optimization.")
	}
	if securityKeywords.in(lower) {
		adv = append(adv, "Security: Implements security best practices.")
	}
	if len(adv) == 0 {
		adv = append(adv, "Solid technical implementation.")
	}
	return adv
}

func projectDisadvantages(lower string) []string {
	dis := make([]string, 0, 3)
	if !testingKeywords.in(lower) {
		dis = append(dis, "No testing strategy mentioned (Unit/Integration tests).")
	}
	if !deploymentKeywords.in(lower) {
		dis = append(dis, "Deployment status unclear (is it live?).")
	}
	if !metricKeywords.in(lower) {
		dis = append(dis, "Lacks quantifiable impact metrics (e.g., 'improved X by Y%').")
	}
	return dis
}

func inferProjectRole(lower string) string {
	switch {
	case leadKeywords.in(lower):
		return RoleLead
	case architectKeywords.in(lower):
		return RoleArchitect
	case supportKeywords.in(lower):
		return RoleSupport
	default:
		return RoleContributor
	}
}

// relevantRoles returns up to three catalog roles sharing a skill with the
// project, ordered by how many of their required skills appear as words in
// the entry. Ties keep catalog order.
func relevantRoles(lower string, stack []string, catalog *types.RoleCatalog) []string {
	out := make([]string, 0, maxRelevantRoles)
	if len(stack) == 0 {
		return out
	}

	projectSkills := skills.NewSet(stack...)
	words := skills.NewSet(strings.Fields(lower)...)

	type candidate struct {
		name    string
		overlap int
	}
	var candidates []candidate

	for _, role := range catalog.Roles() {
		shares := false
		overlap := 0
		for _, req := range role.RequiredSkills {
			if projectSkills.Contains(req) {
				shares = true
			}
			if words.Contains(req) {
				overlap++
			}
		}
		if shares {
			candidates = append(candidates, candidate{name: role.Name, overlap: overlap})
		}
	}

	sort.SliceStable(candidates, func(i, j int) bool {
		return candidates[i].overlap > candidates[j].overlap
	})

	for i := 0; i < len(candidates) && i < maxRelevantRoles; i++ {
		out = append(out, candidates[i].name)
	}
	return out
}

func truncateDescription(s string) string {
	r := []rune(s)
	if len(r) <= maxDescriptionRunes {
		return s
	}
	return string(r[:maxDescriptionRunes]) + "..."
}
