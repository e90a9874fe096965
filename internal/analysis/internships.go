package analysis

import (
	"strings"

	"github.com/jonathan/resume-analyzer/internal/entries"
	"github.com/jonathan/resume-analyzer/internal/skills"
	"github.com/jonathan/resume-analyzer/internal/types"
)

const (
	minDetailLineLength   = 10
	summaryDetailLines    = 2
	maxFallbackSummary    = 150
	internshipBulletChars = "•-* "
)

// AnalyzeInternships splits an internships section into entries and describes each one.
func AnalyzeInternships(section string, userSkills []string) []types.InternshipAnalysis {
	results := make([]types.InternshipAnalysis, 0)
	if strings.TrimSpace(section) == "" {
		return results
	}

	for _, entry := range entries.SplitInternships(section) {
		lines := strings.Split(strings.ReplaceAll(entry, "\r\n", "\n"), "\n")
		firstLine := strings.TrimSpace(lines[0])
		role, company := entries.ParseRoleCompany(firstLine)

		results = append(results, types.InternshipAnalysis{
			Role:       role,
			Company:    company,
			Summary:    internshipSummary(entry, firstLine, lines[1:]),
			SkillsUsed: skills.Mentioned(entry, userSkills),
			FullText:   entry,
			Type:       entries.ClassifyInternship(entry),
		})
	}
	return results
}

// internshipSummary joins the first two detail lines, or falls back to the
// text after the header line.
func internshipSummary(entry, firstLine string, rest []string) string {
	var details []string
	for _, l := range rest {
		if t := strings.TrimSpace(l); len(t) > minDetailLineLength {
			details = append(details, strings.TrimLeft(t, internshipBulletChars))
		}
		if len(details) == summaryDetailLines {
			break
		}
	}
	if len(details) > 0 {
		return strings.Join(details, " ")
	}

	tail := strings.TrimSpace(strings.TrimPrefix(strings.TrimSpace(entry), firstLine))
	return entries.TruncateRunes(tail, maxFallbackSummary) + "..."
}
