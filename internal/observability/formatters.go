// Package observability provides human-readable report output for the CLI.
package observability

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/jonathan/resume-analyzer/internal/types"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 72
	// maxItemsToShow is the default number of items to display in lists
	maxItemsToShow = 5
)

// Printer handles formatted text reports.
type Printer struct {
	out io.Writer
}

// NewPrinter creates a new Printer that writes to the given writer
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

// truncate shortens s to at most n runes, ending in "..." when cut.
func truncate(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n-3]) + "..."
}

// printBox prints a formatted box with a title and content
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) printBox(title string, content string) {
	border := strings.Repeat("─", boxWidth-2)
	fmt.Fprintf(p.out, "┌%s┐\n", border)
	fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, truncate(title, boxWidth-4))
	fmt.Fprintf(p.out, "├%s┤\n", border)

	for _, line := range strings.Split(content, "\n") {
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, truncate(line, boxWidth-4))
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// PrintAnalysis outputs every part of an analysis result.
func (p *Printer) PrintAnalysis(result *types.AnalysisResult) {
	if result == nil {
		return
	}
	p.PrintSummary(result)
	p.PrintSkills(result)
	p.PrintJobMatches(result.JobMatches)
	p.PrintProjects(result.ProjectAnalysis)
	p.PrintInternships(result.InternshipAnalysis)
	p.PrintRecommendations(result.Recommendations)
}

// PrintSummary outputs the summary sentence and the education line.
func (p *Printer) PrintSummary(result *types.AnalysisResult) {
	var sb strings.Builder
	sb.WriteString(wrap(result.Summary, boxWidth-4))
	sb.WriteString("\n\nEducation:\n")
	for _, line := range strings.Split(result.Education, "\n") {
		sb.WriteString(fmt.Sprintf("  %s\n", line))
	}
	p.printBox("RÉSUMÉ SUMMARY", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintSkills outputs the extracted skills grouped by category, in the
// category order of the flat skill list.
func (p *Printer) PrintSkills(result *types.AnalysisResult) {
	if len(result.Skills) == 0 {
		p.printBox("SKILLS", "No known skills found")
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Found %d skills\n\n", len(result.Skills)))

	categories := make([]string, 0, len(result.CategorizedSkills))
	for category := range result.CategorizedSkills {
		categories = append(categories, category)
	}
	sort.Strings(categories)

	seen := make(map[string]bool)
	for _, skill := range result.Skills {
		for _, category := range categories {
			list := result.CategorizedSkills[category]
			if seen[category] || !contains(list, skill) {
				continue
			}
			seen[category] = true
			sb.WriteString(fmt.Sprintf("%s:\n", category))
			for _, line := range strings.Split(wrap(strings.Join(list, ", "), boxWidth-6), "\n") {
				sb.WriteString(fmt.Sprintf("  %s\n", line))
			}
		}
	}

	p.printBox("SKILLS", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintJobMatches outputs the ranked job matches with scores and missing skills.
func (p *Printer) PrintJobMatches(matches []types.MatchResult) {
	if len(matches) == 0 {
		p.printBox("JOB MATCHES", "No job roles matched")
		return
	}

	var sb strings.Builder
	for i, m := range matches {
		title := m.JobTitle
		if m.IsTarget {
			title += " (target)"
		}
		sb.WriteString(fmt.Sprintf("#%d  %s\n", i+1, title))
		sb.WriteString(fmt.Sprintf("    Score: %.1f%%", m.Score))
		if m.VectorScore != nil {
			sb.WriteString(fmt.Sprintf(" (similarity: %.1f%%)", *m.VectorScore))
		}
		sb.WriteString("\n")
		if len(m.MatchedSkills) > 0 {
			sb.WriteString(fmt.Sprintf("    Matched: %s\n", truncate(strings.Join(m.MatchedSkills, ", "), 50)))
		}
		if len(m.MissingSkills) > 0 {
			sb.WriteString(fmt.Sprintf("    Missing: %s\n", truncate(strings.Join(m.MissingSkills, ", "), 50)))
		}
		if i < len(matches)-1 {
			sb.WriteString("\n")
		}
	}

	p.printBox("JOB MATCHES", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintProjects outputs the project reviews.
func (p *Printer) PrintProjects(projects []types.ProjectAnalysis) {
	if len(projects) == 0 {
		return
	}

	var sb strings.Builder
	count := min(len(projects), maxItemsToShow)
	for i := 0; i < count; i++ {
		project := projects[i]
		sb.WriteString(fmt.Sprintf("%s  [Tier %s, %d/100]\n", project.Name, project.Tier, project.Score))
		if project.Role != "" {
			sb.WriteString(fmt.Sprintf("  Fits: %s\n", project.Role))
		}
		if len(project.TechStack) > 0 {
			sb.WriteString(fmt.Sprintf("  Stack: %s\n", truncate(strings.Join(project.TechStack, ", "), 55)))
		}
		for _, adv := range project.Advantages {
			sb.WriteString(fmt.Sprintf("  + %s\n", adv))
		}
		for _, dis := range project.Disadvantages {
			sb.WriteString(fmt.Sprintf("  - %s\n", dis))
		}
		if i < count-1 {
			sb.WriteString("\n")
		}
	}

	if len(projects) > maxItemsToShow {
		sb.WriteString(fmt.Sprintf("\n... and %d more projects", len(projects)-maxItemsToShow))
	}

	p.printBox("PROJECTS", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintInternships outputs the internship and training entries.
func (p *Printer) PrintInternships(internships []types.InternshipAnalysis) {
	if len(internships) == 0 {
		return
	}

	var sb strings.Builder
	for i, in := range internships {
		sb.WriteString(fmt.Sprintf("%s: %s", in.Type, in.Role))
		if in.Company != "" {
			sb.WriteString(fmt.Sprintf(" @ %s", in.Company))
		}
		sb.WriteString("\n")
		if len(in.SkillsUsed) > 0 {
			sb.WriteString(fmt.Sprintf("  Skills: %s\n", truncate(strings.Join(in.SkillsUsed, ", "), 55)))
		}
		if i < len(internships)-1 {
			sb.WriteString("\n")
		}
	}

	p.printBox("INTERNSHIPS & TRAINING", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintRecommendations outputs the recommendations as a bullet list.
func (p *Printer) PrintRecommendations(recommendations []string) {
	if len(recommendations) == 0 {
		return
	}

	var sb strings.Builder
	for _, r := range recommendations {
		lines := strings.Split(wrap(r, boxWidth-8), "\n")
		sb.WriteString(fmt.Sprintf("• %s\n", lines[0]))
		for _, l := range lines[1:] {
			sb.WriteString(fmt.Sprintf("  %s\n", l))
		}
	}

	p.printBox("RECOMMENDATIONS", strings.TrimSuffix(sb.String(), "\n"))
}

// wrap breaks s into lines of at most width runes at word boundaries.
func wrap(s string, width int) string {
	words := strings.Fields(s)
	if len(words) == 0 {
		return ""
	}

	var lines []string
	line := words[0]
	for _, w := range words[1:] {
		if len([]rune(line))+1+len([]rune(w)) > width {
			lines = append(lines, line)
			line = w
			continue
		}
		line += " " + w
	}
	lines = append(lines, line)
	return strings.Join(lines, "\n")
}

func contains(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}
