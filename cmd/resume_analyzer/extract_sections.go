package main

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/jonathan/resume-analyzer/internal/entries"
	"github.com/jonathan/resume-analyzer/internal/ingestion"
	"github.com/jonathan/resume-analyzer/internal/sections"
)

var extractSectionsCmd = &cobra.Command{
	Use:   "extract-sections <resume-file>",
	Short: "Print the projects and internships sections of a résumé",
	Long: `Extract the text of a résumé, locate its projects and internships sections and
split them into entries. With --out, the cleaned text and its metadata are also
written to the given directory.`,
	Args: cobra.ExactArgs(1),
	RunE: runExtractSections,
}

var extractOutDir string

// projectEntry is one split project entry.
type projectEntry struct {
	Title       string `json:"title"`
	Description string `json:"description"`
}

// internshipEntry is one split internship or training entry.
type internshipEntry struct {
	Role    string `json:"role"`
	Company string `json:"company"`
	Type    string `json:"type"`
	Text    string `json:"text"`
}

// sectionsOutput is the JSON printed by extract-sections.
type sectionsOutput struct {
	Source             string            `json:"source"`
	ProjectsSection    string            `json:"projects_section"`
	Projects           []projectEntry    `json:"projects"`
	InternshipsSection string            `json:"internships_section"`
	Internships        []internshipEntry `json:"internships"`
}

func init() {
	extractSectionsCmd.Flags().StringVarP(&extractOutDir, "out", "o", "", "directory for the cleaned text and metadata")
	rootCmd.AddCommand(extractSectionsCmd)
}

func runExtractSections(cmd *cobra.Command, args []string) error {
	path := args[0]
	text, meta, err := ingestion.IngestFromFile(path)
	if err != nil {
		return fmt.Errorf("failed to ingest %s: %w", path, err)
	}

	if extractOutDir != "" {
		if err := ingestion.WriteOutput(extractOutDir, filepath.Base(path), text, meta); err != nil {
			return err
		}
	}

	return writeJSON(cmd.OutOrStdout(), "", splitSections(filepath.Base(path), text))
}

// splitSections locates and splits the projects and internships sections of text.
func splitSections(source, text string) sectionsOutput {
	out := sectionsOutput{
		Source:             source,
		ProjectsSection:    sections.ExtractProjects(text),
		InternshipsSection: sections.ExtractInternships(text),
		Projects:           []projectEntry{},
		Internships:        []internshipEntry{},
	}

	for _, e := range entries.SplitProjects(out.ProjectsSection) {
		title, desc := entries.ParseProjectTitle(e)
		out.Projects = append(out.Projects, projectEntry{Title: title, Description: desc})
	}
	for _, e := range entries.SplitInternships(out.InternshipsSection) {
		role, company := entries.ParseRoleCompany(firstLine(e))
		out.Internships = append(out.Internships, internshipEntry{
			Role:    role,
			Company: company,
			Type:    entries.ClassifyInternship(e),
			Text:    e,
		})
	}
	return out
}

func firstLine(entry string) string {
	line, _, _ := strings.Cut(strings.ReplaceAll(entry, "\r\n", "\n"), "\n")
	return strings.TrimSpace(line)
}
