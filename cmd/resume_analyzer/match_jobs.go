package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/jonathan/resume-analyzer/internal/analysis"
	"github.com/jonathan/resume-analyzer/internal/observability"
	"github.com/jonathan/resume-analyzer/internal/ranking"
	"github.com/jonathan/resume-analyzer/internal/types"
)

var matchJobsCmd = &cobra.Command{
	Use:   "match-jobs",
	Short: "Score a list of skills against the job role catalog",
	Long: `Rank every role in the catalog by how well the given skills cover its required
skills, and print the top matches as JSON.`,
	Example: `  resume_analyzer match-jobs --skills "Python,SQL,Pandas" --target-role "Data Scientist"`,
	Args:    cobra.NoArgs,
	RunE:    runMatchJobs,
}

var (
	matchSkills     string
	matchTargetRole string
	matchFormat     string
)

func init() {
	matchJobsCmd.Flags().StringVarP(&matchSkills, "skills", "s", "", "comma-separated skills (required)")
	matchJobsCmd.Flags().StringVarP(&matchTargetRole, "target-role", "t", "", "job role to prioritize in the matches")
	matchJobsCmd.Flags().StringVarP(&matchFormat, "format", "f", formatJSON, "output format: json or text")
	matchJobsCmd.Flags().Int("top", analysis.DefaultTopMatches, "number of job matches to print")

	if err := matchJobsCmd.MarkFlagRequired("skills"); err != nil {
		panic(fmt.Sprintf("failed to mark skills flag as required: %v", err))
	}

	rootCmd.AddCommand(matchJobsCmd)
}

func runMatchJobs(cmd *cobra.Command, _ []string) error {
	if err := checkFormat(matchFormat); err != nil {
		return err
	}
	userSkills := splitSkills(matchSkills)
	if len(userSkills) == 0 {
		return fmt.Errorf("no skills given")
	}

	ctx := loadEngine().Context()
	matches := ranking.Top(ctx.Scorer.Match(userSkills, matchTargetRole), appConfig.Analysis.TopMatches)
	if matches == nil {
		matches = []types.MatchResult{}
	}
	if matchFormat == formatText {
		observability.NewPrinter(cmd.OutOrStdout()).PrintJobMatches(matches)
		return nil
	}
	return writeJSON(cmd.OutOrStdout(), "", matches)
}

// splitSkills splits a comma-separated list, dropping blanks and repeats.
func splitSkills(list string) []string {
	var out []string
	seen := make(map[string]bool)
	for _, s := range strings.Split(list, ",") {
		s = strings.TrimSpace(s)
		key := strings.ToLower(s)
		if s == "" || seen[key] {
			continue
		}
		seen[key] = true
		out = append(out, s)
	}
	return out
}
