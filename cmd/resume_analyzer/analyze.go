package main

import (
	"context"
	"fmt"
	"net/url"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/jonathan/resume-analyzer/internal/analysis"
	"github.com/jonathan/resume-analyzer/internal/fetch"
	"github.com/jonathan/resume-analyzer/internal/ingestion"
	"github.com/jonathan/resume-analyzer/internal/logger"
	"github.com/jonathan/resume-analyzer/internal/observability"
	"github.com/jonathan/resume-analyzer/internal/types"
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze <resume-file|url>...",
	Short: "Analyze one or more résumé files",
	Long: `Extract skills, rank job roles and review the projects and internships of each résumé.
Supported formats are .txt, .md, .pdf, .docx and .html. Arguments starting with
http:// or https:// are downloaded first. With a single file the
analysis is printed as JSON; with several files a JSON array is printed, or one
<name>.analysis.json per file is written when --out is a directory.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runAnalyze,
}

var (
	analyzeTargetRole string
	analyzeOut        string
	analyzeFormat     string
)

// fileAnalysis is the result of analyzing one file.
type fileAnalysis struct {
	File   string                `json:"file"`
	Result *types.AnalysisResult `json:"result"`
}

func init() {
	analyzeCmd.Flags().StringVarP(&analyzeTargetRole, "target-role", "t", "", "job role to prioritize in the matches")
	analyzeCmd.Flags().StringVarP(&analyzeOut, "out", "o", "", "output file (single résumé) or directory (several résumés)")
	analyzeCmd.Flags().StringVarP(&analyzeFormat, "format", "f", formatJSON, "output format: json or text")
	analyzeCmd.Flags().Int("top", analysis.DefaultTopMatches, "number of job matches to keep")
	analyzeCmd.Flags().Int("workers", 4, "résumés analyzed concurrently")

	rootCmd.AddCommand(analyzeCmd)
}

func runAnalyze(cmd *cobra.Command, args []string) error {
	if err := checkFormat(analyzeFormat); err != nil {
		return err
	}

	engine := loadEngine()
	results, err := analyzeFiles(cmd.Context(), engine, args, analyzeTargetRole, appConfig.Analysis.Workers)
	if err != nil {
		return err
	}

	if analyzeFormat == formatText && analyzeOut == "" {
		printer := observability.NewPrinter(cmd.OutOrStdout())
		for _, r := range results {
			if len(results) > 1 {
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "\n%s\n", r.File)
			}
			printer.PrintAnalysis(r.Result)
		}
		return nil
	}

	if len(results) == 1 {
		return writeJSON(cmd.OutOrStdout(), analyzeOut, results[0].Result)
	}
	if analyzeOut == "" {
		return writeJSON(cmd.OutOrStdout(), "", results)
	}

	names := outputNames(results)
	for i, r := range results {
		path := filepath.Join(analyzeOut, names[i])
		if err := writeJSON(cmd.OutOrStdout(), path, r.Result); err != nil {
			return err
		}
		_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s\n", path)
	}
	return nil
}

// outputNames returns one "<name>.analysis.json" file name per result. Inputs
// sharing a base name get their 1-based position appended, so a/cv.pdf and
// b/cv.pdf become cv-1.analysis.json and cv-2.analysis.json.
func outputNames(results []fileAnalysis) []string {
	bases := make([]string, len(results))
	counts := make(map[string]int, len(results))
	for i, r := range results {
		bases[i] = strings.TrimSuffix(filepath.Base(r.File), filepath.Ext(r.File))
		counts[bases[i]]++
	}

	names := make([]string, len(results))
	for i, base := range bases {
		if counts[base] > 1 {
			base = fmt.Sprintf("%s-%d", base, i+1)
		}
		names[i] = base + ".analysis.json"
	}
	return names
}

// analyzeFiles analyzes paths with at most workers running at once. Results
// keep the order of paths; the first failure cancels the remaining files.
func analyzeFiles(ctx context.Context, engine *analysis.Engine, paths []string, targetRole string, workers int) ([]fileAnalysis, error) {
	if ctx == nil {
		ctx = context.Background()
	}
	log := logger.Component(appLogger, "analyze")
	results := make([]fileAnalysis, len(paths))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(max(1, workers))
	for i, path := range paths {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}

			text, meta, err := ingestSource(gctx, path)
			if err != nil {
				return fmt.Errorf("%s: %w", path, err)
			}
			if n := len([]rune(strings.TrimSpace(text))); n < types.MinResumeLength {
				return fmt.Errorf("%s: resume text is too short (%d characters, need at least %d)", path, n, types.MinResumeLength)
			}

			result := engine.Analyze(text, targetRole)
			log.Info("analyzed résumé",
				zap.String(logger.FieldPath, path),
				zap.String("hash", meta.Hash),
				zap.Int("skills", len(result.Skills)),
				zap.Int("job_matches", len(result.JobMatches)))

			results[i] = fileAnalysis{File: path, Result: result}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

// ingestSource reads a local file, or downloads source when it is a URL.
func ingestSource(ctx context.Context, source string) (string, *ingestion.Metadata, error) {
	if !fetch.IsURL(source) {
		return ingestion.IngestFromFile(source)
	}

	res, err := fetch.URL(ctx, source, fetch.DefaultOptions())
	if err != nil {
		return "", nil, err
	}
	name := source
	if u, err := url.Parse(source); err == nil {
		name = u.Path
	}
	format, err := ingestion.FormatFromContentType(res.ContentType, name)
	if err != nil {
		return "", nil, err
	}
	return ingestion.IngestBytes(source, format, res.Body)
}
