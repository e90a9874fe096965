package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/jonathan/resume-analyzer/internal/analysis"
	"github.com/jonathan/resume-analyzer/internal/config"
	"github.com/jonathan/resume-analyzer/internal/logger"
)

// Output formats of analyze and match-jobs.
const (
	formatJSON = "json"
	formatText = "text"
)

var (
	cfgFile string

	// Set by the root pre-run for every subcommand.
	appConfig *config.Config
	appLogger *zap.Logger
)

// flagKeys maps command-line flags onto configuration keys.
var flagKeys = map[string]string{
	"log-json":    "log.json",
	"debug":       "log.debug",
	"taxonomy":    "data.taxonomy",
	"catalog":     "data.catalog",
	"model":       "data.model",
	"knowledge":   "data.knowledge",
	"top":         "analysis.top-matches",
	"workers":     "analysis.workers",
	"host":        "server.host",
	"port":        "server.port",
	"cors-origin": "server.cors-origin",
}

var rootCmd = &cobra.Command{
	Use:           "resume_analyzer",
	Short:         "Offline résumé analyzer and job-role matcher",
	Long:          "resume_analyzer extracts skills, projects and internships from a résumé, scores it against a catalog of job roles and offers an offline career coach, from the command line or over a REST API.",
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
		v := viper.New()
		for flag, key := range flagKeys {
			if f := cmd.Flag(flag); f != nil {
				if err := v.BindPFlag(key, f); err != nil {
					return fmt.Errorf("binding flag %s: %w", flag, err)
				}
			}
		}

		cfg, err := config.Load(v, cfgFile)
		if err != nil {
			return err
		}

		log, err := logger.New(cfg.Log.JSON, cfg.Log.Debug)
		if err != nil {
			return fmt.Errorf("failed to create logger: %w", err)
		}

		appConfig = cfg
		appLogger = log
		return nil
	},
	PersistentPostRun: func(_ *cobra.Command, _ []string) {
		if appLogger != nil {
			_ = appLogger.Sync()
		}
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is "+config.DefaultConfigName+" in current directory)")
	rootCmd.PersistentFlags().BoolP("debug", "d", false, "verbose/debug output")
	rootCmd.PersistentFlags().BoolP("log-json", "j", false, "json format for logging")
	rootCmd.PersistentFlags().String("taxonomy", "", "skill taxonomy file (JSON or YAML; default is the built-in taxonomy)")
	rootCmd.PersistentFlags().String("catalog", "", "job role catalog file (JSON or YAML; default is the built-in catalog)")
	rootCmd.PersistentFlags().String("model", "", "TF-IDF model file written by build-model (optional)")
}

// loadEngine builds the analysis engine from the configured data files.
func loadEngine() *analysis.Engine {
	ctx := analysis.LoadContext(analysis.Sources{
		TaxonomyPath: appConfig.Data.Taxonomy,
		CatalogPath:  appConfig.Data.Catalog,
		ModelPath:    appConfig.Data.Model,
	}, appLogger)
	return analysis.NewEngine(ctx,
		analysis.WithTopMatches(appConfig.Analysis.TopMatches),
		analysis.WithLogger(appLogger))
}

// writeJSON writes v as indented JSON to path, or to w when path is empty.
func writeJSON(w io.Writer, path string, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal output: %w", err)
	}
	data = append(data, '\n')

	if path == "" {
		_, err = w.Write(data)
		return err
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write output file: %w", err)
	}
	return nil
}

func checkFormat(format string) error {
	switch format {
	case formatJSON, formatText:
		return nil
	default:
		return fmt.Errorf("unknown output format %q (want %s or %s)", format, formatJSON, formatText)
	}
}
