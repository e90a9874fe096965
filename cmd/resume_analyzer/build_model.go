package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/jonathan/resume-analyzer/internal/catalog"
	"github.com/jonathan/resume-analyzer/internal/ranking"
)

var buildModelCmd = &cobra.Command{
	Use:   "build-model",
	Short: "Fit the TF-IDF role model on the job role catalog",
	Long: `Fit a TF-IDF vectorizer on the required skills of every catalog role and write
the model artifact. Pass the artifact to --model (or data.model in the config
file) to attach vector similarity scores to job matches.`,
	Args: cobra.NoArgs,
	RunE: runBuildModel,
}

var buildModelOut string

func init() {
	buildModelCmd.Flags().StringVarP(&buildModelOut, "out", "o", "", "path of the model file to write (required)")

	if err := buildModelCmd.MarkFlagRequired("out"); err != nil {
		panic(fmt.Sprintf("failed to mark out flag as required: %v", err))
	}

	rootCmd.AddCommand(buildModelCmd)
}

func runBuildModel(cmd *cobra.Command, _ []string) error {
	roles, err := catalog.LoadRoleCatalog(appConfig.Data.Catalog)
	if err != nil {
		return fmt.Errorf("failed to load role catalog: %w", err)
	}
	if roles.Len() == 0 {
		return fmt.Errorf("role catalog is empty")
	}

	model := ranking.FitVectorModel(roles)

	if err := os.MkdirAll(filepath.Dir(buildModelOut), 0755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}
	if err := catalog.SaveModel(buildModelOut, model); err != nil {
		return err
	}

	appLogger.Info("model written",
		zap.String("path", buildModelOut),
		zap.Int("roles", len(model.RoleNames)),
		zap.Int("vocabulary", len(model.Vocabulary)))
	_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Model written to %s (%d roles, %d terms)\n",
		buildModelOut, len(model.RoleNames), len(model.Vocabulary))
	return nil
}
