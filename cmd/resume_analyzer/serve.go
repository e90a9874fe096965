package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jonathan/resume-analyzer/internal/catalog"
	"github.com/jonathan/resume-analyzer/internal/coach"
	"github.com/jonathan/resume-analyzer/internal/server"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the REST API server",
	Long: `Start an HTTP server exposing /api/upload, /api/analyze, /api/chat and
/api/health. Requests require a bearer token (see the token command) when
auth.jwt-secret is configured.`,
	Args: cobra.NoArgs,
	RunE: runServe,
}

func init() {
	serveCmd.Flags().String("host", "0.0.0.0", "Address to listen on")
	serveCmd.Flags().Int("port", 5000, "Port to listen on")
	serveCmd.Flags().String("cors-origin", "*", "Allowed CORS origin")
	serveCmd.Flags().Int("top", 5, "number of job matches returned by /api/analyze")
	serveCmd.Flags().String("knowledge", "", "career knowledge base file (JSON or YAML; default is the built-in one)")

	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, _ []string) error {
	engine := loadEngine()

	kb, err := catalog.LoadKnowledge(appConfig.Data.Knowledge)
	if err != nil {
		return fmt.Errorf("failed to load knowledge base: %w", err)
	}

	srv := server.New(appConfig, engine, coach.New(kb, coach.WithCatalog(engine.Context().Catalog), coach.WithLogger(appLogger)), appLogger)
	return srv.Start(cmd.Context())
}
