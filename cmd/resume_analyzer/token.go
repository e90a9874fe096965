package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jonathan/resume-analyzer/internal/server"
)

var tokenCmd = &cobra.Command{
	Use:   "token",
	Short: "Mint a bearer token for the REST API",
	Long:  "Sign a token with auth.jwt-secret. The token is valid for auth.expiration-hours.",
	Args:  cobra.NoArgs,
	RunE:  runToken,
}

var tokenSubject string

func init() {
	tokenCmd.Flags().StringVar(&tokenSubject, "subject", "cli", "subject (sub claim) of the token")
	rootCmd.AddCommand(tokenCmd)
}

func runToken(cmd *cobra.Command, _ []string) error {
	if !appConfig.Auth.Enabled() {
		return fmt.Errorf("auth is disabled: set auth.jwt-secret (or RESUME_ANALYZER_AUTH_JWT_SECRET)")
	}

	token, err := server.NewJWTService(appConfig.Auth).GenerateToken(tokenSubject)
	if err != nil {
		return err
	}
	_, _ = fmt.Fprintln(cmd.OutOrStdout(), token)
	return nil
}
