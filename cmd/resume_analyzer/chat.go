package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/manifoldco/promptui"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/jonathan/resume-analyzer/internal/catalog"
	"github.com/jonathan/resume-analyzer/internal/coach"
	"github.com/jonathan/resume-analyzer/internal/types"
)

var chatCmd = &cobra.Command{
	Use:   "chat",
	Short: "Talk to the offline career coach",
	Long: `Start an interactive session with the offline career coach. With --analysis the
coach answers in the context of a saved analysis (the JSON printed by analyze).
Type "exit" or press Ctrl+C to leave. --message answers a single question and exits.`,
	Args: cobra.NoArgs,
	RunE: runChat,
}

var (
	chatAnalysisFile string
	chatMessage      string
)

var errExit = errors.New("exit requested")

func init() {
	chatCmd.Flags().StringVarP(&chatAnalysisFile, "analysis", "a", "", "analysis JSON written by analyze")
	chatCmd.Flags().StringVarP(&chatMessage, "message", "m", "", "answer one message and exit")
	chatCmd.Flags().String("knowledge", "", "career knowledge base file (JSON or YAML; default is the built-in one)")

	rootCmd.AddCommand(chatCmd)
}

func runChat(cmd *cobra.Command, _ []string) error {
	kb, err := catalog.LoadKnowledge(appConfig.Data.Knowledge)
	if err != nil {
		return fmt.Errorf("failed to load knowledge base: %w", err)
	}
	opts := []coach.Option{coach.WithLogger(appLogger)}
	if cat, err := catalog.LoadRoleCatalog(appConfig.Data.Catalog); err != nil {
		appLogger.Warn("role catalog unavailable; coach uses the knowledge base only", zap.Error(err))
	} else {
		opts = append(opts, coach.WithCatalog(cat))
	}
	c := coach.New(kb, opts...)

	analysis, err := loadAnalysis(chatAnalysisFile)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if chatMessage != "" {
		_, _ = fmt.Fprintln(out, c.Reply(chatMessage, analysis))
		return nil
	}

	_, _ = fmt.Fprintln(out, c.Reply("hello", analysis))
	for {
		message, err := promptMessage()
		if err != nil {
			if errors.Is(err, errExit) {
				return nil
			}
			return err
		}
		resp := c.Respond(message, analysis)
		_, _ = fmt.Fprintf(out, "\n[%s] Coach:\n%s\n\n", resp.Timestamp, resp.Reply)
	}
}

// promptMessage reads one non-empty message. It returns errExit when the
// user asks to leave.
func promptMessage() (string, error) {
	prompt := promptui.Prompt{
		Label: "You",
		Validate: func(input string) error {
			if strings.TrimSpace(input) == "" {
				return errors.New("message is required")
			}
			return nil
		},
	}

	message, err := prompt.Run()
	if err != nil {
		if errors.Is(err, promptui.ErrInterrupt) || errors.Is(err, promptui.ErrEOF) {
			return "", errExit
		}
		return "", err
	}

	message = strings.TrimSpace(message)
	switch strings.ToLower(message) {
	case "exit", "quit", "bye":
		return "", errExit
	}
	return message, nil
}

// loadAnalysis reads a saved analysis. An empty path returns nil.
func loadAnalysis(path string) (*types.AnalysisResult, error) {
	if path == "" {
		return nil, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read analysis: %w", err)
	}
	var result types.AnalysisResult
	if err := json.Unmarshal(data, &result); err != nil {
		return nil, fmt.Errorf("failed to parse analysis %s: %w", path, err)
	}
	return &result, nil
}
