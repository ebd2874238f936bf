package main

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/croberts/resume-builder/internal/config"
	"github.com/croberts/resume-builder/internal/observability"
)

var matchCmd = &cobra.Command{
	Use:   "match",
	Short: "Match stored accomplishments against a job description",
	Long:  "Extracts keywords from a configured or free-text job description and prints the accomplishments that mention any of them.",
	RunE:  runMatch,
}

var (
	matchJD      string
	matchText    string
	matchVerbose bool
)

func init() {
	matchCmd.Flags().StringVar(&matchJD, "jd", "", "Configured job description key")
	matchCmd.Flags().StringVar(&matchText, "text", "", "Free-text job description, overrides --jd")
	matchCmd.Flags().BoolVarP(&matchVerbose, "verbose", "v", false, "Print a readable summary instead of JSON")
	rootCmd.AddCommand(matchCmd)
}

func runMatch(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()
	store, err := openStore(ctx)
	if err != nil {
		return err
	}
	defer closeStore(store)

	p := newPipeline(store)
	jd, err := p.ResolveForRoute(config.RouteMatch, matchJD, matchText)
	if err != nil {
		return err
	}
	result, err := p.Match(ctx, jd)
	if err != nil {
		return fmt.Errorf("failed to match: %w", err)
	}

	if matchVerbose {
		observability.NewPrinter(cmd.OutOrStdout()).PrintMatchResult(result)
		return nil
	}

	jsonBytes, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal match result: %w", err)
	}
	_, _ = fmt.Fprintln(cmd.OutOrStdout(), string(jsonBytes))
	return nil
}
