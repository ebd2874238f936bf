package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/croberts/resume-builder/internal/experience"
)

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Replace stored resume content with a seed file",
	Long:  "Validates a JSON or YAML seed file against the seed schema, normalizes it, applies the schema and replaces every stored row in one transaction.",
	RunE:  runSeed,
}

var seedInputFile string

func init() {
	seedCmd.Flags().StringVarP(&seedInputFile, "in", "i", "", "Path to the seed JSON or YAML file (required)")

	if err := seedCmd.MarkFlagRequired("in"); err != nil {
		panic(fmt.Sprintf("failed to mark in flag as required: %v", err))
	}

	rootCmd.AddCommand(seedCmd)
}

func runSeed(cmd *cobra.Command, _ []string) error {
	seed, err := experience.LoadSeed(seedInputFile)
	if err != nil {
		return fmt.Errorf("failed to load seed: %w", err)
	}

	ctx := cmd.Context()
	store, err := openStore(ctx)
	if err != nil {
		return err
	}
	defer closeStore(store)

	if err := store.Migrate(ctx); err != nil {
		return fmt.Errorf("failed to migrate database: %w", err)
	}
	if err := store.Seed(ctx, seed); err != nil {
		return fmt.Errorf("failed to seed database: %w", err)
	}

	jobs, accomplishments := 0, 0
	for _, c := range seed.Companies {
		jobs += len(c.Jobs)
		for _, j := range c.Jobs {
			accomplishments += len(j.Accomplishments)
		}
	}

	out := cmd.OutOrStdout()
	_, _ = fmt.Fprintf(out, "Seeded %d companies, %d jobs, %d accomplishments\n", len(seed.Companies), jobs, accomplishments)
	_, _ = fmt.Fprintf(out, "Seeded %d skills, %d projects, %d education entries\n",
		len(seed.TechnicalSkills), len(seed.Projects), len(seed.Education))
	return nil
}
