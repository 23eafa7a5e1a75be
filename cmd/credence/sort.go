package main

import (
	"os"
	"os/signal"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"credence/internal/classify"
	"credence/internal/config"
	"credence/internal/corpus"
)

var sortCmd = &cobra.Command{
	Use:   "sort <folder>...",
	Short: "File loose files into matching subfolders",
	Long: `Sort classifies every loose file directly under each folder against the
folder's subfolders and moves it into the best match. Files whose
destination already exists are left alone.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runSort,
}

func init() {
	sortCmd.Flags().Bool("dry-run", false, "classify without moving anything")
}

func runSort(cmd *cobra.Command, args []string) error {
	quiet, _ := cmd.Root().PersistentFlags().GetBool("quiet")
	logger := newLogger(quiet)
	defer func() { _ = logger.Sync() }()

	settings, err := resolveSettings(cmd)
	if err != nil {
		return err
	}
	dryRun, err := cmd.Flags().GetBool("dry-run")
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
	defer stop()

	svc := classify.NewService(logger,
		classify.WithSmoothingFloor(settings.floor),
		classify.WithCutoff(settings.cutoff))
	source := corpus.NewSource(logger, config.MaxConcurrency())
	sorter := corpus.NewSorter(source, svc, logger,
		corpus.WithPriors(settings.priors),
		corpus.WithDryRun(dryRun))

	for _, folder := range args {
		moves, err := sorter.SortFolder(ctx, folder)
		for _, move := range moves {
			switch {
			case move.Dest == "":
				color.Yellow("? %s (no decision)", move.Path)
			case move.Skipped:
				color.Yellow("- %s (kept, %s)", move.Path, move.Dest)
			default:
				color.Green("+ %s -> %s", move.Path, move.Dest)
			}
		}
		if err != nil {
			return err
		}
	}
	return nil
}
