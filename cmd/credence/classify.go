package main

import (
	"fmt"
	"os"
	"os/signal"
	"sort"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"credence/internal/classify"
	"credence/internal/config"
	"credence/internal/corpus"
)

var classifyCmd = &cobra.Command{
	Use:   "classify <file> <folder>...",
	Short: "Classify one file against class folders",
	Long: `Classify reads every file already inside each class folder as training
data, then reports which folder the given file most likely belongs to.`,
	Args: cobra.MinimumNArgs(2),
	RunE: runClassify,
}

func runClassify(cmd *cobra.Command, args []string) error {
	quiet, _ := cmd.Root().PersistentFlags().GetBool("quiet")
	logger := newLogger(quiet)
	defer func() { _ = logger.Sync() }()

	settings, err := resolveSettings(cmd)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
	defer stop()

	svc := classify.NewService(logger,
		classify.WithSmoothingFloor(settings.floor),
		classify.WithCutoff(settings.cutoff))
	source := corpus.NewSource(logger, config.MaxConcurrency())
	sorter := corpus.NewSorter(source, svc, logger, corpus.WithPriors(settings.priors))

	result, err := sorter.ClassifyFile(ctx, args[0], args[1:])
	if err != nil {
		return err
	}

	printPosterior(result)
	if !result.Decided() {
		color.Yellow("no decision (cutoff %.2f)", settings.cutoff)
		return nil
	}
	color.Green("%s -> %s", args[0], result.Label)
	return nil
}

func printPosterior(result *classify.Result) {
	labels := result.Posterior.Labels()
	sort.Strings(labels)
	for _, label := range labels {
		p, err := result.Posterior.Get(label)
		if err != nil {
			continue
		}
		fmt.Printf("  %-30s %6.2f%%\n", label, p*100)
	}
}
