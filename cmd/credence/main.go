package main

import (
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"credence/internal/buildconfig"
	"credence/internal/config"
)

var rootCmd = &cobra.Command{
	Use:   "credence",
	Short: "Bayesian text classification over folders",
	Long: `credence classifies files by naive Bayes over word events, training on
the files already sorted into class folders.`,
	SilenceUsage: true,
}

func main() {
	_ = config.Load()

	rootCmd.Version = buildconfig.String()

	rootCmd.AddCommand(classifyCmd)
	rootCmd.AddCommand(sortCmd)
	rootCmd.AddCommand(versionCmd)

	rootCmd.PersistentFlags().String("config", "", "TOML run file with priors and overrides")
	rootCmd.PersistentFlags().Float64("cutoff", 0, "minimum posterior probability for a decision")
	rootCmd.PersistentFlags().Bool("quiet", false, "suppress log output")

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// newLogger builds the process logger from LOG_LEVEL, or a no-op logger
// under --quiet.
func newLogger(quiet bool) *zap.Logger {
	if quiet {
		return zap.NewNop()
	}
	level, err := zapcore.ParseLevel(config.LogLevel())
	if err != nil {
		level = zapcore.InfoLevel
	}
	cfg := zap.NewProductionConfig()
	cfg.Level = zap.NewAtomicLevelAt(level)
	logger, err := cfg.Build()
	if err != nil {
		return zap.NewNop()
	}
	return logger
}

// runSettings resolves the effective floor, cutoff and priors from env
// config, the optional TOML run file and command flags, in that order.
type runSettings struct {
	floor  float64
	cutoff float64
	priors map[string]float64
}

func resolveSettings(cmd *cobra.Command) (*runSettings, error) {
	settings := &runSettings{
		floor:  config.SmoothingFloor(),
		cutoff: config.DecisionCutoff(),
	}

	path, err := cmd.Root().PersistentFlags().GetString("config")
	if err != nil {
		return nil, err
	}
	if path != "" {
		rf, err := config.LoadRunFile(path)
		if err != nil {
			return nil, err
		}
		if rf.SmoothingFloor > 0 {
			settings.floor = rf.SmoothingFloor
		}
		if rf.Cutoff > 0 {
			settings.cutoff = rf.Cutoff
		}
		settings.priors = rf.Priors
	}

	if cmd.Root().PersistentFlags().Changed("cutoff") {
		cutoff, err := cmd.Root().PersistentFlags().GetFloat64("cutoff")
		if err != nil {
			return nil, err
		}
		settings.cutoff = cutoff
	}
	return settings, nil
}
