package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Load reads the .env file specified by CREDENCE_ENV (or .env by default).
// All config is flat env vars read via os.Getenv after loading.
func Load() error {
	envFile := os.Getenv("CREDENCE_ENV")
	if envFile == "" {
		envFile = ".env"
	}

	// Missing file is fine, env vars alone still apply
	_ = godotenv.Load(envFile)

	return nil
}

// LogLevel returns the log level (debug, info, warn, error).
// Defaults to "info" if not set.
func LogLevel() string {
	level := os.Getenv("LOG_LEVEL")
	if level == "" {
		return "info"
	}
	return level
}

// SmoothingFloor returns the odds substituted for unseen (event, class)
// pairs. Defaults to 1e-6 if not set or not positive.
func SmoothingFloor() float64 {
	floor, err := strconv.ParseFloat(os.Getenv("SMOOTHING_FLOOR"), 64)
	if err != nil || floor <= 0 {
		return 1e-6
	}
	return floor
}

// DecisionCutoff returns the minimum posterior probability required for a
// classification decision. Defaults to 0.
func DecisionCutoff() float64 {
	cutoff, err := strconv.ParseFloat(os.Getenv("DECISION_CUTOFF"), 64)
	if err != nil || cutoff < 0 {
		return 0
	}
	return cutoff
}

// MaxConcurrency returns the number of corpus files read in parallel.
// Defaults to 8 if not set.
func MaxConcurrency() int {
	n, err := strconv.Atoi(os.Getenv("MAX_CONCURRENCY"))
	if err != nil || n <= 0 {
		return 8
	}
	return n
}
