package config

import (
	"fmt"

	"github.com/BurntSushi/toml"
)

// RunFile carries per-invocation classification settings loaded from a TOML
// file: class priors keyed by folder path, and optional overrides for the
// smoothing floor and decision cutoff.
type RunFile struct {
	Priors         map[string]float64 `toml:"priors"`
	SmoothingFloor float64            `toml:"smoothing_floor"`
	Cutoff         float64            `toml:"cutoff"`
}

// LoadRunFile decodes path into a RunFile.
func LoadRunFile(path string) (*RunFile, error) {
	var rf RunFile
	meta, err := toml.DecodeFile(path, &rf)
	if err != nil {
		return nil, fmt.Errorf("decoding run file %s: %w", path, err)
	}
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		return nil, fmt.Errorf("run file %s has unknown keys: %v", path, undecoded)
	}
	return &rf, nil
}
