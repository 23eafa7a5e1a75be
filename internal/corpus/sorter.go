package corpus

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"go.uber.org/zap"

	"credence/internal/belief"
	"credence/internal/classify"
)

// Sorter classifies loose files against folder contents and files them
// away.
type Sorter struct {
	source  *Source
	svc     *classify.Service
	logger  *zap.Logger
	extract belief.Extractor
	priors  map[string]float64
	dryRun  bool
}

type SorterOption func(*Sorter)

// WithExtractor overrides whitespace tokenization of file contents.
func WithExtractor(extract belief.Extractor) SorterOption {
	return func(s *Sorter) { s.extract = extract }
}

// WithPriors sets explicit class priors keyed by folder path.
func WithPriors(priors map[string]float64) SorterOption {
	return func(s *Sorter) { s.priors = priors }
}

// WithDryRun classifies without renaming anything.
func WithDryRun(dryRun bool) SorterOption {
	return func(s *Sorter) { s.dryRun = dryRun }
}

func NewSorter(source *Source, svc *classify.Service, logger *zap.Logger, opts ...SorterOption) *Sorter {
	s := &Sorter{
		source:  source,
		svc:     svc,
		logger:  logger,
		extract: belief.Words,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// ClassifyFile classifies the file at path into one of the class folders,
// training on the files already in them. The returned label is the folder
// path, or empty when no folder cleared the cutoff.
func (s *Sorter) ClassifyFile(ctx context.Context, path string, folders []string) (*classify.Result, error) {
	classes, err := s.source.Load(ctx, folders)
	if err != nil {
		return nil, err
	}
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	return s.svc.Discrete(string(content), classes, s.extract, s.priors)
}

// Move records the outcome for one file during SortFolder.
type Move struct {
	Path    string
	Dest    string // empty when no decision was reached
	Skipped bool   // destination existed, or dry run, or no decision
}

// SortFolder classifies every loose file directly under folder into one of
// its subfolders and renames it there. A file whose destination already
// exists is left in place rather than overwritten.
func (s *Sorter) SortFolder(ctx context.Context, folder string) ([]Move, error) {
	subfolders, files, err := Split(folder)
	if err != nil {
		return nil, err
	}
	if len(subfolders) == 0 {
		return nil, fmt.Errorf("%s: %w", folder, ErrNoSubfolders)
	}

	classes, err := s.source.Load(ctx, subfolders)
	if err != nil {
		return nil, err
	}

	moves := make([]Move, 0, len(files))
	for _, path := range files {
		if err := ctx.Err(); err != nil {
			return moves, err
		}
		content, err := os.ReadFile(path)
		if err != nil {
			return moves, fmt.Errorf("reading %s: %w", path, err)
		}
		result, err := s.svc.Discrete(string(content), classes, s.extract, s.priors)
		if err != nil {
			return moves, fmt.Errorf("classifying %s: %w", path, err)
		}
		if !result.Decided() {
			moves = append(moves, Move{Path: path, Skipped: true})
			continue
		}

		dest := filepath.Join(result.Label, filepath.Base(path))
		move := Move{Path: path, Dest: dest}
		if _, err := os.Stat(dest); err == nil {
			move.Skipped = true
		} else if s.dryRun {
			move.Skipped = true
		} else if err := os.Rename(path, dest); err != nil {
			return moves, fmt.Errorf("moving %s: %w", path, err)
		}

		s.logger.Info("sorted file",
			zap.String("run_id", result.RunID.String()),
			zap.String("path", path),
			zap.String("dest", dest),
			zap.Bool("skipped", move.Skipped))
		moves = append(moves, move)
	}
	return moves, nil
}
