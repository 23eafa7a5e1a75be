// Package classify drives discrete-event and continuous-feature naive Bayes
// classification on top of the belief and gauss packages. Each call is a
// pure pipeline from (priors, training data, observation) to a label.
package classify

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"credence/internal/belief"
	"credence/internal/gauss"
)

var ErrNoTrainingData = errors.New("no training classes supplied")

// Result is the outcome of one classification run. Label is empty when no
// class cleared the decision cutoff. Posterior is always normalized: its
// weights are probabilities summing to 1.
type Result struct {
	RunID     uuid.UUID
	Label     string
	Posterior *belief.Vector
}

// Decided reports whether the run produced a label.
func (r *Result) Decided() bool { return r.Label != "" }

type Service struct {
	logger *zap.Logger
	floor  float64
	cutoff float64
}

type Option func(*Service)

// WithSmoothingFloor overrides the default odds for unseen (event, class)
// pairs.
func WithSmoothingFloor(floor float64) Option {
	return func(s *Service) { s.floor = floor }
}

// WithCutoff sets the minimum posterior probability required for a
// decision.
func WithCutoff(cutoff float64) Option {
	return func(s *Service) { s.cutoff = cutoff }
}

func NewService(logger *zap.Logger, opts ...Option) *Service {
	s := &Service{
		logger: logger,
		floor:  belief.DefaultSmoothingFloor,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// prior builds the starting belief over the training class labels. A nil
// priors map means uniform weight 1 per class.
func prior(classNames []string, priors map[string]float64) (*belief.Vector, error) {
	if priors == nil {
		priors = make(map[string]float64, len(classNames))
		for _, class := range classNames {
			priors[class] = 1.0
		}
	}
	return belief.FromMap(priors)
}

func classNames[T any](classes map[string][]T) []string {
	names := make([]string, 0, len(classes))
	for class := range classes {
		names = append(names, class)
	}
	return names
}

// Discrete classifies instance into one of the training classes by word (or
// custom extractor) events.
func (s *Service) Discrete(instance string, classes map[string][]string, extract belief.Extractor, priors map[string]float64) (*Result, error) {
	if len(classes) == 0 {
		return nil, ErrNoTrainingData
	}
	if extract == nil {
		extract = belief.Words
	}
	runID := uuid.New()

	table := belief.ExtractEventOdds(classes, extract, s.floor)
	b, err := prior(classNames(classes), priors)
	if err != nil {
		return nil, fmt.Errorf("building prior: %w", err)
	}

	events := extract(instance)
	if err := b.UpdateFromEvents(events, table); err != nil {
		return nil, fmt.Errorf("folding in events: %w", err)
	}

	label, err := b.MostLikely(s.cutoff)
	if err != nil {
		return nil, err
	}
	posterior, err := b.Normalized()
	if err != nil {
		return nil, err
	}

	s.logger.Debug("discrete classification",
		zap.String("run_id", runID.String()),
		zap.Int("classes", len(classes)),
		zap.Int("events", len(events)),
		zap.Int("known_events", table.Len()),
		zap.String("label", label))

	return &Result{RunID: runID, Label: label, Posterior: posterior}, nil
}

// Continuous classifies a property→value instance by per-class Gaussian
// densities, one belief update per observed property. Properties absent
// from the training data carry no evidence and are skipped, mirroring how
// unknown event tokens behave in Discrete.
func (s *Service) Continuous(instance map[string]float64, classes map[string][]map[string]float64, priors map[string]float64) (*Result, error) {
	if len(classes) == 0 {
		return nil, ErrNoTrainingData
	}
	runID := uuid.New()

	distributions, err := gauss.PropertyDistributions(classes)
	if err != nil {
		return nil, err
	}
	b, err := prior(classNames(classes), priors)
	if err != nil {
		return nil, fmt.Errorf("building prior: %w", err)
	}

	for property, value := range instance {
		perClass, ok := distributions[property]
		if !ok {
			continue
		}
		likelihoods := make(map[string]float64, len(perClass))
		for class, d := range perClass {
			likelihoods[class] = gauss.Density(value, d)
		}
		if err := b.UpdateMap(likelihoods); err != nil {
			return nil, fmt.Errorf("folding in %q: %w", property, err)
		}
	}

	label, err := b.MostLikely(s.cutoff)
	if err != nil {
		return nil, err
	}
	posterior, err := b.Normalized()
	if err != nil {
		return nil, err
	}

	s.logger.Debug("continuous classification",
		zap.String("run_id", runID.String()),
		zap.Int("classes", len(classes)),
		zap.Int("properties", len(instance)),
		zap.String("label", label))

	return &Result{RunID: runID, Label: label, Posterior: posterior}, nil
}
