// Package belief implements Bayesian probability revision over a fixed set
// of labeled, mutually exclusive hypotheses. A Vector holds relative odds
// per hypothesis; evidence is folded in multiplicatively and renormalized.
package belief

import (
	"fmt"
	"math"
	"sort"
	"strconv"
	"strings"
)

// equalityEpsilon bounds the elementwise difference of normalized weights
// considered equal.
const equalityEpsilon = 1e-9

// Pair is a labeled weight used by FromPairs.
type Pair struct {
	Label  string
	Weight float64
}

// Vector is an ordered sequence of non-negative weights with a parallel
// sequence of unique labels. Index alignment is permanent: no operation
// reorders labels after construction.
type Vector struct {
	labels  []string
	index   map[string]int
	weights []float64

	// positional is set when labels were auto-generated from indices, in
	// which case label identity is not meaningful for alignment or equality.
	positional bool
}

func newVector(labels []string, weights []float64, positional bool) (*Vector, error) {
	index := make(map[string]int, len(labels))
	for i, label := range labels {
		if _, dup := index[label]; dup {
			return nil, fmt.Errorf("duplicate label %q: %w", label, ErrInvalidArgument)
		}
		index[label] = i
	}
	return &Vector{
		labels:     labels,
		index:      index,
		weights:    weights,
		positional: positional,
	}, nil
}

// FromMap builds a vector from a label→weight map. When labels are omitted
// they default to the map's keys in lexicographic order, which keeps the
// ordering deterministic across runs.
func FromMap(m map[string]float64, labels ...string) (*Vector, error) {
	if m == nil {
		return nil, fmt.Errorf("expected a non-nil map: %w", ErrInvalidArgument)
	}
	if len(labels) == 0 {
		labels = make([]string, 0, len(m))
		for label := range m {
			labels = append(labels, label)
		}
		sort.Strings(labels)
	} else {
		labels = append([]string(nil), labels...)
	}
	weights := make([]float64, len(labels))
	for i, label := range labels {
		w, ok := m[label]
		if !ok {
			return nil, fmt.Errorf("label %q has no weight in map: %w", label, ErrInvalidArgument)
		}
		weights[i] = w
	}
	return newVector(labels, weights, false)
}

// FromPairs builds a vector from an ordered sequence of (label, weight)
// pairs, preserving the given order.
func FromPairs(pairs []Pair) (*Vector, error) {
	if pairs == nil {
		return nil, fmt.Errorf("expected non-nil pairs: %w", ErrInvalidArgument)
	}
	labels := make([]string, len(pairs))
	weights := make([]float64, len(pairs))
	for i, p := range pairs {
		labels[i] = p.Label
		weights[i] = p.Weight
	}
	return newVector(labels, weights, false)
}

// FromWeights builds a vector from bare weights. Labels default to the
// stringified 0-based positions.
func FromWeights(ws []float64) (*Vector, error) {
	if ws == nil {
		return nil, fmt.Errorf("expected non-nil weights: %w", ErrInvalidArgument)
	}
	labels := make([]string, len(ws))
	for i := range ws {
		labels[i] = strconv.Itoa(i)
	}
	return newVector(labels, append([]float64(nil), ws...), true)
}

// Clone returns an independent copy.
func (v *Vector) Clone() *Vector {
	c, _ := newVector(v.labels, append([]float64(nil), v.weights...), v.positional)
	return c
}

// derive produces a vector with this vector's labels and the given weights.
func (v *Vector) derive(weights []float64) *Vector {
	d, _ := newVector(v.labels, weights, v.positional)
	return d
}

func (v *Vector) Len() int { return len(v.weights) }

// Labels returns a copy of the label sequence.
func (v *Vector) Labels() []string { return append([]string(nil), v.labels...) }

// Weights returns a copy of the raw (possibly unnormalized) weights.
func (v *Vector) Weights() []float64 { return append([]float64(nil), v.weights...) }

// At returns the weight at position i.
func (v *Vector) At(i int) (float64, error) {
	if i < 0 || i >= len(v.weights) {
		return 0, fmt.Errorf("index %d with length %d: %w", i, len(v.weights), ErrIndexOutOfRange)
	}
	return v.weights[i], nil
}

// SetAt replaces the weight at position i.
func (v *Vector) SetAt(i int, w float64) error {
	if i < 0 || i >= len(v.weights) {
		return fmt.Errorf("index %d with length %d: %w", i, len(v.weights), ErrIndexOutOfRange)
	}
	v.weights[i] = w
	return nil
}

// Get returns the weight for label.
func (v *Vector) Get(label string) (float64, error) {
	i, ok := v.index[label]
	if !ok {
		return 0, fmt.Errorf("label %q: %w", label, ErrLabelNotFound)
	}
	return v.weights[i], nil
}

// Set replaces the weight for label.
func (v *Vector) Set(label string, w float64) error {
	i, ok := v.index[label]
	if !ok {
		return fmt.Errorf("label %q: %w", label, ErrLabelNotFound)
	}
	v.weights[i] = w
	return nil
}

// Opposite returns the multiplicative inverse of every weight, modeling
// evidence against the original odds. A vector containing any exact zero is
// treated as a certain distribution: zero entries become 1 and every other
// entry becomes 0, so division by zero never occurs here.
func (v *Vector) Opposite() *Vector {
	weights := make([]float64, len(v.weights))
	hasZero := false
	for _, w := range v.weights {
		if w == 0 {
			hasZero = true
			break
		}
	}
	for i, w := range v.weights {
		if hasZero {
			if w == 0 {
				weights[i] = 1
			}
		} else {
			weights[i] = 1 / w
		}
	}
	return v.derive(weights)
}

// Normalized returns a copy scaled so the weights sum to 1. An empty vector
// normalizes to an empty vector; an all-zero vector has no meaningful
// normalization and fails with ErrZeroSum.
func (v *Vector) Normalized() (*Vector, error) {
	if len(v.weights) == 0 {
		return v.Clone(), nil
	}
	total := 0.0
	for _, w := range v.weights {
		total += w
	}
	if total == 0 {
		return nil, fmt.Errorf("cannot normalize: %w", ErrZeroSum)
	}
	weights := make([]float64, len(v.weights))
	for i, w := range v.weights {
		weights[i] = w / total
	}
	return v.derive(weights), nil
}

// align returns other's weights reordered against this vector's labels.
// Labeled vectors must carry the same labels; a positional operand aligns by
// position alone and only needs the same length.
func (v *Vector) align(other *Vector) ([]float64, error) {
	if other == nil {
		return nil, fmt.Errorf("expected a non-nil vector: %w", ErrInvalidArgument)
	}
	if len(other.weights) != len(v.weights) {
		return nil, fmt.Errorf("length mismatch: %d vs %d: %w", len(v.weights), len(other.weights), ErrInvalidArgument)
	}
	if v.positional || other.positional {
		return other.weights, nil
	}
	aligned := make([]float64, len(v.weights))
	for i, label := range v.labels {
		j, ok := other.index[label]
		if !ok {
			return nil, fmt.Errorf("label %q missing from operand: %w", label, ErrLabelNotFound)
		}
		aligned[i] = other.weights[j]
	}
	return aligned, nil
}

// Mul returns the pointwise product, the Bayesian update kernel. The result
// keeps this vector's labels and is not normalized.
func (v *Vector) Mul(other *Vector) (*Vector, error) {
	aligned, err := v.align(other)
	if err != nil {
		return nil, err
	}
	weights := make([]float64, len(v.weights))
	for i, w := range v.weights {
		weights[i] = w * aligned[i]
	}
	return v.derive(weights), nil
}

// MulWeights multiplies by bare weights paired positionally.
func (v *Vector) MulWeights(ws []float64) (*Vector, error) {
	ev, err := FromWeights(ws)
	if err != nil {
		return nil, err
	}
	return v.Mul(ev)
}

// MulMap multiplies by a label→weight map aligned against this vector's
// labels.
func (v *Vector) MulMap(m map[string]float64) (*Vector, error) {
	ev, err := FromMap(m, v.labels...)
	if err != nil {
		return nil, err
	}
	return v.Mul(ev)
}

// Div multiplies by the opposite of other.
func (v *Vector) Div(other *Vector) (*Vector, error) {
	if other == nil {
		return nil, fmt.Errorf("expected a non-nil vector: %w", ErrInvalidArgument)
	}
	return v.Mul(other.Opposite())
}

// Update folds one piece of evidence into the vector in place: multiply,
// then renormalize.
func (v *Vector) Update(ev *Vector) error {
	product, err := v.Mul(ev)
	if err != nil {
		return err
	}
	norm, err := product.Normalized()
	if err != nil {
		return err
	}
	copy(v.weights, norm.weights)
	return nil
}

// UpdateWeights updates with bare odds paired positionally.
func (v *Vector) UpdateWeights(ws []float64) error {
	ev, err := FromWeights(ws)
	if err != nil {
		return err
	}
	return v.Update(ev)
}

// UpdateMap updates with a label→odds map aligned against this vector's
// labels.
func (v *Vector) UpdateMap(m map[string]float64) error {
	ev, err := FromMap(m, v.labels...)
	if err != nil {
		return err
	}
	return v.Update(ev)
}

// UpdateFromEvents performs one update per event token found in the odds
// table. Tokens the table has never seen carry no evidence and are skipped.
func (v *Vector) UpdateFromEvents(events []string, table *OddsTable) error {
	for _, event := range events {
		if table == nil || !table.Has(event) {
			continue
		}
		if err := v.UpdateWeights(table.Odds(event, v.labels)); err != nil {
			return err
		}
	}
	return nil
}

// UpdateFromTests updates once per binary test result: a true result
// supports the given odds, a false result supports their opposite.
func (v *Vector) UpdateFromTests(results []bool, odds *Vector) error {
	if odds == nil {
		return fmt.Errorf("expected non-nil odds: %w", ErrInvalidArgument)
	}
	opposite := odds.Opposite()
	for _, result := range results {
		ev := opposite
		if result {
			ev = odds
		}
		if err := v.Update(ev); err != nil {
			return err
		}
	}
	return nil
}

// MostLikely normalizes and returns the label of the greatest weight, or ""
// when that weight does not exceed cutoff (no decision). Ties break on the
// first maximal weight in label order.
func (v *Vector) MostLikely(cutoff float64) (string, error) {
	if len(v.weights) == 0 {
		return "", nil
	}
	norm, err := v.Normalized()
	if err != nil {
		return "", err
	}
	best := 0
	for i, w := range norm.weights {
		if w > norm.weights[best] {
			best = i
		}
	}
	if norm.weights[best] > cutoff {
		return v.labels[best], nil
	}
	return "", nil
}

// IsLikely reports whether label's normalized weight strictly exceeds
// minProbability.
func (v *Vector) IsLikely(label string, minProbability float64) (bool, error) {
	norm, err := v.Normalized()
	if err != nil {
		return false, err
	}
	w, err := norm.Get(label)
	if err != nil {
		return false, err
	}
	return w > minProbability, nil
}

// Equal reports whether both vectors represent the same distribution: label
// sequences match when both carry explicit labels, and normalized weights
// are elementwise equal within a small tolerance. All-zero vectors compare
// by raw weights since they cannot be normalized.
func (v *Vector) Equal(other *Vector) bool {
	if other == nil || len(v.weights) != len(other.weights) {
		return false
	}
	if !v.positional && !other.positional {
		for i, label := range v.labels {
			if other.labels[i] != label {
				return false
			}
		}
	}
	a, errA := v.Normalized()
	b, errB := other.Normalized()
	if errA != nil || errB != nil {
		if errA == nil || errB == nil {
			return false
		}
		a, b = v, other
	}
	for i := range a.weights {
		if math.Abs(a.weights[i]-b.weights[i]) > equalityEpsilon {
			return false
		}
	}
	return true
}

// EqualWeights compares against bare weights by normalized value alone.
func (v *Vector) EqualWeights(ws []float64) bool {
	other, err := FromWeights(ws)
	if err != nil {
		return false
	}
	return v.Equal(other)
}

// String renders the normalized distribution as percentages. An
// unnormalizable vector falls back to its raw weights.
func (v *Vector) String() string {
	if norm, err := v.Normalized(); err == nil {
		items := make([]string, len(norm.weights))
		for i, w := range norm.weights {
			items[i] = fmt.Sprintf("%s: %s%%", v.labels[i], strconv.FormatFloat(math.Round(w*10000)/100, 'f', -1, 64))
		}
		return "Belief(" + strings.Join(items, ", ") + ")"
	}
	items := make([]string, len(v.weights))
	for i, w := range v.weights {
		items[i] = fmt.Sprintf("%s: %v", v.labels[i], w)
	}
	return "Belief(" + strings.Join(items, ", ") + ")"
}

