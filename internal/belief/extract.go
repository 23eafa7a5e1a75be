package belief

import "strings"

// DefaultSmoothingFloor is the odds assigned to an (event, class) pair never
// seen in training. It must stay positive: an absent observation is weak
// evidence against a class, not proof of impossibility.
const DefaultSmoothingFloor = 1e-6

// Extractor converts an instance into its sequence of discrete event tokens.
type Extractor func(instance string) []string

// Words is the default extractor: whitespace tokenization.
func Words(instance string) []string {
	return strings.Fields(instance)
}

// OddsTable maps event tokens to per-class frequency counts, with an
// explicit smoothing floor substituted for unseen (event, class) pairs. A
// table is built once per classification task and read-only afterwards.
type OddsTable struct {
	counts map[string]map[string]float64
	floor  float64
}

// ExtractEventOdds counts event occurrences per class across every instance
// of every class. A floor of 0 or below falls back to
// DefaultSmoothingFloor.
func ExtractEventOdds(classes map[string][]string, extract Extractor, floor float64) *OddsTable {
	if extract == nil {
		extract = Words
	}
	if floor <= 0 {
		floor = DefaultSmoothingFloor
	}
	counts := make(map[string]map[string]float64)
	for class, instances := range classes {
		for _, instance := range instances {
			for _, event := range extract(instance) {
				perClass, ok := counts[event]
				if !ok {
					perClass = make(map[string]float64)
					counts[event] = perClass
				}
				perClass[class]++
			}
		}
	}
	return &OddsTable{counts: counts, floor: floor}
}

// NewOddsTable wraps explicit event→class odds, for callers that already
// know the likelihoods rather than deriving them from counts.
func NewOddsTable(odds map[string]map[string]float64, floor float64) *OddsTable {
	if floor <= 0 {
		floor = DefaultSmoothingFloor
	}
	counts := make(map[string]map[string]float64, len(odds))
	for event, perClass := range odds {
		copied := make(map[string]float64, len(perClass))
		for class, w := range perClass {
			copied[class] = w
		}
		counts[event] = copied
	}
	return &OddsTable{counts: counts, floor: floor}
}

// Has reports whether the event was observed at least once in training.
func (t *OddsTable) Has(event string) bool {
	_, ok := t.counts[event]
	return ok
}

// Len returns the number of distinct events observed.
func (t *OddsTable) Len() int { return len(t.counts) }

// Odds returns the event's counts ordered by labels, substituting the
// smoothing floor for classes that never co-occurred with the event.
func (t *OddsTable) Odds(event string, labels []string) []float64 {
	perClass := t.counts[event]
	odds := make([]float64, len(labels))
	for i, label := range labels {
		if c, ok := perClass[label]; ok {
			odds[i] = c
		} else {
			odds[i] = t.floor
		}
	}
	return odds
}
