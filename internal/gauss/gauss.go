// Package gauss estimates per-class Gaussian distributions from labeled
// numeric samples and evaluates their densities, feeding continuous-feature
// classification.
package gauss

import (
	"errors"
	"fmt"
	"math"
)

// ErrInsufficientData is returned when a sample set is too small to
// estimate an unbiased variance.
var ErrInsufficientData = errors.New("need at least 2 samples to estimate variance")

// Distribution holds the sample mean and unbiased sample variance of one
// property for one class.
type Distribution struct {
	Mean     float64
	Variance float64
}

// Estimate computes the (mean, variance) of values. Variance uses the n-1
// denominator, so fewer than two samples fail rather than guess.
func Estimate(values []float64) (Distribution, error) {
	n := float64(len(values))
	if len(values) < 2 {
		return Distribution{}, fmt.Errorf("got %d samples: %w", len(values), ErrInsufficientData)
	}
	mean := 0.0
	for _, v := range values {
		mean += v
	}
	mean /= n

	variance := 0.0
	for _, v := range values {
		variance += (v - mean) * (v - mean)
	}
	variance /= n - 1

	return Distribution{Mean: mean, Variance: variance}, nil
}

// Density returns the Gaussian probability density of sample under d. A
// zero-variance distribution is a point mass: density 1 exactly at the mean
// and 0 everywhere else.
func Density(sample float64, d Distribution) float64 {
	if d.Variance == 0 {
		if sample == d.Mean {
			return 1
		}
		return 0
	}
	delta := sample - d.Mean
	return math.Exp(-delta*delta/(2*d.Variance)) / math.Sqrt(2*math.Pi*d.Variance)
}

// PropertyDistributions estimates one Distribution per (property, class)
// from class populations of property→value samples:
// {class: [{property: value}]} -> {property: {class: Distribution}}.
func PropertyDistributions(classes map[string][]map[string]float64) (map[string]map[string]Distribution, error) {
	distributions := make(map[string]map[string]Distribution)
	for class, population := range classes {
		samples := make(map[string][]float64)
		for _, properties := range population {
			for property, value := range properties {
				samples[property] = append(samples[property], value)
			}
		}
		for property, values := range samples {
			d, err := Estimate(values)
			if err != nil {
				return nil, fmt.Errorf("estimating %q for class %q: %w", property, class, err)
			}
			perClass, ok := distributions[property]
			if !ok {
				perClass = make(map[string]Distribution)
				distributions[property] = perClass
			}
			perClass[class] = d
		}
	}
	return distributions, nil
}
