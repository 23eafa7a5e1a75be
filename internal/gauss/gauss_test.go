package gauss

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEstimate(t *testing.T) {
	d, err := Estimate([]float64{2, 4})
	require.NoError(t, err)
	assert.InDelta(t, 3.0, d.Mean, 1e-12)
	assert.InDelta(t, 2.0, d.Variance, 1e-12)

	// Classic height sample from the sex-classification example.
	d, err = Estimate([]float64{6, 5.92, 5.58, 5.92})
	require.NoError(t, err)
	assert.InDelta(t, 5.855, d.Mean, 1e-9)
	assert.InDelta(t, 0.035033, d.Variance, 1e-5)
}

func TestEstimateInsufficientData(t *testing.T) {
	_, err := Estimate(nil)
	assert.ErrorIs(t, err, ErrInsufficientData)

	_, err = Estimate([]float64{1})
	assert.ErrorIs(t, err, ErrInsufficientData)
}

func TestDensity(t *testing.T) {
	d := Distribution{Mean: 0, Variance: 1}
	assert.InDelta(t, 1/math.Sqrt(2*math.Pi), Density(0, d), 1e-12)
	assert.InDelta(t, Density(-1, d), Density(1, d), 1e-12)
	assert.Greater(t, Density(0, d), Density(1, d))
}

func TestDensityZeroVariancePointMass(t *testing.T) {
	d := Distribution{Mean: 2.5, Variance: 0}
	assert.Equal(t, 1.0, Density(2.5, d))
	assert.Equal(t, 0.0, Density(2.4, d))
}

func TestPropertyDistributions(t *testing.T) {
	classes := map[string][]map[string]float64{
		"male": {
			{"height": 6, "weight": 180},
			{"height": 5.92, "weight": 190},
			{"height": 5.58, "weight": 170},
			{"height": 5.92, "weight": 165},
		},
		"female": {
			{"height": 5, "weight": 100},
			{"height": 5.5, "weight": 150},
			{"height": 5.42, "weight": 130},
			{"height": 5.75, "weight": 150},
		},
	}

	dists, err := PropertyDistributions(classes)
	require.NoError(t, err)
	require.Len(t, dists, 2)

	assert.InDelta(t, 5.855, dists["height"]["male"].Mean, 1e-9)
	assert.InDelta(t, 5.4175, dists["height"]["female"].Mean, 1e-9)
	assert.InDelta(t, 176.25, dists["weight"]["male"].Mean, 1e-9)
}

func TestPropertyDistributionsInsufficientData(t *testing.T) {
	_, err := PropertyDistributions(map[string][]map[string]float64{
		"lonely": {{"height": 6}},
	})
	assert.ErrorIs(t, err, ErrInsufficientData)
}
