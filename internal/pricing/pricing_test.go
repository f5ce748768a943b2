package pricing

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/floats"

	"github.com/yourusername/greyhound-market/internal/models"
	"github.com/yourusername/greyhound-market/internal/rng"
)

const epsilon = 1e-9

func TestNormalizeProbabilitiesSumsToOne(t *testing.T) {
	tests := []struct {
		name   string
		values []float64
	}{
		{"uniform", []float64{1, 1, 1, 1}},
		{"skewed", []float64{0.9, 0.05, 0.3, 0.01, 0.7, 0.2}},
		{"already normalised", []float64{0.5, 0.3, 0.2}},
		{"large values", []float64{1e6, 3e6, 2.5e6}},
		{"single entrant", []float64{0.42}},
		{"zero entry", []float64{0, 0.4, 0.6}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dist, err := NormalizeProbabilities(tt.values)
			require.NoError(t, err)
			assert.Len(t, dist, len(tt.values))
			assert.InDelta(t, 1.0, floats.Sum(dist), epsilon)
			assert.True(t, dist.IsNormalized())
		})
	}
}

func TestNormalizeProbabilitiesRejectsBadInput(t *testing.T) {
	_, err := NormalizeProbabilities(nil)
	assert.True(t, errors.Is(err, models.ErrEmptyInput))

	_, err = NormalizeProbabilities([]float64{0, 0})
	assert.True(t, errors.Is(err, models.ErrDegenerateProbability))

	_, err = NormalizeProbabilities([]float64{0.5, -0.1})
	assert.True(t, errors.Is(err, models.ErrDegenerateProbability))
}

func TestGenerateProbabilities(t *testing.T) {
	dist, err := GenerateProbabilities(6, rng.NewSeededSource(42))
	require.NoError(t, err)
	assert.Len(t, dist, 6)
	assert.InDelta(t, 1.0, floats.Sum(dist), epsilon)

	dist, err = GenerateProbabilities(6, rng.NewCryptoSource())
	require.NoError(t, err)
	assert.InDelta(t, 1.0, floats.Sum(dist), epsilon)
}

func TestGenerateProbabilitiesEmpty(t *testing.T) {
	_, err := GenerateProbabilities(0, rng.NewSeededSource(1))
	assert.True(t, errors.Is(err, models.ErrEmptyInput))
}

func TestGenerateProbabilitiesRetriesZeroDraw(t *testing.T) {
	src := &rng.FixedSource{Values: []float64{0, 0, 0.25, 0.75}}
	dist, err := GenerateProbabilities(2, src)
	require.NoError(t, err)
	assert.InDelta(t, 0.25, dist[0], epsilon)
	assert.InDelta(t, 0.75, dist[1], epsilon)

	_, err = GenerateProbabilities(2, &rng.FixedSource{Values: []float64{0}})
	assert.True(t, errors.Is(err, models.ErrDegenerateProbability))
}

func TestApplyMarginSumsToMargin(t *testing.T) {
	for _, margin := range []float64{1.0, 1.1, 1.25} {
		adjusted, err := ApplyMargin([]float64{0.2, 0.1, 0.4, 0.3}, margin)
		require.NoError(t, err)
		assert.InDelta(t, margin, floats.Sum(adjusted), epsilon)
	}

	// the input is not mutated
	input := []float64{2, 2}
	_, err := ApplyMargin(input, 1.1)
	require.NoError(t, err)
	assert.Equal(t, []float64{2, 2}, input)
}

func TestApplyMarginErrors(t *testing.T) {
	_, err := ApplyMargin(nil, 1.1)
	assert.True(t, errors.Is(err, models.ErrEmptyInput))

	_, err = ApplyMargin([]float64{0, 0}, 1.1)
	assert.True(t, errors.Is(err, models.ErrDegenerateProbability))

	_, err = ApplyMargin([]float64{0.5, 0.5}, 0)
	assert.True(t, errors.Is(err, models.ErrInvalidMargin))
}

func TestCalculateOddsExample(t *testing.T) {
	odds, err := CalculateOddsWithMargins([]float64{0.5, 0.3, 0.2}, 1.0)
	require.NoError(t, err)
	require.Len(t, odds, 3)
	assert.InDelta(t, 1.00, odds[0], 0.005)
	assert.InDelta(t, 2.33, odds[1], 0.005)
	assert.InDelta(t, 4.00, odds[2], 0.005)
}

func TestCalculateOddsMonotonic(t *testing.T) {
	probs := []float64{0.01, 0.05, 0.1, 0.25, 0.5, 0.75, 0.99}
	odds, err := CalculateOdds(probs)
	require.NoError(t, err)
	for i := 1; i < len(odds); i++ {
		assert.Greater(t, odds[i-1], odds[i], "odds should fall as probability rises")
	}
}

func TestCalculateOddsDegenerate(t *testing.T) {
	_, err := CalculateOdds([]float64{0.5, 0})
	assert.True(t, errors.Is(err, models.ErrDegenerateProbability))

	_, err = CalculateOdds([]float64{1.2})
	assert.True(t, errors.Is(err, models.ErrDegenerateProbability))

	odds, err := CalculateOdds([]float64{1})
	require.NoError(t, err)
	assert.Equal(t, 0.0, odds[0])
}

func TestMarginShortensOdds(t *testing.T) {
	dist := []float64{0.4, 0.35, 0.25}
	fair, err := CalculateOdds(dist)
	require.NoError(t, err)
	margined, err := CalculateOddsWithMargins(dist, DefaultMargin)
	require.NoError(t, err)
	for i := range dist {
		assert.Less(t, margined[i], fair[i])
	}
}

func TestImpliedProbabilityRoundTrip(t *testing.T) {
	o, err := OddsFromProbability(0.2)
	require.NoError(t, err)
	assert.InDelta(t, 0.2, ImpliedProbability(o), epsilon)
	assert.Equal(t, 0.0, ImpliedProbability(-1))
}
