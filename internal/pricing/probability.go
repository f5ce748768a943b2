// Package pricing turns win probabilities into bookmaker odds for win,
// forecast and tricast markets.
package pricing

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"

	"github.com/yourusername/greyhound-market/internal/models"
	"github.com/yourusername/greyhound-market/internal/rng"
)

// maxDrawAttempts bounds redraws when every raw value comes back zero.
const maxDrawAttempts = 3

// GenerateProbabilities draws n uniform values from src and normalises them
// into a win distribution.
func GenerateProbabilities(n int, src rng.Source) (models.Distribution, error) {
	if n <= 0 {
		return nil, fmt.Errorf("generate %d probabilities: %w", n, models.ErrEmptyInput)
	}

	raw := make([]float64, n)
	for attempt := 0; attempt < maxDrawAttempts; attempt++ {
		for i := range raw {
			v, err := src.Float64()
			if err != nil {
				return nil, fmt.Errorf("failed to draw probability: %w", err)
			}
			raw[i] = v
		}
		if floats.Sum(raw) > 0 {
			return NormalizeProbabilities(raw)
		}
	}
	return nil, fmt.Errorf("all %d draws were zero after %d attempts: %w", n, maxDrawAttempts, models.ErrDegenerateProbability)
}

// NormalizeProbabilities divides each value by the total so the result sums to 1.
func NormalizeProbabilities(values []float64) (models.Distribution, error) {
	if len(values) == 0 {
		return nil, fmt.Errorf("normalize: %w", models.ErrEmptyInput)
	}
	for i, v := range values {
		if v < 0 || math.IsNaN(v) || math.IsInf(v, 0) {
			return nil, fmt.Errorf("entrant %d has value %v: %w", i, v, models.ErrDegenerateProbability)
		}
	}
	total := floats.Sum(values)
	if total <= 0 {
		return nil, fmt.Errorf("normalize: total %v: %w", total, models.ErrDegenerateProbability)
	}

	dist := make(models.Distribution, len(values))
	copy(dist, values)
	floats.Scale(1/total, dist)
	return dist, nil
}
