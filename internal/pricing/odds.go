package pricing

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"

	"github.com/yourusername/greyhound-market/internal/models"
)

// DefaultMargin is the standard 10% bookmaker overround.
const DefaultMargin = 1.10

// ApplyMargin rescales dist so its total equals margin.
func ApplyMargin(dist []float64, margin float64) ([]float64, error) {
	if len(dist) == 0 {
		return nil, fmt.Errorf("apply margin: %w", models.ErrEmptyInput)
	}
	if margin <= 0 || math.IsNaN(margin) || math.IsInf(margin, 0) {
		return nil, fmt.Errorf("apply margin %v: %w", margin, models.ErrInvalidMargin)
	}
	total := floats.Sum(dist)
	if total <= 0 {
		return nil, fmt.Errorf("apply margin: total %v: %w", total, models.ErrDegenerateProbability)
	}

	adjusted := make([]float64, len(dist))
	copy(adjusted, dist)
	floats.Scale(margin/total, adjusted)
	return adjusted, nil
}

// CalculateOdds maps each probability p to (1/p) - 1.
// A probability outside (0, 1] is rejected rather than priced at infinity.
func CalculateOdds(dist []float64) ([]float64, error) {
	if len(dist) == 0 {
		return nil, fmt.Errorf("calculate odds: %w", models.ErrEmptyInput)
	}
	odds := make([]float64, len(dist))
	for i, p := range dist {
		o, err := OddsFromProbability(p)
		if err != nil {
			return nil, fmt.Errorf("entrant %d: %w", i, err)
		}
		odds[i] = o
	}
	return odds, nil
}

// CalculateOddsWithMargins prices dist after overlaying margin.
func CalculateOddsWithMargins(dist []float64, margin float64) ([]float64, error) {
	adjusted, err := ApplyMargin(dist, margin)
	if err != nil {
		return nil, err
	}
	return CalculateOdds(adjusted)
}

// OddsFromProbability converts a single probability to decimal-minus-one odds.
func OddsFromProbability(p float64) (float64, error) {
	if !(p > 0 && p <= 1) {
		return 0, fmt.Errorf("probability %v: %w", p, models.ErrDegenerateProbability)
	}
	return (1 / p) - 1, nil
}

// ImpliedProbability is the inverse of OddsFromProbability.
func ImpliedProbability(odds float64) float64 {
	if odds < 0 {
		return 0
	}
	return 1 / (odds + 1)
}
