// Package race simulates finishing orders by weighted sampling without replacement.
package race

import (
	"fmt"
	"math"

	"github.com/yourusername/greyhound-market/internal/models"
	"github.com/yourusername/greyhound-market/internal/rng"
)

// WeightedRandomChoice draws an index with probability proportional to its
// weight. Weights need not sum to 1. If rounding carries the draw past the
// final cumulative weight, the last positively weighted index is returned.
func WeightedRandomChoice(weights []float64, src rng.Source) (int, error) {
	if len(weights) == 0 {
		return 0, fmt.Errorf("weighted choice over no candidates: %w", models.ErrSamplingExhausted)
	}

	total := 0.0
	last := -1
	for i, w := range weights {
		if w < 0 || math.IsNaN(w) || math.IsInf(w, 0) {
			return 0, fmt.Errorf("candidate %d has weight %v: %w", i, w, models.ErrSamplingExhausted)
		}
		if w > 0 {
			last = i
		}
		total += w
	}
	if last < 0 {
		return 0, fmt.Errorf("total weight is zero: %w", models.ErrSamplingExhausted)
	}

	u, err := src.Float64()
	if err != nil {
		return 0, fmt.Errorf("failed to draw: %w", err)
	}
	target := u * total

	cumulative := 0.0
	for i, w := range weights {
		cumulative += w
		if target < cumulative {
			return i, nil
		}
	}
	return last, nil
}
