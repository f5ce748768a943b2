package pricing

import (
	"fmt"

	"github.com/yourusername/greyhound-market/internal/models"
)

// GenerateForecastOdds prices every ordered (first, second) pair.
//
// The pair probability is p_i * p_j / (1 - p_i). This treats the second place
// as a win among the remaining field at full-field relative strengths; it
// is an approximation, not a renormalised conditional.
func GenerateForecastOdds(dist []float64) (models.ForecastBook, error) {
	n := len(dist)
	book := make(models.ForecastBook, n*(n-1))
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			if i == j {
				continue
			}
			denom, err := remainingMass(dist, i)
			if err != nil {
				return nil, err
			}
			odds, err := OddsFromProbability(dist[i] * dist[j] / denom)
			if err != nil {
				return nil, fmt.Errorf("forecast %d,%d: %w", i, j, err)
			}
			book[models.ForecastKey{First: i, Second: j}] = odds
		}
	}
	return book, nil
}

// GenerateTricastOdds prices every ordered (first, second, third) triple
// using p_i * p_j * p_k / ((1 - p_i) * (1 - p_j)).
func GenerateTricastOdds(dist []float64) (models.TricastBook, error) {
	n := len(dist)
	size := 0
	if n >= 3 {
		size = n * (n - 1) * (n - 2)
	}
	book := make(models.TricastBook, size)
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			for k := 0; k < n; k++ {
				if i == j || j == k || i == k {
					continue
				}
				di, err := remainingMass(dist, i)
				if err != nil {
					return nil, err
				}
				dj, err := remainingMass(dist, j)
				if err != nil {
					return nil, err
				}
				odds, err := OddsFromProbability(dist[i] * dist[j] * dist[k] / (di * dj))
				if err != nil {
					return nil, fmt.Errorf("tricast %d,%d,%d: %w", i, j, k, err)
				}
				book[models.TricastKey{First: i, Second: j, Third: k}] = odds
			}
		}
	}
	return book, nil
}

// remainingMass returns 1 - p for an entrant that already finished ahead.
func remainingMass(dist []float64, entrant int) (float64, error) {
	p := dist[entrant]
	if p < 0 || p >= 1 {
		return 0, fmt.Errorf("entrant %d leads with probability %v: %w", entrant, p, models.ErrDegenerateProbability)
	}
	return 1 - p, nil
}
