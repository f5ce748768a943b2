package race

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/yourusername/greyhound-market/internal/models"
	"github.com/yourusername/greyhound-market/internal/rng"
)

// DetermineWinner draws the winner from the full field.
func DetermineWinner(dist []float64, src rng.Source) (int, error) {
	winner, err := newPool(dist).draw(src)
	if err != nil {
		return 0, fmt.Errorf("failed to draw winner: %w", err)
	}
	return winner, nil
}

// DetermineForecast draws second place from the field without the winner.
// Remaining weights are not renormalised; the sampler scales by their total.
func DetermineForecast(dist []float64, winner int, src rng.Source) (int, error) {
	if err := checkEntrant(dist, winner); err != nil {
		return 0, err
	}
	second, err := newPool(dist).without(winner).draw(src)
	if err != nil {
		return 0, fmt.Errorf("failed to draw second place: %w", err)
	}
	return second, nil
}

// DetermineTricast draws third place from the field without the first two.
func DetermineTricast(dist []float64, winner, second int, src rng.Source) (int, error) {
	if err := checkEntrant(dist, winner); err != nil {
		return 0, err
	}
	if err := checkEntrant(dist, second); err != nil {
		return 0, err
	}
	third, err := newPool(dist).without(winner, second).draw(src)
	if err != nil {
		return 0, fmt.Errorf("failed to draw third place: %w", err)
	}
	return third, nil
}

// Run simulates the first three finishers of a race.
func Run(dist []float64, src rng.Source) (*models.RaceResult, error) {
	if len(dist) == 0 {
		return nil, fmt.Errorf("run race: %w", models.ErrEmptyInput)
	}
	if len(dist) < 3 {
		return nil, fmt.Errorf("run race with %d entrants: %w", len(dist), models.ErrInsufficientEntrants)
	}

	winner, err := DetermineWinner(dist, src)
	if err != nil {
		return nil, err
	}
	second, err := DetermineForecast(dist, winner, src)
	if err != nil {
		return nil, err
	}
	third, err := DetermineTricast(dist, winner, second, src)
	if err != nil {
		return nil, err
	}

	return &models.RaceResult{
		RaceID: uuid.New(),
		Winner: winner,
		Second: second,
		Third:  third,
		Time:   time.Now().UTC(),
	}, nil
}

func checkEntrant(dist []float64, entrant int) error {
	if entrant < 0 || entrant >= len(dist) {
		return fmt.Errorf("entrant %d not in field of %d: %w", entrant, len(dist), models.ErrUnknownEntrant)
	}
	return nil
}
