package models

import (
	"time"

	"github.com/google/uuid"
)

// RaceResult represents the first three finishers of a simulated race.
type RaceResult struct {
	RaceID uuid.UUID `json:"race_id"`
	Winner int       `json:"winner"`
	Second int       `json:"second"`
	Third  int       `json:"third"`
	Time   time.Time `json:"time"`
}

// Positions returns the finishing order, winner first.
func (rr *RaceResult) Positions() []int {
	return []int{rr.Winner, rr.Second, rr.Third}
}

// IsValid checks the three placings are distinct entrants within the field.
func (rr *RaceResult) IsValid(entrants int) bool {
	seen := make(map[int]bool, 3)
	for _, p := range rr.Positions() {
		if p < 0 || p >= entrants || seen[p] {
			return false
		}
		seen[p] = true
	}
	return true
}

// Forecast returns the winning forecast key.
func (rr *RaceResult) Forecast() ForecastKey {
	return ForecastKey{First: rr.Winner, Second: rr.Second}
}

// Tricast returns the winning tricast key.
func (rr *RaceResult) Tricast() TricastKey {
	return TricastKey{First: rr.Winner, Second: rr.Second, Third: rr.Third}
}
