package models

import (
	"fmt"
	"sort"
	"time"

	"github.com/google/uuid"
)

// ForecastKey identifies an ordered first/second finish.
type ForecastKey struct {
	First  int `json:"first"`
	Second int `json:"second"`
}

// String renders the key with 1-based display numbers.
func (k ForecastKey) String() string {
	return fmt.Sprintf("%s -> %s", RunnerName(k.First), RunnerName(k.Second))
}

// TricastKey identifies an ordered first/second/third finish.
type TricastKey struct {
	First  int `json:"first"`
	Second int `json:"second"`
	Third  int `json:"third"`
}

// String renders the key with 1-based display numbers.
func (k TricastKey) String() string {
	return fmt.Sprintf("%s -> %s -> %s", RunnerName(k.First), RunnerName(k.Second), RunnerName(k.Third))
}

// ForecastBook maps every ordered pair to its odds.
type ForecastBook map[ForecastKey]float64

// SortedKeys returns the keys in lexicographic order.
func (b ForecastBook) SortedKeys() []ForecastKey {
	keys := make([]ForecastKey, 0, len(b))
	for k := range b {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool {
		if keys[i].First != keys[j].First {
			return keys[i].First < keys[j].First
		}
		return keys[i].Second < keys[j].Second
	})
	return keys
}

// TricastBook maps every ordered triple to its odds.
type TricastBook map[TricastKey]float64

// SortedKeys returns the keys in lexicographic order.
func (b TricastBook) SortedKeys() []TricastKey {
	keys := make([]TricastKey, 0, len(b))
	for k := range b {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool {
		a, c := keys[i], keys[j]
		if a.First != c.First {
			return a.First < c.First
		}
		if a.Second != c.Second {
			return a.Second < c.Second
		}
		return a.Third < c.Third
	})
	return keys
}

// Market is a fully priced race: win, forecast and tricast books.
type Market struct {
	ID            uuid.UUID    `json:"id"`
	Probabilities Distribution `json:"probabilities"`
	Margin        float64      `json:"margin"`
	WinOdds       []float64    `json:"win_odds"`
	Forecast      ForecastBook `json:"-"`
	Tricast       TricastBook  `json:"-"`
	CreatedAt     time.Time    `json:"created_at"`
}

// Entrants returns the field size.
func (m *Market) Entrants() int {
	return len(m.Probabilities)
}

// Overround returns the total implied probability of the win book.
func (m *Market) Overround() float64 {
	total := 0.0
	for _, o := range m.WinOdds {
		total += 1.0 / (o + 1)
	}
	return total
}
