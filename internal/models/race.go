package models

import "math"

// DistributionTolerance is the allowed drift of a distribution's sum from 1.
const DistributionTolerance = 1e-9

// Distribution holds one win probability per entrant, indexed by entrant ID.
type Distribution []float64

// Len returns the number of entrants.
func (d Distribution) Len() int {
	return len(d)
}

// Sum returns the total probability mass.
func (d Distribution) Sum() float64 {
	total := 0.0
	for _, p := range d {
		total += p
	}
	return total
}

// IsNormalized checks the distribution is non-empty, non-negative and sums to 1.
func (d Distribution) IsNormalized() bool {
	if len(d) == 0 {
		return false
	}
	for _, p := range d {
		if p < 0 || math.IsNaN(p) {
			return false
		}
	}
	return math.Abs(d.Sum()-1) <= DistributionTolerance
}

// Clone returns an independent copy.
func (d Distribution) Clone() Distribution {
	return append(Distribution(nil), d...)
}

// Favourite returns the entrant with the highest probability.
func (d Distribution) Favourite() int {
	best := 0
	for i, p := range d {
		if p > d[best] {
			best = i
		}
	}
	return best
}
