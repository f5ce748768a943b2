package race

import "github.com/yourusername/greyhound-market/internal/rng"

type candidate struct {
	entrant int
	weight  float64
}

// pool is the set of entrants still to finish, in entrant order.
type pool []candidate

func newPool(dist []float64) pool {
	p := make(pool, len(dist))
	for i, w := range dist {
		p[i] = candidate{entrant: i, weight: w}
	}
	return p
}

// without returns a new pool excluding the given entrants; the receiver is untouched.
func (p pool) without(entrants ...int) pool {
	excluded := make(map[int]bool, len(entrants))
	for _, e := range entrants {
		excluded[e] = true
	}
	remaining := make(pool, 0, len(p))
	for _, c := range p {
		if !excluded[c.entrant] {
			remaining = append(remaining, c)
		}
	}
	return remaining
}

func (p pool) weights() []float64 {
	w := make([]float64, len(p))
	for i, c := range p {
		w[i] = c.weight
	}
	return w
}

// draw samples one candidate and maps the local index back to the entrant.
func (p pool) draw(src rng.Source) (int, error) {
	idx, err := WeightedRandomChoice(p.weights(), src)
	if err != nil {
		return 0, err
	}
	return p[idx].entrant, nil
}
