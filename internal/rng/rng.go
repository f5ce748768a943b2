// Package rng provides the uniform random sources used for pricing and race draws.
package rng

import (
	cryptorand "crypto/rand"
	"encoding/binary"
	"fmt"
	"math/rand/v2"
)

// Source yields uniform fractions in [0, 1).
type Source interface {
	Float64() (float64, error)
}

// cryptoSource reads from the operating system CSPRNG.
type cryptoSource struct{}

// Float64 takes the top 53 bits of a 64-bit crypto read so every
// representable fraction below 1 is equally likely.
func (cryptoSource) Float64() (float64, error) {
	var buf [8]byte
	if _, err := cryptorand.Read(buf[:]); err != nil {
		return 0, fmt.Errorf("failed to read crypto random bytes: %w", err)
	}
	u := binary.BigEndian.Uint64(buf[:]) >> 11
	return float64(u) / (1 << 53), nil
}

// NewCryptoSource returns the default, cryptographically strong source.
func NewCryptoSource() Source { return cryptoSource{} }

// seededSource is a replayable source for tests and reproducible runs.
type seededSource struct {
	r *rand.Rand
}

// NewSeededSource returns a deterministic source. Not safe for concurrent use.
func NewSeededSource(seed uint64) Source {
	return &seededSource{r: rand.New(rand.NewPCG(seed, 0))}
}

func (s *seededSource) Float64() (float64, error) {
	return s.r.Float64(), nil
}

// FixedSource replays a fixed sequence of fractions, cycling when exhausted.
type FixedSource struct {
	Values []float64
	next   int
}

// Float64 returns the next fixed value.
func (f *FixedSource) Float64() (float64, error) {
	if len(f.Values) == 0 {
		return 0, fmt.Errorf("fixed source has no values")
	}
	v := f.Values[f.next%len(f.Values)]
	f.next++
	return v, nil
}

// New picks the seeded source when seed is non-zero, otherwise the crypto source.
func New(seed uint64) Source {
	if seed != 0 {
		return NewSeededSource(seed)
	}
	return NewCryptoSource()
}
