package core

import "math/rand/v2"

// RNG is a thin convenience wrapper around math/rand/v2 for deterministic seeding.
type RNG struct {
	r *rand.Rand
}

// NewRNG creates a deterministic RNG using the provided seed.
func NewRNG(seed int64) *RNG {
	return &RNG{r: rand.New(rand.NewPCG(uint64(seed), 0))}
}

// FillRandom sets each cell alive with probability density. A density of 0.5
// gives the uniform alive/dead split.
func FillRandom(r *rand.Rand, buf []Cell, density float64) {
	if density == 0.5 {
		for i := range buf {
			buf[i] = Cell(r.IntN(2) == 1)
		}
		return
	}
	for i := range buf {
		buf[i] = Cell(r.Float64() < density)
	}
}

// Source exposes the underlying rand.Rand for advanced use.
func (r *RNG) Source() *rand.Rand { return r.r }
