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

// FillBinary fills the buffer with 1s at the given density in [0, 1]
// and 0s elsewhere.
func (r *RNG) FillBinary(buf []uint8, density float64) {
	for i := range buf {
		buf[i] = 0
		if r.r.Float64() < density {
			buf[i] = 1
		}
	}
}
