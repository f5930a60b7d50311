package fx

import (
	"math/rand"
	"time"
)

// Rand is the random source injected into simulations. *rand.Rand
// satisfies it.
type Rand interface {
	Float64() float64
	Intn(n int) int
}

// NewRand returns a seeded source; seed 0 picks a time-based seed.
func NewRand(seed int64) *rand.Rand {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return rand.New(rand.NewSource(seed))
}

// Range returns a uniform value in [lo, hi).
func Range(r Rand, lo, hi float64) float64 {
	return lo + r.Float64()*(hi-lo)
}

// Chance reports true with probability p.
func Chance(r Rand, p float64) bool {
	return r.Float64() < p
}
