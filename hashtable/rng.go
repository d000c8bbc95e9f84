// Package hashtable - random source policy for the universal-hash coefficients.
//
// Determinism:
//   - Seed != 0 ⇒ identical coefficients (and identical slot layout) on every run.
//   - Seed == 0 ⇒ clock-seeded; each table draws its own a, b.
//
// Concurrency:
//   - math/rand.Rand is NOT goroutine-safe. A Table owns its source exclusively.
package hashtable

import (
	"math/rand"
	"time"
)

// rngFromSeed returns a *rand.Rand for the given seed.
// Policy: seed==0 ⇒ seed from the wall clock; otherwise use the seed verbatim.
//
// Complexity: O(1).
func rngFromSeed(seed int64) *rand.Rand {
	s := seed
	if s == 0 {
		s = time.Now().UnixNano()
	}
	return rand.New(rand.NewSource(s))
}

// drawCoefficients picks a ∈ [1, p) and b ∈ [0, p) uniformly.
func drawCoefficients(r *rand.Rand) (a, b uint64) {
	a = 1 + uint64(r.Int63n(int64(mersenne61-1)))
	b = uint64(r.Int63n(int64(mersenne61)))
	return a, b
}
