// SPDX-License-Identifier: MIT

package builder

import (
	"fmt"
	"math/rand"
)

// DetourFn returns a factor ≥ 1 applied to an edge's straight-line distance.
// It must be deterministic for a given RNG state.
type DetourFn func(rng *rand.Rand) float64

// NoDetour always returns 1.
// Complexity: O(1). Never panics.
func NoDetour(_ *rand.Rand) float64 {
	return 1
}

// UniformDetour returns a DetourFn sampling uniformly in [1, max).
// Panics if max < 1. With a nil rng it yields 1.
// Complexity: O(1).
func UniformDetour(max float64) DetourFn {
	if max < 1 {
		panic(fmt.Sprintf("UniformDetour: require max ≥ 1, got %g", max))
	}

	return func(rng *rand.Rand) float64 {
		if rng == nil || max == 1 {
			return 1
		}

		return 1 + rng.Float64()*(max-1)
	}
}
