// SPDX-License-Identifier: MIT

package builder

import (
	"fmt"
	"math/rand"
)

// builderConfig aggregates all knobs used by constructors.
// It is passed by VALUE to constructors.
type builderConfig struct {
	// place name strategy: index -> name
	nameFn func(int) string
	// RNG for stochastic choices; nil means "no randomness"
	rng *rand.Rand
	// multiplies the straight-line distance of every edge
	detourFn DetourFn
}

func newBuilderConfig(opts ...BuilderOption) builderConfig {
	cfg := builderConfig{
		nameFn:   defaultName,
		rng:      nil,
		detourFn: NoDetour,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// defaultName yields "p0", "p1", ...
func defaultName(i int) string {
	return fmt.Sprintf("p%d", i)
}
