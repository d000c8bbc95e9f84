// SPDX-License-Identifier: MIT

package builder

import "math/rand"

// BuilderOption mutates builderConfig before a build.
type BuilderOption func(*builderConfig)

// WithNameScheme sets the index → place name function. Panics on nil.
func WithNameScheme(fn func(int) string) BuilderOption {
	if fn == nil {
		panic("builder: WithNameScheme(nil)")
	}
	return func(c *builderConfig) {
		c.nameFn = fn
	}
}

// WithRand uses r for every random choice. Panics on nil.
func WithRand(r *rand.Rand) BuilderOption {
	if r == nil {
		panic("builder: WithRand(nil)")
	}
	return func(c *builderConfig) {
		c.rng = r
	}
}

// WithSeed is WithRand with a fresh source seeded by seed.
func WithSeed(seed int64) BuilderOption {
	return func(c *builderConfig) {
		c.rng = rand.New(rand.NewSource(seed))
	}
}

// WithDetourFn sets how much longer than the straight line an edge is.
// Panics on nil.
func WithDetourFn(fn DetourFn) BuilderOption {
	if fn == nil {
		panic("builder: WithDetourFn(nil)")
	}
	return func(c *builderConfig) {
		c.detourFn = fn
	}
}
