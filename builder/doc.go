// SPDX-License-Identifier: MIT

// Package builder generates geo.Location graphs for tests, benchmarks and
// demos, in the functional-options style of the rest of the module.
//
// The package offers:
//
//   - Constructors (Constructor implementations):
//     – Grid(rows, cols):          rows×cols lattice, 4-neighborhood, two-way edges.
//     – RandomSparse(n, p, extent): n scattered places, each directed pair
//     linked with probability p.
//   - Configuration (BuilderOption):
//     – WithRand / WithSeed:       random source for stochastic constructors.
//     – WithNameScheme:            index → place name.
//     – WithDetourFn:              edge cost = straight-line distance × detour.
//   - Detour distributions (DetourFn):
//     – NoDetour:                  factor 1 (cost equals distance).
//     – UniformDetour(max):        factor ∼U[1, max).
//
// Guarantees:
//
//   - Every edge cost is ≥ the Euclidean distance between its endpoints, so
//     geo.Euclidean stays an admissible heuristic on generated graphs.
//   - Fast-fail on invalid option parameters via panics in option constructors;
//     invalid build parameters are returned as wrapped sentinel errors.
//   - Identical seeds produce identical graphs.
package builder
