// Package hashtable provides Table, a generic open-addressing associative
// container used as the storage primitive of the graph and of the search
// bookkeeping in this module.
//
// Overview:
//
//   - Universal hashing: h_{a,b}(k) = ((a·k + b) mod p) mod m with p = 2^61 - 1,
//     a ∈ [1, p) and b ∈ [0, p) drawn once per table (per rehash with growth).
//   - Keys are first reduced to 64 bits by a Hasher (xxhash by default).
//   - Linear probing with tombstones: Remove never breaks another key's chain.
//   - Fixed capacity by default; WithGrowth enables doubling rehash.
//
// Error handling (sentinel errors):
//
//   - ErrTableFull:     no free slot within m probes (fixed capacity).
//   - ErrKeyNotFound:   lookup or remove miss.
//   - ErrBadCapacity:   New called with capacity < 1.
//   - ErrBadLoadFactor: WithGrowth called with a value outside (0, 1) (panics).
//
// Determinism:
//
//   - WithSeed / WithRand make the coefficients, and therefore the slot layout
//     and Range order, reproducible. Without them each table is clock-seeded.
//
// Thread safety:
//
//   - A Table is not safe for concurrent use; synchronize externally.
package hashtable
