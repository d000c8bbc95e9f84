// SPDX-License-Identifier: MIT

// Package core provides Graph, a weighted directed multigraph whose
// adjacency lists are stored in a fixed-capacity hashtable.Table.
//
// The Graph G = (V, E):
//
//   - Vertices are values of any comparable type T; T is the vertex identity
//     (for example geo.Location, which carries a name and coordinates).
//   - Edges are (to, cost) pairs appended to the source vertex's list.
//     Directed only; parallel edges and self-loops are permitted.
//   - Capacity is fixed at construction (WithCapacity, default 101 slots).
//     AddVertex reports ErrGraphFull once the table cannot take more keys.
//
// Core Methods:
//
//	AddVertex(id T) error                   // O(1) expected
//	HasVertex(id T) bool                    // O(1) expected
//	AddEdge(from, to T, cost float64) error // O(1) expected
//	Neighbors(v T) []Edge[T]                // O(deg⁺(v)); empty for unknown v
//	Weight(from, to T) ([]float64, error)   // O(deg⁺(from)); all parallel costs
//	Vertices() []T                          // insertion order
//
// Thread safety:
//
//   - Graph is single-threaded by design; callers own it exclusively.
package core
