// SPDX-License-Identifier: MIT
//
// File: methods_adjacent.go
// Role: Neighborhood queries used by traversal code.
package core

// Neighbors returns a copy of vertex's outgoing edges.
//
// An unknown vertex, or one without outgoing edges, yields an empty slice:
// traversal code treats "not found" as "no neighbors".
//
// Complexity: O(deg⁺(vertex)).
func (g *Graph[T]) Neighbors(vertex T) []Edge[T] {
	list, err := g.adj.Get(vertex)
	if err != nil || len(list) == 0 {
		return []Edge[T]{}
	}
	out := make([]Edge[T], len(list))
	copy(out, list)

	return out
}

// OutDegree returns the number of outgoing edges of vertex (0 if unknown).
func (g *Graph[T]) OutDegree(vertex T) int {
	list, err := g.adj.Get(vertex)
	if err != nil {
		return 0
	}

	return len(list)
}
