// SPDX-License-Identifier: MIT
//
// File: api.go
// Role: Read-only summary of a graph.
package core

// GraphStats is a snapshot of graph size.
type GraphStats struct {
	VertexCount int
	EdgeCount   int
	Capacity    int
	LoopCount   int
}

// Stats returns counts of vertices, edges (parallel edges counted
// separately), self-loops and the vertex capacity.
// Complexity: O(V + E).
func (g *Graph[T]) Stats() GraphStats {
	st := GraphStats{
		VertexCount: g.adj.Len(),
		EdgeCount:   g.edges,
		Capacity:    g.adj.Cap(),
	}
	g.adj.Range(func(v T, list []Edge[T]) bool {
		for _, e := range list {
			if e.To == v {
				st.LoopCount++
			}
		}
		return true
	})

	return st
}
