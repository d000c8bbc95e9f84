// SPDX-License-Identifier: MIT
//
// File: methods_vertices.go
// Role: Vertex lifecycle & queries.
//
// Determinism:
//   - Vertices() returns vertices in insertion order.
package core

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/pathfinder/hashtable"
)

// AddVertex registers id with an empty adjacency list.
//
// Errors:
//   - ErrVertexAlreadyExists: id is already a vertex.
//   - ErrGraphFull: the adjacency table has no free slot (wraps hashtable.ErrTableFull).
//
// Complexity: expected O(1).
func (g *Graph[T]) AddVertex(id T) error {
	if g.adj.Contains(id) {
		return ErrVertexAlreadyExists
	}

	if err := g.adj.Insert(id, nil); err != nil {
		if errors.Is(err, hashtable.ErrTableFull) {
			return fmt.Errorf("%w: %w", ErrGraphFull, err)
		}
		return err
	}
	g.order = append(g.order, id)

	return nil
}

// HasVertex reports whether id is a vertex. Used to validate search
// endpoints before running a search.
// Complexity: expected O(1).
func (g *Graph[T]) HasVertex(id T) bool {
	return g.adj.Contains(id)
}

// Vertices returns a copy of all vertices in insertion order.
// Complexity: O(V).
func (g *Graph[T]) Vertices() []T {
	out := make([]T, len(g.order))
	copy(out, g.order)

	return out
}

// VertexCount returns |V|.
func (g *Graph[T]) VertexCount() int { return g.adj.Len() }

// Capacity returns the maximum number of vertices.
func (g *Graph[T]) Capacity() int { return g.adj.Cap() }
