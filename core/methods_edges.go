// SPDX-License-Identifier: MIT
//
// File: methods_edges.go
// Role: Edge lifecycle & queries: AddEdge, Weight, EdgeCount.
//
// Policy:
//   - Directed: AddEdge(from, to, …) never implies to→from.
//   - Self-loops and parallel edges are kept as separate entries.
//   - A failed AddEdge leaves the graph unchanged.
package core

import (
	"fmt"
	"math"
)

// AddEdge appends the arc from→to with the given cost.
//
// Steps:
//  1. Validate both endpoints (ErrFromNotFound, then ErrToNotFound).
//  2. Validate cost (ErrBadWeight for NaN or negative).
//  3. Append (to, cost) to from's adjacency list in place.
//
// Complexity: expected O(1) amortised.
func (g *Graph[T]) AddEdge(from, to T, cost float64) error {
	if !g.adj.Contains(from) {
		return ErrFromNotFound
	}
	if !g.adj.Contains(to) {
		return ErrToNotFound
	}
	if math.IsNaN(cost) || cost < 0 {
		return fmt.Errorf("%w: %v", ErrBadWeight, cost)
	}

	list, err := g.adj.GetRef(from)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrFromNotFound, err)
	}
	*list = append(*list, Edge[T]{To: to, Cost: cost})
	g.edges++

	return nil
}

// Weight returns the costs of every from→to edge, in insertion order.
//
// Errors:
//   - ErrFromNotFound / ErrToNotFound for unknown endpoints.
//   - ErrEdgeNotFound if no such edge exists.
//
// Complexity: O(deg⁺(from)).
func (g *Graph[T]) Weight(from, to T) ([]float64, error) {
	if !g.adj.Contains(from) {
		return nil, ErrFromNotFound
	}
	if !g.adj.Contains(to) {
		return nil, ErrToNotFound
	}

	list, err := g.adj.Get(from)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrFromNotFound, err)
	}
	var costs []float64
	for _, e := range list {
		if e.To == to {
			costs = append(costs, e.Cost)
		}
	}
	if len(costs) == 0 {
		return nil, ErrEdgeNotFound
	}

	return costs, nil
}

// HasEdge reports whether at least one from→to edge exists.
func (g *Graph[T]) HasEdge(from, to T) bool {
	_, err := g.Weight(from, to)
	return err == nil
}

// EdgeCount returns |E|, counting parallel edges separately.
func (g *Graph[T]) EdgeCount() int { return g.edges }
