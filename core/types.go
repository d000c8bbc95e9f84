// SPDX-License-Identifier: MIT

// Package core defines the central Graph and Edge types of a weighted,
// directed graph whose adjacency lists live in a hashtable.Table.
//
// This file declares Edge, Graph, GraphOption, sentinel errors, and the
// NewGraph constructor.
//
// Errors:
//
//	ErrVertexAlreadyExists - AddVertex on a vertex that is already present.
//	ErrGraphFull           - the adjacency table has no free slot left.
//	ErrFromNotFound        - edge source vertex does not exist.
//	ErrToNotFound          - edge target vertex does not exist.
//	ErrEdgeNotFound        - no edge between the requested pair.
//	ErrBadWeight           - NaN or negative edge cost.
//	ErrBadCapacity         - WithCapacity given a non-positive slot count (panics).
package core

import (
	"errors"
	"math/rand"

	"github.com/katalvlaran/pathfinder/hashtable"
)

// Sentinel errors for core graph operations.
var (
	// ErrVertexAlreadyExists indicates AddVertex was called for a known vertex.
	ErrVertexAlreadyExists = errors.New("core: vertex already exists")

	// ErrGraphFull indicates the fixed-capacity adjacency table is full.
	ErrGraphFull = errors.New("core: graph is full")

	// ErrFromNotFound indicates the source endpoint of an edge is unknown.
	ErrFromNotFound = errors.New("core: from vertex not found")

	// ErrToNotFound indicates the target endpoint of an edge is unknown.
	ErrToNotFound = errors.New("core: to vertex not found")

	// ErrEdgeNotFound indicates no edge connects the requested pair.
	ErrEdgeNotFound = errors.New("core: edge not found")

	// ErrBadWeight indicates a NaN or negative edge cost.
	ErrBadWeight = errors.New("core: edge cost must be a non-negative number")

	// ErrBadCapacity indicates WithCapacity was given a value below one.
	ErrBadCapacity = errors.New("core: capacity must be positive")
)

// Edge is one outgoing arc in a vertex's adjacency list.
type Edge[T comparable] struct {
	// To is the target vertex.
	To T

	// Cost is the non-negative traversal cost.
	Cost float64
}

// GraphOption configures behavior of a Graph before creation.
type GraphOption func(*graphConfig)

type graphConfig struct {
	capacity  int
	tableOpts []hashtable.Option
}

// WithCapacity sets the number of adjacency-table slots, i.e. the maximum
// number of vertices. The table never grows. Panics if n < 1.
func WithCapacity(n int) GraphOption {
	return func(c *graphConfig) {
		if n < 1 {
			panic(ErrBadCapacity.Error())
		}
		c.capacity = n
	}
}

// WithSeed makes the adjacency table's hash coefficients reproducible.
func WithSeed(seed int64) GraphOption {
	return func(c *graphConfig) {
		c.tableOpts = append(c.tableOpts, hashtable.WithSeed(seed))
	}
}

// WithRand injects the random source of the adjacency table.
func WithRand(r *rand.Rand) GraphOption {
	return func(c *graphConfig) {
		c.tableOpts = append(c.tableOpts, hashtable.WithRand(r))
	}
}

// Graph is a weighted, directed multigraph keyed by vertex value.
//
// A vertex exists iff it is a key of adj (possibly with no edges). Edges
// are appended to the source's list; parallel edges and self-loops are kept.
// order records vertex insertion order so enumeration is deterministic.
//
// Graph is not safe for concurrent mutation.
type Graph[T comparable] struct {
	adj   *hashtable.Table[T, []Edge[T]]
	order []T
	edges int
}

// NewGraph creates an empty Graph with hashtable.DefaultCapacity slots
// unless WithCapacity says otherwise.
// Complexity: O(capacity).
func NewGraph[T comparable](opts ...GraphOption) *Graph[T] {
	cfg := graphConfig{capacity: hashtable.DefaultCapacity}
	for _, opt := range opts {
		opt(&cfg)
	}

	return &Graph[T]{
		adj: hashtable.MustNew[T, []Edge[T]](cfg.capacity, cfg.tableOpts...),
	}
}
