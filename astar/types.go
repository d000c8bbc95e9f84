package astar

import (
	"errors"
	"io"
	"log/slog"
	"math"
)

// Sentinel errors returned by the A* implementation.
var (
	// ErrNilGraph indicates that a nil *core.Graph was passed to Search.
	ErrNilGraph = errors.New("astar: graph is nil")

	// ErrNilHeuristic indicates that no heuristic function was supplied.
	ErrNilHeuristic = errors.New("astar: heuristic is nil")

	// ErrInvalidStartOrGoal indicates that start or goal is not a vertex of the graph.
	ErrInvalidStartOrGoal = errors.New("astar: start or goal vertex not found in graph")

	// ErrNoPathFound indicates that the frontier emptied before the goal was reached.
	ErrNoPathFound = errors.New("astar: no path found")

	// ErrExpansionLimit indicates that WithMaxExpansions stopped the search.
	ErrExpansionLimit = errors.New("astar: expansion limit reached")

	// ErrBrokenPath indicates an internal inconsistency: the goal was reached but
	// its predecessor chain does not lead back to start.
	ErrBrokenPath = errors.New("astar: predecessor chain does not reach start")

	// ErrBookkeeping indicates that a cost or predecessor update could not be stored.
	ErrBookkeeping = errors.New("astar: bookkeeping table update failed")

	// ErrBadMaxExpansions indicates a negative expansion limit.
	ErrBadMaxExpansions = errors.New("astar: MaxExpansions must be non-negative")

	// ErrBadTableCapacity indicates a non-positive initial bookkeeping capacity.
	ErrBadTableCapacity = errors.New("astar: TableCapacity must be positive")
)

// Heuristic estimates the remaining cost from one vertex to another.
// It must never overestimate the true cost for the result to be optimal.
type Heuristic[T comparable] func(from, to T) float64

// ZeroHeuristic always estimates 0. It is trivially admissible and turns
// the search into a uniform-cost search.
func ZeroHeuristic[T comparable](_, _ T) float64 { return 0 }

// Result is the outcome of a successful search.
type Result[T comparable] struct {
	// Path lists the vertices from start to goal inclusive.
	Path []T

	// Cost is the summed edge cost along Path.
	Cost float64

	// Expanded counts frontier entries whose neighbors were relaxed.
	Expanded int

	// Pushed counts frontier insertions, including the start vertex.
	Pushed int

	// Stale counts popped entries skipped because a cheaper cost was
	// recorded for their vertex after they were pushed.
	Stale int
}

// Options configures one search.
//
// Logger        – receives debug/info records; defaults to a discarding logger.
// MaxExpansions – stop with ErrExpansionLimit after this many expansions.
//
//	0 (default) means unbounded.
//
// TableCapacity – initial slot count of the cost and predecessor tables.
//
//	0 (default) sizes them from the graph's vertex count. The
//	tables grow on demand either way.
//
// Seed          – seed for the bookkeeping tables' hash coefficients; 0 = clock.
type Options struct {
	Logger        *slog.Logger
	MaxExpansions int
	TableCapacity int
	Seed          int64
}

// Option represents a functional option for configuring a search.
type Option func(*Options)

// WithLogger routes search logs to l. A nil l is ignored.
func WithLogger(l *slog.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}

// WithMaxExpansions bounds the number of expansions. Panics if n < 0.
func WithMaxExpansions(n int) Option {
	return func(o *Options) {
		if n < 0 {
			panic(ErrBadMaxExpansions.Error())
		}
		o.MaxExpansions = n
	}
}

// WithTableCapacity sets the initial bookkeeping table size. Panics if n < 1.
func WithTableCapacity(n int) Option {
	return func(o *Options) {
		if n < 1 {
			panic(ErrBadTableCapacity.Error())
		}
		o.TableCapacity = n
	}
}

// WithSeed makes the bookkeeping tables' layout reproducible.
func WithSeed(seed int64) Option {
	return func(o *Options) {
		o.Seed = seed
	}
}

// DefaultOptions returns an Options struct with:
//   - a logger that discards everything
//   - no expansion limit
//   - bookkeeping tables sized from the graph
//   - clock-seeded hash coefficients
func DefaultOptions() Options {
	return Options{
		Logger:        slog.New(slog.NewTextHandler(io.Discard, nil)),
		MaxExpansions: 0,
		TableCapacity: 0,
		Seed:          0,
	}
}

// bookkeepingLoad is the load factor above which cost/predecessor tables grow.
const bookkeepingLoad = 0.5

// inf is the cost of a vertex with no recorded path.
var inf = math.Inf(1)
