// Package astar implements A* shortest-path search over a core.Graph.
//
// Overview:
//
//   - A* expands vertices in order of f(v) = g(v) + h(v, goal), where g(v) is
//     the cheapest cost from start found so far and h is a caller-supplied
//     estimate of the remaining cost.
//   - With an admissible heuristic (never overestimating) the returned path
//     is a cheapest one. ZeroHeuristic degrades the search to uniform cost.
//   - The graph is never mutated; all per-search state lives in two
//     hashtable.Table instances (cost so far, predecessor) and a
//     pqueue.PriorityQueue frontier, discarded after the call.
//
// Performance and complexity:
//
//   - Time:  O((V + E) log E) with a consistent heuristic.
//   - Each improvement pushes a fresh frontier entry ("lazy decrease-key");
//     entries superseded by a cheaper cost are skipped when popped.
//   - Space: O(V + E).
//
// Frontier ordering:
//
//   - Ascending priority; a NaN priority (from a misbehaving heuristic) sorts
//     after every number; equal priorities pop in push order.
//
// Error handling (sentinel errors):
//
//   - ErrNilGraph, ErrNilHeuristic, ErrInvalidStartOrGoal:
//     Input validation, checked in that order.
//   - ErrNoPathFound:
//     The frontier emptied before goal was popped.
//   - ErrExpansionLimit:
//     WithMaxExpansions bounded the search.
//   - ErrBookkeeping, ErrBrokenPath:
//     Internal inconsistencies; a truncated path is never returned.
//
// Observability:
//
//   - WithLogger routes an info record per successful search and a debug
//     record per expansion to a log/slog logger.
//   - Prometheus counters/histograms (pathfinder_astar_*) are registered on the
//     default registry.
//   - SearchContext records an OpenTelemetry span under the caller's context.
//
// API reference:
//
//	func AStar[T comparable](g *core.Graph[T], start, goal T, h Heuristic[T], opts ...Option) ([]T, error)
//	func Search[T comparable](g *core.Graph[T], start, goal T, h Heuristic[T], opts ...Option) (Result[T], error)
//	func SearchContext[T comparable](ctx context.Context, g *core.Graph[T], start, goal T, h Heuristic[T], opts ...Option) (Result[T], error)
package astar
