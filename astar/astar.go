package astar

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/katalvlaran/pathfinder/core"
	"github.com/katalvlaran/pathfinder/hashtable"
	"github.com/katalvlaran/pathfinder/pqueue"
)

const tracerName = "github.com/katalvlaran/pathfinder/astar"

// AStar returns the cheapest path from start to goal, inclusive of both.
// It is Search without the statistics.
func AStar[T comparable](g *core.Graph[T], start, goal T, h Heuristic[T], opts ...Option) ([]T, error) {
	res, err := Search(g, start, goal, h, opts...)
	if err != nil {
		return nil, err
	}

	return res.Path, nil
}

// Search runs A* from start to goal on g guided by h.
//
// Preconditions and validation (in order):
//  1. g must be non-nil (ErrNilGraph).
//  2. h must be non-nil (ErrNilHeuristic).
//  3. start and goal must be vertices of g (ErrInvalidStartOrGoal).
//
// Errors during the search:
//   - ErrNoPathFound when goal is unreachable.
//   - ErrExpansionLimit when WithMaxExpansions stops the search.
//   - ErrBookkeeping / ErrBrokenPath on internal inconsistencies.
//
// start == goal yields the one-vertex path [start] with cost 0.
//
// Complexity:
//
//   - Time:  O((V + E) log E) with a consistent heuristic.
//   - Space: O(V + E) for the bookkeeping tables and the lazy frontier.
func Search[T comparable](g *core.Graph[T], start, goal T, h Heuristic[T], opts ...Option) (Result[T], error) {
	return SearchContext(context.Background(), g, start, goal, h, opts...)
}

// SearchContext is Search recording an OpenTelemetry span under ctx.
// ctx is not consulted for cancellation; use WithMaxExpansions to bound work.
func SearchContext[T comparable](ctx context.Context, g *core.Graph[T], start, goal T, h Heuristic[T], opts ...Option) (Result[T], error) {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	_, span := otel.Tracer(tracerName).Start(ctx, "astar.Search",
		trace.WithAttributes(attribute.Int("max_expansions", cfg.MaxExpansions)),
	)
	defer span.End()
	if span.IsRecording() {
		span.SetAttributes(
			attribute.String("start", fmt.Sprint(start)),
			attribute.String("goal", fmt.Sprint(goal)),
		)
	}

	began := time.Now()
	res, err := search(g, start, goal, h, cfg)
	elapsed := time.Since(began)
	observe(err, res.Expanded, elapsed)

	span.SetAttributes(
		attribute.Int("expanded", res.Expanded),
		attribute.Int("pushed", res.Pushed),
		attribute.String("outcome", outcome(err)),
	)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "search failed")
		cfg.Logger.Debug("astar_search_failed",
			slog.Any("start", start),
			slog.Any("goal", goal),
			slog.Int("expanded", res.Expanded),
			slog.String("error", err.Error()),
		)

		return res, err
	}

	span.SetAttributes(
		attribute.Int("path_len", len(res.Path)),
		attribute.Float64("cost", res.Cost),
	)
	span.SetStatus(codes.Ok, "path found")
	cfg.Logger.Info("astar_search_complete",
		slog.Any("start", start),
		slog.Any("goal", goal),
		slog.Int("path_len", len(res.Path)),
		slog.Float64("cost", res.Cost),
		slog.Int("expanded", res.Expanded),
		slog.Int("pushed", res.Pushed),
		slog.Duration("elapsed", elapsed),
	)

	return res, nil
}

func search[T comparable](g *core.Graph[T], start, goal T, h Heuristic[T], cfg Options) (Result[T], error) {
	if g == nil {
		return Result[T]{}, ErrNilGraph
	}
	if h == nil {
		return Result[T]{}, ErrNilHeuristic
	}
	if !g.HasVertex(start) || !g.HasVertex(goal) {
		return Result[T]{}, fmt.Errorf("%w: start=%v goal=%v", ErrInvalidStartOrGoal, start, goal)
	}

	capacity := cfg.TableCapacity
	if capacity == 0 {
		capacity = 2*g.VertexCount() + 1
	}
	tableOpts := []hashtable.Option{
		hashtable.WithGrowth(bookkeepingLoad),
		hashtable.WithSeed(cfg.Seed),
	}

	r := &runner[T]{
		g:         g,
		start:     start,
		goal:      goal,
		h:         h,
		options:   cfg,
		costSoFar: hashtable.MustNew[T, float64](capacity, tableOpts...),
		cameFrom:  hashtable.MustNew[T, T](capacity, tableOpts...),
		frontier:  pqueue.New[frontierItem[T]](frontierLess[T]),
		debug:     cfg.Logger.Enabled(context.Background(), slog.LevelDebug),
	}

	if err := r.init(); err != nil {
		return r.result(), err
	}
	if err := r.process(); err != nil {
		return r.result(), err
	}

	return r.finish()
}

// runner holds the mutable state for a single A* execution.
type runner[T comparable] struct {
	g           *core.Graph[T]                         // read-only input graph
	start, goal T                                      // search endpoints
	h           Heuristic[T]                           // remaining-cost estimate
	options     Options                                // limits and logger
	costSoFar   *hashtable.Table[T, float64]           // best known cost from start
	cameFrom    *hashtable.Table[T, T]                 // predecessor on the best known path
	frontier    *pqueue.PriorityQueue[frontierItem[T]] // lazy open set
	seq         uint64                                 // next push sequence number
	expanded    int
	pushed      int
	stale       int
	debug       bool // per-expansion logging enabled
}

// init records costSoFar[start] = 0 and queues start with priority h(start, goal).
func (r *runner[T]) init() error {
	if err := r.costSoFar.Insert(r.start, 0); err != nil {
		return fmt.Errorf("%w: cost of %v: %w", ErrBookkeeping, r.start, err)
	}
	r.push(r.start, 0)

	return nil
}

// push queues vertex with priority cost + h(vertex, goal).
func (r *runner[T]) push(vertex T, cost float64) {
	r.frontier.Push(frontierItem[T]{
		vertex:   vertex,
		cost:     cost,
		priority: cost + r.h(vertex, r.goal),
		seq:      r.seq,
	})
	r.seq++
	r.pushed++
}

// process pops the lowest-priority item until goal is popped.
// It returns nil when goal is reached and ErrNoPathFound when the frontier empties.
func (r *runner[T]) process() error {
	for !r.frontier.IsEmpty() {
		item, _ := r.frontier.Pop()
		current := item.vertex

		if current == r.goal {
			return nil
		}

		// skip entries superseded by a cheaper path found after they were pushed
		if item.cost > r.cost(current) {
			r.stale++
			continue
		}

		if r.options.MaxExpansions > 0 && r.expanded >= r.options.MaxExpansions {
			return fmt.Errorf("%w: %d expansions", ErrExpansionLimit, r.expanded)
		}
		r.expanded++
		if r.debug {
			r.options.Logger.Debug("astar_expand",
				slog.Any("vertex", current),
				slog.Float64("cost", item.cost),
				slog.Float64("priority", item.priority),
			)
		}

		if err := r.relax(current); err != nil {
			return err
		}
	}

	return ErrNoPathFound
}

// relax improves the recorded cost of each neighbor of current reachable
// more cheaply through it and queues the improved neighbors.
func (r *runner[T]) relax(current T) error {
	base := r.cost(current)
	for _, e := range r.g.Neighbors(current) {
		next := base + e.Cost
		// strict: equal-cost alternatives keep the first predecessor
		if !(next < r.cost(e.To)) {
			continue
		}
		if err := r.costSoFar.Insert(e.To, next); err != nil {
			return fmt.Errorf("%w: cost of %v: %w", ErrBookkeeping, e.To, err)
		}
		if err := r.cameFrom.Insert(e.To, current); err != nil {
			return fmt.Errorf("%w: predecessor of %v: %w", ErrBookkeeping, e.To, err)
		}
		r.push(e.To, next)
	}

	return nil
}

// cost returns costSoFar[v], or +Inf when v has not been reached.
func (r *runner[T]) cost(v T) float64 {
	c, err := r.costSoFar.Get(v)
	if err != nil {
		return inf
	}

	return c
}

// finish rebuilds the path to goal.
func (r *runner[T]) finish() (Result[T], error) {
	res := r.result()
	path, err := reconstructPath(r.cameFrom, r.start, r.goal)
	if err != nil {
		return res, err
	}
	res.Path = path
	res.Cost = r.cost(r.goal)

	return res, nil
}

func (r *runner[T]) result() Result[T] {
	return Result[T]{
		Expanded: r.expanded,
		Pushed:   r.pushed,
		Stale:    r.stale,
	}
}
