package astar

import (
	"errors"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// searchTotal counts searches by outcome
	searchTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "pathfinder_astar_search_total",
		Help: "Total A* searches by outcome",
	}, []string{"outcome"})

	// searchDuration tracks search latency
	searchDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "pathfinder_astar_search_duration_seconds",
		Help:    "A* search duration in seconds",
		Buckets: prometheus.ExponentialBuckets(0.00001, 2, 16), // 10µs to ~330ms
	})

	// searchExpanded tracks how many vertices a search expanded
	searchExpanded = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "pathfinder_astar_expanded_vertices",
		Help:    "Number of vertices expanded per A* search",
		Buckets: prometheus.ExponentialBuckets(1, 2, 16),
	})
)

// Outcome labels of searchTotal.
const (
	outcomeFound   = "found"
	outcomeNoPath  = "no_path"
	outcomeInvalid = "invalid"
	outcomeLimit   = "limit"
	outcomeError   = "error"
)

// outcome maps a search error to its metric label.
func outcome(err error) string {
	switch {
	case err == nil:
		return outcomeFound
	case errors.Is(err, ErrNoPathFound):
		return outcomeNoPath
	case errors.Is(err, ErrExpansionLimit):
		return outcomeLimit
	case errors.Is(err, ErrInvalidStartOrGoal),
		errors.Is(err, ErrNilGraph),
		errors.Is(err, ErrNilHeuristic):
		return outcomeInvalid
	default:
		return outcomeError
	}
}

func observe(err error, expanded int, elapsed time.Duration) {
	searchTotal.WithLabelValues(outcome(err)).Inc()
	searchDuration.Observe(elapsed.Seconds())
	searchExpanded.Observe(float64(expanded))
}
