// Command pathfinder runs an interactive A* search over one of the demo maps.
//
// Usage:
//
//	pathfinder [-graph campus|planet] [-seed N] [-log-level debug|info|warn|error]
//	           [-max-expansions N] [-metrics]
//
// The places of the chosen map are listed with 1-based numbers; answer with
// "start,goal" (for example "1,3"). Invalid answers are explained and the
// question is repeated.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/common/expfmt"

	"github.com/katalvlaran/pathfinder/astar"
	"github.com/katalvlaran/pathfinder/core"
	"github.com/katalvlaran/pathfinder/geo"
	"github.com/katalvlaran/pathfinder/internal/demo"
	"github.com/katalvlaran/pathfinder/internal/prompt"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

// config holds the parsed command line.
type config struct {
	graph         string
	seed          int64
	logLevel      slog.Level
	maxExpansions int
	metrics       bool
}

func parseFlags(args []string, stderr io.Writer) (config, error) {
	var cfg config
	fs := flag.NewFlagSet("pathfinder", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.StringVar(&cfg.graph, "graph", "campus", "demo map: "+strings.Join(demo.Names(), "|"))
	fs.Int64Var(&cfg.seed, "seed", 0, "hash seed for reproducible table layouts (0 = clock)")
	fs.TextVar(&cfg.logLevel, "log-level", slog.LevelWarn, "log level: debug|info|warn|error")
	fs.IntVar(&cfg.maxExpansions, "max-expansions", 0, "stop the search after N expansions (0 = unbounded)")
	fs.BoolVar(&cfg.metrics, "metrics", false, "print search metrics to stderr on exit")
	if err := fs.Parse(args); err != nil {
		return cfg, err
	}
	if cfg.maxExpansions < 0 {
		return cfg, fmt.Errorf("-max-expansions must be non-negative, got %d", cfg.maxExpansions)
	}

	return cfg, nil
}

func run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	cfg, err := parseFlags(args, stderr)
	if errors.Is(err, flag.ErrHelp) {
		return 0
	}
	if err != nil {
		fmt.Fprintln(stderr, err)
		return 2
	}

	logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: cfg.logLevel}))

	build, err := demo.ByName(cfg.graph)
	if err != nil {
		logger.Error("unknown map", slog.String("graph", cfg.graph), slog.String("error", err.Error()))
		return 2
	}
	g := build(core.WithSeed(cfg.seed))
	logger.Info("map loaded",
		slog.String("graph", cfg.graph),
		slog.Int("vertices", g.VertexCount()),
		slog.Int("edges", g.EdgeCount()),
	)

	fmt.Fprintf(stdout, "Places on the %s map:\n", cfg.graph)
	start, goal, err := prompt.Select(stdin, stdout, g.Vertices())
	if err != nil {
		fmt.Fprintln(stdout)
		logger.Error("no selection", slog.String("error", err.Error()))
		return 1
	}

	res, err := astar.SearchContext(context.Background(), g, start, goal, geo.Euclidean,
		astar.WithLogger(logger),
		astar.WithMaxExpansions(cfg.maxExpansions),
		astar.WithSeed(cfg.seed),
	)
	if cfg.metrics {
		defer dumpMetrics(stderr, logger)
	}
	if err != nil {
		fmt.Fprintf(stdout, "No route from %s to %s: %v\n", start.Name, goal.Name, err)
		return 1
	}

	printRoute(stdout, g, res)

	return 0
}

// printRoute writes one line per hop with its cheapest edge cost, then the total.
func printRoute(w io.Writer, g *core.Graph[geo.Location], res astar.Result[geo.Location]) {
	fmt.Fprintf(w, "Route (%d stops, %d expanded):\n", len(res.Path), res.Expanded)
	fmt.Fprintf(w, "  %v\n", res.Path[0])
	for i := 1; i < len(res.Path); i++ {
		from, to := res.Path[i-1], res.Path[i]
		fmt.Fprintf(w, "  -> %v  [+%g]\n", to, cheapest(g, from, to))
	}
	fmt.Fprintf(w, "Total distance: %g\n", res.Cost)
}

func cheapest(g *core.Graph[geo.Location], from, to geo.Location) float64 {
	costs, err := g.Weight(from, to)
	if err != nil || len(costs) == 0 {
		return 0
	}
	best := costs[0]
	for _, c := range costs[1:] {
		best = min(best, c)
	}

	return best
}

// dumpMetrics writes the pathfinder_* families of the default registry in
// the Prometheus text format.
func dumpMetrics(w io.Writer, logger *slog.Logger) {
	families, err := prometheus.DefaultGatherer.Gather()
	if err != nil {
		logger.Warn("gather metrics", slog.String("error", err.Error()))
		return
	}
	for _, mf := range families {
		if !strings.HasPrefix(mf.GetName(), "pathfinder_") {
			continue
		}
		if _, err := expfmt.MetricFamilyToText(w, mf); err != nil {
			logger.Warn("write metrics", slog.String("error", err.Error()))
			return
		}
	}
}
