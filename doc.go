// Package pathfinder is an in-memory toolkit for finding cheapest routes
// between places with A* search, built bottom-up from its own containers.
//
// What is inside?
//
//	• hashtable/ — open addressing, linear probing, tombstones and universal
//	               hashing ((a·k + b) mod p) mod m with p = 2^61 − 1
//	• pqueue/    — array-backed binary min-heap and priority queue
//	• stack/     — slice-backed LIFO used to rebuild paths
//	• core/      — weighted directed multigraph stored in a hashtable.Table
//	• geo/       — Location vertices and the straight-line heuristic
//	• astar/     — A* search with logging, Prometheus metrics and tracing
//	• builder/   — grid and random graph generators for tests and benchmarks
//
// Commands and examples:
//
//	cmd/pathfinder/           — interactive search over the demo maps
//	examples/city_route/      — closed road modelled as +Inf
//	examples/terrain_navigation/ — debug logging and expansion limits
//
// Quick ASCII example:
//
//	    A ──10──> B ──10──> C
//	    └─────────15───────┘
//
// represents three places where the direct road A→C (15) beats the detour
// through B (20); astar.AStar(g, A, C, geo.Euclidean) returns [A C].
//
//	go install github.com/katalvlaran/pathfinder/cmd/pathfinder@latest
package pathfinder
