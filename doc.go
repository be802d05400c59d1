// Package lvstep computes single-source shortest paths on weighted
// directed graphs with parallel, bucket-driven relaxation engines.
//
// What is inside:
//
//	• core/      dense-index graph store, sealed before engines read it
//	• distance/  atomic distance vector with compare-and-swap relaxation
//	• frontier/  per-phase active-vertex worklists
//	• workpool/  bounded fork/join pool with phase barriers
//	• stepping/  delta-stepping and radius-stepping
//	• sweep/     range-sweep baseline (parallel Bellman-Ford)
//	• dijkstra/  sequential reference solver
//	• bfs/       reachability and fewest-edge search
//	• builder/   deterministic graph generators
//	• bench/     comparison harness; config/ loads its HCL scenarios
//	• run/, metrics/, ctxlog/ run records, Prometheus, slog plumbing
//
// Quick start:
//
//	g, _ := core.FromTriples([][3]int64{{0, 1, 2}, {0, 3, 6}, {1, 2, 3}})
//	eng, _ := stepping.New(g, 0)
//	if _, err := eng.Run(ctx, 2, 0); err != nil { ... }
//	fmt.Println(eng.Distances()) // [0 2 5 6]
//
// The stepcompare command runs HCL scenarios and prints a timing table:
//
//	go run ./cmd/stepcompare -c scenarios
package lvstep
