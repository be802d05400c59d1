// Package bench is the comparison harness: it generates graphs, runs the
// selected engines on them, times every run and optionally checks each
// distance vector against the sequential Dijkstra solver.
//
// A Scenario names a graph generator (complete, sparse or path), its size
// and weight range, the number of loops and the engines to compare. A
// Runner executes it and returns a Report with per-algorithm averages and
// the total distance of every loop; WriteTable renders reports as an
// aligned text table.
//
// Scenarios are deterministic for a fixed Seed: every loop draws its graph
// and, with RandomSource, its source from one generator seeded once.
package bench
