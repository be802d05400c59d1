// Package sweep implements the range-sweep baseline for single-source
// shortest paths: repeated full-graph parallel relaxation passes.
//
// Each round partitions the vertex range [0, V) recursively into halves down
// to single vertices and relaxes every outgoing edge of each vertex against
// the shared distance store. Partitions are independent fork/join tasks; a
// barrier separates consecutive rounds. The engine is a parallel
// Bellman-Ford with a caller-chosen round count, historically passed as the
// "delta" or "radius" of the naive stepping programs.
//
// Guarantees:
//
//   - Exact distances once rounds >= the edge count of the longest shortest
//     path; MinRoundsForExactness(g) = V-1 always suffices.
//   - Termination after exactly the requested number of rounds.
//   - Once exact, identical results for any parallelism. A partial run may
//     differ between parallelism levels since task order is unspecified.
//
// Complexity:
//
//   - Time:  O(rounds * (V + E)) work, O(rounds * log V) span.
//   - Space: O(V) for distances.
//
// Errors:
//
//   - ErrNilGraph, ErrInvalidSource from New.
//   - ErrInvalidBound (rounds < 0), workpool.ErrInvalidParallelism and
//     ErrEngineStuck from Run.
package sweep
