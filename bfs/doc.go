// Package bfs provides breadth-first search over a core.Graph, returning
// edge-count distances, parent links and visit order.
//
// Weights are ignored: BFS answers reachability and fewest-edge questions.
// The comparison harness uses it to cross-check that every engine reached
// exactly the vertices reachable from the source.
//
// Determinism
//
//	Neighbors are enqueued in adjacency order, so the visit sequence is
//	reproducible for a fixed graph.
//
// Complexity (V = |Vertices|, E = |Edges|)
//
//   - Time:   O(V + E)
//   - Memory: O(V)
package bfs
