// Package core provides the immutable weighted adjacency structure queried by
// the shortest-path engines.
//
// A Graph G = (V, E) has vertices identified by the dense integers [0, V)
// and directed edges u→v carrying a non-negative int64 weight. There is no
// vertex type beyond its index and no removal operation: graphs are
// write-once.
//
// Lifecycle:
//
//	g, _ := core.NewGraph(5)      // open: AddEdge allowed
//	_ = g.AddEdge(0, 1, 2)
//	g.Seal()                      // read-only from here on
//	for e := range g.Adjacency(0) { ... }
//
// Engines seal the graph in their constructors, so a graph handed to an
// engine can no longer change while a run is in flight. Reads after sealing
// take no locks.
//
// Validation is eager: AddEdge rejects out-of-range endpoints with
// ErrInvalidVertex and negative weights with ErrInvalidWeight, so no
// engine ever discovers bad input mid-run.
//
// Complexity:
//
//   - NewGraph: O(V)
//   - AddEdge:  amortized O(1)
//   - Adjacency / Edges: O(1) to obtain, O(deg(u)) to iterate
package core
