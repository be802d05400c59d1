// SPDX-License-Identifier: MIT

package core

import (
	"fmt"
	"iter"
)

// AddEdge appends the directed edge u→v with weight w to u's adjacency.
//
// Returns:
//   - ErrSealed if the graph has been sealed.
//   - ErrInvalidVertex if u or v is outside [0, V).
//   - ErrInvalidWeight if w < 0.
//
// Parallel edges and self-loops are accepted; relaxation handles both.
// Complexity: amortized O(1).
func (g *Graph) AddEdge(u, v int, w int64) error {
	if g.sealed.Load() {
		return ErrSealed
	}
	// Validate endpoints before the weight so an out-of-range index is
	// reported even when the weight is also bad.
	if !g.valid(u) {
		return fmt.Errorf("%w: source %d not in [0,%d)", ErrInvalidVertex, u, len(g.adj))
	}
	if !g.valid(v) {
		return fmt.Errorf("%w: destination %d not in [0,%d)", ErrInvalidVertex, v, len(g.adj))
	}
	if w < 0 {
		return fmt.Errorf("%w: edge %d→%d weight=%d", ErrInvalidWeight, u, v, w)
	}

	g.adj[u] = append(g.adj[u], Edge{To: v, Weight: w})
	g.edges++
	if w > g.maxWeight {
		g.maxWeight = w
	}

	return nil
}

// Adjacency returns u's outgoing edges as a lazy sequence.
// The sequence may be ranged over any number of times; each pass observes
// the edges in insertion order. An out-of-range u yields nothing.
func (g *Graph) Adjacency(u int) iter.Seq[Edge] {
	return func(yield func(Edge) bool) {
		if !g.valid(u) {
			return
		}
		for _, e := range g.adj[u] {
			if !yield(e) {
				return
			}
		}
	}
}

// Edges returns the backing slice of u's outgoing edges, or nil for an
// out-of-range u. Callers must not modify the returned slice.
// Complexity: O(1).
func (g *Graph) Edges(u int) []Edge {
	if !g.valid(u) {
		return nil
	}

	return g.adj[u]
}

// Seal freezes the graph. Subsequent AddEdge calls fail with ErrSealed.
// Sealing is idempotent.
func (g *Graph) Seal() { g.sealed.Store(true) }

// Sealed reports whether Seal has been called.
func (g *Graph) Sealed() bool { return g.sealed.Load() }

// VertexCount returns V.
func (g *Graph) VertexCount() int { return len(g.adj) }

// EdgeCount returns the total number of directed edges.
func (g *Graph) EdgeCount() int { return g.edges }

// MaxWeight returns the largest edge weight, or 0 for an edgeless graph.
func (g *Graph) MaxWeight() int64 { return g.maxWeight }

// HasVertex reports whether u is a valid index.
func (g *Graph) HasVertex(u int) bool { return g.valid(u) }

func (g *Graph) valid(u int) bool { return u >= 0 && u < len(g.adj) }
