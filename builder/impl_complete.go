// SPDX-License-Identifier: MIT
// Package: lvstep/builder
//
// impl_complete.go: Complete(): fully connected symmetric digraph.
//
// Contract:
//   • Needs g.VertexCount() ≥ 1 (else ErrTooFewVertices).
//   • For every pair i<j draws one weight w and emits both i→j and j→i
//     with w, so the digraph models an undirected complete graph.
//   • Pairs are drawn in lexicographic (i,j) order; with WithShuffledEdges
//     the insertion order is then shuffled.
//
// Complexity: O(V²) time and space for the buffered arcs.

package builder

import (
	"fmt"

	"github.com/katalvlaran/lvstep/core"
)

const (
	methodComplete   = "Complete"
	minCompleteNodes = 1
)

// Complete returns a Constructor that connects every ordered pair of
// distinct vertices.
func Complete() Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		n := g.VertexCount()
		if n < minCompleteNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodComplete, n, minCompleteNodes, ErrTooFewVertices)
		}

		arcs := make([]arc, 0, n*(n-1))
		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				w := cfg.weightFn(cfg.rng)
				arcs = append(arcs, arc{i, j, w}, arc{j, i, w})
			}
		}

		return emit(methodComplete, g, cfg, arcs)
	}
}
