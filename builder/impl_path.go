// SPDX-License-Identifier: MIT
// Package: lvstep/builder
//
// impl_path.go: Path(): directed chain 0→1→…→V-1.
//
// Useful as a worst case for round-based engines: the shortest path to the
// last vertex has V-1 edges.

package builder

import (
	"fmt"

	"github.com/katalvlaran/lvstep/core"
)

const (
	methodPath   = "Path"
	minPathNodes = 2
)

// Path returns a Constructor that links vertex i to i+1 for every i.
func Path() Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		n := g.VertexCount()
		if n < minPathNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodPath, n, minPathNodes, ErrTooFewVertices)
		}
		arcs := make([]arc, 0, n-1)
		for i := 0; i+1 < n; i++ {
			arcs = append(arcs, arc{i, i + 1, cfg.weightFn(cfg.rng)})
		}

		return emit(methodPath, g, cfg, arcs)
	}
}
