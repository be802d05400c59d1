// SPDX-License-Identifier: MIT
// Package: lvstep/builder
//
// impl_random_sparse.go: RandomSparse(p): Erdős–Rényi-style digraph.
//
// Contract:
//   • p ∈ [0,1] (else ErrInvalidProbability).
//   • An RNG is required when 0 < p < 1 (else ErrNeedRandSource).
//   • Each ordered pair (i,j), i≠j, is an independent Bernoulli(p) trial,
//     evaluated in (i asc, j asc) order for determinism.
//
// Complexity: O(V²) trials.

package builder

import (
	"fmt"

	"github.com/katalvlaran/lvstep/core"
)

const methodRandomSparse = "RandomSparse"

// RandomSparse returns a Constructor that adds each directed edge i→j with
// independent probability p.
func RandomSparse(p float64) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if p < 0 || p > 1 {
			return fmt.Errorf("%s: p=%.6f not in [0,1]: %w", methodRandomSparse, p, ErrInvalidProbability)
		}
		if cfg.rng == nil && p > 0 && p < 1 {
			return fmt.Errorf("%s: %w", methodRandomSparse, ErrNeedRandSource)
		}

		n := g.VertexCount()
		var arcs []arc
		for i := 0; i < n; i++ {
			for j := 0; j < n; j++ {
				if i == j {
					continue
				}
				// p ∈ {0,1} stays deterministic without an RNG.
				take := p == 1
				if !take && p > 0 {
					take = cfg.rng.Float64() < p
				}
				if take {
					arcs = append(arcs, arc{i, j, cfg.weightFn(cfg.rng)})
				}
			}
		}

		return emit(methodRandomSparse, g, cfg, arcs)
	}
}
