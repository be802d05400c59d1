// SPDX-License-Identifier: MIT
// Package: lvstep/builder
//
// api.go: public entry point and constructor type.
//
// Design contract:
//   • One orchestrator: BuildGraph(n, bopts, cons...). Creates g with n
//     vertices, resolves cfg, runs cons in order.
//   • Same n/options/seed/constructor order ⇒ identical graphs.
//   • Constructors never panic; they return wrapped sentinel errors.

package builder

import (
	"fmt"

	"github.com/katalvlaran/lvstep/core"
)

// Constructor adds edges to g, whose vertex count is already fixed.
type Constructor func(g *core.Graph, cfg builderConfig) error

// BuildGraph creates a graph over [0, n), resolves the builder configuration
// from bopts and applies every constructor in order. The returned graph is
// still open; engines seal it.
//
// Errors are wrapped as "BuildGraph: %w"; branch with errors.Is against the
// builder or core sentinels.
func BuildGraph(n int, bopts []BuilderOption, cons ...Constructor) (*core.Graph, error) {
	g, err := core.NewGraph(n)
	if err != nil {
		return nil, fmt.Errorf("BuildGraph: %w", err)
	}
	cfg := newBuilderConfig(bopts...)

	for i, fn := range cons {
		if fn == nil {
			return nil, fmt.Errorf("BuildGraph: nil constructor at index %d: %w", i, ErrConstructFailed)
		}
		if err = fn(g, cfg); err != nil {
			return nil, fmt.Errorf("BuildGraph: %w", err)
		}
	}

	return g, nil
}

// arc is a pending edge, buffered so insertion order can be shuffled.
type arc struct {
	u, v int
	w    int64
}

// emit inserts arcs into g, shuffling them first when cfg asks for it.
func emit(method string, g *core.Graph, cfg builderConfig, arcs []arc) error {
	if cfg.shuffle {
		if cfg.rng == nil {
			return fmt.Errorf("%s: shuffle: %w", method, ErrNeedRandSource)
		}
		cfg.rng.Shuffle(len(arcs), func(i, j int) { arcs[i], arcs[j] = arcs[j], arcs[i] })
	}
	for _, a := range arcs {
		if err := g.AddEdge(a.u, a.v, a.w); err != nil {
			return fmt.Errorf("%s: AddEdge(%d→%d, w=%d): %w", method, a.u, a.v, a.w, err)
		}
	}

	return nil
}
