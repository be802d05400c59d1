// SPDX-License-Identifier: MIT
// Package: lvstep/builder
//
// config.go: internal configuration and deterministic defaults.
//
// Deterministic defaults:
//   • rng      = nil              (no randomness unless seeded)
//   • weightFn = ConstantWeightFn(DefaultEdgeWeight)
//   • shuffle  = false            (edges inserted in generation order)

package builder

import "math/rand"

// DefaultEdgeWeight is the weight used when no WeightFn is configured.
const DefaultEdgeWeight int64 = 1

// builderConfig aggregates all knobs used by constructors.
// It is passed by value so constructors cannot leak changes to each other.
type builderConfig struct {
	rng      *rand.Rand // nil means "no randomness"
	weightFn WeightFn   // per-edge weight generator
	shuffle  bool       // shuffle edge insertion order (needs rng)
}

// newBuilderConfig applies opts over the defaults, last one wins.
// Complexity: O(len(opts)).
func newBuilderConfig(opts ...BuilderOption) builderConfig {
	cfg := builderConfig{
		weightFn: ConstantWeightFn(DefaultEdgeWeight),
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}
