// SPDX-License-Identifier: MIT
// Package: lvstep/builder
//
// errors.go: sentinel errors for the builder package.
//
// Error policy:
//   • Only sentinel variables are exposed; callers branch with errors.Is.
//   • Implementations attach context with %w, never by redefining sentinels.
//   • Constructors never panic; option constructors (WithX) may.

package builder

import "errors"

// ErrTooFewVertices indicates that a vertex count is below the constructor's
// minimum.
var ErrTooFewVertices = errors.New("builder: parameter too small")

// ErrInvalidProbability indicates a probability outside [0,1].
var ErrInvalidProbability = errors.New("builder: probability out of range")

// ErrNeedRandSource indicates a stochastic constructor ran without an RNG
// (set WithSeed or WithRand).
var ErrNeedRandSource = errors.New("builder: rng is required")

// ErrConstructFailed indicates a constructor could not complete, e.g. a nil
// constructor was passed to BuildGraph.
var ErrConstructFailed = errors.New("builder: construction failed")
