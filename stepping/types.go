// SPDX-License-Identifier: MIT

package stepping

import (
	"errors"
	"log/slog"
	"time"

	"github.com/katalvlaran/lvstep/distance"
	"github.com/katalvlaran/lvstep/metrics"
	"github.com/katalvlaran/lvstep/workpool"
)

// Algorithm labels used in results, logs and metrics.
const (
	AlgorithmDelta  = "delta-stepping"
	AlgorithmRadius = "radius-stepping"
)

// Unbounded is the bucket width that turns delta-stepping into
// radius-stepping: the window [0, Unbounded) holds every finite distance.
const Unbounded int64 = distance.Infinity

// Sentinel errors returned by the stepping engine.
var (
	// ErrNilGraph indicates New was given a nil graph.
	ErrNilGraph = errors.New("stepping: graph is nil")

	// ErrInvalidBound indicates a bucket width <= 0.
	ErrInvalidBound = errors.New("stepping: bucket width must be positive")

	// ErrInvalidSource is distance.ErrInvalidSource, re-exported.
	ErrInvalidSource = distance.ErrInvalidSource

	// ErrEngineStuck is workpool.ErrEngineStuck, re-exported.
	ErrEngineStuck = workpool.ErrEngineStuck
)

// Options configures an Engine.
type Options struct {
	Logger            *slog.Logger      // nil: use the logger carried by Run's ctx
	Metrics           *metrics.Recorder // nil: no metrics
	QuiescenceTimeout time.Duration     // per-phase ceiling
	Dedup             bool              // drop duplicate frontier entries
}

// Option mutates Options.
type Option func(*Options)

// WithLogger sets the logger for runs of this engine.
func WithLogger(l *slog.Logger) Option {
	return func(o *Options) { o.Logger = l }
}

// WithMetrics attaches a Prometheus recorder.
func WithMetrics(r *metrics.Recorder) Option {
	return func(o *Options) { o.Metrics = r }
}

// WithQuiescenceTimeout bounds each phase's barrier wait. Panics if d <= 0.
func WithQuiescenceTimeout(d time.Duration) Option {
	if d <= 0 {
		panic("stepping: WithQuiescenceTimeout(d<=0)")
	}
	return func(o *Options) { o.QuiescenceTimeout = d }
}

// WithFrontierDedup removes duplicate vertices from every frontier before it
// is processed. Distances are unaffected; only redundant relaxations go.
func WithFrontierDedup() Option {
	return func(o *Options) { o.Dedup = true }
}

// DefaultOptions returns the engine defaults.
func DefaultOptions() Options {
	return Options{QuiescenceTimeout: workpool.DefaultQuiescenceTimeout}
}
