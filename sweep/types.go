// SPDX-License-Identifier: MIT

package sweep

import (
	"errors"
	"log/slog"
	"time"

	"github.com/katalvlaran/lvstep/distance"
	"github.com/katalvlaran/lvstep/metrics"
	"github.com/katalvlaran/lvstep/workpool"
)

// Algorithm is the label used in results, logs and metrics.
const Algorithm = "range-sweep"

// Sentinel errors returned by the sweep engine.
var (
	// ErrNilGraph indicates New was given a nil graph.
	ErrNilGraph = errors.New("sweep: graph is nil")

	// ErrInvalidBound indicates a negative round count.
	ErrInvalidBound = errors.New("sweep: rounds must be non-negative")

	// ErrInvalidSource is distance.ErrInvalidSource, re-exported.
	ErrInvalidSource = distance.ErrInvalidSource

	// ErrEngineStuck is workpool.ErrEngineStuck, re-exported.
	ErrEngineStuck = workpool.ErrEngineStuck
)

// Options configures an Engine.
type Options struct {
	Logger            *slog.Logger      // nil: use the logger carried by Run's ctx
	Metrics           *metrics.Recorder // nil: no metrics
	QuiescenceTimeout time.Duration     // per-round ceiling
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

// WithQuiescenceTimeout bounds each round's barrier wait. Panics if d <= 0.
func WithQuiescenceTimeout(d time.Duration) Option {
	if d <= 0 {
		panic("sweep: WithQuiescenceTimeout(d<=0)")
	}
	return func(o *Options) { o.QuiescenceTimeout = d }
}

// DefaultOptions returns the engine defaults.
func DefaultOptions() Options {
	return Options{QuiescenceTimeout: workpool.DefaultQuiescenceTimeout}
}
