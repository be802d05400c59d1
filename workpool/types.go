// SPDX-License-Identifier: MIT

package workpool

import (
	"errors"
	"time"
)

// DefaultQuiescenceTimeout bounds how long Phase waits for its tasks.
// Exceeding it means a task is stuck or leaked.
const DefaultQuiescenceTimeout = 100 * time.Second

// Sentinel errors returned by the pool.
var (
	// ErrEngineStuck indicates a phase did not reach quiescence within the
	// configured ceiling. It is fatal for the run.
	ErrEngineStuck = errors.New("workpool: phase did not reach quiescence")

	// ErrInvalidParallelism indicates a negative pool size.
	ErrInvalidParallelism = errors.New("workpool: parallelism must be non-negative")

	// ErrTaskPanicked indicates a task panicked; the panic value is attached.
	ErrTaskPanicked = errors.New("workpool: task panicked")
)

// Options configures a Pool.
type Options struct {
	// QuiescenceTimeout is the ceiling for one Phase. Must be > 0.
	QuiescenceTimeout time.Duration
}

// Option mutates Options.
type Option func(*Options)

// WithQuiescenceTimeout overrides DefaultQuiescenceTimeout.
// Panics if d <= 0.
func WithQuiescenceTimeout(d time.Duration) Option {
	if d <= 0 {
		panic("workpool: WithQuiescenceTimeout(d<=0)")
	}
	return func(o *Options) { o.QuiescenceTimeout = d }
}

// DefaultOptions returns the defaults applied before any Option.
func DefaultOptions() Options {
	return Options{QuiescenceTimeout: DefaultQuiescenceTimeout}
}
