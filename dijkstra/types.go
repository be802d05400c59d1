// Package dijkstra defines sentinel errors and functional options for the
// sequential reference shortest-path solver.
//
// Options:
//
//	– ReturnPath:  if true, also return the predecessor slice.
//	– MaxDistance: optional cap; vertices farther than this stay unexplored.
//
// Errors (sentinel):
//
//	– ErrNilGraph        if the provided graph pointer is nil.
//	– ErrInvalidSource   if the source is not a vertex of the graph.
//	– ErrBadMaxDistance  if MaxDistance < 0.
package dijkstra

import (
	"errors"

	"github.com/katalvlaran/lvstep/distance"
)

// Sentinel errors returned by Dijkstra.
var (
	// ErrNilGraph indicates that a nil *core.Graph was passed to Dijkstra.
	ErrNilGraph = errors.New("dijkstra: graph is nil")

	// ErrInvalidSource indicates that the source is outside [0, V).
	ErrInvalidSource = errors.New("dijkstra: source vertex not found in graph")

	// ErrBadMaxDistance indicates that MaxDistance was set to a negative value.
	ErrBadMaxDistance = errors.New("dijkstra: MaxDistance must be non-negative")
)

// NoPredecessor marks the source and unreachable vertices in the
// predecessor slice.
const NoPredecessor = -1

// Options configures the solver.
//
// ReturnPath  – if true, return the predecessor slice; otherwise it is nil.
// MaxDistance – vertices whose distance would exceed this are not explored
//
//	and are reported as distance.Infinity. Default: no cap.
type Options struct {
	ReturnPath  bool
	MaxDistance int64
}

// Option represents a functional option for configuring Dijkstra.
type Option func(*Options)

// WithReturnPath enables the predecessor slice in the result.
func WithReturnPath() Option {
	return func(o *Options) {
		o.ReturnPath = true
	}
}

// WithMaxDistance sets a maximum distance threshold. Panics on a negative
// value.
func WithMaxDistance(max int64) Option {
	if max < 0 {
		panic(ErrBadMaxDistance.Error())
	}
	return func(o *Options) {
		o.MaxDistance = max
	}
}

// DefaultOptions returns the defaults: no predecessor slice, no cap.
func DefaultOptions() Options {
	return Options{
		ReturnPath:  false,
		MaxDistance: distance.Infinity,
	}
}
