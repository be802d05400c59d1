// Package bfs provides options and error definitions for breadth-first
// search over a core.Graph.
package bfs

import (
	"context"
	"errors"
	"fmt"
)

// Sentinel errors for BFS execution.
var (
	// ErrStartVertexNotFound is returned when the start index is outside [0, V).
	ErrStartVertexNotFound = errors.New("bfs: start vertex not found")

	// ErrGraphNil is returned if a nil graph pointer is passed.
	ErrGraphNil = errors.New("bfs: graph is nil")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("bfs: invalid option supplied")
)

// Unvisited marks vertices the search did not reach in Result.Depth and
// Result.Parent.
const Unvisited = -1

// Option configures BFS behavior via functional arguments.
// An invalid Option is recorded and surfaced as ErrOptionViolation when BFS
// is invoked.
type Option func(*Options)

// Options holds parameters that customize BFS execution.
type Options struct {
	// Ctx allows cancellation; checked once per dequeued vertex.
	Ctx context.Context

	// MaxDepth, if > 0, stops exploring beyond this depth.
	// A value of 0 disables any depth limit.
	MaxDepth int

	err error
}

// DefaultOptions returns Options with a background context and no depth limit.
func DefaultOptions() Options {
	return Options{Ctx: context.Background()}
}

// WithContext sets a custom context for cancellation.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithMaxDepth limits exploration to depth d (edges from start).
// A negative d records ErrOptionViolation.
func WithMaxDepth(d int) Option {
	return func(o *Options) {
		if d < 0 {
			o.err = fmt.Errorf("%w: MaxDepth must be >= 0, got %d", ErrOptionViolation, d)
			return
		}
		o.MaxDepth = d
	}
}

// Result holds the outcome of a search.
type Result struct {
	// Order lists visited vertices in visit order.
	Order []int

	// Depth[v] is the edge count from start, or Unvisited.
	Depth []int

	// Parent[v] is v's predecessor in the BFS tree; Unvisited for the start
	// and for unreached vertices.
	Parent []int
}

// Reached returns the number of visited vertices.
func (r *Result) Reached() int { return len(r.Order) }

// PathTo reconstructs the fewest-edge path from start to dest, or returns
// ErrStartVertexNotFound wrapped with context when dest was not reached.
func (r *Result) PathTo(dest int) ([]int, error) {
	if dest < 0 || dest >= len(r.Depth) || r.Depth[dest] == Unvisited {
		return nil, fmt.Errorf("bfs: vertex %d not reached: %w", dest, ErrStartVertexNotFound)
	}
	path := make([]int, r.Depth[dest]+1)
	for i, v := len(path)-1, dest; i >= 0; i, v = i-1, r.Parent[v] {
		path[i] = v
	}

	return path, nil
}
