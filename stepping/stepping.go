// SPDX-License-Identifier: MIT

package stepping

import (
	"context"
	"fmt"
	"sync"

	"github.com/katalvlaran/lvstep/core"
	"github.com/katalvlaran/lvstep/distance"
	"github.com/katalvlaran/lvstep/frontier"
	"github.com/katalvlaran/lvstep/run"
	"github.com/katalvlaran/lvstep/workpool"
)

// Engine is the bucket-frontier engine. Run with a finite width it performs
// delta-stepping; with Unbounded it performs radius-stepping.
type Engine struct {
	g      *core.Graph
	source int
	opts   Options

	mu       sync.Mutex // serializes Run
	dist     *distance.Store
	complete bool
}

// New binds an engine to g and source. The graph is sealed.
// Returns ErrNilGraph or ErrInvalidSource. Complexity: O(V).
func New(g *core.Graph, source int, opts ...Option) (*Engine, error) {
	if g == nil {
		return nil, ErrNilGraph
	}
	dist, err := distance.New(g.VertexCount(), source)
	if err != nil {
		return nil, fmt.Errorf("stepping: %w", err)
	}
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	g.Seal()

	return &Engine{g: g, source: source, opts: cfg, dist: dist}, nil
}

// RunRadius is Run(ctx, Unbounded, parallelism).
func (e *Engine) RunRadius(ctx context.Context, parallelism int) (run.Result, error) {
	return e.Run(ctx, Unbounded, parallelism)
}

// Run computes shortest distances from the source with bucket width delta
// and the given parallelism (1 means sequential, 0 means GOMAXPROCS).
//
// The run is a loop over two states:
//
//   - Active: every frontier vertex relaxes its out-edges in its own task.
//     An improved neighbor whose new distance is below the window bound
//     joins the next frontier. The phase ends at a full barrier.
//   - BucketAdvance: the next frontier came out empty. All vertices are
//     rescanned for the smallest finite distance at or above the bound; the
//     window of width delta holding it is opened and every vertex inside it
//     forms the new frontier. No such distance means the run is done.
//
// Windows are half-open, [lo, lo+delta), everywhere. With delta = Unbounded
// the bound never moves and BucketAdvance never finds work.
//
// On error the run is aborted and Distances returns nil until a later Run
// completes. An ErrEngineStuck run may leave tasks behind; the engine must
// not be reused after it.
func (e *Engine) Run(ctx context.Context, delta int64, parallelism int) (run.Result, error) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.complete = false

	if delta <= 0 {
		return run.Result{}, fmt.Errorf("%w: got %d", ErrInvalidBound, delta)
	}
	pool, err := workpool.New(parallelism, workpool.WithQuiescenceTimeout(e.opts.QuiescenceTimeout))
	if err != nil {
		return run.Result{}, fmt.Errorf("stepping: %w", err)
	}
	if err = e.dist.Reset(e.source); err != nil {
		return run.Result{}, fmt.Errorf("stepping: %w", err)
	}

	algorithm := AlgorithmDelta
	if delta == Unbounded {
		algorithm = AlgorithmRadius
	}
	ctx, tr := run.Start(ctx, algorithm, e.source, delta, pool.Size(), e.opts.Metrics, e.opts.Logger)

	bound := distance.AddSaturating(0, delta)
	current := frontier.New(e.source)
	for {
		// 1) Active: drain the open window.
		for !current.Empty() {
			if e.opts.Dedup {
				current = current.Dedup()
			}
			next, perr := e.phase(ctx, pool, current, bound)
			if perr != nil {
				return tr.Finish(e.dist.Stats(), fmt.Errorf("stepping: phase %d: %w", tr.Phases()+1, perr))
			}
			tr.Phase(current.Len(), next.Len(), bound)
			current = next
		}

		// 2) BucketAdvance: open the next non-empty window, or finish.
		lo, ok := e.nextWindowStart(bound, delta)
		if !ok {
			break
		}
		if err = ctx.Err(); err != nil {
			return tr.Finish(e.dist.Stats(), fmt.Errorf("stepping: %w", err))
		}
		bound = distance.AddSaturating(lo, delta)
		current = e.window(lo, bound)
		tr.BucketAdvance(lo, bound, current.Len())
	}
	e.complete = true

	return tr.Finish(e.dist.Stats(), nil)
}

// phase runs one Active phase over f and returns the next frontier, read
// only after every task has joined.
func (e *Engine) phase(ctx context.Context, pool *workpool.Pool, f frontier.Frontier, bound int64) (frontier.Frontier, error) {
	var next frontier.Builder
	err := pool.Phase(ctx, func(s *workpool.Scope) {
		for _, u := range f.Vertices() {
			s.Go(func() { next.Append(e.relax(u, bound)...) })
		}
	})
	if err != nil {
		return frontier.Frontier{}, err
	}

	return next.Build(), nil
}

// relax offers dist(u)+w to every out-neighbor of u and returns the
// neighbors it improved to a distance below bound.
func (e *Engine) relax(u int, bound int64) []int {
	du := e.dist.Get(u)
	if du == distance.Infinity {
		return nil
	}
	var out []int
	for _, edge := range e.g.Edges(u) {
		cand := distance.AddSaturating(du, edge.Weight)
		if e.dist.TryRelax(edge.To, cand) && cand < bound {
			out = append(out, edge.To)
		}
	}

	return out
}

// nextWindowStart finds the smallest finite distance m >= bound and returns
// the start of the delta-aligned window holding it. ok is false when no
// vertex has such a distance. Complexity: O(V).
func (e *Engine) nextWindowStart(bound, delta int64) (lo int64, ok bool) {
	m := distance.Infinity
	for v := 0; v < e.dist.Len(); v++ {
		if d := e.dist.Get(v); d >= bound && d < m {
			m = d
		}
	}
	if m == distance.Infinity {
		return 0, false
	}

	return bound + ((m-bound)/delta)*delta, true
}

// window collects, in vertex order, every vertex whose distance lies in
// [lo, hi). Complexity: O(V).
func (e *Engine) window(lo, hi int64) frontier.Frontier {
	var vs []int
	for v := 0; v < e.dist.Len(); v++ {
		if d := e.dist.Get(v); d >= lo && d < hi {
			vs = append(vs, v)
		}
	}

	return frontier.New(vs...)
}

// Distances returns the distance vector of the last completed run, with
// distance.Infinity for unreached vertices, or nil if no run has completed
// since the last failure.
func (e *Engine) Distances() []int64 {
	e.mu.Lock()
	defer e.mu.Unlock()
	if !e.complete {
		return nil
	}

	return e.dist.Snapshot()
}
