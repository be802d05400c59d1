// SPDX-License-Identifier: MIT

package sweep

import (
	"context"
	"fmt"
	"sync"

	"github.com/katalvlaran/lvstep/core"
	"github.com/katalvlaran/lvstep/distance"
	"github.com/katalvlaran/lvstep/run"
	"github.com/katalvlaran/lvstep/workpool"
)

// Engine is the range-sweep baseline: a parallel Bellman-Ford that relaxes
// every edge of the graph once per round for a fixed number of rounds.
type Engine struct {
	g      *core.Graph
	source int
	opts   Options

	mu       sync.Mutex // serializes Run
	dist     *distance.Store
	complete bool
}

// New binds an engine to g and source. The graph is sealed: it can no longer
// gain edges. Returns ErrNilGraph or ErrInvalidSource.
// Complexity: O(V).
func New(g *core.Graph, source int, opts ...Option) (*Engine, error) {
	if g == nil {
		return nil, ErrNilGraph
	}
	dist, err := distance.New(g.VertexCount(), source)
	if err != nil {
		return nil, fmt.Errorf("sweep: %w", err)
	}
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	g.Seal()

	return &Engine{g: g, source: source, opts: cfg, dist: dist}, nil
}

// Run executes exactly rounds rounds with the given parallelism (1 means
// sequential, 0 means GOMAXPROCS).
//
// Each round splits [0, V) into halves down to single vertices; every vertex
// relaxes all of its outgoing edges. Sub-ranges run as independent tasks
// with no mutual ordering; the round ends at a full barrier. Distances are
// exact once rounds is at least the edge count of the longest shortest path
// (MinRoundsForExactness gives a safe value); fewer rounds leave a partial
// relaxation.
//
// On error the run is aborted and Distances returns nil until a later Run
// completes.
func (e *Engine) Run(ctx context.Context, rounds int64, parallelism int) (run.Result, error) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.complete = false

	if rounds < 0 {
		return run.Result{}, fmt.Errorf("%w: got %d", ErrInvalidBound, rounds)
	}
	pool, err := workpool.New(parallelism, workpool.WithQuiescenceTimeout(e.opts.QuiescenceTimeout))
	if err != nil {
		return run.Result{}, fmt.Errorf("sweep: %w", err)
	}
	if err = e.dist.Reset(e.source); err != nil {
		return run.Result{}, fmt.Errorf("sweep: %w", err)
	}

	ctx, tr := run.Start(ctx, Algorithm, e.source, rounds, pool.Size(), e.opts.Metrics, e.opts.Logger)
	n := e.g.VertexCount()
	for r := int64(0); r < rounds; r++ {
		err = pool.Phase(ctx, func(s *workpool.Scope) {
			s.Go(func() { e.sweep(s, 0, n) })
		})
		if err != nil {
			return tr.Finish(e.dist.Stats(), fmt.Errorf("sweep: round %d: %w", r, err))
		}
		tr.Phase(n, 0, rounds)
	}
	e.complete = true

	return tr.Finish(e.dist.Stats(), nil)
}

// sweep relaxes the vertices of [lo, hi). The left half of every split is
// forked, the right half continues on the current task, until one vertex
// remains.
func (e *Engine) sweep(s *workpool.Scope, lo, hi int) {
	for hi-lo > 1 {
		mid := lo + (hi-lo)/2
		left := lo
		s.Fork(func() { e.sweep(s, left, mid) })
		lo = mid
	}
	e.relax(lo)
}

// relax offers dist(u)+w to every out-neighbor of u.
func (e *Engine) relax(u int) {
	du := e.dist.Get(u)
	if du == distance.Infinity {
		return
	}
	for _, edge := range e.g.Edges(u) {
		e.dist.TryRelax(edge.To, distance.AddSaturating(du, edge.Weight))
	}
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

// MinRoundsForExactness returns V-1 (at least 0): a shortest path never has
// more edges than that, so that many rounds always yield exact distances.
func MinRoundsForExactness(g *core.Graph) int64 {
	return int64(max(g.VertexCount()-1, 0))
}
