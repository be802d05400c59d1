package bfs

import (
	"github.com/katalvlaran/lvstep/core"
)

// walker encapsulates the mutable state of one search.
type walker struct {
	graph *core.Graph
	opts  Options
	queue []int
	res   *Result
}

// BFS explores g from start in non-decreasing edge count, following edge
// direction and ignoring weights.
//
// Returns ErrGraphNil, ErrStartVertexNotFound, ErrOptionViolation, or the
// context error if the search was canceled. Complexity: O(V + E).
func BFS(g *core.Graph, start int, opts ...Option) (*Result, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}
	if !g.HasVertex(start) {
		return nil, ErrStartVertexNotFound
	}

	n := g.VertexCount()
	w := &walker{
		graph: g,
		opts:  o,
		queue: make([]int, 0, n),
		res: &Result{
			Order:  make([]int, 0, n),
			Depth:  make([]int, n),
			Parent: make([]int, n),
		},
	}
	for v := 0; v < n; v++ {
		w.res.Depth[v] = Unvisited
		w.res.Parent[v] = Unvisited
	}

	w.enqueue(start, 0, Unvisited)

	return w.res, w.loop()
}

// enqueue marks v visited at depth d with the given parent.
func (w *walker) enqueue(v, d, parent int) {
	w.res.Depth[v] = d
	w.res.Parent[v] = parent
	w.queue = append(w.queue, v)
}

// loop processes the queue until it is empty or the context is done.
func (w *walker) loop() error {
	for len(w.queue) > 0 {
		if err := w.opts.Ctx.Err(); err != nil {
			return err
		}
		u := w.queue[0]
		w.queue = w.queue[1:]
		w.res.Order = append(w.res.Order, u)

		next := w.res.Depth[u] + 1
		if w.opts.MaxDepth > 0 && next > w.opts.MaxDepth {
			continue
		}
		for e := range w.graph.Adjacency(u) {
			if w.res.Depth[e.To] == Unvisited {
				w.enqueue(e.To, next, u)
			}
		}
	}

	return nil
}
