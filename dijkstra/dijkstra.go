// Package dijkstra implements the sequential reference solver the parallel
// engines are checked against.
//
// Complexity:
//
//   - Time:  O((V + E) log V)
//   - Space: O(V + E), the heap holds up to E entries under lazy decrease-key.
package dijkstra

import (
	"github.com/emirpasic/gods/trees/binaryheap"

	"github.com/katalvlaran/lvstep/core"
	"github.com/katalvlaran/lvstep/distance"
)

// Dijkstra computes shortest distances from source to every vertex of g.
// Unreachable vertices (and, with WithMaxDistance, vertices beyond the cap)
// are reported as distance.Infinity.
//
// Returns:
//
//   - dist: dist[v] is the minimum distance from source to v.
//   - prev: predecessor slice if WithReturnPath was given (nil otherwise);
//     prev[v] == NoPredecessor for the source and unreachable vertices.
//   - err:  ErrNilGraph or ErrInvalidSource.
//
// The graph is only read; it does not need to be sealed.
func Dijkstra(g *core.Graph, source int, opts ...Option) ([]int64, []int, error) {
	// 1) Build options.
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	// 2) Validate inputs.
	if g == nil {
		return nil, nil, ErrNilGraph
	}
	if !g.HasVertex(source) {
		return nil, nil, ErrInvalidSource
	}

	// 3) Initialize state.
	n := g.VertexCount()
	r := &runner{
		g:       g,
		options: cfg,
		dist:    make([]int64, n),
		visited: make([]bool, n),
		pq:      binaryheap.NewWith(byDistance),
	}
	for v := range r.dist {
		r.dist[v] = distance.Infinity
	}
	if cfg.ReturnPath {
		r.prev = make([]int, n)
		for v := range r.prev {
			r.prev[v] = NoPredecessor
		}
	}
	r.dist[source] = 0
	r.pq.Push(nodeItem{id: source, dist: 0})

	// 4) Main loop.
	r.process()

	return r.dist, r.prev, nil
}

// runner holds the mutable state for a single execution.
type runner struct {
	g       *core.Graph
	options Options
	dist    []int64
	prev    []int
	visited []bool
	pq      *binaryheap.Heap
}

// process extracts vertices in distance order until the heap is empty or
// the next distance exceeds MaxDistance.
func (r *runner) process() {
	for !r.pq.Empty() {
		top, _ := r.pq.Pop()
		item := top.(nodeItem)

		// Stale entry under lazy decrease-key.
		if r.visited[item.id] {
			continue
		}
		if item.dist > r.options.MaxDistance {
			break
		}
		r.visited[item.id] = true
		r.relax(item.id)
	}

	// Tentative values beyond the cap are not final.
	if r.options.MaxDistance < distance.Infinity {
		for v, d := range r.dist {
			if d > r.options.MaxDistance {
				r.dist[v] = distance.Infinity
				if r.prev != nil {
					r.prev[v] = NoPredecessor
				}
			}
		}
	}
}

// relax improves every out-neighbor of u; r.dist[u] is final.
func (r *runner) relax(u int) {
	for e := range r.g.Adjacency(u) {
		nd := distance.AddSaturating(r.dist[u], e.Weight)
		if nd >= r.dist[e.To] {
			continue
		}
		r.dist[e.To] = nd
		if r.prev != nil {
			r.prev[e.To] = u
		}
		r.pq.Push(nodeItem{id: e.To, dist: nd})
	}
}

// nodeItem is a heap entry; ties break on vertex id for determinism.
type nodeItem struct {
	id   int
	dist int64
}

func byDistance(a, b interface{}) int {
	x, y := a.(nodeItem), b.(nodeItem)
	switch {
	case x.dist < y.dist:
		return -1
	case x.dist > y.dist:
		return 1
	case x.id < y.id:
		return -1
	case x.id > y.id:
		return 1
	default:
		return 0
	}
}

// Path walks prev back from target and returns source…target, or nil when
// target is unreachable or out of range.
func Path(prev []int, source, target int) []int {
	if target < 0 || target >= len(prev) {
		return nil
	}
	var rev []int
	for v := target; v != NoPredecessor; v = prev[v] {
		rev = append(rev, v)
		if v == source {
			break
		}
		if len(rev) > len(prev) {
			return nil
		}
	}
	if rev[len(rev)-1] != source {
		return nil
	}
	for i, j := 0, len(rev)-1; i < j; i, j = i+1, j-1 {
		rev[i], rev[j] = rev[j], rev[i]
	}

	return rev
}
