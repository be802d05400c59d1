// SPDX-License-Identifier: MIT

package core

import "fmt"

// FromTriples builds a graph from (u, v, w) triples. The vertex count is the
// largest index mentioned plus one, so isolated trailing vertices must appear
// in at least one triple to exist. An empty input yields a one-vertex graph,
// matching a lone source.
//
// Errors from AddEdge are returned wrapped with the offending triple index.
// Complexity: O(E).
func FromTriples(triples [][3]int64) (*Graph, error) {
	maxIdx := int64(0)
	for i, t := range triples {
		if t[0] < 0 || t[1] < 0 {
			return nil, fmt.Errorf("FromTriples: triple %d: %w", i, ErrInvalidVertex)
		}
		maxIdx = max(maxIdx, t[0], t[1])
	}

	g, err := NewGraph(int(maxIdx) + 1)
	if err != nil {
		return nil, err
	}
	for i, t := range triples {
		if err = g.AddEdge(int(t[0]), int(t[1]), t[2]); err != nil {
			return nil, fmt.Errorf("FromTriples: triple %d: %w", i, err)
		}
	}

	return g, nil
}

// Stats is a point-in-time summary of a graph.
type Stats struct {
	Vertices  int
	Edges     int
	MaxWeight int64
	Sealed    bool
}

// Stats returns a summary snapshot. Complexity: O(1).
func (g *Graph) Stats() Stats {
	return Stats{
		Vertices:  len(g.adj),
		Edges:     g.edges,
		MaxWeight: g.maxWeight,
		Sealed:    g.sealed.Load(),
	}
}
