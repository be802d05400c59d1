// SPDX-License-Identifier: MIT
//
// Package core declares the weighted directed Graph consumed by the
// relaxation engines, together with its Edge type and sentinel errors.
//
// Errors:
//
//	ErrInvalidVertex - vertex index outside [0, V), or negative V.
//	ErrInvalidWeight - negative edge weight.
//	ErrSealed        - AddEdge after the graph was sealed for a run.
package core

import (
	"errors"
	"sync/atomic"
)

// Sentinel errors for graph construction.
var (
	// ErrInvalidVertex indicates a vertex index outside [0, V).
	ErrInvalidVertex = errors.New("core: invalid vertex")

	// ErrInvalidWeight indicates a negative edge weight.
	ErrInvalidWeight = errors.New("core: invalid weight")

	// ErrSealed indicates an attempt to add an edge to a sealed graph.
	ErrSealed = errors.New("core: graph is sealed")
)

// Edge is one outgoing arc u→To with a non-negative Weight.
// The source vertex is implied by the adjacency slot the edge lives in.
type Edge struct {
	// To is the destination vertex index.
	To int

	// Weight is the non-negative cost of traversing the edge.
	Weight int64
}

// Graph is a write-once weighted directed graph over dense vertex indices.
//
// Vertices are the integers [0, V). Each vertex owns an ordered slice of
// outgoing edges; insertion order is preserved. Edges are added while the
// graph is open; once Seal is called (every engine constructor does so) the
// graph is read-only and safe for any number of concurrent readers without
// locking.
//
// Graph is NOT safe for concurrent AddEdge calls; build it from a single
// goroutine, then hand it to the engines.
type Graph struct {
	adj       [][]Edge    // adj[u] = outgoing edges of u, insertion order
	edges     int         // total number of edges
	maxWeight int64       // largest weight seen so far
	sealed    atomic.Bool // set once; AddEdge refuses afterwards
}

// NewGraph creates an empty graph over vertices [0, v).
// Returns ErrInvalidVertex when v is negative.
// Complexity: O(v).
func NewGraph(v int) (*Graph, error) {
	if v < 0 {
		return nil, ErrInvalidVertex
	}

	return &Graph{adj: make([][]Edge, v)}, nil
}
