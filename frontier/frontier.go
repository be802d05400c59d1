// SPDX-License-Identifier: MIT
//
// Package frontier models the active-vertex worklist of one processing phase.
//
// A Frontier is an ordered multiset: a vertex may appear more than once when
// it was improved by several predecessors during the same phase. Duplicates
// cost only redundant relax attempts, never correctness, so deduplication is
// an opt-in optimization (Dedup).
//
// The next phase's frontier is assembled concurrently through a Builder.
// Workers append their local batches while the phase runs; the phase driver
// calls Build only after the phase barrier, so no task ever observes a
// partially built frontier.
package frontier

import (
	"slices"
	"sync"
)

// Frontier is an immutable ordered collection of vertex indices.
type Frontier struct {
	vertices []int
}

// New returns a frontier holding vs in the given order.
// The slice is owned by the frontier afterwards.
func New(vs ...int) Frontier {
	return Frontier{vertices: vs}
}

// Len returns the number of entries, duplicates included.
func (f Frontier) Len() int { return len(f.vertices) }

// Empty reports whether the frontier has no entries.
func (f Frontier) Empty() bool { return len(f.vertices) == 0 }

// Vertices returns the entries. Callers must not modify the slice.
func (f Frontier) Vertices() []int { return f.vertices }

// Dedup returns a frontier with each vertex at most once, in ascending order.
// Complexity: O(n log n).
func (f Frontier) Dedup() Frontier {
	if len(f.vertices) < 2 {
		return f
	}
	out := slices.Clone(f.vertices)
	slices.Sort(out)

	return Frontier{vertices: slices.Compact(out)}
}

// Builder accumulates the next frontier from concurrent workers.
// The zero value is ready to use.
type Builder struct {
	mu       sync.Mutex
	vertices []int
}

// Append adds a worker's local batch. Safe for concurrent use.
// Batching keeps lock traffic to one acquisition per task.
func (b *Builder) Append(batch ...int) {
	if len(batch) == 0 {
		return
	}
	b.mu.Lock()
	b.vertices = append(b.vertices, batch...)
	b.mu.Unlock()
}

// Build returns the accumulated frontier and resets the builder.
// Must be called after every appending task has joined.
func (b *Builder) Build() Frontier {
	b.mu.Lock()
	defer b.mu.Unlock()
	f := Frontier{vertices: b.vertices}
	b.vertices = nil

	return f
}
