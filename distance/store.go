// SPDX-License-Identifier: MIT
//
// Package distance holds the tentative-distance vector shared by every worker
// of a shortest-path run.
//
// Each vertex owns one atomic 64-bit word. TryRelax is the only mutator and
// runs a compare-and-swap loop, so concurrent relaxations of the same vertex
// never lose an improvement and readers never see a torn value. There is no
// lock over the vector as a whole: relaxations of different vertices are
// independent.
package distance

import (
	"errors"
	"fmt"
	"math"
	"sync/atomic"
)

// Infinity is the distance reported for vertices not (yet) reached.
const Infinity int64 = math.MaxInt64

// ErrInvalidSource indicates a source vertex outside [0, V).
var ErrInvalidSource = errors.New("distance: invalid source vertex")

// Stats counts relaxation traffic since the last Reset.
type Stats struct {
	Attempts     int64 // TryRelax calls
	Improvements int64 // TryRelax calls that installed a smaller value
}

// Store is the per-vertex tentative-distance state.
type Store struct {
	dist         []atomic.Int64
	attempts     atomic.Int64
	improvements atomic.Int64
}

// New allocates a store for v vertices, initialised for source.
// Returns ErrInvalidSource if source is outside [0, v).
// Complexity: O(v).
func New(v, source int) (*Store, error) {
	if v < 0 {
		return nil, fmt.Errorf("%w: negative vertex count %d", ErrInvalidSource, v)
	}
	s := &Store{dist: make([]atomic.Int64, v)}
	if err := s.Reset(source); err != nil {
		return nil, err
	}

	return s, nil
}

// Reset sets every distance to Infinity except source, which becomes 0, and
// clears the counters. Must not race with TryRelax.
// Complexity: O(V).
func (s *Store) Reset(source int) error {
	if source < 0 || source >= len(s.dist) {
		return fmt.Errorf("%w: %d not in [0,%d)", ErrInvalidSource, source, len(s.dist))
	}
	for i := range s.dist {
		s.dist[i].Store(Infinity)
	}
	s.dist[source].Store(0)
	s.attempts.Store(0)
	s.improvements.Store(0)

	return nil
}

// TryRelax installs candidate as v's distance if it is strictly smaller than
// the current value, and reports whether it did. A candidate greater than or
// equal to the current distance changes nothing.
//
// Safe for any number of concurrent callers on the same or different
// vertices. The read-compare-write runs as a CAS retry loop: a failed CAS
// means another worker installed a value first, and the loop re-checks
// against that value.
func (s *Store) TryRelax(v int, candidate int64) bool {
	s.attempts.Add(1)
	slot := &s.dist[v]
	for {
		cur := slot.Load()
		if candidate >= cur {
			return false
		}
		if slot.CompareAndSwap(cur, candidate) {
			s.improvements.Add(1)
			return true
		}
	}
}

// Get returns v's current tentative distance. The value may be stale with
// respect to relaxations still in flight.
func (s *Store) Get(v int) int64 { return s.dist[v].Load() }

// Len returns the number of vertices.
func (s *Store) Len() int { return len(s.dist) }

// Snapshot copies the vector. Call it only after the run has quiesced if a
// consistent view is needed.
// Complexity: O(V).
func (s *Store) Snapshot() []int64 {
	out := make([]int64, len(s.dist))
	for i := range s.dist {
		out[i] = s.dist[i].Load()
	}

	return out
}

// Stats returns the relaxation counters.
func (s *Store) Stats() Stats {
	return Stats{Attempts: s.attempts.Load(), Improvements: s.improvements.Load()}
}

// AddSaturating returns a+b for non-negative operands, clamped to Infinity so
// that an unreached predecessor never wraps into a small candidate.
func AddSaturating(a, b int64) int64 {
	if a >= Infinity-b {
		return Infinity
	}

	return a + b
}
