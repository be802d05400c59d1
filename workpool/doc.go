// Package workpool provides the bounded, phase-structured worker pool shared
// by the relaxation engines.
//
// Work is organised in phases. Phase runs a driver body that submits tasks;
// it returns only after every task of the phase has completed (a full
// barrier). Two submission styles cover both engines:
//
//   - Scope.Go: one task per frontier vertex, submitted by the driver.
//     Blocks while all workers are busy.
//   - Scope.Fork: divide-and-conquer splitting from inside a task. Runs the
//     child inline when the pool is full, like a fork/join pool.
//
// The pool is backed by golang.org/x/sync/errgroup (SetLimit/TryGo). A pool of
// size 1 never starts goroutines for tasks; execution is strictly sequential.
//
// Each phase is bounded by a quiescence ceiling (DefaultQuiescenceTimeout).
// Hitting it returns ErrEngineStuck, which callers treat as fatal.
package workpool
