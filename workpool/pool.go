// SPDX-License-Identifier: MIT

package workpool

import (
	"context"
	"fmt"
	"runtime"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"
)

// Pool is a bounded worker pool that runs work in barrier-separated phases.
// A Pool is stateless between phases and may be reused.
type Pool struct {
	size    int
	ceiling time.Duration
}

// New returns a pool with size workers. Size 0 selects runtime.GOMAXPROCS(0);
// size 1 runs every task inline on the phase driver, strictly sequentially.
// Returns ErrInvalidParallelism for negative sizes.
func New(size int, opts ...Option) (*Pool, error) {
	if size < 0 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidParallelism, size)
	}
	if size == 0 {
		size = runtime.GOMAXPROCS(0)
	}
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	return &Pool{size: size, ceiling: cfg.QuiescenceTimeout}, nil
}

// Size returns the number of workers.
func (p *Pool) Size() int { return p.size }

// Sequential reports whether the pool runs tasks inline.
func (p *Pool) Sequential() bool { return p.size == 1 }

// Phase runs body, which submits the phase's tasks through the Scope, and
// blocks until every submitted task, including tasks forked by tasks, has
// returned. That join is the phase barrier.
//
// If the phase has not quiesced within the ceiling, Phase returns
// ErrEngineStuck without waiting further; the caller must abandon the run.
// A panicking task surfaces as ErrTaskPanicked. ctx is checked once before
// the phase starts; tasks are never interrupted mid-flight.
func (p *Pool) Phase(ctx context.Context, body func(*Scope)) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	group := new(errgroup.Group)
	if !p.Sequential() {
		group.SetLimit(p.size)
	}
	s := &Scope{group: group, inline: p.Sequential()}

	done := make(chan error, 1)
	go func() {
		err := s.run(func() { body(s) })
		if werr := group.Wait(); err == nil {
			err = werr
		}
		if err == nil {
			err = s.firstErr()
		}
		done <- err
	}()

	timer := time.NewTimer(p.ceiling)
	defer timer.Stop()
	select {
	case err := <-done:
		return err
	case <-timer.C:
		return fmt.Errorf("%w: still running after %s", ErrEngineStuck, p.ceiling)
	}
}

// Scope submits tasks into the phase it belongs to.
type Scope struct {
	group  *errgroup.Group
	inline bool

	mu  sync.Mutex
	err error
}

// Go submits task from the phase driver (the body passed to Phase). It blocks
// while every worker is busy. Do not call Go from inside a task; use Fork.
func (s *Scope) Go(task func()) {
	if s.inline {
		s.record(s.run(task))
		return
	}
	s.group.Go(func() error { return s.run(task) })
}

// Fork submits task from inside a running task. When no worker is free the
// task runs inline on the caller, so nested fork/join never deadlocks on a
// full pool.
func (s *Scope) Fork(task func()) {
	if s.inline || !s.group.TryGo(func() error { return s.run(task) }) {
		s.record(s.run(task))
	}
}

// run executes task, converting a panic into ErrTaskPanicked.
func (s *Scope) run(task func()) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("%w: %v", ErrTaskPanicked, r)
		}
	}()
	task()

	return nil
}

func (s *Scope) record(err error) {
	if err == nil {
		return
	}
	s.mu.Lock()
	if s.err == nil {
		s.err = err
	}
	s.mu.Unlock()
}

func (s *Scope) firstErr() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.err
}
