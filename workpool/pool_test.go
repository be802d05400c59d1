package workpool_test

import (
	"context"
	"runtime"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvstep/workpool"
)

func TestNew_Sizes(t *testing.T) {
	_, err := workpool.New(-1)
	require.ErrorIs(t, err, workpool.ErrInvalidParallelism)

	p, err := workpool.New(0)
	require.NoError(t, err)
	require.Equal(t, runtime.GOMAXPROCS(0), p.Size())

	p, err = workpool.New(1)
	require.NoError(t, err)
	require.True(t, p.Sequential())
}

func TestWithQuiescenceTimeout_Panics(t *testing.T) {
	require.Panics(t, func() { workpool.WithQuiescenceTimeout(0) })
}

func TestPhase_SequentialRunsInOrder(t *testing.T) {
	p, err := workpool.New(1)
	require.NoError(t, err)

	var order []int // no lock: size 1 must not run tasks concurrently
	err = p.Phase(context.Background(), func(s *workpool.Scope) {
		for i := 0; i < 10; i++ {
			s.Go(func() { order = append(order, i) })
		}
	})
	require.NoError(t, err)
	require.Equal(t, []int{0, 1, 2, 3, 4, 5, 6, 7, 8, 9}, order)
}

func TestPhase_BoundedConcurrency(t *testing.T) {
	const size = 4
	p, err := workpool.New(size)
	require.NoError(t, err)

	var active, peak, done atomic.Int64
	err = p.Phase(context.Background(), func(s *workpool.Scope) {
		for i := 0; i < 200; i++ {
			s.Go(func() {
				n := active.Add(1)
				for {
					old := peak.Load()
					if n <= old || peak.CompareAndSwap(old, n) {
						break
					}
				}
				time.Sleep(100 * time.Microsecond)
				active.Add(-1)
				done.Add(1)
			})
		}
	})
	require.NoError(t, err)
	require.Equal(t, int64(200), done.Load(), "barrier waits for every task")
	require.LessOrEqual(t, peak.Load(), int64(size))
}

func TestPhase_ForkJoinReachesEveryLeaf(t *testing.T) {
	for _, size := range []int{1, 2, 8} {
		p, err := workpool.New(size)
		require.NoError(t, err)

		const n = 1000
		hits := make([]atomic.Int32, n)
		var split func(s *workpool.Scope, lo, hi int)
		split = func(s *workpool.Scope, lo, hi int) {
			if hi-lo == 1 {
				hits[lo].Add(1)
				return
			}
			mid := lo + (hi-lo)/2
			s.Fork(func() { split(s, lo, mid) })
			split(s, mid, hi)
		}

		err = p.Phase(context.Background(), func(s *workpool.Scope) {
			s.Go(func() { split(s, 0, n) })
		})
		require.NoError(t, err)
		for i := range hits {
			require.Equal(t, int32(1), hits[i].Load(), "size=%d leaf=%d", size, i)
		}
	}
}

func TestPhase_StuckTask(t *testing.T) {
	p, err := workpool.New(2, workpool.WithQuiescenceTimeout(20*time.Millisecond))
	require.NoError(t, err)

	release := make(chan struct{})
	defer close(release)
	err = p.Phase(context.Background(), func(s *workpool.Scope) {
		s.Go(func() { <-release })
	})
	require.ErrorIs(t, err, workpool.ErrEngineStuck)
}

func TestPhase_PanicBecomesError(t *testing.T) {
	for _, size := range []int{1, 3} {
		p, err := workpool.New(size)
		require.NoError(t, err)

		var mu sync.Mutex
		ran := 0
		err = p.Phase(context.Background(), func(s *workpool.Scope) {
			s.Go(func() { panic("boom") })
			s.Go(func() { mu.Lock(); ran++; mu.Unlock() })
		})
		require.ErrorIs(t, err, workpool.ErrTaskPanicked, "size=%d", size)
		require.Equal(t, 1, ran, "other tasks still complete")
	}
}

func TestPhase_CanceledContext(t *testing.T) {
	p, err := workpool.New(2)
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	called := false
	err = p.Phase(ctx, func(*workpool.Scope) { called = true })
	require.ErrorIs(t, err, context.Canceled)
	require.False(t, called)
}
