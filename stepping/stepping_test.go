// SPDX-License-Identifier: MIT

package stepping_test

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"
	"runtime"
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvstep/builder"
	"github.com/katalvlaran/lvstep/core"
	"github.com/katalvlaran/lvstep/dijkstra"
	"github.com/katalvlaran/lvstep/distance"
	"github.com/katalvlaran/lvstep/metrics"
	"github.com/katalvlaran/lvstep/stepping"
	"github.com/katalvlaran/lvstep/workpool"
)

// scenarioTriples is the five-vertex graph whose distances from 0 are
// [0 2 5 6 6].
var scenarioTriples = [][3]int64{
	{0, 1, 2}, {0, 3, 6}, {1, 2, 3}, {2, 4, 1}, {3, 2, 1}, {3, 4, 4},
}

func scenarioGraph(t testing.TB) *core.Graph {
	t.Helper()
	g, err := core.FromTriples(scenarioTriples)
	require.NoError(t, err)
	return g
}

func TestRun_ConcreteScenario(t *testing.T) {
	want := []int64{0, 2, 5, 6, 6}
	for _, delta := range []int64{1, 2, 3, 5, 7, 100, stepping.Unbounded} {
		for _, p := range []int{1, 2, 8, 0} {
			t.Run(fmt.Sprintf("delta=%d/p=%d", delta, p), func(t *testing.T) {
				eng, err := stepping.New(scenarioGraph(t), 0)
				require.NoError(t, err)

				res, err := eng.Run(context.Background(), delta, p)
				require.NoError(t, err)
				require.Equal(t, want, eng.Distances())
				require.Equal(t, delta, res.Bound)
				require.Positive(t, res.Phases)
			})
		}
	}
}

func TestRun_AlgorithmLabelAndAdvances(t *testing.T) {
	eng, err := stepping.New(scenarioGraph(t), 0)
	require.NoError(t, err)

	res, err := eng.Run(context.Background(), 2, 1)
	require.NoError(t, err)
	require.Equal(t, stepping.AlgorithmDelta, res.Algorithm)
	// Windows [2,4), [4,6) and [6,8) are each opened by a rescan.
	require.Equal(t, 3, res.BucketAdvances)
	require.Equal(t, 4, res.Phases)

	res, err = eng.RunRadius(context.Background(), 1)
	require.NoError(t, err)
	require.Equal(t, stepping.AlgorithmRadius, res.Algorithm)
	require.Zero(t, res.BucketAdvances)
	require.Equal(t, []int64{0, 2, 5, 6, 6}, eng.Distances())
}

func TestRun_UnreachableAndSource(t *testing.T) {
	g, err := core.NewGraph(4)
	require.NoError(t, err)
	require.NoError(t, g.AddEdge(1, 2, 3))
	require.NoError(t, g.AddEdge(2, 1, 1))
	require.NoError(t, g.AddEdge(3, 1, 1))

	eng, err := stepping.New(g, 1)
	require.NoError(t, err)
	_, err = eng.Run(context.Background(), 2, 4)
	require.NoError(t, err)
	require.Equal(t, []int64{distance.Infinity, 0, 3, distance.Infinity}, eng.Distances())
}

func TestRun_ZeroWeightEdges(t *testing.T) {
	g, err := core.FromTriples([][3]int64{{0, 1, 0}, {1, 2, 0}, {2, 3, 4}, {0, 3, 9}})
	require.NoError(t, err)

	eng, err := stepping.New(g, 0)
	require.NoError(t, err)
	_, err = eng.Run(context.Background(), 4, 2)
	require.NoError(t, err)
	// 3 lands exactly on the boundary of [4, 8).
	require.Equal(t, []int64{0, 0, 0, 4}, eng.Distances())
}

func TestRun_MatchesDijkstraAcrossParallelism(t *testing.T) {
	g, err := builder.BuildGraph(100, []builder.BuilderOption{
		builder.WithSeed(2024),
		builder.WithWeightFn(builder.UniformWeightFn(1, 10)),
		builder.WithShuffledEdges(),
	}, builder.Complete())
	require.NoError(t, err)

	want, _, err := dijkstra.Dijkstra(g, 0)
	require.NoError(t, err)

	eng, err := stepping.New(g, 0)
	require.NoError(t, err)

	for _, delta := range []int64{1, 3, 10, stepping.Unbounded} {
		_, err = eng.Run(context.Background(), delta, 1)
		require.NoError(t, err)
		seq := eng.Distances()

		_, err = eng.Run(context.Background(), delta, runtime.GOMAXPROCS(0))
		require.NoError(t, err)
		par := eng.Distances()

		require.Equal(t, seq, par, "delta=%d", delta)
		require.Equal(t, want, par, "delta=%d", delta)
	}
}

func TestRun_RandomSparseMatchesDijkstra(t *testing.T) {
	for seed := int64(1); seed <= 5; seed++ {
		g, err := builder.BuildGraph(60, []builder.BuilderOption{
			builder.WithSeed(seed),
			builder.WithWeightFn(builder.UniformWeightFn(0, 25)),
		}, builder.RandomSparse(0.05))
		require.NoError(t, err)

		want, _, err := dijkstra.Dijkstra(g, 0)
		require.NoError(t, err)

		eng, err := stepping.New(g, 0, stepping.WithFrontierDedup())
		require.NoError(t, err)
		_, err = eng.Run(context.Background(), 7, 4)
		require.NoError(t, err)
		require.Equal(t, want, eng.Distances(), "seed=%d", seed)
	}
}

func TestNew_Errors(t *testing.T) {
	_, err := stepping.New(nil, 0)
	require.ErrorIs(t, err, stepping.ErrNilGraph)

	_, err = stepping.New(scenarioGraph(t), 5)
	require.ErrorIs(t, err, stepping.ErrInvalidSource)
}

func TestNew_SealsGraph(t *testing.T) {
	g := scenarioGraph(t)
	_, err := stepping.New(g, 0)
	require.NoError(t, err)
	require.ErrorIs(t, g.AddEdge(0, 4, 1), core.ErrSealed)
}

func TestRun_InvalidArguments(t *testing.T) {
	eng, err := stepping.New(scenarioGraph(t), 0)
	require.NoError(t, err)

	_, err = eng.Run(context.Background(), 0, 1)
	require.ErrorIs(t, err, stepping.ErrInvalidBound)
	_, err = eng.Run(context.Background(), -3, 1)
	require.ErrorIs(t, err, stepping.ErrInvalidBound)
	_, err = eng.Run(context.Background(), 2, -1)
	require.ErrorIs(t, err, workpool.ErrInvalidParallelism)
	require.Nil(t, eng.Distances())
}

func TestRun_FailureClearsDistances(t *testing.T) {
	eng, err := stepping.New(scenarioGraph(t), 0)
	require.NoError(t, err)
	require.Nil(t, eng.Distances(), "no run yet")

	_, err = eng.Run(context.Background(), 2, 2)
	require.NoError(t, err)
	require.NotNil(t, eng.Distances())

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = eng.Run(ctx, 2, 2)
	require.ErrorIs(t, err, context.Canceled)
	require.Nil(t, eng.Distances())
}

func TestRun_LogsAndMetrics(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
	reg := prometheus.NewRegistry()

	eng, err := stepping.New(scenarioGraph(t), 0,
		stepping.WithLogger(logger),
		stepping.WithMetrics(metrics.New(reg)),
	)
	require.NoError(t, err)
	res, err := eng.Run(context.Background(), 2, 1)
	require.NoError(t, err)

	out := buf.String()
	require.Contains(t, out, "Run completed.")
	require.Contains(t, out, "Bucket window opened.")
	require.Contains(t, out, res.RunID.String())

	require.NoError(t, testutil.GatherAndCompare(reg, strings.NewReader(`
# HELP lvstep_bucket_advances_total Bucket windows opened by a rescan.
# TYPE lvstep_bucket_advances_total counter
lvstep_bucket_advances_total{algorithm="delta-stepping"} 3
`), "lvstep_bucket_advances_total"))
}

func TestWithQuiescenceTimeout_Panics(t *testing.T) {
	require.Panics(t, func() { stepping.WithQuiescenceTimeout(0) })
}
