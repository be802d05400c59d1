// SPDX-License-Identifier: MIT

package bench_test

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvstep/bench"
)

func baseScenario() bench.Scenario {
	return bench.Scenario{
		Name:        "small",
		Graph:       bench.GraphComplete,
		Vertices:    30,
		MaxWeight:   10,
		Seed:        11,
		Loops:       3,
		Parallelism: 4,
		Delta:       3,
		Algorithms:  bench.Algorithms,
		Verify:      true,
	}
}

func TestRunner_AllAlgorithmsAgree(t *testing.T) {
	rep, err := bench.NewRunner().Run(context.Background(), baseScenario())
	require.NoError(t, err)

	require.Equal(t, "small", rep.Scenario)
	require.Len(t, rep.Algorithms, 3)
	require.Len(t, rep.TotalDistances, 3)
	for _, a := range rep.Algorithms {
		require.Equal(t, 3, a.Runs, a.Algorithm)
		require.Positive(t, a.Phases, a.Algorithm)
		require.Positive(t, a.Improvements, a.Algorithm)
	}
	for _, total := range rep.TotalDistances {
		require.Positive(t, total)
	}
}

func TestRunner_Deterministic(t *testing.T) {
	sc := baseScenario()
	sc.RandomSource = true
	sc.Graph = bench.GraphSparse
	sc.Probability = 0.2

	a, err := bench.NewRunner().Run(context.Background(), sc)
	require.NoError(t, err)
	b, err := bench.NewRunner(bench.WithVerify()).Run(context.Background(), sc)
	require.NoError(t, err)
	require.Equal(t, a.TotalDistances, b.TotalDistances)
}

func TestRunner_PathGraph(t *testing.T) {
	sc := baseScenario()
	sc.Graph = bench.GraphPath
	sc.Vertices = 12
	sc.MaxWeight = 1
	sc.Loops = 1

	rep, err := bench.NewRunner().Run(context.Background(), sc)
	require.NoError(t, err)
	// 0+1+…+11
	require.Equal(t, []int64{66}, rep.TotalDistances)
	require.Equal(t, []int{12}, rep.Reached)
}

func TestScenario_Validate(t *testing.T) {
	cases := map[string]func(*bench.Scenario){
		"no vertices":    func(s *bench.Scenario) { s.Vertices = 0 },
		"no weight":      func(s *bench.Scenario) { s.MaxWeight = 0 },
		"no loops":       func(s *bench.Scenario) { s.Loops = 0 },
		"negative par":   func(s *bench.Scenario) { s.Parallelism = -1 },
		"zero delta":     func(s *bench.Scenario) { s.Delta = 0 },
		"negative round": func(s *bench.Scenario) { s.Rounds = -1 },
		"bad source":     func(s *bench.Scenario) { s.Source = 30 },
		"no algorithms":  func(s *bench.Scenario) { s.Algorithms = nil },
		"bad graph":      func(s *bench.Scenario) { s.Graph = "grid" },
		"bad probability": func(s *bench.Scenario) {
			s.Graph = bench.GraphSparse
			s.Probability = 2
		},
	}
	for name, mutate := range cases {
		t.Run(name, func(t *testing.T) {
			sc := baseScenario()
			mutate(&sc)
			require.ErrorIs(t, sc.Validate(), bench.ErrInvalidScenario)
		})
	}

	sc := baseScenario()
	sc.Algorithms = []string{"bellman-ford"}
	require.ErrorIs(t, sc.Validate(), bench.ErrUnknownAlgorithm)
	_, err := bench.NewRunner().Run(context.Background(), sc)
	require.ErrorIs(t, err, bench.ErrUnknownAlgorithm)
}

func TestRunner_CanceledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := bench.NewRunner().Run(ctx, baseScenario())
	require.ErrorIs(t, err, context.Canceled)
}

func TestWriteTable(t *testing.T) {
	sc := baseScenario()
	sc.Loops = 1
	rep, err := bench.NewRunner().Run(context.Background(), sc)
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, bench.WriteTable(&buf, []bench.Report{rep}))
	out := buf.String()
	require.Contains(t, out, "ALGORITHM")
	require.Contains(t, out, "delta-stepping")
	require.Contains(t, out, "radius-stepping")
	require.Contains(t, out, "range-sweep")
	require.Contains(t, out, "small: mean total distance")
}

func TestTotalDistanceAndReached(t *testing.T) {
	dist := []int64{0, 4, 5, 1<<63 - 1}
	require.Equal(t, int64(9), bench.TotalDistance(dist))
	require.Equal(t, 3, bench.Reached(dist))
}

func TestCompare(t *testing.T) {
	require.NoError(t, bench.Compare([]int64{0, 3}, []int64{0, 3}))
	err := bench.Compare([]int64{0, 3}, []int64{0, 4})
	require.ErrorIs(t, err, bench.ErrMismatch)
	require.Contains(t, err.Error(), "vertex 1")
	require.ErrorIs(t, bench.Compare([]int64{0}, nil), bench.ErrMismatch)
}
