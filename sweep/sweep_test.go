// SPDX-License-Identifier: MIT

package sweep_test

import (
	"context"
	"fmt"
	"runtime"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/katalvlaran/lvstep/builder"
	"github.com/katalvlaran/lvstep/core"
	"github.com/katalvlaran/lvstep/dijkstra"
	"github.com/katalvlaran/lvstep/distance"
	"github.com/katalvlaran/lvstep/sweep"
	"github.com/katalvlaran/lvstep/workpool"
)

// SweepSuite runs the range-sweep engine on the five-vertex scenario graph.
type SweepSuite struct {
	suite.Suite
	g *core.Graph
}

func (s *SweepSuite) SetupTest() {
	g, err := core.FromTriples([][3]int64{
		{0, 1, 2}, {0, 3, 6}, {1, 2, 3}, {2, 4, 1}, {3, 2, 1}, {3, 4, 4},
	})
	s.Require().NoError(err)
	s.g = g
}

func (s *SweepSuite) TestConcreteScenario() {
	eng, err := sweep.New(s.g, 0)
	s.Require().NoError(err)

	rounds := sweep.MinRoundsForExactness(s.g)
	s.Require().Equal(int64(4), rounds)
	for _, p := range []int{1, 2, 8, 0} {
		res, err := eng.Run(context.Background(), rounds, p)
		s.Require().NoError(err, "p=%d", p)
		s.Require().Equal([]int64{0, 2, 5, 6, 6}, eng.Distances(), "p=%d", p)
		s.Require().Equal(int(rounds), res.Phases)
		s.Require().Equal(sweep.Algorithm, res.Algorithm)
	}
}

func (s *SweepSuite) TestZeroRoundsLeavesOnlySource() {
	eng, err := sweep.New(s.g, 2)
	s.Require().NoError(err)
	res, err := eng.Run(context.Background(), 0, 4)
	s.Require().NoError(err)
	s.Require().Zero(res.Phases)
	inf := distance.Infinity
	s.Require().Equal([]int64{inf, inf, 0, inf, inf}, eng.Distances())
}

func (s *SweepSuite) TestInvalidArguments() {
	_, err := sweep.New(nil, 0)
	s.Require().ErrorIs(err, sweep.ErrNilGraph)
	_, err = sweep.New(s.g, -1)
	s.Require().ErrorIs(err, sweep.ErrInvalidSource)

	eng, err := sweep.New(s.g, 0)
	s.Require().NoError(err)
	_, err = eng.Run(context.Background(), -1, 1)
	s.Require().ErrorIs(err, sweep.ErrInvalidBound)
	_, err = eng.Run(context.Background(), 1, -2)
	s.Require().ErrorIs(err, workpool.ErrInvalidParallelism)
	s.Require().ErrorIs(s.g.AddEdge(0, 1, 1), core.ErrSealed)
}

func (s *SweepSuite) TestCanceledRunClearsDistances() {
	eng, err := sweep.New(s.g, 0)
	s.Require().NoError(err)
	_, err = eng.Run(context.Background(), 4, 2)
	s.Require().NoError(err)
	s.Require().NotNil(eng.Distances())

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = eng.Run(ctx, 4, 2)
	s.Require().ErrorIs(err, context.Canceled)
	s.Require().Nil(eng.Distances())
}

func TestSweepSuite(t *testing.T) {
	suite.Run(t, new(SweepSuite))
}

func TestRun_PathNeedsEnoughRounds(t *testing.T) {
	// The path has V-1 edges, the worst case for the round bound.
	g, err := builder.BuildGraph(10, nil, builder.Path())
	require.NoError(t, err)
	eng, err := sweep.New(g, 0)
	require.NoError(t, err)

	_, err = eng.Run(context.Background(), sweep.MinRoundsForExactness(g), 3)
	require.NoError(t, err)
	require.Equal(t, []int64{0, 1, 2, 3, 4, 5, 6, 7, 8, 9}, eng.Distances())
}

func TestRun_MatchesDijkstraAcrossParallelism(t *testing.T) {
	g, err := builder.BuildGraph(100, []builder.BuilderOption{
		builder.WithSeed(99),
		builder.WithWeightFn(builder.UniformWeightFn(1, 10)),
		builder.WithShuffledEdges(),
	}, builder.Complete())
	require.NoError(t, err)
	want, _, err := dijkstra.Dijkstra(g, 7)
	require.NoError(t, err)

	eng, err := sweep.New(g, 7)
	require.NoError(t, err)
	rounds := sweep.MinRoundsForExactness(g)

	var got [][]int64
	for _, p := range []int{1, runtime.GOMAXPROCS(0)} {
		t.Run(fmt.Sprintf("p=%d", p), func(t *testing.T) {
			_, err := eng.Run(context.Background(), rounds, p)
			require.NoError(t, err)
			got = append(got, eng.Distances())
			require.Equal(t, want, got[len(got)-1])
		})
	}
	require.Len(t, got, 2)
	require.Equal(t, got[0], got[1])
}
