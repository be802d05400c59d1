// SPDX-License-Identifier: MIT

package bench

import (
	"context"
	"fmt"
	"log/slog"
	"math/rand"
	"slices"
	"time"

	"github.com/katalvlaran/lvstep/bfs"
	"github.com/katalvlaran/lvstep/builder"
	"github.com/katalvlaran/lvstep/core"
	"github.com/katalvlaran/lvstep/ctxlog"
	"github.com/katalvlaran/lvstep/dijkstra"
	"github.com/katalvlaran/lvstep/distance"
	"github.com/katalvlaran/lvstep/metrics"
	"github.com/katalvlaran/lvstep/run"
	"github.com/katalvlaran/lvstep/stepping"
	"github.com/katalvlaran/lvstep/sweep"
	"github.com/katalvlaran/lvstep/workpool"
)

// Runner executes scenarios. The zero value is not usable; use NewRunner.
type Runner struct {
	logger            *slog.Logger
	metrics           *metrics.Recorder
	quiescenceTimeout time.Duration
	verify            bool
}

// Option configures a Runner.
type Option func(*Runner)

// WithLogger overrides the logger carried by Run's context.
func WithLogger(l *slog.Logger) Option {
	return func(r *Runner) { r.logger = l }
}

// WithMetrics forwards a recorder to every engine.
func WithMetrics(m *metrics.Recorder) Option {
	return func(r *Runner) { r.metrics = m }
}

// WithQuiescenceTimeout sets the engines' per-phase ceiling. Panics if d <= 0.
func WithQuiescenceTimeout(d time.Duration) Option {
	if d <= 0 {
		panic("bench: WithQuiescenceTimeout(d<=0)")
	}
	return func(r *Runner) { r.quiescenceTimeout = d }
}

// WithVerify forces verification against Dijkstra for every scenario,
// whatever the scenario's own Verify flag says.
func WithVerify() Option {
	return func(r *Runner) { r.verify = true }
}

// NewRunner returns a Runner with the given options applied.
func NewRunner(opts ...Option) *Runner {
	r := &Runner{quiescenceTimeout: workpool.DefaultQuiescenceTimeout}
	for _, opt := range opts {
		opt(r)
	}

	return r
}

// Run executes sc.Loops iterations. Each loop generates a fresh graph, picks
// the source, runs every selected algorithm on it and checks that each one
// reached exactly the vertices a BFS reaches. When verification is on, every
// distance vector is also checked against Dijkstra. The first failure aborts the
// scenario.
func (r *Runner) Run(ctx context.Context, sc Scenario) (Report, error) {
	if err := sc.Validate(); err != nil {
		return Report{}, err
	}
	logger := r.logger
	if logger == nil {
		logger = ctxlog.FromContext(ctx)
	}
	logger = logger.With("scenario", sc.Name)
	ctx = ctxlog.WithLogger(ctx, logger)

	rng := rand.New(rand.NewSource(sc.Seed))
	rep := Report{Scenario: sc.Name, Vertices: sc.Vertices, Loops: sc.Loops}
	for _, a := range Algorithms {
		if slices.Contains(sc.Algorithms, a) {
			rep.Algorithms = append(rep.Algorithms, AlgorithmReport{Algorithm: a})
		}
	}

	for i := 0; i < sc.Loops; i++ {
		if err := ctx.Err(); err != nil {
			return Report{}, err
		}
		logger.Debug("Loop started.", "loop", i+1, "loops", sc.Loops)

		g, err := generate(sc, rng)
		if err != nil {
			return Report{}, fmt.Errorf("bench: %q loop %d: %w", sc.Name, i, err)
		}
		source := sc.Source
		if sc.RandomSource {
			source = rng.Intn(sc.Vertices)
		}

		reach, err := bfs.BFS(g, source)
		if err != nil {
			return Report{}, fmt.Errorf("bench: %q loop %d: %w", sc.Name, i, err)
		}

		var want []int64
		if r.verify || sc.Verify {
			if want, _, err = dijkstra.Dijkstra(g, source); err != nil {
				return Report{}, fmt.Errorf("bench: %q loop %d: %w", sc.Name, i, err)
			}
		}

		var total int64
		for k := range rep.Algorithms {
			ar := &rep.Algorithms[k]
			res, dist, err := r.runOne(ctx, sc, g, source, ar.Algorithm)
			if err != nil {
				return Report{}, fmt.Errorf("bench: %q loop %d: %s: %w", sc.Name, i, ar.Algorithm, err)
			}
			if got := Reached(dist); exact(sc, ar.Algorithm) && got != reach.Reached() {
				return Report{}, fmt.Errorf("%w: %q loop %d: %s: reached %d vertices, %d are reachable",
					ErrMismatch, sc.Name, i, ar.Algorithm, got, reach.Reached())
			}
			if want != nil {
				if err = Compare(want, dist); err != nil {
					return Report{}, fmt.Errorf("bench: %q loop %d: %s: %w", sc.Name, i, ar.Algorithm, err)
				}
			}
			ar.Runs++
			ar.Total += res.Duration
			ar.Phases += res.Phases
			ar.BucketAdvances += res.BucketAdvances
			ar.Relaxations += res.Relaxations
			ar.Improvements += res.Improvements
			total = TotalDistance(dist)
		}
		rep.TotalDistances = append(rep.TotalDistances, total)
		rep.Reached = append(rep.Reached, reach.Reached())
	}
	logger.Info("Scenario finished.", "loops", sc.Loops, "algorithms", len(rep.Algorithms))

	return rep, nil
}

// runOne runs a single algorithm on g and returns its result and distances.
// Engines log through the scenario logger carried by ctx.
func (r *Runner) runOne(ctx context.Context, sc Scenario, g *core.Graph, source int, algorithm string) (run.Result, []int64, error) {
	switch algorithm {
	case stepping.AlgorithmDelta, stepping.AlgorithmRadius:
		eng, err := stepping.New(g, source,
			stepping.WithMetrics(r.metrics),
			stepping.WithQuiescenceTimeout(r.quiescenceTimeout),
		)
		if err != nil {
			return run.Result{}, nil, err
		}
		delta := sc.Delta
		if algorithm == stepping.AlgorithmRadius {
			delta = stepping.Unbounded
		}
		res, err := eng.Run(ctx, delta, sc.Parallelism)
		if err != nil {
			return run.Result{}, nil, err
		}

		return res, eng.Distances(), nil

	case sweep.Algorithm:
		eng, err := sweep.New(g, source,
			sweep.WithMetrics(r.metrics),
			sweep.WithQuiescenceTimeout(r.quiescenceTimeout),
		)
		if err != nil {
			return run.Result{}, nil, err
		}
		rounds := sc.Rounds
		if rounds == 0 {
			rounds = sweep.MinRoundsForExactness(g)
		}
		res, err := eng.Run(ctx, rounds, sc.Parallelism)
		if err != nil {
			return run.Result{}, nil, err
		}

		return res, eng.Distances(), nil
	}

	return run.Result{}, nil, fmt.Errorf("%w: %q", ErrUnknownAlgorithm, algorithm)
}

// generate builds the scenario's graph for one loop, drawing from rng.
func generate(sc Scenario, rng *rand.Rand) (*core.Graph, error) {
	opts := []builder.BuilderOption{
		builder.WithRand(rng),
		builder.WithWeightFn(builder.UniformWeightFn(1, sc.MaxWeight)),
	}
	switch sc.Graph {
	case GraphSparse:
		return builder.BuildGraph(sc.Vertices, opts, builder.RandomSparse(sc.Probability))
	case GraphPath:
		if sc.Vertices < 2 {
			return core.NewGraph(sc.Vertices)
		}
		return builder.BuildGraph(sc.Vertices, opts, builder.Path())
	default:
		opts = append(opts, builder.WithShuffledEdges())
		return builder.BuildGraph(sc.Vertices, opts, builder.Complete())
	}
}

// exact reports whether algorithm is configured to produce final distances;
// a range sweep with fewer than V-1 rounds may stop early.
func exact(sc Scenario, algorithm string) bool {
	return algorithm != sweep.Algorithm || sc.Rounds == 0 || sc.Rounds >= int64(sc.Vertices-1)
}

// Reached counts the finite entries of dist.
func Reached(dist []int64) int {
	n := 0
	for _, d := range dist {
		if d != distance.Infinity {
			n++
		}
	}

	return n
}

// TotalDistance sums the finite entries of dist.
func TotalDistance(dist []int64) int64 {
	var sum int64
	for _, d := range dist {
		if d != distance.Infinity {
			sum += d
		}
	}

	return sum
}

// Compare returns ErrMismatch, naming the first differing vertex, unless got
// equals want entry for entry.
func Compare(want, got []int64) error {
	if len(want) != len(got) {
		return fmt.Errorf("%w: %d vertices, want %d", ErrMismatch, len(got), len(want))
	}
	for v := range want {
		if want[v] != got[v] {
			return fmt.Errorf("%w: vertex %d: got %d, want %d", ErrMismatch, v, got[v], want[v])
		}
	}

	return nil
}
