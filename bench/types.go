// SPDX-License-Identifier: MIT

package bench

import (
	"errors"
	"fmt"
	"slices"
	"time"

	"github.com/katalvlaran/lvstep/stepping"
	"github.com/katalvlaran/lvstep/sweep"
)

// Sentinel errors returned by the harness.
var (
	// ErrInvalidScenario indicates a scenario field is out of range.
	ErrInvalidScenario = errors.New("bench: invalid scenario")

	// ErrUnknownAlgorithm indicates an algorithm name the runner does not know.
	ErrUnknownAlgorithm = errors.New("bench: unknown algorithm")

	// ErrMismatch indicates an engine disagreed with the reference solver.
	ErrMismatch = errors.New("bench: distances differ from reference")
)

// GraphKind selects the generator used for every loop of a scenario.
type GraphKind string

// Supported graph kinds.
const (
	GraphComplete GraphKind = "complete" // every pair, symmetric weights
	GraphSparse   GraphKind = "sparse"   // each arc with probability p
	GraphPath     GraphKind = "path"     // 0→1→…→V-1
)

// Algorithms lists every algorithm name the runner accepts, in report order.
var Algorithms = []string{stepping.AlgorithmDelta, stepping.AlgorithmRadius, sweep.Algorithm}

// Scenario describes one comparison: which graphs to generate, how often,
// and which engines to run on them.
type Scenario struct {
	Name         string
	Graph        GraphKind
	Vertices     int
	MaxWeight    int64   // weights are drawn from [1, MaxWeight]
	Probability  float64 // GraphSparse only
	Source       int
	RandomSource bool // pick a fresh source in every loop
	Seed         int64
	Loops        int
	Parallelism  int   // 0 means GOMAXPROCS
	Delta        int64 // bucket width for delta-stepping
	Rounds       int64 // range-sweep rounds; 0 means V-1
	Algorithms   []string
	Verify       bool // compare every result against Dijkstra
}

// Defaults applied by the configuration loader for absent fields.
const (
	DefaultLoops     = 1
	DefaultMaxWeight = 10
	DefaultDelta     = 2
)

// Validate reports the first invalid field wrapped in ErrInvalidScenario or
// ErrUnknownAlgorithm.
func (s Scenario) Validate() error {
	switch {
	case s.Vertices < 1:
		return fmt.Errorf("%w: %q: vertices must be >= 1, got %d", ErrInvalidScenario, s.Name, s.Vertices)
	case s.MaxWeight < 1:
		return fmt.Errorf("%w: %q: max_weight must be >= 1, got %d", ErrInvalidScenario, s.Name, s.MaxWeight)
	case s.Loops < 1:
		return fmt.Errorf("%w: %q: loops must be >= 1, got %d", ErrInvalidScenario, s.Name, s.Loops)
	case s.Parallelism < 0:
		return fmt.Errorf("%w: %q: parallelism must be >= 0, got %d", ErrInvalidScenario, s.Name, s.Parallelism)
	case s.Delta < 1:
		return fmt.Errorf("%w: %q: delta must be >= 1, got %d", ErrInvalidScenario, s.Name, s.Delta)
	case s.Rounds < 0:
		return fmt.Errorf("%w: %q: rounds must be >= 0, got %d", ErrInvalidScenario, s.Name, s.Rounds)
	case !s.RandomSource && (s.Source < 0 || s.Source >= s.Vertices):
		return fmt.Errorf("%w: %q: source %d outside [0,%d)", ErrInvalidScenario, s.Name, s.Source, s.Vertices)
	case len(s.Algorithms) == 0:
		return fmt.Errorf("%w: %q: no algorithms selected", ErrInvalidScenario, s.Name)
	}
	switch s.Graph {
	case GraphComplete, GraphPath:
	case GraphSparse:
		if s.Probability < 0 || s.Probability > 1 {
			return fmt.Errorf("%w: %q: probability %.3f not in [0,1]", ErrInvalidScenario, s.Name, s.Probability)
		}
	default:
		return fmt.Errorf("%w: %q: graph %q", ErrInvalidScenario, s.Name, s.Graph)
	}
	for _, a := range s.Algorithms {
		if !slices.Contains(Algorithms, a) {
			return fmt.Errorf("%w: %q in scenario %q", ErrUnknownAlgorithm, a, s.Name)
		}
	}

	return nil
}

// Report summarizes a scenario run.
type Report struct {
	Scenario   string
	Vertices   int
	Loops      int
	Algorithms []AlgorithmReport
	// TotalDistances holds, per loop, the sum of finite distances from the
	// loop's source. All algorithms agree on it when they are exact.
	TotalDistances []int64
	// Reached holds, per loop, the number of vertices reachable from the
	// loop's source.
	Reached []int
}

// AlgorithmReport aggregates one algorithm's runs over all loops.
type AlgorithmReport struct {
	Algorithm      string
	Runs           int
	Total          time.Duration
	Phases         int
	BucketAdvances int
	Relaxations    int64
	Improvements   int64
}

// Average returns the mean wall time per run.
func (a AlgorithmReport) Average() time.Duration {
	if a.Runs == 0 {
		return 0
	}

	return a.Total / time.Duration(a.Runs)
}
