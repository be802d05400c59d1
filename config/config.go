// SPDX-License-Identifier: MIT

package config

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"slices"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/zclconf/go-cty/cty"

	"github.com/katalvlaran/lvstep/bench"
	"github.com/katalvlaran/lvstep/ctxlog"
)

// hclFile is the top-level structure of a scenario file.
type hclFile struct {
	Scenarios []*hclScenario `hcl:"scenario,block"`
}

// hclScenario mirrors bench.Scenario; optional fields left unset take the
// bench defaults.
type hclScenario struct {
	Name         string   `hcl:"name,label"`
	Graph        *string  `hcl:"graph,optional"`
	Vertices     int      `hcl:"vertices"`
	MaxWeight    *int64   `hcl:"max_weight,optional"`
	Probability  *float64 `hcl:"probability,optional"`
	Source       *int     `hcl:"source,optional"`
	RandomSource *bool    `hcl:"random_source,optional"`
	Seed         *int64   `hcl:"seed,optional"`
	Loops        *int     `hcl:"loops,optional"`
	Parallelism  *int     `hcl:"parallelism,optional"`
	Delta        *int64   `hcl:"delta,optional"`
	Rounds       *int64   `hcl:"rounds,optional"`
	Algorithms   []string `hcl:"algorithms,optional"`
	Verify       *bool    `hcl:"verify,optional"`
}

// EvalContext returns the evaluation context scenario expressions see.
func EvalContext() *hcl.EvalContext {
	return &hcl.EvalContext{
		Variables: map[string]cty.Value{
			"cpus": cty.NumberIntVal(int64(runtime.GOMAXPROCS(0))),
		},
	}
}

// Parse decodes the scenarios in src. filename is used in diagnostics only.
func Parse(src []byte, filename string) ([]bench.Scenario, error) {
	return parse(hclparse.NewParser(), src, filename)
}

func parse(parser *hclparse.Parser, src []byte, filename string) ([]bench.Scenario, error) {
	file, diags := parser.ParseHCL(src, filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse HCL file %s: %w", filename, diags)
	}

	var parsed hclFile
	diags = gohcl.DecodeBody(file.Body, EvalContext(), &parsed)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode HCL file %s: %w", filename, diags)
	}

	scenarios := make([]bench.Scenario, 0, len(parsed.Scenarios))
	for _, hs := range parsed.Scenarios {
		sc := hs.toScenario()
		if err := sc.Validate(); err != nil {
			return nil, fmt.Errorf("%s: %w", filename, err)
		}
		scenarios = append(scenarios, sc)
	}

	return scenarios, nil
}

// toScenario applies defaults to every unset field.
func (h *hclScenario) toScenario() bench.Scenario {
	sc := bench.Scenario{
		Name:        h.Name,
		Graph:       bench.GraphComplete,
		Vertices:    h.Vertices,
		MaxWeight:   bench.DefaultMaxWeight,
		Loops:       bench.DefaultLoops,
		Delta:       bench.DefaultDelta,
		Algorithms:  slices.Clone(bench.Algorithms),
		Parallelism: 0,
	}
	if h.Graph != nil {
		sc.Graph = bench.GraphKind(*h.Graph)
	}
	if h.MaxWeight != nil {
		sc.MaxWeight = *h.MaxWeight
	}
	if h.Probability != nil {
		sc.Probability = *h.Probability
	}
	if h.Source != nil {
		sc.Source = *h.Source
	}
	if h.RandomSource != nil {
		sc.RandomSource = *h.RandomSource
	}
	if h.Seed != nil {
		sc.Seed = *h.Seed
	}
	if h.Loops != nil {
		sc.Loops = *h.Loops
	}
	if h.Parallelism != nil {
		sc.Parallelism = *h.Parallelism
	}
	if h.Delta != nil {
		sc.Delta = *h.Delta
	}
	if h.Rounds != nil {
		sc.Rounds = *h.Rounds
	}
	if h.Algorithms != nil {
		sc.Algorithms = h.Algorithms
	}
	if h.Verify != nil {
		sc.Verify = *h.Verify
	}

	return sc
}

// Load reads every path, which is either a .hcl file or a directory whose
// .hcl files (not recursive) are read in name order, and returns all
// scenarios in the order found. Scenario names must be unique.
func Load(ctx context.Context, paths ...string) ([]bench.Scenario, error) {
	logger := ctxlog.FromContext(ctx)
	parser := hclparse.NewParser()

	var files []string
	for _, p := range paths {
		info, err := os.Stat(p)
		if err != nil {
			return nil, fmt.Errorf("config: %w", err)
		}
		if !info.IsDir() {
			files = append(files, p)
			continue
		}
		matches, err := filepath.Glob(filepath.Join(p, "*.hcl"))
		if err != nil {
			return nil, fmt.Errorf("config: %w", err)
		}
		slices.Sort(matches)
		files = append(files, matches...)
	}
	logger.Debug("Scenario files discovered.", "count", len(files))

	var all []bench.Scenario
	seen := make(map[string]string)
	for _, f := range files {
		src, err := os.ReadFile(f)
		if err != nil {
			return nil, fmt.Errorf("config: %w", err)
		}
		scenarios, err := parse(parser, src, f)
		if err != nil {
			return nil, fmt.Errorf("config: %w", err)
		}
		for _, sc := range scenarios {
			if prev, dup := seen[sc.Name]; dup {
				return nil, fmt.Errorf("config: scenario %q in %s already defined in %s", sc.Name, f, prev)
			}
			seen[sc.Name] = f
		}
		logger.Debug("Scenario file loaded.", "file", f, "scenarios", len(scenarios))
		all = append(all, scenarios...)
	}

	return all, nil
}
