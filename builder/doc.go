// Package builder generates graphs for tests, examples and the comparison
// harness, in the functional-options style used across lvstep.
//
// Components:
//
//   - BuildGraph(n, opts, cons...): the single orchestrator.
//   - Constructors: Complete (fully connected, symmetric weights),
//     RandomSparse(p), Path.
//   - Options: WithSeed / WithRand (determinism), WithWeightFn,
//     WithShuffledEdges.
//   - Weight functions: ConstantWeightFn, UniformWeightFn.
//
// Guarantees:
//
//   - Same n, options, seed and constructor order produce identical graphs,
//     adjacency order included.
//   - Constructors return wrapped sentinel errors and never panic; option
//     constructors panic on meaningless arguments.
package builder
