// SPDX-License-Identifier: MIT

// Package builder constructs core.Graph fixtures: the incremental random
// generator used by benchmarks, and a handful of deterministic topologies
// used by tests and by the harness as known-answer instances.
//
// The package offers the following key components:
//
//   - Orchestration:
//     – BuildGraph:        creates a graph and applies Constructors in order.
//     – Random:            BuildGraph(opts, RandomNodes(n, p)) shorthand.
//     – AddRandomNode:     the single incremental step of the generator.
//   - Configuration primitives:
//     – BuilderOption:     a function that mutates builderConfig before use.
//     – WithSeed / WithRand / WithSource: inject the uniform random source.
//   - Deterministic topologies:
//     – Empty, Complete, Path, Cycle, Star.
//
// Random model:
//
// The generator is incremental: node m is appended with one independent
// Bernoulli(p) trial against each existing node 0..m-1, decided once and
// never revisited. Over n nodes this is exactly "each of the C(n,2) possible
// undirected edges is present independently with probability p".
//
// Randomness is never global. Each BuildGraph call resolves its own Source:
// an injected one (WithSource/WithRand/WithSeed) or a fresh time-seeded
// *rand.Rand owned by that call.
//
// Guarantees:
//
//   - Fast-fail on invalid option parameters via panics in option constructors.
//   - Sentinel errors (ErrTooFewVertices, ErrInvalidProbability, …) for invalid
//     build parameters, detected before any node is added.
//   - BuildGraph never returns a partially built graph.
package builder
