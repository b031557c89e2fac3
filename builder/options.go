// SPDX-License-Identifier: MIT
// Package: npgraph/builder
//
// options.go: functional options for the builder package.
//
// Contract:
//   • Options are functional (type BuilderOption func(*builderConfig)).
//   • Option constructors PANIC on meaningless inputs (nil sources).
//     Constructors themselves never panic.
//   • Seeding is explicit: WithSeed, WithRand or WithSource.

package builder

import "math/rand"

// BuilderOption customizes a build by mutating builderConfig before
// construction begins.
type BuilderOption func(*builderConfig)

// WithSeed creates a new *rand.Rand with the given seed.
// Use this in tests and benchmarks to lock outcomes.
func WithSeed(seed int64) BuilderOption {
	return func(c *builderConfig) {
		c.src = rand.New(rand.NewSource(seed))
	}
}

// WithRand provides an explicit RNG. Panics on nil.
func WithRand(r *rand.Rand) BuilderOption {
	if r == nil {
		panic("builder: WithRand(nil)")
	}
	return func(c *builderConfig) {
		c.src = r
	}
}

// WithSource provides any uniform Source, e.g. a scripted sequence in tests.
// Panics on nil.
func WithSource(s Source) BuilderOption {
	if s == nil {
		panic("builder: WithSource(nil)")
	}
	return func(c *builderConfig) {
		c.src = s
	}
}
