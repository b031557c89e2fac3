// SPDX-License-Identifier: MIT
// Package: npgraph/builder
//
// config.go: internal configuration and defaults.
//
// Design:
//   • builderConfig is the single source of truth for builder knobs.
//   • newBuilderConfig applies options in-order (later overrides earlier).
//   • A config without an injected source gets a private time-seeded RNG;
//     no package-level random state exists.

package builder

import (
	"math/rand"
	"time"
)

// Source is a uniform pseudo-random source: Float64 returns a value in [0,1).
// *rand.Rand satisfies it.
type Source interface {
	Float64() float64
}

// builderConfig aggregates all knobs used by constructors.
// It is passed by VALUE to constructors.
type builderConfig struct {
	// src drives every Bernoulli trial; never nil after newBuilderConfig.
	src Source
}

// newBuilderConfig constructs a config and applies all options in order.
// Complexity: O(len(opts)).
func newBuilderConfig(opts ...BuilderOption) builderConfig {
	var cfg builderConfig
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.src == nil {
		cfg.src = rand.New(rand.NewSource(time.Now().UnixNano()))
	}

	return cfg
}
