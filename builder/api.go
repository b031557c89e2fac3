// SPDX-License-Identifier: MIT
// Package: npgraph/builder
//
// api.go - thin public entry-points for the builder package.
//
// Design contract:
//   - One orchestrator: BuildGraph(bopts, cons...). Creates g, resolves cfg, runs cons in order.
//   - Functional options (BuilderOption) resolve into a builderConfig (no global state).
//   - Determinism: same options/seed and constructor order ⇒ identical graphs.
//   - Safety: never panic; return sentinel errors from constructors.

package builder

import (
	"fmt"

	"github.com/katalvlaran/npgraph/core"
)

// Constructor applies a graph mutation using the resolved builderConfig.
// Constructors MUST validate parameters before mutating g and return
// sentinel errors rather than panic.
type Constructor func(g *core.Graph, cfg builderConfig) error

// BuildGraph creates a new empty core.Graph, resolves the builder
// configuration from bopts, and applies all constructors in order.
// Any constructor error is wrapped as "BuildGraph: %w" and the graph is
// discarded, so callers never observe a partially built instance.
//
// Complexity: O(len(bopts)) + Σ cost of each constructor.
func BuildGraph(bopts []BuilderOption, cons ...Constructor) (*core.Graph, error) {
	g := core.NewGraph()
	cfg := newBuilderConfig(bopts...)

	for i, fn := range cons {
		if fn == nil {
			return nil, fmt.Errorf("BuildGraph: nil constructor at index %d: %w", i, ErrConstructFailed)
		}
		if err := fn(g, cfg); err != nil {
			return nil, fmt.Errorf("BuildGraph: %w", err)
		}
	}

	return g, nil
}

// Random builds an n-node random undirected graph where each possible edge
// is present independently with probability p.
//
// Errors:
//   - ErrTooFewVertices if n <= 0.
//   - ErrInvalidProbability if p is outside (0,1].
func Random(n int, p float64, opts ...BuilderOption) (*core.Graph, error) {
	return BuildGraph(opts, RandomNodes(n, p))
}
