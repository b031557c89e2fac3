// SPDX-License-Identifier: MIT
// Package: npgraph/builder
//
// impl_topologies.go: deterministic fixtures with known PATH / K-CLIQUE answers.
//
//	Empty(n)    — n isolated nodes: only trivial paths, ω = 1.
//	Complete(n) — K_n: every pair reachable, ω = n.
//	Path(n)     — 0—1—…—(n-1): connected, ω = 2 for n ≥ 2.
//	Cycle(n)    — Path plus (n-1)—0, n ≥ 3: ω = 3 iff n == 3.
//	Star(n)     — center 0 joined to 1..n-1: ω = 2 for n ≥ 2.
//
// Each constructor appends its nodes after any already in g, so several can
// be composed in one BuildGraph call to produce disjoint components.

package builder

import (
	"fmt"

	"github.com/katalvlaran/npgraph/core"
)

const (
	methodEmpty    = "Empty"
	methodComplete = "Complete"
	methodPath     = "Path"
	methodCycle    = "Cycle"
	methodStar     = "Star"

	minCycleNodes = 3
	minNodes      = 1
)

// appendNodes adds n isolated nodes to g and returns the index of the first.
func appendNodes(g *core.Graph, n int) (int, error) {
	base := g.Size()
	for i := 0; i < n; i++ {
		if err := g.AddNodeAdjacent(); err != nil {
			return 0, err
		}
	}

	return base, nil
}

// connect sets each (u,v) pair, offset by base.
func connect(method string, g *core.Graph, base int, pairs [][2]int) error {
	for _, e := range pairs {
		if err := g.SetEdge(base+e[0], base+e[1]); err != nil {
			return fmt.Errorf("%s: SetEdge(%d,%d): %w", method, base+e[0], base+e[1], err)
		}
	}

	return nil
}

// fixture wraps the common validate → append → connect sequence.
func fixture(method string, n, min int, pairs func(n int) [][2]int) Constructor {
	return func(g *core.Graph, _ builderConfig) error {
		if n < min {
			return fmt.Errorf("%s: n=%d < min=%d: %w", method, n, min, ErrTooFewVertices)
		}
		base, err := appendNodes(g, n)
		if err != nil {
			return fmt.Errorf("%s: %w", method, err)
		}

		return connect(method, g, base, pairs(n))
	}
}

// Empty returns a Constructor adding n isolated nodes (n ≥ 1).
func Empty(n int) Constructor {
	return fixture(methodEmpty, n, minNodes, func(int) [][2]int { return nil })
}

// Complete returns a Constructor adding K_n (n ≥ 1).
func Complete(n int) Constructor {
	return fixture(methodComplete, n, minNodes, func(n int) [][2]int {
		pairs := make([][2]int, 0, n*(n-1)/2)
		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				pairs = append(pairs, [2]int{i, j})
			}
		}
		return pairs
	})
}

// Path returns a Constructor adding the path P_n (n ≥ 1).
func Path(n int) Constructor {
	return fixture(methodPath, n, minNodes, pathPairs)
}

func pathPairs(n int) [][2]int {
	pairs := make([][2]int, 0, n)
	for i := 0; i+1 < n; i++ {
		pairs = append(pairs, [2]int{i, i + 1})
	}
	return pairs
}

// Cycle returns a Constructor adding the cycle C_n (n ≥ 3).
func Cycle(n int) Constructor {
	return fixture(methodCycle, n, minCycleNodes, func(n int) [][2]int {
		return append(pathPairs(n), [2]int{n - 1, 0})
	})
}

// Star returns a Constructor adding a star with center at its first node
// and n-1 leaves (n ≥ 1).
func Star(n int) Constructor {
	return fixture(methodStar, n, minNodes, func(n int) [][2]int {
		pairs := make([][2]int, 0, n)
		for i := 1; i < n; i++ {
			pairs = append(pairs, [2]int{0, i})
		}
		return pairs
	})
}
