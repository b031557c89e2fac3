// SPDX-License-Identifier: MIT
// Package: npgraph/builder
//
// impl_random.go - incremental Erdős–Rényi-style generator.
//
// Canonical model:
//   - The first node is added with no edges.
//   - Each later node m draws one Bernoulli(p) trial per existing node i<m,
//     in ascending i, using src.Float64() < p. Success sets i—m symmetrically.
//   - Edges are decided once, at node-creation time, and never revisited.
//
// Contract:
//   - n ≥ 1 (else ErrTooFewVertices).
//   - 0 < p ≤ 1 (else ErrInvalidProbability).
//   - Validation happens before the first node is appended.
//
// Complexity:
//   - Time: O(n²) trials; AddRandomNode alone is O(n).
//
// Determinism:
//   - Fixed trial order, so a fixed seed yields an identical matrix.

package builder

import (
	"fmt"

	"github.com/katalvlaran/npgraph/core"
)

const (
	methodRandom      = "RandomNodes"
	methodAddRandom   = "AddRandomNode"
	minRandomVertices = 1
	probMin           = 0.0 // exclusive
	probMax           = 1.0 // inclusive
)

// validateProbability enforces p ∈ (0,1]. NaN fails both comparisons and is rejected.
func validateProbability(method string, p float64) error {
	if !(p > probMin && p <= probMax) {
		return fmt.Errorf("%s: p=%g not in (%.1f,%.1f]: %w", method, p, probMin, probMax, ErrInvalidProbability)
	}

	return nil
}

// AddRandomNode appends one node to g, connecting it to each existing node
// independently with probability p drawn from src.
//
// Errors:
//   - ErrConstructFailed if g is nil.
//   - ErrInvalidProbability if p is outside (0,1].
//   - ErrNeedRandSource if src is nil.
//
// On error g is unchanged.
func AddRandomNode(g *core.Graph, p float64, src Source) error {
	if g == nil {
		return fmt.Errorf("%s: nil graph: %w", methodAddRandom, ErrConstructFailed)
	}
	if err := validateProbability(methodAddRandom, p); err != nil {
		return err
	}
	if src == nil {
		return fmt.Errorf("%s: %w", methodAddRandom, ErrNeedRandSource)
	}

	// row has length n; AddNode mirrors row[i] into existing row i,
	// keeping the matrix symmetric. The first node gets an empty row.
	row := make([]bool, g.Size())
	for i := range row {
		row[i] = src.Float64() < p
	}

	return g.AddNode(row)
}

// RandomNodes returns a Constructor that appends n random nodes via
// AddRandomNode using cfg's source.
func RandomNodes(n int, p float64) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < minRandomVertices {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodRandom, n, minRandomVertices, ErrTooFewVertices)
		}
		if err := validateProbability(methodRandom, p); err != nil {
			return err
		}

		for i := 0; i < n; i++ {
			if err := AddRandomNode(g, p, cfg.src); err != nil {
				return fmt.Errorf("%s: node %d: %w", methodRandom, i, err)
			}
		}

		return nil
	}
}
