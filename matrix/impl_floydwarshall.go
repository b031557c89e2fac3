// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//   - Dense APSP (Floyd–Warshall) with deterministic loop order.
//   - In-place, O(n³) time, O(1) extra space.
//
// Contract:
//   - Square matrix; +Inf means “no path”; diagonal must be 0 before calling.

package matrix

import (
	"fmt"
	"math"
)

const (
	opFloydWarshall = "FloydWarshall"
	opAdjacencyDist = "DistancesFromAdjacency"
)

// DistancesFromAdjacency builds the initial n×n distance table for an
// unweighted graph given by adjacent(i, j):
//
//	diag = 0; edge → 1; otherwise +Inf.
//
// n == 0 yields an empty 0×0 table.
// Complexity: O(n²).
func DistancesFromAdjacency(n int, adjacent func(i, j int) bool) (*Dense, error) {
	d, err := NewDense(n, n)
	if err != nil {
		return nil, matrixErrorf(opAdjacencyDist, err)
	}

	inf := math.Inf(1)
	var i, j int
	for i = 0; i < n; i++ {
		base := i * n
		for j = 0; j < n; j++ {
			switch {
			case i == j:
				d.data[base+j] = 0
			case adjacent(i, j):
				d.data[base+j] = 1
			default:
				d.data[base+j] = inf
			}
		}
	}

	return d, nil
}

// floydWarshallInPlace runs APSP closure on a square *Dense in-place.
//
// Loop order is fixed (k → i → j). Rows that cannot reach k are skipped.
func floydWarshallInPlace(d *Dense) {
	n := d.r

	var (
		k, i, j      int
		baseK, baseI int
		ik, kj, cand float64
	)
	data := d.data

	for k = 0; k < n; k++ {
		baseK = k * n
		for i = 0; i < n; i++ {
			ik = data[i*n+k]
			if math.IsInf(ik, 1) {
				continue
			}
			baseI = i * n
			for j = 0; j < n; j++ {
				kj = data[baseK+j]
				if math.IsInf(kj, 1) {
					continue
				}
				cand = ik + kj
				if cand < data[baseI+j] { // strict improvement only
					data[baseI+j] = cand
				}
			}
		}
	}
}

// FloydWarshall computes all-pairs shortest paths in-place on m.
//
// Contract:
//   - m must be square (n×n) with a zero diagonal.
//   - +Inf denotes “no edge” off-diagonal.
//
// Errors:
//   - ErrNilMatrix, ErrNonSquare, ErrNonZeroDiagonal (wrapped with "FloydWarshall").
//
// Complexity: Time O(n³), extra space O(1).
func FloydWarshall(m Matrix) error {
	if err := ValidateZeroDiagonal(m); err != nil {
		return matrixErrorf(opFloydWarshall, err)
	}

	if d, ok := m.(*Dense); ok {
		floydWarshallInPlace(d)

		return nil
	}

	// Generic interface fallback.
	n := m.Rows()
	var (
		k, i, j       int
		dik, dkj, dij float64
		err           error
	)
	for k = 0; k < n; k++ {
		for i = 0; i < n; i++ {
			if dik, err = m.At(i, k); err != nil {
				return matrixErrorf(opFloydWarshall, err)
			}
			if math.IsInf(dik, 1) {
				continue
			}
			for j = 0; j < n; j++ {
				if dkj, err = m.At(k, j); err != nil {
					return matrixErrorf(opFloydWarshall, err)
				}
				if math.IsInf(dkj, 1) {
					continue
				}
				if dij, err = m.At(i, j); err != nil {
					return matrixErrorf(opFloydWarshall, err)
				}
				if dik+dkj < dij {
					if err = m.Set(i, j, dik+dkj); err != nil {
						return matrixErrorf(opFloydWarshall, fmt.Errorf("Set(%d,%d): %w", i, j, err))
					}
				}
			}
		}
	}

	return nil
}
