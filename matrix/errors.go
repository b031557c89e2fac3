// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set.
// All functions return these sentinels (optionally wrapped with %w) and
// tests check them via errors.Is. Nothing here panics on caller input.

package matrix

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidDimensions indicates that requested matrix dimensions are negative.
	ErrInvalidDimensions = errors.New("matrix: dimensions must be >= 0")

	// ErrOutOfRange indicates that a row or column index is outside valid bounds.
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrNonSquare signals that a square matrix was required but the input wasn't.
	ErrNonSquare = errors.New("matrix: matrix is not square")

	// ErrNilMatrix indicates that a nil Matrix was passed in.
	ErrNilMatrix = errors.New("matrix: nil matrix")

	// ErrNonZeroDiagonal signals that a distance matrix had a non-zero diagonal
	// entry where 0 was required.
	ErrNonZeroDiagonal = errors.New("matrix: diagonal not zero")
)

// matrixErrorf prefixes err with an operation tag, keeping it matchable via errors.Is.
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}
