// SPDX-License-Identifier: MIT

// Package matrix provides the dense float64 matrix and the in-place
// Floyd–Warshall closure used by the reach package.
//
// Dense is a row-major implementation of the Matrix interface, storing
// elements in a flat slice for cache friendliness. Distances use +Inf
// (math.Inf(1)) as the "no path" sentinel: no finite sum of path lengths can
// ever reach it, so relaxation never overflows into a false finite reading.
package matrix

import (
	"fmt"
	"strconv"
	"strings"
)

// Matrix is a two-dimensional mutable array of float64 values with
// bounds-checked accessors.
type Matrix interface {
	Rows() int
	Cols() int
	At(i, j int) (float64, error)
	Set(i, j int, v float64) error
	Clone() Matrix
}

// denseErrorf tags err with the Dense method and cell it came from.
func denseErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("Dense.%s(%d,%d): %w", method, row, col, err)
}

// Dense stores an r×c table of float64 in one flat row-major slice.
type Dense struct {
	r, c int
	data []float64 // len(data) == r*c
}

// NewDense returns a zeroed rows×cols matrix. 0×0 is allowed: it is the
// distance table of the empty graph.
func NewDense(rows, cols int) (*Dense, error) {
	if rows < 0 || cols < 0 {
		return nil, fmt.Errorf("NewDense(%d,%d): %w", rows, cols, ErrInvalidDimensions)
	}

	return &Dense{r: rows, c: cols, data: make([]float64, rows*cols)}, nil
}

// Rows is the row count.
func (m *Dense) Rows() int { return m.r }

// Cols is the column count.
func (m *Dense) Cols() int { return m.c }

// indexOf computes the flat index for (row, col) or returns ErrOutOfRange.
func (m *Dense) indexOf(method string, row, col int) (int, error) {
	if row < 0 || row >= m.r || col < 0 || col >= m.c {
		return 0, denseErrorf(method, row, col, ErrOutOfRange)
	}

	return row*m.c + col, nil
}

// At reads cell (row, col); out-of-bounds access returns ErrOutOfRange.
func (m *Dense) At(row, col int) (float64, error) {
	idx, err := m.indexOf("At", row, col)
	if err != nil {
		return 0, err
	}

	return m.data[idx], nil
}

// Set writes v into cell (row, col).
func (m *Dense) Set(row, col int, v float64) error {
	idx, err := m.indexOf("Set", row, col)
	if err != nil {
		return err
	}
	m.data[idx] = v

	return nil
}

// Fill overwrites every element from a row-major slice of length r*c.
func (m *Dense) Fill(values []float64) error {
	if len(values) != len(m.data) {
		return fmt.Errorf("Dense.Fill: len=%d, want %d: %w", len(values), len(m.data), ErrOutOfRange)
	}
	copy(m.data, values)

	return nil
}

// Clone copies m, backing slice included.
func (m *Dense) Clone() Matrix {
	return &Dense{r: m.r, c: m.c, data: append([]float64(nil), m.data...)}
}

// String renders one bracketed row per line, for debugging.
func (m *Dense) String() string {
	var sb strings.Builder
	var i, j int
	for i = 0; i < m.r; i++ {
		sb.WriteByte('[')
		for j = 0; j < m.c; j++ {
			if j > 0 {
				sb.WriteString(", ")
			}
			sb.WriteString(strconv.FormatFloat(m.data[i*m.c+j], 'g', -1, 64))
		}
		sb.WriteString("]\n")
	}

	return sb.String()
}
