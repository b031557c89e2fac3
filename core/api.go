// SPDX-License-Identifier: MIT
//
// File: api.go
// Role: read-only queries over the adjacency matrix.
// Policy:
//   - No mutation here; every method is O(1) or a single pass over a row/matrix.
//   - Index-taking methods validate and return ErrOutOfRange instead of panicking.

package core

import (
	"fmt"
	"strconv"
	"strings"
)

// Size returns the current number of nodes n.
// Complexity: O(1).
func (g *Graph) Size() int {
	return len(g.edges)
}

// HasNode reports whether i is a valid node index.
// Complexity: O(1).
func (g *Graph) HasNode(i int) bool {
	return i >= 0 && i < len(g.edges)
}

// Adjacent reports whether i and j share an edge. Out-of-range indices are
// never adjacent to anything.
// Complexity: O(1).
func (g *Graph) Adjacent(i, j int) bool {
	if !g.HasNode(i) || !g.HasNode(j) {
		return false
	}

	return g.edges[i][j] > 0
}

// Degree returns the number of nodes adjacent to i, i.e. the count of
// non-zero entries in row i.
//
// Errors:
//   - ErrOutOfRange if i is not a node.
//
// Complexity: O(n).
func (g *Graph) Degree(i int) (int, error) {
	if !g.HasNode(i) {
		return 0, fmt.Errorf("Degree(%d) with n=%d: %w", i, len(g.edges), ErrOutOfRange)
	}

	return g.degree(i), nil
}

// degree is the unchecked row count used by hot loops that already
// validated i.
func (g *Graph) degree(i int) int {
	d := 0
	for _, e := range g.edges[i] {
		if e > 0 {
			d++
		}
	}

	return d
}

// Neighbors returns the indices adjacent to i in ascending order.
// An out-of-range index yields nil.
// Complexity: O(n).
func (g *Graph) Neighbors(i int) []int {
	if !g.HasNode(i) {
		return nil
	}
	out := make([]int, 0, len(g.edges))
	for j, e := range g.edges[i] {
		if e > 0 {
			out = append(out, j)
		}
	}

	return out
}

// EdgeCount returns the number of undirected edges, counting each
// unordered pair {i,j} with i<j once.
// Complexity: O(n²).
func (g *Graph) EdgeCount() int {
	m := 0
	for i := range g.edges {
		for j := i + 1; j < len(g.edges); j++ {
			if g.edges[i][j] > 0 {
				m++
			}
		}
	}

	return m
}

// Matrix returns a deep copy of the adjacency matrix as 0/1 ints.
// Mutating the result never affects the graph.
// Complexity: O(n²).
func (g *Graph) Matrix() [][]int {
	out := make([][]int, len(g.edges))
	for i, row := range g.edges {
		out[i] = make([]int, len(row))
		for j, e := range row {
			out[i][j] = int(e)
		}
	}

	return out
}

// String renders the matrix as a nested bracket listing, rows in index
// order, e.g. "[[0, 1], [1, 0]]". The format is for diagnostics only.
func (g *Graph) String() string {
	var sb strings.Builder
	sb.WriteByte('[')
	for i, row := range g.edges {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteByte('[')
		for j, e := range row {
			if j > 0 {
				sb.WriteString(", ")
			}
			sb.WriteString(strconv.Itoa(int(e)))
		}
		sb.WriteByte(']')
	}
	sb.WriteByte(']')

	return sb.String()
}
