// SPDX-License-Identifier: MIT
//
// File: methods.go
// Role: mutation primitives (Init, AddNode, AddNodeAdjacent, SetEdge, Clear, Clone).
// Policy:
//   - Validate first, mutate second: a returned error means the graph is untouched.
//   - The diagonal is forced to 0 on every write path.

package core

import "fmt"

// Init replaces the graph contents with a copy of matrix.
// Non-zero entries become 1 and the diagonal is forced to 0.
//
// Errors:
//   - ErrNonSquare if any row length differs from len(matrix).
//
// Complexity: O(n²).
func (g *Graph) Init(matrix [][]int) error {
	n := len(matrix)
	for i, row := range matrix {
		if len(row) != n {
			return fmt.Errorf("Init: row %d has %d entries, want %d: %w", i, len(row), n, ErrNonSquare)
		}
	}

	edges := make([][]uint8, n)
	for i, row := range matrix {
		edges[i] = make([]uint8, n)
		for j, v := range row {
			if i != j && v != 0 {
				edges[i][j] = 1
			}
		}
	}
	g.edges = edges

	return nil
}

// AddNode appends one node whose adjacency to the existing nodes is given by
// row. row may have length n (existing nodes only) or n+1 (a full row; the
// trailing self entry is ignored and stored as 0).
//
// Row i of every existing node grows by row[i]; the caller keeps the matrix
// symmetric by passing the same relation it wants mirrored.
//
// Errors:
//   - ErrRowLength if len(row) is neither n nor n+1.
//
// Complexity: O(n) amortized.
func (g *Graph) AddNode(row []bool) error {
	n := len(g.edges)
	if len(row) != n && len(row) != n+1 {
		return fmt.Errorf("AddNode: len(row)=%d with n=%d: %w", len(row), n, ErrRowLength)
	}

	newRow := make([]uint8, n+1)
	var i int
	for i = 0; i < n; i++ {
		if row[i] {
			newRow[i] = 1
		}
		g.edges[i] = append(g.edges[i], newRow[i])
	}
	// newRow[n] stays 0: no self-loop.
	g.edges = append(g.edges, newRow)

	return nil
}

// AddNodeAdjacent is the sparse form of AddNode: adj lists the existing
// nodes the new node is adjacent to. Duplicates are harmless.
//
// Errors:
//   - ErrOutOfRange if any index is outside [0, n).
//
// Complexity: O(n + len(adj)).
func (g *Graph) AddNodeAdjacent(adj ...int) error {
	n := len(g.edges)
	row := make([]bool, n)
	for _, j := range adj {
		if j < 0 || j >= n {
			return fmt.Errorf("AddNodeAdjacent: index %d with n=%d: %w", j, n, ErrOutOfRange)
		}
		row[j] = true
	}

	return g.AddNode(row)
}

// SetEdge connects i and j symmetrically.
//
// Errors:
//   - ErrOutOfRange if either index is not a node.
//   - ErrSelfLoop if i == j.
//
// Complexity: O(1).
func (g *Graph) SetEdge(i, j int) error {
	if !g.HasNode(i) || !g.HasNode(j) {
		return fmt.Errorf("SetEdge(%d,%d) with n=%d: %w", i, j, len(g.edges), ErrOutOfRange)
	}
	if i == j {
		return fmt.Errorf("SetEdge(%d,%d): %w", i, j, ErrSelfLoop)
	}
	g.edges[i][j] = 1
	g.edges[j][i] = 1

	return nil
}

// Clear removes every node, leaving an empty graph.
func (g *Graph) Clear() {
	g.edges = g.edges[:0]
}

// Clone returns a deep copy that shares no storage with g.
// Complexity: O(n²).
func (g *Graph) Clone() *Graph {
	edges := make([][]uint8, len(g.edges))
	for i, row := range g.edges {
		edges[i] = append([]uint8(nil), row...)
	}

	return &Graph{edges: edges}
}
