// SPDX-License-Identifier: MIT

package core

import "errors"

// Sentinel errors for core graph operations.
var (
	// ErrNonSquare indicates that Init received a matrix whose rows do not all
	// have exactly len(matrix) entries.
	ErrNonSquare = errors.New("core: adjacency matrix is not square")

	// ErrRowLength indicates that an adjacency row passed to AddNode has a
	// length other than n or n+1.
	ErrRowLength = errors.New("core: adjacency row has wrong length")

	// ErrOutOfRange indicates a node index outside [0, Size()).
	ErrOutOfRange = errors.New("core: node index out of range")

	// ErrSelfLoop indicates an attempt to connect a node to itself.
	ErrSelfLoop = errors.New("core: self-loop not allowed")
)

// Graph is an undirected simple graph stored as a square adjacency matrix.
//
// The zero value is an empty, ready-to-use graph.
type Graph struct {
	// edges[i][j] is 1 iff i and j are adjacent; len(edges[i]) == len(edges).
	edges [][]uint8
}

// NewGraph returns an empty graph.
func NewGraph() *Graph {
	return &Graph{edges: make([][]uint8, 0)}
}
