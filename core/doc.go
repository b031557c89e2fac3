// SPDX-License-Identifier: MIT

// Package core provides the adjacency-matrix Graph used by every decision
// algorithm in npgraph.
//
// A Graph G = (V,E) is a simple undirected graph over dense node indices
// 0..n-1. Edges live in a square 0/1 matrix:
//
//	edges[i][j] == 1  ⇔  i and j are adjacent
//	edges[i][i] == 0  for every i (no self-loops)
//
// Lifecycle:
//
//   - NewGraph returns an empty graph (n = 0).
//   - AddNode / AddNodeAdjacent append one node, growing every existing row by
//     one entry and appending a full new row.
//   - Init replaces the whole matrix; Clear resets to empty.
//   - Nodes are never removed.
//
// Symmetry is the caller's responsibility when rows are supplied directly;
// SetEdge always writes both (i,j) and (j,i) and is what the builder and
// satclique packages use.
//
// Errors:
//
//	ErrNonSquare   - Init received a ragged or non-square matrix.
//	ErrRowLength   - AddNode row length is neither n nor n+1.
//	ErrOutOfRange  - a node index is outside [0, n).
//	ErrSelfLoop    - SetEdge(i, i).
//
// Every failing mutation leaves the graph exactly as it was.
//
// Concurrency: a Graph is owned by a single goroutine. There is no internal
// locking; share it read-only or not at all.
package core
