// SPDX-License-Identifier: MIT

// Package reach answers PATH(u, v), "is v reachable from u", on a
// core.Graph with three interchangeable algorithms:
//
//   - PathDFS:           recursive depth-first search with a visited set.
//     Time O(n²) on an adjacency matrix, extra space O(n).
//   - PathBFS:           queue-based breadth-first search; Hops exposes the
//     per-node hop counts from the same walk.
//   - PathFloydWarshall: all-pairs closure over a matrix.Dense distance
//     table (0 diagonal, 1 per edge, +Inf otherwise). Time O(n³), space O(n²).
//
// All must agree on every input; the package tests cross-check them and
// compare against gonum's topo.PathExistsIn.
//
// PATH(u, u) is always true. "No path" is a plain false, never an error.
//
// Errors:
//
//	ErrGraphNil          - g is nil.
//	ErrOutOfRange        - u or v is not a node of g.
//	ErrUnknownAlgorithm  - Path was asked for an algorithm it does not know.
package reach
