// SPDX-License-Identifier: MIT

// Package clique decides K-CLIQUE(k): does a core.Graph contain k pairwise
// adjacent nodes?
//
// Two searches are provided:
//
//   - HasKClique / Find: the incremental greedy extension. Nodes are scanned
//     in index order; a node joins the candidate set when its degree is at
//     least k-1 and it is adjacent to every current member. The first
//     eligible node is committed to and never undone, so the search is fast
//     but incomplete: a "true" answer always comes with a genuine clique,
//     while a "false" answer may miss a clique that needed a different early
//     choice.
//   - HasKCliqueExhaustive: enumerates every size-k subset in lexicographic
//     order and tests IsClique. Exponential, complete, used as the oracle.
//
// Conventions: k == 0 is trivially true; k == 1 is true iff the graph has a
// node; k > n is false.
//
// Errors:
//
//	ErrGraphNil  - g is nil.
//	ErrInvalidK  - k < 0.
package clique
