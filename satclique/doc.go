// SPDX-License-Identifier: MIT

// Package satclique reduces a restricted boolean formula to a K-CLIQUE
// instance.
//
// Input grammar (only the literals carry meaning):
//
//	literal   = [ "-" ] letter        letter = "a" … "z"
//	separator = "(" | ")" | "*" | "+" | whitespace
//
// Parentheses, "*" (AND) and "+" (OR) are skipped, not parsed for structure.
// The literal sequence is read left to right and must have length k² for
// some k ≥ 1; clause i is the literals at indices [i·k, i·k+k).
//
// Reduction: one node per literal occurrence; nodes i and j are adjacent
// iff they sit in different clauses and are not each other's negation.
// The formula is satisfiable iff the graph has a k-clique, which then picks
// exactly one literal per clause.
//
// Satisfiable decides the formula directly with the gophersat CDCL solver,
// which lets callers verify a clique answer against an independent oracle.
package satclique
