// SPDX-License-Identifier: MIT

package satclique

import (
	"github.com/crillab/gophersat/solver"
)

// Var returns the DIMACS index of a variable: 'a' → 1 … 'z' → 26.
func Var(v byte) int {
	return int(v-'a') + 1
}

// Clauses groups lits into k-literal clauses in DIMACS integer form
// (negative for negated literals). A trailing partial clause is kept.
func Clauses(lits []Literal, k int) [][]int {
	if k <= 0 {
		return nil
	}
	out := make([][]int, 0, (len(lits)+k-1)/k)
	for start := 0; start < len(lits); start += k {
		end := start + k
		if end > len(lits) {
			end = len(lits)
		}
		clause := make([]int, 0, end-start)
		for _, l := range lits[start:end] {
			x := Var(l.Var)
			if l.Negated {
				x = -x
			}
			clause = append(clause, x)
		}
		out = append(out, clause)
	}

	return out
}

// normalize drops tautological clauses (x and -x together) and duplicate
// literals, which the solver's watched-literal scheme does not expect.
func normalize(clauses [][]int) [][]int {
	out := make([][]int, 0, len(clauses))
	for _, c := range clauses {
		seen := make(map[int]bool, len(c))
		kept := make([]int, 0, len(c))
		taut := false
		for _, x := range c {
			if seen[-x] {
				taut = true
				break
			}
			if !seen[x] {
				seen[x] = true
				kept = append(kept, x)
			}
		}
		if !taut {
			out = append(out, kept)
		}
	}

	return out
}

// Satisfiable decides the CNF formed by grouping lits into k-literal
// clauses, using gophersat. An empty clause set is satisfiable.
func Satisfiable(lits []Literal, k int) bool {
	clauses := normalize(Clauses(lits, k))
	if len(clauses) == 0 {
		return true
	}

	s := solver.New(solver.ParseSlice(clauses))

	return s.Solve() == solver.Sat
}
