// SPDX-License-Identifier: MIT

package satclique

import (
	"fmt"

	"github.com/katalvlaran/npgraph/core"
)

const (
	opReduce         = "Reduce"
	opReduceLiterals = "ReduceLiterals"
)

// clauseSize returns k with k*k == count, or ErrNotSquare.
func clauseSize(count int) (int, error) {
	if count == 0 {
		return 0, fmt.Errorf("no literals: %w", ErrNotSquare)
	}
	k := 0
	for (k+1)*(k+1) <= count {
		k++
	}
	if k*k != count {
		return 0, fmt.Errorf("%d literals: %w", count, ErrNotSquare)
	}

	return k, nil
}

// Reduce tokenizes formula and builds its K-CLIQUE instance.
// It returns the graph (one node per literal, in input order) and k.
//
// Errors:
//   - Tokenize errors (ErrUnexpectedRune, ErrDanglingNegation).
//   - ErrNotSquare if the literal count is not k² with k ≥ 1.
//
// No graph is built on failure.
func Reduce(formula string) (*core.Graph, int, error) {
	lits, err := Tokenize(formula)
	if err != nil {
		return nil, 0, fmt.Errorf("%s: %w", opReduce, err)
	}

	g, k, err := ReduceLiterals(lits)
	if err != nil {
		return nil, 0, fmt.Errorf("%s: %w", opReduce, err)
	}

	return g, k, nil
}

// ReduceLiterals builds the K-CLIQUE instance for an already tokenized
// literal sequence.
//
// Complexity: O(k⁴) = O(len(lits)²).
func ReduceLiterals(lits []Literal) (*core.Graph, int, error) {
	k, err := clauseSize(len(lits))
	if err != nil {
		return nil, 0, fmt.Errorf("%s: %w", opReduceLiterals, err)
	}

	m := len(lits)
	g := core.NewGraph()
	for i := 0; i < m; i++ {
		// node i: adjacent to earlier literals of other clauses that it
		// does not contradict; AddNode mirrors the row.
		row := make([]bool, i)
		for j := 0; j < i; j++ {
			row[j] = j/k != i/k && !lits[i].Complement(lits[j])
		}
		if err = g.AddNode(row); err != nil {
			return nil, 0, fmt.Errorf("%s: literal %d: %w", opReduceLiterals, i, err)
		}
	}

	return g, k, nil
}
