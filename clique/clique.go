// SPDX-License-Identifier: MIT

package clique

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/npgraph/core"
)

var (
	// ErrGraphNil is returned when a nil *core.Graph is passed in.
	ErrGraphNil = errors.New("clique: graph is nil")

	// ErrInvalidK indicates a negative clique size.
	ErrInvalidK = errors.New("clique: k must be >= 0")
)

const (
	opHasKClique = "HasKClique"
	opFind       = "Find"
	opExhaustive = "HasKCliqueExhaustive"
)

func validate(op string, g *core.Graph, k int) error {
	if g == nil {
		return fmt.Errorf("%s: %w", op, ErrGraphNil)
	}
	if k < 0 {
		return fmt.Errorf("%s: k=%d: %w", op, k, ErrInvalidK)
	}

	return nil
}

// IsConnected reports whether i is adjacent to every member of set.
// Occurrences of i itself in set are skipped.
// Complexity: O(len(set)).
func IsConnected(g *core.Graph, i int, set []int) bool {
	for _, j := range set {
		if j == i {
			continue
		}
		if !g.Adjacent(i, j) {
			return false
		}
	}

	return true
}

// IsClique reports whether every pair of distinct members of nodes is
// adjacent. Empty and single-node lists are cliques.
// Complexity: O(len(nodes)²).
func IsClique(g *core.Graph, nodes []int) bool {
	for a := 0; a < len(nodes); a++ {
		if !g.HasNode(nodes[a]) {
			return false
		}
		for b := a + 1; b < len(nodes); b++ {
			if nodes[a] == nodes[b] || !g.Adjacent(nodes[a], nodes[b]) {
				return false
			}
		}
	}

	return true
}

// greedy holds one greedy search; degrees are computed once up front.
type greedy struct {
	g       *core.Graph
	k       int
	degrees []int
	list    []int
}

// extend scans nodes from start and commits to the first eligible one.
func (s *greedy) extend(start int) bool {
	if len(s.list) == s.k {
		return true
	}
	n := s.g.Size()
	for i := start; i < n; i++ {
		if s.degrees[i] < s.k-1 || !IsConnected(s.g, i, s.list) {
			continue
		}
		s.list = append(s.list, i)

		return s.extend(i + 1)
	}

	return false
}

// Find runs the greedy search and returns the clique it built.
// ok is false when the search did not reach k nodes; the returned slice is
// then nil.
//
// Errors:
//   - ErrGraphNil, ErrInvalidK.
//
// Complexity: O(n·k) adjacency checks plus O(n²) for degrees.
func Find(g *core.Graph, k int) (nodes []int, ok bool, err error) {
	if err = validate(opFind, g, k); err != nil {
		return nil, false, err
	}
	if k == 0 {
		return []int{}, true, nil
	}
	n := g.Size()
	if k > n {
		return nil, false, nil
	}

	s := &greedy{g: g, k: k, degrees: make([]int, n), list: make([]int, 0, k)}
	for i := 0; i < n; i++ {
		// i is in range, Degree cannot fail.
		s.degrees[i], _ = g.Degree(i)
	}
	if !s.extend(0) {
		return nil, false, nil
	}

	return s.list, true, nil
}

// HasKClique reports whether the greedy search finds a k-clique.
// See the package documentation for its incompleteness.
//
// Errors:
//   - ErrGraphNil, ErrInvalidK.
func HasKClique(g *core.Graph, k int) (bool, error) {
	_, ok, err := Find(g, k)
	if err != nil {
		return false, fmt.Errorf("%s: %w", opHasKClique, err)
	}

	return ok, nil
}

// HasKCliqueExhaustive reports whether any size-k subset of nodes is a
// clique, enumerating subsets in lexicographic order.
//
// Errors:
//   - ErrGraphNil, ErrInvalidK.
//
// Complexity: O(C(n,k)·k²).
func HasKCliqueExhaustive(g *core.Graph, k int) (bool, error) {
	if err := validate(opExhaustive, g, k); err != nil {
		return false, err
	}
	n := g.Size()
	if k == 0 {
		return true, nil
	}
	if k > n {
		return false, nil
	}

	idx := make([]int, k)
	for i := range idx {
		idx[i] = i
	}
	for {
		if IsClique(g, idx) {
			return true, nil
		}
		// advance to the next combination
		i := k - 1
		for i >= 0 && idx[i] == n-k+i {
			i--
		}
		if i < 0 {
			return false, nil
		}
		idx[i]++
		for j := i + 1; j < k; j++ {
			idx[j] = idx[j-1] + 1
		}
	}
}
