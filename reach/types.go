// SPDX-License-Identifier: MIT

package reach

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/npgraph/core"
)

var (
	// ErrGraphNil is returned when a nil *core.Graph is passed in.
	ErrGraphNil = errors.New("reach: graph is nil")

	// ErrOutOfRange indicates that u or v is outside [0, g.Size()).
	ErrOutOfRange = errors.New("reach: node index out of range")

	// ErrUnknownAlgorithm indicates an Algorithm value Path cannot dispatch.
	ErrUnknownAlgorithm = errors.New("reach: unknown algorithm")
)

// Algorithm selects a PATH implementation.
type Algorithm string

const (
	// AlgoDFS selects PathDFS.
	AlgoDFS Algorithm = "dfs"
	// AlgoBFS selects PathBFS.
	AlgoBFS Algorithm = "bfs"
	// AlgoFloydWarshall selects PathFloydWarshall.
	AlgoFloydWarshall Algorithm = "fw"
)

// Algorithms lists every supported Algorithm in a stable order.
func Algorithms() []Algorithm {
	return []Algorithm{AlgoDFS, AlgoBFS, AlgoFloydWarshall}
}

// ParseAlgorithm maps a name ("dfs", "bfs", "fw", "floyd-warshall") to an Algorithm.
func ParseAlgorithm(name string) (Algorithm, error) {
	switch name {
	case string(AlgoDFS):
		return AlgoDFS, nil
	case string(AlgoBFS):
		return AlgoBFS, nil
	case string(AlgoFloydWarshall), "floyd-warshall":
		return AlgoFloydWarshall, nil
	default:
		return "", fmt.Errorf("ParseAlgorithm(%q): %w", name, ErrUnknownAlgorithm)
	}
}

// Path dispatches to the selected algorithm.
func Path(g *core.Graph, u, v int, algo Algorithm) (bool, error) {
	switch algo {
	case AlgoDFS:
		return PathDFS(g, u, v)
	case AlgoBFS:
		return PathBFS(g, u, v)
	case AlgoFloydWarshall:
		return PathFloydWarshall(g, u, v)
	default:
		return false, fmt.Errorf("Path(%q): %w", algo, ErrUnknownAlgorithm)
	}
}

// validate checks g and both endpoints, tagging failures with op.
func validate(op string, g *core.Graph, u, v int) error {
	if g == nil {
		return fmt.Errorf("%s: %w", op, ErrGraphNil)
	}
	if !g.HasNode(u) || !g.HasNode(v) {
		return fmt.Errorf("%s(%d,%d) with n=%d: %w", op, u, v, g.Size(), ErrOutOfRange)
	}

	return nil
}
