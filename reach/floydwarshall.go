// SPDX-License-Identifier: MIT

package reach

import (
	"fmt"
	"math"

	"github.com/katalvlaran/npgraph/core"
	"github.com/katalvlaran/npgraph/matrix"
)

const (
	opPathFW    = "PathFloydWarshall"
	opDistances = "Distances"
)

// Distances returns the all-pairs shortest-path table of g in hops:
// 0 on the diagonal, +Inf between disconnected nodes.
//
// Errors:
//   - ErrGraphNil.
//
// Complexity: O(n³) time, O(n²) space.
func Distances(g *core.Graph) (*matrix.Dense, error) {
	if g == nil {
		return nil, fmt.Errorf("%s: %w", opDistances, ErrGraphNil)
	}

	d, err := matrix.DistancesFromAdjacency(g.Size(), g.Adjacent)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", opDistances, err)
	}
	if err = matrix.FloydWarshall(d); err != nil {
		return nil, fmt.Errorf("%s: %w", opDistances, err)
	}

	return d, nil
}

// PathFloydWarshall reports whether v is reachable from u by computing the
// full Floyd–Warshall closure and testing distance[u][v] for finiteness.
//
// Errors:
//   - ErrGraphNil, ErrOutOfRange.
func PathFloydWarshall(g *core.Graph, u, v int) (bool, error) {
	if err := validate(opPathFW, g, u, v); err != nil {
		return false, err
	}

	d, err := Distances(g)
	if err != nil {
		return false, fmt.Errorf("%s: %w", opPathFW, err)
	}
	dist, err := d.At(u, v)
	if err != nil {
		return false, fmt.Errorf("%s: %w", opPathFW, err)
	}

	return !math.IsInf(dist, 1), nil
}
