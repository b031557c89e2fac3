// SPDX-License-Identifier: MIT

package bench

import (
	"gonum.org/v1/gonum/graph/topo"

	"github.com/katalvlaran/npgraph/clique"
	"github.com/katalvlaran/npgraph/converters"
	"github.com/katalvlaran/npgraph/core"
	"github.com/katalvlaran/npgraph/internal/config"
	"github.com/katalvlaran/npgraph/reach"
)

// pathOracle answers PATH with the algorithm not under test.
func pathOracle(g *core.Graph, u, v int, tested reach.Algorithm) (bool, error) {
	other := reach.AlgoFloydWarshall
	if tested == reach.AlgoFloydWarshall {
		other = reach.AlgoDFS
	}

	return reach.Path(g, u, v, other)
}

// cliqueOracle checks the greedy search against the exhaustive one, and
// the exhaustive one against gonum's maximal clique enumeration.
func cliqueOracle(g *core.Graph, k int, tested string) (bool, error) {
	if tested != config.AlgoExhaustive {
		return clique.HasKCliqueExhaustive(g, k)
	}
	if k <= 1 {
		return k <= g.Size(), nil
	}
	for _, c := range topo.BronKerbosch(converters.ToGonum(g)) {
		if len(c) >= k {
			return true, nil
		}
	}

	return false, nil
}
