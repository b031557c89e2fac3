// SPDX-License-Identifier: MIT

package converters

import (
	"errors"
	"fmt"

	"gonum.org/v1/gonum/graph"
	"gonum.org/v1/gonum/graph/encoding/graph6"
	"gonum.org/v1/gonum/graph/simple"

	"github.com/katalvlaran/npgraph/core"
)

var (
	// ErrGraphNil is returned when a nil graph is passed in.
	ErrGraphNil = errors.New("converters: graph is nil")

	// ErrNodeIDs indicates a gonum graph whose node IDs are not exactly 0..n-1.
	ErrNodeIDs = errors.New("converters: node IDs must be 0..n-1")

	// ErrInvalidGraph6 indicates a string that is not a graph6 encoding.
	ErrInvalidGraph6 = errors.New("converters: invalid graph6 string")
)

// ToGonum returns an undirected gonum view of g. Node i maps to
// simple.Node(i). A nil g yields an empty graph.
// Complexity: O(n²).
func ToGonum(g *core.Graph) *simple.UndirectedGraph {
	out := simple.NewUndirectedGraph()
	if g == nil {
		return out
	}

	n := g.Size()
	for i := 0; i < n; i++ {
		out.AddNode(simple.Node(int64(i)))
	}
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			if g.Adjacent(i, j) {
				out.SetEdge(out.NewEdge(simple.Node(int64(i)), simple.Node(int64(j))))
			}
		}
	}

	return out
}

// FromGonum copies an undirected gonum graph into a core.Graph.
//
// Errors:
//   - ErrGraphNil if src is nil.
//   - ErrNodeIDs if node IDs are not exactly 0..n-1.
func FromGonum(src graph.Undirected) (*core.Graph, error) {
	if src == nil {
		return nil, fmt.Errorf("FromGonum: %w", ErrGraphNil)
	}

	nodes := graph.NodesOf(src.Nodes())
	n := len(nodes)
	for _, nd := range nodes {
		if id := nd.ID(); id < 0 || id >= int64(n) {
			return nil, fmt.Errorf("FromGonum: id %d with n=%d: %w", id, n, ErrNodeIDs)
		}
	}

	m := make([][]int, n)
	for i := range m {
		m[i] = make([]int, n)
	}
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			if src.HasEdgeBetween(int64(i), int64(j)) {
				m[i][j], m[j][i] = 1, 1
			}
		}
	}

	g := core.NewGraph()
	if err := g.Init(m); err != nil {
		return nil, fmt.Errorf("FromGonum: %w", err)
	}

	return g, nil
}

// Graph6 returns the graph6 encoding of g.
func Graph6(g *core.Graph) string {
	return string(graph6.Encode(ToGonum(g)))
}

// FromGraph6 decodes a graph6 string into a core.Graph.
//
// Errors:
//   - ErrInvalidGraph6 if the string is not a valid graph6 encoding.
func FromGraph6(s string) (*core.Graph, error) {
	enc := graph6.Graph(s)
	if !graph6.IsValid(enc) {
		return nil, fmt.Errorf("FromGraph6(%q): %w", s, ErrInvalidGraph6)
	}

	return FromGonum(enc)
}
