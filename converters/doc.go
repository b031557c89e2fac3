// SPDX-License-Identifier: MIT

// Package converters provides adapters between core.Graph and gonum/graph.
//
//   - ToGonum:   node i becomes simple.Node(i); each edge {i,j} one undirected edge.
//   - FromGonum: the inverse, for graphs whose node IDs are exactly 0..n-1.
//   - Graph6:    the compact graph6 string, used in benchmark result dumps.
//   - FromGraph6: decode a graph6 string back into a core.Graph.
//
// The gonum view lets tests use gonum's topo package as an independent
// oracle for reachability and clique existence.
package converters
