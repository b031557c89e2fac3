// SPDX-License-Identifier: MIT

package reach

import "github.com/katalvlaran/npgraph/core"

const opPathDFS = "PathDFS"

// dfsWalker encapsulates state during one PATH query.
type dfsWalker struct {
	graph   *core.Graph
	target  int
	visited []bool
}

// PathDFS reports whether v is reachable from u by depth-first search.
// Neighbors are explored in ascending index order; recursion depth is at
// most n.
//
// Errors:
//   - ErrGraphNil, ErrOutOfRange.
func PathDFS(g *core.Graph, u, v int) (bool, error) {
	if err := validate(opPathDFS, g, u, v); err != nil {
		return false, err
	}

	w := &dfsWalker{graph: g, target: v, visited: make([]bool, g.Size())}

	return w.traverse(u), nil
}

// traverse visits id and recurses into unvisited neighbors until the
// target is found.
func (w *dfsWalker) traverse(id int) bool {
	if id == w.target {
		return true
	}
	w.visited[id] = true

	n := w.graph.Size()
	for next := 0; next < n; next++ {
		if w.visited[next] || !w.graph.Adjacent(id, next) {
			continue
		}
		if w.traverse(next) {
			return true
		}
	}

	return false
}
