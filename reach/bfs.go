// SPDX-License-Identifier: MIT

package reach

import "github.com/katalvlaran/npgraph/core"

const (
	opPathBFS = "PathBFS"
	opHops    = "Hops"
)

// queueItem pairs a node with its BFS depth.
type queueItem struct {
	id    int
	depth int
}

// bfsWalker holds mutable BFS state for one source.
type bfsWalker struct {
	graph *core.Graph
	queue []queueItem
	depth []int // -1 until enqueued
}

func newBFSWalker(g *core.Graph, source int) *bfsWalker {
	n := g.Size()
	w := &bfsWalker{graph: g, queue: make([]queueItem, 0, n), depth: make([]int, n)}
	for i := range w.depth {
		w.depth[i] = -1
	}
	w.enqueue(source, 0)

	return w
}

func (w *bfsWalker) enqueue(id, d int) {
	w.depth[id] = d
	w.queue = append(w.queue, queueItem{id: id, depth: d})
}

func (w *bfsWalker) dequeue() queueItem {
	item := w.queue[0]
	w.queue = w.queue[1:]

	return item
}

// run expands the frontier until the queue drains or stop reports true
// for a dequeued node.
func (w *bfsWalker) run(stop func(id int) bool) bool {
	n := w.graph.Size()
	for len(w.queue) > 0 {
		item := w.dequeue()
		if stop != nil && stop(item.id) {
			return true
		}
		for next := 0; next < n; next++ {
			if w.depth[next] < 0 && w.graph.Adjacent(item.id, next) {
				w.enqueue(next, item.depth+1)
			}
		}
	}

	return false
}

// PathBFS reports whether v is reachable from u by breadth-first search.
//
// Errors:
//   - ErrGraphNil, ErrOutOfRange.
//
// Complexity: O(n²) on the adjacency matrix.
func PathBFS(g *core.Graph, u, v int) (bool, error) {
	if err := validate(opPathBFS, g, u, v); err != nil {
		return false, err
	}

	return newBFSWalker(g, u).run(func(id int) bool { return id == v }), nil
}

// Hops returns the unweighted distance from u to every node, with -1 for
// nodes u cannot reach.
//
// Errors:
//   - ErrGraphNil, ErrOutOfRange.
func Hops(g *core.Graph, u int) ([]int, error) {
	if err := validate(opHops, g, u, u); err != nil {
		return nil, err
	}

	w := newBFSWalker(g, u)
	w.run(nil)

	return w.depth, nil
}
