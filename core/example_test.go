package core_test

import (
	"fmt"

	"github.com/katalvlaran/npgraph/core"
)

// ExampleGraph_AddNode grows a path 0—1—2 one node at a time.
func ExampleGraph_AddNode() {
	g := core.NewGraph()
	_ = g.AddNode(nil)
	_ = g.AddNode([]bool{true})
	_ = g.AddNodeAdjacent(1)

	fmt.Println(g.Size(), g.EdgeCount())
	fmt.Println(g)
	// Output:
	// 3 2
	// [[0, 1, 0], [1, 0, 1], [0, 1, 0]]
}
