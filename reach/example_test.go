package reach_test

import (
	"fmt"

	"github.com/katalvlaran/npgraph/builder"
	"github.com/katalvlaran/npgraph/reach"
)

// ExamplePath answers PATH on two components with every algorithm.
//
//	0───1      3───4───5
//	 ╲ ╱
//	  2
func ExamplePath() {
	g, err := builder.BuildGraph(nil, builder.Complete(3), builder.Path(3))
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	for _, algo := range reach.Algorithms() {
		near, _ := reach.Path(g, 0, 2, algo)
		far, _ := reach.Path(g, 0, 5, algo)
		fmt.Println(algo, near, far)
	}
	// Output:
	// dfs true false
	// bfs true false
	// fw true false
}

// ExampleHops prints hop counts from the end of a path; -1 marks the
// unreachable triangle.
func ExampleHops() {
	g, _ := builder.BuildGraph(nil, builder.Complete(3), builder.Path(3))

	hops, _ := reach.Hops(g, 3)
	fmt.Println(hops)
	// Output: [-1 -1 -1 0 1 2]
}
