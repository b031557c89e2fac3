package builder_test

import (
	"fmt"

	"github.com/katalvlaran/npgraph/builder"
)

// ExampleRandom shows that p = 1 always yields the complete graph.
func ExampleRandom() {
	g, err := builder.Random(4, 1.0, builder.WithSeed(1))
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Println(g.Size(), g.EdgeCount())
	// Output: 4 6
}

// ExampleCycle builds C_4.
func ExampleCycle() {
	g, _ := builder.BuildGraph(nil, builder.Cycle(4))
	fmt.Println(g)
	// Output: [[0, 1, 0, 1], [1, 0, 1, 0], [0, 1, 0, 1], [1, 0, 1, 0]]
}
