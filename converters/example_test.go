package converters_test

import (
	"fmt"

	"github.com/katalvlaran/npgraph/builder"
	"github.com/katalvlaran/npgraph/converters"
)

// ExampleGraph6 encodes the path 0—1—2 and decodes it back.
func ExampleGraph6() {
	g, _ := builder.BuildGraph(nil, builder.Path(3))

	enc := converters.Graph6(g)
	fmt.Println(enc)

	back, _ := converters.FromGraph6(enc)
	fmt.Println(back)
	// Output:
	// Bg
	// [[0, 1, 0], [1, 0, 1], [0, 1, 0]]
}
