package reach_test

import (
	"testing"

	"github.com/katalvlaran/npgraph/builder"
	"github.com/katalvlaran/npgraph/reach"
)

// benchmarkPath times PATH(0, n-1) on a sparse G(n, p) fixed by seed.
func benchmarkPath(b *testing.B, algo reach.Algorithm, n int) {
	g, err := builder.Random(n, 2.0/float64(n), builder.WithSeed(7))
	if err != nil {
		b.Fatal(err)
	}

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = reach.Path(g, 0, n-1, algo)
	}
}

func BenchmarkPathDFS_200(b *testing.B)           { benchmarkPath(b, reach.AlgoDFS, 200) }
func BenchmarkPathBFS_200(b *testing.B)           { benchmarkPath(b, reach.AlgoBFS, 200) }
func BenchmarkPathFloydWarshall_200(b *testing.B) { benchmarkPath(b, reach.AlgoFloydWarshall, 200) }

// BenchmarkPath_Chain measures the worst case for DFS recursion depth.
func BenchmarkPath_Chain(b *testing.B) {
	const n = 2000
	g, err := builder.BuildGraph(nil, builder.Path(n))
	if err != nil {
		b.Fatal(err)
	}

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = reach.PathDFS(g, 0, n-1)
	}
}
