package reach_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/graph/simple"
	"gonum.org/v1/gonum/graph/topo"

	"github.com/katalvlaran/npgraph/builder"
	"github.com/katalvlaran/npgraph/converters"
	"github.com/katalvlaran/npgraph/core"
	"github.com/katalvlaran/npgraph/reach"
)

// twoComponents is K3 on {0,1,2} plus the path 3—4—5.
func twoComponents(t *testing.T) *core.Graph {
	t.Helper()
	g, err := builder.BuildGraph(nil, builder.Complete(3), builder.Path(3))
	require.NoError(t, err)
	return g
}

func TestPath_KnownAnswers(t *testing.T) {
	t.Parallel()

	g := twoComponents(t)
	tests := []struct {
		u, v int
		want bool
	}{
		{0, 0, true},
		{0, 2, true},
		{3, 5, true},
		{5, 3, true},
		{0, 3, false},
		{2, 5, false},
	}
	for _, algo := range reach.Algorithms() {
		for _, tc := range tests {
			got, err := reach.Path(g, tc.u, tc.v, algo)
			require.NoError(t, err)
			assert.Equal(t, tc.want, got, "%s PATH(%d,%d)", algo, tc.u, tc.v)
		}
	}
}

func TestPath_SelfIsAlwaysReachable(t *testing.T) {
	t.Parallel()

	g, err := builder.BuildGraph(nil, builder.Empty(5))
	require.NoError(t, err)
	for u := 0; u < g.Size(); u++ {
		ok, err := reach.PathDFS(g, u, u)
		require.NoError(t, err)
		assert.True(t, ok)
		ok, err = reach.PathBFS(g, u, u)
		require.NoError(t, err)
		assert.True(t, ok)
		ok, err = reach.PathFloydWarshall(g, u, u)
		require.NoError(t, err)
		assert.True(t, ok)
	}
}

func TestHops(t *testing.T) {
	t.Parallel()

	g := twoComponents(t)
	hops, err := reach.Hops(g, 3)
	require.NoError(t, err)
	assert.Equal(t, []int{-1, -1, -1, 0, 1, 2}, hops)

	hops, err = reach.Hops(g, 0)
	require.NoError(t, err)
	assert.Equal(t, []int{0, 1, 1, -1, -1, -1}, hops)

	_, err = reach.Hops(g, 6)
	assert.ErrorIs(t, err, reach.ErrOutOfRange)
	_, err = reach.Hops(nil, 0)
	assert.ErrorIs(t, err, reach.ErrGraphNil)
}

func TestPath_Errors(t *testing.T) {
	t.Parallel()

	g := twoComponents(t)
	for _, algo := range reach.Algorithms() {
		_, err := reach.Path(nil, 0, 0, algo)
		assert.ErrorIs(t, err, reach.ErrGraphNil)
		_, err = reach.Path(g, 0, 6, algo)
		assert.ErrorIs(t, err, reach.ErrOutOfRange)
		_, err = reach.Path(g, -1, 0, algo)
		assert.ErrorIs(t, err, reach.ErrOutOfRange)
	}

	_, err := reach.Path(g, 0, 1, reach.Algorithm("astar"))
	assert.ErrorIs(t, err, reach.ErrUnknownAlgorithm)

	_, err = reach.PathDFS(core.NewGraph(), 0, 0)
	assert.ErrorIs(t, err, reach.ErrOutOfRange)
}

// TestPath_CrossCheck asserts DFS == BFS == Floyd–Warshall == gonum on random graphs
// spanning sparse to dense regimes.
func TestPath_CrossCheck(t *testing.T) {
	t.Parallel()

	for seed := int64(1); seed <= 12; seed++ {
		for _, p := range []float64{0.05, 0.1, 0.3} {
			g, err := builder.Random(18, p, builder.WithSeed(seed))
			require.NoError(t, err)
			gg := converters.ToGonum(g)

			for u := 0; u < g.Size(); u++ {
				for v := 0; v < g.Size(); v++ {
					dfs, err := reach.PathDFS(g, u, v)
					require.NoError(t, err)
					bfs, err := reach.PathBFS(g, u, v)
					require.NoError(t, err)
					fw, err := reach.PathFloydWarshall(g, u, v)
					require.NoError(t, err)
					oracle := topo.PathExistsIn(gg, simple.Node(int64(u)), simple.Node(int64(v)))

					require.Equal(t, dfs, fw, "seed=%d p=%g (%d,%d)", seed, p, u, v)
					require.Equal(t, dfs, bfs, "seed=%d p=%g (%d,%d)", seed, p, u, v)
					require.Equal(t, oracle, dfs, "seed=%d p=%g (%d,%d)", seed, p, u, v)
				}
			}
		}
	}
}

func TestDistances_PathGraph(t *testing.T) {
	t.Parallel()

	g, err := builder.BuildGraph(nil, builder.Path(5))
	require.NoError(t, err)

	d, err := reach.Distances(g)
	require.NoError(t, err)
	v, err := d.At(0, 4)
	require.NoError(t, err)
	assert.Equal(t, 4.0, v)

	_, err = reach.Distances(nil)
	assert.ErrorIs(t, err, reach.ErrGraphNil)
}

func TestParseAlgorithm(t *testing.T) {
	t.Parallel()

	a, err := reach.ParseAlgorithm("floyd-warshall")
	require.NoError(t, err)
	assert.Equal(t, reach.AlgoFloydWarshall, a)

	a, err = reach.ParseAlgorithm("dfs")
	require.NoError(t, err)
	assert.Equal(t, reach.AlgoDFS, a)

	a, err = reach.ParseAlgorithm("bfs")
	require.NoError(t, err)
	assert.Equal(t, reach.AlgoBFS, a)

	_, err = reach.ParseAlgorithm("astar")
	assert.ErrorIs(t, err, reach.ErrUnknownAlgorithm)
}
