package matrix_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/npgraph/matrix"
)

// wrapped hides the *Dense fast path so FloydWarshall takes the generic branch.
type wrapped struct{ *matrix.Dense }

func (w wrapped) Clone() matrix.Matrix { return wrapped{w.Dense.Clone().(*matrix.Dense)} }

// pathAdj is the adjacency of an undirected path 0—1—…—(n-1).
func pathAdj(i, j int) bool { return i-j == 1 || j-i == 1 }

func TestFloydWarshall_Errors(t *testing.T) {
	t.Parallel()

	assert.ErrorIs(t, matrix.FloydWarshall(nil), matrix.ErrNilMatrix)

	var nilDense *matrix.Dense
	assert.ErrorIs(t, matrix.FloydWarshall(nilDense), matrix.ErrNilMatrix)

	ns, err := matrix.NewDense(3, 4)
	require.NoError(t, err)
	assert.ErrorIs(t, matrix.FloydWarshall(ns), matrix.ErrNonSquare)

	diag, err := matrix.NewDense(2, 2)
	require.NoError(t, err)
	require.NoError(t, diag.Set(1, 1, 5))
	assert.ErrorIs(t, matrix.FloydWarshall(diag), matrix.ErrNonZeroDiagonal)
}

func TestDistancesFromAdjacency(t *testing.T) {
	t.Parallel()

	d, err := matrix.DistancesFromAdjacency(3, pathAdj)
	require.NoError(t, err)

	inf := math.Inf(1)
	want := [][]float64{
		{0, 1, inf},
		{1, 0, 1},
		{inf, 1, 0},
	}
	for i := range want {
		for j := range want[i] {
			v, err := d.At(i, j)
			require.NoError(t, err)
			assert.Equal(t, want[i][j], v, "(%d,%d)", i, j)
		}
	}

	empty, err := matrix.DistancesFromAdjacency(0, pathAdj)
	require.NoError(t, err)
	assert.Equal(t, 0, empty.Rows())
	require.NoError(t, matrix.FloydWarshall(empty))

	_, err = matrix.DistancesFromAdjacency(-1, pathAdj)
	assert.ErrorIs(t, err, matrix.ErrInvalidDimensions)
}

func TestFloydWarshall_PathLengths(t *testing.T) {
	t.Parallel()

	const n = 6
	d, err := matrix.DistancesFromAdjacency(n, pathAdj)
	require.NoError(t, err)
	require.NoError(t, matrix.FloydWarshall(d))

	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			v, err := d.At(i, j)
			require.NoError(t, err)
			assert.Equal(t, math.Abs(float64(i-j)), v, "(%d,%d)", i, j)
		}
	}
}

func TestFloydWarshall_DisconnectedStaysInf(t *testing.T) {
	t.Parallel()

	// two components {0,1} and {2,3}
	adj := func(i, j int) bool {
		return (i == 0 && j == 1) || (i == 1 && j == 0) ||
			(i == 2 && j == 3) || (i == 3 && j == 2)
	}
	d, err := matrix.DistancesFromAdjacency(4, adj)
	require.NoError(t, err)
	require.NoError(t, matrix.FloydWarshall(d))

	v, _ := d.At(0, 3)
	assert.True(t, math.IsInf(v, 1))
	v, _ = d.At(2, 3)
	assert.Equal(t, 1.0, v)
}

func TestFloydWarshall_GenericMatchesDense(t *testing.T) {
	t.Parallel()

	const n = 7
	adj := func(i, j int) bool { return (i*3+j*3)%5 == 1 && i != j }

	fast, err := matrix.DistancesFromAdjacency(n, adj)
	require.NoError(t, err)
	slow := wrapped{fast.Clone().(*matrix.Dense)}

	require.NoError(t, matrix.FloydWarshall(fast))
	require.NoError(t, matrix.FloydWarshall(slow))
	assert.Equal(t, fast.String(), slow.Dense.String())
}
