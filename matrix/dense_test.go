package matrix_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/npgraph/matrix"
)

func TestDense_AtSetBounds(t *testing.T) {
	m, err := matrix.NewDense(2, 3)
	require.NoError(t, err)
	assert.Equal(t, 2, m.Rows())
	assert.Equal(t, 3, m.Cols())

	require.NoError(t, m.Set(1, 2, 4.5))
	v, err := m.At(1, 2)
	require.NoError(t, err)
	assert.Equal(t, 4.5, v)

	_, err = m.At(2, 0)
	assert.ErrorIs(t, err, matrix.ErrOutOfRange)
	assert.ErrorIs(t, m.Set(0, -1, 1), matrix.ErrOutOfRange)

	_, err = matrix.NewDense(-1, 2)
	assert.ErrorIs(t, err, matrix.ErrInvalidDimensions)
}

func TestDense_CloneIsDeep(t *testing.T) {
	m, err := matrix.NewDense(2, 2)
	require.NoError(t, err)
	require.NoError(t, m.Fill([]float64{1, 2, 3, 4}))

	c := m.Clone()
	require.NoError(t, m.Set(0, 0, 9))
	v, _ := c.At(0, 0)
	assert.Equal(t, 1.0, v)

	assert.Equal(t, "[9, 2]\n[3, 4]\n", m.String())
	assert.ErrorIs(t, m.Fill([]float64{1}), matrix.ErrOutOfRange)
}
