// Package matrix_test contains unit tests for the Dense implementation
// of the Matrix interface in the matrix package.
package matrix_test

import (
	"math/big"
	"testing"

	"github.com/isaiahtx/simplicial-homology/matrix"
	"github.com/stretchr/testify/require"
)

// TestNewDenseShapes ensures negative shapes fail and zero shapes are legal.
func TestNewDenseShapes(t *testing.T) {
	_, err := matrix.NewDense(-1, 2)
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions)

	_, err = matrix.NewDense(2, -1)
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions)

	m, err := matrix.NewDense(3, 0) // map out of the zero group
	require.NoError(t, err)
	require.Equal(t, 3, m.Rows())
	require.Equal(t, 0, m.Cols())
	require.True(t, m.IsEmpty())
	require.True(t, m.IsZero())
	require.Equal(t, "[]\n[]\n[]\n", m.String())
}

// TestNewFromRows covers rectangular, empty and ragged input.
func TestNewFromRows(t *testing.T) {
	m := mustRows(t, [][]int64{{1, -2, 3}, {0, 5, 6}})
	require.Equal(t, 2, m.Rows())
	require.Equal(t, 3, m.Cols())
	v, fits, err := m.Int64At(0, 1)
	require.NoError(t, err)
	require.True(t, fits)
	require.Equal(t, int64(-2), v)

	empty, err := matrix.NewFromRows(nil)
	require.NoError(t, err)
	require.Equal(t, 0, empty.Rows())
	require.Equal(t, 0, empty.Cols())

	_, err = matrix.NewFromRows([][]int64{{1, 2}, {3}})
	require.ErrorIs(t, err, matrix.ErrRagged)
}

// TestAtSetOutOfRange ensures At() and Set() return ErrOutOfRange on invalid access.
func TestAtSetOutOfRange(t *testing.T) {
	m, err := matrix.NewDense(2, 2)
	require.NoError(t, err)

	_, err = m.At(-1, 0)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)

	_, err = m.At(0, 2)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)

	err = m.Set(2, 0, big.NewInt(1))
	require.ErrorIs(t, err, matrix.ErrOutOfRange)

	err = m.SetInt64(0, -1, 4)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)

	err = m.Set(0, 0, nil)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
}

// TestAtReturnsCopy verifies that mutating the value returned by At does not
// leak back into the matrix, and Set stores a copy.
func TestAtReturnsCopy(t *testing.T) {
	m, err := matrix.NewDense(1, 1)
	require.NoError(t, err)

	in := big.NewInt(7)
	require.NoError(t, m.Set(0, 0, in))
	in.SetInt64(100) // caller reuses its value

	got, err := m.At(0, 0)
	require.NoError(t, err)
	require.Equal(t, int64(7), got.Int64())

	got.SetInt64(-1)
	again, err := m.At(0, 0)
	require.NoError(t, err)
	require.Equal(t, int64(7), again.Int64())
}

// TestCloneIndependence ensures Clone() returns a deep copy.
func TestCloneIndependence(t *testing.T) {
	m := mustRows(t, [][]int64{{1, 0}, {0, 2}})
	clone := m.Clone()

	require.NoError(t, clone.Set(0, 0, big.NewInt(3)))

	orig, err := m.At(0, 0)
	require.NoError(t, err)
	require.Equal(t, int64(1), orig.Int64())

	cv, err := clone.At(0, 0)
	require.NoError(t, err)
	require.Equal(t, int64(3), cv.Int64())
}

// TestIdentityAndDiagonal checks Identity, IsDiagonal and Diagonal.
func TestIdentityAndDiagonal(t *testing.T) {
	id, err := matrix.Identity(3)
	require.NoError(t, err)
	require.True(t, id.IsDiagonal())
	require.Equal(t, []int64{1, 1, 1}, diagInts(t, id))

	require.False(t, mustRows(t, [][]int64{{1, 1}, {0, 1}}).IsDiagonal())
	require.True(t, mustRows(t, [][]int64{{4, 0, 0}, {0, 0, 0}}).IsDiagonal())
}

// TestStringOutput checks that String() formats the matrix as expected.
func TestStringOutput(t *testing.T) {
	m := mustRows(t, [][]int64{{1, -2}, {3, 4}})
	require.Equal(t, "[1, -2]\n[3, 4]\n", m.String())
}
