package matrix_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/particles/matrix"
)

// TestAdd verifies element-wise addition on both the Dense and generic paths.
func TestAdd(t *testing.T) {
	a := NewFilledDense(t, 2, 3, []float64{1, 2, 3, 4, 5, 6})
	b := NewFilledDense(t, 2, 3, []float64{6, 5, 4, 3, 2, 1})
	want := NewFilledDense(t, 2, 3, []float64{7, 7, 7, 7, 7, 7})

	got, err := matrix.Add(a, b)
	require.NoError(t, err)
	require.True(t, matrix.Equal(want, got), "got:\n%s", got)

	got, err = matrix.Add(hide{a}, b)
	require.NoError(t, err)
	require.True(t, matrix.Equal(want, got), "fallback got:\n%s", got)

	// operands untouched
	require.Equal(t, 1.0, MustAt(t, a, 0, 0))
	require.Equal(t, 6.0, MustAt(t, b, 0, 0))
}

// TestAddMismatch ensures Add rejects different shapes.
func TestAddMismatch(t *testing.T) {
	a := MustDense(t, 2, 3)
	b := MustDense(t, 3, 2)

	got, err := matrix.Add(a, b)
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
	require.Nil(t, got)

	_, err = matrix.Add(a, MustDense(t, 2, 4))
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
}

// TestMul verifies the matrix product against a hand-computed result.
func TestMul(t *testing.T) {
	a := NewFilledDense(t, 2, 3, []float64{1, 2, 3, 4, 5, 6})
	b := NewFilledDense(t, 3, 2, []float64{7, 8, 9, 10, 11, 12})
	want := NewFilledDense(t, 2, 2, []float64{58, 64, 139, 154})

	got, err := matrix.Mul(a, b)
	require.NoError(t, err)
	require.True(t, matrix.Equal(want, got), "got:\n%s", got)

	got, err = matrix.Mul(a, hide{b})
	require.NoError(t, err)
	require.True(t, matrix.Equal(want, got), "fallback got:\n%s", got)
}

// TestMulShape checks the a.Rows × b.Cols result shape for a 2×2 × 2×N product.
func TestMulShape(t *testing.T) {
	a := MustDense(t, 2, 2)
	b := MustDense(t, 2, 7)

	got, err := matrix.Mul(a, b)
	require.NoError(t, err)
	require.Equal(t, 2, got.Rows())
	require.Equal(t, 7, got.Cols())
}

// TestMulMismatch ensures Mul rejects a.Cols != b.Rows.
func TestMulMismatch(t *testing.T) {
	got, err := matrix.Mul(MustDense(t, 2, 3), MustDense(t, 2, 3))
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
	require.Nil(t, got)
}

// TestNilOperands ensures kernels reject nil matrices.
func TestNilOperands(t *testing.T) {
	var nilDense *matrix.Dense
	m := MustDense(t, 2, 2)

	_, err := matrix.Add(nil, m)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
	_, err = matrix.Add(m, nilDense)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
	_, err = matrix.Mul(nil, m)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
}

// TestMulRandomFastPathMatchesFallback compares both code paths on random data.
func TestMulRandomFastPathMatchesFallback(t *testing.T) {
	a := MustDense(t, 5, 4)
	b := MustDense(t, 4, 6)
	RandomFill(t, a, 7)
	RandomFill(t, b, 11)

	fast, err := matrix.Mul(a, b)
	require.NoError(t, err)
	slow, err := matrix.Mul(hide{a}, hide{b})
	require.NoError(t, err)
	require.True(t, matrix.Equal(fast, slow))
}

// TestEqual covers shape and element inequality.
func TestEqual(t *testing.T) {
	a := NewFilledDense(t, 2, 2, []float64{1, 2, 3, 4})
	b := NewFilledDense(t, 2, 2, []float64{1, 2, 3, 4})

	assert.True(t, matrix.Equal(a, b))
	assert.True(t, matrix.Equal(a, hide{b}))
	assert.False(t, matrix.Equal(a, MustDense(t, 2, 3)))
	assert.False(t, matrix.Equal(a, MustDense(t, 1, 4)))

	MustSet(t, b, 1, 1, 4.0000001)
	assert.False(t, matrix.Equal(a, b))
	assert.False(t, matrix.Equal(a, nil))
	assert.True(t, matrix.Equal(nil, nil))
}

// TestAllClose checks tolerance comparison.
func TestAllClose(t *testing.T) {
	a := NewFilledDense(t, 1, 2, []float64{1, 2})
	b := NewFilledDense(t, 1, 2, []float64{1.00001, 2})

	assert.True(t, matrix.AllClose(a, b, eps))
	assert.False(t, matrix.AllClose(a, b, 1e-9))
	assert.False(t, matrix.AllClose(a, MustDense(t, 2, 1), eps))
}
