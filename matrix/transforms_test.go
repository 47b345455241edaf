package matrix_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/particles/matrix"
)

// TestNewRotation checks the cos/sin layout over a sweep of angles.
func TestNewRotation(t *testing.T) {
	for _, theta := range []float64{0, math.Pi / 6, math.Pi / 4, math.Pi / 2, math.Pi, -1.3, 7.5} {
		r := matrix.NewRotation(theta)
		require.Equal(t, 2, r.Rows())
		require.Equal(t, 2, r.Cols())
		require.InDelta(t, math.Cos(theta), MustAt(t, r, 0, 0), eps)
		require.InDelta(t, -math.Sin(theta), MustAt(t, r, 0, 1), eps)
		require.InDelta(t, math.Sin(theta), MustAt(t, r, 1, 0), eps)
		require.InDelta(t, math.Cos(theta), MustAt(t, r, 1, 1), eps)
	}
}

// TestRotationQuarterTurn rotates the unit x vector onto the unit y vector.
func TestRotationQuarterTurn(t *testing.T) {
	p := NewFilledDense(t, 2, 2, []float64{
		1, 0,
		0, 1,
	})
	got, err := matrix.Mul(matrix.NewRotation(math.Pi/2), p)
	require.NoError(t, err)

	want := NewFilledDense(t, 2, 2, []float64{
		0, -1,
		1, 0,
	})
	require.True(t, matrix.AllClose(want, got, eps), "got:\n%s", got)
}

// TestNewScaling checks the exact diagonal layout.
func TestNewScaling(t *testing.T) {
	for _, c := range []float64{1.5, 0.999, 0, -2} {
		s := matrix.NewScaling(c)
		want := NewFilledDense(t, 2, 2, []float64{c, 0, 0, c})
		require.True(t, matrix.Equal(want, s), "c=%v got:\n%s", c, s)
	}
}

// TestNewTranslation checks every column equals (dx, dy).
func TestNewTranslation(t *testing.T) {
	for _, n := range []int{1, 4, 37} {
		tr, err := matrix.NewTranslation(5, -5, n)
		require.NoError(t, err)
		require.Equal(t, 2, tr.Rows())
		require.Equal(t, n, tr.Cols())
		for j := 0; j < n; j++ {
			require.Equal(t, 5.0, MustAt(t, tr, 0, j))
			require.Equal(t, -5.0, MustAt(t, tr, 1, j))
		}
	}
}

// TestNewTranslationInvalid rejects non-positive column counts.
func TestNewTranslationInvalid(t *testing.T) {
	for _, n := range []int{0, -3} {
		tr, err := matrix.NewTranslation(1, 1, n)
		require.ErrorIs(t, err, matrix.ErrInvalidDimensions)
		require.Nil(t, tr)
	}
}

// TestRotationPreservesNorm rotates random columns and compares lengths.
func TestRotationPreservesNorm(t *testing.T) {
	p := MustDense(t, 2, 16)
	RandomFill(t, p, 99)

	got, err := matrix.Mul(matrix.NewRotation(2.1), p)
	require.NoError(t, err)
	for j := 0; j < 16; j++ {
		before := math.Hypot(MustAt(t, p, 0, j), MustAt(t, p, 1, j))
		after := math.Hypot(MustAt(t, got, 0, j), MustAt(t, got, 1, j))
		require.InDelta(t, before, after, eps)
	}
}
