// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//   - Provide the row-broadcast kernel used to move a point matrix between a
//     local frame and the world frame (shift every column by the same vector).
//
// Determinism & Performance:
//   - Fixed loop orders (i→j).
//   - Dense fast-path operates on a single flat buffer (row-major).
//   - No hidden allocations beyond the output Dense; O(r*c) time and space.

package matrix

// BroadcastAddRows computes out[i,j] = X[i,j] + shift[i].
// With a 2×N point matrix and shift = (dx, dy) this translates every column by
// the same offset; pass (-cx, -cy) to move a shape's center to the origin.
// Time: O(r*c). Space: O(r*c). Deterministic i→j loops.
//
// Errors:
//   - ErrNilMatrix when X is nil or shift is nil.
//   - ErrDimensionMismatch when len(shift) != X.Rows().
func BroadcastAddRows(X Matrix, shift []float64) (*Dense, error) {
	// Validate matrix presence.
	if err := ValidateNotNil(X); err != nil {
		return nil, matrixErrorf(opBroadcast, err)
	}
	// Check broadcast vector length.
	if err := ValidateVecLen(shift, X.Rows()); err != nil {
		return nil, matrixErrorf(opBroadcast, err)
	}
	r, c := X.Rows(), X.Cols()
	out, err := NewDense(r, c)
	if err != nil {
		return nil, matrixErrorf(opBroadcast, err)
	}

	// Dense fast-path.
	if d, ok := X.(*Dense); ok {
		for i := 0; i < r; i++ {
			base := i * c
			s := shift[i] // read once per row
			for j := 0; j < c; j++ {
				out.data[base+j] = d.data[base+j] + s
			}
		}
		return out, nil
	}

	// Generic fallback.
	for i := 0; i < r; i++ {
		s := shift[i]
		for j := 0; j < c; j++ {
			v, e := X.At(i, j)
			if e != nil {
				return nil, matrixErrorf(opBroadcast, e)
			}
			out.data[i*c+j] = v + s
		}
	}
	return out, nil
}
