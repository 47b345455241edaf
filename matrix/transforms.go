// SPDX-License-Identifier: MIT

// Package matrix - 2D transform constructors.
//
// Points live in a 2×N matrix, column j = (x_j, y_j). The constructors below
// build the operands that act on such a matrix:
//
//	R(θ) × P   rotates every column counter-clockwise by θ about the origin
//	S(c) × P   scales every column by c about the origin
//	T + P      shifts every column by (dx, dy), T being 2×N
//
// They are plain data constructors: the result is an ordinary *Dense with no
// behavior of its own.

package matrix

import "math"

// NewRotation returns the 2×2 counter-clockwise rotation by theta radians:
//
//	cos(θ)  -sin(θ)
//	sin(θ)   cos(θ)
func NewRotation(theta float64) *Dense {
	cos, sin := math.Cos(theta), math.Sin(theta)

	return &Dense{r: 2, c: 2, data: []float64{
		cos, -sin,
		sin, cos,
	}}
}

// NewScaling returns the 2×2 uniform scaling by factor c:
//
//	c  0
//	0  c
func NewScaling(c float64) *Dense {
	return &Dense{r: 2, c: 2, data: []float64{
		c, 0,
		0, c,
	}}
}

// NewTranslation returns the 2×n matrix whose every column is (dx, dy).
//
// Errors:
//   - ErrInvalidDimensions when n <= 0.
//
// Complexity: O(n).
func NewTranslation(dx, dy float64, n int) (*Dense, error) {
	m, err := NewDense(2, n)
	if err != nil {
		return nil, matrixErrorf(opTranslate, err)
	}
	for j := 0; j < n; j++ {
		m.data[j] = dx
		m.data[n+j] = dy
	}

	return m, nil
}
