// Package matrix provides the small dense linear-algebra vocabulary used by the
// particle engine: a row-major float64 grid, element-wise addition, the matrix
// product, exact equality and the three 2D transform constructors.
//
// The matrix package provides:
//
//   - Dense, a bounds-checked r×c buffer whose shape never changes after
//     construction.
//   - Add, Mul and Equal over any Matrix implementation, with fast paths for
//     *Dense operands.
//   - NewRotation, NewScaling and NewTranslation, which build the 2×2 and 2×n
//     operands used to rotate, scale and shift a 2×N point matrix whose column
//     j holds vertex j.
//
// Errors are sentinels (ErrInvalidDimensions, ErrDimensionMismatch,
// ErrOutOfRange, ErrNilMatrix) wrapped with the operation name; match them
// with errors.Is. Operations are all-or-nothing: on error no partial result is
// returned.
//
// Points are column vectors, so a transform T is applied as T × P:
//
//	R := matrix.NewRotation(math.Pi / 2)
//	P2, err := matrix.Mul(R, P) // every column of P rotated CCW by 90°
package matrix
