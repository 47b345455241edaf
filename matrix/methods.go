// Package matrix provides universal operations on any Matrix implementation:
// element-wise addition, matrix multiplication and equality. All functions
// perform strict fail-fast validation and return clear errors on dimension
// mismatches.
package matrix

import (
	"fmt"
	"math"
)

// ZeroSum is the initial value for dot-product accumulation.
const ZeroSum = 0.0

// Operation name constants for unified error wrapping and reducing magic strings.
const (
	opAdd       = "Add"
	opMul       = "Mul"
	opFrom      = "NewDenseFrom"
	opBroadcast = "BroadcastAddRows"
	opTranslate = "NewTranslation"
)

// matrixErrorf wraps an underlying error with the given tag.
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// Add returns a new Dense containing the element-wise sum of a and b.
// Stage 1 (Validate): nil-checks and shape match.
// Stage 2 (Prepare): allocate result Dense.
// Stage 3 (Execute): fast-path for *Dense or fallback to interface.
// Complexity: O(r·c) time and memory.
func Add(a, b Matrix) (*Dense, error) {
	// Stage 1: Validate operands
	if err := ValidateBinarySameShape(a, b); err != nil {
		return nil, matrixErrorf(opAdd, err)
	}

	// Stage 2: Allocate result Dense
	rows, cols := a.Rows(), a.Cols()
	res, err := NewDense(rows, cols)
	if err != nil {
		return nil, matrixErrorf(opAdd, err)
	}

	// Stage 3: Fast-path for two Dense matrices
	if da, okA := a.(*Dense); okA {
		if db, okB := b.(*Dense); okB {
			for idx := range res.data {
				res.data[idx] = da.data[idx] + db.data[idx]
			}

			return res, nil
		}
	}

	// Fallback: generic interface loop
	var (
		i, j   int
		av, bv float64
	)
	for i = 0; i < rows; i++ {
		for j = 0; j < cols; j++ {
			if av, err = a.At(i, j); err != nil {
				return nil, matrixErrorf(opAdd, err)
			}
			if bv, err = b.At(i, j); err != nil {
				return nil, matrixErrorf(opAdd, err)
			}
			res.data[i*cols+j] = av + bv
		}
	}

	return res, nil
}

// Mul returns the matrix product a × b.
// Stage 1 (Validate): nil-checks and a.Cols == b.Rows.
// Stage 2 (Prepare): allocate result Dense(a.Rows × b.Cols).
// Stage 3 (Execute): each cell is the k-ordered dot product of row i of a and
// column j of b.
// Complexity: O(r·n·c) time, O(r·c) memory.
func Mul(a, b Matrix) (*Dense, error) {
	// Stage 1: Validate
	if err := ValidateMulCompatible(a, b); err != nil {
		return nil, matrixErrorf(opMul, err)
	}

	// Stage 2: Allocate result
	aRows, aCols, bCols := a.Rows(), a.Cols(), b.Cols()
	res, err := NewDense(aRows, bCols)
	if err != nil {
		return nil, matrixErrorf(opMul, err)
	}

	var (
		i, j, k int
		current float64
	)

	// Stage 3: Fast-path for Dense × Dense over flat buffers
	if da, okA := a.(*Dense); okA {
		if db, okB := b.(*Dense); okB {
			for i = 0; i < aRows; i++ {
				rowA := da.data[i*aCols : (i+1)*aCols]
				for j = 0; j < bCols; j++ {
					current = ZeroSum
					for k = 0; k < aCols; k++ {
						current += rowA[k] * db.data[k*bCols+j]
					}
					res.data[i*bCols+j] = current
				}
			}

			return res, nil
		}
	}

	// Fallback: generic interface triple-loop (i-j-k)
	var av, bv float64
	for i = 0; i < aRows; i++ {
		for j = 0; j < bCols; j++ {
			current = ZeroSum
			for k = 0; k < aCols; k++ {
				if av, err = a.At(i, k); err != nil {
					return nil, matrixErrorf(opMul, err)
				}
				if bv, err = b.At(k, j); err != nil {
					return nil, matrixErrorf(opMul, err)
				}
				current += av * bv
			}
			res.data[i*bCols+j] = current
		}
	}

	return res, nil
}

// Equal reports whether a and b have the same shape and bit-for-bit equal
// elements. Use it only for deterministically constructed matrices; compare
// computed floating results with AllClose.
// A nil operand is equal only to another nil operand.
// Complexity: O(r·c).
func Equal(a, b Matrix) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	if ValidateSameShape(a, b) != nil {
		return false
	}

	if da, okA := a.(*Dense); okA {
		if db, okB := b.(*Dense); okB {
			for idx := range da.data {
				if da.data[idx] != db.data[idx] {
					return false
				}
			}
			return true
		}
	}

	rows, cols := a.Rows(), a.Cols()
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			av, errA := a.At(i, j)
			bv, errB := b.At(i, j)
			if errA != nil || errB != nil || av != bv {
				return false
			}
		}
	}

	return true
}

// AllClose reports whether a and b have the same shape and every pair of
// elements differs by at most eps in absolute value.
// Complexity: O(r·c).
func AllClose(a, b Matrix, eps float64) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	if ValidateSameShape(a, b) != nil {
		return false
	}

	rows, cols := a.Rows(), a.Cols()
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			av, errA := a.At(i, j)
			bv, errB := b.At(i, j)
			if errA != nil || errB != nil || math.Abs(av-bv) > eps {
				return false
			}
		}
	}

	return true
}
