// SPDX-License-Identifier: MIT

package matrix

import "math"

const (
	opAdd      = "Add"
	opAllClose = "AllClose"
)

// Add returns a + b for operands of identical shape.
// Errors: ErrNilMatrix, ErrDimensionMismatch.
// Complexity: O(r*c).
func Add(a, b Matrix) (*Dense, error) {
	if err := ValidateSameShape(a, b); err != nil {
		return nil, matrixErrorf(opAdd, err)
	}
	da, err := toDense(a)
	if err != nil {
		return nil, matrixErrorf(opAdd, err)
	}
	db, err := toDense(b)
	if err != nil {
		return nil, matrixErrorf(opAdd, err)
	}
	res := da.clone()
	for i, v := range db.data {
		res.data[i] += v
	}
	if res.validateNaNInf {
		if err = ValidateFinite(res); err != nil {
			return nil, matrixErrorf(opAdd, err) // overflow
		}
	}

	return res, nil
}

// AllClose reports whether |a-b| ≤ atol + rtol·|b| holds element-wise.
//
// Policy:
//   - a and b must be non-nil and have identical shapes.
//   - rtol and atol must be finite; their signs are ignored.
//   - NaN never compares close.
//
// Errors: ErrNilMatrix, ErrDimensionMismatch, ErrNaNInf (tolerance).
// Complexity: O(r*c), exits on the first violation.
func AllClose(a, b Matrix, rtol, atol float64) (bool, error) {
	if math.IsNaN(rtol) || math.IsNaN(atol) || math.IsInf(rtol, 0) || math.IsInf(atol, 0) {
		return false, matrixErrorf(opAllClose, ErrNaNInf)
	}
	rtol, atol = math.Abs(rtol), math.Abs(atol)
	if err := ValidateSameShape(a, b); err != nil {
		return false, matrixErrorf(opAllClose, err)
	}
	da, err := toDense(a)
	if err != nil {
		return false, matrixErrorf(opAllClose, err)
	}
	db, err := toDense(b)
	if err != nil {
		return false, matrixErrorf(opAllClose, err)
	}
	for i, av := range da.data {
		bv := db.data[i]
		if !(math.Abs(av-bv) <= atol+rtol*math.Abs(bv)) {
			return false, nil
		}
	}

	return true, nil
}
