// SPDX-License-Identifier: MIT

package numeric

import "math"

// DefaultRelativeEpsilon is the relative tolerance used to decide whether a
// difference of two floats is indistinguishable from zero: 64 ulps of 1.0
// (≈1.42e-14). It is deliberately loose compared to a single rounding step
// because eigenvalues come out of an O(n³) factorisation, and deliberately
// tight compared to any physical spacing in a spectrum of moderate size.
const DefaultRelativeEpsilon = 64 * 0x1p-52

// IsNegligible reports whether diff is zero relative to scale:
//
//	|diff| ≤ eps·|scale|
//
// An exact zero diff is negligible for every eps ≥ 0 (including eps == 0,
// which therefore means bit-exact comparison). A zero scale only admits an
// exact zero diff.
func IsNegligible(diff, scale, eps float64) bool {
	if diff == 0 {
		return true
	}

	return math.Abs(diff) <= eps*math.Abs(scale)
}

// MaxAbs returns max(|a|, |b|); the natural scale for comparing a and b.
func MaxAbs(a, b float64) float64 {
	return math.Max(math.Abs(a), math.Abs(b))
}
