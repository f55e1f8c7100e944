// SPDX-License-Identifier: MIT

package numeric

import "math"

// IsFinite reports whether x is neither NaN nor ±Inf.
func IsFinite(x float64) bool {
	return !math.IsNaN(x) && !math.IsInf(x, 0)
}

// AllFinite reports whether every element of xs is finite.
// Complexity: O(n).
func AllFinite(xs []float64) bool {
	for _, x := range xs {
		if !IsFinite(x) {
			return false
		}
	}

	return true
}

// RequirePositive returns ErrDomain unless x is finite and strictly positive.
// It is the single guard behind every q, σ² and R check.
func RequirePositive(x float64) error {
	if !IsFinite(x) || x <= 0 {
		return ErrDomain
	}

	return nil
}

// SafeSqrt returns √x for x > 0 and 0 otherwise.
//
// Radicands like (λ⁺-x)(x-λ⁻) evaluated at or just outside a support edge can
// come out as -1e-17 from cancellation; those are boundary points where the
// density is 0, so they are clamped rather than turned into NaN.
// Callers must validate their inputs first: a NaN radicand also maps to 0.
func SafeSqrt(x float64) float64 {
	if !(x > 0) {
		return 0
	}

	return math.Sqrt(x)
}

// SafeLog returns ln(x) for finite x > 0 and ErrDomain otherwise.
func SafeLog(x float64) (float64, error) {
	if !IsFinite(x) || x <= 0 {
		return 0, ErrDomain
	}

	return math.Log(x), nil
}
