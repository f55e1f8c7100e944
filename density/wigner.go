// SPDX-License-Identifier: MIT

package density

import (
	"math"

	"github.com/katalvlaran/rmt/numeric"
)

// SemicircleRadius returns the semicircle radius R = 2σ for an ensemble whose
// off-diagonal entries have variance sigma2.
//
// Errors: ErrDomain if sigma2 is not finite and > 0.
func SemicircleRadius(sigma2 float64) (float64, error) {
	if err := numeric.RequirePositive(sigma2); err != nil {
		return 0, domainErrorf(opSemicircleRad, "sigma2", sigma2)
	}

	return 2 * math.Sqrt(sigma2), nil
}

func validateRadius(op string, radius float64) error {
	if err := numeric.RequirePositive(radius); err != nil {
		return domainErrorf(op, "radius", radius)
	}

	return nil
}

// WignerSemicircleDensity evaluates the semicircle law of the given radius:
//
//	f(x) = (2/(πR²))·√(R²-x²)   for |x| ≤ R, else 0.
//
// The edges ±R evaluate to 0 and f(0) = 2/(πR).
//
// Errors: ErrDomain if radius is not finite and > 0, or x is NaN.
// Complexity: O(1).
func WignerSemicircleDensity(x, radius float64) (float64, error) {
	if err := validateRadius(opWigner, radius); err != nil {
		return 0, err
	}
	if math.IsNaN(x) {
		return 0, domainErrorf(opWigner, "x", x)
	}
	if math.Abs(x) >= radius {
		return 0, nil
	}

	// In u = x/R: f = 2/(πR)·√((1-u)(1+u)), bounded for any finite R.
	u := x / radius

	return 2 / (math.Pi * radius) * numeric.SafeSqrt((1-u)*(1+u)), nil
}
