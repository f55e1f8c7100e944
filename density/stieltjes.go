// SPDX-License-Identifier: MIT

package density

import (
	"math/cmplx"
)

// validateZ rejects real or non-finite Stieltjes arguments.
func validateZ(op string, z complex128) error {
	if imag(z) == 0 || cmplx.IsNaN(z) || cmplx.IsInf(z) {
		return domainErrorf(op, "z", z)
	}

	return nil
}

// MarchenkoPasturStieltjes returns the Stieltjes transform of the full
// Marchenko–Pastur law (atom included),
//
//	m(z) = (σ²(1-q) - z + √(z-λ⁻)·√(z-λ⁺)) / (2qσ²z).
//
// Taking the product of two principal square roots places the branch cut on
// [λ⁻, λ⁺], so m is analytic off the support, Im m(z) has the sign of Im z,
// and m(z) ~ -1/z at infinity. For q > 1 the atom shows up as the pole
// -(1-1/q)/z.
//
// Errors: ErrDomain for bad q or sigma2, imag(z) == 0, or a non-finite z.
func MarchenkoPasturStieltjes(z complex128, q, sigma2 float64) (complex128, error) {
	if _, err := validateMP(opMPStieltjes, q, sigma2); err != nil {
		return 0, err
	}
	if err := validateZ(opMPStieltjes, z); err != nil {
		return 0, err
	}

	// m_σ²(z) = m₁(z/σ²)/σ², with m₁ the transform of MP(q, 1).
	w := complex(real(z)/sigma2, imag(z)/sigma2)
	lo, hi := unitEdges(q)
	root := cmplx.Sqrt(w-complex(lo, 0)) * cmplx.Sqrt(w-complex(hi, 0))
	num := complex(1-q, 0) - w + root

	return num / w / complex(2*q, 0) / complex(sigma2, 0), nil
}

// WignerSemicircleStieltjes returns the Stieltjes transform of the semicircle
// law of the given radius,
//
//	m(z) = 2(-z + √(z-R)·√(z+R)) / R².
//
// Errors: ErrDomain for a bad radius, imag(z) == 0, or a non-finite z.
func WignerSemicircleStieltjes(z complex128, radius float64) (complex128, error) {
	if err := validateRadius(opWignerStielt, radius); err != nil {
		return 0, err
	}
	if err := validateZ(opWignerStielt, z); err != nil {
		return 0, err
	}
	// m_R(z) = m₁(z/R)/R with m₁(w) = 2(√(w-1)·√(w+1) - w).
	w := complex(real(z)/radius, imag(z)/radius)
	root := cmplx.Sqrt(w-1) * cmplx.Sqrt(w+1)

	return 2 * (root - w) / complex(radius, 0), nil
}
