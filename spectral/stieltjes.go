// SPDX-License-Identifier: MIT

package spectral

import (
	"math/cmplx"

	"github.com/katalvlaran/rmt/numeric"
)

// StieltjesTransform returns the Stieltjes transform of the empirical
// spectral measure,
//
//	m(z) = (1/n) Σ 1/(λᵢ - z).
//
// z must have a non-zero imaginary part; a real z could hit a pole. The
// checks run in the order z (ErrDomain), emptiness (ErrInsufficientData),
// finiteness of eigs (ErrDomain).
//
// Example: eigs [0, 1] at z = i gives ½(1/(0-i) + 1/(1-i)) = 0.25 + 0.75i.
//
// Complexity: O(n).
func StieltjesTransform(eigs []float64, z complex128) (complex128, error) {
	if imag(z) == 0 || cmplx.IsNaN(z) || cmplx.IsInf(z) {
		return 0, spectralErrorf(opStieltjes, ErrDomain)
	}
	if len(eigs) == 0 {
		return 0, spectralErrorf(opStieltjes, ErrInsufficientData)
	}
	if !numeric.AllFinite(eigs) {
		return 0, spectralErrorf(opStieltjes, ErrDomain)
	}

	var sum complex128
	for _, l := range eigs {
		sum += 1 / (complex(l, 0) - z)
	}

	return sum / complex(float64(len(eigs)), 0), nil
}
