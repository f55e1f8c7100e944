// SPDX-License-Identifier: MIT

package spectral

import (
	"fmt"
	"math"
	"slices"

	"github.com/katalvlaran/rmt/numeric"
)

// KolmogorovDistance returns sup_x |F_n(x) - F(x)| between the empirical
// distribution of eigs and a limiting CDF such as
// density.WignerSemicircleCDF or density.MarchenkoPasturCDF.
//
// cdf must be non-decreasing with values in [0, 1]. eigs may be in any order
// and is not modified.
//
// Errors: ErrInsufficientData for empty eigs; ErrDomain for non-finite eigs
// or a cdf value outside [0, 1].
// Complexity: O(n log n) plus n calls to cdf.
func KolmogorovDistance(eigs []float64, cdf func(float64) float64) (float64, error) {
	if len(eigs) == 0 {
		return 0, spectralErrorf(opKolmogorov, ErrInsufficientData)
	}
	if !numeric.AllFinite(eigs) {
		return 0, spectralErrorf(opKolmogorov, ErrDomain)
	}

	sorted := slices.Clone(eigs)
	slices.Sort(sorted)
	n := float64(len(sorted))
	var d float64
	for i, x := range sorted {
		f := cdf(x)
		if !(f >= 0 && f <= 1) {
			return 0, spectralErrorf(opKolmogorov, fmt.Errorf("cdf(%g)=%g: %w", x, f, ErrDomain))
		}
		d = math.Max(d, math.Max(float64(i+1)/n-f, f-float64(i)/n))
	}

	return d, nil
}

// CountAboveEdge returns the number of eigenvalues strictly greater than edge,
// typically the Marchenko–Pastur upper edge λ⁺. Eigenvalues beyond the edge
// are the usual signal candidates in a noisy covariance spectrum.
//
// Errors: ErrDomain if edge is NaN or any eigenvalue is not finite.
func CountAboveEdge(eigs []float64, edge float64) (int, error) {
	if math.IsNaN(edge) || !numeric.AllFinite(eigs) {
		return 0, spectralErrorf(opAboveEdge, ErrDomain)
	}
	var count int
	for _, l := range eigs {
		if l > edge {
			count++
		}
	}

	return count, nil
}
