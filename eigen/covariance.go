// SPDX-License-Identifier: MIT

package eigen

import (
	"github.com/katalvlaran/rmt/matrix"
)

// CovarianceSpectrum returns the ascending eigenvalues of the unbiased sample
// covariance of X (observations in rows, variables in columns).
//
// This is the usual first step when comparing a data set against the
// Marchenko–Pastur law: eigenvalues well above the upper edge indicate
// structure beyond noise. A nil dec selects Default().
//
// Errors: matrix.ErrNilMatrix, matrix.ErrInvalidDimensions (fewer than two
// rows), and anything dec returns.
func CovarianceSpectrum(X matrix.Matrix, dec Decomposer) ([]float64, error) {
	if dec == nil {
		dec = Default()
	}
	cov, err := matrix.Covariance(X)
	if err != nil {
		return nil, eigenErrorf(opCovariance, err)
	}
	vals, err := dec.Decompose(cov)
	if err != nil {
		return nil, eigenErrorf(opCovariance, err)
	}

	return vals, nil
}
