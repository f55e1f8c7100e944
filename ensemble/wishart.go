// SPDX-License-Identifier: MIT

package ensemble

import (
	"fmt"

	"github.com/katalvlaran/rmt/matrix"
)

// drawGaussian fills a rows×cols matrix from src in row-major order.
func drawGaussian(src Source, rows, cols int) (*matrix.Dense, error) {
	data := make([]float64, rows*cols)
	for k := range data {
		data[k] = src.NextGaussian()
	}

	return matrix.NewDenseFrom(rows, cols, data)
}

// SampleWishart draws a real Wishart matrix W = XᵀX of size n×n.
//
// Implementation:
//   - Stage 1: reject a nil src (ErrNilSource) and n < 1 or p < 1
//     (ErrInvalidDimension).
//   - Stage 2: draw X (p×n) with p·n calls to src, row by row.
//   - Stage 3: W[i,j] = Σ_k X[k,i]·X[k,j] for i ≤ j, mirrored into W[j,i]
//     (matrix.Gram).
//
// Behavior highlights:
//   - W is exactly symmetric and positive semi-definite up to rounding.
//   - Unnormalized: E[W] = p·I. Use SampleWishartNormalized for W/p.
//
// Errors: ErrNilSource, ErrInvalidDimension; matrix.ErrNaNInf if src emits a
// non-finite value.
// Complexity: O(p·n²) time, O(p·n + n²) memory.
func SampleWishart(src Source, n, p int) (*matrix.Dense, error) {
	if src == nil {
		return nil, ensembleErrorf(opWishart, ErrNilSource)
	}
	if n < 1 || p < 1 {
		return nil, ensembleErrorf(opWishart, fmt.Errorf("n=%d p=%d: %w", n, p, ErrInvalidDimension))
	}

	x, err := drawGaussian(src, p, n)
	if err != nil {
		return nil, ensembleErrorf(opWishart, err)
	}
	w, err := matrix.Gram(x)
	if err != nil {
		return nil, ensembleErrorf(opWishart, err)
	}

	return w, nil
}

// SampleWishartNormalized returns W/p for a freshly drawn Wishart matrix, whose
// spectrum follows the Marchenko–Pastur law with q = WishartRatio(n, p) and
// σ² = 1 as n, p grow. It consumes exactly the same draws as SampleWishart.
func SampleWishartNormalized(src Source, n, p int) (*matrix.Dense, error) {
	w, err := SampleWishart(src, n, p)
	if err != nil {
		return nil, err
	}
	scaled, err := matrix.Scale(w, 1/float64(p))
	if err != nil {
		return nil, ensembleErrorf(opWishartNormalized, err)
	}

	return scaled, nil
}

// WishartRatio returns the Marchenko–Pastur ratio q = n/p describing the
// limiting spectrum of SampleWishartNormalized(src, n, p).
//
// Errors: ErrInvalidDimension if n < 1 or p < 1.
func WishartRatio(n, p int) (float64, error) {
	if n < 1 || p < 1 {
		return 0, ensembleErrorf(opWishartRatio, fmt.Errorf("n=%d p=%d: %w", n, p, ErrInvalidDimension))
	}

	return float64(n) / float64(p), nil
}
