// SPDX-License-Identifier: MIT

package ensemble

import (
	"fmt"
	"math"

	"github.com/katalvlaran/rmt/matrix"
)

// SampleGOE draws an n×n matrix from the Gaussian Orthogonal Ensemble,
// G = (A + Aᵀ)/√2.
//
// Implementation:
//   - Stage 1: reject a nil src (ErrNilSource) and n < 1 (ErrInvalidDimension).
//   - Stage 2: draw A (n×n) with n² calls to src, row by row. Every draw is
//     consumed even though only the sums A[i,j] + A[j,i] are used.
//   - Stage 3: G = (A + Aᵀ)·(1/√2) with matrix.Add and matrix.Scale.
//
// Behavior highlights:
//   - Off-diagonal variance 1, diagonal variance 2 (G[i,i] = √2·A[i,i]).
//   - The spectrum of G fills [-2√n, 2√n] as a semicircle for large n.
//
// Errors: ErrNilSource, ErrInvalidDimension; matrix.ErrNaNInf if src emits a
// non-finite value.
// Complexity: O(n²) time and memory.
func SampleGOE(src Source, n int) (*matrix.Dense, error) {
	if src == nil {
		return nil, ensembleErrorf(opGOE, ErrNilSource)
	}
	if n < 1 {
		return nil, ensembleErrorf(opGOE, fmt.Errorf("n=%d: %w", n, ErrInvalidDimension))
	}

	a, err := drawGaussian(src, n, n)
	if err != nil {
		return nil, ensembleErrorf(opGOE, err)
	}
	at, err := matrix.Transpose(a)
	if err != nil {
		return nil, ensembleErrorf(opGOE, err)
	}
	sum, err := matrix.Add(a, at) // exactly symmetric: x+y == y+x
	if err != nil {
		return nil, ensembleErrorf(opGOE, err)
	}
	out, err := matrix.Scale(sum, 1/math.Sqrt2)
	if err != nil {
		return nil, ensembleErrorf(opGOE, err)
	}

	return out, nil
}

// SampleGOENormalized returns G/√n, whose spectrum approaches the semicircle
// of radius 2. It consumes exactly the same draws as SampleGOE.
func SampleGOENormalized(src Source, n int) (*matrix.Dense, error) {
	g, err := SampleGOE(src, n)
	if err != nil {
		return nil, err
	}
	scaled, err := matrix.Scale(g, 1/math.Sqrt(float64(n)))
	if err != nil {
		return nil, ensembleErrorf(opGOENormalized, err)
	}

	return scaled, nil
}
