// SPDX-License-Identifier: MIT
// Package matrix: column statistics over observation matrices.
//
// Conventions:
//   - X is r×c with observations in rows and variables in columns.
//   - Results are fresh *Dense values; X is never modified.

package matrix

import "fmt"

const (
	opCenterColumns = "CenterColumns"
	opCovariance    = "Covariance"
)

// CenterColumns subtracts the column mean from every element of X.
//
// Returns the centered copy and the c column means (Σ_i X[i,j] / r).
// Errors: ErrNilMatrix.
// Complexity: O(r*c).
func CenterColumns(X Matrix) (*Dense, []float64, error) {
	if err := ValidateNotNil(X); err != nil {
		return nil, nil, matrixErrorf(opCenterColumns, err)
	}
	src, err := toDense(X)
	if err != nil {
		return nil, nil, matrixErrorf(opCenterColumns, err)
	}

	r, c := src.r, src.c
	means := make([]float64, c)
	var i, j, base int
	for i = 0; i < r; i++ {
		base = i * c
		for j = 0; j < c; j++ {
			means[j] += src.data[base+j]
		}
	}
	invR := 1.0 / float64(r)
	for j = 0; j < c; j++ {
		means[j] *= invR
	}

	res := src.clone()
	for i = 0; i < r; i++ {
		base = i * c
		for j = 0; j < c; j++ {
			res.data[base+j] -= means[j]
		}
	}

	return res, means, nil
}

// Covariance returns the c×c unbiased sample covariance of the columns of X:
// Cov = XcᵀXc / (r-1), where Xc is X with column means removed.
//
// The result inherits Gram's exact symmetry.
//
// Errors: ErrNilMatrix; ErrInvalidDimensions when r < 2.
// Complexity: O(r*c²).
func Covariance(X Matrix) (*Dense, error) {
	if err := ValidateNotNil(X); err != nil {
		return nil, matrixErrorf(opCovariance, err)
	}
	if X.Rows() < 2 {
		return nil, matrixErrorf(opCovariance, fmt.Errorf("rows=%d: %w", X.Rows(), ErrInvalidDimensions))
	}
	xc, _, err := CenterColumns(X)
	if err != nil {
		return nil, matrixErrorf(opCovariance, err)
	}
	g, err := Gram(xc)
	if err != nil {
		return nil, matrixErrorf(opCovariance, err)
	}
	inv := 1.0 / float64(X.Rows()-1)
	for k := range g.data {
		g.data[k] *= inv
	}

	return g, nil
}
