// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set.
// Kernels return these sentinels wrapped with an operation tag
// ("Mul: matrix: dimension mismatch"); callers match them with errors.Is.

package matrix

import (
	"errors"

	"github.com/katalvlaran/rmt/numeric"
)

var (
	// ErrInvalidDimensions is returned when a requested shape is not strictly
	// positive. It is the shared numeric.ErrInvalidDimension sentinel so that
	// samplers and matrix constructors report the same condition identically.
	ErrInvalidDimensions = numeric.ErrInvalidDimension

	// ErrOutOfRange indicates that a row or column index is outside valid bounds.
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrDimensionMismatch indicates incompatible operand shapes, e.g. Mul with
	// a.Cols != b.Rows, or a data slice whose length is not rows*cols.
	ErrDimensionMismatch = errors.New("matrix: dimension mismatch")

	// ErrNonSquare signals that a square matrix was required.
	ErrNonSquare = errors.New("matrix: matrix is not square")

	// ErrAsymmetry signals that |A[i,j] - A[j,i]| exceeded the symmetry tolerance.
	ErrAsymmetry = errors.New("matrix: matrix is not symmetric within tolerance")

	// ErrNaNInf signals a NaN or ±Inf value where finite values are required.
	ErrNaNInf = errors.New("matrix: NaN or Inf encountered")

	// ErrNilMatrix indicates that a nil Matrix was passed in.
	ErrNilMatrix = errors.New("matrix: nil matrix")

	// ErrMatrixEigenFailed indicates that the Jacobi solver did not converge
	// within its sweep budget.
	ErrMatrixEigenFailed = errors.New("matrix: eigen decomposition failed")
)
