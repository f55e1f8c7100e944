// SPDX-License-Identifier: MIT
// Package matrix: linear-algebra kernels.
//
// Purpose:
//   - Provide the handful of dense kernels the ensemble samplers and the eigen
//     adapters rely on: Transpose, Mul, Scale, Symmetrize, Gram and Eigen.
//   - Every kernel validates through validators.go and wraps failures with an
//     op* tag via matrixErrorf.
//
// Notes:
//   - Kernels always allocate a fresh *Dense; operands are never mutated.
//   - A *Dense operand unlocks a flat-slice fast path; other Matrix
//     implementations are first materialized with toDense.

package matrix

import (
	"cmp"
	"fmt"
	"math"
	"slices"
)

// Operation tags for matrixErrorf.
const (
	opMul        = "Mul"
	opTranspose  = "Transpose"
	opScale      = "Scale"
	opSymmetrize = "Symmetrize"
	opGram       = "Gram"
	opEigen      = "Eigen"
)

// Jacobi solver defaults.
const (
	// DefaultJacobiTolerance is the relative off-diagonal threshold: iteration
	// stops once max|A[p,q]| ≤ tol·‖A‖_F.
	DefaultJacobiTolerance = 1e-12

	// DefaultJacobiSweeps bounds the number of full cyclic sweeps. Cyclic Jacobi
	// converges quadratically, so well-conditioned inputs finish in under 15.
	DefaultJacobiSweeps = 64
)

// matrixErrorf wraps err with an operation tag, preserving it for errors.Is.
// Call only with a non-nil err.
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// toDense returns m itself when it is already a *Dense, otherwise a Dense copy
// built through At. The caller must not mutate the returned value.
func toDense(m Matrix) (*Dense, error) {
	if d, ok := m.(*Dense); ok {
		return d, nil
	}
	r, c := m.Rows(), m.Cols()
	out, err := NewDense(r, c)
	if err != nil {
		return nil, err
	}
	var i, j int
	for i = 0; i < r; i++ {
		for j = 0; j < c; j++ {
			v, err := m.At(i, j)
			if err != nil {
				return nil, err
			}
			out.data[i*c+j] = v
		}
	}

	return out, nil
}

// Transpose returns a new c×r matrix holding mᵀ.
//
// Errors: ErrNilMatrix.
// Complexity: O(r*c).
func Transpose(m Matrix) (*Dense, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opTranspose, err)
	}
	src, err := toDense(m)
	if err != nil {
		return nil, matrixErrorf(opTranspose, err)
	}
	r, c := src.r, src.c
	res, err := NewDense(c, r)
	if err != nil {
		return nil, matrixErrorf(opTranspose, err)
	}
	res.validateNaNInf = src.validateNaNInf
	var i, j, base int
	for i = 0; i < r; i++ {
		base = i * c
		for j = 0; j < c; j++ {
			res.data[j*r+i] = src.data[base+j]
		}
	}

	return res, nil
}

// Mul returns the product a·b.
//
// Implementation:
//   - Stage 1: ValidateMulCompatible(a, b).
//   - Stage 2: materialize both operands as *Dense and run the i→k→j loop over
//     row-major strides, skipping zero entries of a.
//
// Errors: ErrNilMatrix, ErrDimensionMismatch.
// Determinism: fixed loop order; each C[i,j] accumulates over k ascending.
// Complexity: O(r*n*c) time, O(r*c) memory.
func Mul(a, b Matrix) (*Dense, error) {
	if err := ValidateMulCompatible(a, b); err != nil {
		return nil, matrixErrorf(opMul, err)
	}
	da, err := toDense(a)
	if err != nil {
		return nil, matrixErrorf(opMul, err)
	}
	db, err := toDense(b)
	if err != nil {
		return nil, matrixErrorf(opMul, err)
	}

	aRows, aCols, bCols := da.r, da.c, db.c
	res, err := NewDense(aRows, bCols)
	if err != nil {
		return nil, matrixErrorf(opMul, err)
	}
	var (
		i, k, j                            int
		rowOffsetA, rowOffsetB, rowOffsetR int
		av                                 float64
	)
	for i = 0; i < aRows; i++ {
		rowOffsetA = i * aCols
		rowOffsetR = i * bCols
		for k = 0; k < aCols; k++ {
			av = da.data[rowOffsetA+k]
			if av == 0 {
				continue
			}
			rowOffsetB = k * bCols
			for j = 0; j < bCols; j++ {
				res.data[rowOffsetR+j] += av * db.data[rowOffsetB+j]
			}
		}
	}

	return res, nil
}

// Scale returns alpha·m.
//
// Errors: ErrNilMatrix; ErrNaNInf if alpha is not finite or a product
// overflows.
// Complexity: O(r*c).
func Scale(m Matrix, alpha float64) (*Dense, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opScale, err)
	}
	if math.IsNaN(alpha) || math.IsInf(alpha, 0) {
		return nil, matrixErrorf(opScale, ErrNaNInf)
	}
	src, err := toDense(m)
	if err != nil {
		return nil, matrixErrorf(opScale, err)
	}
	res := src.clone()
	for k := range res.data {
		res.data[k] *= alpha
		if math.IsInf(res.data[k], 0) {
			return nil, matrixErrorf(opScale, denseErrorf(ctxSet, k/res.c, k%res.c, ErrNaNInf))
		}
	}

	return res, nil
}

// Symmetrize returns (m + mᵀ)/2 for a square m.
//
// Each mirrored pair is computed once as a/2 + b/2 and written to both
// positions, so the result is bit-exactly symmetric and cannot overflow.
// An already symmetric input is returned unchanged (as a copy).
//
// Errors: ErrNilMatrix, ErrNonSquare.
// Complexity: O(n²).
func Symmetrize(m Matrix) (*Dense, error) {
	if err := ValidateSquare(m); err != nil {
		return nil, matrixErrorf(opSymmetrize, err)
	}
	src, err := toDense(m)
	if err != nil {
		return nil, matrixErrorf(opSymmetrize, err)
	}
	n := src.r
	res, err := NewDense(n, n)
	if err != nil {
		return nil, matrixErrorf(opSymmetrize, err)
	}
	var i, j int
	var v float64
	for i = 0; i < n; i++ {
		res.data[i*n+i] = src.data[i*n+i]
		for j = i + 1; j < n; j++ {
			v = 0.5*src.data[i*n+j] + 0.5*src.data[j*n+i]
			res.data[i*n+j] = v
			res.data[j*n+i] = v
		}
	}

	return res, nil
}

// Gram returns the c×c matrix G = XᵀX of an r×c matrix X.
//
// Implementation:
//   - Stage 1: ValidateNotNil(X); materialize X as *Dense.
//   - Stage 2: for i ≤ j compute G[i,j] = Σ_k X[k,i]·X[k,j] with k ascending,
//     then copy the value into G[j,i].
//
// Behavior highlights:
//   - Exact symmetry: the lower triangle is a copy, never a recomputation.
//   - The result is positive semi-definite up to rounding.
//
// Errors: ErrNilMatrix.
// Complexity: O(r*c²/2) time, O(c²) memory.
func Gram(X Matrix) (*Dense, error) {
	if err := ValidateNotNil(X); err != nil {
		return nil, matrixErrorf(opGram, err)
	}
	src, err := toDense(X)
	if err != nil {
		return nil, matrixErrorf(opGram, err)
	}
	r, c := src.r, src.c
	res, err := NewDense(c, c)
	if err != nil {
		return nil, matrixErrorf(opGram, err)
	}
	var (
		i, j, k, base int
		sum           float64
	)
	for i = 0; i < c; i++ {
		for j = i; j < c; j++ {
			sum = 0
			for k = 0; k < r; k++ {
				base = k * c
				sum += src.data[base+i] * src.data[base+j]
			}
			res.data[i*c+j] = sum
			res.data[j*c+i] = sum
		}
	}

	return res, nil
}

// Eigen computes all eigenpairs of a symmetric matrix with the cyclic Jacobi
// method.
//
// Implementation:
//   - Stage 1: validate m (square, symmetric within symTol, finite) and the
//     solver parameters.
//   - Stage 2: copy m into A, set Q = I, and sweep the strict upper triangle
//     in row-major order. Each non-negligible A[p,q] is annihilated by a plane
//     rotation, accumulated into Q.
//   - Stage 3: stop once max|A[p,q]| ≤ tol·‖A‖_F; read the eigenvalues off the
//     diagonal and sort them ascending, permuting the columns of Q to match.
//
// Inputs:
//   - m: symmetric n×n matrix.
//   - tol: relative off-diagonal tolerance, finite and > 0.
//   - maxSweeps: upper bound on full sweeps, ≥ 1.
//
// Returns:
//   - eigenvalues ascending, and Q whose column k is the unit eigenvector of
//     eigenvalue k, so that m ≈ Q·diag(λ)·Qᵀ.
//
// Errors:
//   - ErrNilMatrix, ErrNonSquare, ErrAsymmetry, ErrNaNInf from validation.
//   - ErrMatrixEigenFailed for bad solver parameters or when the sweep budget
//     is exhausted before convergence.
//
// Determinism: the rotation order is fixed, so identical inputs give
// bit-identical outputs.
//
// Complexity: O(n³) per sweep, O(n²) memory.
func Eigen(m Matrix, tol float64, maxSweeps int) ([]float64, *Dense, error) {
	if err := ValidateSymmetric(m, 0); err != nil {
		return nil, nil, matrixErrorf(opEigen, err)
	}
	if err := ValidateFinite(m); err != nil {
		return nil, nil, matrixErrorf(opEigen, err)
	}
	if !(tol > 0) || math.IsInf(tol, 0) {
		return nil, nil, matrixErrorf(opEigen, fmt.Errorf("tol=%g: %w", tol, ErrMatrixEigenFailed))
	}
	if maxSweeps < 1 {
		return nil, nil, matrixErrorf(opEigen, fmt.Errorf("maxSweeps=%d: %w", maxSweeps, ErrMatrixEigenFailed))
	}

	src, err := toDense(m)
	if err != nil {
		return nil, nil, matrixErrorf(opEigen, err)
	}
	n := src.r
	a := src.RawCopy()
	qm, err := NewDense(n, n)
	if err != nil {
		return nil, nil, matrixErrorf(opEigen, err)
	}
	q := qm.data
	var i int
	for i = 0; i < n; i++ {
		q[i*n+i] = 1
	}

	var frob float64
	for _, v := range a {
		frob = math.Hypot(frob, v)
	}
	threshold := tol * frob

	var (
		sweep    int
		converge bool
		r, p, c  int
	)
	for sweep = 0; ; sweep++ {
		if maxOffDiagonal(a, n) <= threshold {
			converge = true
			break
		}
		if sweep == maxSweeps {
			break
		}
		for p = 0; p < n-1; p++ {
			for c = p + 1; c < n; c++ {
				if math.Abs(a[p*n+c]) <= threshold {
					continue
				}
				rotate(a, q, n, p, c)
			}
		}
	}
	if !converge {
		return nil, nil, matrixErrorf(opEigen, fmt.Errorf("no convergence after %d sweeps: %w", maxSweeps, ErrMatrixEigenFailed))
	}

	// Sort eigenpairs ascending; stable so equal eigenvalues keep column order.
	order := make([]int, n)
	for i = range order {
		order[i] = i
	}
	slices.SortStableFunc(order, func(x, y int) int {
		return cmp.Compare(a[x*n+x], a[y*n+y])
	})
	values := make([]float64, n)
	vectors, err := NewDense(n, n)
	if err != nil {
		return nil, nil, matrixErrorf(opEigen, err)
	}
	for i = 0; i < n; i++ {
		values[i] = a[order[i]*n+order[i]]
		for r = 0; r < n; r++ {
			vectors.data[r*n+i] = q[r*n+order[i]]
		}
	}

	return values, vectors, nil
}

// maxOffDiagonal returns max_{p<q} |a[p,q]| of a symmetric n×n row-major slice.
func maxOffDiagonal(a []float64, n int) float64 {
	var best float64
	var p, c int
	for p = 0; p < n; p++ {
		for c = p + 1; c < n; c++ {
			if v := math.Abs(a[p*n+c]); v > best {
				best = v
			}
		}
	}

	return best
}

// rotate applies the Jacobi rotation that zeroes a[p,q] to the symmetric
// working matrix a and accumulates it into q (both n×n, row-major).
func rotate(a, q []float64, n, p, c int) {
	app, acc, apc := a[p*n+p], a[c*n+c], a[p*n+c]

	theta := (acc - app) / (2 * apc)
	t := math.Copysign(1, theta) / (math.Abs(theta) + math.Hypot(theta, 1))
	cs := 1 / math.Hypot(t, 1)
	sn := t * cs

	var r int
	var arp, arc float64
	for r = 0; r < n; r++ {
		if r == p || r == c {
			continue
		}
		arp, arc = a[r*n+p], a[r*n+c]
		a[r*n+p] = cs*arp - sn*arc
		a[p*n+r] = a[r*n+p]
		a[r*n+c] = sn*arp + cs*arc
		a[c*n+r] = a[r*n+c]
	}
	a[p*n+p] = app - t*apc
	a[c*n+c] = acc + t*apc
	a[p*n+c] = 0
	a[c*n+p] = 0

	var qrp, qrc float64
	for r = 0; r < n; r++ {
		qrp, qrc = q[r*n+p], q[r*n+c]
		q[r*n+p] = cs*qrp - sn*qrc
		q[r*n+c] = sn*qrp + cs*qrc
	}
}
