// SPDX-License-Identifier: MIT

// Package eigen adapts symmetric eigen-solvers to a single capability,
// Decomposer, so the spectral code never depends on a concrete solver.
//
// Two implementations are provided:
//
//   - Symmetric, backed by gonum's mat.EigenSym (LAPACK dsyev path). It is
//     the default returned by Default.
//   - Jacobi, the pure-Go cyclic Jacobi solver from the matrix package. It is
//     slower but has no external numeric kernel and is fully deterministic.
//
// Both run the same validation first (non-nil, square, finite, symmetric
// within the configured tolerance) and both return eigenvalues in ascending
// order in a freshly allocated slice of length n. When a non-zero symmetry
// tolerance is configured the input is replaced by (A + Aᵀ)/2 before solving.
//
// Options follow the functional pattern used elsewhere in the module:
//
//	dec := eigen.NewJacobi(eigen.WithTolerance(1e-14), eigen.WithMaxSweeps(100))
//	vals, err := dec.Decompose(m)
package eigen
