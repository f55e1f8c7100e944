// SPDX-License-Identifier: MIT

// Package matrix provides the dense real matrix used throughout rmt.
//
// The package offers:
//
//   - Dense, a row-major float64 matrix with bounds-checked At/Set and an
//     optional NaN/Inf ingestion policy.
//   - Validators (ValidateNotNil, ValidateSquare, ValidateSymmetric,
//     ValidateFinite) that return wrapped sentinels for errors.Is matching.
//   - The small linear-algebra kernel the random-matrix code needs: Transpose,
//     Mul, Scale, Add, AllClose, Gram (XᵀX with exact symmetry), and a cyclic Jacobi
//     eigen-solver for symmetric input.
//   - Column statistics: CenterColumns and Covariance.
//
// Every operation is deterministic: loops run in fixed row-major order and no
// package-level state is mutated. Results are always fresh allocations; inputs
// are never modified.
package matrix
