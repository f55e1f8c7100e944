// SPDX-License-Identifier: MIT

// Package ensemble samples the two classical real random-matrix ensembles.
//
//   - Wishart: W = XᵀX where X is p×n with i.i.d. standard normal entries.
//     After scaling by 1/p the spectrum of W approaches the Marchenko–Pastur
//     law with ratio q = n/p and σ² = 1.
//   - GOE: G = (A + Aᵀ)/√2 where A is n×n with i.i.d. standard normal entries.
//     Off-diagonal entries have variance 1 and diagonal entries variance 2;
//     after scaling by 1/√n the spectrum approaches the semicircle of radius 2.
//
// Randomness is always injected through the Source capability; the package
// holds no global generator. NewSource builds a deterministic PCG-backed
// source and DeriveSeed splits one seed into independent per-worker streams.
//
// Samplers are deterministic functions of the values drawn from the source:
// two sources producing the same sequence yield bit-identical matrices. Draw
// order is row-major over the underlying Gaussian matrix. Outputs are
// symmetric bit-for-bit because each upper-triangle entry is computed once
// and mirrored.
package ensemble
