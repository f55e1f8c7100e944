// SPDX-License-Identifier: MIT

// Package rmt is a small random matrix theory toolkit: closed-form limiting
// laws, seeded ensemble samplers and the spectral statistics used to compare
// the two.
//
// 🚀 What is in rmt?
//
//   - Limiting laws: Marchenko–Pastur and Wigner semicircle densities, CDFs
//     and Stieltjes transforms
//   - Ensembles: Wishart W = XᵀX and GOE G = (A + Aᵀ)/√2, reproducible from a seed
//   - Eigenvalues: symmetric decomposition via gonum or a pure-Go Jacobi solver
//   - Statistics: level spacing ratios, empirical spectral density, empirical
//     Stieltjes transform, Kolmogorov distance
//   - Monte-Carlo: parallel trials with results independent of the worker count
//
// Packages:
//
//	numeric/     finiteness guards, tolerances, equal-width histograms
//	matrix/      dense row-major matrices, validators, Gram, covariance, Jacobi
//	density/     Marchenko–Pastur and semicircle laws
//	ensemble/    Gaussian sources, Wishart and GOE samplers
//	eigen/       Decomposer adapter (gonum, jacobi)
//	spectral/    spacing ratios, ESD, Stieltjes transform, summaries
//	montecarlo/  trial runner and the limiting law of a run
//	cmd/rmtsim   environment-configured demo
//
// Quick example:
//
//	src := ensemble.NewSource(7)
//	w, _ := ensemble.SampleWishartNormalized(src, 100, 400)
//	eigs, _ := eigen.Decompose(w)
//	r, _ := spectral.MeanSpacingRatio(eigs)   // ≈ 0.53 for GOE-class spectra
//	s, _ := density.MarchenkoPasturSupport(0.25, 1) // [0.25, 2.25]
//
// Every function returns sentinel errors from its package; nothing logs or
// panics except option constructors given nonsense values.
//
//	go get github.com/katalvlaran/rmt
package rmt
