// SPDX-License-Identifier: MIT

// Package spectral computes diagnostics of an eigenvalue sequence.
//
// Level spacing:
//   - LevelSpacingRatios returns rᵢ = (λᵢ₊₁-λᵢ)/(λᵢ-λᵢ₋₁) for an ascending
//     sequence. A zero (or, under the relative epsilon policy, negligible)
//     denominator is reported as ErrDegenerateSpacing rather than producing
//     ±Inf or NaN.
//   - SymmetricSpacingRatios and MeanSpacingRatio use r̃ = min(s,s')/max(s,s')
//     ∈ [0,1], whose mean separates correlated (GOE, ≈0.5307) from
//     uncorrelated (Poisson, ≈0.3863) spectra without unfolding.
//
// Density:
//   - EmpiricalSpectralDensity bins the eigenvalues into equal-width bins and
//     normalizes so that Σ Values·Width = 1.
//   - StieltjesTransform evaluates m(z) = (1/n) Σ 1/(λᵢ - z) off the real axis.
//   - KolmogorovDistance and CountAboveEdge compare a spectrum with a
//     limiting law from package density.
//
// Every function validates before computing, never modifies its input, and
// returns the shared numeric sentinels (aliased here) on failure.
package spectral
