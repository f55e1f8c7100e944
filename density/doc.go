// SPDX-License-Identifier: MIT

// Package density evaluates the limiting eigenvalue laws of random matrix
// theory.
//
// Two laws are covered:
//
//   - Marchenko–Pastur, the limit of the spectrum of a sample covariance
//     matrix with aspect ratio q and entry variance σ². Its support is
//     [σ²(1-√q)², σ²(1+√q)²]; for q > 1 an atom of mass 1-1/q sits at zero.
//   - Wigner semicircle of radius R, the limit of a scaled Wigner/GOE
//     spectrum: f(x) = (2/(πR²))·√(R²-x²) on [-R, R].
//
// For each law the package exposes the density, the cumulative distribution
// function and the Stieltjes transform m(z) = ∫ f(x)/(x-z) dx.
//
// All functions are pure: they validate their parameters up front, return
// numeric.ErrDomain (aliased here as ErrDomain) on bad input, and never return
// NaN for in-domain arguments. Points outside the support are not errors;
// they simply have density zero.
package density
