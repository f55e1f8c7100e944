// SPDX-License-Identifier: MIT

// Package numeric holds the small shared pieces every rmt package leans on:
// the error kinds, domain guards for square roots and logarithms, the
// relative-epsilon policy for "is this gap zero", and equal-width histogram
// binning over a closed range.
//
// Nothing here allocates beyond its return values and nothing keeps state.
//
// Policy summary:
//   - Guards return the unified sentinels from errors.go; callers wrap them with
//     an operation tag and never replace them.
//   - SafeSqrt clamps tiny negative radicands produced by cancellation to 0.
//   - IsNegligible compares a difference against ε·scale, never against a bare ε.
//   - Histogram bins are [e0,e1), [e1,e2), ..., [e(k-1), ek]; the top edge is closed.
package numeric
