// SPDX-License-Identifier: MIT

package spectral

import (
	"fmt"
	"math"

	"github.com/montanaflynn/stats"

	"github.com/katalvlaran/rmt/numeric"
)

// Reference values of the mean symmetric spacing ratio ⟨r̃⟩.
const (
	// GOEMeanRatio is ⟨r̃⟩ for large GOE matrices.
	GOEMeanRatio = 0.5307

	// PoissonMeanRatio is ⟨r̃⟩ = 2·ln 2 - 1 for uncorrelated levels.
	PoissonMeanRatio = 2*math.Ln2 - 1
)

// checkAscending validates a finite, ascending sequence of at least 3 values.
// Checks run in the order length, finiteness, ordering.
func checkAscending(eigs []float64) error {
	if len(eigs) < 3 {
		return fmt.Errorf("n=%d: %w", len(eigs), ErrInsufficientData)
	}
	if !numeric.AllFinite(eigs) {
		return ErrDomain
	}
	for i := 1; i < len(eigs); i++ {
		if eigs[i] < eigs[i-1] {
			return fmt.Errorf("index %d: %w", i, ErrUnsorted)
		}
	}

	return nil
}

// degenerate reports whether the gap between lo and hi is negligible.
func degenerate(lo, hi, eps float64) bool {
	return numeric.IsNegligible(hi-lo, numeric.MaxAbs(lo, hi), eps)
}

// LevelSpacingRatios returns the n-2 ratios of consecutive spacings
//
//	rᵢ = (λᵢ₊₁ - λᵢ) / (λᵢ - λᵢ₋₁),  i = 1..n-2
//
// of an ascending eigenvalue sequence.
//
// Implementation:
//   - Stage 1: validate n ≥ 3 (ErrInsufficientData), finite values (ErrDomain)
//     and ascending order (ErrUnsorted).
//   - Stage 2: reject any degenerate denominator (ErrDegenerateSpacing) before
//     producing output; a gap g = λᵢ-λᵢ₋₁ is degenerate when g == 0 or
//     |g| ≤ ε·max(|λᵢ|, |λᵢ₋₁|). Numerators may be zero.
//   - Stage 3: fill the result.
//
// Example: [1, 2, 4, 7] gives [2, 1.5].
//
// Complexity: O(n).
func LevelSpacingRatios(eigs []float64, opts ...Option) ([]float64, error) {
	if err := checkAscending(eigs); err != nil {
		return nil, spectralErrorf(opRatios, err)
	}
	o := gatherOptions(opts...)
	n := len(eigs)
	for i := 1; i < n-1; i++ {
		if degenerate(eigs[i-1], eigs[i], o.SpacingEpsilon) {
			return nil, spectralErrorf(opRatios, fmt.Errorf("gap %d: %w", i, ErrDegenerateSpacing))
		}
	}

	ratios := make([]float64, n-2)
	for i := 1; i < n-1; i++ {
		ratios[i-1] = (eigs[i+1] - eigs[i]) / (eigs[i] - eigs[i-1])
	}

	return ratios, nil
}

// SymmetricSpacingRatios returns r̃ = min(s, s')/max(s, s') ∈ [0, 1] for each
// pair of consecutive spacings s = λᵢ-λᵢ₋₁, s' = λᵢ₊₁-λᵢ.
//
// Pairs containing a degenerate spacing are skipped, so the result may be
// shorter than n-2. If every pair is skipped the call fails with
// ErrDegenerateSpacing.
//
// Errors: ErrInsufficientData, ErrDomain, ErrUnsorted, ErrDegenerateSpacing.
// Complexity: O(n).
func SymmetricSpacingRatios(eigs []float64, opts ...Option) ([]float64, error) {
	if err := checkAscending(eigs); err != nil {
		return nil, spectralErrorf(opSymRatios, err)
	}
	o := gatherOptions(opts...)
	n := len(eigs)
	ratios := make([]float64, 0, n-2)
	var s, t float64
	for i := 1; i < n-1; i++ {
		if degenerate(eigs[i-1], eigs[i], o.SpacingEpsilon) || degenerate(eigs[i], eigs[i+1], o.SpacingEpsilon) {
			continue
		}
		s, t = eigs[i]-eigs[i-1], eigs[i+1]-eigs[i]
		ratios = append(ratios, math.Min(s, t)/math.Max(s, t))
	}
	if len(ratios) == 0 {
		return nil, spectralErrorf(opSymRatios, ErrDegenerateSpacing)
	}

	return ratios, nil
}

// MeanSpacingRatio returns ⟨r̃⟩, the mean of SymmetricSpacingRatios. Compare
// with GOEMeanRatio and PoissonMeanRatio.
func MeanSpacingRatio(eigs []float64, opts ...Option) (float64, error) {
	ratios, err := SymmetricSpacingRatios(eigs, opts...)
	if err != nil {
		return 0, spectralErrorf(opMeanRatio, err)
	}
	mean, err := stats.Mean(ratios)
	if err != nil {
		return 0, spectralErrorf(opMeanRatio, err)
	}

	return mean, nil
}
