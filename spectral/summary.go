// SPDX-License-Identifier: MIT

package spectral

import (
	"fmt"

	"github.com/montanaflynn/stats"

	"github.com/katalvlaran/rmt/numeric"
)

// Summary describes a sample of spacing ratios.
type Summary struct {
	Count  int
	Mean   float64
	Median float64
	StdDev float64 // population standard deviation
	P05    float64 // 5th percentile (nearest rank)
	P95    float64 // 95th percentile (nearest rank)

	// MeanLog is ⟨log r⟩. For the ordered ratios of LevelSpacingRatios the
	// distribution is invariant under r → 1/r, so MeanLog ≈ 0.
	MeanLog float64
}

// SummarizeSpacingRatios summarizes ratios produced by LevelSpacingRatios or
// SymmetricSpacingRatios.
//
// Errors: ErrInsufficientData when ratios is empty; ErrDomain when any ratio
// is non-finite or ≤ 0 (a zero ratio has no logarithm).
func SummarizeSpacingRatios(ratios []float64) (Summary, error) {
	if len(ratios) == 0 {
		return Summary{}, spectralErrorf(opSummary, ErrInsufficientData)
	}

	var logSum float64
	for i, r := range ratios {
		l, err := numeric.SafeLog(r)
		if err != nil {
			return Summary{}, spectralErrorf(opSummary, fmt.Errorf("ratio %d: %w", i, err))
		}
		logSum += l
	}

	data := stats.Float64Data(ratios)
	s := Summary{Count: len(ratios), MeanLog: logSum / float64(len(ratios))}
	var err error
	if s.Mean, err = data.Mean(); err != nil {
		return Summary{}, spectralErrorf(opSummary, err)
	}
	if s.Median, err = data.Median(); err != nil {
		return Summary{}, spectralErrorf(opSummary, err)
	}
	if s.StdDev, err = data.StandardDeviation(); err != nil {
		return Summary{}, spectralErrorf(opSummary, err)
	}
	if s.P05, err = data.PercentileNearestRank(5); err != nil {
		return Summary{}, spectralErrorf(opSummary, err)
	}
	if s.P95, err = data.PercentileNearestRank(95); err != nil {
		return Summary{}, spectralErrorf(opSummary, err)
	}

	return s, nil
}
