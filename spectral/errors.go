// SPDX-License-Identifier: MIT

package spectral

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/rmt/numeric"
)

var (
	// ErrDomain reports non-finite input or a real Stieltjes argument.
	ErrDomain = numeric.ErrDomain

	// ErrInsufficientData reports too few eigenvalues for the statistic.
	ErrInsufficientData = numeric.ErrInsufficientData

	// ErrDegenerateSpacing reports a zero spacing denominator.
	ErrDegenerateSpacing = numeric.ErrDegenerateSpacing

	// ErrInvalidBinCount reports a histogram bin count < 1.
	ErrInvalidBinCount = numeric.ErrInvalidBinCount

	// ErrUnsorted reports an eigenvalue sequence that is not ascending where
	// ascending order is required.
	ErrUnsorted = errors.New("spectral: eigenvalues not in ascending order")
)

// Operation tags.
const (
	opRatios     = "LevelSpacingRatios"
	opSymRatios  = "SymmetricSpacingRatios"
	opMeanRatio  = "MeanSpacingRatio"
	opESD        = "EmpiricalSpectralDensity"
	opStieltjes  = "StieltjesTransform"
	opSummary    = "SummarizeSpacingRatios"
	opKolmogorov = "KolmogorovDistance"
	opAboveEdge  = "CountAboveEdge"
)

func spectralErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}
