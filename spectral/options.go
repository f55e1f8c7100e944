// SPDX-License-Identifier: MIT

package spectral

import (
	"math"

	"github.com/katalvlaran/rmt/numeric"
)

// DefaultSpacingEpsilon is the relative tolerance below which a spacing is
// treated as zero: |λᵢ-λᵢ₋₁| ≤ ε·max(|λᵢ|, |λᵢ₋₁|).
const DefaultSpacingEpsilon = numeric.DefaultRelativeEpsilon

const panicSpacingEpsilonInvalid = "spectral: WithSpacingEpsilon: eps must be finite and non-negative"

// Option configures the spacing statistics.
type Option func(*Options)

// Options is the resolved configuration.
type Options struct {
	SpacingEpsilon float64
}

// WithSpacingEpsilon overrides DefaultSpacingEpsilon. eps = 0 treats only
// exactly equal neighbours as degenerate.
func WithSpacingEpsilon(eps float64) Option {
	if math.IsNaN(eps) || math.IsInf(eps, 0) || eps < 0 {
		panic(panicSpacingEpsilonInvalid)
	}

	return func(o *Options) { o.SpacingEpsilon = eps }
}

func gatherOptions(user ...Option) Options {
	o := Options{SpacingEpsilon: DefaultSpacingEpsilon}
	for _, set := range user {
		if set != nil {
			set(&o)
		}
	}

	return o
}
