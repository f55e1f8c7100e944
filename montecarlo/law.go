// SPDX-License-Identifier: MIT

package montecarlo

import (
	"math"

	"github.com/katalvlaran/rmt/density"
	"github.com/katalvlaran/rmt/ensemble"
)

// Law is the limiting eigenvalue distribution of a Config.
type Law struct {
	Name  string
	Lower float64 // lower support edge
	Upper float64 // upper support edge
	Atom  float64 // point mass at zero (Wishart with N > P)

	density func(float64) (float64, error)
	cdf     func(float64) (float64, error)
}

// Density evaluates the continuous part of the law at x.
func (l Law) Density(x float64) (float64, error) { return l.density(x) }

// CDF evaluates P(X ≤ x), atom included.
func (l Law) CDF(x float64) (float64, error) { return l.cdf(x) }

// Law returns the limiting law for c:
//   - Wishart: Marchenko–Pastur with q = N/P and σ² = 1 (normalized) or P.
//   - GOE: semicircle with R = 2 (normalized) or 2√N.
func (c Config) Law() (Law, error) {
	if err := c.Validate(); err != nil {
		return Law{}, err
	}

	if c.Ensemble == GOE {
		radius := 2.0
		if !c.Normalize {
			radius = 2 * math.Sqrt(float64(c.N))
		}

		return Law{
			Name:    "semicircle",
			Lower:   -radius,
			Upper:   radius,
			density: func(x float64) (float64, error) { return density.WignerSemicircleDensity(x, radius) },
			cdf:     func(x float64) (float64, error) { return density.WignerSemicircleCDF(x, radius) },
		}, nil
	}

	q, err := ensemble.WishartRatio(c.N, c.P)
	if err != nil {
		return Law{}, err
	}
	sigma2 := 1.0
	if !c.Normalize {
		sigma2 = float64(c.P)
	}
	s, err := density.MarchenkoPasturSupport(q, sigma2)
	if err != nil {
		return Law{}, err
	}

	return Law{
		Name:    "marchenko-pastur",
		Lower:   s.Lower,
		Upper:   s.Upper,
		Atom:    s.Atom,
		density: func(x float64) (float64, error) { return density.MarchenkoPasturDensity(x, q, sigma2) },
		cdf:     func(x float64) (float64, error) { return density.MarchenkoPasturCDF(x, q, sigma2) },
	}, nil
}
