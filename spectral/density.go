// SPDX-License-Identifier: MIT

package spectral

import (
	"gonum.org/v1/gonum/floats"

	"github.com/katalvlaran/rmt/numeric"
)

// Density is a normalized histogram estimate of a spectral density.
//
//   - Edges: k+1 ascending bin edges; bins are [e₀,e₁), …, [e_{k-1}, e_k].
//   - Centers: k bin midpoints.
//   - Values: k densities, count/(n·Width).
//   - Width: common bin width.
//
// Σ Values[i]·Width == 1 up to rounding.
type Density struct {
	Edges   []float64
	Centers []float64
	Values  []float64
	Width   float64
}

// Bins returns the number of bins.
func (d Density) Bins() int {
	return len(d.Values)
}

// At returns the estimated density at x, or 0 outside [Edges[0], Edges[k]].
func (d Density) At(x float64) float64 {
	h := numeric.Histogram{Edges: d.Edges, Counts: d.Values, Width: d.Width}
	if i, ok := h.Index(x); ok {
		return d.Values[i]
	}

	return 0
}

// Mass returns Σ Values·Width, which is 1 for any estimate built by
// EmpiricalSpectralDensity.
func (d Density) Mass() float64 {
	return floats.Sum(d.Values) * d.Width
}

// EmpiricalSpectralDensity estimates the density of eigs with bins
// equal-width bins over [min, max].
//
// Implementation:
//   - Stage 1: validate bins ≥ 1 (ErrInvalidBinCount, checked first),
//     len(eigs) ≥ 1 (ErrInsufficientData) and finiteness (ErrDomain).
//   - Stage 2: count with numeric.EqualWidthHistogram; the top edge is closed
//     so max lands in the last bin.
//   - Stage 3: Values[i] = count[i] / (n·Width), Centers[i] = (eᵢ+eᵢ₊₁)/2.
//
// Behavior highlights:
//   - eigs may be in any order and is not modified.
//   - If min == max the result is a single bin of width 1 centred on that
//     value with density 1, whatever bins is.
//
// Example: [0, 0, 1, 2, 3] with 3 bins gives Values [0.4, 0.2, 0.4].
//
// Complexity: O(n log n + k).
func EmpiricalSpectralDensity(eigs []float64, bins int) (Density, error) {
	h, err := numeric.EqualWidthHistogram(eigs, bins)
	if err != nil {
		return Density{}, spectralErrorf(opESD, err)
	}

	k := h.Bins()
	n := float64(len(eigs))
	d := Density{
		Edges:   h.Edges,
		Centers: make([]float64, k),
		Values:  make([]float64, k),
		Width:   h.Width,
	}
	for i := 0; i < k; i++ {
		d.Centers[i] = 0.5*h.Edges[i] + 0.5*h.Edges[i+1]
		d.Values[i] = h.Counts[i] / n / h.Width
	}

	return d, nil
}
