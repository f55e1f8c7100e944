// SPDX-License-Identifier: MIT

package numeric

import (
	"math"
	"slices"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// DegenerateBinWidth is the width of the single bin used when every sample has
// the same value and [min,max] collapses to a point.
const DegenerateBinWidth = 1.0

// Histogram is an equal-width partition of [Edges[0], Edges[k]] with per-bin counts.
//   - Edges has k+1 ascending entries; bin i is [Edges[i], Edges[i+1]) except the
//     last bin, which also contains Edges[k].
//   - Counts has k entries and sums to the number of samples.
//   - Width is the common bin width (Edges[k]-Edges[0])/k.
type Histogram struct {
	Edges  []float64
	Counts []float64
	Width  float64
}

// Bins returns the number of bins k.
func (h Histogram) Bins() int {
	return len(h.Counts)
}

// Index returns the bin containing x, or (-1, false) when x is outside
// [Edges[0], Edges[k]]. Edge values belong to the bin on their right, except
// the top edge which belongs to the last bin.
// Complexity: O(log k).
func (h Histogram) Index(x float64) (int, bool) {
	k := len(h.Counts)
	if k == 0 || math.IsNaN(x) || x < h.Edges[0] || x > h.Edges[k] {
		return -1, false
	}
	pos, found := slices.BinarySearch(h.Edges, x)
	if found {
		if pos == k {
			return k - 1, true // closed top edge
		}

		return pos, true
	}

	return pos - 1, true
}

// EqualWidthHistogram bins xs into k equal-width bins spanning [min(xs), max(xs)].
//
// Implementation:
//   - Stage 1: validate k ≥ 1 (ErrInvalidBinCount), len(xs) ≥ 1 (ErrInsufficientData),
//     all values finite (ErrDomain). Checks run in that order. The only other
//     failure is ErrDomain for a bin width that exceeds MaxFloat64 (k = 1 over
//     a range wider than MaxFloat64).
//   - Stage 2: if min == max, return one bin of DegenerateBinWidth centred on the value.
//   - Stage 3: lay out k+1 edges with floats.Span (top edge pinned to max),
//     or by convex interpolation lo·(1-f) + hi·f when max-min overflows; then
//     count with stat.Histogram on a sorted copy. The last divider handed to stat.Histogram is nudged one ulp above
//     max so the top edge is inclusive; the returned Edges keep the exact max.
//
// The input slice is not modified.
//
// Complexity: O(n log n) for the sorted copy, O(n + k) counting.
func EqualWidthHistogram(xs []float64, k int) (Histogram, error) {
	if k < 1 {
		return Histogram{}, ErrInvalidBinCount
	}
	if len(xs) == 0 {
		return Histogram{}, ErrInsufficientData
	}
	if !AllFinite(xs) {
		return Histogram{}, ErrDomain
	}

	lo, hi := floats.Min(xs), floats.Max(xs)
	if lo == hi {
		half := DegenerateBinWidth / 2
		return Histogram{
			Edges:  []float64{lo - half, lo + half},
			Counts: []float64{float64(len(xs))},
			Width:  DegenerateBinWidth,
		}, nil
	}

	kf := float64(k)
	width := (hi - lo) / kf
	if !IsFinite(width) {
		width = hi/kf - lo/kf // hi-lo overflows; only a single bin wider than MaxFloat64 fails below
	}
	if !IsFinite(width) {
		return Histogram{}, ErrDomain
	}

	edges := make([]float64, k+1)
	if IsFinite(hi - lo) {
		floats.Span(edges, lo, hi)
	} else {
		for i := range edges {
			f := float64(i) / kf
			edges[i] = lo*(1-f) + hi*f
		}
	}
	edges[k] = hi // Span computes lo+step*k, which may miss hi by an ulp
	dividers := slices.Clone(edges)
	dividers[k] = math.Nextafter(hi, math.Inf(1))

	sorted := slices.Clone(xs)
	slices.Sort(sorted)

	counts := stat.Histogram(nil, dividers, sorted, nil)

	return Histogram{Edges: edges, Counts: counts, Width: width}, nil
}
