// SPDX-License-Identifier: MIT

package numeric_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/rmt/numeric"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEqualWidthHistogram_Errors(t *testing.T) {
	t.Parallel()

	_, err := numeric.EqualWidthHistogram([]float64{1, 2}, 0)
	assert.ErrorIs(t, err, numeric.ErrInvalidBinCount)

	// bin count is checked before data length
	_, err = numeric.EqualWidthHistogram(nil, -1)
	assert.ErrorIs(t, err, numeric.ErrInvalidBinCount)

	_, err = numeric.EqualWidthHistogram(nil, 3)
	assert.ErrorIs(t, err, numeric.ErrInsufficientData)

	_, err = numeric.EqualWidthHistogram([]float64{1, math.NaN()}, 3)
	assert.ErrorIs(t, err, numeric.ErrDomain)

	// one bin wider than MaxFloat64 has no representable width
	_, err = numeric.EqualWidthHistogram([]float64{-math.MaxFloat64, math.MaxFloat64}, 1)
	assert.ErrorIs(t, err, numeric.ErrDomain)
}

func TestEqualWidthHistogram_HugeRange(t *testing.T) {
	t.Parallel()

	h, err := numeric.EqualWidthHistogram([]float64{1e308, -4e307, 0, -1e308}, 4)
	require.NoError(t, err)
	require.Len(t, h.Edges, 5)
	assert.Equal(t, -1e308, h.Edges[0])
	assert.InEpsilon(t, -5e307, h.Edges[1], 1e-15)
	assert.Zero(t, h.Edges[2])
	assert.InEpsilon(t, 5e307, h.Edges[3], 1e-15)
	assert.Equal(t, 1e308, h.Edges[4])
	assert.Equal(t, []float64{1, 1, 1, 1}, h.Counts)
	assert.Equal(t, 5e307, h.Width)

	h, err = numeric.EqualWidthHistogram([]float64{-math.MaxFloat64, math.MaxFloat64}, 2)
	require.NoError(t, err)
	assert.Equal(t, math.MaxFloat64, h.Width)
	assert.Equal(t, []float64{1, 1}, h.Counts)
}

func TestEqualWidthHistogram_HalfOpenBins(t *testing.T) {
	t.Parallel()

	xs := []float64{3, 0, 1, 2, 0}
	h, err := numeric.EqualWidthHistogram(xs, 3)
	require.NoError(t, err)

	assert.Equal(t, []float64{0, 1, 2, 3}, h.Edges)
	assert.Equal(t, []float64{2, 1, 2}, h.Counts, "[0,1) [1,2) [2,3]")
	assert.Equal(t, 1.0, h.Width)
	assert.Equal(t, 3, h.Bins())
	assert.Equal(t, []float64{3, 0, 1, 2, 0}, xs, "input must not be reordered")
}

func TestEqualWidthHistogram_Degenerate(t *testing.T) {
	t.Parallel()

	h, err := numeric.EqualWidthHistogram([]float64{2.5, 2.5, 2.5}, 7)
	require.NoError(t, err)
	assert.Equal(t, []float64{2, 3}, h.Edges)
	assert.Equal(t, []float64{3}, h.Counts)
	assert.Equal(t, numeric.DegenerateBinWidth, h.Width)
}

func TestEqualWidthHistogram_CountsSumToN(t *testing.T) {
	t.Parallel()

	xs := make([]float64, 1000)
	for i := range xs {
		xs[i] = math.Sin(float64(i)) * 10
	}
	h, err := numeric.EqualWidthHistogram(xs, 17)
	require.NoError(t, err)

	var total float64
	for _, c := range h.Counts {
		total += c
	}
	assert.Equal(t, float64(len(xs)), total)
	assert.Len(t, h.Edges, 18)
}

func TestHistogram_Index(t *testing.T) {
	t.Parallel()

	h, err := numeric.EqualWidthHistogram([]float64{0, 3}, 3)
	require.NoError(t, err)

	tests := []struct {
		x      float64
		want   int
		inside bool
	}{
		{-0.1, -1, false},
		{0, 0, true},
		{0.5, 0, true},
		{1, 1, true},
		{2.999, 2, true},
		{3, 2, true},
		{3.1, -1, false},
		{math.NaN(), -1, false},
	}
	for _, tc := range tests {
		got, ok := h.Index(tc.x)
		assert.Equal(t, tc.want, got, "x=%v", tc.x)
		assert.Equal(t, tc.inside, ok, "x=%v", tc.x)
	}
}
