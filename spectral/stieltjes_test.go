// SPDX-License-Identifier: MIT

package spectral_test

import (
	"math"
	"math/cmplx"
	"testing"

	"github.com/katalvlaran/rmt/density"
	"github.com/katalvlaran/rmt/eigen"
	"github.com/katalvlaran/rmt/ensemble"
	"github.com/katalvlaran/rmt/spectral"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStieltjesTransformTwoPoints(t *testing.T) {
	got, err := spectral.StieltjesTransform([]float64{0, 1}, 1i)
	require.NoError(t, err)
	want := 0.5 * (1/(0-1i) + 1/(1-1i))
	assert.InDelta(t, real(want), real(got), 1e-15)
	assert.InDelta(t, imag(want), imag(got), 1e-15)
	assert.InDelta(t, 0.25, real(got), 1e-15)
	assert.InDelta(t, 0.75, imag(got), 1e-15)
}

func TestStieltjesTransformErrors(t *testing.T) {
	_, err := spectral.StieltjesTransform([]float64{0, 1}, 0.5)
	assert.ErrorIs(t, err, spectral.ErrDomain)
	_, err = spectral.StieltjesTransform([]float64{0, 1}, cmplx.NaN())
	assert.ErrorIs(t, err, spectral.ErrDomain)
	_, err = spectral.StieltjesTransform(nil, 1i)
	assert.ErrorIs(t, err, spectral.ErrInsufficientData)
	_, err = spectral.StieltjesTransform([]float64{math.Inf(-1)}, 1i)
	assert.ErrorIs(t, err, spectral.ErrDomain)
}

func TestStieltjesTransformConjugateSymmetry(t *testing.T) {
	eigs := []float64{-1.5, 0.2, 0.3, 4}
	z := complex(0.7, 0.9)
	a, err := spectral.StieltjesTransform(eigs, z)
	require.NoError(t, err)
	b, err := spectral.StieltjesTransform(eigs, cmplx.Conj(z))
	require.NoError(t, err)
	assert.InDelta(t, 0, cmplx.Abs(a-cmplx.Conj(b)), 1e-15)
	assert.Greater(t, imag(a), 0.0)
}

func TestStieltjesTransformApproachesSemicircle(t *testing.T) {
	g, err := ensemble.SampleGOENormalized(ensemble.NewSource(5), 300)
	require.NoError(t, err)
	vals, err := eigen.Decompose(g)
	require.NoError(t, err)

	z := complex(0.5, 0.5)
	got, err := spectral.StieltjesTransform(vals, z)
	require.NoError(t, err)
	want, err := density.WignerSemicircleStieltjes(z, 2)
	require.NoError(t, err)
	assert.InDelta(t, 0, cmplx.Abs(got-want), 0.03)
}
