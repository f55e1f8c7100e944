// SPDX-License-Identifier: MIT

package matrix_test

import (
	"testing"

	"github.com/katalvlaran/rmt/matrix"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCenterColumns(t *testing.T) {
	x := mustDenseFrom(t, 3, 2, 1, 10, 2, 20, 3, 30)
	xc, means, err := matrix.CenterColumns(x)
	require.NoError(t, err)
	assert.Equal(t, []float64{2, 20}, means)
	assert.Equal(t, []float64{-1, -10, 0, 0, 1, 10}, rowMajor(t, xc))

	// Input untouched.
	assert.Equal(t, []float64{1, 10, 2, 20, 3, 30}, rowMajor(t, x))
}

func TestCovariance(t *testing.T) {
	x := mustDenseFrom(t, 3, 2, 1, 10, 2, 20, 3, 30)
	cov, err := matrix.Covariance(hide{x})
	require.NoError(t, err)
	// var(col0)=1, var(col1)=100, cov=10.
	assert.InDeltaSlice(t, []float64{1, 10, 10, 100}, rowMajor(t, cov), 1e-12)
	assert.NoError(t, matrix.ValidateSymmetric(cov, 0))

	_, err = matrix.Covariance(mustDenseFrom(t, 1, 2, 1, 2))
	assert.ErrorIs(t, err, matrix.ErrInvalidDimensions)
	_, err = matrix.Covariance(nil)
	assert.ErrorIs(t, err, matrix.ErrNilMatrix)
}
