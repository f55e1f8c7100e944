// SPDX-License-Identifier: MIT

package matrix_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/rmt/matrix"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTranspose(t *testing.T) {
	m := mustDenseFrom(t, 2, 3, 1, 2, 3, 4, 5, 6)
	for _, in := range []matrix.Matrix{m, hide{m}} {
		tr, err := matrix.Transpose(in)
		require.NoError(t, err)
		assert.Equal(t, 3, tr.Rows())
		assert.Equal(t, []float64{1, 4, 2, 5, 3, 6}, rowMajor(t, tr))
	}
	_, err := matrix.Transpose(nil)
	assert.ErrorIs(t, err, matrix.ErrNilMatrix)
}

func TestMul(t *testing.T) {
	a := mustDenseFrom(t, 2, 2, 1, 2, 3, 4)
	b := mustDenseFrom(t, 2, 1, 5, 6)

	c, err := matrix.Mul(a, b)
	require.NoError(t, err)
	assert.Equal(t, []float64{17, 39}, rowMajor(t, c))

	c2, err := matrix.Mul(hide{a}, hide{b})
	require.NoError(t, err)
	assert.Equal(t, rowMajor(t, c), rowMajor(t, c2))

	_, err = matrix.Mul(b, b)
	assert.ErrorIs(t, err, matrix.ErrDimensionMismatch)
	_, err = matrix.Mul(nil, b)
	assert.ErrorIs(t, err, matrix.ErrNilMatrix)
}

func TestScale(t *testing.T) {
	m := mustDenseFrom(t, 1, 3, 1, -2, 0.5)
	s, err := matrix.Scale(m, 2)
	require.NoError(t, err)
	assert.Equal(t, []float64{2, -4, 1}, rowMajor(t, s))

	_, err = matrix.Scale(m, math.Inf(1))
	assert.ErrorIs(t, err, matrix.ErrNaNInf)
	_, err = matrix.Scale(mustDenseFrom(t, 1, 1, math.MaxFloat64), 4)
	assert.ErrorIs(t, err, matrix.ErrNaNInf)
}

func TestSymmetrize(t *testing.T) {
	m := mustDenseFrom(t, 2, 2, 1, 2, 4, 3)
	s, err := matrix.Symmetrize(m)
	require.NoError(t, err)
	assert.Equal(t, []float64{1, 3, 3, 3}, rowMajor(t, s))
	assert.NoError(t, matrix.ValidateSymmetric(s, 0))

	_, err = matrix.Symmetrize(mustDenseFrom(t, 1, 2, 0, 0))
	assert.ErrorIs(t, err, matrix.ErrNonSquare)
}

func TestGram(t *testing.T) {
	// X is 3×2; XᵀX = [[1+9+25, 2+12+30], [.., 4+16+36]].
	x := mustDenseFrom(t, 3, 2, 1, 2, 3, 4, 5, 6)
	g, err := matrix.Gram(x)
	require.NoError(t, err)
	assert.Equal(t, []float64{35, 44, 44, 56}, rowMajor(t, g))

	// Must agree with Transpose+Mul and be exactly symmetric.
	xt, err := matrix.Transpose(x)
	require.NoError(t, err)
	ref, err := matrix.Mul(xt, x)
	require.NoError(t, err)
	assert.Equal(t, rowMajor(t, ref), rowMajor(t, g))
	assert.NoError(t, matrix.ValidateSymmetric(g, 0))
}

func TestEigenKnownSpectrum(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name string
		n    int
		data []float64
		want []float64
	}{
		{"1x1", 1, []float64{-3}, []float64{-3}},
		{"diagonal unsorted", 3, []float64{3, 0, 0, 0, 1, 0, 0, 0, 2}, []float64{1, 2, 3}},
		{"2x2", 2, []float64{2, 1, 1, 2}, []float64{1, 3}},
		{"zero", 2, []float64{0, 0, 0, 0}, []float64{0, 0}},
		{"tridiagonal", 3, []float64{2, -1, 0, -1, 2, -1, 0, -1, 2},
			[]float64{2 - math.Sqrt2, 2, 2 + math.Sqrt2}},
	}
	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			m := mustDenseFrom(t, tc.n, tc.n, tc.data...)
			vals, vecs, err := matrix.Eigen(m, matrix.DefaultJacobiTolerance, matrix.DefaultJacobiSweeps)
			require.NoError(t, err)
			assert.InDeltaSlice(t, tc.want, vals, 1e-12)

			// Reconstruct A = Q diag(λ) Qᵀ and check QᵀQ = I.
			d, err := matrix.NewDense(tc.n, tc.n)
			require.NoError(t, err)
			id, err := matrix.NewDense(tc.n, tc.n)
			require.NoError(t, err)
			for k, v := range vals {
				require.NoError(t, d.Set(k, k, v))
				require.NoError(t, id.Set(k, k, 1))
			}
			qt, err := matrix.Transpose(vecs)
			require.NoError(t, err)
			qd, err := matrix.Mul(vecs, d)
			require.NoError(t, err)
			rec, err := matrix.Mul(qd, qt)
			require.NoError(t, err)
			ok, err := matrix.AllClose(rec, m, 0, 1e-12)
			require.NoError(t, err)
			assert.True(t, ok, "Q·Λ·Qᵀ =\n%v", rec)

			qtq, err := matrix.Mul(qt, vecs)
			require.NoError(t, err)
			ok, err = matrix.AllClose(qtq, id, 0, 1e-12)
			require.NoError(t, err)
			assert.True(t, ok, "QᵀQ =\n%v", qtq)
		})
	}
}

func TestEigenErrors(t *testing.T) {
	sym := mustDenseFrom(t, 2, 2, 2, 1, 1, 2)

	_, _, err := matrix.Eigen(mustDenseFrom(t, 2, 2, 1, 2, 3, 4), 1e-12, 10)
	assert.ErrorIs(t, err, matrix.ErrAsymmetry)
	_, _, err = matrix.Eigen(mustDenseFrom(t, 1, 2, 1, 2), 1e-12, 10)
	assert.ErrorIs(t, err, matrix.ErrNonSquare)
	_, _, err = matrix.Eigen(sym, 0, 10)
	assert.ErrorIs(t, err, matrix.ErrMatrixEigenFailed)
	_, _, err = matrix.Eigen(sym, 1e-12, 0)
	assert.ErrorIs(t, err, matrix.ErrMatrixEigenFailed)

	// One sweep cannot diagonalize a dense 6×6 to machine precision.
	data := make([]float64, 36)
	for i := 0; i < 6; i++ {
		for j := 0; j < 6; j++ {
			data[i*6+j] = 1 / float64(i+j+1)
		}
	}
	_, _, err = matrix.Eigen(mustDenseFrom(t, 6, 6, data...), 1e-15, 1)
	assert.ErrorIs(t, err, matrix.ErrMatrixEigenFailed)
}
