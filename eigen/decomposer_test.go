// SPDX-License-Identifier: MIT

package eigen_test

import (
	"math"
	"slices"
	"testing"

	"github.com/katalvlaran/rmt/eigen"
	"github.com/katalvlaran/rmt/ensemble"
	"github.com/katalvlaran/rmt/matrix"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// solvers lists every Decomposer so that each property runs against both.
func solvers() map[string]eigen.Decomposer {
	return map[string]eigen.Decomposer{
		eigen.SolverGonum:  eigen.NewSymmetric(),
		eigen.SolverJacobi: eigen.NewJacobi(),
	}
}

// hide masks the concrete *Dense type.
type hide struct{ matrix.Matrix }

func mustDense(t *testing.T, n int, data ...float64) *matrix.Dense {
	t.Helper()
	m, err := matrix.NewDenseFrom(n, n, data)
	require.NoError(t, err)

	return m
}

func TestDecomposeKnownSpectra(t *testing.T) {
	t.Parallel()
	cases := []struct {
		name string
		n    int
		data []float64
		want []float64
	}{
		{"scalar", 1, []float64{4}, []float64{4}},
		{"diag", 3, []float64{5, 0, 0, 0, -1, 0, 0, 0, 2}, []float64{-1, 2, 5}},
		{"2x2", 2, []float64{2, 1, 1, 2}, []float64{1, 3}},
		{"laplacian", 3, []float64{1, -1, 0, -1, 2, -1, 0, -1, 1}, []float64{0, 1, 3}},
	}
	for name, dec := range solvers() {
		dec := dec
		for _, tc := range cases {
			tc := tc
			t.Run(name+"/"+tc.name, func(t *testing.T) {
				t.Parallel()
				m := mustDense(t, tc.n, tc.data...)
				vals, err := dec.Decompose(m)
				require.NoError(t, err)
				assert.InDeltaSlice(t, tc.want, vals, 1e-12)

				vals, err = dec.Decompose(hide{m})
				require.NoError(t, err)
				assert.InDeltaSlice(t, tc.want, vals, 1e-12)
			})
		}
	}
}

func TestDecomposeValidation(t *testing.T) {
	asym := mustDense(t, 2, 1, 2, 2.5, 1)
	rect, err := matrix.NewDense(2, 3)
	require.NoError(t, err)

	for name, dec := range solvers() {
		_, err = dec.Decompose(nil)
		assert.ErrorIs(t, err, matrix.ErrNilMatrix, name)
		_, err = dec.Decompose(rect)
		assert.ErrorIs(t, err, matrix.ErrNonSquare, name)
		_, err = dec.Decompose(asym)
		assert.ErrorIs(t, err, matrix.ErrAsymmetry, name)
	}
}

func TestDecomposeSymmetryTolerance(t *testing.T) {
	m := mustDense(t, 2, 2, 1, 1+1e-10, 2)
	for _, dec := range []eigen.Decomposer{
		eigen.NewSymmetric(eigen.WithSymmetryTolerance(1e-8)),
		eigen.NewJacobi(eigen.WithSymmetryTolerance(1e-8)),
	} {
		vals, err := dec.Decompose(m)
		require.NoError(t, err)
		assert.InDeltaSlice(t, []float64{1, 3}, vals, 1e-9)
	}
}

func TestSolversAgreeOnGOE(t *testing.T) {
	g, err := ensemble.SampleGOENormalized(ensemble.NewSource(99), 60)
	require.NoError(t, err)

	a, err := eigen.NewSymmetric().Decompose(g)
	require.NoError(t, err)
	b, err := eigen.NewJacobi().Decompose(g)
	require.NoError(t, err)

	require.Len(t, a, 60)
	assert.True(t, slices.IsSorted(a))
	assert.True(t, slices.IsSorted(b))
	assert.InDeltaSlice(t, a, b, 1e-10)

	// Trace is preserved.
	var trace, sum float64
	for _, d := range g.Diagonal() {
		trace += d
	}
	for _, v := range a {
		sum += v
	}
	assert.InDelta(t, trace, sum, 1e-10)
}

func TestJacobiBudgetExhausted(t *testing.T) {
	g, err := ensemble.SampleGOE(ensemble.NewSource(3), 12)
	require.NoError(t, err)
	_, err = eigen.NewJacobi(eigen.WithMaxSweeps(1), eigen.WithTolerance(1e-15)).Decompose(g)
	assert.ErrorIs(t, err, eigen.ErrDecompositionFailed)
	assert.ErrorIs(t, err, matrix.ErrMatrixEigenFailed)
}

func TestDefaultAndPackageDecompose(t *testing.T) {
	m := mustDense(t, 2, 0, 1, 1, 0)
	vals, err := eigen.Decompose(m)
	require.NoError(t, err)
	assert.InDeltaSlice(t, []float64{-1, 1}, vals, 1e-14)
	assert.IsType(t, &eigen.Symmetric{}, eigen.Default())
}

func TestByName(t *testing.T) {
	d, err := eigen.ByName("Jacobi")
	require.NoError(t, err)
	assert.IsType(t, &eigen.Jacobi{}, d)

	d, err = eigen.ByName(" gonum ")
	require.NoError(t, err)
	assert.IsType(t, &eigen.Symmetric{}, d)

	_, err = eigen.ByName("lapack")
	assert.ErrorIs(t, err, eigen.ErrUnknownSolver)
}

func TestOptionPanics(t *testing.T) {
	assert.Panics(t, func() { eigen.WithSymmetryTolerance(-1) })
	assert.Panics(t, func() { eigen.WithSymmetryTolerance(math.NaN()) })
	assert.Panics(t, func() { eigen.WithTolerance(0) })
	assert.Panics(t, func() { eigen.WithMaxSweeps(0) })
	assert.NotPanics(t, func() { eigen.WithTolerance(1e-10) })
}
