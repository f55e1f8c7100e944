// SPDX-License-Identifier: MIT
// Package matrix_test contains shared test helpers.

package matrix_test

import (
	"testing"

	"github.com/katalvlaran/rmt/matrix"
	"github.com/stretchr/testify/require"
)

// hide wraps any Matrix to mask its concrete type, forcing the generic
// (non-*Dense) code paths in the kernels under test.
type hide struct{ matrix.Matrix }

// mustDenseFrom builds an r×c Dense from row-major data or fails the test.
func mustDenseFrom(t *testing.T, r, c int, data ...float64) *matrix.Dense {
	t.Helper()
	m, err := matrix.NewDenseFrom(r, c, data)
	require.NoError(t, err)

	return m
}

// rowMajor reads m back into a flat row-major slice.
func rowMajor(t *testing.T, m matrix.Matrix) []float64 {
	t.Helper()
	out := make([]float64, 0, m.Rows()*m.Cols())
	for i := 0; i < m.Rows(); i++ {
		for j := 0; j < m.Cols(); j++ {
			v, err := m.At(i, j)
			require.NoError(t, err)
			out = append(out, v)
		}
	}

	return out
}
