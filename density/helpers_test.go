// SPDX-License-Identifier: MIT

package density_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

// integrateEdges integrates f over [lo, hi] with the substitution
// x = lo + (hi-lo)(1-cos θ)/2 and a midpoint rule in θ. Square-root edge
// behaviour becomes smooth under this change of variables.
func integrateEdges(t *testing.T, f func(float64) (float64, error), lo, hi float64, n int) float64 {
	t.Helper()
	half := (hi - lo) / 2
	h := math.Pi / float64(n)
	var sum float64
	for i := 0; i < n; i++ {
		theta := (float64(i) + 0.5) * h
		x := lo + half*(1-math.Cos(theta))
		v, err := f(x)
		require.NoError(t, err)
		sum += v * half * math.Sin(theta)
	}

	return sum * h
}
