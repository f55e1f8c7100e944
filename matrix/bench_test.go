// SPDX-License-Identifier: MIT

package matrix_test

import (
	"math/rand/v2"
	"testing"

	"github.com/katalvlaran/rmt/matrix"
)

func benchSymmetric(b *testing.B, n int) *matrix.Dense {
	b.Helper()
	rng := rand.New(rand.NewPCG(1, 2))
	data := make([]float64, n*n)
	for i := range data {
		data[i] = rng.NormFloat64()
	}
	x, err := matrix.NewDenseFrom(n, n, data)
	if err != nil {
		b.Fatal(err)
	}
	g, err := matrix.Gram(x)
	if err != nil {
		b.Fatal(err)
	}

	return g
}

func BenchmarkGram64(b *testing.B) {
	x := benchSymmetric(b, 64)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = matrix.Gram(x)
	}
}

func BenchmarkEigenJacobi64(b *testing.B) {
	a := benchSymmetric(b, 64)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _, _ = matrix.Eigen(a, matrix.DefaultJacobiTolerance, matrix.DefaultJacobiSweeps)
	}
}
