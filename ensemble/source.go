// SPDX-License-Identifier: MIT

package ensemble

import (
	"math/rand/v2"

	"gonum.org/v1/gonum/stat/distuv"
)

// DefaultSeed replaces a zero seed in NewSource, so the zero value of a
// configuration still gives a reproducible stream.
const DefaultSeed uint64 = 1

// pcgStreamSalt decorrelates the two PCG state words derived from one seed.
const pcgStreamSalt uint64 = 0xda942042e4dd58b5

// Source yields independent standard normal variates.
//
// Implementations need not be safe for concurrent use; give each goroutine
// its own Source.
type Source interface {
	NextGaussian() float64
}

// SourceFunc adapts a plain function to the Source interface.
type SourceFunc func() float64

// NextGaussian calls f.
func (f SourceFunc) NextGaussian() float64 { return f() }

// NormalSource is a deterministic N(0,1) source backed by a PCG generator.
type NormalSource struct {
	dist distuv.Normal
}

// NewSource returns a NormalSource seeded with seed (0 means DefaultSeed).
// Two sources built from the same seed produce identical sequences.
func NewSource(seed uint64) *NormalSource {
	if seed == 0 {
		seed = DefaultSeed
	}
	hi := DeriveSeed(seed, 0)
	lo := DeriveSeed(seed^pcgStreamSalt, 1)

	return &NormalSource{
		dist: distuv.Normal{
			Mu:    0,
			Sigma: 1,
			Src:   rand.NewPCG(hi, lo),
		},
	}
}

// NextGaussian returns the next standard normal variate.
func (s *NormalSource) NextGaussian() float64 {
	return s.dist.Rand()
}

// DeriveSeed mixes a parent seed and a stream identifier into a new 64-bit
// seed with the SplitMix64 finalizer. Distinct streams of one parent give
// statistically independent seeds; the mapping is pure, so it is safe to call
// from any goroutine.
//
// Complexity: O(1).
func DeriveSeed(parent, stream uint64) uint64 {
	x := parent ^ (stream + 0x9e3779b97f4a7c15)
	x += 0x9e3779b97f4a7c15
	x = (x ^ (x >> 30)) * 0xbf58476d1ce4e5b9
	x = (x ^ (x >> 27)) * 0x94d049bb133111eb
	x ^= x >> 31

	return x
}
