// SPDX-License-Identifier: MIT
// Package eigen: functional options shared by every Decomposer.
//
// Defaults live in the Default* constants and are resolved by gatherOptions.
// Option constructors panic on nonsensical values (negative tolerances, a
// zero sweep budget); those are programmer errors, not runtime conditions.

package eigen

import (
	"math"

	"github.com/katalvlaran/rmt/matrix"
)

const (
	// DefaultSymmetryTolerance demands bit-exact symmetry. Every sampler in
	// this module produces exactly symmetric matrices.
	DefaultSymmetryTolerance = 0.0

	// DefaultTolerance is the relative convergence threshold of the Jacobi
	// solver. Ignored by Symmetric.
	DefaultTolerance = matrix.DefaultJacobiTolerance

	// DefaultMaxSweeps bounds the Jacobi sweep count. Ignored by Symmetric.
	DefaultMaxSweeps = matrix.DefaultJacobiSweeps
)

const (
	panicSymmetryTolInvalid = "eigen: WithSymmetryTolerance: tol must be finite and non-negative"
	panicToleranceInvalid   = "eigen: WithTolerance: tol must be finite and > 0"
	panicMaxSweepsInvalid   = "eigen: WithMaxSweeps: sweeps must be >= 1"
)

// Option configures a Decomposer.
type Option func(*Options)

// Options is the resolved configuration of a Decomposer.
type Options struct {
	SymmetryTolerance float64 // max |A[i,j]-A[j,i]| accepted
	Tolerance         float64 // Jacobi relative off-diagonal threshold
	MaxSweeps         int     // Jacobi sweep budget
}

// WithSymmetryTolerance accepts inputs whose mirrored entries differ by at
// most tol; such inputs are symmetrized before solving.
func WithSymmetryTolerance(tol float64) Option {
	if math.IsNaN(tol) || math.IsInf(tol, 0) || tol < 0 {
		panic(panicSymmetryTolInvalid)
	}

	return func(o *Options) { o.SymmetryTolerance = tol }
}

// WithTolerance sets the Jacobi convergence threshold.
func WithTolerance(tol float64) Option {
	if math.IsNaN(tol) || math.IsInf(tol, 0) || tol <= 0 {
		panic(panicToleranceInvalid)
	}

	return func(o *Options) { o.Tolerance = tol }
}

// WithMaxSweeps sets the Jacobi sweep budget.
func WithMaxSweeps(sweeps int) Option {
	if sweeps < 1 {
		panic(panicMaxSweepsInvalid)
	}

	return func(o *Options) { o.MaxSweeps = sweeps }
}

// gatherOptions applies user options over the defaults, last writer wins.
func gatherOptions(user ...Option) Options {
	o := Options{
		SymmetryTolerance: DefaultSymmetryTolerance,
		Tolerance:         DefaultTolerance,
		MaxSweeps:         DefaultMaxSweeps,
	}
	for _, set := range user {
		if set != nil {
			set(&o)
		}
	}

	return o
}
