// SPDX-License-Identifier: MIT

// Package numeric: unified sentinel error set.
// Every rmt package returns one of these (directly or through an alias) so
// callers can match with errors.Is regardless of which package raised it.
// DO NOT create look-alike sentinels elsewhere; alias these instead.

package numeric

import "errors"

var (
	// ErrDomain is returned when a scale, ratio or evaluation point is outside
	// the mathematical domain of the requested quantity (q ≤ 0, σ² ≤ 0, R ≤ 0,
	// NaN inputs, a real Stieltjes argument, ...).
	ErrDomain = errors.New("rmt: argument outside domain")

	// ErrInvalidDimension is returned when a requested matrix dimension is < 1.
	ErrInvalidDimension = errors.New("rmt: matrix dimensions must be >= 1")

	// ErrInsufficientData is returned when a sequence is too short for the
	// requested statistic.
	ErrInsufficientData = errors.New("rmt: insufficient data")

	// ErrDegenerateSpacing is returned when two consecutive eigenvalues coincide
	// under the epsilon policy and a spacing ratio would divide by zero.
	ErrDegenerateSpacing = errors.New("rmt: degenerate eigenvalue spacing")

	// ErrInvalidBinCount is returned when a histogram is requested with fewer than one bin.
	ErrInvalidBinCount = errors.New("rmt: bin count must be >= 1")
)
