// SPDX-License-Identifier: MIT

package eigen

import (
	"errors"
	"fmt"
)

var (
	// ErrDecompositionFailed indicates that the underlying solver did not
	// converge or produced non-finite eigenvalues.
	ErrDecompositionFailed = errors.New("eigen: decomposition failed")

	// ErrUnknownSolver is returned by ByName for an unrecognized solver name.
	ErrUnknownSolver = errors.New("eigen: unknown solver")
)

// Operation tags.
const (
	opSymmetric  = "Symmetric.Decompose"
	opJacobi     = "Jacobi.Decompose"
	opCovariance = "CovarianceSpectrum"
	opByName     = "ByName"
)

func eigenErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}
