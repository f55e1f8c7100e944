// SPDX-License-Identifier: MIT

package eigen

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/rmt/matrix"
)

// Jacobi is a Decomposer backed by the cyclic Jacobi solver in matrix.Eigen.
type Jacobi struct {
	opts Options
}

// NewJacobi returns a pure-Go Decomposer configured by opts.
func NewJacobi(opts ...Option) *Jacobi {
	return &Jacobi{opts: gatherOptions(opts...)}
}

// Decompose returns the ascending eigenvalues of m.
// Exhausting the sweep budget yields an error matching both
// ErrDecompositionFailed and matrix.ErrMatrixEigenFailed.
// Complexity: O(n³) per sweep.
func (j *Jacobi) Decompose(m matrix.Matrix) ([]float64, error) {
	a, err := prepare(m, j.opts.SymmetryTolerance)
	if err != nil {
		return nil, eigenErrorf(opJacobi, err)
	}

	vals, _, err := matrix.Eigen(a, j.opts.Tolerance, j.opts.MaxSweeps)
	if err != nil {
		if errors.Is(err, matrix.ErrMatrixEigenFailed) {
			return nil, eigenErrorf(opJacobi, fmt.Errorf("%w: %w", ErrDecompositionFailed, err))
		}

		return nil, eigenErrorf(opJacobi, err)
	}

	return vals, nil
}
