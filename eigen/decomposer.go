// SPDX-License-Identifier: MIT

package eigen

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/rmt/matrix"
)

// Decomposer computes the eigenvalues of a real symmetric matrix.
//
// Contract: the result has length n, is sorted ascending, is freshly
// allocated, and contains no NaN for finite symmetric input. Errors wrap
// matrix.ErrNilMatrix, matrix.ErrNonSquare, matrix.ErrNaNInf,
// matrix.ErrAsymmetry or ErrDecompositionFailed.
type Decomposer interface {
	Decompose(m matrix.Matrix) ([]float64, error)
}

// Solver names accepted by ByName.
const (
	SolverGonum  = "gonum"
	SolverJacobi = "jacobi"
)

// Default returns the default Decomposer, a Symmetric with default options.
func Default() Decomposer {
	return NewSymmetric()
}

// Decompose returns the ascending eigenvalues of m using Default().
func Decompose(m matrix.Matrix) ([]float64, error) {
	return Default().Decompose(m)
}

// ByName returns the Decomposer registered under name (case-insensitive):
// SolverGonum or SolverJacobi.
func ByName(name string, opts ...Option) (Decomposer, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case SolverGonum:
		return NewSymmetric(opts...), nil
	case SolverJacobi:
		return NewJacobi(opts...), nil
	}

	return nil, eigenErrorf(opByName, fmt.Errorf("%q: %w", name, ErrUnknownSolver))
}

// prepare validates m in the documented order (nil, square, finite,
// symmetric) and returns an exactly symmetric *Dense copy to solve.
func prepare(m matrix.Matrix, symTol float64) (*matrix.Dense, error) {
	if err := matrix.ValidateSquare(m); err != nil {
		return nil, err
	}
	if err := matrix.ValidateFinite(m); err != nil {
		return nil, err
	}
	if err := matrix.ValidateSymmetric(m, symTol); err != nil {
		return nil, err
	}

	return matrix.Symmetrize(m)
}
