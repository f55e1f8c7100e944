// SPDX-License-Identifier: MIT

package eigen

import (
	"fmt"

	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/rmt/matrix"
	"github.com/katalvlaran/rmt/numeric"
)

// Symmetric is a Decomposer backed by gonum's mat.EigenSym.
type Symmetric struct {
	opts Options
}

// NewSymmetric returns a gonum-backed Decomposer. Only the symmetry
// tolerance option affects it.
func NewSymmetric(opts ...Option) *Symmetric {
	return &Symmetric{opts: gatherOptions(opts...)}
}

// Decompose returns the ascending eigenvalues of m.
//
// Implementation:
//   - Stage 1: validate and symmetrize (see prepare).
//   - Stage 2: wrap the row-major copy as a mat.SymDense and factorize without
//     eigenvectors; mat.EigenSym reports values in ascending order.
//   - Stage 3: reject a failed factorization or non-finite output with
//     ErrDecompositionFailed.
//
// Complexity: O(n³).
func (s *Symmetric) Decompose(m matrix.Matrix) ([]float64, error) {
	a, err := prepare(m, s.opts.SymmetryTolerance)
	if err != nil {
		return nil, eigenErrorf(opSymmetric, err)
	}

	var es mat.EigenSym
	if ok := es.Factorize(mat.NewSymDense(a.Rows(), a.RawCopy()), false); !ok {
		return nil, eigenErrorf(opSymmetric, ErrDecompositionFailed)
	}
	vals := es.Values(nil)
	if !numeric.AllFinite(vals) {
		return nil, eigenErrorf(opSymmetric, fmt.Errorf("non-finite eigenvalue: %w", ErrDecompositionFailed))
	}

	return vals, nil
}
