// SPDX-License-Identifier: MIT

package matrix

import (
	"fmt"
	"math"
	"strings"
)

// Method tags used in Dense error wrappers.
const (
	ctxNew  = "NewDense"
	ctxFrom = "NewDenseFrom"
	ctxAt   = "At"
	ctxSet  = "Set"
)

// Formatting tokens for String.
const (
	_fmtRowOpen  = "["
	_fmtRowClose = "]\n"
	_fmtSep      = ", "
)

// DefaultValidateNaNInf is the ingestion policy of freshly constructed Dense
// matrices: Set and NewDenseFrom reject NaN and ±Inf.
const DefaultValidateNaNInf = true

// denseErrorf wraps err with the Dense method name and the offending indices,
// producing messages such as "Dense.At(3,1): matrix: index out of range".
func denseErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("Dense.%s(%d,%d): %w", method, row, col, err)
}

// Dense is a row-major matrix of float64 values.
//
// Element (i, j) lives at data[i*c + j]. The zero value is not usable;
// construct with NewDense or NewDenseFrom.
type Dense struct {
	r, c           int       // shape
	data           []float64 // row-major storage, len == r*c
	validateNaNInf bool      // reject NaN/Inf on Set
}

// NewDense allocates a zero-filled rows×cols matrix.
//
// Errors: ErrInvalidDimensions if rows ≤ 0 or cols ≤ 0.
// Complexity: O(rows*cols) time and memory.
func NewDense(rows, cols int) (*Dense, error) {
	if rows <= 0 || cols <= 0 {
		return nil, denseErrorf(ctxNew, rows, cols, ErrInvalidDimensions)
	}

	return &Dense{
		r:              rows,
		c:              cols,
		data:           make([]float64, rows*cols),
		validateNaNInf: DefaultValidateNaNInf,
	}, nil
}

// NewDenseFrom builds a rows×cols matrix from a row-major slice.
//
// Implementation:
//   - Stage 1: validate the shape (ErrInvalidDimensions) and len(data) == rows*cols
//     (ErrDimensionMismatch).
//   - Stage 2: reject any NaN/±Inf entry (ErrNaNInf) under the default policy.
//   - Stage 3: copy data so later writes by the caller do not alias the matrix.
//
// Complexity: O(rows*cols).
func NewDenseFrom(rows, cols int, data []float64) (*Dense, error) {
	m, err := NewDense(rows, cols)
	if err != nil {
		return nil, err
	}
	if len(data) != rows*cols {
		return nil, fmt.Errorf("Dense.%s: len(data)=%d want %d: %w", ctxFrom, len(data), rows*cols, ErrDimensionMismatch)
	}
	for k, v := range data {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return nil, denseErrorf(ctxFrom, k/cols, k%cols, ErrNaNInf)
		}
	}
	copy(m.data, data)

	return m, nil
}

// Rows returns the number of rows.
func (m *Dense) Rows() int { return m.r }

// Cols returns the number of columns.
func (m *Dense) Cols() int { return m.c }

// Shape returns (rows, cols).
func (m *Dense) Shape() (int, int) { return m.r, m.c }

// indexOf maps (row, col) to the flat offset or reports ErrOutOfRange.
func (m *Dense) indexOf(row, col int) (int, error) {
	if row < 0 || row >= m.r || col < 0 || col >= m.c {
		return 0, ErrOutOfRange
	}

	return row*m.c + col, nil
}

// At returns the element at (row, col).
// Errors: ErrOutOfRange wrapped with the call-site indices.
func (m *Dense) At(row, col int) (float64, error) {
	idx, err := m.indexOf(row, col)
	if err != nil {
		return 0, denseErrorf(ctxAt, row, col, err)
	}

	return m.data[idx], nil
}

// Set assigns v to (row, col).
// Errors: ErrOutOfRange, or ErrNaNInf when the NaN/Inf policy is enabled.
func (m *Dense) Set(row, col int, v float64) error {
	idx, err := m.indexOf(row, col)
	if err != nil {
		return denseErrorf(ctxSet, row, col, err)
	}
	if m.validateNaNInf && (math.IsNaN(v) || math.IsInf(v, 0)) {
		return denseErrorf(ctxSet, row, col, ErrNaNInf)
	}
	m.data[idx] = v

	return nil
}

// Clone returns a deep copy that keeps the receiver's NaN/Inf policy.
func (m *Dense) Clone() Matrix {
	return m.clone()
}

func (m *Dense) clone() *Dense {
	buf := make([]float64, len(m.data))
	copy(buf, m.data)

	return &Dense{r: m.r, c: m.c, data: buf, validateNaNInf: m.validateNaNInf}
}

// RawCopy returns a fresh row-major copy of the underlying storage.
// It is the hand-off point to external BLAS/LAPACK-style routines.
func (m *Dense) RawCopy() []float64 {
	buf := make([]float64, len(m.data))
	copy(buf, m.data)

	return buf
}

// Diagonal returns a copy of the main diagonal (length min(rows, cols)).
func (m *Dense) Diagonal() []float64 {
	n := min(m.r, m.c)
	d := make([]float64, n)
	for i := 0; i < n; i++ {
		d[i] = m.data[i*m.c+i]
	}

	return d
}

// String renders the matrix one row per line, e.g. "[1, 2]\n[3, 4]\n".
func (m *Dense) String() string {
	var b strings.Builder
	var i, j, base int
	for i = 0; i < m.r; i++ {
		b.WriteString(_fmtRowOpen)
		base = i * m.c
		for j = 0; j < m.c; j++ {
			fmt.Fprintf(&b, "%g", m.data[base+j])
			if j+1 < m.c {
				b.WriteString(_fmtSep)
			}
		}
		b.WriteString(_fmtRowClose)
	}

	return b.String()
}
