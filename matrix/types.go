// SPDX-License-Identifier: MIT

package matrix

// Matrix is the minimal read/write contract shared by every kernel in this
// package. Indices are zero-based; implementations must return ErrOutOfRange
// (wrapped) instead of panicking on bad indices.
type Matrix interface {
	// Rows returns the number of rows.
	Rows() int

	// Cols returns the number of columns.
	Cols() int

	// At returns the element at (i, j).
	At(i, j int) (float64, error)

	// Set assigns v to (i, j).
	Set(i, j int, v float64) error

	// Clone returns a deep copy.
	Clone() Matrix
}
