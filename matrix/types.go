// SPDX-License-Identifier: MIT

// Package matrix: the public Matrix interface.
package matrix

import "math/big"

// Matrix represents a two-dimensional mutable array of integers.
// Each method enforces bounds checking and returns clear errors on misuse.
//
// Complexity notes: Rows/Cols are O(1); At/Set are O(size of the entry);
// Clone is O(rows*cols) entries.
type Matrix interface {
	// Rows returns the number of rows in the matrix.
	Rows() int

	// Cols returns the number of columns in the matrix.
	Cols() int

	// At returns a copy of the element at position (i, j).
	// Returns ErrOutOfRange if i or j is outside the shape.
	At(i, j int) (*big.Int, error)

	// Set assigns a copy of v at position (i, j).
	// Returns ErrOutOfRange for invalid indices and ErrNilMatrix for v == nil.
	Set(i, j int, v *big.Int) error

	// Clone returns a deep copy of the matrix.
	Clone() Matrix
}
