// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set.
// This file defines ONLY package-level sentinel errors used across the matrix
// package. All kernels return these sentinels (possibly wrapped with an
// operation tag) and tests check them via errors.Is.

package matrix

import "errors"

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every message is prefixed with "matrix: ..." for consistency. Wrap with
// fmt.Errorf("ctx: %w", ErrX) at the outer boundary when context helps;
// callers still match with errors.Is.
//
// ERROR PRIORITY:
// nil -> shape -> index -> dimension mismatch.

var (
	// ErrInvalidDimensions is returned when a requested shape has a negative
	// row or column count. Zero is allowed.
	ErrInvalidDimensions = errors.New("matrix: dimensions must be >= 0")

	// ErrOutOfRange indicates that a row or column index is outside valid bounds.
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrDimensionMismatch indicates incompatible dimensions between operands,
	// e.g. Mul where a.Cols != b.Rows.
	ErrDimensionMismatch = errors.New("matrix: dimension mismatch")

	// ErrNilMatrix indicates that a nil Matrix (receiver or argument) or a nil
	// *big.Int value was used.
	ErrNilMatrix = errors.New("matrix: nil matrix or value")

	// ErrRagged is returned by NewFromRows when rows have different lengths.
	ErrRagged = errors.New("matrix: ragged rows")
)
