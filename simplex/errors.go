// SPDX-License-Identifier: MIT
// Package: simplex
//
// errors.go: sentinel errors for the simplex package.
//
// Error policy:
//   • Only sentinel variables (package-level) are exposed.
//   • Callers MUST use errors.Is(err, ErrX) to branch on semantics.
//   • Implementations attach the offending face index with %w wrapping.

package simplex

import (
	"errors"
	"fmt"
)

// ErrEmptyFace indicates a face with no vertices. The empty face is never
// stored in a complex.
var ErrEmptyFace = errors.New("simplex: empty face")

// ErrNegativeVertex indicates a vertex label below zero.
var ErrNegativeVertex = errors.New("simplex: negative vertex label")

// ErrDuplicateVertex indicates a vertex label repeated inside one face.
var ErrDuplicateVertex = errors.New("simplex: duplicate vertex label in face")

// faceErrorf wraps err with the method name and the index of the face that
// triggered it: "<method>: face <i> <face>: <sentinel>".
func faceErrorf(method string, i int, f Face, err error) error {
	return fmt.Errorf("%s: face %d %v: %w", method, i, []int(f), err)
}
