// SPDX-License-Identifier: MIT
// Package: complexes
//
// errors.go: sentinel errors for the complexes package.
//
// Error policy:
//   • Only sentinel variables are exposed; callers use errors.Is.
//   • Constructors attach method context with %w.
//   • Constructors never panic; option constructors (WithX) may.

package complexes

import (
	"errors"
	"fmt"
)

// ErrTooFewVertices indicates a size parameter below the constructor minimum.
var ErrTooFewVertices = errors.New("complexes: parameter too small")

// ErrInvalidProbability indicates a probability outside [0,1].
var ErrInvalidProbability = errors.New("complexes: probability out of range")

// ErrNeedRandSource indicates a random constructor ran without WithSeed/WithRand.
var ErrNeedRandSource = errors.New("complexes: rng is required")

// ErrBadLabel indicates a label scheme produced a negative or repeated label.
var ErrBadLabel = errors.New("complexes: label scheme is not injective and non-negative")

// ErrUnknownComplex indicates Named was given a name not in the catalog.
var ErrUnknownComplex = errors.New("complexes: unknown complex")

// ErrConstructFailed indicates a nil constructor was passed to Build.
var ErrConstructFailed = errors.New("complexes: construction failed")

// ErrDecode indicates a document that is not a face list.
var ErrDecode = errors.New("complexes: cannot decode document")

// wrapf attaches method and detail context to err.
func wrapf(method, detail string, err error) error {
	if detail == "" {
		return fmt.Errorf("%s: %w", method, err)
	}

	return fmt.Errorf("%s: %s: %w", method, detail, err)
}
