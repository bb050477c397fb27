// SPDX-License-Identifier: MIT
// Package: snf
//
// errors.go: sentinel errors for the elementary divisor engine.
//
// Error classes:
//   • ErrMalformed: input or reducer output is structurally invalid; never retried.
//   • ErrTransient: marker a Reducer wraps to request a retry.
//   • ErrRetriesExhausted: the attempt budget ran out on transient failures.

package snf

import (
	"errors"
	"fmt"
)

var (
	// ErrMalformed marks a nil matrix or a reducer result that is not a
	// diagonal matrix of the input's shape.
	ErrMalformed = errors.New("snf: malformed matrix")

	// ErrTransient marks a reduction failure worth retrying. Reducers wrap
	// it: fmt.Errorf("backend busy: %w", snf.ErrTransient).
	ErrTransient = errors.New("snf: transient reduction failure")

	// ErrRetriesExhausted is returned when every allowed attempt failed
	// with a transient error.
	ErrRetriesExhausted = errors.New("snf: retries exhausted")
)

// snfErrorf wraps err with an operation tag.
func snfErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}
