// SPDX-License-Identifier: MIT

package homology

import (
	"errors"
	"fmt"
)

var (
	// ErrNegativeRank is returned when |C_n| − rank ∂_n − rank ∂_{n+1} < 0.
	// It indicates a builder or indexing defect upstream.
	ErrNegativeRank = errors.New("homology: negative free rank")

	// ErrShapeMismatch is returned by Assemble when the boundary summaries do
	// not line up with the stratum sizes.
	ErrShapeMismatch = errors.New("homology: sizes and boundaries disagree")

	// ErrInconsistent is returned when the H0 rank disagrees with the
	// connected-component count of the 1-skeleton.
	ErrInconsistent = errors.New("homology: H0 rank differs from component count")

	// ErrCacheSize is returned by NewEngine for a non-positive cache size.
	ErrCacheSize = errors.New("homology: cache size must be > 0")
)

// homologyErrorf wraps err with an operation tag.
func homologyErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}
