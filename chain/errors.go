// SPDX-License-Identifier: MIT

package chain

import (
	"errors"
	"fmt"
)

var (
	// ErrNilStratum is returned when Boundary receives a nil stratum.
	ErrNilStratum = errors.New("chain: nil stratum")

	// ErrDimensionMismatch is returned when the domain stratum is not exactly
	// one dimension above the codomain stratum.
	ErrDimensionMismatch = errors.New("chain: strata dimensions are not consecutive")

	// ErrMissingFacet is returned when a facet of a domain face has no index
	// in the codomain, i.e. the input was not downward closed.
	ErrMissingFacet = errors.New("chain: facet missing from codomain stratum")
)

// chainErrorf wraps err with an operation tag.
func chainErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}
