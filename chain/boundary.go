// SPDX-License-Identifier: MIT

package chain

import (
	"fmt"

	"github.com/isaiahtx/simplicial-homology/matrix"
)

const opBoundary = "Boundary"

// Boundary returns the matrix of ∂ : C_{d} → C_{d-1} where domain is
// Stratum(d) and codomain is Stratum(d-1).
//
// Implementation:
//   - Stage 1: validate non-nil strata and domain.Dim() == codomain.Dim()+1.
//   - Stage 2: allocate a codomain.Len() × domain.Len() zero matrix. With an
//     empty domain this is the rows×0 empty matrix and Stage 3 is a no-op.
//   - Stage 3: for column c (face v0<…<vd) and i = 0..d, write sign (+1 for
//     i=0, flipping each step) at (index(face without vi), c).
//
// Behavior highlights:
//   - Facets of a sorted face are pairwise distinct, so every cell is written
//     at most once per column; no accumulation is needed.
//   - A missing facet means the faces were not downward closed; the builder
//     stops with ErrMissingFacet instead of emitting a wrong matrix.
//
// Complexity:
//   - Time O(n_d · d) index lookups, Space O(n_{d-1} · n_d) entries.
func Boundary(domain, codomain *Stratum) (*matrix.Dense, error) {
	if domain == nil || codomain == nil {
		return nil, chainErrorf(opBoundary, ErrNilStratum)
	}
	if domain.Dim() != codomain.Dim()+1 {
		return nil, chainErrorf(opBoundary, fmt.Errorf("dims %d→%d: %w", domain.Dim(), codomain.Dim(), ErrDimensionMismatch))
	}

	m, err := matrix.NewDense(codomain.Len(), domain.Len())
	if err != nil {
		return nil, chainErrorf(opBoundary, err)
	}
	for c, face := range domain.faces {
		sign := int64(1)
		for i := range face {
			facet := face.Facet(i)
			r, ok := codomain.index[facet.SeqKey()] // facets of a canonical face stay canonical
			if !ok {
				return nil, chainErrorf(opBoundary, fmt.Errorf("face %v facet %v: %w", face, facet, ErrMissingFacet))
			}
			if err := m.SetInt64(r, c, sign); err != nil {
				return nil, chainErrorf(opBoundary, err)
			}
			sign = -sign
		}
	}

	return m, nil
}

// Boundaries returns ∂d for d = 1..Top(); element 0 is nil because there is
// no boundary map into dimension 0 that needs a matrix.
func (s Strata) Boundaries() ([]*matrix.Dense, error) {
	out := make([]*matrix.Dense, len(s))
	for d := 1; d < len(s); d++ {
		m, err := Boundary(s[d], s[d-1])
		if err != nil {
			return nil, err
		}
		out[d] = m
	}

	return out, nil
}
