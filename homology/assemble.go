// SPDX-License-Identifier: MIT

package homology

import (
	"fmt"
	"math/big"

	"github.com/isaiahtx/simplicial-homology/snf"
)

const opAssemble = "Assemble"

// Assemble combines stratum sizes with boundary summaries into H_0..H_top.
//
// Inputs:
//   - sizes[n] = |C_n| for n = 0..top.
//   - boundaries[d] = summary of ∂_d for d = 1..top; boundaries[0] is
//     ignored (rank ∂_0 = 0). len(boundaries) must equal len(sizes).
//
// Errors:
//   - ErrShapeMismatch when the slices have different lengths.
//   - ErrNegativeRank (with the dimension) when a free rank would be < 0.
//
// Torsion values are copied; the output does not alias the inputs.
func Assemble(sizes []int, boundaries []snf.Result) ([]Group, error) {
	if len(sizes) != len(boundaries) {
		return nil, homologyErrorf(opAssemble, fmt.Errorf("%d sizes, %d boundaries: %w", len(sizes), len(boundaries), ErrShapeMismatch))
	}
	top := len(sizes) - 1

	groups := make([]Group, len(sizes))
	for n := 0; n <= top; n++ {
		rankIn := 0
		if n > 0 {
			rankIn = boundaries[n].Rank
		}
		rankOut := 0
		var torsion []*big.Int
		if n < top {
			rankOut = boundaries[n+1].Rank
			for _, d := range boundaries[n+1].Divisors {
				torsion = append(torsion, new(big.Int).Set(d))
			}
		}

		free := sizes[n] - rankIn - rankOut
		if free < 0 {
			return nil, homologyErrorf(opAssemble, fmt.Errorf("H%d: %d - %d - %d: %w", n, sizes[n], rankIn, rankOut, ErrNegativeRank))
		}
		groups[n] = Group{Dim: n, Rank: free, Torsion: torsion}
	}

	return groups, nil
}
