// SPDX-License-Identifier: MIT
// Package: complexes
//
// impl_random.go: Random(n, k, p), each k-face on n vertices kept with
// probability p.
//
// Contract:
//   • n ≥ 1, 0 ≤ k < n, 0 ≤ p ≤ 1; rng required (WithSeed/WithRand).
//   • Every vertex is emitted as a 0-face, so isolated vertices survive.
//   • Candidate faces are visited in lexicographic order; the output is
//     deterministic for a fixed seed.

package complexes

import (
	"fmt"

	"github.com/isaiahtx/simplicial-homology/simplex"
)

const methodRandom = "Random"

// Random returns a random k-complex on n vertices.
func Random(n, k int, p float64) Constructor {
	return func(cfg config) ([]simplex.Face, error) {
		if err := validateMin(methodRandom, n, 1); err != nil {
			return nil, err
		}
		if k < 0 || k >= n {
			return nil, wrapf(methodRandom, fmt.Sprintf("k=%d outside [0,%d)", k, n), ErrTooFewVertices)
		}
		if p < 0 || p > 1 {
			return nil, wrapf(methodRandom, fmt.Sprintf("p=%g", p), ErrInvalidProbability)
		}
		if cfg.rng == nil {
			return nil, wrapf(methodRandom, "", ErrNeedRandSource)
		}

		out := make([]simplex.Face, 0, n)
		for v := 0; v < n; v++ {
			out = append(out, simplex.Face{v})
		}
		if k == 0 {
			return out, nil
		}

		// Walk all (k+1)-subsets of 0..n-1 in lexicographic order.
		idx := seq(k + 1)
		for {
			if cfg.rng.Float64() < p {
				out = append(out, append(simplex.Face(nil), idx...))
			}
			i := k
			for i >= 0 && idx[i] == n-(k+1)+i {
				i--
			}
			if i < 0 {
				break
			}
			idx[i]++
			for j := i + 1; j <= k; j++ {
				idx[j] = idx[j-1] + 1
			}
		}

		return out, nil
	}
}
