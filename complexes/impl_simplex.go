// SPDX-License-Identifier: MIT

package complexes

import (
	"github.com/isaiahtx/simplicial-homology/simplex"
)

const (
	methodSimplex = "Simplex"
	methodSphere  = "Sphere"
)

// Simplex returns the full k-simplex [0..k] (contractible). k ≥ 0.
func Simplex(k int) Constructor {
	return func(config) ([]simplex.Face, error) {
		if err := validateMin(methodSimplex, k, 0); err != nil {
			return nil, err
		}

		return []simplex.Face{seq(k + 1)}, nil
	}
}

// Sphere returns S^k as the boundary of the (k+1)-simplex: the k+2 facets of
// [0..k+1], in lexicographic order. k ≥ 0; S⁰ is two points.
func Sphere(k int) Constructor {
	return func(config) ([]simplex.Face, error) {
		if err := validateMin(methodSphere, k, 0); err != nil {
			return nil, err
		}
		full := seq(k + 2)
		out := make([]simplex.Face, 0, k+2)
		for omit := k + 1; omit >= 0; omit-- {
			out = append(out, full.Facet(omit))
		}

		return out, nil
	}
}

// seq returns [0, 1, ..., n-1].
func seq(n int) simplex.Face {
	f := make(simplex.Face, n)
	for i := range f {
		f[i] = i
	}

	return f
}
