// SPDX-License-Identifier: MIT
// Package: complexes
//
// impl_surfaces.go: fixed triangulations of closed surfaces and of the
// S¹ ∨ S² example.
//
//   • Torus: 3×3 grid, 9 vertices, 18 triangles.
//   • ProjectivePlane: the 6-vertex, 10-triangle RP².
//   • KleinBottle: 9 vertices, 18 triangles.
//   • Wedge: hollow tetrahedron with an extra loop through vertex 4, plus a
//     disjoint segment [5,6].

package complexes

import (
	"github.com/isaiahtx/simplicial-homology/simplex"
)

const torusSide = 3

var (
	projectivePlane = []simplex.Face{
		{0, 4, 5}, {0, 1, 5}, {1, 3, 5}, {0, 3, 4}, {0, 2, 3},
		{0, 1, 2}, {1, 2, 4}, {1, 3, 4}, {2, 4, 5}, {2, 3, 5},
	}

	kleinBottle = []simplex.Face{
		{0, 1, 6}, {1, 6, 7}, {1, 2, 7}, {2, 7, 8}, {0, 2, 8}, {0, 3, 8},
		{3, 6, 7}, {3, 4, 7}, {4, 7, 8}, {4, 5, 8}, {3, 5, 8}, {3, 5, 6},
		{0, 3, 4}, {0, 1, 4}, {1, 4, 5}, {1, 2, 5}, {2, 5, 6}, {0, 2, 6},
	}

	wedge = []simplex.Face{
		{0, 1, 2}, {0, 1, 3}, {0, 2, 3}, {1, 2, 3}, {3, 4}, {1, 4}, {5, 6},
	}
)

// Torus returns the 3×3 grid triangulation with opposite sides glued.
func Torus() Constructor {
	return func(config) ([]simplex.Face, error) {
		const n = torusSide
		v := func(i, j int) int { return n*(i%n) + j%n }
		out := make([]simplex.Face, 0, 2*n*n)
		for i := 0; i < n; i++ {
			for j := 0; j < n; j++ {
				out = append(out,
					simplex.Face{v(i, j), v(i+1, j), v(i+1, j+1)},
					simplex.Face{v(i, j), v(i, j+1), v(i+1, j+1)},
				)
			}
		}

		return out, nil
	}
}

// ProjectivePlane returns a minimal triangulation of RP².
func ProjectivePlane() Constructor { return fixed(projectivePlane) }

// KleinBottle returns a triangulation of the Klein bottle.
func KleinBottle() Constructor { return fixed(kleinBottle) }

// Wedge returns S¹ ∨ S² together with a disjoint segment.
func Wedge() Constructor { return fixed(wedge) }

// fixed returns a Constructor emitting a copy of faces.
func fixed(faces []simplex.Face) Constructor {
	return func(config) ([]simplex.Face, error) {
		out := make([]simplex.Face, len(faces))
		for i, f := range faces {
			out[i] = append(simplex.Face(nil), f...)
		}

		return out, nil
	}
}
