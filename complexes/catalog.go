// SPDX-License-Identifier: MIT

package complexes

import (
	"slices"

	"github.com/isaiahtx/simplicial-homology/simplex"
)

// Entry is one named complex in the catalog.
type Entry struct {
	Name        string
	Description string
	Build       []Constructor // disjoint union of these parts
}

var catalog = []Entry{
	{"point", "a single vertex", []Constructor{Point()}},
	{"circle", "S^1 as a hollow triangle", []Constructor{Circle(3)}},
	{"disk", "a filled triangle", []Constructor{Simplex(2)}},
	{"sphere", "S^2 as a hollow tetrahedron", []Constructor{Sphere(2)}},
	{"torus", "T^2, 3x3 grid triangulation", []Constructor{Torus()}},
	{"rp2", "real projective plane RP^2", []Constructor{ProjectivePlane()}},
	{"klein", "Klein bottle", []Constructor{KleinBottle()}},
	{"wedge", "S^1 v S^2 disjoint union a line segment", []Constructor{Wedge()}},
	{"two-loops", "two disjoint loops and a dangling path", []Constructor{Circle(3), Circle(3), Path(3)}},
}

// Catalog returns the named complexes in display order.
func Catalog() []Entry { return slices.Clone(catalog) }

// Names returns the catalog names in display order.
func Names() []string {
	out := make([]string, len(catalog))
	for i, e := range catalog {
		out[i] = e.Name
	}

	return out
}

// Named builds the catalog complex called name.
func Named(name string, opts ...Option) ([]simplex.Face, error) {
	i := slices.IndexFunc(catalog, func(e Entry) bool { return e.Name == name })
	if i < 0 {
		return nil, wrapf("Named", name, ErrUnknownComplex)
	}

	return Build(opts, catalog[i].Build...)
}
