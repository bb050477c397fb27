// SPDX-License-Identifier: MIT

package chain

import (
	"slices"

	"github.com/isaiahtx/simplicial-homology/simplex"
)

// Stratum holds the canonical faces of one dimension in sorted order. A
// face's position is its basis index in the chain group C_dim.
// A Stratum is immutable once built.
type Stratum struct {
	dim   int
	faces []simplex.Face // canonical, strictly increasing
	index map[string]int // Face.Key() -> position
}

// newStratum sorts canonical faces and assigns contiguous indices.
func newStratum(dim int, faces []simplex.Face) *Stratum {
	slices.SortFunc(faces, simplex.Compare)
	idx := make(map[string]int, len(faces))
	for i, f := range faces {
		idx[f.SeqKey()] = i // already canonical
	}

	return &Stratum{dim: dim, faces: faces, index: idx}
}

// Dim returns the dimension shared by all faces of the stratum.
func (s *Stratum) Dim() int { return s.dim }

// Len returns the rank of the chain group, i.e. the number of faces.
// A nil stratum has length 0.
func (s *Stratum) Len() int {
	if s == nil {
		return 0
	}

	return len(s.faces)
}

// Face returns a copy of the face with basis index i.
func (s *Stratum) Face(i int) simplex.Face { return slices.Clone(s.faces[i]) }

// Faces returns copies of all faces in index order.
func (s *Stratum) Faces() []simplex.Face {
	out := make([]simplex.Face, len(s.faces))
	for i, f := range s.faces {
		out[i] = slices.Clone(f)
	}

	return out
}

// Index returns the basis index of f. The lookup canonicalizes f first, so
// any vertex order finds the same face.
func (s *Stratum) Index(f simplex.Face) (int, bool) {
	if s == nil {
		return 0, false
	}
	i, ok := s.index[f.Key()]

	return i, ok
}

// Strata is the graded family of strata, indexed by dimension 0..Top().
type Strata []*Stratum

// Group builds Strata from a face collection, normally the output of
// simplex.Close.
//
// Implementation:
//   - Stage 1: canonicalize each face; skip it if its canonical identity was
//     already seen (so [0 1] and [1 0] count once).
//   - Stage 2: bucket by dimension.
//   - Stage 3: sort each bucket lexicographically and index it.
//
// Faces of length 0 are ignored. Dimensions between 0 and the top that hold
// no faces get an empty stratum.
//
// Complexity: O(F·k log k + Σ n_d log n_d) for F faces of size ≤ k.
func Group(faces []simplex.Face) Strata {
	top := -1
	for _, f := range faces {
		top = max(top, f.Dim())
	}
	buckets := make([][]simplex.Face, top+1)
	seen := make(map[string]struct{}, len(faces))
	for _, f := range faces {
		if len(f) == 0 {
			continue
		}
		c := f.Canonical()
		k := c.SeqKey()
		if _, dup := seen[k]; dup {
			continue
		}
		seen[k] = struct{}{}
		buckets[c.Dim()] = append(buckets[c.Dim()], c)
	}

	out := make(Strata, top+1)
	for d := range buckets {
		out[d] = newStratum(d, buckets[d])
	}

	return out
}

// Top returns the highest dimension, or -1 when there are no faces.
func (s Strata) Top() int { return len(s) - 1 }

// At returns the stratum of dimension d, or an empty stratum of that
// dimension when d is out of range.
func (s Strata) At(d int) *Stratum {
	if d < 0 || d >= len(s) {
		return &Stratum{dim: d, index: map[string]int{}}
	}

	return s[d]
}

// Size returns |Stratum(d)|, 0 outside 0..Top().
func (s Strata) Size(d int) int { return s.At(d).Len() }

// Sizes returns |Stratum(d)| for d = 0..Top().
func (s Strata) Sizes() []int {
	out := make([]int, len(s))
	for d := range s {
		out[d] = s[d].Len()
	}

	return out
}

// Euler returns the Euler characteristic Σ(−1)^d |Stratum(d)|.
func (s Strata) Euler() int {
	chi := 0
	for d, st := range s {
		if d%2 == 0 {
			chi += st.Len()
		} else {
			chi -= st.Len()
		}
	}

	return chi
}
