// SPDX-License-Identifier: MIT

package simplex

import "slices"

// Complex is a face collection closed under single-vertex deletion, as
// produced by Close. It is immutable; accessors return copies.
type Complex struct {
	faces []Face              // discovery order
	seq   map[string]struct{} // exact-sequence membership
}

// Close validates faces and returns their closure under "remove any one
// vertex".
//
// Implementation:
//   - Stage 1: Validate (fail fast, nothing is built on malformed input).
//   - Stage 2: copy input faces, skipping exact duplicates.
//   - Stage 3: full scans over the faces present at the start of each pass;
//     append every unseen non-empty deletion; stop after a pass adds nothing.
//
// Behavior highlights:
//   - The caller's slices are never aliased or modified.
//   - An empty input yields an empty complex (Dim() == -1).
//
// Complexity:
//   - Time O(P·F·k) where P ≤ top dim + 1 passes, F final faces, k max size.
func Close(faces []Face) (*Complex, error) {
	if err := Validate(faces); err != nil {
		return nil, err
	}

	c := &Complex{
		faces: make([]Face, 0, len(faces)),
		seq:   make(map[string]struct{}, len(faces)),
	}
	for _, f := range faces {
		c.add(slices.Clone(f))
	}

	for added := true; added; {
		added = false
		n := len(c.faces) // faces appended during this pass wait for the next one
		for i := 0; i < n; i++ {
			f := c.faces[i]
			if len(f) < 2 {
				continue // deleting from a vertex gives the empty face
			}
			for j := range f {
				if c.add(f.Facet(j)) {
					added = true
				}
			}
		}
	}

	return c, nil
}

// add stores f unless an identical sequence is present.
func (c *Complex) add(f Face) bool {
	k := f.SeqKey()
	if _, ok := c.seq[k]; ok {
		return false
	}
	c.seq[k] = struct{}{}
	c.faces = append(c.faces, f)

	return true
}

// Faces returns a deep copy of the stored faces in discovery order.
func (c *Complex) Faces() []Face {
	out := make([]Face, len(c.faces))
	for i, f := range c.faces {
		out[i] = slices.Clone(f)
	}

	return out
}

// Len returns the number of stored faces.
func (c *Complex) Len() int { return len(c.faces) }

// Dim returns the largest face dimension, or -1 for an empty complex.
func (c *Complex) Dim() int {
	top := -1
	for _, f := range c.faces {
		top = max(top, f.Dim())
	}

	return top
}

// Has reports whether the exact sequence f is stored.
func (c *Complex) Has(f Face) bool {
	_, ok := c.seq[f.SeqKey()]

	return ok
}

// IsClosed reports whether every face of size > 1 has all of its facets
// present, comparing by canonical identity.
func (c *Complex) IsClosed() bool {
	canon := make(map[string]struct{}, len(c.faces))
	for _, f := range c.faces {
		canon[f.Key()] = struct{}{}
	}
	for _, f := range c.faces {
		if len(f) < 2 {
			continue
		}
		for j := range f {
			if _, ok := canon[f.Facet(j).Key()]; !ok {
				return false
			}
		}
	}

	return true
}
