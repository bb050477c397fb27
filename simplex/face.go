// SPDX-License-Identifier: MIT

package simplex

import (
	"slices"
	"strconv"
	"strings"
)

// keySep separates labels inside a Key. Labels are decimal, so ',' never
// appears inside one.
const keySep = ","

// Face is an ordered sequence of vertex labels. Two faces are the same
// simplex when their Canonical forms are equal.
type Face []int

// Dim returns the dimension of the face: len(f) - 1.
// The empty face has dimension -1.
func (f Face) Dim() int { return len(f) - 1 }

// Canonical returns a sorted copy of f. The receiver is not modified.
func (f Face) Canonical() Face {
	out := slices.Clone(f)
	slices.Sort(out)

	return out
}

// IsCanonical reports whether f is already in ascending order.
func (f Face) IsCanonical() bool { return slices.IsSorted(f) }

// Key returns the canonical identity of f as a string ("0,2,5").
// Faces with the same vertex set share a Key regardless of order.
func (f Face) Key() string {
	if f.IsCanonical() {
		return f.SeqKey()
	}

	return f.Canonical().SeqKey()
}

// SeqKey encodes f exactly as ordered; [1,0] and [0,1] differ.
func (f Face) SeqKey() string {
	var sb strings.Builder
	for i, v := range f {
		if i > 0 {
			sb.WriteString(keySep)
		}
		sb.WriteString(strconv.Itoa(v))
	}

	return sb.String()
}

// Facet returns a new face equal to f with the vertex at position i removed.
// The caller guarantees 0 <= i < len(f).
func (f Face) Facet(i int) Face {
	out := make(Face, 0, len(f)-1)
	out = append(out, f[:i]...)

	return append(out, f[i+1:]...)
}

// Equal reports exact sequence equality.
func (f Face) Equal(g Face) bool { return slices.Equal(f, g) }

// Compare orders faces lexicographically by label; a proper prefix sorts first.
func Compare(a, b Face) int { return slices.Compare(a, b) }

// String renders the face as "[0 1 2]".
func (f Face) String() string {
	var sb strings.Builder
	sb.WriteByte('[')
	for i, v := range f {
		if i > 0 {
			sb.WriteByte(' ')
		}
		sb.WriteString(strconv.Itoa(v))
	}
	sb.WriteByte(']')

	return sb.String()
}
