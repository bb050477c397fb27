// SPDX-License-Identifier: MIT

package complexes

import (
	"fmt"
	"slices"

	"github.com/isaiahtx/simplicial-homology/simplex"
)

// Constructor emits the maximal faces of one complex in local labels
// starting at 0.
type Constructor func(cfg config) ([]simplex.Face, error)

const methodBuild = "Build"

// Build runs cons in order and returns their disjoint union. Labels of each
// constructor are shifted past every label used before it; the label scheme
// is applied to the final indices.
//
// Errors:
//   - ErrConstructFailed for a nil constructor.
//   - any constructor error, wrapped with its position.
//   - ErrBadLabel when the scheme maps two indices to one label or yields
//     a negative label.
func Build(opts []Option, cons ...Constructor) ([]simplex.Face, error) {
	cfg := newConfig(opts...)

	var out []simplex.Face
	offset := 0
	for i, fn := range cons {
		if fn == nil {
			return nil, wrapf(methodBuild, fmt.Sprintf("nil constructor at index %d", i), ErrConstructFailed)
		}
		faces, err := fn(cfg)
		if err != nil {
			return nil, wrapf(methodBuild, fmt.Sprintf("constructor %d", i), err)
		}
		next := offset
		for _, f := range faces {
			g := make(simplex.Face, len(f))
			for j, v := range f {
				g[j] = v + offset
				next = max(next, g[j]+1)
			}
			out = append(out, g)
		}
		offset = next
	}

	return relabel(out, cfg.labelFn)
}

// relabel applies fn in place and checks it is injective and non-negative
// on the labels that occur.
func relabel(faces []simplex.Face, fn func(int) int) ([]simplex.Face, error) {
	seen := make(map[int]int) // output label -> index
	for _, f := range faces {
		for j, v := range f {
			w := fn(v)
			if w < 0 {
				return nil, wrapf(methodBuild, fmt.Sprintf("vertex %d -> %d", v, w), ErrBadLabel)
			}
			if prev, ok := seen[w]; ok && prev != v {
				return nil, wrapf(methodBuild, fmt.Sprintf("vertices %d and %d -> %d", prev, v, w), ErrBadLabel)
			}
			seen[w] = v
			f[j] = w
		}
	}

	return faces, nil
}

// DisjointUnion relabels each complex past the previous ones and
// concatenates them. Input faces are not modified.
func DisjointUnion(parts ...[]simplex.Face) ([]simplex.Face, error) {
	cons := make([]Constructor, len(parts))
	for i, p := range parts {
		cons[i] = Faces(p)
	}

	return Build(nil, cons...)
}

// Faces wraps a fixed face list as a Constructor. Labels are compacted to
// 0..n-1 in ascending order so unions stay tight; faces are copied.
func Faces(faces []simplex.Face) Constructor {
	return func(config) ([]simplex.Face, error) {
		if err := simplex.Validate(faces); err != nil {
			return nil, wrapf("Faces", "", err)
		}
		labels := make(map[int]struct{})
		for _, f := range faces {
			for _, v := range f {
				labels[v] = struct{}{}
			}
		}
		sorted := make([]int, 0, len(labels))
		for v := range labels {
			sorted = append(sorted, v)
		}
		slices.Sort(sorted)
		index := make(map[int]int, len(sorted))
		for i, v := range sorted {
			index[v] = i
		}

		out := make([]simplex.Face, len(faces))
		for i, f := range faces {
			g := make(simplex.Face, len(f))
			for j, v := range f {
				g[j] = index[v]
			}
			out[i] = g
		}

		return out, nil
	}
}
