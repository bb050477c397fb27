// SPDX-License-Identifier: MIT
// Package: complexes
//
// impl_cycle.go: one-dimensional constructors Point, Path(n) and Circle(n).
//
// Contract:
//   • Circle: n ≥ 3, edges i-(i+1)%n for i = 0..n-1 (else ErrTooFewVertices).
//   • Path: n ≥ 2, edges i-(i+1) for i = 0..n-2.
//   • Faces are emitted in increasing i.

package complexes

import (
	"fmt"

	"github.com/isaiahtx/simplicial-homology/simplex"
)

const (
	methodCircle   = "Circle"
	methodPath     = "Path"
	minCircleVerts = 3
	minPathVerts   = 2
)

// Point returns a single vertex.
func Point() Constructor {
	return func(config) ([]simplex.Face, error) {
		return []simplex.Face{{0}}, nil
	}
}

// Circle returns the n-gon triangulation of S¹.
func Circle(n int) Constructor {
	return func(config) ([]simplex.Face, error) {
		if err := validateMin(methodCircle, n, minCircleVerts); err != nil {
			return nil, err
		}
		out := make([]simplex.Face, n)
		for i := 0; i < n; i++ {
			out[i] = simplex.Face{i, (i + 1) % n}
		}

		return out, nil
	}
}

// Path returns a path on n vertices (n-1 edges).
func Path(n int) Constructor {
	return func(config) ([]simplex.Face, error) {
		if err := validateMin(methodPath, n, minPathVerts); err != nil {
			return nil, err
		}
		out := make([]simplex.Face, n-1)
		for i := 0; i < n-1; i++ {
			out[i] = simplex.Face{i, i + 1}
		}

		return out, nil
	}
}

// validateMin returns ErrTooFewVertices when got < min.
func validateMin(method string, got, min int) error {
	if got < min {
		return wrapf(method, fmt.Sprintf("n=%d < min=%d", got, min), ErrTooFewVertices)
	}

	return nil
}
