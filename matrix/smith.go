// SPDX-License-Identifier: MIT

// Package matrix - Smith Normal Form kernel.
//
// Purpose:
//   - Reduce an integer matrix A to D = U·A·V with U, V unimodular and D
//     diagonal, d_1 | d_2 | ... | d_r, d_i > 0, all remaining entries 0.
//
// Algorithm (per diagonal position t):
//  1. Pick the nonzero entry of smallest absolute value in A[t:,t:] and move
//     it to (t,t). Stop if the submatrix is zero.
//  2. Clear column t and row t with Euclidean quotients. Each remainder is
//     strictly smaller than |pivot|; if one survives, it becomes the new
//     pivot and step 2 repeats.
//  3. If some A[i][j] (i,j > t) is not a multiple of the pivot, add row i to
//     row t and go back to step 2 (the pivot strictly shrinks again).
//  4. Normalize the pivot to be positive.
//
// Termination: |pivot| strictly decreases every time step 2 or 3 restarts,
// and is bounded below by 1.
//
// Determinism:
//   - Ties on |value| are broken by the first position in row-major order.
//
// Complexity:
//   - O(min(r,c) · r · c) elementary row/column operations in the common
//     case; big.Int sizes grow at most with intermediate coefficients.

package matrix

import "math/big"

// SmithNormalForm returns the Smith Normal Form of m as a new Dense of the
// same shape. The input is never mutated.
//
// Errors:
//   - ErrNilMatrix (wrapped with "SmithNormalForm") when m is nil.
func SmithNormalForm(m Matrix) (*Dense, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opSmith, err)
	}
	src, err := asDense(m)
	if err != nil {
		return nil, matrixErrorf(opSmith, err)
	}
	a := src.clone() // asDense may alias the caller's matrix

	n := min(a.r, a.c)
	for t := 0; t < n; t++ {
		pi, pj, ok := a.smallestNonZero(t)
		if !ok {
			break // remaining submatrix is zero
		}
		a.swapRows(t, pi)
		a.swapCols(t, pj)
		a.reducePivot(t)
		if a.at(t, t).Sign() < 0 {
			a.negateRow(t)
		}
	}

	return a, nil
}

// smallestNonZero scans A[t:,t:] for the nonzero entry of least |value|.
func (a *Dense) smallestNonZero(t int) (int, int, bool) {
	bi, bj := -1, -1
	var best *big.Int
	for i := t; i < a.r; i++ {
		for j := t; j < a.c; j++ {
			v := a.at(i, j)
			if v.Sign() == 0 {
				continue
			}
			if best == nil || v.CmpAbs(best) < 0 {
				best, bi, bj = v, i, j
			}
		}
	}

	return bi, bj, best != nil
}

// smallestInCross scans column t (rows >= t) and row t (cols >= t).
// The caller guarantees at least one nonzero entry exists there.
func (a *Dense) smallestInCross(t int) (int, int) {
	bi, bj := t, t
	var best *big.Int
	for i := t; i < a.r; i++ {
		if v := a.at(i, t); v.Sign() != 0 && (best == nil || v.CmpAbs(best) < 0) {
			best, bi, bj = v, i, t
		}
	}
	for j := t + 1; j < a.c; j++ {
		if v := a.at(t, j); v.Sign() != 0 && (best == nil || v.CmpAbs(best) < 0) {
			best, bi, bj = v, t, j
		}
	}

	return bi, bj
}

// reducePivot runs steps 2-3 at position t until row t and column t are
// clear and the pivot divides the trailing submatrix.
func (a *Dense) reducePivot(t int) {
	var q big.Int
	one := big.NewInt(1)
	for {
		clean := true
		pivot := a.at(t, t)

		// Column t below the pivot.
		for i := t + 1; i < a.r; i++ {
			v := a.at(i, t)
			if v.Sign() == 0 {
				continue
			}
			q.Div(v, pivot) // Euclidean: remainder in [0, |pivot|)
			q.Neg(&q)
			a.addRowMultiple(i, t, &q)
			if a.at(i, t).Sign() != 0 {
				clean = false
			}
		}
		// Row t right of the pivot.
		for j := t + 1; j < a.c; j++ {
			v := a.at(t, j)
			if v.Sign() == 0 {
				continue
			}
			q.Div(v, pivot)
			q.Neg(&q)
			a.addColMultiple(j, t, &q)
			if a.at(t, j).Sign() != 0 {
				clean = false
			}
		}

		if !clean {
			pi, pj := a.smallestInCross(t)
			a.swapRows(t, pi)
			a.swapCols(t, pj)
			continue
		}

		bad := a.indivisibleRow(t)
		if bad < 0 {
			return
		}
		a.addRowMultiple(t, bad, one)
	}
}

// indivisibleRow returns the first row i > t holding an entry A[i][j], j > t,
// that the pivot A[t][t] does not divide, or -1.
func (a *Dense) indivisibleRow(t int) int {
	var r big.Int
	pivot := a.at(t, t)
	for i := t + 1; i < a.r; i++ {
		for j := t + 1; j < a.c; j++ {
			v := a.at(i, j)
			if v.Sign() == 0 {
				continue
			}
			if r.Rem(v, pivot).Sign() != 0 {
				return i
			}
		}
	}

	return -1
}
