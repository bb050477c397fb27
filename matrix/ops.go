// SPDX-License-Identifier: MIT
// Package matrix provides universal operations on any Matrix implementation:
// multiplication, transpose and equality. All functions perform fail-fast
// validation and return wrapped sentinels on misuse.
//
// Notes:
//   - Fast-paths operate on *Dense buffers directly; other implementations
//     are first copied into a Dense through the interface.
//   - Inputs are never mutated; results are freshly allocated.

package matrix

import (
	"fmt"
	"math/big"
)

// Operation name constants for unified error wrapping.
const (
	opMul       = "Mul"
	opTranspose = "Transpose"
	opEqual     = "Equal"
	opSmith     = "SmithNormalForm"
)

// matrixErrorf wraps err with an operation tag.
// Use only when err != nil.
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// Mul returns the product a·b.
//
// Implementation:
//   - Stage 1: ValidateMulCompatible(a, b).
//   - Stage 2: i→k→j loop order; zero entries of a are skipped.
//
// Behavior highlights:
//   - Legal for empty shapes: (r×0)·(0×c) is the r×c zero matrix.
//
// Complexity:
//   - Time O(r*k*c) big.Int multiplications, Space O(r*c).
func Mul(a, b Matrix) (*Dense, error) {
	if err := ValidateMulCompatible(a, b); err != nil {
		return nil, matrixErrorf(opMul, err)
	}
	da, err := asDense(a)
	if err != nil {
		return nil, matrixErrorf(opMul, err)
	}
	db, err := asDense(b)
	if err != nil {
		return nil, matrixErrorf(opMul, err)
	}

	res, err := NewDense(da.r, db.c)
	if err != nil {
		return nil, matrixErrorf(opMul, err)
	}
	var tmp big.Int
	for i := 0; i < da.r; i++ {
		for k := 0; k < da.c; k++ {
			aik := da.at(i, k)
			if aik.Sign() == 0 {
				continue // sparse boundary matrices are mostly zero
			}
			for j := 0; j < db.c; j++ {
				bkj := db.at(k, j)
				if bkj.Sign() == 0 {
					continue
				}
				tmp.Mul(aik, bkj)
				cell := res.at(i, j)
				cell.Add(cell, &tmp)
			}
		}
	}

	return res, nil
}

// Transpose returns mᵀ as a new Dense.
// Complexity: O(r*c).
func Transpose(m Matrix) (*Dense, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opTranspose, err)
	}
	d, err := asDense(m)
	if err != nil {
		return nil, matrixErrorf(opTranspose, err)
	}
	res, err := NewDense(d.c, d.r)
	if err != nil {
		return nil, matrixErrorf(opTranspose, err)
	}
	for i := 0; i < d.r; i++ {
		for j := 0; j < d.c; j++ {
			res.at(j, i).Set(d.at(i, j))
		}
	}

	return res, nil
}

// Equal reports whether a and b have the same shape and entries.
// Returns ErrNilMatrix if either operand is nil.
func Equal(a, b Matrix) (bool, error) {
	if err := ValidateNotNil(a); err != nil {
		return false, matrixErrorf(opEqual, err)
	}
	if err := ValidateNotNil(b); err != nil {
		return false, matrixErrorf(opEqual, err)
	}
	if ValidateSameShape(a, b) != nil {
		return false, nil
	}
	da, err := asDense(a)
	if err != nil {
		return false, matrixErrorf(opEqual, err)
	}
	db, err := asDense(b)
	if err != nil {
		return false, matrixErrorf(opEqual, err)
	}
	for k := range da.data {
		if da.data[k].Cmp(&db.data[k]) != 0 {
			return false, nil
		}
	}

	return true, nil
}
