// SPDX-License-Identifier: MIT

// Package matrix - elementary unimodular operations on Dense.
//
// Every operation here is invertible over Z (determinant ±1), so applying
// any sequence of them preserves the abelian group presented by the matrix.
// Exported methods validate indices and return ErrOutOfRange; the unexported
// twins skip the checks and are used inside kernels whose loops already
// guarantee valid indices.

package matrix

import "math/big"

// SwapRows exchanges rows i and k.
func (m *Dense) SwapRows(i, k int) error {
	if err := ValidateRowIndex(m, i); err != nil {
		return err
	}
	if err := ValidateRowIndex(m, k); err != nil {
		return err
	}
	m.swapRows(i, k)

	return nil
}

// SwapCols exchanges columns j and k.
func (m *Dense) SwapCols(j, k int) error {
	if err := ValidateColIndex(m, j); err != nil {
		return err
	}
	if err := ValidateColIndex(m, k); err != nil {
		return err
	}
	m.swapCols(j, k)

	return nil
}

// AddRowMultiple performs row[dst] += factor * row[src].
// dst == src is rejected because it is not unimodular in general.
func (m *Dense) AddRowMultiple(dst, src int, factor *big.Int) error {
	if factor == nil {
		return ErrNilMatrix
	}
	if err := ValidateRowIndex(m, dst); err != nil {
		return err
	}
	if err := ValidateRowIndex(m, src); err != nil {
		return err
	}
	if dst == src {
		return validatorErrorf("AddRowMultiple", ErrDimensionMismatch)
	}
	m.addRowMultiple(dst, src, factor)

	return nil
}

// AddColMultiple performs col[dst] += factor * col[src].
func (m *Dense) AddColMultiple(dst, src int, factor *big.Int) error {
	if factor == nil {
		return ErrNilMatrix
	}
	if err := ValidateColIndex(m, dst); err != nil {
		return err
	}
	if err := ValidateColIndex(m, src); err != nil {
		return err
	}
	if dst == src {
		return validatorErrorf("AddColMultiple", ErrDimensionMismatch)
	}
	m.addColMultiple(dst, src, factor)

	return nil
}

// NegateRow multiplies row i by -1.
func (m *Dense) NegateRow(i int) error {
	if err := ValidateRowIndex(m, i); err != nil {
		return err
	}
	m.negateRow(i)

	return nil
}

// ---------- unchecked kernels ----------

func (m *Dense) swapRows(i, k int) {
	if i == k {
		return
	}
	ri := m.data[i*m.c : (i+1)*m.c]
	rk := m.data[k*m.c : (k+1)*m.c]
	for j := range ri {
		ri[j], rk[j] = rk[j], ri[j] // swapping headers moves ownership, no aliasing
	}
}

func (m *Dense) swapCols(j, k int) {
	if j == k {
		return
	}
	for i := 0; i < m.r; i++ {
		base := i * m.c
		m.data[base+j], m.data[base+k] = m.data[base+k], m.data[base+j]
	}
}

func (m *Dense) addRowMultiple(dst, src int, factor *big.Int) {
	if factor.Sign() == 0 {
		return
	}
	var tmp big.Int
	for j := 0; j < m.c; j++ {
		s := m.at(src, j)
		if s.Sign() == 0 {
			continue
		}
		tmp.Mul(factor, s)
		d := m.at(dst, j)
		d.Add(d, &tmp)
	}
}

func (m *Dense) addColMultiple(dst, src int, factor *big.Int) {
	if factor.Sign() == 0 {
		return
	}
	var tmp big.Int
	for i := 0; i < m.r; i++ {
		s := m.at(i, src)
		if s.Sign() == 0 {
			continue
		}
		tmp.Mul(factor, s)
		d := m.at(i, dst)
		d.Add(d, &tmp)
	}
}

func (m *Dense) negateRow(i int) {
	for j := 0; j < m.c; j++ {
		v := m.at(i, j)
		v.Neg(v)
	}
}
