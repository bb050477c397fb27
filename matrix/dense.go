// SPDX-License-Identifier: MIT

// Package matrix - Dense storage (row-major) & safe accessors.
//
// Purpose:
//   - Provide a row-major buffer of big.Int with the explicit index formula i*cols + j.
//   - Guarantee safety at the public surface: At/Set return errors instead of panicking.
//   - Keep algorithmic determinism (fixed loop orders, no map iteration).
//
// Complexity quicksheet:
//   - NewDense: O(r*c) zero-init; At/Set: O(len of entry); Clone: O(r*c).

package matrix

import (
	"fmt"
	"math/big"
	"strings"
)

// ---------- error context tags ----------

const (
	ctxAt      = "At"      // method tag used in error wrappers
	ctxSet     = "Set"     // method tag used in error wrappers
	ctxFromRow = "FromRow" // ctor tag for NewFromRows
)

// ---------- Formatting literals ----------
const (
	_fmtRowOpen  = "["
	_fmtRowClose = "]\n"
	_fmtSep      = ", "
)

// denseErrorf wraps an error with a uniform Dense context and callsite indices.
// The result formats as "Dense.<method>(row,col): <sentinel>" and still
// matches the sentinel via errors.Is.
func denseErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("Dense.%s(%d,%d): %w", method, row, col, err)
}

// Dense is a concrete row-major integer matrix.
//   - r,c hold dimensions (rows, cols); either may be zero.
//   - data is a flat buffer of length r*c in row-major order (offset = i*c + j).
//
// Entries live inside the buffer; kernels operate on &data[k] directly and
// never copy a big.Int by value.
type Dense struct {
	r, c int       // row and column counts (>=0)
	data []big.Int // contiguous row-major storage (len == r*c)
}

// Compile-time assertions for interface & fmt.Stringer conformance.
var (
	_ Matrix       = (*Dense)(nil)
	_ fmt.Stringer = (*Dense)(nil)
)

// NewDense creates an r×c zero matrix using row-major storage.
//
// Implementation:
//   - Stage 1: validate rows>=0 && cols>=0; else ErrInvalidDimensions.
//   - Stage 2: allocate a zero-filled buffer (big.Int zero value is 0).
//
// Behavior highlights:
//   - Unlike a float64 matrix, a 0×N or N×0 shape is a legitimate value here:
//     it is the matrix of a homomorphism from or into the zero group.
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func NewDense(rows, cols int) (*Dense, error) {
	// Validate shape.
	if rows < 0 || cols < 0 {
		return nil, ErrInvalidDimensions
	}

	return &Dense{r: rows, c: cols, data: make([]big.Int, rows*cols)}, nil
}

// NewFromRows builds a Dense from a rectangular slice of int64 rows.
// An empty slice yields the 0×0 matrix.
// Returns ErrRagged if rows differ in length.
// Complexity: O(r*c).
func NewFromRows(rows [][]int64) (*Dense, error) {
	r := len(rows)
	c := 0
	if r > 0 {
		c = len(rows[0])
	}
	m, err := NewDense(r, c)
	if err != nil {
		return nil, err
	}
	for i := 0; i < r; i++ {
		if len(rows[i]) != c {
			return nil, denseErrorf(ctxFromRow, i, len(rows[i]), ErrRagged)
		}
		for j := 0; j < c; j++ {
			m.data[i*c+j].SetInt64(rows[i][j])
		}
	}

	return m, nil
}

// Identity returns the n×n identity matrix.
func Identity(n int) (*Dense, error) {
	m, err := NewDense(n, n)
	if err != nil {
		return nil, err
	}
	for i := 0; i < n; i++ {
		m.data[i*n+i].SetInt64(1)
	}

	return m, nil
}

// Rows returns the number of rows in the matrix.
func (m *Dense) Rows() int { return m.r }

// Cols returns the number of columns in the matrix.
func (m *Dense) Cols() int { return m.c }

// IsEmpty reports whether the matrix has no entries (zero rows or zero cols).
func (m *Dense) IsEmpty() bool { return m.r == 0 || m.c == 0 }

// indexOf computes the flat index for (row, col) or returns ErrOutOfRange.
func (m *Dense) indexOf(method string, row, col int) (int, error) {
	if row < 0 || row >= m.r || col < 0 || col >= m.c {
		return 0, denseErrorf(method, row, col, ErrOutOfRange)
	}

	return row*m.c + col, nil
}

// at returns a pointer into the buffer without bounds checks.
// Internal kernels only; callers guarantee 0<=i<r and 0<=j<c.
func (m *Dense) at(i, j int) *big.Int { return &m.data[i*m.c+j] }

// At returns a copy of the element at (row, col).
// Complexity: O(len of entry).
func (m *Dense) At(row, col int) (*big.Int, error) {
	idx, err := m.indexOf(ctxAt, row, col)
	if err != nil {
		return nil, err
	}

	return new(big.Int).Set(&m.data[idx]), nil
}

// Int64At returns the element at (row, col) as int64 together with a flag
// reporting whether it fits. Convenient for tests and small fixtures.
func (m *Dense) Int64At(row, col int) (int64, bool, error) {
	idx, err := m.indexOf(ctxAt, row, col)
	if err != nil {
		return 0, false, err
	}
	v := &m.data[idx]

	return v.Int64(), v.IsInt64(), nil
}

// Set assigns a copy of v at (row, col).
func (m *Dense) Set(row, col int, v *big.Int) error {
	if v == nil {
		return denseErrorf(ctxSet, row, col, ErrNilMatrix)
	}
	idx, err := m.indexOf(ctxSet, row, col)
	if err != nil {
		return err
	}
	m.data[idx].Set(v)

	return nil
}

// SetInt64 assigns v at (row, col).
func (m *Dense) SetInt64(row, col int, v int64) error {
	idx, err := m.indexOf(ctxSet, row, col)
	if err != nil {
		return err
	}
	m.data[idx].SetInt64(v)

	return nil
}

// Clone returns a deep copy of the Dense matrix.
// Complexity: O(r*c).
func (m *Dense) Clone() Matrix { return m.clone() }

// clone is the typed variant used by kernels.
func (m *Dense) clone() *Dense {
	out := &Dense{r: m.r, c: m.c, data: make([]big.Int, len(m.data))}
	for k := range m.data {
		out.data[k].Set(&m.data[k])
	}

	return out
}

// IsZero reports whether every entry is zero. Empty matrices are zero.
func (m *Dense) IsZero() bool {
	for k := range m.data {
		if m.data[k].Sign() != 0 {
			return false
		}
	}

	return true
}

// IsDiagonal reports whether every off-diagonal entry is zero.
func (m *Dense) IsDiagonal() bool {
	for i := 0; i < m.r; i++ {
		for j := 0; j < m.c; j++ {
			if i != j && m.at(i, j).Sign() != 0 {
				return false
			}
		}
	}

	return true
}

// Diagonal returns copies of the entries (i,i) for i < min(r,c).
func (m *Dense) Diagonal() []*big.Int {
	n := min(m.r, m.c)
	out := make([]*big.Int, n)
	for i := 0; i < n; i++ {
		out[i] = new(big.Int).Set(m.at(i, i))
	}

	return out
}

// String implements fmt.Stringer for easy debugging.
// Each row renders as "[a, b, c]" followed by a newline.
func (m *Dense) String() string {
	var sb strings.Builder
	for i := 0; i < m.r; i++ {
		sb.WriteString(_fmtRowOpen)
		for j := 0; j < m.c; j++ {
			sb.WriteString(m.at(i, j).String())
			if j < m.c-1 {
				sb.WriteString(_fmtSep)
			}
		}
		sb.WriteString(_fmtRowClose)
	}

	return sb.String()
}

// asDense returns m as *Dense, copying through the interface when m is
// another implementation. The returned matrix may alias m.
func asDense(m Matrix) (*Dense, error) {
	if d, ok := m.(*Dense); ok {
		return d, nil
	}
	out, err := NewDense(m.Rows(), m.Cols())
	if err != nil {
		return nil, err
	}
	for i := 0; i < out.r; i++ {
		for j := 0; j < out.c; j++ {
			v, err := m.At(i, j)
			if err != nil {
				return nil, err
			}
			out.at(i, j).Set(v)
		}
	}

	return out, nil
}
