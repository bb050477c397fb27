// SPDX-License-Identifier: MIT
// Package matrix_test contains test helpers
//
// Purpose:
//   • Provide small, deterministic fixtures and utilities for kernels.

package matrix_test

import (
	"math/big"
	"math/rand"
	"testing"

	"github.com/isaiahtx/simplicial-homology/matrix"
	"github.com/stretchr/testify/require"
)

// hide wraps any Matrix to hide its concrete type from type assertions,
// forcing kernels through the interface (non-*Dense) path.
type hide struct{ matrix.Matrix }

// mustRows builds a Dense from int64 rows or fails the test.
func mustRows(t testing.TB, rows [][]int64) *matrix.Dense {
	t.Helper()
	m, err := matrix.NewFromRows(rows)
	require.NoError(t, err)

	return m
}

// diagInts returns the diagonal of m as int64 values; fails if any entry
// does not fit.
func diagInts(t testing.TB, m *matrix.Dense) []int64 {
	t.Helper()
	d := m.Diagonal()
	out := make([]int64, len(d))
	for i, v := range d {
		require.True(t, v.IsInt64(), "diagonal entry %d overflows int64", i)
		out[i] = v.Int64()
	}

	return out
}

// randomRows returns an r×c matrix with entries in [-span, span].
func randomRows(rng *rand.Rand, r, c int, span int64) [][]int64 {
	rows := make([][]int64, r)
	for i := range rows {
		rows[i] = make([]int64, c)
		for j := range rows[i] {
			rows[i][j] = rng.Int63n(2*span+1) - span
		}
	}

	return rows
}

// requireDivisibilityChain asserts d[i] | d[i+1] over the nonzero prefix and
// that zeros only trail.
func requireDivisibilityChain(t testing.TB, d []*big.Int) {
	t.Helper()
	var r big.Int
	seenZero := false
	for i, v := range d {
		require.GreaterOrEqual(t, v.Sign(), 0, "entry %d negative", i)
		if v.Sign() == 0 {
			seenZero = true
			continue
		}
		require.False(t, seenZero, "nonzero entry %d after a zero", i)
		if i+1 < len(d) && d[i+1].Sign() != 0 {
			require.Zero(t, r.Rem(d[i+1], v).Sign(), "d[%d]=%s does not divide d[%d]=%s", i, v, i+1, d[i+1])
		}
	}
}
