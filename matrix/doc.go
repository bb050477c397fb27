// Package matrix provides exact integer matrices for chain-complex algebra.
//
// The matrix package provides:
//
//   - Dense: a row-major matrix of arbitrary-precision integers (math/big).
//     Shapes with zero rows or zero columns are legal; they stand for maps
//     into or out of the zero group and appear naturally for empty strata.
//   - Elementary unimodular operations (row/column swaps, adding an integer
//     multiple of one row/column to another, negation). These are exactly
//     the moves allowed when computing a Smith Normal Form.
//   - Mul and Transpose for composing boundary operators.
//   - SmithNormalForm: the exact diagonal reduction whose nonzero entries
//     form a divisibility chain d1 | d2 | ... | dr.
//
// No floating point is involved anywhere: every entry is a *big.Int and
// every kernel is deterministic (fixed loop orders, no map iteration).
//
// Errors are package-level sentinels (see errors.go); match them with
// errors.Is. Public methods never panic on user-triggered conditions.
package matrix
