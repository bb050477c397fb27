// Package simplex provides faces and the closure of a face list into a full
// simplicial complex.
//
// What
//
//   - Face: a sequence of distinct non-negative vertex labels. Its dimension
//     is len(face)-1; its identity is the ascending sort of its labels.
//   - Validate: fail-fast rejection of malformed input (empty faces,
//     negative labels, repeated labels inside one face).
//   - Close: expands a list of (maximal) faces into the smallest superset
//     closed under "remove any one vertex".
//
// Closure semantics
//
//	Close scans every stored face and appends each single-vertex deletion
//	that is non-empty and not already stored, repeating full scans until a
//	pass adds nothing. Membership is exact sequence equality: labels are NOT
//	canonicalized at this stage. Input faces keep their order; new faces are
//	appended in discovery order. Duplicate input faces are absorbed.
//
// Complexity
//
//	A maximal k-face yields at most 2^k − 1 sub-faces. Each pass costs
//	O(F·k) map lookups for F stored faces; the number of passes is bounded
//	by the top dimension + 1.
//
// Errors
//
//   - ErrEmptyFace        a face with no vertices.
//   - ErrNegativeVertex   a label < 0.
//   - ErrDuplicateVertex  a label repeated within one face.
package simplex
