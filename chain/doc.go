// Package chain turns a closed face collection into indexed chain-group bases
// and builds the boundary operators between them.
//
// What
//
//   - Group partitions faces by dimension, canonicalizes each one (ascending
//     labels), drops canonical duplicates, sorts each dimension
//     lexicographically and numbers the faces 0..n-1. The result, Strata, is
//     the addressing scheme for every boundary matrix.
//   - Boundary builds ∂d : C_d → C_{d-1} as an integer matrix with rows indexed
//     by Stratum(d-1) and columns by Stratum(d). For a face (v0,…,vd) the
//     entry for the facet that omits vi is (−1)^i, starting at +1.
//   - Strata.Euler returns Σ(−1)^d |Stratum(d)|.
//   - Strata.Fingerprint hashes the canonical strata with BLAKE3 so equal
//     complexes given in different orders share a key.
//
// Determinism
//
//	Index assignment depends only on the sorted canonical faces, never on map
//	iteration or input order. Reordering the input permutes nothing.
//
// Degenerate cases
//
//	An empty domain stratum yields a rows×0 matrix; callers treat it as the
//	zero map without running a reduction.
package chain
