// Package homology computes the simplicial homology groups H_n(K; Z) of a
// finite simplicial complex K given by a list of faces.
//
// What
//
//   - Compute runs the full pipeline:
//     simplex.Close → chain.Group → chain.Boundary → snf.Compute → Assemble.
//   - Assemble turns stratum sizes and boundary summaries into groups:
//     free rank(H_n) = |C_n| − rank ∂_n − rank ∂_{n+1}   (rank ∂_0 = 0)
//     torsion(H_n)   = nontrivial elementary divisors of ∂_{n+1}
//     (none for the top dimension, where ∂_{top+1} does not exist).
//   - Result holds H_0..H_top and answers At(n) for any n; every n > top is
//     the zero group, and String() states that explicitly.
//   - Engine memoizes results by the BLAKE3 fingerprint of the canonical
//     complex in a bounded LRU, so repeated or reordered inputs are free.
//
// Concurrency
//
//	The pipeline is sequential by default. With WithParallelism(n), the
//	boundary/SNF pair of each dimension runs on an errgroup limited to n
//	goroutines; pairs share no mutable state and the result is identical.
//	The first failure cancels the others and the whole computation fails:
//	no partial groups are ever returned.
//
// Errors
//
//   - simplex.ErrEmptyFace / ErrNegativeVertex / ErrDuplicateVertex for bad input.
//   - snf.ErrRetriesExhausted and friends from the divisor engine.
//   - ErrNegativeRank when sizes and ranks are inconsistent (a defect, not
//     a property of any valid complex).
//   - ErrInconsistent when WithConnectivityCheck finds rank H_0 differing
//     from the number of connected components of the 1-skeleton.
//
// Example
//
//	res, err := homology.Compute(ctx, []simplex.Face{{0, 1}, {1, 2}, {2, 0}})
//	if err != nil { ... }
//	fmt.Print(res) // H0: Z / H1: Z / Hn: 0 for all n>1
package homology
