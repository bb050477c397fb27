// Package homology computes simplicial homology groups with integer
// coefficients, exactly.
//
// Given the maximal faces of a finite simplicial complex K, the pipeline
// returns H_n(K; Z) ≅ Z^r ⊕ Z/d1 ⊕ … ⊕ Z/dk for every n, with the
// torsion orders satisfying d1 | d2 | … | dk.
//
// Pipeline (leaves first):
//
//	simplex/   face validation and downward closure of a face list
//	chain/     canonical strata C_0..C_top, boundary matrices ∂_d, fingerprint
//	matrix/    big.Int matrices, elementary operations, Smith normal form
//	snf/       rank and elementary divisors with a bounded retry policy
//	homology/  assembly of H_n, the Compute pipeline and a cached Engine
//
// Supporting packages:
//
//	skeleton/  1-skeleton graph and connected components (H_0 cross-check)
//	complexes/ catalog of classic triangulations, random complexes, YAML/JSON
//	cmd/homology  command-line front end
//
// Quick example:
//
//	   0
//	  / \
//	 1───2     faces [[0,1],[1,2],[2,0]]  →  H0 = Z, H1 = Z, Hn = 0 for n > 1
//
//	go get github.com/isaiahtx/simplicial-homology/homology
package homology
