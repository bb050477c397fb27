// SPDX-License-Identifier: MIT

package homology

import (
	"fmt"
	"math/big"
	"strings"

	"github.com/isaiahtx/simplicial-homology/chain"
)

// Group describes H_Dim ≅ Z^Rank ⊕ Z/t1 ⊕ Z/t2 ⊕ …
type Group struct {
	Dim     int
	Rank    int        // free rank (Betti number)
	Torsion []*big.Int // orders of the cyclic torsion summands, each >= 2
}

// IsTrivial reports whether the group is 0.
func (g Group) IsTrivial() bool { return g.Rank == 0 && len(g.Torsion) == 0 }

// TorsionInt64s returns Torsion as int64 values and whether all of them fit.
func (g Group) TorsionInt64s() ([]int64, bool) {
	out := make([]int64, len(g.Torsion))
	for i, t := range g.Torsion {
		if !t.IsInt64() {
			return nil, false
		}
		out[i] = t.Int64()
	}

	return out, true
}

// String renders the group as "0", "Z", "Z^3", "Z ⊕ Z/2Z" or "Z/2Z ⊕ Z/4Z".
func (g Group) String() string {
	if g.IsTrivial() {
		return "0"
	}
	parts := make([]string, 0, 1+len(g.Torsion))
	switch {
	case g.Rank == 1:
		parts = append(parts, "Z")
	case g.Rank > 1:
		parts = append(parts, fmt.Sprintf("Z^%d", g.Rank))
	}
	for _, t := range g.Torsion {
		parts = append(parts, "Z/"+t.String()+"Z")
	}

	return strings.Join(parts, " ⊕ ")
}

// clone deep-copies the torsion values.
func (g Group) clone() Group {
	out := Group{Dim: g.Dim, Rank: g.Rank}
	if len(g.Torsion) > 0 {
		out.Torsion = make([]*big.Int, len(g.Torsion))
		for i, t := range g.Torsion {
			out.Torsion[i] = new(big.Int).Set(t)
		}
	}

	return out
}

// Result is the homology of one complex.
type Result struct {
	// Groups holds H_0..H_top. Empty for the empty complex.
	Groups []Group
	// Sizes holds |C_n| for n = 0..top.
	Sizes []int
	// Fingerprint identifies the canonical complex.
	Fingerprint chain.Fingerprint
	// Components is the 1-skeleton component count; set only when the
	// connectivity check ran, otherwise 0.
	Components int
}

// Top returns the top dimension, or -1 for the empty complex.
func (r *Result) Top() int { return len(r.Groups) - 1 }

// At returns H_n. Every n outside 0..Top() is the zero group.
func (r *Result) At(n int) Group {
	if n < 0 || n >= len(r.Groups) {
		return Group{Dim: n}
	}

	return r.Groups[n]
}

// Vanishes reports whether H_n is zero because n lies above the top
// dimension. It says nothing about trivial groups at or below the top.
func (r *Result) Vanishes(n int) bool { return n > r.Top() }

// Betti returns the free ranks of H_0..H_top.
func (r *Result) Betti() []int {
	out := make([]int, len(r.Groups))
	for i, g := range r.Groups {
		out[i] = g.Rank
	}

	return out
}

// Euler returns Σ(−1)^n rank H_n, which equals Σ(−1)^n |C_n|.
func (r *Result) Euler() int {
	chi := 0
	for n, g := range r.Groups {
		if n%2 == 0 {
			chi += g.Rank
		} else {
			chi -= g.Rank
		}
	}

	return chi
}

// Clone returns a deep copy.
func (r *Result) Clone() *Result {
	out := &Result{
		Groups:      make([]Group, len(r.Groups)),
		Sizes:       append([]int(nil), r.Sizes...),
		Fingerprint: r.Fingerprint,
		Components:  r.Components,
	}
	for i, g := range r.Groups {
		out.Groups[i] = g.clone()
	}

	return out
}

// String renders one line per dimension followed by the vanishing marker:
//
//	H0: Z
//	H1: Z/2Z
//	H2: 0
//	Hn: 0 for all n>2
func (r *Result) String() string {
	var sb strings.Builder
	for _, g := range r.Groups {
		fmt.Fprintf(&sb, "H%d: %s\n", g.Dim, g)
	}
	if r.Top() < 0 {
		sb.WriteString("Hn: 0 for all n>=0\n")
	} else {
		fmt.Fprintf(&sb, "Hn: 0 for all n>%d\n", r.Top())
	}

	return sb.String()
}
