// Package skeleton exposes the 1-skeleton (vertices and edges) of a complex
// as a gonum undirected graph and counts its connected components.
//
// The component count equals the free rank of H0, which makes it an
// independent check on the boundary/SNF pipeline for dimension 0.
//
// Complexity: O(V + E) to build the graph and to find components.
package skeleton

import (
	"cmp"
	"slices"

	"gonum.org/v1/gonum/graph/simple"
	"gonum.org/v1/gonum/graph/topo"

	"github.com/isaiahtx/simplicial-homology/chain"
)

// Graph returns the 1-skeleton of s: one node per 0-face (node ID = vertex
// label) and one edge per 1-face. Endpoints missing from Stratum(0) are
// added with their edge.
func Graph(s chain.Strata) *simple.UndirectedGraph {
	g := simple.NewUndirectedGraph()
	for _, v := range s.At(0).Faces() {
		if g.Node(int64(v[0])) == nil {
			g.AddNode(simple.Node(v[0]))
		}
	}
	for _, e := range s.At(1).Faces() {
		g.SetEdge(g.NewEdge(simple.Node(e[0]), simple.Node(e[1])))
	}

	return g
}

// Components returns the vertex sets of the connected components of the
// 1-skeleton. Each set is sorted ascending and sets are ordered by their
// smallest vertex, so the output is deterministic.
func Components(s chain.Strata) [][]int {
	cc := topo.ConnectedComponents(Graph(s))
	out := make([][]int, 0, len(cc))
	for _, comp := range cc {
		ids := make([]int, len(comp))
		for i, n := range comp {
			ids[i] = int(n.ID())
		}
		slices.Sort(ids)
		out = append(out, ids)
	}
	slices.SortFunc(out, func(a, b []int) int { return cmp.Compare(a[0], b[0]) })

	return out
}

// Count returns the number of connected components.
func Count(s chain.Strata) int {
	return len(topo.ConnectedComponents(Graph(s)))
}
