package simplex_test

import (
	"testing"

	"github.com/isaiahtx/simplicial-homology/simplex"
	"github.com/stretchr/testify/require"
)

// TestValidate_Errors checks each malformed-input class and the face index
// carried in the message.
func TestValidate_Errors(t *testing.T) {
	cases := []struct {
		name  string
		faces []simplex.Face
		want  error
		index string
	}{
		{"empty", []simplex.Face{{0, 1}, {}}, simplex.ErrEmptyFace, "face 1"},
		{"negative", []simplex.Face{{0, -3}}, simplex.ErrNegativeVertex, "face 0"},
		{"duplicate", []simplex.Face{{0}, {1, 2}, {4, 5, 4}}, simplex.ErrDuplicateVertex, "face 2"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := simplex.Validate(tc.faces)
			require.ErrorIs(t, err, tc.want)
			require.Contains(t, err.Error(), tc.index)

			_, err = simplex.Close(tc.faces)
			require.ErrorIs(t, err, tc.want)
		})
	}

	require.NoError(t, simplex.Validate(nil))
	require.NoError(t, simplex.Validate([]simplex.Face{{7}, {2, 0, 1}}))
}

// TestClose_Triangle checks discovery order for a single 2-face.
func TestClose_Triangle(t *testing.T) {
	c, err := simplex.Close([]simplex.Face{{0, 1, 2}})
	require.NoError(t, err)

	want := []simplex.Face{
		{0, 1, 2},
		{1, 2}, {0, 2}, {0, 1}, // first pass: deletions of [0 1 2]
		{2}, {1}, {0}, // second pass: deletions of the edges
	}
	require.Equal(t, want, c.Faces())
	require.Equal(t, 2, c.Dim())
	require.True(t, c.IsClosed())
}

// TestClose_PreservesInputOrder keeps unsorted labels as given.
func TestClose_PreservesInputOrder(t *testing.T) {
	in := []simplex.Face{{0, 1}, {1, 2}, {2, 0}}
	c, err := simplex.Close(in)
	require.NoError(t, err)

	got := c.Faces()
	require.Equal(t, in, got[:3])
	require.Len(t, got, 6) // three edges + three vertices
	require.True(t, c.Has(simplex.Face{2, 0}))
	require.False(t, c.Has(simplex.Face{0, 2})) // exact sequences, not canonical

	in[0][0] = 99 // caller mutation must not reach the complex
	require.Equal(t, simplex.Face{0, 1}, c.Faces()[0])
}

// TestClose_Idempotent applies Close to its own output.
func TestClose_Idempotent(t *testing.T) {
	first, err := simplex.Close([]simplex.Face{{0, 1, 2, 3}, {3, 4}, {5}})
	require.NoError(t, err)

	second, err := simplex.Close(first.Faces())
	require.NoError(t, err)
	require.Equal(t, first.Faces(), second.Faces())
	require.Equal(t, 15+1+1+1, first.Len()) // 2^4-1, edge [3 4], vertex 4, vertex 5
}

// TestClose_DownwardClosure asserts every facet of every face is present.
func TestClose_DownwardClosure(t *testing.T) {
	c, err := simplex.Close([]simplex.Face{{0, 4, 5}, {0, 1, 5}, {1, 3, 5}, {2, 3}})
	require.NoError(t, err)

	for _, f := range c.Faces() {
		if len(f) < 2 {
			continue
		}
		for j := range f {
			require.True(t, c.Has(f.Facet(j)), "facet %v of %v missing", f.Facet(j), f)
		}
	}
	require.True(t, c.IsClosed())
}

// TestClose_Duplicates absorbs repeated maximal faces.
func TestClose_Duplicates(t *testing.T) {
	c, err := simplex.Close([]simplex.Face{{0, 1}, {0, 1}, {1}})
	require.NoError(t, err)
	require.Equal(t, []simplex.Face{{0, 1}, {1}, {0}}, c.Faces())
}

// TestClose_Empty yields an empty complex.
func TestClose_Empty(t *testing.T) {
	c, err := simplex.Close(nil)
	require.NoError(t, err)
	require.Equal(t, 0, c.Len())
	require.Equal(t, -1, c.Dim())
	require.True(t, c.IsClosed())
}
