package complexes_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/isaiahtx/simplicial-homology/chain"
	"github.com/isaiahtx/simplicial-homology/complexes"
	"github.com/isaiahtx/simplicial-homology/simplex"
	"github.com/stretchr/testify/require"
)

// sizes returns the stratum sizes of the closure of faces.
func sizes(t *testing.T, faces []simplex.Face) []int {
	t.Helper()
	c, err := simplex.Close(faces)
	require.NoError(t, err)

	return chain.Group(c.Faces()).Sizes()
}

// TestCatalog_Sizes pins the face counts of every named complex.
func TestCatalog_Sizes(t *testing.T) {
	want := map[string][]int{
		"point":     {1},
		"circle":    {3, 3},
		"disk":      {3, 3, 1},
		"sphere":    {4, 6, 4},
		"torus":     {9, 27, 18},
		"rp2":       {6, 15, 10},
		"klein":     {9, 27, 18},
		"wedge":     {7, 9, 4},
		"two-loops": {9, 8},
	}
	require.Equal(t, len(want), len(complexes.Names()))
	for _, name := range complexes.Names() {
		t.Run(name, func(t *testing.T) {
			faces, err := complexes.Named(name)
			require.NoError(t, err)
			require.NoError(t, simplex.Validate(faces))
			require.Equal(t, want[name], sizes(t, faces))
		})
	}
}

// TestNamed_Unknown rejects names outside the catalog.
func TestNamed_Unknown(t *testing.T) {
	_, err := complexes.Named("mobius")
	require.ErrorIs(t, err, complexes.ErrUnknownComplex)
}

// TestNamed_ReturnsCopies keeps the catalog immutable.
func TestNamed_ReturnsCopies(t *testing.T) {
	a, err := complexes.Named("rp2")
	require.NoError(t, err)
	a[0][0] = 99

	b, err := complexes.Named("rp2")
	require.NoError(t, err)
	require.Equal(t, simplex.Face{0, 4, 5}, b[0])
}

// TestCircle_Path covers the one-dimensional families and their minimums.
func TestCircle_Path(t *testing.T) {
	c, err := complexes.Build(nil, complexes.Circle(4))
	require.NoError(t, err)
	require.Equal(t, []simplex.Face{{0, 1}, {1, 2}, {2, 3}, {3, 0}}, c)

	p, err := complexes.Build(nil, complexes.Path(3))
	require.NoError(t, err)
	require.Equal(t, []simplex.Face{{0, 1}, {1, 2}}, p)

	_, err = complexes.Build(nil, complexes.Circle(2))
	require.ErrorIs(t, err, complexes.ErrTooFewVertices)
	_, err = complexes.Build(nil, complexes.Path(1))
	require.ErrorIs(t, err, complexes.ErrTooFewVertices)
}

// TestSimplex_Sphere covers the simplex families.
func TestSimplex_Sphere(t *testing.T) {
	s, err := complexes.Build(nil, complexes.Simplex(3))
	require.NoError(t, err)
	require.Equal(t, []simplex.Face{{0, 1, 2, 3}}, s)

	s0, err := complexes.Build(nil, complexes.Sphere(0))
	require.NoError(t, err)
	require.Equal(t, []simplex.Face{{0}, {1}}, s0)

	s1, err := complexes.Build(nil, complexes.Sphere(1))
	require.NoError(t, err)
	require.Equal(t, []simplex.Face{{0, 1}, {0, 2}, {1, 2}}, s1)

	s3, err := complexes.Build(nil, complexes.Sphere(3))
	require.NoError(t, err)
	require.Equal(t, []int{5, 10, 10, 5}, sizes(t, s3))

	_, err = complexes.Build(nil, complexes.Sphere(-1))
	require.ErrorIs(t, err, complexes.ErrTooFewVertices)
}

// TestBuild_DisjointLabels shifts each part past the previous one.
func TestBuild_DisjointLabels(t *testing.T) {
	faces, err := complexes.Build(nil, complexes.Circle(3), complexes.Circle(3), complexes.Path(3))
	require.NoError(t, err)
	require.Equal(t, []simplex.Face{
		{0, 1}, {1, 2}, {2, 0},
		{3, 4}, {4, 5}, {5, 3},
		{6, 7}, {7, 8},
	}, faces)

	_, err = complexes.Build(nil, complexes.Point(), nil)
	require.ErrorIs(t, err, complexes.ErrConstructFailed)
}

// TestBuild_LabelScheme applies the scheme and rejects collisions.
func TestBuild_LabelScheme(t *testing.T) {
	faces, err := complexes.Build([]complexes.Option{complexes.WithOffset(10)}, complexes.Circle(3))
	require.NoError(t, err)
	require.Equal(t, []simplex.Face{{10, 11}, {11, 12}, {12, 10}}, faces)

	collide := complexes.WithLabelScheme(func(i int) int { return i / 2 })
	_, err = complexes.Build([]complexes.Option{collide}, complexes.Circle(4))
	require.ErrorIs(t, err, complexes.ErrBadLabel)

	_, err = complexes.Build([]complexes.Option{complexes.WithOffset(-1)}, complexes.Point())
	require.ErrorIs(t, err, complexes.ErrBadLabel)

	require.Panics(t, func() { complexes.WithLabelScheme(nil) })
	require.Panics(t, func() { complexes.WithRand(nil) })
}

// TestDisjointUnion compacts labels of arbitrary inputs.
func TestDisjointUnion(t *testing.T) {
	in := []simplex.Face{{10, 20}, {20, 30}}
	out, err := complexes.DisjointUnion(in, []simplex.Face{{5}})
	require.NoError(t, err)
	require.Equal(t, []simplex.Face{{0, 1}, {1, 2}, {3}}, out)
	require.Equal(t, simplex.Face{10, 20}, in[0])

	_, err = complexes.DisjointUnion([]simplex.Face{{1, 1}})
	require.ErrorIs(t, err, simplex.ErrDuplicateVertex)
}

// TestRandom is deterministic per seed and validates its parameters.
func TestRandom(t *testing.T) {
	build := func(seed int64) []simplex.Face {
		faces, err := complexes.Build([]complexes.Option{complexes.WithSeed(seed)}, complexes.Random(7, 2, 0.4))
		require.NoError(t, err)
		return faces
	}
	a, b := build(3), build(3)
	require.Equal(t, a, b)
	require.NoError(t, simplex.Validate(a))
	for v := 0; v < 7; v++ {
		require.Equal(t, simplex.Face{v}, a[v])
	}
	for _, f := range a[7:] {
		require.Len(t, f, 3)
		require.True(t, f.IsCanonical())
	}

	all, err := complexes.Build([]complexes.Option{complexes.WithSeed(1)}, complexes.Random(5, 1, 1))
	require.NoError(t, err)
	require.Len(t, all, 5+10)

	_, err = complexes.Build(nil, complexes.Random(5, 1, 0.5))
	require.ErrorIs(t, err, complexes.ErrNeedRandSource)
	_, err = complexes.Build([]complexes.Option{complexes.WithSeed(1)}, complexes.Random(5, 1, 1.5))
	require.ErrorIs(t, err, complexes.ErrInvalidProbability)
	_, err = complexes.Build([]complexes.Option{complexes.WithSeed(1)}, complexes.Random(3, 3, 0.5))
	require.ErrorIs(t, err, complexes.ErrTooFewVertices)
}

// TestDecode accepts both document shapes, YAML and JSON.
func TestDecode(t *testing.T) {
	cases := []struct {
		name, in string
		want     *complexes.Document
	}{
		{"yamlList", "- [0, 1]\n- [1, 2]\n- [2, 0]\n", &complexes.Document{Faces: []simplex.Face{{0, 1}, {1, 2}, {2, 0}}}},
		{"yamlMapping", "name: circle\nfaces:\n  - [0, 1]\n  - [1, 2]\n", &complexes.Document{Name: "circle", Faces: []simplex.Face{{0, 1}, {1, 2}}}},
		{"json", `{"name": "disk", "faces": [[0, 1, 2]]}`, &complexes.Document{Name: "disk", Faces: []simplex.Face{{0, 1, 2}}}},
		{"jsonList", `[[0], [1]]`, &complexes.Document{Faces: []simplex.Face{{0}, {1}}}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			doc, err := complexes.Decode(strings.NewReader(tc.in))
			require.NoError(t, err)
			require.Equal(t, tc.want, doc)
		})
	}
}

// TestDecode_Errors rejects malformed documents before closure.
func TestDecode_Errors(t *testing.T) {
	cases := []struct {
		name, in string
		want     error
	}{
		{"empty", "", complexes.ErrDecode},
		{"scalar", "42\n", complexes.ErrDecode},
		{"nonInteger", "- [0, 1.5]\n", complexes.ErrDecode},
		{"text", "- [a, b]\n", complexes.ErrDecode},
		{"emptyFace", "- []\n", simplex.ErrEmptyFace},
		{"negative", "[[0, -2]]", simplex.ErrNegativeVertex},
		{"duplicate", "faces: [[3, 3]]", simplex.ErrDuplicateVertex},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := complexes.Decode(strings.NewReader(tc.in))
			require.ErrorIs(t, err, tc.want)
		})
	}
}

// TestEncode writes a document Decode reads back.
func TestEncode(t *testing.T) {
	var buf bytes.Buffer
	doc := &complexes.Document{Name: "circle", Faces: []simplex.Face{{0, 1}, {1, 2}, {2, 0}}}
	require.NoError(t, complexes.Encode(&buf, doc))
	require.Contains(t, buf.String(), "name: circle\n")
	require.Contains(t, buf.String(), "- [1, 2]\n")

	back, err := complexes.Decode(&buf)
	require.NoError(t, err)
	require.Equal(t, doc, back)
}
