package homology_test

import (
	"context"
	"sync"
	"testing"

	"github.com/isaiahtx/simplicial-homology/homology"
	"github.com/isaiahtx/simplicial-homology/simplex"
	"github.com/stretchr/testify/require"
)

// TestEngine_CachesByComplex hits the cache for the same complex in any order.
func TestEngine_CachesByComplex(t *testing.T) {
	e, err := homology.NewEngine(4, quiet)
	require.NoError(t, err)

	first, err := e.Compute(context.Background(), rp2)
	require.NoError(t, err)

	reordered := make([]simplex.Face, len(rp2))
	for i, f := range rp2 {
		reordered[len(rp2)-1-i] = simplex.Face{f[2], f[0], f[1]}
	}
	second, err := e.Compute(context.Background(), reordered)
	require.NoError(t, err)

	require.Equal(t, first.String(), second.String())
	hits, misses := e.Stats()
	require.Equal(t, int64(1), hits)
	require.Equal(t, int64(1), misses)
	require.Equal(t, 1, e.Len())
}

// TestEngine_ReturnsCopies keeps the cache safe from caller mutation.
func TestEngine_ReturnsCopies(t *testing.T) {
	e, err := homology.NewEngine(2, quiet)
	require.NoError(t, err)

	a, err := e.Compute(context.Background(), rp2)
	require.NoError(t, err)
	a.Groups[1].Torsion[0].SetInt64(99)
	a.Groups[0].Rank = 42

	b, err := e.Compute(context.Background(), rp2)
	require.NoError(t, err)
	require.Equal(t, "Z", b.At(0).String())
	require.Equal(t, "Z/2Z", b.At(1).String())
}

// TestEngine_Evicts drops the least recently used complex.
func TestEngine_Evicts(t *testing.T) {
	e, err := homology.NewEngine(1, quiet)
	require.NoError(t, err)

	_, err = e.Compute(context.Background(), circle)
	require.NoError(t, err)
	_, err = e.Compute(context.Background(), disk)
	require.NoError(t, err)
	_, err = e.Compute(context.Background(), circle)
	require.NoError(t, err)

	hits, misses := e.Stats()
	require.Equal(t, int64(0), hits)
	require.Equal(t, int64(3), misses)
	require.Equal(t, 1, e.Len())

	e.Purge()
	require.Equal(t, 0, e.Len())
}

// TestEngine_ErrorsNotCached leaves the cache empty after a failure.
func TestEngine_ErrorsNotCached(t *testing.T) {
	e, err := homology.NewEngine(2, quiet)
	require.NoError(t, err)

	_, err = e.Compute(context.Background(), []simplex.Face{{1, 1}})
	require.ErrorIs(t, err, simplex.ErrDuplicateVertex)
	require.Equal(t, 0, e.Len())

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = e.Compute(ctx, circle)
	require.ErrorIs(t, err, context.Canceled)
	require.Equal(t, 0, e.Len())
}

// TestEngine_Concurrent shares one Engine across goroutines.
func TestEngine_Concurrent(t *testing.T) {
	e, err := homology.NewEngine(8, quiet, homology.WithParallelism(2))
	require.NoError(t, err)

	inputs := [][]simplex.Face{circle, disk, rp2, klein, torus(), wedge}
	want := make([]string, len(inputs))
	for i, in := range inputs {
		r, err := homology.Compute(context.Background(), in, quiet)
		require.NoError(t, err)
		want[i] = r.String()
	}

	var wg sync.WaitGroup
	got := make([]string, 4*len(inputs))
	errs := make([]error, len(got))
	for i := range got {
		i := i
		wg.Add(1)
		go func() {
			defer wg.Done()
			r, err := e.Compute(context.Background(), inputs[i%len(inputs)])
			if err != nil {
				errs[i] = err
				return
			}
			got[i] = r.String()
		}()
	}
	wg.Wait()

	for i := range got {
		require.NoError(t, errs[i])
		require.Equal(t, want[i%len(inputs)], got[i])
	}
}

// TestNewEngine_BadSize rejects a non-positive capacity.
func TestNewEngine_BadSize(t *testing.T) {
	_, err := homology.NewEngine(0)
	require.ErrorIs(t, err, homology.ErrCacheSize)
}
