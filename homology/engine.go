// SPDX-License-Identifier: MIT

package homology

import (
	"context"
	"fmt"
	"sync/atomic"

	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/isaiahtx/simplicial-homology/chain"
	"github.com/isaiahtx/simplicial-homology/simplex"
)

const opEngine = "Engine.Compute"

// Engine computes homology with a bounded LRU of previous results keyed by
// the canonical complex fingerprint. It is safe for concurrent use.
type Engine struct {
	cache  *lru.Cache[chain.Fingerprint, *Result]
	opts   Options
	hits   atomic.Int64
	misses atomic.Int64
}

// NewEngine returns an Engine caching up to size results. opts apply to
// every computation.
func NewEngine(size int, opts ...Option) (*Engine, error) {
	if size <= 0 {
		return nil, fmt.Errorf("NewEngine(%d): %w", size, ErrCacheSize)
	}
	cache, err := lru.New[chain.Fingerprint, *Result](size)
	if err != nil {
		return nil, fmt.Errorf("NewEngine(%d): %w", size, err)
	}

	return &Engine{cache: cache, opts: gatherOptions(opts...)}, nil
}

// Compute returns the homology of faces, from cache when the same complex
// (in any face or label order) was computed before. Callers receive their
// own copy and may modify it.
func (e *Engine) Compute(ctx context.Context, faces []simplex.Face) (*Result, error) {
	cpx, err := simplex.Close(faces)
	if err != nil {
		return nil, homologyErrorf(opEngine, err)
	}
	strata := chain.Group(cpx.Faces())
	key := strata.Fingerprint()

	if r, ok := e.cache.Get(key); ok {
		e.hits.Add(1)
		e.opts.logger.Debug("homology: cache hit", "fingerprint", key.String())

		return r.Clone(), nil
	}
	e.misses.Add(1)

	r, err := computeStrata(ctx, strata, e.opts)
	if err != nil {
		return nil, homologyErrorf(opEngine, err)
	}
	e.cache.Add(key, r)

	return r.Clone(), nil
}

// Stats returns cache hits and misses since construction.
func (e *Engine) Stats() (hits, misses int64) { return e.hits.Load(), e.misses.Load() }

// Len returns the number of cached results.
func (e *Engine) Len() int { return e.cache.Len() }

// Purge drops every cached result.
func (e *Engine) Purge() { e.cache.Purge() }
