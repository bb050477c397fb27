// SPDX-License-Identifier: MIT

// Package snf: functional configuration for the retry policy and backend.
//
// Design goals:
//   - Deterministic behavior: no global state.
//   - Safe by construction: WithX panics only on nonsensical values
//     (programmer error); runtime paths return errors.
package snf

import (
	"context"
	"log/slog"
	"time"
)

// ---------- Defaults (single source of truth) ----------

const (
	// DefaultMaxAttempts bounds reduction attempts for transient failures.
	DefaultMaxAttempts = 5

	// DefaultRetryDelay is the pause between attempts.
	DefaultRetryDelay = 200 * time.Millisecond
)

// ---------- Internal panic messages ----------

const (
	panicMaxAttempts = "snf: WithMaxAttempts: n must be >= 1"
	panicRetryDelay  = "snf: WithRetryDelay: d must be >= 0"
	panicNilContext  = "snf: WithContext: ctx must not be nil"
	panicNilReducer  = "snf: WithReducer: r must not be nil"
	panicNilLogger   = "snf: WithLogger: l must not be nil"
)

// Option mutates Options. Later options override earlier ones.
type Option func(*Options)

// Options stores the effective configuration after applying Option setters.
type Options struct {
	ctx         context.Context
	maxAttempts int // 0 means unbounded
	retryDelay  time.Duration
	reducer     Reducer
	logger      *slog.Logger
}

// DefaultOptions returns the documented defaults: background context,
// DefaultMaxAttempts, DefaultRetryDelay, the Exact reducer, slog.Default().
func DefaultOptions() Options {
	return Options{
		ctx:         context.Background(),
		maxAttempts: DefaultMaxAttempts,
		retryDelay:  DefaultRetryDelay,
		reducer:     Exact,
		logger:      slog.Default(),
	}
}

// gatherOptions applies opts over DefaultOptions in order.
func gatherOptions(opts ...Option) Options {
	o := DefaultOptions()
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}

	return o
}

// MaxAttempts reports the attempt bound; 0 means unbounded.
func (o Options) MaxAttempts() int { return o.maxAttempts }

// RetryDelay reports the pause between attempts.
func (o Options) RetryDelay() time.Duration { return o.retryDelay }

// WithContext sets the context whose cancellation aborts retry waits.
func WithContext(ctx context.Context) Option {
	if ctx == nil {
		panic(panicNilContext)
	}

	return func(o *Options) { o.ctx = ctx }
}

// WithMaxAttempts bounds the total number of reduction attempts.
func WithMaxAttempts(n int) Option {
	if n < 1 {
		panic(panicMaxAttempts)
	}

	return func(o *Options) { o.maxAttempts = n }
}

// WithUnboundedRetries retries transient failures until one attempt succeeds
// or the context is done. Pair it with WithContext to bound latency.
func WithUnboundedRetries() Option {
	return func(o *Options) { o.maxAttempts = 0 }
}

// WithRetryDelay sets the pause between attempts.
func WithRetryDelay(d time.Duration) Option {
	if d < 0 {
		panic(panicRetryDelay)
	}

	return func(o *Options) { o.retryDelay = d }
}

// WithReducer selects the reduction backend.
func WithReducer(r Reducer) Option {
	if r == nil {
		panic(panicNilReducer)
	}

	return func(o *Options) { o.reducer = r }
}

// WithLogger sets the logger used for retry warnings.
func WithLogger(l *slog.Logger) Option {
	if l == nil {
		panic(panicNilLogger)
	}

	return func(o *Options) { o.logger = l }
}
