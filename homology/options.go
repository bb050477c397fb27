// SPDX-License-Identifier: MIT

package homology

import (
	"log/slog"

	"github.com/isaiahtx/simplicial-homology/snf"
)

// DefaultParallelism runs dimensions one after another.
const DefaultParallelism = 1

// DefaultCacheSize is the Engine LRU capacity used by the CLI.
const DefaultCacheSize = 128

const (
	panicParallelism = "homology: WithParallelism: n must be >= 1"
	panicNilLogger   = "homology: WithLogger: l must not be nil"
)

// Option configures Compute and Engine.
type Option func(*Options)

// Options holds the resolved configuration.
type Options struct {
	parallelism       int
	snfOpts           []snf.Option
	logger            *slog.Logger
	checkConnectivity bool
}

// DefaultOptions returns sequential execution, default SNF policy,
// slog.Default() and no connectivity check.
func DefaultOptions() Options {
	return Options{
		parallelism: DefaultParallelism,
		logger:      slog.Default(),
	}
}

func gatherOptions(opts ...Option) Options {
	o := DefaultOptions()
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}

	return o
}

// WithParallelism reduces up to n dimensions concurrently.
func WithParallelism(n int) Option {
	if n < 1 {
		panic(panicParallelism)
	}

	return func(o *Options) { o.parallelism = n }
}

// WithSNFOptions forwards options to every snf.Compute call. The pipeline
// always sets snf.WithContext and snf.WithLogger first, so these may
// override them.
func WithSNFOptions(opts ...snf.Option) Option {
	return func(o *Options) { o.snfOpts = append(o.snfOpts, opts...) }
}

// WithLogger sets the logger for progress (Debug) and retry (Warn) records.
func WithLogger(l *slog.Logger) Option {
	if l == nil {
		panic(panicNilLogger)
	}

	return func(o *Options) { o.logger = l }
}

// WithConnectivityCheck cross-checks rank H_0 against the connected
// components of the 1-skeleton and fails with ErrInconsistent on mismatch.
func WithConnectivityCheck() Option {
	return func(o *Options) { o.checkConnectivity = true }
}
