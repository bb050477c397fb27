// SPDX-License-Identifier: MIT

package complexes

import "math/rand"

const (
	panicNilLabelFn = "complexes: WithLabelScheme: fn must not be nil"
	panicNilRand    = "complexes: WithRand: r must not be nil"
)

// Option configures Build.
type Option func(*config)

// config is the resolved Build configuration shared by every constructor.
type config struct {
	labelFn func(int) int // applied to every vertex after offsetting
	rng     *rand.Rand    // nil unless WithSeed/WithRand
}

func newConfig(opts ...Option) config {
	cfg := config{labelFn: identityLabel}
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}

	return cfg
}

func identityLabel(i int) int { return i }

// WithLabelScheme maps internal vertex indices to output labels. fn must be
// injective on the indices used and never return a negative label.
func WithLabelScheme(fn func(int) int) Option {
	if fn == nil {
		panic(panicNilLabelFn)
	}

	return func(c *config) { c.labelFn = fn }
}

// WithOffset shifts every label by k (k >= 0 keeps labels valid).
func WithOffset(k int) Option {
	return WithLabelScheme(func(i int) int { return i + k })
}

// WithSeed installs a deterministic rng for random constructors.
func WithSeed(seed int64) Option {
	return func(c *config) { c.rng = rand.New(rand.NewSource(seed)) }
}

// WithRand installs a caller-owned rng.
func WithRand(r *rand.Rand) Option {
	if r == nil {
		panic(panicNilRand)
	}

	return func(c *config) { c.rng = r }
}
