// SPDX-License-Identifier: MIT

package layout

import (
	"fmt"
	"math/rand"
)

// defaultSeed replaces a zero seed so that WithSeed(0) stays reproducible.
const defaultSeed int64 = 1

// Option customizes Generate.
type Option func(*config)

type config struct {
	rng    *rand.Rand
	limits Limits
}

func newConfig(opts ...Option) config {
	c := config{limits: DefaultLimits()}
	for _, opt := range opts {
		opt(&c)
	}
	return c
}

// rngFromSeed returns a deterministic source; seed 0 maps to defaultSeed.
func rngFromSeed(seed int64) *rand.Rand {
	if seed == 0 {
		seed = defaultSeed
	}
	return rand.New(rand.NewSource(seed))
}

// WithSeed seeds a fresh *rand.Rand. Seed 0 is treated as 1.
func WithSeed(seed int64) Option {
	return func(c *config) {
		c.rng = rngFromSeed(seed)
	}
}

// WithRand supplies an explicit RNG. Panics on nil.
// The RNG is advanced by Generate and must not be shared across goroutines.
func WithRand(r *rand.Rand) Option {
	if r == nil {
		panic("layout: WithRand(nil)")
	}
	return func(c *config) {
		c.rng = r
	}
}

// WithLimits replaces DefaultLimits. Panics when a range is empty or
// starts below its minimum meaningful value.
func WithLimits(l Limits) Option {
	if err := l.check(); err != nil {
		panic(fmt.Sprintf("layout: WithLimits: %v", err))
	}
	return func(c *config) {
		c.limits = l
	}
}
