// SPDX-License-Identifier: MIT

package search

import "github.com/katalvlaran/warebot/grid"

// Option configures an engine via functional arguments.
type Option func(*Options)

// Options holds engine parameters shared by bfs, dfs and ucs.
type Options struct {
	// Penalty is charged for every obstacle cell entered on a Dropoff leg.
	Penalty int

	// OnVisit is called each time the engine expands a position,
	// in expansion order.
	OnVisit func(p grid.Position)
}

// DefaultOptions returns Options with Penalty = DefaultPenalty and a
// no-op OnVisit hook.
func DefaultOptions() Options {
	return Options{
		Penalty: DefaultPenalty,
		OnVisit: func(grid.Position) {},
	}
}

// NewOptions applies opts over DefaultOptions.
func NewOptions(opts ...Option) Options {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// WithPenalty overrides the per-obstacle drop-off penalty.
// Panics on a negative penalty; a zero penalty is allowed.
func WithPenalty(n int) Option {
	if n < 0 {
		panic("search: WithPenalty(negative)")
	}
	return func(o *Options) {
		o.Penalty = n
	}
}

// WithOnVisit registers a hook run on every expansion. A nil fn is ignored.
func WithOnVisit(fn func(p grid.Position)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnVisit = fn
		}
	}
}
