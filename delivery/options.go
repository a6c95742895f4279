// SPDX-License-Identifier: MIT

package delivery

import (
	"io"
	"log/slog"
)

// Option configures an Orchestrator.
type Option func(*Orchestrator)

// WithReward sets the reward per completed delivery. Panics on n < 0.
func WithReward(n int) Option {
	if n < 0 {
		panic("delivery: WithReward(negative)")
	}
	return func(o *Orchestrator) {
		o.reward = n
	}
}

// WithLogger routes leg outcomes to l. Panics on nil.
func WithLogger(l *slog.Logger) Option {
	if l == nil {
		panic("delivery: WithLogger(nil)")
	}
	return func(o *Orchestrator) {
		o.logger = l
	}
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}
