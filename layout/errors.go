// SPDX-License-Identifier: MIT

package layout

import "errors"

var (
	// ErrBadDimension indicates rows or cols outside the configured limits.
	ErrBadDimension = errors.New("layout: grid dimension out of range")

	// ErrBadCount indicates a package or obstacle count outside the configured limits.
	ErrBadCount = errors.New("layout: count out of range")

	// ErrNoRoom indicates the floor has fewer free cells than placements requested.
	ErrNoRoom = errors.New("layout: not enough free cells")

	// ErrNeedRandSource indicates Generate was called without WithSeed or WithRand.
	ErrNeedRandSource = errors.New("layout: rng is required")
)
