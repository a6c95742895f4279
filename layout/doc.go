// SPDX-License-Identifier: MIT

// Package layout generates seeded warehouse floors: a robot start, a set of
// packages, one drop-off per package and a scattering of obstacles.
//
// What
//
//   - Generate(cfg, opts...) validates cfg against Limits, then builds a
//     rows×cols floor with the robot 'R' at (0,0) and places, in order,
//     cfg.Packages packages 'P', cfg.Packages drop-offs 'D' and
//     cfg.Obstacles obstacles 'O'.
//   - Each placement draws (row, col) uniformly from the RNG and retries
//     until it hits a free cell that is not the robot's start.
//   - The result is frozen into an immutable *grid.Grid; the placement
//     lists are returned alongside it in draw order.
//
// Determinism
//
//	Randomness comes only from the *rand.Rand supplied by WithSeed or
//	WithRand. The same Config and seed always yield the same Layout.
//	Generate returns ErrNeedRandSource when neither option is given.
//
// Errors
//
//   - ErrBadDimension    rows or cols outside Limits.
//   - ErrBadCount        package or obstacle count outside Limits.
//   - ErrNoRoom          not enough free cells for every placement.
//   - ErrNeedRandSource  no RNG configured.
//
// Complexity: O(rows·cols) memory; expected O(k·rows·cols/free) draws for k
// placements.
package layout
