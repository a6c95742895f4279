// SPDX-License-Identifier: MIT

// Package ucs implements uniform-cost (Dijkstra-style) search over a
// warehouse grid.
//
// The frontier is a min-heap keyed by accumulated step cost. Every step
// costs 1. On Dropoff legs an obstacle step also accrues the configured
// penalty and one hit, tracked apart from cost: the engine minimizes steps,
// and the penalty reported is whatever the chosen minimum-step path pays,
// not the minimum possible penalty.
//
// Notes on implementation choices:
//
//   - Ties on cost are broken by insertion order (a monotonic sequence
//     number), so equal-cost entries leave the heap first-in first-out.
//     With the fixed up, down, left, right neighbor order this makes the
//     chosen path reproducible.
//   - We use a "lazy" decrease-key strategy: a neighbor is pushed whenever
//     a strictly cheaper cost is found, and stale entries are skipped when
//     popped because their cell is already finalized.
//   - A cell is finalized (visited) when popped, not when pushed.
//
// Complexity (N = rows × cols):
//
//   - Time:  O(N log N)
//   - Space: O(N)
//
// Errors:
//
//   - search.ErrInvalidInput  nil grid, out-of-bounds start/goal, bad trip.
//   - search.ErrNoPath        heap exhausted before reaching goal.
package ucs
