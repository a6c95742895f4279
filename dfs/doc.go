// SPDX-License-Identifier: MIT

// Package dfs implements depth-first search over a warehouse grid.
//
// The frontier is an explicit LIFO stack of trail nodes. Neighbors are
// pushed in the order up, down, left, right, so "right" is popped and
// explored first. A cell may be pushed several times before it is popped;
// the visited check happens at pop time and repeated pops are skipped.
// The goal test runs on pop, before the visited test.
//
// DFS returns the first path it discovers, which is generally not the
// shortest. Cost is len(Path)-1.
//
// Trip policy matches the other engines: Pickup legs never enter obstacles;
// Dropoff legs may, and each obstacle on the returned path adds the
// configured penalty once.
//
// Complexity (N = rows × cols):
//
//   - Time:   O(N)  each cell expanded at most once; at most 4 pushes per expansion.
//   - Memory: O(N)  stack, visited set and trail nodes.
//
// Errors:
//
//   - search.ErrInvalidInput  nil grid, out-of-bounds start/goal, bad trip.
//   - search.ErrNoPath        stack exhausted before reaching goal.
package dfs
