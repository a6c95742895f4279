// SPDX-License-Identifier: MIT

// Package bfs provides breadth-first search over a warehouse grid,
// returning the fewest-step path between two cells.
//
// What
//
//   - Explore cells in non-decreasing step count from the start.
//   - Frontier is FIFO; a cell is marked visited when it is enqueued,
//     so it enters the frontier at most once.
//   - Neighbors are enqueued in the order up, down, left, right.
//   - Pickup legs never enqueue obstacles. Dropoff legs enqueue them and
//     charge the penalty once for each obstacle on the resulting path.
//   - Terminates on the first dequeue of the goal.
//
// Determinism
//
//	The fixed neighbor order and FIFO discipline make the returned path
//	fully reproducible: among all shortest paths, BFS returns the one whose
//	cells were discovered first.
//
// Complexity (N = rows × cols)
//
//   - Time:   O(N)   each cell enqueued at most once, four edges each.
//   - Memory: O(N)   frontier, visited set and trail nodes.
//
// Usage
//
//	res, err := bfs.Search(g, grid.Pos(0, 0), grid.Pos(2, 2), search.Pickup)
//	if errors.Is(err, search.ErrNoPath) {
//	    // goal unreachable
//	}
//
//	// As a search.Strategy with options:
//	var s search.Strategy = bfs.New(search.WithPenalty(7))
//
// Errors
//
//   - search.ErrInvalidInput  nil grid, out-of-bounds start/goal, bad trip.
//   - search.ErrNoPath        frontier exhausted before reaching goal.
package bfs
