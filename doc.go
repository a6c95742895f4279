// SPDX-License-Identifier: MIT

// Package warebot plans the moves of a warehouse robot on a 4-connected
// grid: to a package (pickup leg), then to that package's drop-off cell
// (drop-off leg), one delivery after another.
//
// 🚀 What is inside?
//
//	grid/        markers, positions and the immutable Grid
//	search/      Strategy contract, TripType, Result, Options, sentinel errors
//	bfs/         breadth-first engine (shortest in steps)
//	dfs/         depth-first engine (first path found)
//	ucs/         uniform-cost engine (heap frontier, FIFO tie-break)
//	layout/      seeded placement of packages, drop-offs and obstacles
//	delivery/    orchestrator: legs, running totals, score, report
//	cmd/warebot  command-line front end
//
// This root package ties the engines together: NewStrategy maps a
// search.Algorithm to a ready-to-use search.Strategy.
//
// Quick start:
//
//	g := grid.MustParse(`
//	    R - O
//	    - - -
//	    P O D
//	`)
//	s, _ := warebot.NewStrategy(search.UCS)
//	res, err := s.Search(g, grid.Pos(0, 0), grid.Pos(2, 0), search.Pickup)
//
// Trip policy:
//
//   - Pickup legs treat obstacles as walls.
//   - Dropoff legs may cross obstacles; each crossing adds a fixed penalty
//     (search.DefaultPenalty) and counts one hit.
//
// All engines are synchronous and allocate their own state per call;
// a *grid.Grid may be shared between searches.
package warebot
