// SPDX-License-Identifier: MIT

// Package search defines the contract shared by every path-search engine
// in warebot: the trip type and its obstacle policy, the Result shape,
// the Strategy interface, functional Options and sentinel errors.
//
// What
//
//   - Strategy.Search(g, start, goal, trip) returns a Result or an error.
//   - TripType selects the obstacle policy for a leg:
//     Pickup  – obstacle cells are impassable;
//     Dropoff – obstacle cells are passable, each step onto one adds
//     the penalty (DefaultPenalty = 5) and increments PenaltyCount.
//   - Result holds Path, Cost (= len(Path)-1), Penalty and PenaltyCount.
//   - Trail is a parent-linked frontier node that engines use to rebuild
//     the path and carry per-path penalty accounting.
//
// Determinism
//
//	Engines expand neighbors in the order returned by grid.Neighbors:
//	up, down, left, right. Together with each engine's frontier discipline
//	this fixes which of several equally good paths is returned.
//
// Errors
//
//   - ErrNoPath            goal unreachable under the trip's policy.
//   - ErrInvalidInput      nil grid, out-of-bounds start/goal, unknown trip.
//   - ErrUnknownAlgorithm  ParseAlgorithm could not match a name.
//
// On ErrNoPath engines return the zero Result: no path, zero cost and
// zero penalty fields.
package search
