// SPDX-License-Identifier: MIT

// Package delivery drives a robot through a sequence of deliveries using any
// search.Strategy.
//
// Each delivery i is two legs:
//
//	pickup   current position → Packages[i], search.Pickup (obstacles are walls)
//	dropoff  Packages[i]      → Dropoffs[i], search.Dropoff (obstacles cost a penalty)
//
// Running totals live in State and are reset at the start of every Run:
//
//   - a successful pickup leg adds its cost, penalty and hit count and moves
//     the robot onto the package;
//   - a successful drop-off leg does the same, adds the reward and moves the
//     robot onto the drop-off;
//   - an unreachable leg (search.ErrNoPath) is recorded and skipped; totals
//     already applied by the pickup leg stay applied;
//   - any other search error aborts the run.
//
// Score = RewardTotal − MovementCost − PenaltyTotal.
//
// Logging goes through the *slog.Logger given with WithLogger; by default
// the orchestrator is silent.
package delivery
