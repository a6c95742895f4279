// SPDX-License-Identifier: MIT

package delivery

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/katalvlaran/warebot/grid"
	"github.com/katalvlaran/warebot/search"
)

// Orchestrator runs deliveries with a fixed strategy. It is reusable but
// not safe for concurrent Runs.
type Orchestrator struct {
	strategy search.Strategy
	reward   int
	logger   *slog.Logger
}

// New returns an Orchestrator using s for every leg. Panics on nil s.
func New(s search.Strategy, opts ...Option) *Orchestrator {
	if s == nil {
		panic("delivery: New(nil strategy)")
	}
	o := &Orchestrator{
		strategy: s,
		reward:   DefaultReward,
		logger:   discardLogger(),
	}
	for _, opt := range opts {
		opt(o)
	}
	return o
}

// Run executes plan from a fresh State.
//
// Errors:
//   - ErrMismatchedStops, ErrNilGrid before any search.
//   - Any search error other than search.ErrNoPath, wrapped with the
//     delivery number and leg; no Report is returned in that case.
//   - search.ErrInvalidInput, wrapped the same way, when a strategy reports
//     success with an empty path or a path that does not run from the
//     robot's position to the leg's goal.
func (o *Orchestrator) Run(plan Plan) (*Report, error) {
	if len(plan.Packages) != len(plan.Dropoffs) {
		return nil, fmt.Errorf("Run: %d packages, %d drop-offs: %w",
			len(plan.Packages), len(plan.Dropoffs), ErrMismatchedStops)
	}
	if plan.Grid == nil {
		return nil, fmt.Errorf("Run: %w", ErrNilGrid)
	}

	rep := &Report{
		Algorithm:  strategyName(o.strategy),
		Deliveries: make([]Delivery, 0, len(plan.Packages)),
		State:      State{Position: plan.Start},
	}
	log := o.logger.With("algorithm", rep.Algorithm)
	log.Info("run started", "deliveries", len(plan.Packages), "start", plan.Start.String())

	for i := range plan.Packages {
		d, err := o.deliver(log, plan.Grid, &rep.State, i, plan.Packages[i], plan.Dropoffs[i])
		if err != nil {
			return nil, err
		}
		rep.Deliveries = append(rep.Deliveries, d)
	}

	log.Info("run finished",
		"delivered", rep.Delivered(),
		"reward", rep.State.RewardTotal,
		"movement_cost", rep.State.MovementCost,
		"penalty", rep.State.PenaltyTotal,
		"hits", rep.State.PenaltyCount,
		"score", rep.Score(),
	)
	return rep, nil
}

// deliver runs both legs of delivery i and updates st.
func (o *Orchestrator) deliver(log *slog.Logger, g *grid.Grid, st *State, i int, pkg, drop grid.Position) (Delivery, error) {
	d := Delivery{Index: i, Package: pkg, Dropoff: drop}
	log = log.With("delivery", i+1)

	from := st.Position
	pick, err := o.strategy.Search(g, from, pkg, search.Pickup)
	switch {
	case errors.Is(err, search.ErrNoPath):
		d.Status = StatusPickupFailed
		d.End = st.Position
		log.Warn("no path to package", "from", st.Position.String(), "package", pkg.String())
		return d, nil
	case err != nil:
		return d, fmt.Errorf("delivery %d: pickup: %w", i+1, err)
	}
	if err := checkLeg(pick, from, pkg); err != nil {
		return d, fmt.Errorf("delivery %d: pickup: %w", i+1, err)
	}
	st.apply(pick)
	d.PickupLeg = pick
	d.record(pick)
	log.Debug("picked up", "package", pkg.String(), "cost", pick.Cost)

	dropRes, err := o.strategy.Search(g, st.Position, drop, search.Dropoff)
	switch {
	case errors.Is(err, search.ErrNoPath):
		d.Status = StatusDropoffFailed
		d.End = st.Position
		log.Warn("no path to drop-off", "package", pkg.String(), "dropoff", drop.String())
		return d, nil
	case err != nil:
		return d, fmt.Errorf("delivery %d: dropoff: %w", i+1, err)
	}
	if err := checkLeg(dropRes, pkg, drop); err != nil {
		return d, fmt.Errorf("delivery %d: dropoff: %w", i+1, err)
	}
	st.apply(dropRes)
	st.RewardTotal += o.reward
	d.DropoffLeg = dropRes
	d.record(dropRes)
	d.Reward = o.reward
	d.Status = StatusDelivered
	d.End = st.Position

	log.Info("delivered",
		"package", pkg.String(),
		"dropoff", drop.String(),
		"steps", d.Steps,
		"movement_cost", d.MovementCost,
		"hits", d.Hits,
		"penalty", d.Penalty,
	)
	return d, nil
}

// checkLeg rejects a successful search whose path does not run from start
// to goal. The error wraps search.ErrInvalidInput.
func checkLeg(res search.Result, start, goal grid.Position) error {
	if !res.Found() {
		return fmt.Errorf("%w: empty path without ErrNoPath", search.ErrInvalidInput)
	}
	first, last := res.Path[0], res.Path[len(res.Path)-1]
	if first != start || last != goal {
		return fmt.Errorf("%w: path runs %v to %v, want %v to %v", search.ErrInvalidInput, first, last, start, goal)
	}
	return nil
}

// record folds a successful leg into the delivery's own totals.
func (d *Delivery) record(res search.Result) {
	d.Path = JoinPaths(d.Path, res.Path)
	d.Steps = len(d.Path) - 1
	d.MovementCost += res.Cost
	d.Penalty += res.Penalty
	d.Hits += res.PenaltyCount
}

func strategyName(s search.Strategy) string {
	if n, ok := s.(fmt.Stringer); ok {
		return n.String()
	}
	return fmt.Sprintf("%T", s)
}
