// SPDX-License-Identifier: MIT

package delivery

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/warebot/grid"
	"github.com/katalvlaran/warebot/search"
)

// DefaultReward is earned for every completed delivery.
const DefaultReward = 10

var (
	// ErrMismatchedStops indicates len(Packages) != len(Dropoffs).
	ErrMismatchedStops = errors.New("delivery: packages and drop-offs differ in number")

	// ErrNilGrid indicates a Plan without a grid.
	ErrNilGrid = errors.New("delivery: grid is nil")
)

// Plan is the input of a run. Dropoffs[i] belongs to Packages[i].
type Plan struct {
	Grid     *grid.Grid
	Start    grid.Position
	Packages []grid.Position
	Dropoffs []grid.Position
}

// Status is the outcome of one delivery.
type Status int

const (
	// StatusDelivered means both legs succeeded.
	StatusDelivered Status = iota
	// StatusPickupFailed means the package was unreachable; the robot did not move.
	StatusPickupFailed
	// StatusDropoffFailed means the drop-off was unreachable from the package;
	// the robot stays on the package.
	StatusDropoffFailed
)

func (s Status) String() string {
	switch s {
	case StatusDelivered:
		return "delivered"
	case StatusPickupFailed:
		return "pickup failed"
	case StatusDropoffFailed:
		return "drop-off failed"
	}
	return fmt.Sprintf("Status(%d)", int(s))
}

// Delivery records one package's legs and what they contributed to State.
// Index is the zero-based position in the Plan. Path, Steps, MovementCost,
// Penalty and Hits cover only the legs that succeeded.
type Delivery struct {
	Index        int
	Package      grid.Position
	Dropoff      grid.Position
	Status       Status
	PickupLeg    search.Result
	DropoffLeg   search.Result
	Path         []grid.Position
	Steps        int
	MovementCost int
	Penalty      int
	Hits         int
	Reward       int
	End          grid.Position // robot position after this delivery
}

// State holds the running totals of a run.
type State struct {
	MovementCost int
	PenaltyTotal int
	PenaltyCount int
	RewardTotal  int
	Position     grid.Position
}

// Score returns RewardTotal − MovementCost − PenaltyTotal.
func (s State) Score() int {
	return s.RewardTotal - s.MovementCost - s.PenaltyTotal
}

// apply adds a successful leg and moves the robot to its last cell.
func (s *State) apply(res search.Result) {
	s.MovementCost += res.Cost
	s.PenaltyTotal += res.Penalty
	s.PenaltyCount += res.PenaltyCount
	s.Position = res.Path[len(res.Path)-1]
}

// Report is the outcome of a run.
type Report struct {
	Algorithm  string
	Deliveries []Delivery
	State      State
}

// Delivered counts deliveries with StatusDelivered.
func (r *Report) Delivered() int {
	n := 0
	for _, d := range r.Deliveries {
		if d.Status == StatusDelivered {
			n++
		}
	}
	return n
}

// Score is the final State's score.
func (r *Report) Score() int { return r.State.Score() }

// JoinPaths concatenates a pickup path and a drop-off path that starts where
// the pickup path ends, without repeating the junction cell.
// The result is a fresh slice; either argument may be empty.
func JoinPaths(pickup, dropoff []grid.Position) []grid.Position {
	out := make([]grid.Position, 0, len(pickup)+len(dropoff))
	out = append(out, pickup...)
	if len(pickup) == 0 {
		return append(out, dropoff...)
	}
	if len(dropoff) > 0 {
		out = append(out, dropoff[1:]...)
	}
	return out
}
