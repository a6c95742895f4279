// SPDX-License-Identifier: MIT

package search

import (
	"fmt"

	"github.com/katalvlaran/warebot/grid"
)

// Validate checks the preconditions every engine enforces before searching.
// The returned error wraps ErrInvalidInput.
func Validate(g *grid.Grid, start, goal grid.Position, trip TripType) error {
	if g == nil {
		return fmt.Errorf("%w: grid is nil", ErrInvalidInput)
	}
	if !g.InBounds(start) {
		return fmt.Errorf("%w: start %v outside %dx%d grid", ErrInvalidInput, start, g.Rows(), g.Cols())
	}
	if !g.InBounds(goal) {
		return fmt.Errorf("%w: goal %v outside %dx%d grid", ErrInvalidInput, goal, g.Rows(), g.Cols())
	}
	if !trip.Valid() {
		return fmt.Errorf("%w: %v", ErrInvalidInput, trip)
	}
	return nil
}

// Enter applies the obstacle policy for stepping onto p. It reports
// whether p may be entered and whether doing so counts as an obstacle hit:
//
//	Pickup,  obstacle → (false, false)
//	Dropoff, obstacle → (true,  true)
//	any,     other    → (true,  false)
func Enter(g *grid.Grid, p grid.Position, trip TripType) (ok, hit bool) {
	if !g.IsObstacle(p) {
		return true, false
	}
	return trip == Dropoff, trip == Dropoff
}

// Trail is a frontier node linked to its parent. Steps, Penalty and Hits
// accumulate along the chain so that each node knows the totals for the
// path that reaches it.
type Trail struct {
	Pos     grid.Position
	Parent  *Trail
	Steps   int
	Penalty int
	Hits    int
}

// Root starts a trail at p with zero totals.
func Root(p grid.Position) *Trail {
	return &Trail{Pos: p}
}

// Extend returns a child trail one step further at p.
// A hit adds penalty to the running Penalty and counts once in Hits.
func (t *Trail) Extend(p grid.Position, hit bool, penalty int) *Trail {
	next := &Trail{
		Pos:     p,
		Parent:  t,
		Steps:   t.Steps + 1,
		Penalty: t.Penalty,
		Hits:    t.Hits,
	}
	if hit {
		next.Penalty += penalty
		next.Hits++
	}
	return next
}

// Path rebuilds the positions from the root to t.
func (t *Trail) Path() []grid.Position {
	path := make([]grid.Position, t.Steps+1)
	for cur, i := t, t.Steps; cur != nil; cur, i = cur.Parent, i-1 {
		path[i] = cur.Pos
	}
	return path
}

// Result converts the trail into a search Result.
func (t *Trail) Result() Result {
	return Result{
		Path:         t.Path(),
		Cost:         t.Steps,
		Penalty:      t.Penalty,
		PenaltyCount: t.Hits,
	}
}
