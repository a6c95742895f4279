// SPDX-License-Identifier: MIT

package search

import (
	"errors"
	"fmt"
	"strings"

	"github.com/katalvlaran/warebot/grid"
)

// DefaultPenalty is the score penalty for stepping onto an obstacle
// during a drop-off leg.
const DefaultPenalty = 5

// Sentinel errors for search execution.
var (
	// ErrNoPath is returned when the goal cannot be reached.
	ErrNoPath = errors.New("search: no path found")

	// ErrInvalidInput is returned when preconditions are violated.
	ErrInvalidInput = errors.New("search: invalid input")

	// ErrUnknownAlgorithm is returned by ParseAlgorithm for unknown names.
	ErrUnknownAlgorithm = errors.New("search: unknown algorithm")
)

// TripType governs the obstacle policy of a leg.
type TripType int

const (
	// Pickup legs treat obstacles as walls.
	Pickup TripType = iota
	// Dropoff legs may cross obstacles at a penalty.
	Dropoff
)

// Valid reports whether t is Pickup or Dropoff.
func (t TripType) Valid() bool {
	return t == Pickup || t == Dropoff
}

// String returns "pickup" or "dropoff".
func (t TripType) String() string {
	switch t {
	case Pickup:
		return "pickup"
	case Dropoff:
		return "dropoff"
	}
	return fmt.Sprintf("TripType(%d)", int(t))
}

// Result is the outcome of a single search.
//   - Path:         start … goal, consecutive cells 4-adjacent; nil if not found.
//   - Cost:         number of steps, len(Path)-1.
//   - Penalty:      accumulated obstacle penalty along Path.
//   - PenaltyCount: number of obstacle cells entered along Path.
type Result struct {
	Path         []grid.Position
	Cost         int
	Penalty      int
	PenaltyCount int
}

// Found reports whether the result carries a path.
func (r Result) Found() bool {
	return r.Path != nil
}

// Strategy is implemented by every search engine (bfs, dfs, ucs).
// Implementations hold no state between calls and never mutate g.
type Strategy interface {
	Search(g *grid.Grid, start, goal grid.Position, trip TripType) (Result, error)
}

// StrategyFunc adapts a plain function to the Strategy interface.
type StrategyFunc func(g *grid.Grid, start, goal grid.Position, trip TripType) (Result, error)

// Search calls f(g, start, goal, trip).
func (f StrategyFunc) Search(g *grid.Grid, start, goal grid.Position, trip TripType) (Result, error) {
	return f(g, start, goal, trip)
}

// Algorithm selects one of the built-in engines.
type Algorithm int

const (
	// UCS is uniform-cost search; the zero value.
	UCS Algorithm = iota
	// BFS is breadth-first search.
	BFS
	// DFS is depth-first search.
	DFS
)

// Algorithms lists every built-in algorithm.
func Algorithms() []Algorithm {
	return []Algorithm{UCS, BFS, DFS}
}

// String returns the short lower-case name ("ucs", "bfs", "dfs").
func (a Algorithm) String() string {
	switch a {
	case UCS:
		return "ucs"
	case BFS:
		return "bfs"
	case DFS:
		return "dfs"
	}
	return fmt.Sprintf("Algorithm(%d)", int(a))
}

// Title returns the long display name.
func (a Algorithm) Title() string {
	switch a {
	case UCS:
		return "Uniform Cost Search"
	case BFS:
		return "Breadth-First Search"
	case DFS:
		return "Depth-First Search"
	}
	return a.String()
}

// ParseAlgorithm matches a short name or a long display name,
// ignoring case and surrounding whitespace.
func ParseAlgorithm(name string) (Algorithm, error) {
	s := strings.ToLower(strings.TrimSpace(name))
	for _, a := range Algorithms() {
		if s == a.String() || s == strings.ToLower(a.Title()) {
			return a, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownAlgorithm, name)
}
