// SPDX-License-Identifier: MIT

package grid

import (
	"errors"
	"fmt"
)

// Sentinel errors for grid construction and lookups.
var (
	// ErrEmptyGrid indicates the input matrix has no rows or no columns.
	ErrEmptyGrid = errors.New("grid: input must have at least one row and one column")
	// ErrNonRectangular indicates rows of differing lengths.
	ErrNonRectangular = errors.New("grid: all rows must have the same length")
	// ErrInvalidMarker indicates a cell holds a marker outside the known set.
	ErrInvalidMarker = errors.New("grid: invalid cell marker")
	// ErrOutOfBounds indicates a position outside the grid.
	ErrOutOfBounds = errors.New("grid: position out of bounds")
)

// Marker classifies a single cell.
type Marker rune

const (
	// Free is an empty floor cell.
	Free Marker = '-'
	// Obstacle blocks pickup legs and penalizes drop-off legs.
	Obstacle Marker = 'O'
	// Robot marks the robot's starting cell.
	Robot Marker = 'R'
	// Package marks a cell holding a package to collect.
	Package Marker = 'P'
	// DropOff marks a package's destination cell.
	DropOff Marker = 'D'
)

// freeAlias is accepted by Parse as a synonym of Free.
const freeAlias = '.'

// Valid reports whether m is one of the known markers.
func (m Marker) Valid() bool {
	switch m {
	case Free, Obstacle, Robot, Package, DropOff:
		return true
	}
	return false
}

// String returns the single-character form of the marker.
func (m Marker) String() string {
	return string(rune(m))
}

// Position is a 0-indexed (Row, Col) cell coordinate.
type Position struct {
	Row, Col int
}

// Pos is shorthand for Position{Row: row, Col: col}.
func Pos(row, col int) Position {
	return Position{Row: row, Col: col}
}

// String formats the position as "(row,col)".
func (p Position) String() string {
	return fmt.Sprintf("(%d,%d)", p.Row, p.Col)
}

// Adjacent reports whether p and q differ by exactly one orthogonal step.
func (p Position) Adjacent(q Position) bool {
	return Manhattan(p, q) == 1
}

// Manhattan returns |Δrow| + |Δcol| between p and q.
func Manhattan(p, q Position) int {
	return abs(p.Row-q.Row) + abs(p.Col-q.Col)
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

// Grid is an immutable rows×cols matrix of markers.
// cells[r][c] holds the marker at Position{r, c}.
// offsets is precomputed in expansion order: up, down, left, right.
type Grid struct {
	rows, cols int
	cells      [][]Marker
	offsets    [4]Position
}
