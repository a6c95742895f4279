// SPDX-License-Identifier: MIT

package grid

import (
	"fmt"
	"strings"
	"unicode"
)

// New constructs a Grid from a non-empty, rectangular matrix of markers.
// It deep-copies the input so later changes by the caller are not observed.
// Returns ErrEmptyGrid if cells has no rows or no columns,
// ErrNonRectangular if any row length differs,
// ErrInvalidMarker if any cell holds an unknown marker.
// Complexity: O(R×C) time and memory.
func New(cells [][]Marker) (*Grid, error) {
	if len(cells) == 0 || len(cells[0]) == 0 {
		return nil, ErrEmptyGrid
	}
	rows, cols := len(cells), len(cells[0])
	copied := make([][]Marker, rows)
	for r, row := range cells {
		if len(row) != cols {
			return nil, fmt.Errorf("%w: row %d has %d cells, want %d", ErrNonRectangular, r, len(row), cols)
		}
		for c, m := range row {
			if !m.Valid() {
				return nil, fmt.Errorf("%w: %q at %v", ErrInvalidMarker, rune(m), Pos(r, c))
			}
		}
		copied[r] = make([]Marker, cols)
		copy(copied[r], row)
	}

	return &Grid{
		rows:  rows,
		cols:  cols,
		cells: copied,
		offsets: [4]Position{
			{Row: -1, Col: 0}, // up
			{Row: 1, Col: 0},  // down
			{Row: 0, Col: -1}, // left
			{Row: 0, Col: 1},  // right
		},
	}, nil
}

// Blank returns a rows×cols grid where every cell is Free.
func Blank(rows, cols int) (*Grid, error) {
	if rows < 1 || cols < 1 {
		return nil, ErrEmptyGrid
	}
	cells := make([][]Marker, rows)
	for r := range cells {
		cells[r] = make([]Marker, cols)
		for c := range cells[r] {
			cells[r][c] = Free
		}
	}
	return New(cells)
}

// Parse builds a Grid from its textual picture: one row per line,
// one marker rune per cell. Whitespace inside a line is ignored and
// blank lines are skipped; '.' is accepted for Free.
func Parse(text string) (*Grid, error) {
	var cells [][]Marker
	for _, line := range strings.Split(text, "\n") {
		var row []Marker
		for _, ch := range line {
			if unicode.IsSpace(ch) {
				continue
			}
			if ch == freeAlias {
				ch = rune(Free)
			}
			row = append(row, Marker(ch))
		}
		if len(row) > 0 {
			cells = append(cells, row)
		}
	}
	return New(cells)
}

// MustParse is like Parse but panics on error. Intended for tests and
// package-level fixtures.
func MustParse(text string) *Grid {
	g, err := Parse(text)
	if err != nil {
		panic(err)
	}
	return g
}

// Rows returns the number of rows.
func (g *Grid) Rows() int { return g.rows }

// Cols returns the number of columns.
func (g *Grid) Cols() int { return g.cols }

// InBounds reports whether p lies within the grid boundaries.
// Complexity: O(1).
func (g *Grid) InBounds(p Position) bool {
	return p.Row >= 0 && p.Row < g.rows && p.Col >= 0 && p.Col < g.cols
}

// At returns the marker stored at p, or ErrOutOfBounds.
func (g *Grid) At(p Position) (Marker, error) {
	if !g.InBounds(p) {
		return 0, fmt.Errorf("%w: %v in %dx%d grid", ErrOutOfBounds, p, g.rows, g.cols)
	}
	return g.cells[p.Row][p.Col], nil
}

// IsObstacle reports whether p is an in-bounds obstacle cell.
func (g *Grid) IsObstacle(p Position) bool {
	return g.InBounds(p) && g.cells[p.Row][p.Col] == Obstacle
}

// Neighbors returns the in-bounds 4-neighbors of p in the order
// up, down, left, right. Every search engine relies on this order
// to choose among equally good paths.
// Complexity: O(1).
func (g *Grid) Neighbors(p Position) []Position {
	out := make([]Position, 0, len(g.offsets))
	for _, d := range g.offsets {
		q := Position{Row: p.Row + d.Row, Col: p.Col + d.Col}
		if g.InBounds(q) {
			out = append(out, q)
		}
	}
	return out
}

// Positions lists every cell holding m in row-major order.
func (g *Grid) Positions(m Marker) []Position {
	var out []Position
	for r := 0; r < g.rows; r++ {
		for c := 0; c < g.cols; c++ {
			if g.cells[r][c] == m {
				out = append(out, Pos(r, c))
			}
		}
	}
	return out
}

// Cells returns a deep copy of the marker matrix.
func (g *Grid) Cells() [][]Marker {
	out := make([][]Marker, g.rows)
	for r := range out {
		out[r] = make([]Marker, g.cols)
		copy(out[r], g.cells[r])
	}
	return out
}

// String renders the grid in the form accepted by Parse,
// cells separated by single spaces.
func (g *Grid) String() string {
	var sb strings.Builder
	for r := 0; r < g.rows; r++ {
		for c := 0; c < g.cols; c++ {
			if c > 0 {
				sb.WriteByte(' ')
			}
			sb.WriteRune(rune(g.cells[r][c]))
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}
