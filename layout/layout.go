// SPDX-License-Identifier: MIT

package layout

import (
	"fmt"

	"github.com/katalvlaran/warebot/grid"
)

// Config describes the floor to generate.
type Config struct {
	Rows      int
	Cols      int
	Packages  int
	Obstacles int
}

// DefaultConfig returns an 8×8 floor with 3 packages and 5 obstacles.
func DefaultConfig() Config {
	return Config{Rows: 8, Cols: 8, Packages: 3, Obstacles: 5}
}

// Range is an inclusive [Min, Max] interval.
type Range struct {
	Min, Max int
}

// Contains reports whether Min <= v <= Max.
func (r Range) Contains(v int) bool { return v >= r.Min && v <= r.Max }

func (r Range) String() string { return fmt.Sprintf("%d..%d", r.Min, r.Max) }

// Limits bounds every Config field.
type Limits struct {
	Rows      Range
	Cols      Range
	Packages  Range
	Obstacles Range
}

// DefaultLimits: rows and cols 5..10, packages 2..6, obstacles 1..10.
func DefaultLimits() Limits {
	return Limits{
		Rows:      Range{5, 10},
		Cols:      Range{5, 10},
		Packages:  Range{2, 6},
		Obstacles: Range{1, 10},
	}
}

func (l Limits) check() error {
	switch {
	case l.Rows.Min < 1 || l.Rows.Max < l.Rows.Min:
		return fmt.Errorf("rows %v", l.Rows)
	case l.Cols.Min < 1 || l.Cols.Max < l.Cols.Min:
		return fmt.Errorf("cols %v", l.Cols)
	case l.Packages.Min < 0 || l.Packages.Max < l.Packages.Min:
		return fmt.Errorf("packages %v", l.Packages)
	case l.Obstacles.Min < 0 || l.Obstacles.Max < l.Obstacles.Min:
		return fmt.Errorf("obstacles %v", l.Obstacles)
	}
	return nil
}

// Validate checks cfg against l.
func (l Limits) Validate(cfg Config) error {
	if !l.Rows.Contains(cfg.Rows) {
		return fmt.Errorf("rows=%d not in %v: %w", cfg.Rows, l.Rows, ErrBadDimension)
	}
	if !l.Cols.Contains(cfg.Cols) {
		return fmt.Errorf("cols=%d not in %v: %w", cfg.Cols, l.Cols, ErrBadDimension)
	}
	if !l.Packages.Contains(cfg.Packages) {
		return fmt.Errorf("packages=%d not in %v: %w", cfg.Packages, l.Packages, ErrBadCount)
	}
	if !l.Obstacles.Contains(cfg.Obstacles) {
		return fmt.Errorf("obstacles=%d not in %v: %w", cfg.Obstacles, l.Obstacles, ErrBadCount)
	}
	return nil
}

// robotStart is the fixed starting cell of the robot.
var robotStart = grid.Pos(0, 0)

// Layout is a generated floor plus its placements in draw order.
// Dropoffs[i] belongs to Packages[i].
type Layout struct {
	Grid      *grid.Grid
	Start     grid.Position
	Packages  []grid.Position
	Dropoffs  []grid.Position
	Obstacles []grid.Position
}

// Generate builds a Layout for cfg.
//
// Steps:
//  1. Resolve options; fail with ErrNeedRandSource if no RNG was set.
//  2. Validate cfg against the limits.
//  3. Check there are enough free cells (all but the start).
//  4. Mark the start 'R', then place packages, drop-offs and obstacles.
//  5. Freeze the marker matrix with grid.New.
func Generate(cfg Config, opts ...Option) (*Layout, error) {
	c := newConfig(opts...)
	if c.rng == nil {
		return nil, fmt.Errorf("Generate: use WithSeed or WithRand: %w", ErrNeedRandSource)
	}
	if err := c.limits.Validate(cfg); err != nil {
		return nil, fmt.Errorf("Generate: %w", err)
	}
	need := 2*cfg.Packages + cfg.Obstacles
	if free := cfg.Rows*cfg.Cols - 1; need > free {
		return nil, fmt.Errorf("Generate: %d placements on %d free cells: %w", need, free, ErrNoRoom)
	}

	p := &placer{cfg: cfg, c: c, cells: make([][]grid.Marker, cfg.Rows)}
	for r := range p.cells {
		p.cells[r] = make([]grid.Marker, cfg.Cols)
		for col := range p.cells[r] {
			p.cells[r][col] = grid.Free
		}
	}
	p.cells[robotStart.Row][robotStart.Col] = grid.Robot

	out := &Layout{Start: robotStart}
	out.Packages = p.place(grid.Package, cfg.Packages)
	out.Dropoffs = p.place(grid.DropOff, cfg.Packages)
	out.Obstacles = p.place(grid.Obstacle, cfg.Obstacles)

	g, err := grid.New(p.cells)
	if err != nil {
		return nil, fmt.Errorf("Generate: %w", err)
	}
	out.Grid = g
	return out, nil
}

// placer owns the mutable marker matrix during generation.
type placer struct {
	cfg   Config
	c     config
	cells [][]grid.Marker
}

// place draws count free cells, marks them m and returns them in draw order.
// Callers guarantee enough free cells remain.
func (p *placer) place(m grid.Marker, count int) []grid.Position {
	out := make([]grid.Position, 0, count)
	for len(out) < count {
		pos := grid.Pos(p.c.rng.Intn(p.cfg.Rows), p.c.rng.Intn(p.cfg.Cols))
		if pos == robotStart || p.cells[pos.Row][pos.Col] != grid.Free {
			continue
		}
		p.cells[pos.Row][pos.Col] = m
		out = append(out, pos)
	}
	return out
}
