// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/katalvlaran/warebot/delivery"
	"github.com/katalvlaran/warebot/grid"
	"github.com/katalvlaran/warebot/layout"
	"github.com/katalvlaran/warebot/search"
)

type styles struct {
	heading  lipgloss.Style
	free     lipgloss.Style
	obstacle lipgloss.Style
	pkg      lipgloss.Style
	dropoff  lipgloss.Style
	robot    lipgloss.Style
	ok       lipgloss.Style
	warn     lipgloss.Style
}

func newStyles(w io.Writer, plain bool) styles {
	if plain {
		s := lipgloss.NewStyle()
		return styles{s, s, s, s, s, s, s, s}
	}
	r := lipgloss.NewRenderer(w)
	return styles{
		heading:  r.NewStyle().Bold(true).Underline(true),
		free:     r.NewStyle().Foreground(lipgloss.Color("240")),
		obstacle: r.NewStyle().Foreground(lipgloss.Color("196")).Bold(true),
		pkg:      r.NewStyle().Foreground(lipgloss.Color("214")),
		dropoff:  r.NewStyle().Foreground(lipgloss.Color("42")),
		robot:    r.NewStyle().Foreground(lipgloss.Color("45")).Bold(true),
		ok:       r.NewStyle().Foreground(lipgloss.Color("42")),
		warn:     r.NewStyle().Foreground(lipgloss.Color("214")),
	}
}

// printer writes the human-readable output. The first write error sticks
// in err and silences the rest.
type printer struct {
	w   io.Writer
	st  styles
	err error
}

func newPrinter(w io.Writer, plain bool) *printer {
	return &printer{w: w, st: newStyles(w, plain)}
}

func (p *printer) printf(format string, args ...any) {
	if p.err != nil {
		return
	}
	_, p.err = fmt.Fprintf(p.w, format, args...)
}

func (p *printer) cell(m grid.Marker) string {
	s := string(rune(m))
	switch m {
	case grid.Free:
		return p.st.free.Render(".")
	case grid.Obstacle:
		return p.st.obstacle.Render(s)
	case grid.Package:
		return p.st.pkg.Render(s)
	case grid.DropOff:
		return p.st.dropoff.Render(s)
	case grid.Robot:
		return p.st.robot.Render(s)
	}
	return s
}

// floor renders g one row per line. With robot set, the start marker is
// cleared and the robot is drawn at *robot instead.
func (p *printer) floor(g *grid.Grid, robot *grid.Position) string {
	cells := g.Cells()
	var b strings.Builder
	for r, row := range cells {
		for c, m := range row {
			if c > 0 {
				b.WriteByte(' ')
			}
			if robot != nil {
				if m == grid.Robot {
					m = grid.Free
				}
				if *robot == grid.Pos(r, c) {
					m = grid.Robot
				}
			}
			b.WriteString(p.cell(m))
		}
		b.WriteByte('\n')
	}
	return b.String()
}

func (p *printer) legend() string {
	return fmt.Sprintf("%s empty   %s obstacle   %s package   %s drop-off   %s robot",
		p.cell(grid.Free), p.cell(grid.Obstacle), p.cell(grid.Package), p.cell(grid.DropOff), p.cell(grid.Robot))
}

func listPositions(prefix string, ps []grid.Position) string {
	parts := make([]string, len(ps))
	for i, pos := range ps {
		parts[i] = fmt.Sprintf("%s%d %v", prefix, i+1, pos)
	}
	return strings.Join(parts, "  ")
}

// layout prints the initial floor, the legend and the placements.
func (p *printer) layout(l *layout.Layout, alg search.Algorithm) {
	p.printf("%s\n", p.st.heading.Render("Initial warehouse layout"))
	p.printf("%s\n", p.floor(l.Grid, nil))
	p.printf("Legend: %s\n\n", p.legend())
	p.printf("Packages:  %s\n", listPositions("P", l.Packages))
	p.printf("Drop-offs: %s\n", listPositions("D", l.Dropoffs))
	p.printf("Obstacles: %s\n\n", listPositions("O", l.Obstacles))
	p.printf("Algorithm: %s\n\n", alg.Title())
}

// report prints one block per delivery, then the totals.
func (p *printer) report(l *layout.Layout, rep *delivery.Report, runID string) {
	for _, d := range rep.Deliveries {
		p.delivery(l.Grid, d)
	}

	st := rep.State
	p.printf("%s\n", p.st.heading.Render("Final report"))
	p.printf("  %-20s %s\n", "run", runID)
	p.printf("  %-20s %d/%d\n", "packages delivered", rep.Delivered(), len(rep.Deliveries))
	p.printf("  %-20s %d\n", "total reward", st.RewardTotal)
	p.printf("  %-20s %d\n", "movement cost", st.MovementCost)
	p.printf("  %-20s %d (hits: %d)\n", "obstacle penalty", st.PenaltyTotal, st.PenaltyCount)
	p.printf("  %-20s %s\n", "final score", p.st.ok.Render(fmt.Sprint(rep.Score())))
}

func (p *printer) delivery(g *grid.Grid, d delivery.Delivery) {
	n := d.Index + 1
	switch d.Status {
	case delivery.StatusPickupFailed:
		p.printf("%s\n\n", p.st.warn.Render(fmt.Sprintf("Delivery %d: no path to package at %v", n, d.Package)))
		return
	case delivery.StatusDropoffFailed:
		p.printf("%s\n\n", p.st.warn.Render(fmt.Sprintf("Delivery %d: no path to drop-off at %v", n, d.Dropoff)))
		return
	}

	p.printf("%s\n", p.st.heading.Render(fmt.Sprintf("Delivery %d summary", n)))
	p.printf("  %-20s %v\n", "pickup from", d.Package)
	p.printf("  %-20s %v\n", "drop-off to", d.Dropoff)
	p.printf("  %-20s %d\n", "total steps", d.Steps)
	p.printf("  %-20s %d\n", "movement cost", d.MovementCost)
	p.printf("  %-20s %d\n", "obstacles hit", d.Hits)
	p.printf("  %-20s %d\n", "penalty", d.Penalty)
	p.printf("  %-20s +%d\n", "reward", d.Reward)
	p.printf("  %-20s %v\n\n", "path", d.Path)
	p.printf("Grid after delivery:\n%s", p.floor(g, &d.End))
	p.printf("%s\n\n", p.st.ok.Render(fmt.Sprintf("Package %d delivered", n)))
}
