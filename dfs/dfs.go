// SPDX-License-Identifier: MIT

package dfs

import (
	"github.com/katalvlaran/warebot/grid"
	"github.com/katalvlaran/warebot/search"
)

// Engine is a reusable depth-first search.Strategy.
type Engine struct {
	opts search.Options
}

// New returns an Engine configured by opts.
func New(opts ...search.Option) *Engine {
	return &Engine{opts: search.NewOptions(opts...)}
}

// String returns "dfs".
func (e *Engine) String() string { return search.DFS.String() }

// Search runs depth-first search from start to goal.
func (e *Engine) Search(g *grid.Grid, start, goal grid.Position, trip search.TripType) (search.Result, error) {
	// 1. Validate input
	if err := search.Validate(g, start, goal, trip); err != nil {
		return search.Result{}, err
	}

	// 2. Initialize walker with the start on the stack
	n := g.Rows() * g.Cols()
	w := &dfsWalker{
		grid:    g,
		opts:    e.opts,
		trip:    trip,
		stack:   make([]*search.Trail, 0, n),
		visited: make(map[grid.Position]bool, n),
	}
	w.push(search.Root(start))

	// 3. Pop until goal or exhaustion
	for len(w.stack) > 0 {
		cur := w.pop()
		if cur.Pos == goal {
			return cur.Result(), nil
		}
		if w.visited[cur.Pos] {
			continue
		}
		w.visited[cur.Pos] = true
		w.opts.OnVisit(cur.Pos)
		w.pushNeighbors(cur)
	}

	return search.Result{}, search.ErrNoPath
}

// Search runs depth-first search with a one-off Engine.
func Search(g *grid.Grid, start, goal grid.Position, trip search.TripType, opts ...search.Option) (search.Result, error) {
	return New(opts...).Search(g, start, goal, trip)
}

// dfsWalker encapsulates mutable DFS state for one call.
type dfsWalker struct {
	grid    *grid.Grid
	opts    search.Options
	trip    search.TripType
	stack   []*search.Trail
	visited map[grid.Position]bool
}

func (w *dfsWalker) push(t *search.Trail) {
	w.stack = append(w.stack, t)
}

func (w *dfsWalker) pop() *search.Trail {
	last := len(w.stack) - 1
	t := w.stack[last]
	w.stack[last] = nil
	w.stack = w.stack[:last]
	return t
}

// pushNeighbors pushes every enterable neighbor of cur not yet visited.
// Cells already on the stack are pushed again; the later push wins.
func (w *dfsWalker) pushNeighbors(cur *search.Trail) {
	for _, nb := range w.grid.Neighbors(cur.Pos) {
		if w.visited[nb] {
			continue
		}
		ok, hit := search.Enter(w.grid, nb, w.trip)
		if !ok {
			continue
		}
		w.push(cur.Extend(nb, hit, w.opts.Penalty))
	}
}
