// SPDX-License-Identifier: MIT

package bfs

import (
	"github.com/katalvlaran/warebot/grid"
	"github.com/katalvlaran/warebot/search"
)

// Engine is a reusable breadth-first search.Strategy.
// It keeps only its options; every call allocates fresh state.
type Engine struct {
	opts search.Options
}

// New returns an Engine configured by opts.
func New(opts ...search.Option) *Engine {
	return &Engine{opts: search.NewOptions(opts...)}
}

// String returns "bfs".
func (e *Engine) String() string { return search.BFS.String() }

// Search runs breadth-first search from start to goal.
func (e *Engine) Search(g *grid.Grid, start, goal grid.Position, trip search.TripType) (search.Result, error) {
	if err := search.Validate(g, start, goal, trip); err != nil {
		return search.Result{}, err
	}

	n := g.Rows() * g.Cols()
	w := &walker{
		grid:    g,
		opts:    e.opts,
		trip:    trip,
		goal:    goal,
		queue:   make([]*search.Trail, 0, n),
		visited: make(map[grid.Position]bool, n),
	}
	w.enqueue(search.Root(start))

	return w.loop()
}

// Search runs breadth-first search with a one-off Engine.
func Search(g *grid.Grid, start, goal grid.Position, trip search.TripType, opts ...search.Option) (search.Result, error) {
	return New(opts...).Search(g, start, goal, trip)
}

// walker encapsulates mutable BFS state for one call.
type walker struct {
	grid    *grid.Grid
	opts    search.Options
	trip    search.TripType
	goal    grid.Position
	queue   []*search.Trail
	visited map[grid.Position]bool
}

// enqueue marks the trail's cell visited and appends it to the queue.
func (w *walker) enqueue(t *search.Trail) {
	w.visited[t.Pos] = true
	w.queue = append(w.queue, t)
}

// loop drains the queue until the goal is dequeued or nothing is left.
func (w *walker) loop() (search.Result, error) {
	for len(w.queue) > 0 {
		cur := w.queue[0]
		w.queue = w.queue[1:]

		if cur.Pos == w.goal {
			return cur.Result(), nil
		}
		w.opts.OnVisit(cur.Pos)
		w.enqueueNeighbors(cur)
	}
	return search.Result{}, search.ErrNoPath
}

// enqueueNeighbors pushes every unseen, enterable neighbor of cur.
func (w *walker) enqueueNeighbors(cur *search.Trail) {
	for _, nb := range w.grid.Neighbors(cur.Pos) {
		if w.visited[nb] {
			continue
		}
		ok, hit := search.Enter(w.grid, nb, w.trip)
		if !ok {
			continue
		}
		w.enqueue(cur.Extend(nb, hit, w.opts.Penalty))
	}
}
