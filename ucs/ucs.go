// SPDX-License-Identifier: MIT

package ucs

import (
	"container/heap"

	"github.com/katalvlaran/warebot/grid"
	"github.com/katalvlaran/warebot/search"
)

// Engine is a reusable uniform-cost search.Strategy.
type Engine struct {
	opts search.Options
}

// New returns an Engine configured by opts.
func New(opts ...search.Option) *Engine {
	return &Engine{opts: search.NewOptions(opts...)}
}

// String returns "ucs".
func (e *Engine) String() string { return search.UCS.String() }

// Search runs uniform-cost search from start to goal.
//
// Preconditions and validation:
//  1. g must be non-nil.
//  2. start and goal must lie inside g.
//  3. trip must be Pickup or Dropoff.
//
// Complexity:
//
//   - Time:  O(N log N)
//   - Space: O(N)
func (e *Engine) Search(g *grid.Grid, start, goal grid.Position, trip search.TripType) (search.Result, error) {
	if err := search.Validate(g, start, goal, trip); err != nil {
		return search.Result{}, err
	}

	n := g.Rows() * g.Cols()
	r := &runner{
		grid:    g,
		opts:    e.opts,
		trip:    trip,
		goal:    goal,
		best:    make(map[grid.Position]int, n),
		visited: make(map[grid.Position]bool, n),
		pq:      make(trailPQ, 0, n),
	}
	r.init(start)

	return r.process()
}

// Search runs uniform-cost search with a one-off Engine.
func Search(g *grid.Grid, start, goal grid.Position, trip search.TripType, opts ...search.Option) (search.Result, error) {
	return New(opts...).Search(g, start, goal, trip)
}

// runner holds the mutable state for a single search.
type runner struct {
	grid    *grid.Grid
	opts    search.Options
	trip    search.TripType
	goal    grid.Position
	best    map[grid.Position]int  // cheapest known step count per cell
	visited map[grid.Position]bool // finalized cells
	pq      trailPQ
	seq     int // insertion counter for FIFO tie-breaking
}

// init pushes the start cell with cost 0.
func (r *runner) init(start grid.Position) {
	heap.Init(&r.pq)
	r.best[start] = 0
	r.push(search.Root(start))
}

func (r *runner) push(t *search.Trail) {
	heap.Push(&r.pq, &trailItem{trail: t, seq: r.seq})
	r.seq++
}

// process pops the cheapest entry until the goal is popped or the heap
// is empty.
func (r *runner) process() (search.Result, error) {
	for r.pq.Len() > 0 {
		cur := heap.Pop(&r.pq).(*trailItem).trail

		if cur.Pos == r.goal {
			return cur.Result(), nil
		}
		// Stale entry: a cheaper or earlier copy was already finalized.
		if r.visited[cur.Pos] {
			continue
		}
		r.visited[cur.Pos] = true
		r.opts.OnVisit(cur.Pos)
		r.relax(cur)
	}
	return search.Result{}, search.ErrNoPath
}

// relax offers each enterable neighbor of cur one step further.
// Only strictly cheaper costs are pushed.
func (r *runner) relax(cur *search.Trail) {
	for _, nb := range r.grid.Neighbors(cur.Pos) {
		if r.visited[nb] {
			continue
		}
		ok, hit := search.Enter(r.grid, nb, r.trip)
		if !ok {
			continue
		}
		cost := cur.Steps + 1
		if known, seen := r.best[nb]; seen && cost >= known {
			continue
		}
		r.best[nb] = cost
		r.push(cur.Extend(nb, hit, r.opts.Penalty))
	}
}

// trailItem is a heap entry: a trail plus its insertion sequence.
type trailItem struct {
	trail *search.Trail
	seq   int
}

// trailPQ is a min-heap ordered by (Steps, seq).
type trailPQ []*trailItem

func (pq trailPQ) Len() int { return len(pq) }

func (pq trailPQ) Less(i, j int) bool {
	if pq[i].trail.Steps != pq[j].trail.Steps {
		return pq[i].trail.Steps < pq[j].trail.Steps
	}
	return pq[i].seq < pq[j].seq
}

func (pq trailPQ) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

func (pq *trailPQ) Push(x any) { *pq = append(*pq, x.(*trailItem)) }

func (pq *trailPQ) Pop() any {
	old := *pq
	n := len(old)
	item := old[n-1]
	old[n-1] = nil
	*pq = old[:n-1]

	return item
}
