package warebot_test

import (
	"fmt"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/warebot"
	"github.com/katalvlaran/warebot/grid"
	"github.com/katalvlaran/warebot/search"
)

func engines(t *testing.T) map[search.Algorithm]search.Strategy {
	t.Helper()
	out := make(map[search.Algorithm]search.Strategy, len(search.Algorithms()))
	for _, a := range search.Algorithms() {
		s, err := warebot.NewStrategy(a)
		require.NoError(t, err)
		out[a] = s
	}
	return out
}

// randomFloor builds a rows×cols grid with roughly density obstacles,
// keeping (0,0) free.
func randomFloor(t *testing.T, rng *rand.Rand, rows, cols int, density float64) *grid.Grid {
	t.Helper()
	cells := make([][]grid.Marker, rows)
	for r := range cells {
		cells[r] = make([]grid.Marker, cols)
		for c := range cells[r] {
			cells[r][c] = grid.Free
			if (r != 0 || c != 0) && rng.Float64() < density {
				cells[r][c] = grid.Obstacle
			}
		}
	}
	g, err := grid.New(cells)
	require.NoError(t, err)
	return g
}

func requireWellFormed(t *testing.T, g *grid.Grid, start, goal grid.Position, res search.Result) {
	t.Helper()
	require.NotEmpty(t, res.Path)
	require.Equal(t, start, res.Path[0])
	require.Equal(t, goal, res.Path[len(res.Path)-1])
	require.Equal(t, len(res.Path)-1, res.Cost)
	for i := 1; i < len(res.Path); i++ {
		require.True(t, g.InBounds(res.Path[i]))
		require.True(t, res.Path[i-1].Adjacent(res.Path[i]), "step %d: %v -> %v", i, res.Path[i-1], res.Path[i])
	}
}

func obstaclesOn(g *grid.Grid, path []grid.Position) int {
	n := 0
	for _, p := range path[1:] {
		if g.IsObstacle(p) {
			n++
		}
	}
	return n
}

func TestNewStrategy(t *testing.T) {
	for _, a := range search.Algorithms() {
		s, err := warebot.NewStrategy(a)
		require.NoError(t, err)
		require.Implements(t, (*fmt.Stringer)(nil), s)
		assert.Equal(t, a.String(), s.(fmt.Stringer).String())
	}

	_, err := warebot.NewStrategy(search.Algorithm(42))
	require.ErrorIs(t, err, search.ErrUnknownAlgorithm)
}

func TestParseStrategy(t *testing.T) {
	s, err := warebot.ParseStrategy("Breadth-First Search")
	require.NoError(t, err)
	assert.Equal(t, "bfs", s.(fmt.Stringer).String())

	_, err = warebot.ParseStrategy("a-star")
	require.ErrorIs(t, err, search.ErrUnknownAlgorithm)
}

// TestOpenFloorManhattan checks BFS and UCS against Manhattan distance for
// every start/goal pair on obstacle-free floors.
func TestOpenFloorManhattan(t *testing.T) {
	all := engines(t)
	for _, size := range [][2]int{{1, 4}, {3, 3}, {4, 5}} {
		g, err := grid.Blank(size[0], size[1])
		require.NoError(t, err)
		t.Run(fmt.Sprintf("%dx%d", size[0], size[1]), func(t *testing.T) {
			for sr := 0; sr < g.Rows(); sr++ {
				for sc := 0; sc < g.Cols(); sc++ {
					for gr := 0; gr < g.Rows(); gr++ {
						for gc := 0; gc < g.Cols(); gc++ {
							start, goal := grid.Pos(sr, sc), grid.Pos(gr, gc)
							want := grid.Manhattan(start, goal)
							for _, a := range []search.Algorithm{search.BFS, search.UCS} {
								res, err := all[a].Search(g, start, goal, search.Pickup)
								require.NoError(t, err)
								require.Equal(t, want, res.Cost, "%v %v->%v", a, start, goal)
							}
							res, err := all[search.DFS].Search(g, start, goal, search.Pickup)
							require.NoError(t, err)
							require.GreaterOrEqual(t, res.Cost, want)
						}
					}
				}
			}
		})
	}
}

func TestStartIsGoalAllEngines(t *testing.T) {
	g := grid.MustParse(`
		R - O
		- O -
		- - D
	`)
	for a, s := range engines(t) {
		for _, trip := range []search.TripType{search.Pickup, search.Dropoff} {
			res, err := s.Search(g, grid.Pos(2, 2), grid.Pos(2, 2), trip)
			require.NoError(t, err, "%v/%v", a, trip)
			assert.Equal(t, []grid.Position{grid.Pos(2, 2)}, res.Path)
			assert.Zero(t, res.Cost)
			assert.Zero(t, res.Penalty)
			assert.Zero(t, res.PenaltyCount)
		}
	}
}

// TestObstacleStartNotCharged starts on an obstacle: only cells stepped onto count.
func TestObstacleStartNotCharged(t *testing.T) {
	g := grid.MustParse("O - O D")
	for a, s := range engines(t) {
		res, err := s.Search(g, grid.Pos(0, 0), grid.Pos(0, 3), search.Dropoff)
		require.NoError(t, err, a.String())
		assert.Equal(t, []grid.Position{grid.Pos(0, 0), grid.Pos(0, 1), grid.Pos(0, 2), grid.Pos(0, 3)}, res.Path, a.String())
		assert.Equal(t, 3, res.Cost, a.String())
		assert.Equal(t, 1, res.PenaltyCount, a.String())
		assert.Equal(t, search.DefaultPenalty, res.Penalty, a.String())

		res, err = s.Search(g, grid.Pos(0, 0), grid.Pos(0, 1), search.Pickup)
		require.NoError(t, err, a.String())
		assert.Equal(t, 1, res.Cost, a.String())
		assert.Zero(t, res.PenaltyCount, a.String())
	}
}

func TestEnclosedGoalAllEngines(t *testing.T) {
	g := grid.MustParse(`
		R - - - -
		- - O - -
		- O P O -
		- - O - -
	`)
	for a, s := range engines(t) {
		res, err := s.Search(g, grid.Pos(0, 0), grid.Pos(2, 2), search.Pickup)
		require.ErrorIs(t, err, search.ErrNoPath, a.String())
		require.False(t, res.Found())
		require.Zero(t, res.Penalty)

		res, err = s.Search(g, grid.Pos(0, 0), grid.Pos(2, 2), search.Dropoff)
		require.NoError(t, err, a.String())
		require.Positive(t, res.PenaltyCount)
	}
}

func TestInvalidInputAllEngines(t *testing.T) {
	g, err := grid.Blank(2, 2)
	require.NoError(t, err)
	for a, s := range engines(t) {
		_, err := s.Search(g, grid.Pos(-1, 0), grid.Pos(1, 1), search.Pickup)
		require.ErrorIs(t, err, search.ErrInvalidInput, a.String())
		_, err = s.Search(nil, grid.Pos(0, 0), grid.Pos(1, 1), search.Dropoff)
		require.ErrorIs(t, err, search.ErrInvalidInput, a.String())
	}
}

// TestRandomFloors cross-checks the engines on seeded random obstacle fields.
func TestRandomFloors(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	all := engines(t)
	start := grid.Pos(0, 0)

	for round := 0; round < 40; round++ {
		g := randomFloor(t, rng, 4+rng.Intn(5), 4+rng.Intn(5), 0.3)
		goal := grid.Pos(rng.Intn(g.Rows()), rng.Intn(g.Cols()))
		if g.IsObstacle(goal) {
			continue
		}

		// Pickup: same reachability everywhere, BFS == UCS <= DFS, no obstacles.
		bfsRes, bfsErr := all[search.BFS].Search(g, start, goal, search.Pickup)
		ucsRes, ucsErr := all[search.UCS].Search(g, start, goal, search.Pickup)
		dfsRes, dfsErr := all[search.DFS].Search(g, start, goal, search.Pickup)
		if bfsErr != nil {
			require.ErrorIs(t, bfsErr, search.ErrNoPath)
			require.ErrorIs(t, ucsErr, search.ErrNoPath)
			require.ErrorIs(t, dfsErr, search.ErrNoPath)
		} else {
			require.NoError(t, ucsErr)
			require.NoError(t, dfsErr)
			require.Equal(t, bfsRes.Cost, ucsRes.Cost)
			require.LessOrEqual(t, bfsRes.Cost, dfsRes.Cost)
			for _, res := range []search.Result{bfsRes, ucsRes, dfsRes} {
				requireWellFormed(t, g, start, goal, res)
				require.Zero(t, obstaclesOn(g, res.Path))
				require.Zero(t, res.PenaltyCount)
			}
		}

		// Dropoff: always reachable, penalty matches obstacles on the path.
		for a, s := range all {
			res, err := s.Search(g, start, goal, search.Dropoff)
			require.NoError(t, err, a.String())
			requireWellFormed(t, g, start, goal, res)
			hits := obstaclesOn(g, res.Path)
			require.Equal(t, hits, res.PenaltyCount, a.String())
			require.Equal(t, hits*search.DefaultPenalty, res.Penalty, a.String())
			if a != search.DFS {
				require.Equal(t, grid.Manhattan(start, goal), res.Cost, a.String())
			}
		}
	}
}
