package bfs_test

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/warebot/bfs"
	"github.com/katalvlaran/warebot/grid"
	"github.com/katalvlaran/warebot/search"
)

// ExampleSearch finds the fewest-step route on a 3×3 open floor.
func ExampleSearch() {
	g, _ := grid.Blank(3, 3)
	res, err := bfs.Search(g, grid.Pos(0, 0), grid.Pos(2, 2), search.Pickup)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(res.Path, res.Cost)
	// Output:
	// [(0,0) (1,0) (2,0) (2,1) (2,2)] 4
}

// ExampleSearch_dropoff crosses a wall during a drop-off leg and pays for it.
func ExampleSearch_dropoff() {
	g := grid.MustParse(`
		P O D
	`)
	res, err := bfs.Search(g, grid.Pos(0, 0), grid.Pos(0, 2), search.Pickup)
	fmt.Println(errors.Is(err, search.ErrNoPath))

	res, _ = bfs.Search(g, grid.Pos(0, 0), grid.Pos(0, 2), search.Dropoff)
	fmt.Println(res.Path, res.Cost, res.Penalty, res.PenaltyCount)
	// Output:
	// true
	// [(0,0) (0,1) (0,2)] 2 5 1
}
