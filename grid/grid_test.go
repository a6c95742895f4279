package grid_test

import (
	"errors"
	"reflect"
	"testing"

	"github.com/katalvlaran/warebot/grid"
)

//----------------------------------------------------------------------------//
// New and Parse Tests
//----------------------------------------------------------------------------//

// TestNew_Errors verifies that New rejects empty, ragged or unknown inputs.
func TestNew_Errors(t *testing.T) {
	cases := []struct {
		name  string
		cells [][]grid.Marker
		err   error
	}{
		{"EmptyRows", [][]grid.Marker{}, grid.ErrEmptyGrid},
		{"EmptyCols", [][]grid.Marker{{}}, grid.ErrEmptyGrid},
		{"NonRectangular", [][]grid.Marker{{grid.Free, grid.Free}, {grid.Free}}, grid.ErrNonRectangular},
		{"UnknownMarker", [][]grid.Marker{{grid.Free, grid.Marker('X')}}, grid.ErrInvalidMarker},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := grid.New(tc.cells)
			if !errors.Is(err, tc.err) {
				t.Errorf("New(%v) error = %v; want %v", tc.cells, err, tc.err)
			}
		})
	}
}

// TestNew_DeepCopy ensures the grid does not observe later caller mutation.
func TestNew_DeepCopy(t *testing.T) {
	cells := [][]grid.Marker{{grid.Free, grid.Free}, {grid.Free, grid.Free}}
	g, err := grid.New(cells)
	if err != nil {
		t.Fatalf("New error: %v", err)
	}
	cells[0][0] = grid.Obstacle
	if g.IsObstacle(grid.Pos(0, 0)) {
		t.Error("grid observed caller mutation of its input")
	}

	out := g.Cells()
	out[1][1] = grid.Obstacle
	if g.IsObstacle(grid.Pos(1, 1)) {
		t.Error("grid observed mutation of Cells() copy")
	}
}

// TestParse_RoundTrip checks that String renders what Parse reads.
func TestParse_RoundTrip(t *testing.T) {
	text := "R - - O\n- O P -\n. . . D\n"
	g, err := grid.Parse(text)
	if err != nil {
		t.Fatalf("Parse error: %v", err)
	}
	if g.Rows() != 3 || g.Cols() != 4 {
		t.Fatalf("dims = %dx%d; want 3x4", g.Rows(), g.Cols())
	}
	want := "R - - O\n- O P -\n- - - D\n"
	if got := g.String(); got != want {
		t.Errorf("String() = %q; want %q", got, want)
	}
	if m, _ := g.At(grid.Pos(2, 0)); m != grid.Free {
		t.Errorf("At(2,0) = %v; want Free ('.' alias)", m)
	}
}

// TestParse_CompactRows accepts rows written without separators.
func TestParse_CompactRows(t *testing.T) {
	g, err := grid.Parse("\nRO-\n-PD\n\n")
	if err != nil {
		t.Fatalf("Parse error: %v", err)
	}
	if g.Rows() != 2 || g.Cols() != 3 {
		t.Fatalf("dims = %dx%d; want 2x3", g.Rows(), g.Cols())
	}
	if _, err := grid.Parse("R-\n-"); !errors.Is(err, grid.ErrNonRectangular) {
		t.Errorf("ragged Parse error = %v; want ErrNonRectangular", err)
	}
}

//----------------------------------------------------------------------------//
// Lookup Tests
//----------------------------------------------------------------------------//

// TestInBoundsAndAt checks bounds on a 2×3 grid.
func TestInBoundsAndAt(t *testing.T) {
	g := grid.MustParse("- O -\nP - D")

	valid := []grid.Position{grid.Pos(0, 0), grid.Pos(1, 2), grid.Pos(0, 1)}
	for _, p := range valid {
		if !g.InBounds(p) {
			t.Errorf("InBounds(%v)=false; want true", p)
		}
	}
	invalid := []grid.Position{grid.Pos(-1, 0), grid.Pos(2, 0), grid.Pos(0, 3), grid.Pos(1, -1)}
	for _, p := range invalid {
		if g.InBounds(p) {
			t.Errorf("InBounds(%v)=true; want false", p)
		}
		if _, err := g.At(p); !errors.Is(err, grid.ErrOutOfBounds) {
			t.Errorf("At(%v) error = %v; want ErrOutOfBounds", p, err)
		}
		if g.IsObstacle(p) {
			t.Errorf("IsObstacle(%v)=true outside the grid", p)
		}
	}
	if !g.IsObstacle(grid.Pos(0, 1)) {
		t.Error("IsObstacle(0,1)=false; want true")
	}
}

// TestNeighbors_Order pins the up, down, left, right expansion order.
func TestNeighbors_Order(t *testing.T) {
	g, _ := grid.Blank(3, 3)

	cases := []struct {
		at   grid.Position
		want []grid.Position
	}{
		{grid.Pos(1, 1), []grid.Position{grid.Pos(0, 1), grid.Pos(2, 1), grid.Pos(1, 0), grid.Pos(1, 2)}},
		{grid.Pos(0, 0), []grid.Position{grid.Pos(1, 0), grid.Pos(0, 1)}},
		{grid.Pos(2, 2), []grid.Position{grid.Pos(1, 2), grid.Pos(2, 1)}},
		{grid.Pos(0, 2), []grid.Position{grid.Pos(1, 2), grid.Pos(0, 1)}},
	}
	for _, tc := range cases {
		if got := g.Neighbors(tc.at); !reflect.DeepEqual(got, tc.want) {
			t.Errorf("Neighbors(%v) = %v; want %v", tc.at, got, tc.want)
		}
	}
}

// TestPositions lists markers in row-major order.
func TestPositions(t *testing.T) {
	g := grid.MustParse("P - O\nO P D")
	if got, want := g.Positions(grid.Obstacle), []grid.Position{grid.Pos(0, 2), grid.Pos(1, 0)}; !reflect.DeepEqual(got, want) {
		t.Errorf("Positions(O) = %v; want %v", got, want)
	}
	if got, want := g.Positions(grid.Package), []grid.Position{grid.Pos(0, 0), grid.Pos(1, 1)}; !reflect.DeepEqual(got, want) {
		t.Errorf("Positions(P) = %v; want %v", got, want)
	}
	if got := g.Positions(grid.Robot); got != nil {
		t.Errorf("Positions(R) = %v; want nil", got)
	}
}

// TestPosition_Helpers covers Manhattan and Adjacent.
func TestPosition_Helpers(t *testing.T) {
	if d := grid.Manhattan(grid.Pos(0, 0), grid.Pos(2, 3)); d != 5 {
		t.Errorf("Manhattan = %d; want 5", d)
	}
	if !grid.Pos(1, 1).Adjacent(grid.Pos(1, 2)) {
		t.Error("(1,1) and (1,2) should be adjacent")
	}
	if grid.Pos(1, 1).Adjacent(grid.Pos(2, 2)) {
		t.Error("diagonal cells must not be adjacent")
	}
	if grid.Pos(1, 1).Adjacent(grid.Pos(1, 1)) {
		t.Error("a cell is not adjacent to itself")
	}
	if s := grid.Pos(3, 4).String(); s != "(3,4)" {
		t.Errorf("String() = %q; want (3,4)", s)
	}
}
