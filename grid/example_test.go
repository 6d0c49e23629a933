package grid_test

import (
	"fmt"

	"github.com/katalvlaran/labyrinth/grid"
)

// ExampleGrid_Neighbors lists the moves available from the middle of a
// small maze with one wall above it.
//
//	. # .
//	. x .
//	. . .
func ExampleGrid_Neighbors() {
	walls := [][]bool{
		{false, true, false},
		{false, false, false},
		{false, false, false},
	}
	g, _ := grid.New(walls, grid.Coordinate{Row: 0, Col: 0}, grid.Coordinate{Row: 2, Col: 2})

	for _, n := range g.Neighbors(grid.Coordinate{Row: 1, Col: 1}) {
		fmt.Println(n.Action, n.State)
	}
	// Output:
	// down (2,1)
	// left (1,0)
	// right (1,2)
}
