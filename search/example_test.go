package search_test

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/labyrinth/frontier"
	"github.com/katalvlaran/labyrinth/grid"
	"github.com/katalvlaran/labyrinth/search"
)

// ExampleSolve compares depth-first and breadth-first orderings on an
// open 3×3 grid. Both find a 4-move path, but they take different routes
// because the stack always continues from the newest neighbor.
func ExampleSolve() {
	walls := [][]bool{
		{false, false, false},
		{false, false, false},
		{false, false, false},
	}
	g, _ := grid.New(walls, grid.Coordinate{Row: 0, Col: 0}, grid.Coordinate{Row: 2, Col: 2})

	for _, k := range []frontier.Kind{frontier.KindStack, frontier.KindQueue} {
		res, err := search.Solve(g, search.WithFrontier(k))
		if err != nil {
			fmt.Println("error:", err)
			return
		}
		fmt.Println(k, res.Actions(), "explored:", res.ExpandedCount)
	}
	// Output:
	// stack [right right down down] explored: 4
	// queue [down down right right] explored: 8
}

// ExampleSolve_noSolution shows the unreachable-goal outcome.
func ExampleSolve_noSolution() {
	walls := [][]bool{{false, true, false}}
	g, _ := grid.New(walls, grid.Coordinate{Row: 0, Col: 0}, grid.Coordinate{Row: 0, Col: 2})

	res, err := search.Solve(g)
	fmt.Println(errors.Is(err, search.ErrNoSolution), res.Solved, res.ExpandedCount)
	// Output:
	// true false 1
}
