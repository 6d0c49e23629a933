package grid

import "fmt"

// New constructs a Grid from a wall matrix and the start/goal cells.
// It deep-copies walls so later changes to the input cannot leak in.
// Rows shorter than the widest row are padded with open cells.
// Returns ErrEmptyGrid, ErrOutOfBounds or ErrBlockedEndpoint, each
// wrapping ErrConstruction.
// Complexity: O(H×W) time and memory.
func New(walls [][]bool, start, goal Coordinate) (*Grid, error) {
	h := len(walls)
	w := 0
	for _, row := range walls {
		if len(row) > w {
			w = len(row)
		}
	}
	if h == 0 || w == 0 {
		return nil, ErrEmptyGrid
	}

	cells := make([][]bool, h)
	for r := 0; r < h; r++ {
		cells[r] = make([]bool, w)
		copy(cells[r], walls[r]) // tail stays false (open)
	}

	g := &Grid{height: h, width: w, walls: cells, start: start, goal: goal}
	for _, ep := range [...]struct {
		name string
		c    Coordinate
	}{{"start", start}, {"goal", goal}} {
		if !g.InBounds(ep.c) {
			return nil, fmt.Errorf("%w: %s %v outside %dx%d grid", ErrOutOfBounds, ep.name, ep.c, h, w)
		}
		if g.walls[ep.c.Row][ep.c.Col] {
			return nil, fmt.Errorf("%w: %s %v is a wall", ErrBlockedEndpoint, ep.name, ep.c)
		}
	}

	return g, nil
}

// Height returns the number of rows.
func (g *Grid) Height() int { return g.height }

// Width returns the number of columns.
func (g *Grid) Width() int { return g.width }

// Start returns the start cell.
func (g *Grid) Start() Coordinate { return g.start }

// Goal returns the goal cell.
func (g *Grid) Goal() Coordinate { return g.goal }

// InBounds reports whether c lies within the grid.
// Complexity: O(1).
func (g *Grid) InBounds(c Coordinate) bool {
	return c.Row >= 0 && c.Row < g.height && c.Col >= 0 && c.Col < g.width
}

// IsWall reports whether c is impassable. Out-of-bounds cells count as walls.
func (g *Grid) IsWall(c Coordinate) bool {
	if !g.InBounds(c) {
		return true
	}
	return g.walls[c.Row][c.Col]
}

// Walls returns a deep copy of the wall matrix.
func (g *Grid) Walls() [][]bool {
	out := make([][]bool, g.height)
	for r := range g.walls {
		out[r] = make([]bool, g.width)
		copy(out[r], g.walls[r])
	}
	return out
}

// OpenCells counts the non-wall cells.
// Complexity: O(H×W).
func (g *Grid) OpenCells() int {
	n := 0
	for _, row := range g.walls {
		for _, wall := range row {
			if !wall {
				n++
			}
		}
	}
	return n
}

// Neighbors returns the open, in-bounds cells adjacent to c, checked in the
// order Up, Down, Left, Right. Calling it twice for the same c yields the
// same sequence.
// Complexity: O(1).
func (g *Grid) Neighbors(c Coordinate) []Neighbor {
	out := make([]Neighbor, 0, len(actionOrder))
	for _, a := range actionOrder {
		next := c.Move(a)
		if g.IsWall(next) {
			continue
		}
		out = append(out, Neighbor{Action: a, State: next})
	}
	return out
}
