package grid

import "fmt"

// Coordinate identifies a grid cell by row and column.
// It is comparable and can be used directly as a map key.
type Coordinate struct {
	Row, Col int
}

// String renders the coordinate as "(row,col)".
func (c Coordinate) String() string {
	return fmt.Sprintf("(%d,%d)", c.Row, c.Col)
}

// Move returns the coordinate reached from c by taking action a.
// The result may be out of bounds; callers check with Grid.InBounds.
func (c Coordinate) Move(a Action) Coordinate {
	dr, dc := a.Delta()
	return Coordinate{Row: c.Row + dr, Col: c.Col + dc}
}

// Action labels a single orthogonal step between adjacent cells.
type Action uint8

const (
	// Up moves to row-1.
	Up Action = iota
	// Down moves to row+1.
	Down
	// Left moves to col-1.
	Left
	// Right moves to col+1.
	Right
)

// actionOrder is the neighbor-expansion order: Up, Down, Left, Right.
var actionOrder = [...]Action{Up, Down, Left, Right}

// Actions returns every action in neighbor-expansion order.
// The result is a fresh copy; changing it does not affect Neighbors.
func Actions() []Action {
	out := make([]Action, len(actionOrder))
	copy(out, actionOrder[:])
	return out
}

var actionNames = [...]string{
	Up:    "up",
	Down:  "down",
	Left:  "left",
	Right: "right",
}

var actionDeltas = [...][2]int{
	Up:    {-1, 0},
	Down:  {1, 0},
	Left:  {0, -1},
	Right: {0, 1},
}

// String returns the lower-case action name.
func (a Action) String() string {
	if int(a) < len(actionNames) {
		return actionNames[a]
	}
	return fmt.Sprintf("action(%d)", uint8(a))
}

// Delta returns the (row, col) offset of the action.
func (a Action) Delta() (dr, dc int) {
	if int(a) >= len(actionDeltas) {
		return 0, 0
	}
	d := actionDeltas[a]
	return d[0], d[1]
}

// Neighbor pairs a reachable coordinate with the action that reaches it.
type Neighbor struct {
	Action Action
	State  Coordinate
}

// Grid is an immutable maze: a Height×Width wall matrix with one start
// and one goal cell. walls[r][c] == true marks an impassable cell.
// The zero value is not usable; build one with New.
type Grid struct {
	height, width int
	walls         [][]bool
	start, goal   Coordinate
}
