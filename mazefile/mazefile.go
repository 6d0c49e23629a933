package mazefile

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/katalvlaran/labyrinth/grid"
)

// Cell markers of the text format.
const (
	WallRune  = '#'
	StartRune = 'A'
	GoalRune  = 'B'
	OpenRune  = ' '
)

// maxLineBytes bounds a single maze row read by Parse.
const maxLineBytes = 1 << 20

// Sentinel errors; each wraps grid.ErrConstruction.
var (
	ErrEmptyMaze  = fmt.Errorf("%w: maze has no cells", grid.ErrConstruction)
	ErrNoStart    = fmt.Errorf("%w: maze has no start point", grid.ErrConstruction)
	ErrManyStarts = fmt.Errorf("%w: maze must have exactly one start point", grid.ErrConstruction)
	ErrNoGoal     = fmt.Errorf("%w: maze has no goal", grid.ErrConstruction)
	ErrManyGoals  = fmt.Errorf("%w: maze must have exactly one goal", grid.ErrConstruction)
)

// Load reads a maze file from path.
func Load(path string) (*grid.Grid, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("mazefile: open %s: %w", path, err)
	}
	defer f.Close()

	g, err := Parse(f)
	if err != nil {
		return nil, fmt.Errorf("mazefile: %s: %w", path, err)
	}
	return g, nil
}

// Parse reads a maze from r and builds the grid.
// Returns ErrEmptyMaze, ErrNoStart, ErrManyStarts, ErrNoGoal or
// ErrManyGoals when the markers are wrong, or a read error.
func Parse(r io.Reader) (*grid.Grid, error) {
	var lines [][]rune
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 4096), maxLineBytes)
	for sc.Scan() {
		lines = append(lines, []rune(strings.TrimRight(sc.Text(), "\r")))
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("mazefile: read: %w", err)
	}

	walls := make([][]bool, len(lines))
	var start, goal grid.Coordinate
	starts, goals, cells := 0, 0, 0
	for r, line := range lines {
		walls[r] = make([]bool, len(line))
		cells += len(line)
		for c, ch := range line {
			switch ch {
			case WallRune:
				walls[r][c] = true
			case StartRune:
				start = grid.Coordinate{Row: r, Col: c}
				starts++
			case GoalRune:
				goal = grid.Coordinate{Row: r, Col: c}
				goals++
			}
		}
	}

	switch {
	case cells == 0:
		return nil, ErrEmptyMaze
	case starts == 0:
		return nil, ErrNoStart
	case starts > 1:
		return nil, fmt.Errorf("%w: found %d", ErrManyStarts, starts)
	case goals == 0:
		return nil, ErrNoGoal
	case goals > 1:
		return nil, fmt.Errorf("%w: found %d", ErrManyGoals, goals)
	}

	return grid.New(walls, start, goal)
}

// Format writes g in the text format, one line per row.
// Parse(Format(g)) reproduces g.
func Format(w io.Writer, g *grid.Grid) error {
	bw := bufio.NewWriter(w)
	for r := 0; r < g.Height(); r++ {
		for c := 0; c < g.Width(); c++ {
			at := grid.Coordinate{Row: r, Col: c}
			ch := OpenRune
			switch {
			case at == g.Start():
				ch = StartRune
			case at == g.Goal():
				ch = GoalRune
			case g.IsWall(at):
				ch = WallRune
			}
			if _, err := bw.WriteRune(ch); err != nil {
				return err
			}
		}
		if err := bw.WriteByte('\n'); err != nil {
			return err
		}
	}
	return bw.Flush()
}
