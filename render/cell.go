package render

import (
	"github.com/katalvlaran/labyrinth/grid"
	"github.com/katalvlaran/labyrinth/search"
)

// cellKind classifies a cell for drawing, highest precedence first.
type cellKind int

const (
	cellOpen cellKind = iota
	cellWall
	cellStart
	cellGoal
	cellPath
	cellExplored
)

// classifier resolves the kind of every cell of one grid/result pair.
type classifier struct {
	g            *grid.Grid
	path         map[grid.Coordinate]bool
	explored     map[grid.Coordinate]bool
	showExplored bool
}

func newClassifier(g *grid.Grid, res *search.Result, showExplored bool) classifier {
	cl := classifier{g: g, showExplored: showExplored}
	if res != nil {
		cl.path = make(map[grid.Coordinate]bool, len(res.Path))
		for _, s := range res.Path {
			cl.path[s.State] = true
		}
		cl.explored = res.Explored
	}
	return cl
}

func (cl classifier) kind(c grid.Coordinate) cellKind {
	switch {
	case c == cl.g.Start():
		return cellStart
	case c == cl.g.Goal():
		return cellGoal
	case cl.g.IsWall(c):
		return cellWall
	case cl.path[c]:
		return cellPath
	case cl.showExplored && cl.explored[c]:
		return cellExplored
	default:
		return cellOpen
	}
}
