package render

import (
	"bufio"
	"io"

	"github.com/charmbracelet/lipgloss"

	"github.com/katalvlaran/labyrinth/grid"
	"github.com/katalvlaran/labyrinth/search"
)

// TextOptions controls Text output.
type TextOptions struct {
	// ShowExplored marks expanded cells that are not on the solution.
	ShowExplored bool
	// Color styles cells with lipgloss. The writer's color profile decides
	// whether escape codes are actually emitted.
	Color bool
}

var glyphs = map[cellKind]string{
	cellOpen:     " ",
	cellWall:     "█",
	cellStart:    "A",
	cellGoal:     "B",
	cellPath:     "*",
	cellExplored: "·",
}

// textStyles builds the per-kind styles bound to w's color profile.
func textStyles(w io.Writer) map[cellKind]lipgloss.Style {
	r := lipgloss.NewRenderer(w)
	return map[cellKind]lipgloss.Style{
		cellOpen:     r.NewStyle(),
		cellWall:     r.NewStyle().Foreground(lipgloss.Color("238")),
		cellStart:    r.NewStyle().Foreground(lipgloss.Color("196")).Bold(true),
		cellGoal:     r.NewStyle().Foreground(lipgloss.Color("34")).Bold(true),
		cellPath:     r.NewStyle().Foreground(lipgloss.Color("226")),
		cellExplored: r.NewStyle().Foreground(lipgloss.Color("167")),
	}
}

// Text writes g, with res overlaid when non-nil, one line per row.
func Text(w io.Writer, g *grid.Grid, res *search.Result, opts TextOptions) error {
	cl := newClassifier(g, res, opts.ShowExplored)
	var styles map[cellKind]lipgloss.Style
	if opts.Color {
		styles = textStyles(w)
	}

	bw := bufio.NewWriter(w)
	for r := 0; r < g.Height(); r++ {
		for c := 0; c < g.Width(); c++ {
			k := cl.kind(grid.Coordinate{Row: r, Col: c})
			s := glyphs[k]
			if styles != nil {
				s = styles[k].Render(s)
			}
			if _, err := bw.WriteString(s); err != nil {
				return err
			}
		}
		if err := bw.WriteByte('\n'); err != nil {
			return err
		}
	}
	return bw.Flush()
}
