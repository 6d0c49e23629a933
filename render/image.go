package render

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"io"

	"github.com/katalvlaran/labyrinth/grid"
	"github.com/katalvlaran/labyrinth/search"
)

// Default image geometry in pixels.
const (
	DefaultCellSize   = 50
	DefaultCellBorder = 2
)

// ErrImageGeometry is returned for a cell size the border leaves no room in.
var ErrImageGeometry = errors.New("render: cell border must be smaller than half the cell size")

// ImageOptions controls Image output.
type ImageOptions struct {
	// CellSize is the cell edge in pixels; 0 selects DefaultCellSize.
	CellSize int
	// CellBorder is the inset on each side of a cell; 0 draws no border.
	CellBorder   int
	ShowExplored bool
}

// DefaultImageOptions returns options with the default cell geometry.
func DefaultImageOptions() ImageOptions {
	return ImageOptions{CellSize: DefaultCellSize, CellBorder: DefaultCellBorder}
}

// palette maps each cell kind to its fill color.
var palette = map[cellKind]color.RGBA{
	cellWall:     {40, 40, 40, 255},
	cellStart:    {255, 0, 0, 255},
	cellGoal:     {0, 171, 28, 255},
	cellPath:     {220, 235, 113, 255},
	cellExplored: {212, 97, 85, 255},
	cellOpen:     {237, 240, 252, 255},
}

// Image encodes g, with res overlaid when non-nil, as a PNG.
// Each cell is a CellSize square inset by CellBorder on every side over a
// black background.
func Image(w io.Writer, g *grid.Grid, res *search.Result, opts ImageOptions) error {
	size, border := opts.CellSize, opts.CellBorder
	if size == 0 {
		size = DefaultCellSize
	}
	if size < 1 || border < 0 || 2*border >= size {
		return fmt.Errorf("%w: size=%d border=%d", ErrImageGeometry, size, border)
	}

	img := image.NewRGBA(image.Rect(0, 0, g.Width()*size, g.Height()*size))
	draw.Draw(img, img.Bounds(), image.NewUniform(color.Black), image.Point{}, draw.Src)

	cl := newClassifier(g, res, opts.ShowExplored)
	for r := 0; r < g.Height(); r++ {
		for c := 0; c < g.Width(); c++ {
			fill := palette[cl.kind(grid.Coordinate{Row: r, Col: c})]
			cell := image.Rect(c*size+border, r*size+border, (c+1)*size-border, (r+1)*size-border)
			draw.Draw(img, cell, image.NewUniform(fill), image.Point{}, draw.Src)
		}
	}

	if err := png.Encode(w, img); err != nil {
		return fmt.Errorf("render: encode png: %w", err)
	}
	return nil
}
