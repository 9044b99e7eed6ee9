package render

import (
	"fmt"
	"image"
	"image/color"

	"github.com/yalue/image_utils"

	"github.com/ostrofel/mazepaths/maze"
	"github.com/ostrofel/mazepaths/solve"
)

// Pixel geometry of the rasterized grid.
const (
	cellPixels   = 8
	borderPixels = 2
)

var (
	wallColor  = color.RGBA{R: 30, G: 30, B: 30, A: 255}
	openColor  = color.RGBA{R: 245, G: 245, B: 245, A: 255}
	startColor = color.RGBA{R: 40, G: 180, B: 70, A: 255}
	pathColor  = color.RGBA{R: 100, G: 120, B: 255, A: 255}
)

// Image rasterizes g with path p overlaid: one cellPixels square per
// cell, path cells tinted, an arrow on the exit cell pointing out of
// the maze, and a border around the result. The returned image is
// ready for png.Encode. Returns ErrNilGrid or ErrPathOffGrid.
func Image(g *maze.Grid, p solve.Path) (*image.RGBA, error) {
	if g == nil {
		return nil, ErrNilGrid
	}
	on, err := pathSet(g, p)
	if err != nil {
		return nil, err
	}

	base := rasterize(g, on)

	composed := image_utils.NewCompositeImage()
	if err := composed.AddImage(base, image.Pt(0, 0)); err != nil {
		return nil, fmt.Errorf("render: composing base image: %w", err)
	}
	if len(p) > 0 {
		exit := p[len(p)-1]
		arrow := image_utils.ResizeImage(exitArrow(g, exit), cellPixels, cellPixels)
		pos := image.Pt(exit.Col*cellPixels, exit.Row*cellPixels)
		if err := composed.AddImage(arrow, pos); err != nil {
			return nil, fmt.Errorf("render: composing exit arrow: %w", err)
		}
	}

	return image_utils.ToRGBA(image_utils.AddImageBorder(composed, wallColor, borderPixels)), nil
}

// rasterize fills one solid square per cell.
func rasterize(g *maze.Grid, on map[maze.Coord]bool) *image.RGBA {
	w, h := g.Cols()*cellPixels, g.Rows()*cellPixels
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for r := 0; r < g.Rows(); r++ {
		for c := 0; c < g.Cols(); c++ {
			coord := maze.Coord{Row: r, Col: c}
			fillCell(img, coord, cellColor(g.At(coord), on[coord]))
		}
	}

	return img
}

func cellColor(cell maze.Cell, onPath bool) color.RGBA {
	switch {
	case cell == maze.Start:
		return startColor
	case onPath:
		return pathColor
	case cell == maze.Blocked:
		return wallColor
	default:
		return openColor
	}
}

func fillCell(img *image.RGBA, c maze.Coord, col color.RGBA) {
	x0, y0 := c.Col*cellPixels, c.Row*cellPixels
	for y := y0; y < y0+cellPixels; y++ {
		for x := x0; x < x0+cellPixels; x++ {
			img.SetRGBA(x, y, col)
		}
	}
}

// exitArrow picks the arrow pointing out of the maze at the exit cell.
// Corner exits touch two edges; the right edge wins, then top, left,
// bottom, mirroring the search's direction order.
func exitArrow(g *maze.Grid, exit maze.Coord) image.Image {
	arrowColor := color.RGBA{R: 220, G: 50, B: 50, A: 255}
	switch {
	case exit.Col == g.Cols()-1:
		return image_utils.RightArrow(arrowColor)
	case exit.Row == 0:
		return image_utils.UpArrow(arrowColor)
	case exit.Col == 0:
		return image_utils.LeftArrow(arrowColor)
	default:
		return image_utils.DownArrow(arrowColor)
	}
}
