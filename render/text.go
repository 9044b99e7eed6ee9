package render

import (
	"errors"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/ostrofel/mazepaths/maze"
	"github.com/ostrofel/mazepaths/solve"
)

// Sentinel errors for rendering.
var (
	// ErrNilGrid indicates a nil *maze.Grid was passed in.
	ErrNilGrid = errors.New("render: grid is nil")
	// ErrPathOffGrid indicates a path coordinate outside the grid.
	ErrPathOffGrid = errors.New("render: path coordinate out of bounds")
)

// Symbol drawn for path cells in the text rendering.
const symbolPath = '+'

var (
	wallStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
	openStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("250"))
	startStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("42")).Bold(true)
	pathStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("205")).Bold(true)
)

// Text renders g with path p overlaid, one row per line, no trailing
// newline. Path cells render as '+', the start keeps its '*'. A nil or
// empty path renders the bare grid. Returns ErrNilGrid or
// ErrPathOffGrid on bad input.
func Text(g *maze.Grid, p solve.Path) (string, error) {
	if g == nil {
		return "", ErrNilGrid
	}
	on, err := pathSet(g, p)
	if err != nil {
		return "", err
	}

	var b strings.Builder
	for r := 0; r < g.Rows(); r++ {
		if r > 0 {
			b.WriteByte('\n')
		}
		for c := 0; c < g.Cols(); c++ {
			coord := maze.Coord{Row: r, Col: c}
			cell := g.At(coord)
			switch {
			case cell == maze.Start:
				b.WriteString(startStyle.Render(string(maze.SymbolStart)))
			case on[coord]:
				b.WriteString(pathStyle.Render(string(symbolPath)))
			case cell == maze.Blocked:
				b.WriteString(wallStyle.Render(string(maze.SymbolBlocked)))
			default:
				b.WriteString(openStyle.Render(string(cell.Rune())))
			}
		}
	}

	return b.String(), nil
}

// pathSet indexes p's coordinates, validating each against the grid.
func pathSet(g *maze.Grid, p solve.Path) (map[maze.Coord]bool, error) {
	on := make(map[maze.Coord]bool, len(p))
	for _, c := range p {
		if !g.InBounds(c) {
			return nil, ErrPathOffGrid
		}
		on[c] = true
	}

	return on, nil
}
