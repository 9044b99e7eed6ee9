package maze

import "strings"

// Grid is a rectangular matrix of cells. It is never mutated in place
// after construction: Set returns a derivative Grid instead. Zero value
// is not usable; construct via Parse or NewGrid.
type Grid struct {
	cells [][]Cell
	rows  int
	cols  int
}

// NewGrid constructs a Grid from a non-empty, rectangular cell matrix.
// It deep-copies the input to guarantee immutability.
// Returns ErrEmptyGrid if values has no rows or no columns,
// ErrNonRectangular if any row length differs.
// Complexity: O(R×C) time and memory.
func NewGrid(values [][]Cell) (*Grid, error) {
	if len(values) == 0 || len(values[0]) == 0 {
		return nil, ErrEmptyGrid
	}
	rows, cols := len(values), len(values[0])
	for _, row := range values {
		if len(row) != cols {
			return nil, ErrNonRectangular
		}
	}
	// Deep copy to prevent external mutation.
	cells := make([][]Cell, rows)
	for r := 0; r < rows; r++ {
		cells[r] = make([]Cell, cols)
		copy(cells[r], values[r])
	}

	return &Grid{cells: cells, rows: rows, cols: cols}, nil
}

// Rows reports the number of rows.
func (g *Grid) Rows() int { return g.rows }

// Cols reports the number of columns.
func (g *Grid) Cols() int { return g.cols }

// InBounds reports whether c lies within the grid boundaries.
func (g *Grid) InBounds(c Coord) bool {
	return c.Row >= 0 && c.Row < g.rows && c.Col >= 0 && c.Col < g.cols
}

// At returns the cell at c. Callers must ensure c is in bounds
// (CanMove and InBounds exist for exactly that purpose).
func (g *Grid) At(c Coord) Cell {
	return g.cells[c.Row][c.Col]
}

// Set returns a new Grid identical to g except that the cell at c holds v.
// The receiver is left untouched; the result shares no mutable state with
// it. This is the snapshot primitive the search branches on.
// Complexity: O(R×C) time and memory.
func (g *Grid) Set(c Coord, v Cell) *Grid {
	cells := make([][]Cell, g.rows)
	for r := 0; r < g.rows; r++ {
		cells[r] = make([]Cell, g.cols)
		copy(cells[r], g.cells[r])
	}
	cells[c.Row][c.Col] = v

	return &Grid{cells: cells, rows: g.rows, cols: g.cols}
}

// LocateStart scans rows in order, then columns in order, for the first
// Start cell. Returns ErrNoStart if the grid holds none.
// Complexity: O(R×C), single pass.
func (g *Grid) LocateStart() (Coord, error) {
	for r := 0; r < g.rows; r++ {
		for c := 0; c < g.cols; c++ {
			if g.cells[r][c] == Start {
				return Coord{Row: r, Col: c}, nil
			}
		}
	}

	return Coord{}, ErrNoStart
}

// IsExit reports whether c lies on the outer boundary of the grid.
// Reaching any boundary cell counts as leaving the maze; that includes
// the start cell itself when the start sits on the edge.
func (g *Grid) IsExit(c Coord) bool {
	return c.Row == 0 || c.Row == g.rows-1 || c.Col == 0 || c.Col == g.cols-1
}

// CanMove reports whether one step from c in direction d is legal:
// the target must be in bounds and still Open. Start and Visited cells
// are not legal targets, which keeps every produced path simple.
func (g *Grid) CanMove(c Coord, d Direction) bool {
	t := c.Step(d)
	if !g.InBounds(t) {
		return false
	}

	return g.At(t) == Open
}

// String renders the grid back to its text symbol form, one row per
// line, no trailing newline. Visited cells render as '.'.
func (g *Grid) String() string {
	var b strings.Builder
	b.Grow(g.rows * (g.cols + 1))
	for r := 0; r < g.rows; r++ {
		if r > 0 {
			b.WriteByte('\n')
		}
		for c := 0; c < g.cols; c++ {
			b.WriteRune(g.cells[r][c].Rune())
		}
	}

	return b.String()
}
