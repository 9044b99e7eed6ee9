// Package maze defines core types and sentinel errors for the grid model.
package maze

import "errors"

// Sentinel errors for parsing and start location.
var (
	// ErrEmptyGrid indicates the input has no rows or no columns.
	ErrEmptyGrid = errors.New("maze: grid must have at least one row and one column")
	// ErrNonRectangular indicates rows of differing lengths.
	ErrNonRectangular = errors.New("maze: all rows must have the same length")
	// ErrUnknownCell indicates a symbol outside the recognized alphabet.
	ErrUnknownCell = errors.New("maze: unrecognized cell symbol")
	// ErrStartCount indicates the start marker count is not exactly one.
	ErrStartCount = errors.New("maze: grid must contain exactly one start marker")
	// ErrNoStart indicates LocateStart found no start cell.
	ErrNoStart = errors.New("maze: no start marker found")
)

// Cell is the state of a single grid position.
type Cell uint8

const (
	// Blocked cells are walls; never traversable.
	Blocked Cell = iota
	// Open cells are traversable and may be stepped onto.
	Open
	// Start marks the single entry cell. Traversable for the one-time
	// locate step, but never a legal move target.
	Start
	// Visited marks a cell already consumed by the current search branch.
	Visited
)

// Text symbols accepted by Parse and emitted by Grid.String.
const (
	SymbolBlocked = 'x'
	SymbolOpen    = '0'
	SymbolStart   = '*'
	SymbolVisited = '.'
)

// Rune returns the text symbol for c.
func (c Cell) Rune() rune {
	switch c {
	case Blocked:
		return SymbolBlocked
	case Open:
		return SymbolOpen
	case Start:
		return SymbolStart
	default:
		return SymbolVisited
	}
}

// String implements fmt.Stringer.
func (c Cell) String() string {
	switch c {
	case Blocked:
		return "Blocked"
	case Open:
		return "Open"
	case Start:
		return "Start"
	default:
		return "Visited"
	}
}

// Coord addresses one grid position, zero-based.
type Coord struct {
	Row, Col int
}

// Step returns the coordinate one cell away in direction d.
func (c Coord) Step(d Direction) Coord {
	off := d.offset()

	return Coord{Row: c.Row + off.Row, Col: c.Col + off.Col}
}

// Direction is one of the four orthogonal moves.
type Direction uint8

const (
	// Right increments the column.
	Right Direction = iota
	// Up decrements the row.
	Up
	// Left decrements the column.
	Left
	// Down increments the row.
	Down
)

// Directions lists all moves in the fixed exploration order.
// The order is arbitrary but load-bearing: it determines the emission
// order of equal-length paths, which the stable ranker preserves.
var Directions = [4]Direction{Right, Up, Left, Down}

// offsets is indexed by Direction; each entry is the (row, col) delta.
var offsets = [4]Coord{
	{Row: 0, Col: 1},  // Right
	{Row: -1, Col: 0}, // Up
	{Row: 0, Col: -1}, // Left
	{Row: 1, Col: 0},  // Down
}

func (d Direction) offset() Coord {
	return offsets[d]
}

// String implements fmt.Stringer.
func (d Direction) String() string {
	switch d {
	case Right:
		return "Right"
	case Up:
		return "Up"
	case Left:
		return "Left"
	default:
		return "Down"
	}
}
