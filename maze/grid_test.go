package maze_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ostrofel/mazepaths/maze"
)

// mustParse is a test helper; fails the test on any parse error.
func mustParse(t *testing.T, text string) *maze.Grid {
	t.Helper()
	g, err := maze.Parse(text)
	require.NoError(t, err)

	return g
}

// TestNewGrid_Errors verifies NewGrid rejects empty or ragged matrices.
func TestNewGrid_Errors(t *testing.T) {
	_, err := maze.NewGrid(nil)
	assert.ErrorIs(t, err, maze.ErrEmptyGrid)

	_, err = maze.NewGrid([][]maze.Cell{{}})
	assert.ErrorIs(t, err, maze.ErrEmptyGrid)

	_, err = maze.NewGrid([][]maze.Cell{
		{maze.Open, maze.Open},
		{maze.Open},
	})
	assert.ErrorIs(t, err, maze.ErrNonRectangular)
}

// TestNewGrid_CopiesInput ensures later mutation of the source matrix
// does not reach into the constructed grid.
func TestNewGrid_CopiesInput(t *testing.T) {
	src := [][]maze.Cell{
		{maze.Open, maze.Blocked},
		{maze.Start, maze.Open},
	}
	g, err := maze.NewGrid(src)
	require.NoError(t, err)

	src[0][0] = maze.Blocked
	assert.Equal(t, maze.Open, g.At(maze.Coord{Row: 0, Col: 0}))
}

// TestInBounds checks the four edges and corners of a 3×2 grid.
func TestInBounds(t *testing.T) {
	g := mustParse(t, "x0x\n0*0")

	valid := []maze.Coord{{Row: 0, Col: 0}, {Row: 1, Col: 2}, {Row: 1, Col: 1}}
	for _, c := range valid {
		assert.True(t, g.InBounds(c), "InBounds(%v)", c)
	}
	invalid := []maze.Coord{
		{Row: -1, Col: 0}, {Row: 2, Col: 0},
		{Row: 0, Col: -1}, {Row: 0, Col: 3},
	}
	for _, c := range invalid {
		assert.False(t, g.InBounds(c), "InBounds(%v)", c)
	}
}

// TestSet_CopyOnWrite is the central invariant of the whole package:
// a derivative grid must never share mutable state with its parent.
func TestSet_CopyOnWrite(t *testing.T) {
	g := mustParse(t, "x0x\n0*0\nx0x")
	c := maze.Coord{Row: 1, Col: 1}

	derived := g.Set(c, maze.Visited)

	assert.Equal(t, maze.Visited, derived.At(c))
	assert.Equal(t, maze.Start, g.At(c), "parent grid must be untouched")

	// A second derivative from the same parent sees the parent's state,
	// not the sibling's.
	sibling := g.Set(maze.Coord{Row: 0, Col: 1}, maze.Visited)
	assert.Equal(t, maze.Start, sibling.At(c))
	assert.Equal(t, maze.Open, derived.At(maze.Coord{Row: 0, Col: 1}))
}

// TestLocateStart covers the row-major scan and the defensive ErrNoStart.
func TestLocateStart(t *testing.T) {
	g := mustParse(t, "xxx\nx0x\nx*x")
	c, err := g.LocateStart()
	require.NoError(t, err)
	assert.Equal(t, maze.Coord{Row: 2, Col: 1}, c)

	// NewGrid accepts a start-free matrix (Parse would not); LocateStart
	// must then report ErrNoStart instead of a zero coordinate.
	bare, err := maze.NewGrid([][]maze.Cell{{maze.Open, maze.Open}})
	require.NoError(t, err)
	_, err = bare.LocateStart()
	assert.ErrorIs(t, err, maze.ErrNoStart)
}

// TestIsExit enumerates boundary and interior coordinates of a 3×3 grid.
func TestIsExit(t *testing.T) {
	g := mustParse(t, "xxx\nx*x\nxxx")

	assert.False(t, g.IsExit(maze.Coord{Row: 1, Col: 1}))
	edges := []maze.Coord{
		{Row: 0, Col: 0}, {Row: 0, Col: 1}, {Row: 0, Col: 2},
		{Row: 1, Col: 0}, {Row: 1, Col: 2},
		{Row: 2, Col: 0}, {Row: 2, Col: 1}, {Row: 2, Col: 2},
	}
	for _, c := range edges {
		assert.True(t, g.IsExit(c), "IsExit(%v)", c)
	}
}

// TestIsExit_SingleRow: with one row, every cell is a boundary cell.
func TestIsExit_SingleRow(t *testing.T) {
	g := mustParse(t, "*00")
	for col := 0; col < g.Cols(); col++ {
		assert.True(t, g.IsExit(maze.Coord{Row: 0, Col: col}))
	}
}

// TestCanMove covers bounds, Blocked, Open, Start and Visited targets.
func TestCanMove(t *testing.T) {
	g := mustParse(t, "x0x\n0*0\nxxx")
	c := maze.Coord{Row: 1, Col: 1}

	assert.True(t, g.CanMove(c, maze.Right))
	assert.True(t, g.CanMove(c, maze.Up))
	assert.True(t, g.CanMove(c, maze.Left))
	assert.False(t, g.CanMove(c, maze.Down), "Blocked target")

	// Off-grid targets are never legal, whatever the direction.
	corner := maze.Coord{Row: 0, Col: 1}
	assert.False(t, g.CanMove(corner, maze.Up))

	// Start and Visited are not legal targets; only Open is.
	marked := g.Set(maze.Coord{Row: 1, Col: 2}, maze.Visited)
	assert.False(t, marked.CanMove(c, maze.Right))
	right := maze.Coord{Row: 1, Col: 2}
	assert.False(t, g.CanMove(right, maze.Left), "Start is not a target")
}

// TestCellString pins the Stringer output used in logs and failures.
func TestCellString(t *testing.T) {
	assert.Equal(t, "Blocked", maze.Blocked.String())
	assert.Equal(t, "Open", maze.Open.String())
	assert.Equal(t, "Start", maze.Start.String())
	assert.Equal(t, "Visited", maze.Visited.String())
	assert.Equal(t, "Right", maze.Right.String())
	assert.Equal(t, "Down", maze.Down.String())
}
