package cli_test

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ostrofel/mazepaths/internal/cli"
	"github.com/ostrofel/mazepaths/maze"
	"github.com/ostrofel/mazepaths/solve"
)

const corridorMaze = `xxxxxx
0x000x
x*0x0x
xxxx00
00000x
xxxx0x
`

// writeMaze drops a maze file into a temp dir and returns its path.
func writeMaze(t *testing.T, text string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "maze.txt")
	require.NoError(t, os.WriteFile(path, []byte(text), 0o600))

	return path
}

// execute runs the root command with args and captures stdout.
func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := cli.NewRootCmd("mazepaths", "test")
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()

	return out.String(), err
}

// TestRoot_Solve runs the full pipeline on the corridor maze.
func TestRoot_Solve(t *testing.T) {
	cmd := cli.NewRootCmd("mazepaths", "test")
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetArgs([]string{writeMaze(t, corridorMaze), "--no-color"})

	require.NoError(t, cmd.Execute())
	assert.Contains(t, out.String(), "paths found: 3")
	assert.Contains(t, out.String(), "shortest (8 steps): (2,1)->(2,2)")
	assert.Contains(t, out.String(), "longest  (12 steps):")
}

// TestRoot_MissingFile: a nonexistent maze file is a run error.
func TestRoot_MissingFile(t *testing.T) {
	_, err := execute(t, filepath.Join(t.TempDir(), "absent.txt"))
	assert.Error(t, err)
}

// TestRoot_Malformed surfaces parse sentinels through the command.
func TestRoot_Malformed(t *testing.T) {
	_, err := execute(t, writeMaze(t, "x0x\nx0\nx0x"))
	assert.ErrorIs(t, err, maze.ErrNonRectangular)

	_, err = execute(t, writeMaze(t, "x0x\n000\nx0x"))
	assert.ErrorIs(t, err, maze.ErrStartCount)
}

// TestRoot_NoPaths: an enclosed start is reported as ErrNoPaths, not a
// zero-filled summary.
func TestRoot_NoPaths(t *testing.T) {
	_, err := execute(t, writeMaze(t, "xxx\nx*x\nxxx"))
	assert.ErrorIs(t, err, solve.ErrNoPaths)
}

// TestRoot_Budget: an impossibly small budget aborts the run.
func TestRoot_Budget(t *testing.T) {
	_, err := execute(t, writeMaze(t, corridorMaze), "--budget", "1")
	assert.ErrorIs(t, err, solve.ErrBudgetExhausted)
}

// TestRoot_Image writes a PNG next to the maze file.
func TestRoot_Image(t *testing.T) {
	imgPath := filepath.Join(t.TempDir(), "solved.png")
	cmd := cli.NewRootCmd("mazepaths", "test")
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetArgs([]string{writeMaze(t, corridorMaze), "--image", imgPath})

	require.NoError(t, cmd.Execute())
	info, err := os.Stat(imgPath)
	require.NoError(t, err)
	assert.Positive(t, info.Size())
}
