// Package cli wires the mazepaths command line: flag parsing, logging,
// and the parse → enumerate → summarize → render pipeline.
package cli

import (
	"fmt"
	"image/png"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
	"github.com/muesli/termenv"
	"github.com/spf13/cobra"

	"github.com/ostrofel/mazepaths/maze"
	"github.com/ostrofel/mazepaths/render"
	"github.com/ostrofel/mazepaths/solve"
)

const (
	shortDesc = "Enumerate every way out of a grid maze."
	longDesc  = `mazepaths reads a grid maze from a text file, finds every simple path
from the start marker to the outer boundary, and reports the shortest
and the longest way out.

Maze format: one row per line, 'x' = wall, '0' = open, '*' = start
(exactly one). Reaching any boundary cell counts as an exit.`
)

// rootArgs holds the root command's flag values.
type rootArgs struct {
	logLevel  string
	budget    int
	imagePath string
	noColor   bool
}

// NewRootCmd builds the mazepaths root command.
func NewRootCmd(name, version string) *cobra.Command {
	args := &rootArgs{}

	cmd := &cobra.Command{
		Use:           name + " MAZE_FILE",
		Short:         shortDesc,
		Long:          longDesc,
		Version:       version,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, posArgs []string) error {
			return runSolve(cmd, args, posArgs[0])
		},
	}

	cmd.PersistentFlags().StringVar(&args.logLevel, "log-level", "warn",
		"Set the log level (debug, info, warn, error)")
	cmd.Flags().IntVar(&args.budget, "budget", 0,
		"Abort after exploring this many cells (0 = unlimited)")
	cmd.Flags().StringVar(&args.imagePath, "image", "",
		"Write a PNG of the maze with the shortest path to this file")
	cmd.Flags().BoolVar(&args.noColor, "no-color", false,
		"Disable colored terminal output")

	return cmd
}

// runSolve is the whole pipeline behind the root command.
func runSolve(cmd *cobra.Command, args *rootArgs, mazePath string) error {
	logger := newLogger(args.logLevel)
	if args.noColor {
		lipgloss.SetColorProfile(termenv.Ascii)
	}

	f, err := os.Open(mazePath)
	if err != nil {
		return fmt.Errorf("opening maze file: %w", err)
	}
	defer f.Close()

	g, err := maze.ParseReader(f)
	if err != nil {
		return err
	}
	start, err := g.LocateStart()
	if err != nil {
		return err
	}
	logger.Debug("maze parsed",
		"rows", g.Rows(), "cols", g.Cols(),
		"start", fmt.Sprintf("(%d,%d)", start.Row, start.Col))

	opts := []solve.Option{solve.WithContext(cmd.Context())}
	if args.budget > 0 {
		opts = append(opts, solve.WithVisitBudget(args.budget))
	}
	paths, err := solve.Enumerate(g, opts...)
	if err != nil {
		return err
	}
	logger.Info("search complete", "paths", len(paths))

	sum, err := solve.Summarize(paths)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "paths found: %d\n", sum.Total)
	fmt.Fprintf(out, "shortest (%d steps): %s\n", sum.Shortest.Len(), sum.Shortest)
	fmt.Fprintf(out, "longest  (%d steps): %s\n", sum.Longest.Len(), sum.Longest)

	grid, err := render.Text(g, sum.Shortest)
	if err != nil {
		return err
	}
	fmt.Fprintln(out, grid)

	if args.imagePath != "" {
		if err := writeImage(g, sum.Shortest, args.imagePath); err != nil {
			return err
		}
		logger.Info("image written", "path", args.imagePath)
	}

	return nil
}

// writeImage renders the solved maze to a PNG file.
func writeImage(g *maze.Grid, p solve.Path, path string) error {
	img, err := render.Image(g, p)
	if err != nil {
		return err
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating image file: %w", err)
	}
	defer f.Close()
	if err := png.Encode(f, img); err != nil {
		return fmt.Errorf("encoding image: %w", err)
	}

	return nil
}

// newLogger builds the stderr logger; an unknown level falls back to warn.
func newLogger(level string) *log.Logger {
	lvl, err := log.ParseLevel(level)
	if err != nil {
		lvl = log.WarnLevel
	}

	return log.NewWithOptions(os.Stderr, log.Options{
		Level:           lvl,
		ReportTimestamp: false,
	})
}
