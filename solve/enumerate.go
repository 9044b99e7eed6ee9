package solve

import (
	"fmt"

	"github.com/ostrofel/mazepaths/maze"
)

// frame is one pending exploration branch: the branch's own grid
// snapshot, the coordinate being examined, and the path taken to it
// (current coordinate included).
type frame struct {
	grid *maze.Grid
	at   maze.Coord
	path Path
}

// walker holds mutable search state for one Enumerate call.
type walker struct {
	opts   Options
	stack  []frame
	paths  []Path
	visits int
}

// Enumerate locates the start cell of g and performs an exhaustive
// depth-first search, returning every simple path from the start to any
// boundary cell. The traversal uses an explicit frame stack, pushed in
// reverse direction order so branches pop in the fixed order
// Right, Up, Left, Down — identical to the recursive formulation.
//
// An enclosed, non-boundary start yields an empty slice and a nil error;
// distinguishing that from a result is the ranker's job (ErrNoPaths).
// Returns ErrGridNil, maze.ErrNoStart, ErrOptionViolation,
// ErrBudgetExhausted, or the context's error.
func Enumerate(g *maze.Grid, opts ...Option) ([]Path, error) {
	// 1. Validate input grid.
	if g == nil {
		return nil, ErrGridNil
	}

	// 2. Apply options; reject any recorded violation immediately.
	o := DefaultOptions()
	for _, fn := range opts {
		fn(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	// 3. Locate the single start marker.
	start, err := g.LocateStart()
	if err != nil {
		return nil, err
	}

	// 4. Seed the stack with the root branch and run it dry.
	w := &walker{opts: o}
	w.stack = append(w.stack, frame{grid: g, at: start, path: Path{start}})
	if err := w.run(); err != nil {
		return nil, err
	}

	return w.paths, nil
}

// run drains the frame stack, emitting a path per exit reached and
// branching on every legal move otherwise.
func (w *walker) run() error {
	for len(w.stack) > 0 {
		// Cancellation check, once per frame.
		select {
		case <-w.opts.Ctx.Done():
			return w.opts.Ctx.Err()
		default:
		}

		// Pop the most recent branch (LIFO keeps this depth-first).
		f := w.stack[len(w.stack)-1]
		w.stack = w.stack[:len(w.stack)-1]

		// Enforce the visit budget before doing any work on the frame.
		w.visits++
		if w.opts.VisitBudget > 0 && w.visits > w.opts.VisitBudget {
			return fmt.Errorf("%w: limit %d reached", ErrBudgetExhausted, w.opts.VisitBudget)
		}

		// Terminal case: the boundary is the way out. The accumulated
		// path already ends at f.at, so it is emitted as-is.
		if f.grid.IsExit(f.at) {
			if err := w.emit(f.path); err != nil {
				return err
			}

			continue
		}

		w.branch(f)
	}

	return nil
}

// branch marks the frame's cell Visited on a fresh snapshot and pushes
// one child frame per legal move. Children share the snapshot: it is
// never mutated again, each grandchild derives its own via Set.
// Push order is the reverse of maze.Directions so that pops occur in
// direction order; a frame with no legal moves pushes nothing, which
// silently discards the dead end.
func (w *walker) branch(f frame) {
	marked := f.grid.Set(f.at, maze.Visited)

	for i := len(maze.Directions) - 1; i >= 0; i-- {
		d := maze.Directions[i]
		if !marked.CanMove(f.at, d) {
			continue
		}
		next := f.at.Step(d)

		// Each child owns its path slice outright; no append aliasing.
		p := make(Path, len(f.path)+1)
		copy(p, f.path)
		p[len(f.path)] = next

		w.stack = append(w.stack, frame{grid: marked, at: next, path: p})
	}
}

// emit records one finished path and runs the OnPath hook, if any.
func (w *walker) emit(p Path) error {
	w.paths = append(w.paths, p)
	if w.opts.OnPath != nil {
		if err := w.opts.OnPath(p); err != nil {
			return fmt.Errorf("solve: OnPath hook: %w", err)
		}
	}

	return nil
}
