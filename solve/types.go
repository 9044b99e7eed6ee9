// Package solve defines result types, sentinel errors, and functional
// options for path enumeration.
package solve

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/ostrofel/mazepaths/maze"
)

// Sentinel errors for enumeration and ranking.
var (
	// ErrGridNil is returned when a nil *maze.Grid is passed to Enumerate.
	ErrGridNil = errors.New("solve: grid is nil")

	// ErrNoPaths indicates the search completed but produced zero paths.
	// A fully enclosed start is a legitimate maze topology, not a bug,
	// so it is reported distinctly instead of crashing on empty access.
	ErrNoPaths = errors.New("solve: no paths from start to any exit")

	// ErrBudgetExhausted indicates the visit budget ran out before the
	// search completed. No partial results accompany it.
	ErrBudgetExhausted = errors.New("solve: visit budget exhausted")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("solve: invalid option supplied")
)

// Path is an ordered coordinate sequence from the start cell (inclusive)
// to an exit cell (inclusive), with no repeated coordinate. Paths are
// immutable once emitted by Enumerate.
type Path []maze.Coord

// Len reports the number of coordinates in p, start and exit included.
func (p Path) Len() int { return len(p) }

// String renders p as "(r,c)->(r,c)->...". Empty paths render as "".
func (p Path) String() string {
	var b strings.Builder
	for i, c := range p {
		if i > 0 {
			b.WriteString("->")
		}
		fmt.Fprintf(&b, "(%d,%d)", c.Row, c.Col)
	}

	return b.String()
}

// Summary is the structured search result handed to external reporters:
// the path count plus both length extremes.
type Summary struct {
	// Total is the number of distinct simple paths found.
	Total int
	// Shortest is the first path after stable ascending ranking.
	Shortest Path
	// Longest is the last path after stable ascending ranking.
	Longest Path
}

// Option configures Enumerate via functional arguments. An invalid
// value (e.g. a negative budget) is recorded internally and surfaced as
// ErrOptionViolation when Enumerate is invoked.
type Option func(*Options)

// Options holds configurable parameters for path enumeration.
type Options struct {
	// Ctx allows cancellation and deadlines; checked once per frame.
	Ctx context.Context

	// VisitBudget, if > 0, caps the number of explored frames.
	// 0 disables the cap. Exceeding it aborts with ErrBudgetExhausted.
	VisitBudget int

	// OnPath, if non-nil, is invoked for each emitted path, in emission
	// order. Returning an error aborts the search with that error.
	OnPath func(Path) error

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns Options with a background context, no visit
// budget, and no path hook.
func DefaultOptions() Options {
	return Options{
		Ctx:         context.Background(),
		VisitBudget: 0,
		OnPath:      nil,
		err:         nil,
	}
}

// WithContext sets a custom context for cancellation.
// Passing a nil context has no effect (Background is retained).
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithVisitBudget caps the number of frames the search may explore.
// A budget of 0 disables the cap; a negative budget is an option error.
func WithVisitBudget(n int) Option {
	return func(o *Options) {
		if n < 0 {
			o.err = fmt.Errorf("%w: visit budget %d is negative", ErrOptionViolation, n)

			return
		}
		o.VisitBudget = n
	}
}

// WithOnPath installs fn as a per-path hook, called in emission order.
func WithOnPath(fn func(Path) error) Option {
	return func(o *Options) {
		o.OnPath = fn
	}
}
