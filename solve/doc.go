// Package solve enumerates every simple path from a maze's start cell to
// its boundary, and ranks the results by length.
//
// What:
//
//   - Enumerate: exhaustive depth-first search over a maze.Grid. Each
//     branch owns an independent copy-on-write snapshot of the grid with
//     its own Visited marks, so siblings explore in full isolation. The
//     traversal is iterative (explicit frame stack), so depth is bounded
//     by memory rather than the call stack.
//   - Rank: stable ascending sort of paths by step count; ties keep the
//     enumerator's emission order.
//   - Summarize: total path count plus the shortest and longest path,
//     as data for an external reporter.
//
// Why:
//
//   - "How many ways out are there, and what are the extremes?" is a
//     different question from single shortest-path search; answering it
//     requires visiting every simple path, not pruning to one.
//
// Semantics:
//
//   - Reaching any boundary cell terminates a branch successfully; a
//     start already on the boundary yields exactly one length-1 path.
//   - Directions are explored in the fixed order Right, Up, Left, Down.
//     The order is arbitrary but determines tie-break order among
//     equal-length paths, which the stable Rank preserves.
//   - A dead end (no exit, no legal move) is silently discarded; an
//     entirely enclosed start therefore yields an empty path set, which
//     Rank and Summarize surface as ErrNoPaths rather than defaulting.
//
// Complexity:
//
//   - Exponential in the number of open cells in the worst case
//     (branching factor up to 4); acceptable because mazes are small.
//     Each branch step copies the grid: O(R×C) per pushed frame.
//
// Options:
//
//   - WithContext(ctx): cancellation between frames.
//   - WithVisitBudget(n): hard cap on explored frames, surfaced as
//     ErrBudgetExhausted, never as silent truncation.
//   - WithOnPath(fn): hook invoked for each emitted path; an error
//     aborts the search.
//
// Errors:
//
//   - ErrGridNil: nil grid passed to Enumerate.
//   - maze.ErrNoStart: the grid holds no start marker.
//   - ErrNoPaths: Rank/Summarize called with zero paths.
//   - ErrBudgetExhausted: the visit budget ran out mid-search.
//   - ErrOptionViolation: an invalid option value was supplied.
//   - context.Canceled / DeadlineExceeded: passed through from ctx.
package solve
