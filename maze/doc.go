// Package maze models a rectangular grid maze parsed from a plain-text
// description, and answers the elementary questions the path search asks
// of it: where is the start, is a cell on the boundary, is a step legal.
//
// What:
//
//   - Grid wraps a rectangular matrix of Cell values (Blocked, Open,
//     Start, Visited), built once by Parse and never mutated in place.
//   - Set produces a copy-on-write derivative: a new Grid identical to
//     the receiver except for a single replaced cell. Sibling search
//     branches each own an independent derivative, so one branch's
//     Visited marks can never leak into another.
//   - LocateStart scans row-major for the single Start marker.
//   - IsExit reports whether a coordinate lies on the outer boundary.
//   - CanMove validates one orthogonal step: target in bounds and Open.
//
// Why:
//
//   - Exhaustive path enumeration (package solve) branches at every
//     junction; correctness rests on branch-isolated snapshots, which
//     Set provides by construction.
//
// Text format:
//
//   - One row per line, equal lengths. 'x' = blocked, '0' = open,
//     '*' = start (exactly one in the whole grid). Whitespace around
//     the whole text is trimmed before parsing.
//
// Complexity:
//
//   - Parse, LocateStart: O(R×C) time, O(R×C) memory.
//   - Set: O(R×C) time and memory (full snapshot per derivative).
//   - At, InBounds, IsExit, CanMove: O(1).
//
// Errors:
//
//   - ErrEmptyGrid: input has no rows or no columns.
//   - ErrNonRectangular: rows have differing lengths.
//   - ErrUnknownCell: a symbol other than 'x', '0', '*' appears.
//   - ErrStartCount: the start marker count is not exactly 1.
//   - ErrNoStart: LocateStart found no Start cell.
package maze
