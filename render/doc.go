// Package render draws a maze grid with a solution path overlaid, for
// human consumption. The core packages expose results as data; this is
// the presentation layer on top of them.
//
// What:
//
//   - Text: terminal rendering. Cells keep their text symbols; path
//     cells become '+' and are styled with lipgloss, which degrades to
//     plain runes when the output is not a color terminal.
//   - Image: PNG-ready rasterization. One colored square per cell, the
//     path tinted, an arrow on the exit cell pointing out of the maze,
//     and a border around the whole picture (composed with the
//     image_utils helpers).
//
// Errors:
//
//   - ErrNilGrid: nil grid passed in.
//   - ErrPathOffGrid: a path coordinate lies outside the grid.
package render
