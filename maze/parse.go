package maze

import (
	"fmt"
	"io"
	"strings"
)

// Parse builds a Grid from a text maze description: one row per line,
// 'x' blocked, '0' open, '*' start (exactly once). Whitespace around the
// whole text is trimmed first; individual lines are split on '\n' with
// any '\r' remnants stripped.
//
// Returns ErrEmptyGrid, ErrNonRectangular, ErrUnknownCell, or
// ErrStartCount on structural defects. Complexity: O(R×C).
func Parse(text string) (*Grid, error) {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return nil, ErrEmptyGrid
	}

	lines := strings.Split(trimmed, "\n")
	rows := len(lines)
	values := make([][]Cell, rows)
	starts := 0

	cols := -1
	for r, line := range lines {
		line = strings.TrimSuffix(line, "\r")
		if cols < 0 {
			cols = len(line)
			if cols == 0 {
				return nil, ErrEmptyGrid
			}
		}
		if len(line) != cols {
			return nil, fmt.Errorf("%w: row %d has %d cells, want %d",
				ErrNonRectangular, r, len(line), cols)
		}

		row := make([]Cell, cols)
		for c, sym := range line {
			cell, err := parseCell(sym)
			if err != nil {
				return nil, fmt.Errorf("%w at row %d, col %d", err, r, c)
			}
			if cell == Start {
				starts++
			}
			row[c] = cell
		}
		values[r] = row
	}

	if starts != 1 {
		return nil, fmt.Errorf("%w: found %d", ErrStartCount, starts)
	}

	return &Grid{cells: values, rows: rows, cols: cols}, nil
}

// ParseReader reads all of r and parses it as a text maze.
func ParseReader(r io.Reader) (*Grid, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("maze: reading input: %w", err)
	}

	return Parse(string(data))
}

// parseCell maps one text symbol to its Cell value.
// Visited never appears in input; it exists only during a search.
func parseCell(sym rune) (Cell, error) {
	switch sym {
	case SymbolBlocked:
		return Blocked, nil
	case SymbolOpen:
		return Open, nil
	case SymbolStart:
		return Start, nil
	default:
		return Blocked, fmt.Errorf("%w: %q", ErrUnknownCell, sym)
	}
}
