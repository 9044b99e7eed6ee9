// Package mazepaths finds every way out of a small grid maze.
//
// A maze is a rectangular text grid of walls ('x'), open cells ('0'),
// and a single start marker ('*'). Reaching any cell on the outer
// boundary counts as an exit. mazepaths enumerates every simple path
// from the start to the boundary and reports the extremes.
//
// Everything is organized under three library packages and a command:
//
//	maze/   — grid model: parsing, copy-on-write snapshots, start
//	          location, boundary and move checks
//	solve/  — exhaustive iterative DFS enumeration plus stable
//	          length ranking (shortest / longest)
//	render/ — terminal (lipgloss) and PNG rendering of a solved maze
//	cmd/mazepaths — the CLI gluing it all together
//
// Quick ASCII example:
//
//	xxx        xxx
//	0*0   ->   0*+    two ways out; '+' marks the shortest
//	xxx        xxx
//
// The search is exhaustive by design: it answers "how many ways out,
// and how do the extremes look", not "what is the one shortest path",
// so no Dijkstra-style pruning applies. Each branch of the search owns
// an immutable snapshot of the grid, which keeps sibling branches
// independent and the enumeration correct.
//
//	go get github.com/ostrofel/mazepaths
package mazepaths
