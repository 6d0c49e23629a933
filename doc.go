// Package labyrinth is a grid maze search engine: load a rectangular maze
// with one start and one goal, search it with a depth-first or
// breadth-first frontier, and rebuild the path from parent links.
//
// Subpackages:
//
//	grid/      — Coordinate, Action, immutable Grid, ordered Neighbors
//	frontier/  — Node records, Frontier interface, Stack and Queue
//	search/    — Solve: explored set, expansion loop, path reconstruction
//	mazefile/  — plain-text maze loader and writer ('#', 'A', 'B')
//	render/    — text (optionally lipgloss-styled) and PNG output
//	cmd/mazesolve — CLI wiring config, logging and metrics
//
// Quick ASCII example:
//
//	A . #
//	. . #
//	# . B
//
// Breadth-first search returns down, right, down, right (4 moves) and
// expands 5 cells before reaching B.
//
//	go get github.com/katalvlaran/labyrinth
package labyrinth
