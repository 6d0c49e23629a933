// Package render draws a maze and, optionally, a search result.
//
//   - Text writes one line per row: '█' wall, 'A' start, 'B' goal,
//     '*' solution, '·' explored (when requested), ' ' open. With Color set
//     the cells are styled through lipgloss for terminal output.
//   - Image writes a PNG with one square per cell.
//
// A nil *search.Result renders the bare maze, which is how an unsolved
// maze is shown.
package render
