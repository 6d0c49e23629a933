// Package grid models a rectangular maze as an immutable wall matrix with
// exactly one start cell and one goal cell, and answers adjacency queries
// for the search engine.
//
// What:
//
//   - Coordinate is a (Row, Col) pair usable as a map key.
//   - Action labels the edge between two orthogonally adjacent cells:
//     Up (row-1), Down (row+1), Left (col-1), Right (col+1).
//   - Grid holds the wall matrix plus start and goal; it is never mutated
//     after New returns.
//   - Neighbors yields the open, in-bounds cells around a coordinate in the
//     fixed order Up, Down, Left, Right.
//
// Determinism:
//
//	The neighbor order is part of the package contract. Depth-first search
//	picks its path from it and breadth-first search breaks ties with it, so
//	two runs over the same Grid always produce the same solution.
//
// Complexity:
//
//   - New:        O(H×W) time and memory (deep copy).
//   - Neighbors:  O(1), at most four results.
//   - OpenCells:  O(H×W).
//
// Errors (all wrap ErrConstruction):
//
//   - ErrEmptyGrid:       no rows or no columns.
//   - ErrOutOfBounds:     start or goal lies outside the matrix.
//   - ErrBlockedEndpoint: start or goal is a wall.
//
// A Grid is read-only, so one value may be shared by any number of
// concurrent search runs without synchronization.
package grid
