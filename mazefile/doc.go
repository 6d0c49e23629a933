// Package mazefile reads and writes the plain-text maze format:
//
//	#####B#
//	##### #
//	####  #
//	#### ##
//	     ##
//	A######
//
// '#' is a wall, 'A' the start, 'B' the goal; any other character is open.
// The grid is as wide as the longest line and shorter lines are padded
// with open cells. A maze must contain exactly one 'A' and exactly one 'B'.
//
// Every error returned by Parse and Load wraps grid.ErrConstruction.
package mazefile
