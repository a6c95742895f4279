// SPDX-License-Identifier: MIT

// Package grid models the warehouse floor as an immutable rectangular
// matrix of cell markers, viewed as a 4-connected graph.
//
// What:
//
//   - Marker classifies a cell: Free, Obstacle, Robot, Package, DropOff.
//   - Position is a comparable (Row, Col) pair usable as a map key.
//   - Grid deep-copies its input on construction and never changes after.
//   - Neighbors yields in-bounds neighbors in the fixed order
//     up, down, left, right (row-1, row+1, col-1, col+1).
//
// Why:
//
//   - Search engines share one read-only Grid across many calls.
//   - A fixed neighbor order makes every traversal reproducible.
//
// Complexity:
//
//   - New, Parse, Cells, String: O(R×C) time and memory.
//   - InBounds, At, Neighbors:   O(1).
//
// Errors:
//
//   - ErrEmptyGrid:      input has no rows or no columns.
//   - ErrNonRectangular: rows have differing lengths.
//   - ErrInvalidMarker:  a cell holds an unknown marker.
//   - ErrOutOfBounds:    a position lies outside the grid.
//
// Textual form (Parse / String), one row per line:
//
//	R - - O
//	- O P -
//	- - - D
package grid
