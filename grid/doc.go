// Package grid models the immutable rectangular obstacle map an oriented
// agent moves on.
//
// What:
//
//   - Grid wraps a rectangular [][]bool wall matrix (true = blocked).
//   - Position is a (Col, Row) cell coordinate, origin at the top-left.
//   - Orientation is a cardinal facing with Left/Right rotation and a
//     fixed numeric rank (North=0, East=1, South=2, West=3).
//   - Open cells are labelled into 4-connected regions at construction so
//     reachability between two cells is an O(1) lookup.
//
// Complexity:
//
//   - New:        O(W×H) time and memory (copy + region labelling).
//   - InBounds, Blocked, Open, Region, Connected: O(1).
//   - Components: O(W×H).
//
// Errors:
//
//   - ErrEmptyGrid: input grid has no rows or no columns.
//   - ErrNonRectangular: rows have differing lengths.
//
// Both wrap ErrMalformedGrid, so errors.Is(err, ErrMalformedGrid) matches
// either failure.
package grid
