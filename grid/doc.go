// Package grid provides an immutable, dense rectangular container of integer
// cell values with row-major indexing and seed discovery.
//
// What:
//
//   - Grid wraps a rectangular [][]int snapshot; construction deep-copies,
//     so a Grid never aliases caller memory.
//   - Coord names a (Row, Col) position; row-major ordering throughout.
//   - Seeds reports every positive-valued cell in row-major order.
//
// Why:
//
//   - Coverage analysis: positive cells act as expansion sources.
//   - Simulation boards: bounds-checked reads without defensive copying.
//
// Complexity:
//
//   - New:    O(R×C) time and memory (deep copy + rectangularity check).
//   - ValueAt / InBounds / Index / CoordAt: O(1).
//   - Seeds:  O(R×C) time, O(S) memory    (S = number of seeds).
//
// Errors:
//
//   - ErrRagged:      rows have differing lengths.
//   - ErrOutOfBounds: ValueAt outside [0,rows)×[0,cols).
//
// The empty grid (zero rows, or rows of zero length) is valid and has no
// cells; every coverage computation over it is 0.
package grid
