// Package cover computes the Manhattan-distance neighborhood of a grid's
// seed cells: how many cells (and optionally which) lie within a given
// distance of at least one positive-valued cell.
//
// What:
//
//   - Direct: per-seed diamond enumeration with cross-seed deduplication.
//   - Expand: multi-source breadth-first expansion bounded by the radius.
//   - Count / Cells / Compute: method-tagged dispatch over both engines.
//
// Why:
//
//   - Two independent routes to one quantity: the engines must agree on
//     every valid input, so each one checks the other.
//   - Direct wins on sparse seeds with small radii; Expand's cost is bound
//     by the grid area no matter how many seeds or how large the radius.
//
// Complexity:
//
//   - Direct: O(S·radius²) time, O(min(S·radius², R×C)) memory  (S = seeds).
//   - Expand: O(R×C) time and memory.
//
// Options:
//
//   - Options.ReturnCells: materialize the covered coordinates (row-major)
//     in Result.Cells; off by default.
//
// Errors:
//
//   - ErrNilGrid:        nil *grid.Grid.
//   - ErrNegativeRadius: radius < 0.
//   - ErrUnknownMethod:  unrecognized method value or name.
//
// Cells at exactly the radius are covered (the bound is inclusive); seeds
// cover themselves even at radius 0. An empty grid, or a grid with no
// seeds, covers nothing and never errors.
package cover
