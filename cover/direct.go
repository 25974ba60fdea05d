package cover

import (
	"slices"

	"github.com/katalvlaran/gridcover/grid"
)

// Direct — per-seed diamond enumeration.
//
// Description:
//
//	Every seed (positive-valued cell) covers the cells within Manhattan
//	distance radius of it. Direct walks each seed's diamond once and
//	deduplicates across seeds with a set keyed by row-major index.
//
// Algorithm Outline:
//  1. For each seed (sr, sc):
//     For dr = -radius..radius:
//     rem = radius - |dr|
//     For dc = -rem..rem:
//     (sr+dr, sc+dc) joins the covered set when in bounds.
//  2. Count = size of the set. Under ReturnCells the indices are sorted and
//     converted back to coordinates, so both engines emit identical slices.
//
// The column range [-rem, rem] is the exact diamond bound: no cell of a
// seed's diamond is generated twice, and no cell outside the diamond is
// ever tested. Out-of-bounds candidates are skipped, never clamped.
//
// Complexity:
//
//	Time   = O(S·radius²), plus O(K log K) to sort under ReturnCells
//	Memory = O(min(S·radius², R×C)) for the covered set
//
// Errors:
//   - ErrNilGrid        — g is nil.
//   - ErrNegativeRadius — radius < 0.
func Direct(g *grid.Grid, radius int, opts *Options) (Result, error) {
	if g == nil {
		return Result{}, ErrNilGrid
	}
	if radius < 0 {
		return Result{}, ErrNegativeRadius
	}
	wantCells := opts != nil && opts.ReturnCells

	rows, cols := g.Dims()
	covered := make(map[int]struct{})
	for _, s := range g.Seeds() {
		for dr := -radius; dr <= radius; dr++ {
			r := s.Row + dr
			if r < 0 || r >= rows {
				continue
			}
			rem := radius - abs(dr)
			for dc := -rem; dc <= rem; dc++ {
				c := s.Col + dc
				if c < 0 || c >= cols {
					continue
				}
				covered[g.Index(r, c)] = struct{}{}
			}
		}
	}

	res := Result{Count: len(covered)}
	if wantCells && len(covered) > 0 {
		idxs := make([]int, 0, len(covered))
		for i := range covered {
			idxs = append(idxs, i)
		}
		slices.Sort(idxs)
		res.Cells = make([]grid.Coord, len(idxs))
		for k, i := range idxs {
			res.Cells[k] = g.CoordAt(i)
		}
	}

	return res, nil
}

// abs returns the absolute value of an int.
func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
