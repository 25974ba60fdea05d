package cover

import (
	"github.com/katalvlaran/gridcover/grid"
)

// neighborOffsets are the orthogonal (dr, dc) steps: up, down, left, right.
var neighborOffsets = [4][2]int{{-1, 0}, {1, 0}, {0, -1}, {0, 1}}

// Expand — multi-source level-bounded breadth-first expansion.
//
// Description:
//
//	All seeds enter the frontier at level 0, marked covered immediately.
//	Each advance moves the frontier one orthogonal step outward; a cell
//	first reached at level d has Manhattan distance d from its nearest
//	seed, so bounding the level at radius yields exactly the union of the
//	seeds' diamonds.
//
// Algorithm Outline:
//  1. visited = []bool sized rows·cols; frontier = all seed indices.
//  2. While the frontier is non-empty and level < radius:
//     next = the unvisited in-bounds orthogonal neighbors of the frontier,
//     each marked visited on enqueue; frontier = next; level++.
//  3. Count = number of visited cells.
//
// Termination needs no special cases: the frontier empties once the grid
// saturates, and the level bound stops growth otherwise. Either exit alone
// is sufficient.
//
// Complexity:
//
//	Time   = O(R×C) — each cell joins the frontier at most once
//	Memory = O(R×C) for the visited flags
//
// Errors:
//   - ErrNilGrid        — g is nil.
//   - ErrNegativeRadius — radius < 0.
func Expand(g *grid.Grid, radius int, opts *Options) (Result, error) {
	if g == nil {
		return Result{}, ErrNilGrid
	}
	if radius < 0 {
		return Result{}, ErrNegativeRadius
	}
	wantCells := opts != nil && opts.ReturnCells

	rows, cols := g.Dims()
	seeds := g.Seeds()
	if len(seeds) == 0 {
		return Result{}, nil
	}

	visited := make([]bool, rows*cols)
	frontier := make([]int, 0, len(seeds))
	for _, s := range seeds {
		i := g.Index(s.Row, s.Col)
		visited[i] = true
		frontier = append(frontier, i)
	}
	count := len(frontier)

	for level := 0; level < radius && len(frontier) > 0; level++ {
		var next []int
		for _, u := range frontier {
			uc := g.CoordAt(u)
			for _, d := range neighborOffsets {
				nr, nc := uc.Row+d[0], uc.Col+d[1]
				if nr < 0 || nr >= rows || nc < 0 || nc >= cols {
					continue
				}
				v := g.Index(nr, nc)
				if visited[v] {
					continue
				}
				visited[v] = true
				next = append(next, v)
			}
		}
		count += len(next)
		frontier = next
	}

	res := Result{Count: count}
	if wantCells && count > 0 {
		// visited is row-major, so the scan order is already sorted.
		res.Cells = make([]grid.Coord, 0, count)
		for i, ok := range visited {
			if ok {
				res.Cells = append(res.Cells, g.CoordAt(i))
			}
		}
	}

	return res, nil
}
