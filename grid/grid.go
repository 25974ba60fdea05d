package grid

// Coord names a single grid position. Coordinates order row-major:
// by Row first, then Col.
type Coord struct {
	Row, Col int
}

// Manhattan returns the L1 distance between c and o.
// Complexity: O(1).
func (c Coord) Manhattan(o Coord) int {
	return abs(c.Row-o.Row) + abs(c.Col-o.Col)
}

// Grid is an immutable dense rectangular container of integer cell values.
// Cells are stored row-major in a flat slice.
type Grid struct {
	rows, cols int
	cells      []int
}

// New constructs a Grid from values, deep-copying every row.
// Returns ErrRagged if any row length differs from the first.
// Zero rows, or rows of zero length, construct a valid grid with no cells.
// Complexity: O(R×C) time and memory.
func New(values [][]int) (*Grid, error) {
	g := &Grid{rows: len(values)}
	if g.rows > 0 {
		g.cols = len(values[0])
	}
	for _, row := range values {
		if len(row) != g.cols {
			return nil, ErrRagged
		}
	}
	// Deep copy to prevent external mutation
	g.cells = make([]int, 0, g.rows*g.cols)
	for _, row := range values {
		g.cells = append(g.cells, row...)
	}

	return g, nil
}

// Rows returns the number of rows. Complexity: O(1).
func (g *Grid) Rows() int { return g.rows }

// Cols returns the number of columns. Complexity: O(1).
func (g *Grid) Cols() int { return g.cols }

// Dims returns (rows, cols). Complexity: O(1).
func (g *Grid) Dims() (rows, cols int) { return g.rows, g.cols }

// InBounds reports whether (r, c) lies within the grid boundaries.
// Complexity: O(1).
func (g *Grid) InBounds(r, c int) bool {
	return r >= 0 && r < g.rows && c >= 0 && c < g.cols
}

// ValueAt returns the cell value at (r, c).
// Returns ErrOutOfBounds outside the grid: no clamping, no wraparound.
// Complexity: O(1).
func (g *Grid) ValueAt(r, c int) (int, error) {
	if !g.InBounds(r, c) {
		return 0, ErrOutOfBounds
	}

	return g.cells[g.Index(r, c)], nil
}

// Index maps (r, c) to a row-major index: r*cols + c.
// Complexity: O(1).
func (g *Grid) Index(r, c int) int {
	return r*g.cols + c
}

// CoordAt converts a row-major index back to a Coord. The index must come
// from Index on the same grid.
// Complexity: O(1).
func (g *Grid) CoordAt(idx int) Coord {
	return Coord{Row: idx / g.cols, Col: idx % g.cols}
}

// Seeds returns the coordinates of every positive-valued cell in row-major
// order. The slice is freshly allocated on each call; callers may mutate or
// cache it freely.
// Complexity: O(R×C) time, O(S) memory.
func (g *Grid) Seeds() []Coord {
	var seeds []Coord
	for i, v := range g.cells {
		if v > 0 {
			seeds = append(seeds, g.CoordAt(i))
		}
	}

	return seeds
}

// Values returns a deep copy of the cell values, the inverse of New.
// Complexity: O(R×C) time and memory.
func (g *Grid) Values() [][]int {
	out := make([][]int, g.rows)
	for r := 0; r < g.rows; r++ {
		out[r] = make([]int, g.cols)
		copy(out[r], g.cells[r*g.cols:(r+1)*g.cols])
	}

	return out
}

// abs returns the absolute value of an int.
func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
