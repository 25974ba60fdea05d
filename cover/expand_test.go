package cover_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/katalvlaran/gridcover/cover"
	"github.com/katalvlaran/gridcover/grid"
)

// TestExpand_NilGrid verifies the nil-grid guard.
func TestExpand_NilGrid(t *testing.T) {
	_, err := cover.Expand(nil, 1, nil)
	assert.ErrorIs(t, err, cover.ErrNilGrid, "nil grid must error before any work")
}

// TestExpand_NegativeRadius verifies that a negative radius fails.
func TestExpand_NegativeRadius(t *testing.T) {
	g := mustGrid(t, [][]int{{1}})
	_, err := cover.Expand(g, -3, nil)
	assert.ErrorIs(t, err, cover.ErrNegativeRadius, "radius=-3 must error")
}

// TestExpand_BoundarySeeds checks two corner seeds whose expansions meet
// exactly on the anti-diagonal.
func TestExpand_BoundarySeeds(t *testing.T) {
	g := mustGrid(t, [][]int{
		{1, 0, 0, 0},
		{0, 0, 0, 0},
		{0, 0, 0, 0},
		{0, 0, 0, 1},
	})

	res, err := cover.Expand(g, 3, nil)
	assert.NoError(t, err)
	assert.Equal(t, 16, res.Count, "radius 3 from both corners reaches every cell")
}

// TestExpand_FourCorners checks that the center cell stays uncovered at
// radius 1.
func TestExpand_FourCorners(t *testing.T) {
	g := mustGrid(t, [][]int{
		{1, 0, 1},
		{0, 0, 0},
		{1, 0, 1},
	})
	opts := cover.Options{ReturnCells: true}

	res, err := cover.Expand(g, 1, &opts)
	assert.NoError(t, err)
	assert.Equal(t, 8, res.Count, "every cell except the center")
	assert.NotContains(t, res.Cells, grid.Coord{Row: 1, Col: 1}, "center is at distance 2 from every seed")
}

// TestExpand_LevelBound confirms the level bound stops a frontier that
// could still grow.
func TestExpand_LevelBound(t *testing.T) {
	g := mustGrid(t, [][]int{
		{0, 0, 0, 0, 0},
		{0, 0, 0, 0, 0},
		{0, 0, 3, 0, 0},
		{0, 0, 0, 0, 0},
		{0, 0, 0, 0, 0},
	})
	opts := cover.Options{ReturnCells: true}

	res, err := cover.Expand(g, 1, &opts)
	assert.NoError(t, err)
	assert.Equal(t, 5, res.Count, "plus-shape around the center seed")
	assert.Equal(t, []grid.Coord{
		{Row: 1, Col: 2},
		{Row: 2, Col: 1}, {Row: 2, Col: 2}, {Row: 2, Col: 3},
		{Row: 3, Col: 2},
	}, res.Cells)
}

// TestExpand_FrontierExhaustion confirms the frontier empties before the
// level bound when the radius dominates the grid.
func TestExpand_FrontierExhaustion(t *testing.T) {
	g := mustGrid(t, [][]int{
		{0, 1, 0},
		{0, 0, 0},
		{0, 0, 0},
	})

	res, err := cover.Expand(g, 10, nil)
	assert.NoError(t, err)
	assert.Equal(t, 9, res.Count, "coverage saturates at the grid area")
}

// TestExpand_RadiusZero confirms that seeds cover exactly themselves.
func TestExpand_RadiusZero(t *testing.T) {
	g := mustGrid(t, [][]int{
		{0, 2},
		{0, 0},
		{1, 0},
	})
	opts := cover.Options{ReturnCells: true}

	res, err := cover.Expand(g, 0, &opts)
	assert.NoError(t, err)
	assert.Equal(t, 2, res.Count)
	assert.Equal(t, []grid.Coord{{Row: 0, Col: 1}, {Row: 2, Col: 0}}, res.Cells)
}

// TestExpand_EmptyAndSeedless covers the degenerate inputs.
func TestExpand_EmptyAndSeedless(t *testing.T) {
	cases := []struct {
		name   string
		values [][]int
	}{
		{"NoRows", [][]int{}},
		{"NoCols", [][]int{{}, {}}},
		{"AllZero", [][]int{{0, 0, 0}}},
		{"AllNegative", [][]int{{-5}, {-2}}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			g := mustGrid(t, tc.values)
			res, err := cover.Expand(g, 4, nil)
			assert.NoError(t, err, "degenerate inputs are valid")
			assert.Equal(t, 0, res.Count)
			assert.Nil(t, res.Cells)
		})
	}
}
