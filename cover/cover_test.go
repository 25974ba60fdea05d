package cover_test

import (
	"math/rand"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/gridcover/cover"
	"github.com/katalvlaran/gridcover/grid"
)

//----------------------------------------------------------------------------//
// Dispatch Tests
//----------------------------------------------------------------------------//

// TestParseMethod covers the accepted spellings and the failure mode.
func TestParseMethod(t *testing.T) {
	cases := []struct {
		in   string
		want cover.Method
	}{
		{"direct", cover.MethodDirect},
		{"Direct", cover.MethodDirect},
		{" direct ", cover.MethodDirect},
		{"expand", cover.MethodExpand},
		{"expansion", cover.MethodExpand},
		{"EXPAND", cover.MethodExpand},
	}
	for _, tc := range cases {
		m, err := cover.ParseMethod(tc.in)
		assert.NoError(t, err, "ParseMethod(%q)", tc.in)
		assert.Equal(t, tc.want, m, "ParseMethod(%q)", tc.in)
	}

	_, err := cover.ParseMethod("bogus")
	assert.ErrorIs(t, err, cover.ErrUnknownMethod)
}

// TestMethodString pins the canonical names used by flags and reports.
func TestMethodString(t *testing.T) {
	assert.Equal(t, "direct", cover.MethodDirect.String())
	assert.Equal(t, "expand", cover.MethodExpand.String())
	assert.Equal(t, "method(9)", cover.Method(9).String())
}

// TestCompute_UnknownMethod verifies dispatch rejects values outside Methods().
func TestCompute_UnknownMethod(t *testing.T) {
	g := mustGrid(t, [][]int{{1}})
	_, err := cover.Compute(g, 1, cover.Method(42), nil)
	assert.ErrorIs(t, err, cover.ErrUnknownMethod)

	_, err = cover.Count(g, 1, cover.Method(-1))
	assert.ErrorIs(t, err, cover.ErrUnknownMethod)
}

// TestCountAndCells_Dispatch exercises the two convenience entry points over
// every method.
func TestCountAndCells_Dispatch(t *testing.T) {
	g := mustGrid(t, [][]int{
		{0, 1, 0},
		{0, 0, 0},
		{0, 0, 2},
	})
	wantCells := []grid.Coord{
		{Row: 0, Col: 0}, {Row: 0, Col: 1}, {Row: 0, Col: 2},
		{Row: 1, Col: 1}, {Row: 1, Col: 2},
		{Row: 2, Col: 1}, {Row: 2, Col: 2},
	}

	for _, m := range cover.Methods() {
		n, err := cover.Count(g, 1, m)
		require.NoError(t, err, "Count via %s", m)
		assert.Equal(t, 7, n, "Count via %s", m)

		cells, err := cover.Cells(g, 1, m)
		require.NoError(t, err, "Cells via %s", m)
		if diff := cmp.Diff(wantCells, cells); diff != "" {
			t.Errorf("Cells via %s mismatch (-want +got):\n%s", m, diff)
		}
	}
}

//----------------------------------------------------------------------------//
// Engine Agreement
//----------------------------------------------------------------------------//

// TestEnginesAgree_Known runs both engines over the demo scenarios with
// independently verified counts.
func TestEnginesAgree_Known(t *testing.T) {
	cases := []struct {
		name   string
		values [][]int
		radius int
		want   int
	}{
		{
			name: "SingleSeedMidGrid",
			values: [][]int{
				{0, 0, 0, 0, 0},
				{0, 0, 1, 0, 0},
				{0, 0, 0, 0, 0},
				{0, 0, 0, 0, 0},
				{0, 0, 0, 0, 0},
			},
			radius: 2,
			want:   12,
		},
		{
			name: "TwoSeedsOverlap",
			values: [][]int{
				{0, 0, 0, 0, 0},
				{0, 1, 0, 0, 0},
				{0, 0, 0, 0, 0},
				{0, 0, 0, 1, 0},
				{0, 0, 0, 0, 0},
			},
			radius: 2,
			want:   19,
		},
		{
			name: "BoundarySeedsFillGrid",
			values: [][]int{
				{1, 0, 0, 0},
				{0, 0, 0, 0},
				{0, 0, 0, 0},
				{0, 0, 0, 1},
			},
			radius: 3,
			want:   16,
		},
		{
			name: "FourCornersMissCenter",
			values: [][]int{
				{1, 0, 1},
				{0, 0, 0},
				{1, 0, 1},
			},
			radius: 1,
			want:   8,
		},
		{
			name: "DisjointCornerDiamonds",
			values: [][]int{
				{1, 0, 0, 0},
				{0, 0, 0, 0},
				{0, 0, 0, 0},
				{0, 0, 0, 1},
			},
			radius: 1,
			want:   6,
		},
		{
			name:   "SingleCellZeroRadius",
			values: [][]int{{5}},
			radius: 0,
			want:   1,
		},
		{
			name:   "SingleCellHugeRadius",
			values: [][]int{{5}},
			radius: 9,
			want:   1,
		},
		{
			name: "CenterSeedWholeGrid",
			values: [][]int{
				{0, 0, 0},
				{0, 1, 0},
				{0, 0, 0},
			},
			radius: 2,
			want:   9,
		},
		{
			name: "RadiusDominatesGrid",
			values: [][]int{
				{0, 1, 0},
				{0, 0, 0},
				{0, 0, 0},
			},
			radius: 10,
			want:   9,
		},
		{
			name: "NoSeeds",
			values: [][]int{
				{0, 0, 0},
				{0, 0, 0},
				{0, 0, 0},
			},
			radius: 2,
			want:   0,
		},
		{
			name: "AllPositiveZeroRadius",
			values: [][]int{
				{1, 2, 3},
				{4, 5, 6},
			},
			radius: 0,
			want:   6,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			g := mustGrid(t, tc.values)
			for _, m := range cover.Methods() {
				n, err := cover.Count(g, tc.radius, m)
				require.NoError(t, err, "%s", m)
				assert.Equal(t, tc.want, n, "%s count", m)
			}

			direct, err := cover.Cells(g, tc.radius, cover.MethodDirect)
			require.NoError(t, err)
			expand, err := cover.Cells(g, tc.radius, cover.MethodExpand)
			require.NoError(t, err)
			if diff := cmp.Diff(direct, expand); diff != "" {
				t.Errorf("cell sets diverge (-direct +expand):\n%s", diff)
			}
		})
	}
}

// TestEnginesAgree_Random cross-checks the engines over randomized grids,
// radii, and seed densities.
func TestEnginesAgree_Random(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	for i := 0; i < 60; i++ {
		rows, cols := 1+rng.Intn(8), 1+rng.Intn(8)
		values := make([][]int, rows)
		for r := range values {
			values[r] = make([]int, cols)
			for c := range values[r] {
				values[r][c] = rng.Intn(5) - 1 // -1..3: negatives, zeros, seeds
			}
		}
		radius := rng.Intn(10)
		g := mustGrid(t, values)

		nd, err := cover.Count(g, radius, cover.MethodDirect)
		require.NoError(t, err)
		ne, err := cover.Count(g, radius, cover.MethodExpand)
		require.NoError(t, err)
		require.Equal(t, nd, ne, "counts diverge on %dx%d radius=%d grid=%v", rows, cols, radius, values)

		cd, err := cover.Cells(g, radius, cover.MethodDirect)
		require.NoError(t, err)
		ce, err := cover.Cells(g, radius, cover.MethodExpand)
		require.NoError(t, err)
		if diff := cmp.Diff(cd, ce); diff != "" {
			t.Fatalf("cell sets diverge on %dx%d radius=%d (-direct +expand):\n%s", rows, cols, radius, diff)
		}
	}
}

// oracleCount recomputes coverage by brute force: a cell is covered when
// some seed lies within the radius.
func oracleCount(g *grid.Grid, radius int) int {
	seeds := g.Seeds()
	count := 0
	for r := 0; r < g.Rows(); r++ {
		for c := 0; c < g.Cols(); c++ {
			cell := grid.Coord{Row: r, Col: c}
			for _, s := range seeds {
				if cell.Manhattan(s) <= radius {
					count++
					break
				}
			}
		}
	}
	return count
}

// TestEnginesMatchOracle checks both engines against the brute-force
// definition of the neighborhood.
func TestEnginesMatchOracle(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	for i := 0; i < 40; i++ {
		rows, cols := 1+rng.Intn(6), 1+rng.Intn(6)
		values := make([][]int, rows)
		for r := range values {
			values[r] = make([]int, cols)
			for c := range values[r] {
				if rng.Float64() < 0.25 {
					values[r][c] = 1 + rng.Intn(4)
				}
			}
		}
		radius := rng.Intn(8)
		g := mustGrid(t, values)
		want := oracleCount(g, radius)

		for _, m := range cover.Methods() {
			n, err := cover.Count(g, radius, m)
			require.NoError(t, err)
			require.Equal(t, want, n, "%s disagrees with brute force on %dx%d radius=%d grid=%v", m, rows, cols, radius, values)
		}
	}
}

//----------------------------------------------------------------------------//
// Algebraic Properties
//----------------------------------------------------------------------------//

// TestMonotonicity verifies counts never shrink and cell sets only grow as
// the radius increases.
func TestMonotonicity(t *testing.T) {
	rng := rand.New(rand.NewSource(11))
	values := make([][]int, 8)
	for r := range values {
		values[r] = make([]int, 8)
		for c := range values[r] {
			if rng.Float64() < 0.15 {
				values[r][c] = 1
			}
		}
	}
	g := mustGrid(t, values)
	require.NotEmpty(t, g.Seeds(), "seeded grid expected")

	for _, m := range cover.Methods() {
		prevCount := -1
		var prev []grid.Coord
		for radius := 0; radius <= 10; radius++ {
			cells, err := cover.Cells(g, radius, m)
			require.NoError(t, err)
			assert.GreaterOrEqual(t, len(cells), prevCount, "%s count shrank at radius %d", m, radius)

			covered := make(map[grid.Coord]struct{}, len(cells))
			for _, cell := range cells {
				covered[cell] = struct{}{}
			}
			for _, cell := range prev {
				if _, ok := covered[cell]; !ok {
					t.Fatalf("%s lost cell %+v when radius grew to %d", m, cell, radius)
				}
			}
			prevCount = len(cells)
			prev = cells
		}
	}
}

// TestZeroSeedIdentity confirms that grids without positive cells cover
// nothing at any radius.
func TestZeroSeedIdentity(t *testing.T) {
	g := mustGrid(t, [][]int{
		{0, -1, 0},
		{-2, 0, -3},
	})
	for _, m := range cover.Methods() {
		for _, radius := range []int{0, 1, 5, 100} {
			n, err := cover.Count(g, radius, m)
			require.NoError(t, err)
			assert.Zero(t, n, "%s radius=%d", m, radius)
		}
	}
}

// TestZeroDistanceIdentity confirms count at radius 0 equals the seed count.
func TestZeroDistanceIdentity(t *testing.T) {
	rng := rand.New(rand.NewSource(23))
	values := make([][]int, 6)
	for r := range values {
		values[r] = make([]int, 9)
		for c := range values[r] {
			values[r][c] = rng.Intn(3) - 1
		}
	}
	g := mustGrid(t, values)

	for _, m := range cover.Methods() {
		n, err := cover.Count(g, 0, m)
		require.NoError(t, err)
		assert.Equal(t, len(g.Seeds()), n, "%s", m)
	}
}

// TestSaturation confirms coverage stops growing once the radius spans the
// grid, with no clamping anywhere in the engines.
func TestSaturation(t *testing.T) {
	g := mustGrid(t, [][]int{
		{1, 0, 0, 0},
		{0, 0, 0, 0},
		{0, 0, 0, 0},
		{0, 0, 0, 0},
		{0, 0, 0, 0},
		{0, 0, 0, 2},
	})
	sat := g.Rows() + g.Cols()

	for _, m := range cover.Methods() {
		at, err := cover.Count(g, sat, m)
		require.NoError(t, err)
		beyond, err := cover.Count(g, sat+7, m)
		require.NoError(t, err)
		assert.Equal(t, at, beyond, "%s grew past saturation", m)
		assert.Equal(t, g.Rows()*g.Cols(), at, "%s should cover the whole grid at saturation", m)
	}

	// The expansion engine is area-bound, so an extreme radius stays cheap.
	huge, err := cover.Count(g, 1<<30, cover.MethodExpand)
	require.NoError(t, err)
	assert.Equal(t, g.Rows()*g.Cols(), huge)
}
