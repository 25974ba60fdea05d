// Package scenario holds the named demonstration boards shared by the
// gridcover CLI, the comparison harness, and the coverlab gallery.
//
// Each Scenario is a small integer board with a default radius. A subset
// carries an independently verified covered-cell count; the harness treats
// those as pass/fail checks and the rest as agreement-only runs.
package scenario

import "fmt"

// Scenario is one named demonstration board.
type Scenario struct {
	// Name is the stable lookup key used by -scenario and ByName.
	Name string

	// Title is the human-facing heading shown in reports and the gallery.
	Title string

	// Description is a one-line summary of what the board demonstrates.
	Description string

	// Values is the board itself: values > 0 are seeds.
	Values [][]int

	// Radius is the default neighborhood radius for this board.
	Radius int

	// Expected is the verified covered-cell count for (Values, Radius).
	// It is meaningful only when HasExpected is true.
	Expected int

	// HasExpected reports whether Expected carries a verified count.
	HasExpected bool
}

// Rows returns the row count of the board.
func (s Scenario) Rows() int { return len(s.Values) }

// Cols returns the column count of the board (0 for an empty board).
func (s Scenario) Cols() int {
	if len(s.Values) == 0 {
		return 0
	}
	return len(s.Values[0])
}

// registry lists every built-in scenario in display order.
// The first seven pin expected counts; the gallery boards below them are
// agreement-only.
var registry = []Scenario{
	{
		Name:        "single-seed",
		Title:       "Single Positive Cell (N=2)",
		Description: "one centered seed, diamond fully inside the board",
		Values: [][]int{
			{0, 0, 0, 0, 0},
			{0, 0, 1, 0, 0},
			{0, 0, 0, 0, 0},
			{0, 0, 0, 0, 0},
			{0, 0, 0, 0, 0},
		},
		Radius:      2,
		Expected:    12,
		HasExpected: true,
	},
	{
		Name:        "overlap",
		Title:       "Two Positive Cells (N=2)",
		Description: "two seeds whose diamonds overlap in the middle",
		Values: [][]int{
			{0, 0, 0, 0, 0},
			{0, 1, 0, 0, 0},
			{0, 0, 0, 0, 0},
			{0, 0, 0, 2, 0},
			{0, 0, 0, 0, 0},
		},
		Radius:      2,
		Expected:    19,
		HasExpected: true,
	},
	{
		Name:        "boundary",
		Title:       "Boundary Cells (N=3)",
		Description: "opposite corners whose diamonds clip at every edge",
		Values: [][]int{
			{1, 0, 0, 0},
			{0, 0, 0, 0},
			{0, 0, 0, 0},
			{0, 0, 0, 2},
		},
		Radius:      3,
		Expected:    16,
		HasExpected: true,
	},
	{
		Name:        "corners",
		Title:       "Multiple Positive Cells (N=1)",
		Description: "four corner seeds at radius 1, center stays uncovered",
		Values: [][]int{
			{1, 0, 2},
			{0, 0, 0},
			{3, 0, 4},
		},
		Radius:      1,
		Expected:    8,
		HasExpected: true,
	},
	{
		Name:        "single-cell",
		Title:       "Single Cell (N=0)",
		Description: "1x1 board, radius 0 covers exactly the seed",
		Values:      [][]int{{5}},
		Radius:      0,
		Expected:    1,
		HasExpected: true,
	},
	{
		Name:        "large-radius",
		Title:       "Large N Value (N=10)",
		Description: "radius far beyond the board, coverage saturates",
		Values: [][]int{
			{0, 1, 0},
			{0, 0, 0},
			{0, 0, 0},
		},
		Radius:      10,
		Expected:    9,
		HasExpected: true,
	},
	{
		Name:        "no-seeds",
		Title:       "No Positive Cells (N=2)",
		Description: "seedless board, coverage is empty at any radius",
		Values: [][]int{
			{0, 0, 0},
			{0, 0, 0},
			{0, 0, 0},
		},
		Radius:      2,
		Expected:    0,
		HasExpected: true,
	},
	{
		Name:        "edge-cases",
		Title:       "Edge Cases (N=3)",
		Description: "corner seeds on a 5x5 board, only the center escapes",
		Values: [][]int{
			{1, 0, 0, 0, 2},
			{0, 0, 0, 0, 0},
			{0, 0, 0, 0, 0},
			{0, 0, 0, 0, 0},
			{3, 0, 0, 0, 4},
		},
		Radius:      3,
		Expected:    24,
		HasExpected: true,
	},
	{
		Name:        "complex",
		Title:       "Complex Pattern (N=2)",
		Description: "scattered seeds on a 7x7 board with partial overlaps",
		Values: [][]int{
			{0, 0, 1, 0, 0, 0, 0},
			{0, 0, 0, 0, 0, 0, 0},
			{2, 0, 0, 0, 0, 0, 3},
			{0, 0, 0, 0, 0, 0, 0},
			{0, 0, 0, 4, 0, 0, 0},
			{0, 0, 0, 0, 0, 0, 0},
			{0, 0, 0, 0, 0, 0, 0},
		},
		Radius:      2,
		Expected:    37,
		HasExpected: true,
	},
	{
		Name:        "dense",
		Title:       "Dense Grid (N=1)",
		Description: "many close seeds, most of the board covered at radius 1",
		Values: [][]int{
			{1, 0, 2, 0, 1},
			{0, 0, 0, 0, 0},
			{3, 0, 0, 0, 4},
			{0, 0, 0, 0, 0},
			{2, 0, 1, 0, 3},
		},
		Radius:      1,
		Expected:    20,
		HasExpected: true,
	},
	{
		Name:        "large-scale",
		Title:       "Large Scale (N=4)",
		Description: "10x10 board with five spread seeds at a wide radius",
		Values: [][]int{
			{0, 0, 0, 0, 0, 0, 0, 0, 0, 0},
			{0, 1, 0, 0, 0, 0, 0, 0, 2, 0},
			{0, 0, 0, 0, 0, 0, 0, 0, 0, 0},
			{0, 0, 0, 0, 3, 0, 0, 0, 0, 0},
			{0, 0, 0, 0, 0, 0, 0, 0, 0, 0},
			{0, 0, 0, 0, 0, 0, 4, 0, 0, 0},
			{0, 0, 0, 0, 0, 0, 0, 0, 0, 0},
			{0, 5, 0, 0, 0, 0, 0, 0, 0, 0},
			{0, 0, 0, 0, 0, 0, 0, 0, 0, 0},
			{0, 0, 0, 0, 0, 0, 0, 0, 0, 0},
		},
		Radius: 4,
	},
}

// All returns every built-in scenario in display order.
// Each call returns fresh deep copies, so callers may edit boards freely.
func All() []Scenario {
	out := make([]Scenario, len(registry))
	for i, s := range registry {
		out[i] = clone(s)
	}
	return out
}

// Names returns the lookup keys of all built-in scenarios in display order.
func Names() []string {
	names := make([]string, len(registry))
	for i, s := range registry {
		names[i] = s.Name
	}
	return names
}

// ByName returns a deep copy of the scenario with the given Name.
func ByName(name string) (Scenario, error) {
	for _, s := range registry {
		if s.Name == name {
			return clone(s), nil
		}
	}
	return Scenario{}, fmt.Errorf("scenario: unknown name %q", name)
}

// clone deep-copies a scenario so registry boards stay pristine.
func clone(s Scenario) Scenario {
	values := make([][]int, len(s.Values))
	for i, row := range s.Values {
		values[i] = append([]int(nil), row...)
	}
	s.Values = values
	return s
}
