package grid_test

import (
	"fmt"

	"github.com/katalvlaran/gridcover/grid"
)

////////////////////////////////////////////////////////////////////////////////
// Example: New + Seeds
////////////////////////////////////////////////////////////////////////////////

// ExampleGrid_Seeds demonstrates seed discovery on a small board.
// Scenario:
//
//   - Grid values: 0 = empty, positive = seed (value is free-form payload)
//   - Seeds are reported row-major: row by row, left to right.
//
// Complexity: O(R×C), Memory: O(S)
func ExampleGrid_Seeds() {
	g, _ := grid.New([][]int{
		{0, 2, 0},
		{0, 0, 0},
		{1, 0, 3},
	})

	for _, s := range g.Seeds() {
		v, _ := g.ValueAt(s.Row, s.Col)
		fmt.Printf("(%d,%d)=%d\n", s.Row, s.Col, v)
	}

	// Output:
	// (0,1)=2
	// (2,0)=1
	// (2,2)=3
}

////////////////////////////////////////////////////////////////////////////////
// Example: validation
////////////////////////////////////////////////////////////////////////////////

// ExampleNew_ragged shows the construction-time rejection of ragged input.
func ExampleNew_ragged() {
	_, err := grid.New([][]int{
		{1, 2, 3},
		{4, 5},
	})
	fmt.Println(err)

	// Output:
	// grid: all rows must have the same length
}
