package cover

import (
	"fmt"

	"github.com/katalvlaran/gridcover/grid"
)

// engines maps each Method to its implementation.
var engines = map[Method]func(*grid.Grid, int, *Options) (Result, error){
	MethodDirect: Direct,
	MethodExpand: Expand,
}

// Compute runs the engine selected by m on (g, radius).
// Fails with ErrUnknownMethod for a Method outside Methods(), otherwise
// returns the engine's own result and error.
func Compute(g *grid.Grid, radius int, m Method, opts *Options) (Result, error) {
	engine, ok := engines[m]
	if !ok {
		return Result{}, fmt.Errorf("%w: %s", ErrUnknownMethod, m)
	}

	return engine(g, radius, opts)
}

// Count returns the number of cells lying within radius of at least one
// seed, computed by the engine selected by m.
func Count(g *grid.Grid, radius int, m Method) (int, error) {
	res, err := Compute(g, radius, m, nil)
	if err != nil {
		return 0, err
	}

	return res.Count, nil
}

// Cells returns the covered coordinates in row-major order, computed by the
// engine selected by m. Both engines return identical slices for identical
// input.
func Cells(g *grid.Grid, radius int, m Method) ([]grid.Coord, error) {
	opts := Options{ReturnCells: true}
	res, err := Compute(g, radius, m, &opts)
	if err != nil {
		return nil, err
	}

	return res.Cells, nil
}
