package cover

import (
	"errors"
	"fmt"
	"strings"

	"github.com/katalvlaran/gridcover/grid"
)

var (
	// ErrNilGrid indicates a nil *grid.Grid input.
	ErrNilGrid = errors.New("cover: grid must not be nil")
	// ErrNegativeRadius indicates a radius below zero.
	ErrNegativeRadius = errors.New("cover: radius must be non-negative")
	// ErrUnknownMethod indicates an unrecognized method name or value.
	ErrUnknownMethod = errors.New("cover: unknown method")
)

// Method selects which engine computes the neighborhood.
type Method int

const (
	// MethodDirect enumerates each seed's Manhattan diamond and deduplicates.
	MethodDirect Method = iota
	// MethodExpand runs a multi-source breadth-first expansion bounded by the radius.
	MethodExpand
)

// String returns the canonical lowercase name of the method.
func (m Method) String() string {
	switch m {
	case MethodDirect:
		return "direct"
	case MethodExpand:
		return "expand"
	default:
		return fmt.Sprintf("method(%d)", int(m))
	}
}

// ParseMethod maps a name to its Method value.
// Accepts "direct", "expand", and "expansion" (case-insensitive);
// anything else fails with ErrUnknownMethod.
func ParseMethod(s string) (Method, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "direct":
		return MethodDirect, nil
	case "expand", "expansion":
		return MethodExpand, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownMethod, s)
	}
}

// Methods lists every available engine, in dispatch order.
func Methods() []Method {
	return []Method{MethodDirect, MethodExpand}
}

// Options configures a coverage computation.
//
// Fields:
//   - ReturnCells — if true, the engine materializes the covered coordinates
//     (row-major) in Result.Cells. Count alone is cheaper: no output slice is
//     allocated and the direct engine skips its final sort.
//
// Example:
//
//	opts := cover.DefaultOptions()
//	opts.ReturnCells = true
//	res, err := cover.Direct(g, 2, &opts)
type Options struct {
	ReturnCells bool
}

// DefaultOptions returns Options with ReturnCells=false (count only).
func DefaultOptions() Options {
	return Options{ReturnCells: false}
}

// Result carries the outcome of a coverage computation.
type Result struct {
	// Count is the number of distinct covered cells.
	Count int
	// Cells holds the covered coordinates in row-major order.
	// Populated only under Options.ReturnCells; nil otherwise.
	Cells []grid.Coord
}
