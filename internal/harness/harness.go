// Package harness runs the coverage engines side by side, times them, and
// checks that they agree cell for cell. It backs the gridcover CLI and the
// HTML/PNG reports.
package harness

import (
	"fmt"
	"io"
	"math"
	"time"

	"github.com/google/uuid"
	"gonum.org/v1/gonum/stat"

	"github.com/katalvlaran/gridcover/cover"
	"github.com/katalvlaran/gridcover/grid"
	"github.com/katalvlaran/gridcover/internal/scenario"
)

// Run executes every scenario with every selected engine and returns the
// collected timings and agreement verdicts. Engine errors abort the run;
// disagreements and failed expectations are recorded, not fatal.
func Run(scens []scenario.Scenario, opts Opts) (*Comparison, error) {
	if opts.Runs < 1 {
		opts.Runs = DefaultOpts().Runs
	}
	if len(opts.Methods) == 0 {
		opts.Methods = cover.Methods()
	}

	start := time.Now()
	comp := &Comparison{
		RunID:     uuid.New().String(),
		StartedAt: start,
		Runs:      opts.Runs,
	}

	for _, s := range scens {
		g, err := grid.New(s.Values)
		if err != nil {
			return nil, fmt.Errorf("harness: scenario %q: %w", s.Name, err)
		}

		sr := ScenarioResult{
			Name:        s.Name,
			Title:       s.Title,
			Rows:        g.Rows(),
			Cols:        g.Cols(),
			Seeds:       len(g.Seeds()),
			Radius:      s.Radius,
			Expected:    s.Expected,
			HasExpected: s.HasExpected,
			Agree:       true,
		}

		var first cover.Result
		for i, m := range opts.Methods {
			res, stats, err := timeEngine(g, s.Radius, m, opts.Runs)
			if err != nil {
				return nil, fmt.Errorf("harness: scenario %q: %s: %w", s.Name, m, err)
			}
			if i == 0 {
				first = res
			} else if res.Count != first.Count || !cellsEqual(res.Cells, first.Cells) {
				sr.Agree = false
			}
			sr.Engines = append(sr.Engines, stats)
		}

		sr.Pass = sr.Agree && (!s.HasExpected || first.Count == s.Expected)
		if sr.Pass {
			comp.Passed++
		} else {
			comp.Failed++
		}
		comp.Scenarios = append(comp.Scenarios, sr)
	}

	comp.ElapsedMs = time.Since(start).Milliseconds()
	return comp, nil
}

// timeEngine computes coverage once with cells for the agreement check,
// then times runs count-only repetitions.
func timeEngine(g *grid.Grid, radius int, m cover.Method, runs int) (cover.Result, EngineStats, error) {
	res, err := cover.Compute(g, radius, m, &cover.Options{ReturnCells: true})
	if err != nil {
		return cover.Result{}, EngineStats{}, err
	}

	ns := make([]float64, 0, runs)
	minNs := int64(math.MaxInt64)
	maxNs := int64(0)
	for i := 0; i < runs; i++ {
		begin := time.Now()
		if _, err := cover.Count(g, radius, m); err != nil {
			return cover.Result{}, EngineStats{}, err
		}
		d := time.Since(begin).Nanoseconds()
		ns = append(ns, float64(d))
		if d < minNs {
			minNs = d
		}
		if d > maxNs {
			maxNs = d
		}
	}

	stats := EngineStats{
		Method: m.String(),
		Runs:   runs,
		Count:  res.Count,
		MeanNs: stat.Mean(ns, nil),
		MinNs:  minNs,
		MaxNs:  maxNs,
	}
	if runs >= 2 {
		stats.StdDevNs = stat.StdDev(ns, nil)
	}
	return res, stats, nil
}

func cellsEqual(a, b []grid.Coord) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

// Fprint writes a human-readable report of a comparison run to w.
func Fprint(w io.Writer, comp *Comparison) {
	fmt.Fprintln(w, "=== Neighborhood Engine Comparison ===")
	fmt.Fprintf(w, "Run ID:    %s\n", comp.RunID)
	fmt.Fprintf(w, "Started:   %s\n", comp.StartedAt.Format(time.RFC3339))
	fmt.Fprintf(w, "Scenarios: %d | Runs per engine: %d\n", len(comp.Scenarios), comp.Runs)

	for _, sr := range comp.Scenarios {
		fmt.Fprintf(w, "\n--- %s ---\n", sr.Title)
		fmt.Fprintf(w, "Board: %dx%d | Seeds: %d | N: %d\n", sr.Rows, sr.Cols, sr.Seeds, sr.Radius)
		for _, st := range sr.Engines {
			fmt.Fprintf(w, "  %-7s count=%-6d mean=%-10v stddev=%-10v min=%v max=%v\n",
				st.Method, st.Count,
				dur(st.MeanNs), dur(st.StdDevNs),
				time.Duration(st.MinNs), time.Duration(st.MaxNs))
		}
		fmt.Fprintf(w, "RESULT: %d cells in neighborhood\n", resultCount(sr))
		switch {
		case !sr.Agree:
			fmt.Fprintln(w, "Agreement: MISMATCH | FAIL")
		case sr.HasExpected:
			fmt.Fprintf(w, "Expected: %d | Got: %d | %s\n",
				sr.Expected, resultCount(sr), verdict(sr.Pass))
		default:
			fmt.Fprintln(w, "Agreement: OK | PASS")
		}
	}

	fmt.Fprintln(w, "\n--- Summary ---")
	fmt.Fprintf(w, "Passed: %d/%d\n", comp.Passed, len(comp.Scenarios))
	fmt.Fprintf(w, "Total time: %dms\n", comp.ElapsedMs)
}

func resultCount(sr ScenarioResult) int {
	if len(sr.Engines) == 0 {
		return 0
	}
	return sr.Engines[0].Count
}

func verdict(pass bool) string {
	if pass {
		return "PASS"
	}
	return "FAIL"
}

func dur(ns float64) time.Duration {
	if math.IsNaN(ns) {
		return 0
	}
	return time.Duration(int64(ns))
}
