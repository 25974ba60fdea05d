package harness

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/katalvlaran/gridcover/cover"
	"github.com/katalvlaran/gridcover/grid"
)

// Sweep times every selected engine on the same board for each radius in
// 0..maxRadius and records the agreed covered-cell count per radius. Any
// disagreement aborts the sweep with ErrDisagreement.
func Sweep(name string, values [][]int, maxRadius int, opts Opts) (*SweepResult, error) {
	if maxRadius < 0 {
		return nil, fmt.Errorf("harness: sweep max radius %d is negative", maxRadius)
	}
	if opts.Runs < 1 {
		opts.Runs = DefaultOpts().Runs
	}
	if len(opts.Methods) == 0 {
		opts.Methods = cover.Methods()
	}

	g, err := grid.New(values)
	if err != nil {
		return nil, fmt.Errorf("harness: sweep %q: %w", name, err)
	}

	sw := &SweepResult{
		RunID:     uuid.New().String(),
		StartedAt: time.Now(),
		Name:      name,
		Rows:      g.Rows(),
		Cols:      g.Cols(),
		Seeds:     len(g.Seeds()),
		Runs:      opts.Runs,
	}
	for _, m := range opts.Methods {
		sw.Series = append(sw.Series, SweepSeries{
			Method: m.String(),
			MeanNs: make([]float64, 0, maxRadius+1),
		})
	}

	for radius := 0; radius <= maxRadius; radius++ {
		agreed := -1
		for i, m := range opts.Methods {
			res, stats, err := timeEngine(g, radius, m, opts.Runs)
			if err != nil {
				return nil, fmt.Errorf("harness: sweep %q: radius %d: %s: %w", name, radius, m, err)
			}
			if agreed == -1 {
				agreed = res.Count
			} else if res.Count != agreed {
				return nil, fmt.Errorf("%w: sweep %q: radius %d: %s returned %d, first engine returned %d",
					ErrDisagreement, name, radius, m, res.Count, agreed)
			}
			sw.Series[i].MeanNs = append(sw.Series[i].MeanNs, stats.MeanNs)
		}
		sw.Radii = append(sw.Radii, radius)
		sw.Counts = append(sw.Counts, agreed)
	}

	return sw, nil
}
