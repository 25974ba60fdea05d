package harness

import (
	"errors"
	"time"

	"github.com/katalvlaran/gridcover/cover"
)

// ErrDisagreement reports that the engines returned different coverage for
// the same board and radius. Sweep treats this as fatal because a chart of
// disagreeing engines is meaningless.
var ErrDisagreement = errors.New("harness: engines disagree")

// Opts tunes a harness run.
type Opts struct {
	// Runs is the number of timed repetitions per engine (min 1).
	Runs int

	// Methods selects the engines to compare; empty means all of them.
	Methods []cover.Method
}

// DefaultOpts returns the settings used by the CLI when no flags are given.
func DefaultOpts() Opts {
	return Opts{
		Runs:    5,
		Methods: cover.Methods(),
	}
}

// EngineStats summarizes repeated timed runs of one engine on one board.
// Timed repetitions measure the count-only path; the cell set is captured
// once per engine for the agreement check.
type EngineStats struct {
	Method   string  `json:"method"`
	Runs     int     `json:"runs"`
	Count    int     `json:"count"`
	MeanNs   float64 `json:"mean_ns"`
	StdDevNs float64 `json:"stddev_ns"`
	MinNs    int64   `json:"min_ns"`
	MaxNs    int64   `json:"max_ns"`
}

// ScenarioResult is the outcome of one scenario across all engines.
type ScenarioResult struct {
	Name        string        `json:"name"`
	Title       string        `json:"title"`
	Rows        int           `json:"rows"`
	Cols        int           `json:"cols"`
	Seeds       int           `json:"seeds"`
	Radius      int           `json:"radius"`
	Expected    int           `json:"expected,omitempty"`
	HasExpected bool          `json:"has_expected"`
	Agree       bool          `json:"agree"`
	Pass        bool          `json:"pass"`
	Engines     []EngineStats `json:"engines"`
}

// Comparison is a full harness run over a set of scenarios.
type Comparison struct {
	RunID     string           `json:"run_id"`
	StartedAt time.Time        `json:"started_at"`
	ElapsedMs int64            `json:"elapsed_ms"`
	Runs      int              `json:"runs"`
	Scenarios []ScenarioResult `json:"scenarios"`
	Passed    int              `json:"passed"`
	Failed    int              `json:"failed"`
}

// SweepSeries is one engine's mean timings across a radius sweep.
// MeanNs is indexed by radius, parallel to SweepResult.Radii.
type SweepSeries struct {
	Method string    `json:"method"`
	MeanNs []float64 `json:"mean_ns"`
}

// SweepResult holds engine timings and agreed counts for radii 0..max on
// a fixed board.
type SweepResult struct {
	RunID     string        `json:"run_id"`
	StartedAt time.Time     `json:"started_at"`
	Name      string        `json:"name"`
	Rows      int           `json:"rows"`
	Cols      int           `json:"cols"`
	Seeds     int           `json:"seeds"`
	Runs      int           `json:"runs"`
	Radii     []int         `json:"radii"`
	Counts    []int         `json:"counts"`
	Series    []SweepSeries `json:"series"`
}
