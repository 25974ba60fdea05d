// Package main provides the gridcover command. It runs the neighborhood
// coverage engines over built-in scenarios or board files, checks that
// they agree, and exports the results as JSON, HTML, or PNG reports.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/katalvlaran/gridcover/cover"
	"github.com/katalvlaran/gridcover/internal/gridio"
	"github.com/katalvlaran/gridcover/internal/harness"
	"github.com/katalvlaran/gridcover/internal/report"
	"github.com/katalvlaran/gridcover/internal/scenario"
)

const (
	// radiusUnset means "use the scenario's default radius".
	radiusUnset = -1

	// defaultSweepRadius is used when -html or -png is given without -sweep.
	defaultSweepRadius = 12

	// defaultFileRadius is used for -grid boards when -n is not given.
	defaultFileRadius = 2
)

// Config holds the command line settings for one invocation.
type Config struct {
	Scenario string
	GridFile string
	Radius   int
	Method   string
	Runs     int
	Sweep    int
	JSONOut  string
	HTMLOut  string
	PNGOut   string
	Quiet    bool
}

func main() {
	cfg := parseFlags()

	scens, err := selectScenarios(cfg)
	if err != nil {
		log.Fatalf("Board selection failed: %v", err)
	}

	methods, err := selectMethods(cfg.Method)
	if err != nil {
		log.Fatalf("Bad -method: %v", err)
	}

	opts := harness.Opts{Runs: cfg.Runs, Methods: methods}
	comp, err := harness.Run(scens, opts)
	if err != nil {
		log.Fatalf("Comparison failed: %v", err)
	}

	if !cfg.Quiet {
		harness.Fprint(os.Stdout, comp)
	}

	if cfg.JSONOut != "" {
		if err := harness.ExportJSON(comp, cfg.JSONOut); err != nil {
			log.Fatalf("JSON export failed: %v", err)
		}
		log.Printf("Results exported to: %s", cfg.JSONOut)
	}

	if cfg.Sweep > 0 || cfg.HTMLOut != "" || cfg.PNGOut != "" {
		runSweep(cfg, scens[0], opts)
	}

	if comp.Failed > 0 {
		log.Printf("%d of %d scenarios failed", comp.Failed, len(comp.Scenarios))
		os.Exit(1)
	}
}

func parseFlags() Config {
	cfg := Config{}

	flag.StringVar(&cfg.Scenario, "scenario", "all", "Scenario name, or 'all' for every built-in board")
	flag.StringVar(&cfg.GridFile, "grid", "", "Path to a board file (overrides -scenario)")
	flag.IntVar(&cfg.Radius, "n", radiusUnset, "Neighborhood radius (-1 = scenario default)")
	flag.StringVar(&cfg.Method, "method", "both", "Engine to run: direct, expand, or both")
	flag.IntVar(&cfg.Runs, "runs", 5, "Timed repetitions per engine")
	flag.IntVar(&cfg.Sweep, "sweep", 0, "Sweep radii 0..N on the first board (0 = off)")
	flag.StringVar(&cfg.JSONOut, "json", "", "Write comparison results to this JSON file")
	flag.StringVar(&cfg.HTMLOut, "html", "", "Write sweep charts to this HTML file")
	flag.StringVar(&cfg.PNGOut, "png", "", "Write sweep timing chart to this PNG file")
	flag.BoolVar(&cfg.Quiet, "q", false, "Suppress the per-scenario report")

	flag.Parse()
	return cfg
}

// selectScenarios resolves -grid / -scenario / -n into the boards to run.
// An explicit -n overrides the scenario default and drops its pinned
// expected count, since that count was verified for the default radius.
func selectScenarios(cfg Config) ([]scenario.Scenario, error) {
	if cfg.GridFile != "" {
		values, err := gridio.Load(cfg.GridFile)
		if err != nil {
			return nil, err
		}
		radius := cfg.Radius
		if radius == radiusUnset {
			radius = defaultFileRadius
		}
		name := strings.TrimSuffix(filepath.Base(cfg.GridFile), filepath.Ext(cfg.GridFile))
		return []scenario.Scenario{{
			Name:        name,
			Title:       fmt.Sprintf("%s (N=%d)", cfg.GridFile, radius),
			Description: "board loaded from file",
			Values:      values,
			Radius:      radius,
		}}, nil
	}

	if cfg.Scenario == "all" {
		scens := scenario.All()
		if cfg.Radius != radiusUnset {
			for i := range scens {
				scens[i].Radius = cfg.Radius
				scens[i].HasExpected = false
			}
		}
		return scens, nil
	}

	s, err := scenario.ByName(cfg.Scenario)
	if err != nil {
		return nil, fmt.Errorf("%w (known: %s)", err, strings.Join(scenario.Names(), ", "))
	}
	if cfg.Radius != radiusUnset {
		s.Radius = cfg.Radius
		s.HasExpected = false
	}
	return []scenario.Scenario{s}, nil
}

func selectMethods(name string) ([]cover.Method, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "both", "all":
		return cover.Methods(), nil
	}
	m, err := cover.ParseMethod(name)
	if err != nil {
		return nil, err
	}
	return []cover.Method{m}, nil
}

// runSweep times radii 0..max on one board and writes whichever chart
// outputs were requested.
func runSweep(cfg Config, s scenario.Scenario, opts harness.Opts) {
	maxRadius := cfg.Sweep
	if maxRadius <= 0 {
		maxRadius = defaultSweepRadius
	}

	sw, err := harness.Sweep(s.Name, s.Values, maxRadius, opts)
	if err != nil {
		log.Fatalf("Sweep failed: %v", err)
	}

	if !cfg.Quiet {
		fmt.Printf("\n--- Radius Sweep: %s (0..%d) ---\n", s.Name, maxRadius)
		for i, r := range sw.Radii {
			fmt.Printf("N=%-3d %d cells\n", r, sw.Counts[i])
		}
	}

	if cfg.HTMLOut != "" {
		f, err := os.Create(cfg.HTMLOut)
		if err != nil {
			log.Fatalf("HTML export failed: %v", err)
		}
		if err := report.WriteHTML(f, sw); err != nil {
			f.Close()
			log.Fatalf("HTML export failed: %v", err)
		}
		if err := f.Close(); err != nil {
			log.Fatalf("HTML export failed: %v", err)
		}
		log.Printf("Sweep charts written to: %s", cfg.HTMLOut)
	}

	if cfg.PNGOut != "" {
		if err := report.WritePNG(cfg.PNGOut, sw); err != nil {
			log.Fatalf("PNG export failed: %v", err)
		}
		log.Printf("Sweep chart written to: %s", cfg.PNGOut)
	}
}
