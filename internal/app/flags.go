// Package app wires the coverage engines to an interactive ebiten viewer.
// Only Config is available without the 'ebiten' build tag.
package app

import "flag"

// Config represents the command-line parameters for the viewer.
type Config struct {
	Scenario  string
	CellSize  int
	Method    string
	Scheme    string
	GridLines bool
	Seed      int64
}

// NewConfig returns a Config populated with sensible defaults.
func NewConfig() *Config {
	return &Config{
		Scenario:  "",
		CellSize:  48,
		Method:    "direct",
		Scheme:    "default",
		GridLines: true,
		Seed:      42,
	}
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.StringVar(&c.Scenario, "scenario", c.Scenario, "starting board (empty = first in the gallery)")
	fs.IntVar(&c.CellSize, "cell", c.CellSize, "cell size in pixels")
	fs.StringVar(&c.Method, "method", c.Method, "starting engine: direct or expand")
	fs.StringVar(&c.Scheme, "scheme", c.Scheme, "starting color scheme")
	fs.BoolVar(&c.GridLines, "lines", c.GridLines, "draw cell borders")
	fs.Int64Var(&c.Seed, "seed", c.Seed, "seed for random boards")
}
