package app

import (
	"flag"
	"testing"
)

func TestNewConfigDefaults(t *testing.T) {
	cfg := NewConfig()
	if cfg.CellSize <= 0 {
		t.Errorf("default cell size = %d, want > 0", cfg.CellSize)
	}
	if cfg.Method != "direct" {
		t.Errorf("default method = %q, want direct", cfg.Method)
	}
	if cfg.Scheme != "default" {
		t.Errorf("default scheme = %q, want default", cfg.Scheme)
	}
	if !cfg.GridLines {
		t.Error("grid lines should default on")
	}
}

func TestConfigBind(t *testing.T) {
	cfg := NewConfig()
	fs := flag.NewFlagSet("coverlab", flag.ContinueOnError)
	cfg.Bind(fs)

	err := fs.Parse([]string{
		"-scenario", "dense",
		"-cell", "32",
		"-method", "expand",
		"-scheme", "blue",
		"-lines=false",
		"-seed", "7",
	})
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}

	if cfg.Scenario != "dense" || cfg.CellSize != 32 || cfg.Method != "expand" {
		t.Errorf("unexpected config after parse: %+v", cfg)
	}
	if cfg.Scheme != "blue" || cfg.GridLines || cfg.Seed != 7 {
		t.Errorf("unexpected config after parse: %+v", cfg)
	}
}
