//go:build ebiten

// Package main provides coverlab, an interactive viewer for the coverage
// engines: walk the scenario gallery, edit boards by clicking, and watch
// the neighborhood change as the radius and engine change.
package main

import (
	"errors"
	"flag"
	"log"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/katalvlaran/gridcover/internal/app"
)

func main() {
	cfg := app.NewConfig()
	cfg.Bind(flag.CommandLine)
	flag.Parse()

	game, err := app.New(cfg)
	if err != nil {
		log.Fatalf("coverlab: %v", err)
	}

	w, h := game.ScreenSize()
	ebiten.SetWindowTitle("coverlab")
	ebiten.SetWindowSize(w, h)

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}
}
