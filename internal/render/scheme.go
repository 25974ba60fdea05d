// Package render turns board display states into pixels for the coverlab
// viewer. Palette and pixel-fill code is plain Go; the ebiten painter
// lives behind the 'ebiten' build tag.
package render

import (
	"fmt"
	"image/color"
)

// Display states for board cells, used as palette indices.
const (
	StateEmpty   uint8 = 0
	StateCovered uint8 = 1
	StateSeed    uint8 = 2
)

// Scheme is a named three-color palette: empty board, covered cell, seed.
type Scheme struct {
	Name    string
	Empty   color.RGBA
	Covered color.RGBA
	Seed    color.RGBA
}

// Palette returns the scheme's colors indexed by display state.
func (s Scheme) Palette() []color.RGBA {
	return []color.RGBA{s.Empty, s.Covered, s.Seed}
}

// Schemes returns the built-in palettes in toggle order.
func Schemes() []Scheme {
	return []Scheme{
		{
			Name:    "default",
			Empty:   color.RGBA{R: 0xf7, G: 0xfa, B: 0xfc, A: 0xff},
			Covered: color.RGBA{R: 0xcb, G: 0xd5, B: 0xe0, A: 0xff},
			Seed:    color.RGBA{R: 0x1a, G: 0x20, B: 0x2c, A: 0xff},
		},
		{
			Name:    "high-contrast",
			Empty:   color.RGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff},
			Covered: color.RGBA{R: 0x80, G: 0x80, B: 0x80, A: 0xff},
			Seed:    color.RGBA{R: 0x00, G: 0x00, B: 0x00, A: 0xff},
		},
		{
			Name:    "blue",
			Empty:   color.RGBA{R: 0xeb, G: 0xf8, B: 0xff, A: 0xff},
			Covered: color.RGBA{R: 0xbe, G: 0xe3, B: 0xf8, A: 0xff},
			Seed:    color.RGBA{R: 0x1e, G: 0x40, B: 0xaf, A: 0xff},
		},
		{
			Name:    "green",
			Empty:   color.RGBA{R: 0xf0, G: 0xff, B: 0xf4, A: 0xff},
			Covered: color.RGBA{R: 0xc6, G: 0xf6, B: 0xd5, A: 0xff},
			Seed:    color.RGBA{R: 0x16, G: 0x65, B: 0x34, A: 0xff},
		},
	}
}

// SchemeIndex returns the position of the named scheme in Schemes().
func SchemeIndex(name string) (int, error) {
	for i, s := range Schemes() {
		if s.Name == name {
			return i, nil
		}
	}
	return 0, fmt.Errorf("render: unknown scheme %q", name)
}
