package render

import "image/color"

// fillSchemeRGBA writes one RGBA pixel per display state into buf using
// the palette. States past the palette clamp to its last entry; an empty
// palette clears the pixels to transparent black.
func fillSchemeRGBA(buf []byte, states []uint8, palette []color.RGBA) {
	if len(palette) == 0 {
		clear(buf[:4*len(states)])
		return
	}
	last := uint8(len(palette) - 1)
	for i, s := range states {
		if s > last {
			s = last
		}
		c := palette[s]
		base := i * 4
		buf[base+0] = c.R
		buf[base+1] = c.G
		buf[base+2] = c.B
		buf[base+3] = c.A
	}
}
