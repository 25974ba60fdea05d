//go:build ebiten

package render

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
)

// GridPainter uploads board display states into a single RGBA image and
// draws it scaled so each cell becomes a cellSize x cellSize square.
type GridPainter struct {
	rows, cols int
	img        *ebiten.Image
	buf        []byte
}

// NewGridPainter allocates a painter for a rows x cols board.
func NewGridPainter(rows, cols int) *GridPainter {
	gp := &GridPainter{rows: rows, cols: cols, buf: make([]byte, 4*rows*cols)}
	gp.img = ebiten.NewImage(cols, rows)
	return gp
}

// Blit uploads states through the palette and draws the board at the
// origin of dst. States must be row-major with rows*cols entries.
func (gp *GridPainter) Blit(dst *ebiten.Image, states []uint8, palette []color.RGBA, cellSize int) {
	if len(states) != gp.rows*gp.cols {
		return
	}
	fillSchemeRGBA(gp.buf, states, palette)
	gp.img.WritePixels(gp.buf)

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(cellSize), float64(cellSize))
	dst.DrawImage(gp.img, op)
}

// Size returns the painter's board dimensions.
func (gp *GridPainter) Size() (rows, cols int) { return gp.rows, gp.cols }
