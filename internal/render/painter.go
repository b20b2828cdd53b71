//go:build ebiten

package render

import (
	"github.com/hajimehoshi/ebiten/v2"
)

// GridPainter updates a single RGBA image based on binary cell data.
type GridPainter struct {
	w, h  int
	img   *ebiten.Image
	buf   []byte
	cells []uint8
}

// NewGridPainter allocates a painter for a grid of size w*h.
func NewGridPainter(w, h int) *GridPainter {
	gp := &GridPainter{}
	gp.Resize(w, h)
	return gp
}

// Resize reallocates the backing image when the board dimensions change.
func (gp *GridPainter) Resize(w, h int) {
	if gp.img != nil && gp.w == w && gp.h == h {
		return
	}
	if gp.img != nil {
		gp.img.Dispose()
	}
	gp.w, gp.h = w, h
	gp.buf = make([]byte, 4*w*h)
	gp.img = ebiten.NewImage(w, h)
}

// Blit uploads the board cells into the painter image and draws it scaled.
func (gp *GridPainter) Blit(dst *ebiten.Image, cells func([]uint8) []uint8, pal Palette, scale int) {
	gp.cells = cells(gp.cells[:0])
	if len(gp.cells) != gp.w*gp.h {
		return
	}
	fillBinaryRGBA(gp.buf, gp.cells, pal.Alive, pal.Dead)
	gp.img.WritePixels(gp.buf)

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(scale), float64(scale))
	dst.DrawImage(gp.img, op)
}

// Size returns the dimensions of the underlying image.
func (gp *GridPainter) Size() (int, int) { return gp.w, gp.h }
