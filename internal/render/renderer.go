//go:build ebiten

package render

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
)

// GridPainter uploads a cell raster into a single RGBA image and draws it
// with a caller-supplied transform, which lets the app map an axial raster
// into hex-oriented screen space.
type GridPainter struct {
	w, h int
	img  *ebiten.Image
	buf  []byte
}

// NewGridPainter allocates a painter for a raster of size w*h.
func NewGridPainter(w, h int) *GridPainter {
	gp := &GridPainter{w: w, h: h, buf: make([]byte, 4*w*h)}
	gp.img = ebiten.NewImage(w, h)
	return gp
}

// Blit draws binary cells using on/off colors under the provided transform.
func (gp *GridPainter) Blit(dst *ebiten.Image, cells []uint8, on, off color.Color, geom ebiten.GeoM) {
	if len(cells) != gp.w*gp.h {
		return
	}
	fillBinaryRGBA(gp.buf, cells, on, off)
	gp.img.WritePixels(gp.buf)
	gp.draw(dst, geom)
}

// BlitPalette draws palette-indexed cells under the provided transform.
func (gp *GridPainter) BlitPalette(dst *ebiten.Image, cells []uint8, palette []color.RGBA, geom ebiten.GeoM) {
	if len(cells) != gp.w*gp.h {
		return
	}
	fillPaletteRGBA(gp.buf, cells, palette)
	gp.img.WritePixels(gp.buf)
	gp.draw(dst, geom)
}

func (gp *GridPainter) draw(dst *ebiten.Image, geom ebiten.GeoM) {
	op := &ebiten.DrawImageOptions{}
	op.GeoM = geom
	dst.DrawImage(gp.img, op)
}

// Size returns the dimensions of the underlying raster.
func (gp *GridPainter) Size() (int, int) { return gp.w, gp.h }
