//go:build ebiten

package ui

import (
	"image/color"

	"hexflake/internal/core"
	"hexflake/internal/sims/snowflake"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

type cellQuerier interface {
	AttachedCells() []snowflake.Cell
	BoundaryCells() []snowflake.Cell
}

// Overlay draws optional debugging visuals on top of the base view using
// only the read-only cell queries. Key 1 toggles the growth-front
// highlight, key 2 the crystal mask.
type Overlay struct {
	sim         core.Sim
	showFront   bool
	showCrystal bool
	pixel       *ebiten.Image
}

// NewOverlay constructs a new overlay instance.
func NewOverlay(sim core.Sim) *Overlay {
	o := &Overlay{sim: sim}
	o.pixel = ebiten.NewImage(1, 1)
	o.pixel.Fill(color.White)
	return o
}

// Update handles the overlay toggle keys.
func (o *Overlay) Update() {
	if o == nil {
		return
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyDigit1) {
		o.showFront = !o.showFront
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyDigit2) {
		o.showCrystal = !o.showCrystal
	}
}

// Draw paints the active overlays under the same raster-to-screen transform
// the base view uses.
func (o *Overlay) Draw(screen *ebiten.Image, geom ebiten.GeoM) {
	if o == nil {
		return
	}
	querier, ok := o.sim.(cellQuerier)
	if !ok {
		return
	}
	if o.showFront {
		o.drawCells(screen, geom, querier.BoundaryCells(), color.RGBA{R: 80, G: 240, B: 255, A: 200})
	}
	if o.showCrystal {
		o.drawCells(screen, geom, querier.AttachedCells(), color.RGBA{R: 255, G: 255, B: 255, A: 120})
	}
}

func (o *Overlay) drawCells(dst *ebiten.Image, geom ebiten.GeoM, cells []snowflake.Cell, col color.RGBA) {
	radius := (o.sim.Size().W - 1) / 2
	for _, c := range cells {
		op := &ebiten.DrawImageOptions{}
		op.GeoM.Translate(float64(c.Coord.Q+radius), float64(c.Coord.R+radius))
		op.GeoM.Concat(geom)
		op.ColorScale.ScaleWithColor(col)
		dst.DrawImage(o.pixel, op)
	}
}
