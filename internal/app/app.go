//go:build ebiten

package app

import (
	"image/color"
	"math"
	"time"

	"hexflake/internal/core"
	"hexflake/internal/hex"
	"hexflake/internal/render"
	"hexflake/internal/ui"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

type paletteProvider interface {
	Palette() []color.RGBA
}

// Game adapts a core simulation to the ebiten.Game interface. The axial
// raster is drawn under the hex pixel basis so cells appear at their true
// lattice positions.
type Game struct {
	sim     core.Sim
	painter *render.GridPainter
	hud     *ui.HUD
	overlay *ui.Overlay
	timer   *core.FixedStep

	palette  []color.RGBA
	geom     ebiten.GeoM
	fieldW   int
	fieldH   int
	hudWidth int

	paused   bool
	tickOnce bool
	seed     int64
}

// New constructs a Game for the provided simulation.
func New(sim core.Sim, scale float64, tps int, seed int64, hudWidth int) *Game {
	size := sim.Size()
	g := &Game{
		sim:      sim,
		painter:  render.NewGridPainter(size.W, size.H),
		timer:    core.NewFixedStep(tps),
		seed:     seed,
		hudWidth: hudWidth,
	}
	if provider, ok := sim.(paletteProvider); ok {
		g.palette = provider.Palette()
	}
	g.geom, g.fieldW, g.fieldH = hexTransform(size.W, scale)
	g.overlay = ui.NewOverlay(sim)
	g.hud = ui.NewHUD(sim, hudWidth)
	if g.hud == nil {
		g.hudWidth = 0
	}
	return g
}

// hexTransform builds the raster-to-screen transform from the axial pixel
// basis and reports the resulting field dimensions.
func hexTransform(span int, scale float64) (ebiten.GeoM, int, int) {
	if scale <= 0 {
		scale = 1
	}
	qx, qy := hex.ToPixel(1, 0, scale)
	rx, ry := hex.ToPixel(0, 1, scale)
	var geom ebiten.GeoM
	geom.SetElement(0, 0, qx)
	geom.SetElement(0, 1, rx)
	geom.SetElement(1, 0, qy)
	geom.SetElement(1, 1, ry)
	w := int(math.Ceil((qx + rx) * float64(span)))
	h := int(math.Ceil((qy + ry) * float64(span)))
	return geom, w, h
}

// Reset reinitializes the simulation state with the provided seed.
func (g *Game) Reset(seed int64) {
	g.seed = seed
	g.sim.Reset(seed)
	g.tickOnce = false
}

// Update handles per-frame logic and advances the simulation.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		g.paused = !g.paused
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyN) {
		g.tickOnce = true
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.Reset(g.seed)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyS) {
		g.Reset(time.Now().UnixNano())
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEqual) {
		g.timer.SetTPS(g.timer.TPS() + 10)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyMinus) {
		g.timer.SetTPS(g.timer.TPS() - 10)
	}

	g.overlay.Update()
	g.hud.Update()

	if g.paused {
		if g.tickOnce {
			g.sim.Step()
			g.tickOnce = false
		}
		return nil
	}
	for n := g.timer.Ticks(); n > 0; n-- {
		g.sim.Step()
	}
	return nil
}

// Draw renders the current simulation state.
func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(color.RGBA{R: 6, G: 8, B: 14, A: 255})
	if g.palette != nil {
		g.painter.BlitPalette(screen, g.sim.Cells(), g.palette, g.geom)
	} else {
		g.painter.Blit(screen, g.sim.Cells(), color.White, color.Black, g.geom)
	}
	g.overlay.Draw(screen, g.geom)
	g.hud.Draw(screen, g.fieldW, g.fieldH)
}

// Layout returns the logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.fieldW + g.hudWidth, g.fieldH
}
