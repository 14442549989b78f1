//go:build ebiten

package ui

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"

	"hexflake/internal/core"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"
)

type parameterProvider interface {
	Parameters() core.ParameterSnapshot
}

// HUD renders the parameter panel to the right of the simulation view.
// Controls are selected with Up/Down and adjusted with Left/Right; edits
// are staged on the simulation and take effect on the next reset.
type HUD struct {
	sim        core.Sim
	width      int
	panel      *ebiten.Image
	lastHeight int
	snapshot   core.ParameterSnapshot

	controls    []core.ParameterControl
	selected    int
	intSetter   core.IntParameterSetter
	floatSetter core.FloatParameterSetter
}

// NewHUD constructs a HUD for the provided simulation and panel width.
// A width of 0 disables the panel.
func NewHUD(sim core.Sim, width int) *HUD {
	if width <= 0 {
		return nil
	}
	h := &HUD{sim: sim, width: width}
	if provider, ok := sim.(core.ParameterControlsProvider); ok {
		h.controls = provider.ParameterControls()
	}
	if setter, ok := sim.(core.IntParameterSetter); ok {
		h.intSetter = setter
	}
	if setter, ok := sim.(core.FloatParameterSetter); ok {
		h.floatSetter = setter
	}
	return h
}

// Update refreshes the cached parameter snapshot and handles control input.
func (h *HUD) Update() {
	if h == nil {
		return
	}
	if provider, ok := h.sim.(parameterProvider); ok {
		h.snapshot = provider.Parameters()
	} else {
		h.snapshot = core.ParameterSnapshot{}
	}
	if len(h.controls) == 0 {
		return
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyDown) {
		h.selected = (h.selected + 1) % len(h.controls)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyUp) {
		h.selected = (h.selected + len(h.controls) - 1) % len(h.controls)
	}
	dir := 0
	if inpututil.IsKeyJustPressed(ebiten.KeyRight) {
		dir = 1
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyLeft) {
		dir = -1
	}
	if dir != 0 {
		h.adjust(h.controls[h.selected], dir)
	}
}

func (h *HUD) adjust(ctrl core.ParameterControl, dir int) {
	current, ok := h.currentValue(ctrl.Key)
	if !ok {
		return
	}
	value := current + float64(dir)*ctrl.Step
	if ctrl.HasMin && value < ctrl.Min {
		value = ctrl.Min
	}
	if ctrl.HasMax && value > ctrl.Max {
		value = ctrl.Max
	}
	switch ctrl.Type {
	case core.ParamTypeInt:
		if h.intSetter != nil {
			h.intSetter.SetIntParameter(ctrl.Key, int(value))
		}
	case core.ParamTypeFloat:
		if h.floatSetter != nil {
			h.floatSetter.SetFloatParameter(ctrl.Key, value)
		}
	}
}

func (h *HUD) currentValue(key string) (float64, bool) {
	for _, group := range h.snapshot.Groups {
		for _, param := range group.Params {
			if param.Key != key {
				continue
			}
			v, err := strconv.ParseFloat(param.Value, 64)
			if err != nil {
				return 0, false
			}
			return v, true
		}
	}
	return 0, false
}

// Draw paints the HUD panel anchored at offsetX with the given height.
func (h *HUD) Draw(screen *ebiten.Image, offsetX, height int) {
	if h == nil || h.width <= 0 || height <= 0 {
		return
	}
	if h.panel == nil || h.lastHeight != height {
		h.panel = ebiten.NewImage(h.width, height)
		h.lastHeight = height
	}
	h.panel.Fill(color.RGBA{R: 16, G: 16, B: 20, A: 255})

	face := basicfont.Face7x13
	y := 18
	title := strings.Title(h.sim.Name()) + " Parameters"
	text.Draw(h.panel, title, face, 10, y, color.White)
	y += 22

	selectedKey := ""
	if len(h.controls) > 0 {
		selectedKey = h.controls[h.selected].Key
	}

	dim := color.RGBA{R: 150, G: 150, B: 160, A: 255}
	hot := color.RGBA{R: 255, G: 220, B: 120, A: 255}
	for _, group := range h.snapshot.Groups {
		text.Draw(h.panel, group.Name, face, 10, y, color.RGBA{R: 110, G: 160, B: 220, A: 255})
		y += 16
		for _, param := range group.Params {
			line := fmt.Sprintf("  %-24s %s", param.Label, param.Value)
			col := color.Color(dim)
			if param.Key == selectedKey {
				line = ">" + line[1:]
				col = hot
			}
			text.Draw(h.panel, line, face, 10, y, col)
			y += 14
		}
		y += 8
	}

	y += 8
	for _, line := range []string{
		"up/down select, left/right adjust",
		"edits apply on reset (R)",
	} {
		text.Draw(h.panel, line, face, 10, y, dim)
		y += 14
	}

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(float64(offsetX), 0)
	screen.DrawImage(h.panel, op)
}
