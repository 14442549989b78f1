package snowflake

import "image/color"

// Display raster encoding. Slot 0 marks raster positions outside the
// hexagonal region; vapor, boundary and crystal cells each occupy a band
// shaded by their dominant mass field.
const (
	displayVaporBase      = 1
	displayVaporLevels    = 126
	displayBoundaryBase   = 128
	displayBoundaryLevels = 48
	displayCrystalBase    = 176
	displayCrystalLevels  = 80
)

var flakePalette = buildFlakePalette()

// Palette exposes the color palette used for rendering the lattice raster.
func (l *Lattice) Palette() []color.RGBA {
	return flakePalette
}

func buildFlakePalette() []color.RGBA {
	palette := make([]color.RGBA, 256)
	palette[0] = color.RGBA{A: 255}
	// Vapor: near-black into a dusty blue as density rises.
	for i := 0; i < displayVaporLevels; i++ {
		t := float64(i) / float64(displayVaporLevels-1)
		palette[displayVaporBase+i] = color.RGBA{
			R: uint8(8 + 30*t),
			G: uint8(10 + 42*t),
			B: uint8(22 + 74*t),
			A: 255,
		}
	}
	// Boundary: ice blue, brighter with quasi-liquid mass.
	for i := 0; i < displayBoundaryLevels; i++ {
		t := float64(i) / float64(displayBoundaryLevels-1)
		palette[displayBoundaryBase+i] = color.RGBA{
			R: uint8(60 + 60*t),
			G: uint8(110 + 80*t),
			B: uint8(170 + 70*t),
			A: 255,
		}
	}
	// Crystal: pale blue-white into solid white with crystal mass.
	for i := 0; i < displayCrystalLevels; i++ {
		t := float64(i) / float64(displayCrystalLevels-1)
		palette[displayCrystalBase+i] = color.RGBA{
			R: uint8(190 + 65*t),
			G: uint8(205 + 50*t),
			B: uint8(225 + 30*t),
			A: 255,
		}
	}
	return palette
}

func (l *Lattice) rebuildDisplay() {
	for i := range l.diffusive {
		l.display[l.region.RasterIndex(i)] = l.encodeCell(i)
	}
}

func (l *Lattice) encodeCell(i int) uint8 {
	switch {
	case l.attached[i]:
		return displayCrystalBase + quantize(l.crystal[i], 1.5, displayCrystalLevels)
	case l.onBoundary[i]:
		return displayBoundaryBase + quantize(l.boundaryMass[i], 1.0, displayBoundaryLevels)
	default:
		return displayVaporBase + quantize(l.diffusive[i], 1.0, displayVaporLevels)
	}
}

// quantize maps v in [0, max] onto [0, levels-1], saturating above max.
func quantize(v, max float64, levels int) uint8 {
	if v <= 0 {
		return 0
	}
	if v >= max {
		return uint8(levels - 1)
	}
	return uint8(v / max * float64(levels-1))
}
