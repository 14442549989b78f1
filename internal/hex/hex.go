package hex

import "math"

// Axial identifies a lattice position using axial coordinates (q, r).
type Axial struct {
	Q int
	R int
}

// Directions lists the six neighbor offsets of a hexagonal cell.
var Directions = [6]Axial{
	{+1, 0}, {+1, -1}, {0, -1}, {-1, 0}, {-1, +1}, {0, +1},
}

// Add returns a+b in axial space.
func (a Axial) Add(b Axial) Axial { return Axial{Q: a.Q + b.Q, R: a.R + b.R} }

// Distance returns the hex grid distance between two coordinates.
func Distance(a, b Axial) int {
	dq := abs(a.Q - b.Q)
	dr := abs(a.R - b.R)
	ds := abs((a.Q + a.R) - (b.Q + b.R))
	if dq >= dr && dq >= ds {
		return dq
	}
	if dr >= ds {
		return dr
	}
	return ds
}

// ToPixel maps axial coordinates to pixel space for a flat-top layout.
// scale is the hex radius in pixels. Pure; no lattice is needed.
func ToPixel(q, r int, scale float64) (x, y float64) {
	x = scale * 1.5 * float64(q)
	y = scale * math.Sqrt(3) * (float64(r) + float64(q)/2)
	return
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
