package hex

import (
	"math"
	"testing"
)

func TestDirectionsFormClosedRing(t *testing.T) {
	sum := Axial{}
	for _, d := range Directions {
		sum = sum.Add(d)
	}
	if sum != (Axial{}) {
		t.Fatalf("direction offsets must sum to the origin, got %+v", sum)
	}
	for i, d := range Directions {
		opp := Directions[(i+3)%6]
		if d.Add(opp) != (Axial{}) {
			t.Fatalf("direction %d is not opposite direction %d", i, (i+3)%6)
		}
	}
}

func TestRegionCellCount(t *testing.T) {
	for radius := 1; radius <= 5; radius++ {
		rg := NewRegion(radius)
		want := 3*radius*(radius+1) + 1
		if rg.Len() != want {
			t.Fatalf("radius %d: expected %d cells, got %d", radius, want, rg.Len())
		}
	}
}

func TestRegionNeighborCounts(t *testing.T) {
	rg := NewRegion(2)

	origin := rg.Index(Axial{})
	if origin < 0 {
		t.Fatal("origin must be inside the region")
	}
	if got := len(rg.Neighbors(origin)); got != 6 {
		t.Fatalf("origin should have 6 neighbors, got %d", got)
	}

	corner := rg.Index(Axial{Q: 2, R: 0})
	if corner < 0 {
		t.Fatal("corner (2,0) must be inside the region")
	}
	if got := len(rg.Neighbors(corner)); got != 3 {
		t.Fatalf("corner (2,0) should have 3 neighbors, got %d", got)
	}
}

func TestRegionIndexRoundTrip(t *testing.T) {
	rg := NewRegion(3)
	for i := 0; i < rg.Len(); i++ {
		c := rg.Coord(i)
		if got := rg.Index(c); got != i {
			t.Fatalf("index round trip failed for %+v: %d != %d", c, got, i)
		}
	}
	outside := []Axial{{Q: 3, R: 3}, {Q: -3, R: -3}, {Q: 4, R: 0}, {Q: 2, R: 2}}
	for _, c := range outside {
		if rg.Index(c) != -1 {
			t.Fatalf("coordinate %+v should be outside the region", c)
		}
	}
}

func TestRegionRasterSlotsAreUnique(t *testing.T) {
	rg := NewRegion(2)
	seen := map[int]bool{}
	for i := 0; i < rg.Len(); i++ {
		slot := rg.RasterIndex(i)
		if slot < 0 || slot >= rg.Span()*rg.Span() {
			t.Fatalf("raster slot %d out of range for cell %d", slot, i)
		}
		if seen[slot] {
			t.Fatalf("raster slot %d assigned twice", slot)
		}
		seen[slot] = true
	}
}

func TestToPixel(t *testing.T) {
	cases := []struct {
		q, r  int
		scale float64
		x, y  float64
	}{
		{0, 0, 1, 0, 0},
		{1, 0, 1, 1.5, math.Sqrt(3) / 2},
		{0, 1, 1, 0, math.Sqrt(3)},
		{1, 0, 2, 3, math.Sqrt(3)},
		{-2, 1, 1, -3, 0},
	}
	for _, c := range cases {
		x, y := ToPixel(c.q, c.r, c.scale)
		if math.Abs(x-c.x) > 1e-12 || math.Abs(y-c.y) > 1e-12 {
			t.Fatalf("ToPixel(%d,%d,%g) = (%g,%g), expected (%g,%g)", c.q, c.r, c.scale, x, y, c.x, c.y)
		}
	}
}

func TestDistance(t *testing.T) {
	cases := []struct {
		a, b Axial
		want int
	}{
		{Axial{}, Axial{}, 0},
		{Axial{}, Axial{Q: 1, R: 0}, 1},
		{Axial{}, Axial{Q: 2, R: -1}, 2},
		{Axial{}, Axial{Q: -1, R: -1}, 2},
		{Axial{Q: 1, R: 1}, Axial{Q: -1, R: -1}, 4},
	}
	for _, c := range cases {
		if got := Distance(c.a, c.b); got != c.want {
			t.Fatalf("Distance(%+v,%+v) = %d, expected %d", c.a, c.b, got, c.want)
		}
	}
}
