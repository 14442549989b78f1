package hex

// Region is the hexagonal block of cells of a given radius around the
// origin: every (q, r) with |q| <= radius, |r| <= radius and |q+r| <= radius.
// Cells live in a flat table and neighbor lists are resolved to flat indices
// once at construction; the topology never changes afterwards.
type Region struct {
	radius int
	span   int
	coords []Axial
	lookup []int // span*span raster slots, -1 where outside the region
	adj    [][]int
}

// NewRegion enumerates the region and precomputes all neighbor index lists.
func NewRegion(radius int) *Region {
	if radius < 1 {
		radius = 1
	}
	span := 2*radius + 1
	rg := &Region{radius: radius, span: span, lookup: make([]int, span*span)}
	for i := range rg.lookup {
		rg.lookup[i] = -1
	}
	for r := -radius; r <= radius; r++ {
		for q := -radius; q <= radius; q++ {
			if abs(q+r) > radius {
				continue
			}
			rg.lookup[rg.slot(q, r)] = len(rg.coords)
			rg.coords = append(rg.coords, Axial{Q: q, R: r})
		}
	}
	rg.adj = make([][]int, len(rg.coords))
	for i, c := range rg.coords {
		nbrs := make([]int, 0, 6)
		for _, d := range Directions {
			if idx := rg.Index(c.Add(d)); idx >= 0 {
				nbrs = append(nbrs, idx)
			}
		}
		rg.adj[i] = nbrs
	}
	return rg
}

// Radius returns the region radius.
func (rg *Region) Radius() int { return rg.radius }

// Span returns the side length of the square raster enclosing the region.
func (rg *Region) Span() int { return rg.span }

// Len returns the number of cells in the region.
func (rg *Region) Len() int { return len(rg.coords) }

// Coord returns the axial coordinate of cell i.
func (rg *Region) Coord(i int) Axial { return rg.coords[i] }

// Index returns the flat index of the cell at c, or -1 when c lies outside
// the region.
func (rg *Region) Index(c Axial) int {
	if c.Q < -rg.radius || c.Q > rg.radius || c.R < -rg.radius || c.R > rg.radius {
		return -1
	}
	return rg.lookup[rg.slot(c.Q, c.R)]
}

// Neighbors returns the flat indices of the cells adjacent to cell i. Edge
// cells have fewer than six. The slice is owned by the region; callers must
// not modify it.
func (rg *Region) Neighbors(i int) []int { return rg.adj[i] }

// RasterIndex returns the slot of cell i in a span*span row-major raster,
// with rows indexed by r and columns by q.
func (rg *Region) RasterIndex(i int) int {
	c := rg.coords[i]
	return rg.slot(c.Q, c.R)
}

func (rg *Region) slot(q, r int) int {
	return (r+rg.radius)*rg.span + (q + rg.radius)
}
