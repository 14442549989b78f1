package hexlife

import (
	"errors"
	"strconv"

	"hexflake/internal/core"
	"hexflake/internal/hex"
)

// ErrRadius reports a degenerate region radius at construction time.
var ErrRadius = errors.New("hexlife: region radius must be at least 1")

// Life implements a two-state life variant on a hexagonal region: dead
// cells with exactly two live neighbors are born, live cells survive with
// three or four.
type Life struct {
	region  *hex.Region
	cur     []uint8
	nxt     []uint8
	display []uint8
}

// New returns a hexlife simulation on a region of the given radius.
func New(size int) (*Life, error) {
	if size < 1 {
		return nil, ErrRadius
	}
	region := hex.NewRegion(size)
	n := region.Len()
	span := region.Span()
	return &Life{
		region:  region,
		cur:     make([]uint8, n),
		nxt:     make([]uint8, n),
		display: make([]uint8, span*span),
	}, nil
}

// Name returns the simulation identifier.
func (l *Life) Name() string { return "hexlife" }

// Size reports the raster dimensions of the display buffer.
func (l *Life) Size() core.Size {
	span := l.region.Span()
	return core.Size{W: span, H: span}
}

// Cells exposes the current display buffer.
func (l *Life) Cells() []uint8 { return l.display }

// Region exposes the lattice geometry.
func (l *Life) Region() *hex.Region { return l.region }

// Alive reports whether the cell at c is live.
func (l *Life) Alive(c hex.Axial) bool {
	i := l.region.Index(c)
	return i >= 0 && l.cur[i] == 1
}

// SetAlive flips the cell at c, ignoring coordinates outside the region.
func (l *Life) SetAlive(c hex.Axial, alive bool) {
	i := l.region.Index(c)
	if i < 0 {
		return
	}
	if alive {
		l.cur[i] = 1
	} else {
		l.cur[i] = 0
	}
}

// Clear kills every cell.
func (l *Life) Clear() {
	for i := range l.cur {
		l.cur[i] = 0
	}
	l.rebuildDisplay()
}

// Reset randomizes the board using the provided seed.
func (l *Life) Reset(seed int64) {
	rng := core.NewRNG(seed)
	for i := range l.cur {
		l.cur[i] = uint8(rng.IntN(2))
	}
	l.rebuildDisplay()
}

// Step advances the automaton by one generation.
func (l *Life) Step() {
	for i := range l.cur {
		live := 0
		for _, n := range l.region.Neighbors(i) {
			live += int(l.cur[n])
		}
		l.nxt[i] = 0
		if l.cur[i] == 1 {
			if live == 3 || live == 4 {
				l.nxt[i] = 1
			}
		} else if live == 2 {
			l.nxt[i] = 1
		}
	}
	l.cur, l.nxt = l.nxt, l.cur
	l.rebuildDisplay()
}

func (l *Life) rebuildDisplay() {
	for i := range l.cur {
		l.display[l.region.RasterIndex(i)] = l.cur[i]
	}
}

func init() {
	core.Register("hexlife", func(cfg map[string]string) (core.Sim, error) {
		size := 60
		if v, ok := cfg["size"]; ok {
			if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
				size = parsed
			}
		}
		return New(size)
	})
}
