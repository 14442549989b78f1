package snowflake

import (
	"errors"

	"hexflake/internal/core"
	"hexflake/internal/hex"

	"github.com/aquilax/go-perlin"
)

// ErrRadius reports a degenerate lattice radius at construction time.
var ErrRadius = errors.New("snowflake: lattice radius must be at least 1")

// Lattice simulates anisotropic crystal growth on a hexagonal region. Vapor
// diffuses across the lattice, reacts at the crystal surface into
// quasi-liquid and frozen mass, and boundary cells attach to the crystal
// once enough quasi-liquid mass accumulates. One Step runs three full
// passes over the lattice with a hard barrier between them, so every cell
// reads only state settled before the pass began; interleaving reads and
// writes within a pass would bias growth toward the iteration order.
type Lattice struct {
	cfg    Config
	active Params // parameters in force since the last Reset
	region *hex.Region

	diffusive    []float64
	boundaryMass []float64
	crystal      []float64
	attached     []bool
	onBoundary   []bool
	age          []uint32

	// per-step scratch, rebuilt every step
	nextDiffusive []float64
	attachedNbrs  []uint8
	vaporSum      []float64
	pendingAttach []bool

	display []uint8
	steps   int
	rng     *core.RNG
}

// New returns a lattice of the given radius using the default parameters.
func New(size int) (*Lattice, error) {
	cfg := DefaultConfig()
	cfg.Size = size
	return NewWithConfig(cfg)
}

// NewWithConfig builds the full cell table for the configured radius and
// seeds the nucleus at the origin. Radii below 1 are rejected outright; no
// partial lattice is returned.
func NewWithConfig(cfg Config) (*Lattice, error) {
	if cfg.Size < 1 {
		return nil, ErrRadius
	}
	l := &Lattice{cfg: cfg}
	l.rebuild()
	l.Reset(0)
	return l, nil
}

// Name returns the simulation identifier.
func (l *Lattice) Name() string { return "snowflake" }

// Size reports the raster dimensions of the display buffer.
func (l *Lattice) Size() core.Size {
	span := l.region.Span()
	return core.Size{W: span, H: span}
}

// Cells exposes the current display buffer.
func (l *Lattice) Cells() []uint8 { return l.display }

// Region exposes the lattice geometry.
func (l *Lattice) Region() *hex.Region { return l.region }

// StepCount reports how many steps have run since the last Reset.
func (l *Lattice) StepCount() int { return l.steps }

// Config returns the configuration, including any staged parameter edits
// that have not yet taken effect.
func (l *Lattice) Config() Config { return l.cfg }

func (l *Lattice) rebuild() {
	l.region = hex.NewRegion(l.cfg.Size)
	n := l.region.Len()
	l.diffusive = make([]float64, n)
	l.boundaryMass = make([]float64, n)
	l.crystal = make([]float64, n)
	l.attached = make([]bool, n)
	l.onBoundary = make([]bool, n)
	l.age = make([]uint32, n)
	l.nextDiffusive = make([]float64, n)
	l.attachedNbrs = make([]uint8, n)
	l.vaporSum = make([]float64, n)
	l.pendingAttach = make([]bool, n)
	span := l.region.Span()
	l.display = make([]uint8, span*span)
}

// Reset rebuilds the initial vapor field and nucleation seed. Parameter
// edits staged through the setters take effect here; no state survives from
// the previous run. A seed of 0 falls back to the configured seed.
func (l *Lattice) Reset(seed int64) {
	if l.region == nil || l.region.Radius() != l.cfg.Size {
		l.rebuild()
	}
	effective := seed
	if effective == 0 {
		effective = l.cfg.Seed
	}
	l.rng = core.NewRNG(effective)
	l.active = l.cfg.Params
	l.steps = 0

	var noise *perlin.Perlin
	if l.active.VaporNoiseAmp != 0 {
		noise = perlin.NewPerlin(2, 2, 3, effective)
	}
	for i := 0; i < l.region.Len(); i++ {
		dm := l.active.Gamma
		if noise != nil {
			c := l.region.Coord(i)
			dm += l.active.VaporNoiseAmp * noise.Noise2D(
				float64(c.Q)*l.active.VaporNoiseFreq,
				float64(c.R)*l.active.VaporNoiseFreq,
			)
			if dm < 0 {
				dm = 0
			}
		}
		l.diffusive[i] = dm
		l.boundaryMass[i] = 0
		l.crystal[i] = 0
		l.attached[i] = false
		l.onBoundary[i] = false
		l.age[i] = 0
		l.nextDiffusive[i] = 0
		l.attachedNbrs[i] = 0
		l.vaporSum[i] = 0
		l.pendingAttach[i] = false
	}

	nucleus := l.region.Index(hex.Axial{})
	l.attached[nucleus] = true
	l.diffusive[nucleus] = 0
	l.crystal[nucleus] = 1

	l.rebuildDisplay()
}

// Step advances the crystal by one discrete time step. Every pass completes
// for the whole lattice before the next begins.
func (l *Lattice) Step() {
	l.passDiffusion()
	l.passPhase()
	l.passAttachment()
	l.steps++
	l.rebuildDisplay()
}

// passDiffusion recomputes boundary status from the previous step's attached
// flags, snapshots the attached-neighbor counts the attachment rule needs,
// and computes the next vapor field as a neighborhood mean. An attached
// neighbor contributes the cell's own value, a reflecting (no-flux) boundary
// at the crystal surface. Nothing read here was written during this pass.
func (l *Lattice) passDiffusion() {
	for i := range l.diffusive {
		l.pendingAttach[i] = false
		l.attachedNbrs[i] = 0
		if l.attached[i] {
			l.onBoundary[i] = false
			continue
		}
		nbrs := l.region.Neighbors(i)
		own := l.diffusive[i]
		sum := own
		k := uint8(0)
		for _, n := range nbrs {
			if l.attached[n] {
				k++
				sum += own
			} else {
				sum += l.diffusive[n]
			}
		}
		l.attachedNbrs[i] = k
		l.onBoundary[i] = k > 0
		l.nextDiffusive[i] = sum / float64(len(nbrs)+1)
	}
}

// passPhase commits the diffusion snapshot, then runs the boundary reaction
// per boundary cell in a fixed order: freeze, attachment decision, melt.
// The attachment test reads the post-freeze, pre-melt quasi-liquid mass and
// a neighborhood vapor sum snapshotted before any cell froze, so the
// outcome does not depend on iteration order.
func (l *Lattice) passPhase() {
	for i := range l.diffusive {
		if !l.attached[i] {
			l.diffusive[i] = l.nextDiffusive[i]
		}
	}
	for i := range l.diffusive {
		if !l.onBoundary[i] {
			continue
		}
		sum := l.diffusive[i]
		for _, n := range l.region.Neighbors(i) {
			sum += l.diffusive[n]
		}
		l.vaporSum[i] = sum
	}
	p := l.active
	for i := range l.diffusive {
		if !l.onBoundary[i] {
			continue
		}
		// Freeze: all vapor at the boundary reacts this step.
		dm := l.diffusive[i]
		l.boundaryMass[i] += (1 - p.Kappa) * dm
		l.crystal[i] += p.Kappa * dm
		l.diffusive[i] = 0

		l.pendingAttach[i] = l.shouldAttach(i)

		// Melt: small fractions of both condensed phases return to vapor.
		l.diffusive[i] = p.Mu*l.boundaryMass[i] + p.Upsilon*l.crystal[i]
		l.boundaryMass[i] *= 1 - p.Mu
		l.crystal[i] *= 1 - p.Upsilon
	}
}

// shouldAttach applies the branch-count-dependent thresholds, the model's
// anisotropy source: one or two attached neighbors demand a high
// quasi-liquid mass (tip growth), three allow a low-mass shortcut when
// ambient vapor is scarce (pocket filling), four or more never attach,
// which keeps necks from over-thickening.
func (l *Lattice) shouldAttach(i int) bool {
	bm := l.boundaryMass[i]
	switch k := l.attachedNbrs[i]; {
	case k == 1 || k == 2:
		return bm > l.active.Beta
	case k == 3:
		if bm >= 1 {
			return true
		}
		return bm >= l.active.Alpha && l.vaporSum[i] < l.active.Theta
	default:
		return false
	}
}

// passAttachment commits the attachment decisions, then perturbs the vapor
// field of every still-unattached cell with symmetric uniform noise.
// Diffusive mass is floored at zero afterwards; small negative excursions
// are an expected artifact of the additive noise, not a fault.
func (l *Lattice) passAttachment() {
	sigma := l.active.Sigma
	for i := range l.diffusive {
		if l.pendingAttach[i] {
			l.crystal[i] += l.boundaryMass[i]
			l.boundaryMass[i] = 0
			l.attached[i] = true
			continue
		}
		if l.attached[i] {
			continue
		}
		if sigma != 0 {
			l.diffusive[i] += l.rng.Sym(sigma)
			if l.diffusive[i] < 0 {
				l.diffusive[i] = 0
			}
		}
		l.age[i]++
	}
	l.refreshBoundary()
}

// refreshBoundary recomputes the boundary flags against the attached set as
// it stands after this step's attachments, keeping the query surface
// consistent between steps.
func (l *Lattice) refreshBoundary() {
	for i := range l.onBoundary {
		if l.attached[i] {
			l.onBoundary[i] = false
			continue
		}
		front := false
		for _, n := range l.region.Neighbors(i) {
			if l.attached[n] {
				front = true
				break
			}
		}
		l.onBoundary[i] = front
	}
}

// Cell is a read-only view of one lattice cell.
type Cell struct {
	Coord         hex.Axial
	DiffusiveMass float64
	BoundaryMass  float64
	CrystalMass   float64
	Attached      bool
	Boundary      bool
	Age           int
}

// AttachedCells returns a snapshot of every crystal cell. Iteration order
// is not part of the contract.
func (l *Lattice) AttachedCells() []Cell {
	var out []Cell
	for i := range l.attached {
		if l.attached[i] {
			out = append(out, l.view(i))
		}
	}
	return out
}

// BoundaryCells returns a snapshot of the current growth front: every
// unattached cell adjacent to at least one attached cell.
func (l *Lattice) BoundaryCells() []Cell {
	var out []Cell
	for i := range l.onBoundary {
		if l.onBoundary[i] {
			out = append(out, l.view(i))
		}
	}
	return out
}

// CellAt returns a snapshot of the cell at c, reporting false when c lies
// outside the lattice.
func (l *Lattice) CellAt(c hex.Axial) (Cell, bool) {
	i := l.region.Index(c)
	if i < 0 {
		return Cell{}, false
	}
	return l.view(i), true
}

func (l *Lattice) view(i int) Cell {
	return Cell{
		Coord:         l.region.Coord(i),
		DiffusiveMass: l.diffusive[i],
		BoundaryMass:  l.boundaryMass[i],
		CrystalMass:   l.crystal[i],
		Attached:      l.attached[i],
		Boundary:      l.onBoundary[i],
		Age:           int(l.age[i]),
	}
}

func init() {
	core.Register("snowflake", func(cfg map[string]string) (core.Sim, error) {
		c, err := FromMap(cfg)
		if err != nil {
			return nil, err
		}
		return NewWithConfig(c)
	})
}
