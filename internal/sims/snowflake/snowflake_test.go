package snowflake

import (
	"errors"
	"math"
	"testing"

	"hexflake/internal/hex"
)

func newTestLattice(t *testing.T, mutate func(*Config)) *Lattice {
	t.Helper()
	cfg := DefaultConfig()
	cfg.Size = 8
	cfg.Seed = 42
	if mutate != nil {
		mutate(&cfg)
	}
	l, err := NewWithConfig(cfg)
	if err != nil {
		t.Fatalf("NewWithConfig: %v", err)
	}
	return l
}

func TestConstructionRejectsDegenerateRadius(t *testing.T) {
	for _, size := range []int{0, -1, -10} {
		l, err := New(size)
		if !errors.Is(err, ErrRadius) {
			t.Fatalf("New(%d): expected ErrRadius, got %v", size, err)
		}
		if l != nil {
			t.Fatalf("New(%d): no partial lattice may be returned", size)
		}
	}
}

func TestSeedInvariant(t *testing.T) {
	for _, size := range []int{1, 2, 7} {
		l, err := New(size)
		if err != nil {
			t.Fatalf("New(%d): %v", size, err)
		}
		attached := l.AttachedCells()
		if len(attached) != 1 {
			t.Fatalf("size %d: expected exactly one attached cell, got %d", size, len(attached))
		}
		if attached[0].Coord != (hex.Axial{}) {
			t.Fatalf("size %d: seed must sit at the origin, got %+v", size, attached[0].Coord)
		}
		if attached[0].CrystalMass <= 0 {
			t.Fatalf("size %d: seed must carry crystal mass", size)
		}
		if got := len(l.BoundaryCells()); got != 0 {
			t.Fatalf("size %d: no cell may be boundary before the first step, got %d", size, got)
		}
	}
}

func TestOriginNeighborsBecomeBoundary(t *testing.T) {
	l := newTestLattice(t, func(cfg *Config) {
		cfg.Size = 2
		cfg.Params.Gamma = 0.5
		cfg.Params.Sigma = 0
	})
	l.Step()

	front := l.BoundaryCells()
	if len(front) != 6 {
		t.Fatalf("expected 6 boundary cells after one step, got %d", len(front))
	}
	for _, c := range front {
		if d := hex.Distance(hex.Axial{}, c.Coord); d != 1 {
			t.Fatalf("boundary cell %+v is not adjacent to the origin", c.Coord)
		}
	}
	for i := 0; i < l.region.Len(); i++ {
		c := l.region.Coord(i)
		if hex.Distance(hex.Axial{}, c) == 2 && l.onBoundary[i] {
			t.Fatalf("ring-2 cell %+v must not be boundary after one step", c)
		}
	}
}

func TestBetaZeroAttachesFirstRing(t *testing.T) {
	l := newTestLattice(t, func(cfg *Config) {
		cfg.Size = 3
		cfg.Params.Beta = 0
		cfg.Params.Sigma = 0
	})
	l.Step()

	for _, d := range hex.Directions {
		c, ok := l.CellAt(hex.Axial{}.Add(d))
		if !ok {
			t.Fatalf("neighbor %+v missing from lattice", d)
		}
		if !c.Attached {
			t.Fatalf("with beta=0 the first ring must attach in one step, %+v did not", c.Coord)
		}
	}
	if got := l.AttachedCount(); got != 7 {
		t.Fatalf("expected seed plus first ring attached, got %d cells", got)
	}
}

func TestAttachmentIsMonotonic(t *testing.T) {
	l := newTestLattice(t, func(cfg *Config) {
		cfg.Size = 10
		cfg.Params.Beta = 0.7
		cfg.Params.Gamma = 0.6
		cfg.Params.Sigma = 0.0001
	})
	prev := make([]bool, l.region.Len())
	for step := 0; step < 60; step++ {
		copy(prev, l.attached)
		l.Step()
		for i, was := range prev {
			if was && !l.attached[i] {
				t.Fatalf("step %d: cell %+v detached", step, l.region.Coord(i))
			}
		}
	}
	if l.AttachedCount() < 7 {
		t.Fatalf("crystal failed to grow, only %d cells attached", l.AttachedCount())
	}
}

func TestMassFieldsStayNonNegative(t *testing.T) {
	l := newTestLattice(t, func(cfg *Config) {
		cfg.Size = 12
		cfg.Params.Beta = 0.9
		cfg.Params.Sigma = 0.01
	})
	for step := 0; step < 80; step++ {
		l.Step()
		for i := range l.diffusive {
			if l.diffusive[i] < 0 || l.boundaryMass[i] < 0 || l.crystal[i] < 0 {
				t.Fatalf("step %d: negative mass at %+v: dm=%g bm=%g cm=%g",
					step, l.region.Coord(i), l.diffusive[i], l.boundaryMass[i], l.crystal[i])
			}
		}
	}
}

func TestBoundaryFlagsMatchDefinition(t *testing.T) {
	l := newTestLattice(t, func(cfg *Config) {
		cfg.Params.Beta = 0.8
		cfg.Params.Gamma = 0.55
	})
	for step := 0; step < 40; step++ {
		l.Step()
		for i := range l.onBoundary {
			adjacent := false
			for _, n := range l.region.Neighbors(i) {
				if l.attached[n] {
					adjacent = true
					break
				}
			}
			want := !l.attached[i] && adjacent
			if l.onBoundary[i] != want {
				t.Fatalf("step %d: cell %+v boundary=%v, expected %v",
					step, l.region.Coord(i), l.onBoundary[i], want)
			}
		}
	}
}

func TestAttachmentRequiresBoundaryStatus(t *testing.T) {
	l := newTestLattice(t, func(cfg *Config) {
		cfg.Params.Beta = 0.6
		cfg.Params.Gamma = 0.6
	})
	prev := make([]bool, l.region.Len())
	for step := 0; step < 40; step++ {
		copy(prev, l.attached)
		l.Step()
		for i := range l.attached {
			if !l.attached[i] || prev[i] {
				continue
			}
			adjacent := false
			for _, n := range l.region.Neighbors(i) {
				if prev[n] {
					adjacent = true
					break
				}
			}
			if !adjacent {
				t.Fatalf("step %d: cell %+v attached without an attached neighbor at step start",
					step, l.region.Coord(i))
			}
		}
	}
}

func TestPhasePassesConserveMass(t *testing.T) {
	l := newTestLattice(t, func(cfg *Config) {
		cfg.Params.Sigma = 0
		cfg.Params.Beta = 0.8
	})
	for warm := 0; warm < 5; warm++ {
		l.Step()
	}

	l.passDiffusion()
	expected := 0.0
	for i := range l.diffusive {
		if l.attached[i] {
			expected += l.diffusive[i]
		} else {
			expected += l.nextDiffusive[i]
		}
		expected += l.boundaryMass[i] + l.crystal[i]
	}

	l.passPhase()
	l.passAttachment()

	if got := l.MassTotals().Total(); math.Abs(got-expected) > 1e-9 {
		t.Fatalf("phase and attachment passes must conserve mass: expected %.12f, got %.12f", expected, got)
	}
}

func TestDeterminism(t *testing.T) {
	run := func(sigma float64) (*Lattice, *Lattice) {
		mutate := func(cfg *Config) {
			cfg.Size = 9
			cfg.Params.Sigma = sigma
			cfg.Params.Beta = 0.8
		}
		a := newTestLattice(t, mutate)
		b := newTestLattice(t, mutate)
		for step := 0; step < 40; step++ {
			a.Step()
			b.Step()
		}
		return a, b
	}

	t.Run("noise-free", func(t *testing.T) {
		a, b := run(0)
		assertFieldsEqual(t, a, b)
	})
	t.Run("seeded-noise", func(t *testing.T) {
		a, b := run(0.001)
		assertFieldsEqual(t, a, b)
	})
}

func assertFieldsEqual(t *testing.T, a, b *Lattice) {
	t.Helper()
	for i := range a.diffusive {
		if a.diffusive[i] != b.diffusive[i] || a.boundaryMass[i] != b.boundaryMass[i] ||
			a.crystal[i] != b.crystal[i] || a.attached[i] != b.attached[i] {
			t.Fatalf("lattices diverged at %+v: dm %g/%g bm %g/%g cm %g/%g attached %v/%v",
				a.region.Coord(i),
				a.diffusive[i], b.diffusive[i],
				a.boundaryMass[i], b.boundaryMass[i],
				a.crystal[i], b.crystal[i],
				a.attached[i], b.attached[i])
		}
	}
}

func TestResetRebuildsCleanState(t *testing.T) {
	mutate := func(cfg *Config) {
		cfg.Size = 7
		cfg.Params.VaporNoiseAmp = 0.2
	}
	l := newTestLattice(t, mutate)
	fresh := newTestLattice(t, mutate)

	for step := 0; step < 10; step++ {
		l.Step()
	}
	l.Reset(0)

	assertFieldsEqual(t, l, fresh)
	if l.StepCount() != 0 {
		t.Fatalf("Reset must clear the step counter, got %d", l.StepCount())
	}
}

func TestStagedParametersApplyOnReset(t *testing.T) {
	l := newTestLattice(t, nil)
	defaultBeta := l.active.Beta

	if !l.SetFloatParameter("beta", 0.42) {
		t.Fatal("beta must be stageable")
	}
	l.Step()
	if l.active.Beta != defaultBeta {
		t.Fatal("staged beta must not take effect before Reset")
	}

	l.Reset(0)
	if l.active.Beta != 0.42 {
		t.Fatalf("staged beta must apply on Reset, got %g", l.active.Beta)
	}

	if !l.SetIntParameter("size", 4) {
		t.Fatal("size must be stageable")
	}
	l.Reset(0)
	if l.region.Radius() != 4 {
		t.Fatalf("staged size must rebuild the lattice, radius=%d", l.region.Radius())
	}
	if len(l.diffusive) != l.region.Len() {
		t.Fatalf("mass fields not resized: %d cells, %d slots", l.region.Len(), len(l.diffusive))
	}

	if l.SetFloatParameter("no_such_key", 1) {
		t.Fatal("unknown float key must be rejected")
	}
	if l.SetIntParameter("no_such_key", 1) {
		t.Fatal("unknown int key must be rejected")
	}
}

func TestPerlinInitialFieldIsDeterministicAndBounded(t *testing.T) {
	mutate := func(cfg *Config) {
		cfg.Size = 6
		cfg.Params.VaporNoiseAmp = 0.3
		cfg.Params.VaporNoiseFreq = 0.5
	}
	a := newTestLattice(t, mutate)
	b := newTestLattice(t, mutate)

	varied := false
	for i := range a.diffusive {
		if a.diffusive[i] != b.diffusive[i] {
			t.Fatalf("perlin init must be deterministic per seed, diverged at %+v", a.region.Coord(i))
		}
		if a.diffusive[i] < 0 {
			t.Fatalf("initial vapor must be clamped at zero, got %g", a.diffusive[i])
		}
		if !a.attached[i] && a.diffusive[i] != a.active.Gamma {
			varied = true
		}
	}
	if !varied {
		t.Fatal("perlin amplitude should modulate the initial vapor field")
	}
}

func TestAttachmentRuleThresholds(t *testing.T) {
	l := newTestLattice(t, func(cfg *Config) {
		cfg.Size = 4
		cfg.Params.Beta = 0.5
		cfg.Params.Alpha = 0.1
		cfg.Params.Theta = 0.2
	})

	idx := l.region.Index(hex.Axial{Q: 1, R: 0})

	set := func(k uint8, bm, vapor float64) {
		l.attachedNbrs[idx] = k
		l.boundaryMass[idx] = bm
		l.vaporSum[idx] = vapor
	}

	set(1, 0.6, 0)
	if !l.shouldAttach(idx) {
		t.Fatal("k=1 with bm > beta must attach")
	}
	set(2, 0.5, 0)
	if l.shouldAttach(idx) {
		t.Fatal("k=2 with bm == beta must not attach (strict inequality)")
	}
	set(3, 1.0, 99)
	if !l.shouldAttach(idx) {
		t.Fatal("k=3 with bm >= 1 must attach regardless of vapor")
	}
	set(3, 0.15, 0.1)
	if !l.shouldAttach(idx) {
		t.Fatal("k=3 with bm >= alpha and low vapor must attach")
	}
	set(3, 0.15, 0.3)
	if l.shouldAttach(idx) {
		t.Fatal("k=3 with high ambient vapor must not attach below bm=1")
	}
	set(0, 5, 0)
	if l.shouldAttach(idx) {
		t.Fatal("k=0 must never attach")
	}
	set(4, 5, 0)
	if l.shouldAttach(idx) {
		t.Fatal("k>=4 must never attach")
	}
}

func TestDiffusionReflectsAtCrystalSurface(t *testing.T) {
	l := newTestLattice(t, func(cfg *Config) {
		cfg.Size = 2
		cfg.Params.Sigma = 0
		cfg.Params.Gamma = 0.5
	})
	l.passDiffusion()

	// A uniform field with a reflecting crystal stays uniform: the attached
	// origin contributes each neighbor's own value back to it.
	for i := range l.nextDiffusive {
		if l.attached[i] {
			continue
		}
		if math.Abs(l.nextDiffusive[i]-0.5) > 1e-12 {
			t.Fatalf("uniform field must stay uniform under reflection, cell %+v got %g",
				l.region.Coord(i), l.nextDiffusive[i])
		}
	}
}
