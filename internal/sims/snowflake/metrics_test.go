package snowflake

import (
	"math"
	"testing"

	"hexflake/internal/hex"
)

func TestMetricsOnFreshLattice(t *testing.T) {
	l := newTestLattice(t, nil)
	if got := l.AttachedCount(); got != 1 {
		t.Fatalf("fresh lattice should count one attached cell, got %d", got)
	}
	if got := l.Radius(); got != 0 {
		t.Fatalf("fresh lattice radius should be 0, got %d", got)
	}
	if got := l.TipCount(); got != 0 {
		t.Fatalf("lone seed has no attached neighbor, tips=%d", got)
	}

	m := l.MassTotals()
	cells := float64(l.region.Len())
	wantDiffusive := (cells - 1) * l.active.Gamma
	if math.Abs(m.Diffusive-wantDiffusive) > 1e-9 {
		t.Fatalf("diffusive total %g, expected %g", m.Diffusive, wantDiffusive)
	}
	if m.Crystal != 1 || m.Boundary != 0 {
		t.Fatalf("unexpected condensed totals: %+v", m)
	}
}

func TestMetricsOnArm(t *testing.T) {
	l := newTestLattice(t, nil)
	// Force a straight two-cell arm off the seed.
	for _, c := range []hex.Axial{{Q: 1, R: 0}, {Q: 2, R: 0}} {
		i := l.region.Index(c)
		l.attached[i] = true
		l.crystal[i] = 1
	}

	if got := l.AttachedCount(); got != 3 {
		t.Fatalf("expected 3 attached cells, got %d", got)
	}
	if got := l.Radius(); got != 2 {
		t.Fatalf("expected radius 2, got %d", got)
	}
	// Both ends of the arm have exactly one attached neighbor.
	if got := l.TipCount(); got != 2 {
		t.Fatalf("expected 2 tips, got %d", got)
	}
}
