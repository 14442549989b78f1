package snowflake

import "hexflake/internal/hex"

// MassTotals sums each mass phase over the whole lattice.
type MassTotals struct {
	Diffusive float64
	Boundary  float64
	Crystal   float64
}

// Total returns the combined mass across all three phases.
func (m MassTotals) Total() float64 {
	return m.Diffusive + m.Boundary + m.Crystal
}

// MassTotals reports the current per-phase mass sums.
func (l *Lattice) MassTotals() MassTotals {
	var m MassTotals
	for i := range l.diffusive {
		m.Diffusive += l.diffusive[i]
		m.Boundary += l.boundaryMass[i]
		m.Crystal += l.crystal[i]
	}
	return m
}

// AttachedCount reports the number of crystal cells.
func (l *Lattice) AttachedCount() int {
	count := 0
	for _, a := range l.attached {
		if a {
			count++
		}
	}
	return count
}

// Radius reports the hex distance from the origin to the farthest crystal
// cell, a proxy for dendrite reach.
func (l *Lattice) Radius() int {
	origin := hex.Axial{}
	max := 0
	for i, a := range l.attached {
		if !a {
			continue
		}
		if d := hex.Distance(origin, l.region.Coord(i)); d > max {
			max = d
		}
	}
	return max
}

// TipCount reports how many crystal cells have exactly one attached
// neighbor. Tips track branching: a disk has none, a dendrite many.
func (l *Lattice) TipCount() int {
	count := 0
	for i, a := range l.attached {
		if !a {
			continue
		}
		k := 0
		for _, n := range l.region.Neighbors(i) {
			if l.attached[n] {
				k++
			}
		}
		if k == 1 {
			count++
		}
	}
	return count
}
