package hexlife

import (
	"errors"
	"slices"
	"testing"

	"hexflake/internal/hex"
)

func TestConstructionRejectsDegenerateRadius(t *testing.T) {
	if _, err := New(0); !errors.Is(err, ErrRadius) {
		t.Fatalf("expected ErrRadius, got %v", err)
	}
}

func TestBirthOnTwoLiveNeighbors(t *testing.T) {
	life, err := New(3)
	if err != nil {
		t.Fatal(err)
	}
	life.Clear()
	life.SetAlive(hex.Axial{Q: 0, R: 0}, true)
	life.SetAlive(hex.Axial{Q: 1, R: 0}, true)

	life.Step()

	// The two cells adjacent to both live cells are born; the originals die
	// with only one live neighbor each.
	wantAlive := []hex.Axial{{Q: 1, R: -1}, {Q: 0, R: 1}}
	for _, c := range wantAlive {
		if !life.Alive(c) {
			t.Fatalf("cell %+v should be born with two live neighbors", c)
		}
	}
	for i := 0; i < life.region.Len(); i++ {
		c := life.region.Coord(i)
		alive := life.cur[i] == 1
		shouldBeAlive := slices.Contains(wantAlive, c)
		if alive != shouldBeAlive {
			t.Fatalf("cell %+v alive=%v, expected %v", c, alive, shouldBeAlive)
		}
	}
}

func TestResetDeterministic(t *testing.T) {
	a, err := New(5)
	if err != nil {
		t.Fatal(err)
	}
	b, _ := New(5)

	a.Reset(123)
	b.Reset(123)
	if !slices.Equal(a.cur, b.cur) {
		t.Fatal("equal seeds must produce equal boards")
	}

	b.Reset(124)
	if slices.Equal(a.cur, b.cur) {
		t.Fatal("different seeds should produce different boards")
	}
}
