package core_test

import (
	"testing"

	"github.com/vovakirdan/reflection-razor/internal/games/razor/core"
)

func TestGridSetAndGet(t *testing.T) {
	g := core.NewGrid(3, 2)

	if len(g.Cells) != 6 {
		t.Fatalf("expected 6 cells, got %d", len(g.Cells))
	}

	idx := core.Index{Col: 2, Row: 1}
	g.Set(idx, core.WallB)
	if got := g.At(idx); got != core.WallB {
		t.Errorf("At(%v) = %v, expected WallB", idx, got)
	}
	// Row-major layout
	if g.Cells[1*3+2] != core.WallB {
		t.Error("cell should be stored at Row*W+Col")
	}
}

func TestGridOutOfBoundsPanics(t *testing.T) {
	g := core.NewGrid(5, 5)

	defer func() {
		if recover() == nil {
			t.Error("expected panic for out-of-bounds access")
		}
	}()
	g.At(core.Index{Col: 5, Row: 0})
}

func TestGridFindAndCount(t *testing.T) {
	g := core.NewGridFromRows([][]core.CellState{
		{core.Empty, core.Enemy},
		{core.Enemy, core.WallA},
	})

	found := g.Find(core.Enemy)
	if len(found) != 2 {
		t.Fatalf("expected 2 enemies, got %d", len(found))
	}
	if found[0] != (core.Index{Col: 1, Row: 0}) || found[1] != (core.Index{Col: 0, Row: 1}) {
		t.Errorf("Find should return row-major order, got %v", found)
	}
	if g.Count(core.WallA) != 1 {
		t.Errorf("Count(WallA) = %d, expected 1", g.Count(core.WallA))
	}
}

func TestGridClone(t *testing.T) {
	g := core.NewGrid(2, 2)
	g.Set(core.Index{Col: 0, Row: 0}, core.Player)

	clone := g.Clone()
	if !g.Equal(clone) {
		t.Error("clone should be equal to original")
	}

	g.Set(core.Index{Col: 0, Row: 0}, core.Empty)
	if clone.At(core.Index{Col: 0, Row: 0}) != core.Player {
		t.Error("clone should not be affected by original modification")
	}
}
