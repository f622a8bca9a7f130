package inventory

import (
	"testing"

	"tableflip.dev/scorta/pkg/product"
)

func pos(r, c int) *product.Position {
	return &product.Position{Row: r, Col: c}
}

func TestRebuildSkipsCorruptPositions(t *testing.T) {
	g := NewGrid(Bounds{Rows: 3, Cols: 3})
	g.Rebuild([]*product.Product{
		{ID: "ok", Position: pos(1, 1)},
		{ID: "oob-row", Position: pos(3, 0)},
		{ID: "oob-col", Position: pos(0, 3)},
		{ID: "negative", Position: pos(-1, 0)},
		{ID: "shelf"},
		{ID: "picked", Picked: true, Position: pos(2, 2)},
		nil,
	})
	if g.OccupiedCount() != 1 {
		t.Fatalf("expected only the valid product indexed, got %d", g.OccupiedCount())
	}
	if _, ok := g.ProductAt(1, 1); !ok {
		t.Fatalf("expected the valid product at its cell")
	}
	if _, ok := g.ProductAt(2, 2); ok {
		t.Fatalf("expected picked products to never be indexed")
	}
}

func TestRebuildFirstWriteWins(t *testing.T) {
	g := NewGrid(Bounds{Rows: 3, Cols: 3})
	g.Rebuild([]*product.Product{
		{ID: "first", Position: pos(0, 0)},
		{ID: "second", Position: pos(0, 0)},
	})
	p, ok := g.ProductAt(0, 0)
	if !ok || p.ID != "first" {
		t.Fatalf("expected the first claimant to keep the cell, got %v", p)
	}
	if g.OccupiedCount() != 1 {
		t.Fatalf("expected a single occupied cell")
	}
}

func TestRebuildIsDeterministic(t *testing.T) {
	g := NewGrid(Bounds{Rows: 2, Cols: 2})
	list := []*product.Product{
		{ID: "a", Position: pos(0, 0)},
		{ID: "b", Position: pos(1, 1)},
	}
	g.Rebuild(list)
	g.Rebuild(list)
	if g.OccupiedCount() != 2 {
		t.Fatalf("expected rebuild to be idempotent, got %d cells", g.OccupiedCount())
	}
}

func TestFreeCell(t *testing.T) {
	g := NewGrid(Bounds{Rows: 2, Cols: 2})
	g.Rebuild([]*product.Product{
		{ID: "a", Position: pos(0, 0)},
		{ID: "b", Position: pos(0, 1)},
	})
	free, ok := g.FreeCell()
	if !ok || free.Row != 1 || free.Col != 0 {
		t.Fatalf("expected first free cell in row-major order, got %v", free)
	}

	g.Rebuild([]*product.Product{
		{ID: "a", Position: pos(0, 0)},
		{ID: "b", Position: pos(0, 1)},
		{ID: "c", Position: pos(1, 0)},
		{ID: "d", Position: pos(1, 1)},
	})
	if _, ok := g.FreeCell(); ok {
		t.Fatalf("expected no free cell on a full grid")
	}
}
