package inventory

import (
	"fmt"
	"reflect"
	"testing"

	"tableflip.dev/scorta/pkg/product"
)

func TestUndoEmptyStack(t *testing.T) {
	h := NewHistory(3)
	if _, ok := h.Undo(); ok {
		t.Fatalf("expected undo on an empty stack to report false")
	}
}

func TestSnapshotIsDeepCopy(t *testing.T) {
	h := NewHistory(3)
	p := &product.Product{ID: "a", Name: "Milk", Position: pos(1, 1)}
	h.Snapshot([]*product.Product{p})

	p.Name = "Changed"
	p.Position.Row = 9

	restored, ok := h.Undo()
	if !ok {
		t.Fatalf("expected a snapshot")
	}
	if restored[0].Name != "Milk" || restored[0].Position.Row != 1 {
		t.Fatalf("expected snapshot isolated from later mutation, got %+v", restored[0])
	}
}

func TestUndoIsLIFO(t *testing.T) {
	h := NewHistory(5)
	for n := 0; n < 3; n++ {
		h.Snapshot([]*product.Product{{ID: fmt.Sprintf("state-%d", n)}})
	}
	for n := 2; n >= 0; n-- {
		restored, ok := h.Undo()
		if !ok || restored[0].ID != fmt.Sprintf("state-%d", n) {
			t.Fatalf("expected state-%d, got %v", n, restored)
		}
	}
	if _, ok := h.Undo(); ok {
		t.Fatalf("expected exhausted stack")
	}
}

func TestCapacityEvictsOldest(t *testing.T) {
	h := NewHistory(3)
	for n := 0; n < 5; n++ {
		h.Snapshot([]*product.Product{{ID: fmt.Sprintf("state-%d", n)}})
		if h.Len() > 3 {
			t.Fatalf("stack exceeded its capacity: %d", h.Len())
		}
	}
	// Newest three survive: 2, 3, 4.
	for n := 4; n >= 2; n-- {
		restored, ok := h.Undo()
		if !ok || restored[0].ID != fmt.Sprintf("state-%d", n) {
			t.Fatalf("expected state-%d to survive eviction, got %v", n, restored)
		}
	}
	if _, ok := h.Undo(); ok {
		t.Fatalf("expected oldest snapshots evicted")
	}
}

func TestDefaultDepth(t *testing.T) {
	h := NewHistory(0)
	if h.Depth() != DefaultUndoDepth {
		t.Fatalf("expected default depth %d, got %d", DefaultUndoDepth, h.Depth())
	}
}

func TestDrop(t *testing.T) {
	h := NewHistory(3)
	h.Snapshot([]*product.Product{{ID: "keep"}})
	h.Snapshot([]*product.Product{{ID: "drop"}})
	h.Drop()
	restored, ok := h.Undo()
	if !ok || restored[0].ID != "keep" {
		t.Fatalf("expected dropped snapshot to be gone, got %v", restored)
	}
	h.Drop() // empty stack is fine
}

func TestSnapshotRestoresFieldForField(t *testing.T) {
	h := NewHistory(3)
	inv := New(testBounds)
	a, _ := inv.Add("Milk", "A1", "2025-01-01")
	if _, err := inv.SetPosition(a.ID, 2, 3); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	before := product.CloneAll(inv.All())
	h.Snapshot(inv.All())
	if _, err := inv.Pick(a.ID); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	restored, ok := h.Undo()
	if !ok {
		t.Fatalf("expected a snapshot")
	}
	inv.Replace(restored)
	if !reflect.DeepEqual(before, inv.All()) {
		t.Fatalf("expected undo to reproduce the pre-mutation collection")
	}
	checkGridInvariant(t, inv)
}

func TestRestoreTrimsToDepth(t *testing.T) {
	h := NewHistory(2)
	stack := [][]*product.Product{
		{{ID: "a"}},
		{{ID: "b"}},
		{{ID: "c"}},
	}
	h.Restore(stack)
	if h.Len() != 2 {
		t.Fatalf("expected the stack trimmed to depth, got %d", h.Len())
	}
	top, ok := h.Undo()
	if !ok || top[0].ID != "c" {
		t.Fatalf("expected the newest snapshot kept, got %+v", top)
	}

	// Restore copies; mutating the source must not leak in.
	stack[1][0].ID = "mutated"
	next, _ := h.Undo()
	if next[0].ID != "b" {
		t.Fatalf("expected a detached copy, got %+v", next)
	}
}
