package app

import (
	"context"
	"errors"
	"reflect"
	"testing"

	"tableflip.dev/scorta/pkg/inventory"
	"tableflip.dev/scorta/pkg/product"
	"tableflip.dev/scorta/pkg/store"
	"tableflip.dev/scorta/pkg/transfer"
)

type memConfig struct{}

func (memConfig) BasePath() string             { return "" }
func (memConfig) GridBounds() inventory.Bounds { return inventory.Bounds{Rows: 5, Cols: 10} }
func (memConfig) UndoDepth() int               { return 20 }

// memPersistence records saves in memory so tests can observe the
// persistence boundary without touching disk.
type memPersistence struct {
	products     []*product.Product
	events       []inventory.Event
	history      [][]*product.Product
	productSaves int
	eventSaves   int
}

func (m *memPersistence) LoadProducts(context.Context) ([]*product.Product, error) {
	return product.CloneAll(m.products), nil
}

func (m *memPersistence) SaveProducts(_ context.Context, products []*product.Product) error {
	m.products = product.CloneAll(products)
	m.productSaves++
	return nil
}

func (m *memPersistence) LoadEvents(context.Context) ([]inventory.Event, error) {
	return m.events, nil
}

func (m *memPersistence) SaveEvents(_ context.Context, events []inventory.Event) error {
	m.events = events
	m.eventSaves++
	return nil
}

func (m *memPersistence) LoadHistory(context.Context) ([][]*product.Product, error) {
	return m.history, nil
}

func (m *memPersistence) SaveHistory(_ context.Context, stack [][]*product.Product) error {
	m.history = stack
	return nil
}

func (m *memPersistence) Watch(context.Context) (<-chan store.Event, error) {
	return nil, errors.New("not supported")
}

func newTestService() (*Service, *memPersistence) {
	mem := &memPersistence{}
	return New(memConfig{}, mem), mem
}

func TestAddPersists(t *testing.T) {
	s, mem := newTestService()
	ctx := context.Background()

	p, ok, err := s.Add(ctx, "Milk", "A1", "2025-01-01")
	if err != nil || !ok {
		t.Fatalf("unexpected add result: %v %v", ok, err)
	}
	if len(mem.products) != 1 || mem.products[0].ID != p.ID {
		t.Fatalf("expected the collection persisted, got %+v", mem.products)
	}
	if mem.eventSaves != 1 || len(mem.events) != 1 || mem.events[0].Action != inventory.ActionAdd {
		t.Fatalf("expected one add event persisted, got %+v", mem.events)
	}
	if !s.CanUndo() {
		t.Fatalf("expected undo history after a mutation")
	}
}

func TestAddBlankLeavesNoTrace(t *testing.T) {
	s, mem := newTestService()
	_, ok, err := s.Add(context.Background(), " ", "", "")
	if err != nil || ok {
		t.Fatalf("expected silent no-op, got ok=%v err=%v", ok, err)
	}
	if s.CanUndo() || s.Events.Len() != 0 || mem.productSaves != 0 {
		t.Fatalf("expected no snapshot, event, or save for a blank add")
	}
}

func TestUndoRestoresExactState(t *testing.T) {
	s, mem := newTestService()
	ctx := context.Background()

	p, _, err := s.Add(ctx, "Milk", "A1", "2025-01-01")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := s.Place(ctx, p.ID, 2, 3); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	before := product.CloneAll(s.Inventory.All())
	if _, err := s.Pick(ctx, p.ID); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	ok, err := s.Undo(ctx)
	if err != nil || !ok {
		t.Fatalf("expected undo to run: %v %v", ok, err)
	}
	if !reflect.DeepEqual(before, s.Inventory.All()) {
		t.Fatalf("expected undo to reproduce the pre-mutation collection")
	}
	if !reflect.DeepEqual(before, mem.products) {
		t.Fatalf("expected the restored state persisted")
	}
	got, _ := s.Inventory.Grid().ProductAt(2, 3)
	if got == nil || got.ID != p.ID {
		t.Fatalf("expected the grid index rebuilt after undo")
	}
}

func TestUndoEmptyHistory(t *testing.T) {
	s, _ := newTestService()
	ok, err := s.Undo(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if ok {
		t.Fatalf("expected false on an empty history")
	}
}

func TestFailedMutationLeavesNoUndoEntry(t *testing.T) {
	s, _ := newTestService()
	ctx := context.Background()

	if _, err := s.Edit(ctx, "missing", "x", "", ""); !errors.Is(err, inventory.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
	if s.CanUndo() {
		t.Fatalf("expected no undo entry for a failed mutation")
	}
}

func TestReturnCollisionIsARealMutation(t *testing.T) {
	s, mem := newTestService()
	ctx := context.Background()

	a, _, _ := s.Add(ctx, "A", "", "")
	b, _, _ := s.Add(ctx, "B", "", "")
	if _, err := s.Place(ctx, a.ID, 2, 3); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := s.Pick(ctx, a.ID); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := s.Place(ctx, b.ID, 2, 3); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	saves := mem.productSaves
	p, err := s.Return(ctx, a.ID)
	if !errors.Is(err, inventory.ErrCellOccupied) {
		t.Fatalf("expected ErrCellOccupied, got %v", err)
	}
	if p.Picked || p.Position != nil {
		t.Fatalf("expected shelf-only unpicked product, got %+v", p)
	}
	if mem.productSaves != saves+1 {
		t.Fatalf("expected the shelf-only outcome persisted")
	}

	// Undo reverses the failed return, back to the picked state.
	if ok, err := s.Undo(ctx); err != nil || !ok {
		t.Fatalf("expected undo: %v %v", ok, err)
	}
	got, _ := s.Inventory.Get(a.ID)
	if !got.Picked || got.Staged == nil {
		t.Fatalf("expected the picked state restored, got %+v", got)
	}
}

func TestImportReplacesAndUndoRestores(t *testing.T) {
	s, mem := newTestService()
	ctx := context.Background()

	s.Add(ctx, "Old", "", "")
	before := product.CloneAll(s.Inventory.All())

	n, err := s.Import(ctx, []byte(`{"items":[{"name":"X","row":0,"col":0},{"name":"Y"}]}`))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if n != 2 || s.Inventory.Len() != 2 {
		t.Fatalf("expected full overwrite with 2 products, got %d", s.Inventory.Len())
	}
	if _, ok := s.Inventory.Get(before[0].ID); ok {
		t.Fatalf("expected the old collection gone")
	}
	if len(mem.products) != 2 {
		t.Fatalf("expected the import persisted")
	}

	if ok, err := s.Undo(ctx); err != nil || !ok {
		t.Fatalf("expected undo of the import: %v %v", ok, err)
	}
	if !reflect.DeepEqual(before, s.Inventory.All()) {
		t.Fatalf("expected the pre-import collection restored")
	}
}

func TestImportFailureLeavesStoreUntouched(t *testing.T) {
	s, mem := newTestService()
	ctx := context.Background()

	s.Add(ctx, "Keep", "", "")
	saves := mem.productSaves

	for _, doc := range []string{`{"foo":[]}`, `not json`, `<html></html>`} {
		if _, err := s.Import(ctx, []byte(doc)); err == nil {
			t.Fatalf("expected an error for %q", doc)
		}
	}
	if s.Inventory.Len() != 1 || mem.productSaves != saves {
		t.Fatalf("expected the store untouched by failed imports")
	}
	if s.History.Len() != 1 {
		t.Fatalf("expected no snapshots from failed imports")
	}
}

func TestImportErrorKinds(t *testing.T) {
	s, _ := newTestService()
	ctx := context.Background()

	if _, err := s.Import(ctx, []byte(`{"foo":[]}`)); !errors.Is(err, transfer.ErrInvalidFormat) {
		t.Fatalf("expected ErrInvalidFormat, got %v", err)
	}
	if _, err := s.Import(ctx, []byte(`{{`)); !errors.Is(err, transfer.ErrParse) {
		t.Fatalf("expected ErrParse, got %v", err)
	}
}

func TestExportImportRoundTrip(t *testing.T) {
	s, _ := newTestService()
	ctx := context.Background()

	p, _, _ := s.Add(ctx, "Milk", "A1", "2025-01-01")
	if _, err := s.Place(ctx, p.ID, 1, 1); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	data, name, err := s.Export()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if name == "" {
		t.Fatalf("expected a dated filename")
	}

	if _, err := s.Import(ctx, data); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	got := s.Inventory.All()
	if len(got) != 1 {
		t.Fatalf("expected one product, got %d", len(got))
	}
	if got[0].ID != p.ID || got[0].Name != "Milk" || got[0].Lot != "A1" {
		t.Fatalf("expected fields preserved through the round trip, got %+v", got[0])
	}
	if got[0].Position == nil || got[0].Position.Row != 1 || got[0].Position.Col != 1 {
		t.Fatalf("expected the position preserved, got %+v", got[0].Position)
	}
}

func TestAddAtOccupiedCellRollsBack(t *testing.T) {
	s, _ := newTestService()
	ctx := context.Background()

	a, err := s.AddAt(ctx, "A", "", "", 0, 0)
	if err != nil || a == nil {
		t.Fatalf("unexpected AddAt result: %v %v", a, err)
	}
	undoDepth := s.History.Len()

	b, err := s.AddAt(ctx, "B", "", "", 0, 0)
	if !errors.Is(err, inventory.ErrCellOccupied) {
		t.Fatalf("expected ErrCellOccupied, got %v", err)
	}
	if b != nil {
		t.Fatalf("expected no product from a failed AddAt")
	}
	if s.Inventory.Len() != 1 {
		t.Fatalf("expected the failed add rolled back")
	}
	if s.History.Len() != undoDepth {
		t.Fatalf("expected no undo entry from the failed AddAt")
	}
}

func TestUndoSurvivesReload(t *testing.T) {
	mem := &memPersistence{}
	ctx := context.Background()

	s1 := New(memConfig{}, mem)
	p, _, err := s1.Add(ctx, "Milk", "", "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// A fresh process over the same store can still undo the add.
	s2 := New(memConfig{}, mem)
	if err := s2.Load(ctx); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !s2.CanUndo() {
		t.Fatalf("expected the undo history hydrated from the store")
	}
	if ok, err := s2.Undo(ctx); err != nil || !ok {
		t.Fatalf("expected undo after reload: %v %v", ok, err)
	}
	if _, ok := s2.Inventory.Get(p.ID); ok {
		t.Fatalf("expected the add undone")
	}
	if len(mem.products) != 0 {
		t.Fatalf("expected the undone state persisted")
	}
}
