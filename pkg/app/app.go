// Package app wires the state engine to persistence. Every mutation
// runs the same synchronous sequence: snapshot for undo, mutate the
// collection, append to the event log, rebuild the grid index, persist.
// UIs and CLIs share this service instead of touching the engine directly.
package app

import (
	"context"
	"errors"
	"time"

	"tableflip.dev/scorta/pkg/inventory"
	"tableflip.dev/scorta/pkg/product"
	"tableflip.dev/scorta/pkg/store"
	"tableflip.dev/scorta/pkg/transfer"
)

// Service provides high-level operations over the inventory.
type Service struct {
	Inventory   *inventory.Inventory
	History     *inventory.History
	Events      *inventory.Log
	Persistence store.Persistence
}

func New(cfg store.Config, p store.Persistence) *Service {
	return &Service{
		Inventory:   inventory.New(cfg.GridBounds()),
		History:     inventory.NewHistory(cfg.UndoDepth()),
		Events:      inventory.NewLog(),
		Persistence: p,
	}
}

// Load hydrates the engine from the store. Missing documents hydrate
// as empty collections.
func (s *Service) Load(ctx context.Context) error {
	if s.Persistence == nil {
		return errors.New("app: no persistence configured")
	}
	products, err := s.Persistence.LoadProducts(ctx)
	if err != nil {
		return err
	}
	s.Inventory.Replace(products)

	events, err := s.Persistence.LoadEvents(ctx)
	if err != nil {
		return err
	}
	s.Events.Replace(events)

	stack, err := s.Persistence.LoadHistory(ctx)
	if err != nil {
		return err
	}
	s.History.Restore(stack)
	return nil
}

// Add creates a product on the shelf. A fully blank add is a silent
// no-op: no product, no undo entry, no event.
func (s *Service) Add(ctx context.Context, name, lot, expiryText string) (*product.Product, bool, error) {
	s.History.Snapshot(s.Inventory.All())
	p, ok := s.Inventory.Add(name, lot, expiryText)
	if !ok {
		s.History.Drop()
		return nil, false, nil
	}
	s.Events.Append(inventory.ActionAdd, p)
	return p, true, s.persist(ctx, true)
}

// AddAt creates a product directly in a grid cell, the cell-editor
// flow. The add and the placement succeed or fail together.
func (s *Service) AddAt(ctx context.Context, name, lot, expiryText string, row, col int) (*product.Product, error) {
	s.History.Snapshot(s.Inventory.All())
	p, ok := s.Inventory.Add(name, lot, expiryText)
	if !ok {
		s.History.Drop()
		return nil, nil
	}
	if _, err := s.Inventory.SetPosition(p.ID, row, col); err != nil {
		restored, _ := s.History.Undo()
		s.Inventory.Replace(restored)
		return nil, err
	}
	s.Events.Append(inventory.ActionAdd, p)
	return p, s.persist(ctx, true)
}

func (s *Service) Edit(ctx context.Context, id, name, lot, expiryText string) (*product.Product, error) {
	s.History.Snapshot(s.Inventory.All())
	p, err := s.Inventory.Edit(id, name, lot, expiryText)
	if err != nil {
		s.History.Drop()
		return nil, err
	}
	s.Events.Append(inventory.ActionEdit, p)
	return p, s.persist(ctx, true)
}

func (s *Service) Remove(ctx context.Context, id string) (*product.Product, error) {
	s.History.Snapshot(s.Inventory.All())
	p, err := s.Inventory.Remove(id)
	if err != nil {
		s.History.Drop()
		return nil, err
	}
	s.Events.Append(inventory.ActionDelete, p)
	return p, s.persist(ctx, true)
}

// Place moves a product onto a grid cell. Collisions surface as
// inventory.ErrCellOccupied and leave everything untouched; resolving
// them (for example via Grid().FreeCell) is the caller's decision.
func (s *Service) Place(ctx context.Context, id string, row, col int) (*product.Product, error) {
	s.History.Snapshot(s.Inventory.All())
	p, err := s.Inventory.SetPosition(id, row, col)
	if err != nil {
		s.History.Drop()
		return nil, err
	}
	s.Events.Append(inventory.ActionMove, p)
	return p, s.persist(ctx, true)
}

// Shelve takes a placed product off the grid.
func (s *Service) Shelve(ctx context.Context, id string) (*product.Product, error) {
	s.History.Snapshot(s.Inventory.All())
	p, err := s.Inventory.ClearPosition(id)
	if err != nil {
		s.History.Drop()
		return nil, err
	}
	s.Events.Append(inventory.ActionMove, p)
	return p, s.persist(ctx, true)
}

func (s *Service) Pick(ctx context.Context, id string) (*product.Product, error) {
	s.History.Snapshot(s.Inventory.All())
	p, err := s.Inventory.Pick(id)
	if err != nil {
		s.History.Drop()
		return nil, err
	}
	s.Events.Append(inventory.ActionPick, p)
	return p, s.persist(ctx, true)
}

// Return brings a picked product back to its staged cell. When the
// cell was taken in the meantime the product still mutates to
// shelf-only, so the change is recorded and persisted and the
// ErrCellOccupied travels to the caller alongside it.
func (s *Service) Return(ctx context.Context, id string) (*product.Product, error) {
	s.History.Snapshot(s.Inventory.All())
	p, err := s.Inventory.Return(id)
	if err != nil && !errors.Is(err, inventory.ErrCellOccupied) {
		s.History.Drop()
		return nil, err
	}
	s.Events.Append(inventory.ActionReturn, p)
	if perr := s.persist(ctx, true); perr != nil {
		return p, perr
	}
	return p, err
}

// Undo pops the most recent snapshot and restores it wholesale. The
// false return means the history was empty; that is not an error.
func (s *Service) Undo(ctx context.Context) (bool, error) {
	restored, ok := s.History.Undo()
	if !ok {
		return false, nil
	}
	s.Inventory.Replace(restored)
	return true, s.persist(ctx, false)
}

func (s *Service) CanUndo() bool {
	return s.History.Len() > 0
}

// Import normalizes external JSON and replaces the whole collection.
// Input-level failures (ErrParse, ErrInvalidFormat, ErrHTMLInput)
// leave the store untouched; per-entry trouble degrades gracefully
// inside the normalizer.
func (s *Service) Import(ctx context.Context, data []byte) (int, error) {
	products, err := transfer.Normalize(data, s.Inventory.Grid().Bounds())
	if err != nil {
		return 0, err
	}
	s.History.Snapshot(s.Inventory.All())
	s.Inventory.Replace(products)
	return len(products), s.persist(ctx, true)
}

// Export renders the collection as a pretty JSON document plus the
// dated filename it should be saved under.
func (s *Service) Export() ([]byte, string, error) {
	data, err := transfer.Marshal(s.Inventory.All())
	if err != nil {
		return nil, "", err
	}
	return data, transfer.Filename(time.Now()), nil
}

// Stats aggregates the event log on demand.
func (s *Service) Stats(topN int) inventory.Stats {
	return s.Events.Stats(topN)
}

// persist writes the product document, the undo history, and, for
// mutations that touched the audit trail, the event document too.
func (s *Service) persist(ctx context.Context, eventsToo bool) error {
	if s.Persistence == nil {
		return nil
	}
	if err := s.Persistence.SaveProducts(ctx, s.Inventory.All()); err != nil {
		return err
	}
	if err := s.Persistence.SaveHistory(ctx, s.History.Stack()); err != nil {
		return err
	}
	if eventsToo {
		if err := s.Persistence.SaveEvents(ctx, s.Events.All()); err != nil {
			return err
		}
	}
	return nil
}
