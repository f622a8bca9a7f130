// Package inventory is the in-memory state engine: the ordered product
// collection, its derived grid index, the bounded undo history, and the
// append-only event log. The engine mutates synchronously and never
// talks to persistence; pkg/app orchestrates that boundary.
package inventory

import (
	"strings"

	"tableflip.dev/scorta/pkg/product"
)

// Inventory owns the product collection, most-recent-first. Every
// mutation rebuilds the grid index before returning, so the invariant
// "each placed product is indexed exactly once, no cell shared" holds
// at every operation boundary.
type Inventory struct {
	products []*product.Product
	grid     *Grid
}

func New(bounds Bounds) *Inventory {
	return &Inventory{grid: NewGrid(bounds)}
}

func (i *Inventory) Grid() *Grid {
	return i.grid
}

func (i *Inventory) Len() int {
	return len(i.products)
}

// All returns the collection in order. Callers treat the result as
// read-only; mutations go through the named operations.
func (i *Inventory) All() []*product.Product {
	out := make([]*product.Product, len(i.products))
	copy(out, i.products)
	return out
}

func (i *Inventory) Get(id string) (*product.Product, bool) {
	for _, p := range i.products {
		if p.ID == id {
			return p, true
		}
	}
	return nil, false
}

// Filter returns the products whose name, lot, or expiry text contains
// the query, preserving collection order.
func (i *Inventory) Filter(query string) []*product.Product {
	out := make([]*product.Product, 0, len(i.products))
	for _, p := range i.products {
		if p.Matches(query) {
			out = append(out, p)
		}
	}
	return out
}

// Add creates a product and prepends it to the collection. When name,
// lot, and expiry text are all blank the call is a deliberate silent
// no-op, not an error, and the second return is false.
func (i *Inventory) Add(name, lot, expiryText string) (*product.Product, bool) {
	p := product.New(name, lot, expiryText)
	if p.Blank() {
		return nil, false
	}
	i.products = append([]*product.Product{p}, i.products...)
	i.grid.Rebuild(i.products)
	return p, true
}

// Edit updates the free-text fields. Picked products are edit-locked
// until returned.
func (i *Inventory) Edit(id, name, lot, expiryText string) (*product.Product, error) {
	p, ok := i.Get(id)
	if !ok {
		return nil, ErrNotFound
	}
	if p.Picked {
		return nil, ErrPicked
	}
	p.Name = strings.TrimSpace(name)
	p.Lot = strings.TrimSpace(lot)
	p.ExpiryText = strings.TrimSpace(expiryText)
	i.grid.Rebuild(i.products)
	return p, nil
}

// Remove deletes the product unconditionally, releasing any cell it held.
func (i *Inventory) Remove(id string) (*product.Product, error) {
	for idx, p := range i.products {
		if p.ID == id {
			i.products = append(i.products[:idx], i.products[idx+1:]...)
			i.grid.Rebuild(i.products)
			return p, nil
		}
	}
	return nil, ErrNotFound
}

// SetPosition places the product on a grid cell. The cell must be in
// bounds and free (re-placing a product on its own cell is allowed).
func (i *Inventory) SetPosition(id string, row, col int) (*product.Product, error) {
	p, ok := i.Get(id)
	if !ok {
		return nil, ErrNotFound
	}
	if p.Picked {
		return nil, ErrPicked
	}
	if !i.grid.Bounds().Contains(row, col) {
		return nil, ErrOutOfBounds
	}
	if occupant, taken := i.grid.ProductAt(row, col); taken && occupant.ID != id {
		return nil, ErrCellOccupied
	}
	p.Position = &product.Position{Row: row, Col: col}
	i.grid.Rebuild(i.products)
	return p, nil
}

// ClearPosition moves a placed product back to the shelf.
func (i *Inventory) ClearPosition(id string) (*product.Product, error) {
	p, ok := i.Get(id)
	if !ok {
		return nil, ErrNotFound
	}
	if p.Picked {
		return nil, ErrPicked
	}
	p.Position = nil
	i.grid.Rebuild(i.products)
	return p, nil
}

// Pick takes the product off the grid for staging. Its cell is stashed
// in Staged so Return can put it back.
func (i *Inventory) Pick(id string) (*product.Product, error) {
	p, ok := i.Get(id)
	if !ok {
		return nil, ErrNotFound
	}
	if p.Picked {
		return nil, ErrPicked
	}
	p.Staged = p.Position
	p.Position = nil
	p.Picked = true
	i.grid.Rebuild(i.products)
	return p, nil
}

// Return brings a picked product back. The stashed cell is restored
// only if it is still free; otherwise the product ends up shelf-only
// and the caller gets ErrCellOccupied. It is never placed elsewhere.
func (i *Inventory) Return(id string) (*product.Product, error) {
	p, ok := i.Get(id)
	if !ok {
		return nil, ErrNotFound
	}
	if !p.Picked {
		return nil, ErrNotPicked
	}
	p.Picked = false
	target := p.Staged
	p.Staged = nil
	if target == nil || !i.grid.Bounds().Contains(target.Row, target.Col) {
		p.Position = nil
		i.grid.Rebuild(i.products)
		return p, nil
	}
	if occupant, taken := i.grid.ProductAt(target.Row, target.Col); taken && occupant.ID != id {
		p.Position = nil
		i.grid.Rebuild(i.products)
		return p, ErrCellOccupied
	}
	p.Position = target
	i.grid.Rebuild(i.products)
	return p, nil
}

// Replace swaps the whole collection, used by undo and import-overwrite.
func (i *Inventory) Replace(products []*product.Product) {
	i.products = make([]*product.Product, len(products))
	copy(i.products, products)
	i.grid.Rebuild(i.products)
}
