package product

import (
	"crypto/md5"
	"crypto/rand"
	"fmt"
	"strings"
	"time"
)

// Position is a single cell on the storage grid. Row and Col are
// zero-based internally; printers add one for display.
type Position struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

func (p Position) String() string {
	return fmt.Sprintf("R%d C%d", p.Row+1, p.Col+1)
}

// Product is one tracked item. A product either sits on the shelf
// (Position nil) or occupies exactly one grid cell. While it is picked
// for staging the cell is released and remembered in Staged so the item
// can go back where it came from.
type Product struct {
	ID         string    `json:"id"`
	Name       string    `json:"name"`
	Lot        string    `json:"lot,omitempty"`
	ExpiryText string    `json:"expiryText,omitempty"`
	DateAdded  Timestamp `json:"dateAdded"`
	Picked     bool      `json:"inPrelievo,omitempty"`
	Position   *Position `json:"position,omitempty"`
	Staged     *Position `json:"staged,omitempty"`
}

func New(name, lot, expiryText string) *Product {
	return &Product{
		ID:         NewID(),
		Name:       strings.TrimSpace(name),
		Lot:        strings.TrimSpace(lot),
		ExpiryText: strings.TrimSpace(expiryText),
		DateAdded:  Timestamp{Time: time.Now()},
	}
}

// NewID produces a 16 hex character identifier.
func NewID() string {
	b := make([]byte, 8)
	if _, err := rand.Read(b); err != nil {
		sum := md5.Sum([]byte(time.Now().Format(time.RFC3339Nano)))
		return fmt.Sprintf("%x", sum[:8])
	}
	return fmt.Sprintf("%x", b)
}

// Blank reports whether the product carries no identifying field at all.
// Blank products are never stored.
func (p *Product) Blank() bool {
	return strings.TrimSpace(p.Name) == "" &&
		strings.TrimSpace(p.Lot) == "" &&
		strings.TrimSpace(p.ExpiryText) == ""
}

// Matches reports whether the query is a case-insensitive substring of
// the name, lot, or expiry text. The empty query matches everything.
func (p *Product) Matches(query string) bool {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return true
	}
	return strings.Contains(strings.ToLower(p.Name), q) ||
		strings.Contains(strings.ToLower(p.Lot), q) ||
		strings.Contains(strings.ToLower(p.ExpiryText), q)
}

// Clone returns a deep copy, detached from the original's positions.
func (p *Product) Clone() *Product {
	if p == nil {
		return nil
	}
	c := *p
	if p.Position != nil {
		pos := *p.Position
		c.Position = &pos
	}
	if p.Staged != nil {
		pos := *p.Staged
		c.Staged = &pos
	}
	return &c
}

// CloneAll deep-copies a whole collection, preserving order.
func CloneAll(products []*Product) []*Product {
	out := make([]*Product, len(products))
	for i, p := range products {
		out[i] = p.Clone()
	}
	return out
}

func (p *Product) String() string {
	label := p.Name
	if label == "" {
		label = p.Lot
	}
	if label == "" {
		label = p.ExpiryText
	}
	switch {
	case p.Picked:
		return fmt.Sprintf("%s (picked)", label)
	case p.Position != nil:
		return fmt.Sprintf("%s (%s)", label, p.Position)
	default:
		return fmt.Sprintf("%s (shelf)", label)
	}
}
