package inventory

import (
	"tableflip.dev/scorta/pkg/product"
)

// Bounds is the fixed grid size, read once from configuration at startup.
type Bounds struct {
	Rows int
	Cols int
}

func (b Bounds) Contains(row, col int) bool {
	return row >= 0 && col >= 0 && row < b.Rows && col < b.Cols
}

// Grid is the derived cell → product index. It is rebuilt wholesale from
// the product collection after every mutation and holds no authoritative
// state of its own: it can be reconstructed from the product list alone.
type Grid struct {
	bounds Bounds
	cells  map[product.Position]*product.Product
}

func NewGrid(bounds Bounds) *Grid {
	return &Grid{
		bounds: bounds,
		cells:  make(map[product.Position]*product.Product),
	}
}

func (g *Grid) Bounds() Bounds {
	return g.bounds
}

// Rebuild scans the collection and produces a fresh index. Picked,
// unplaced, and out-of-bounds products are skipped, and the first
// product claiming a cell keeps it. Corrupt positions never fail the
// rebuild; they simply stay unindexed.
func (g *Grid) Rebuild(products []*product.Product) {
	cells := make(map[product.Position]*product.Product, len(products))
	for _, p := range products {
		if p == nil || p.Picked || p.Position == nil {
			continue
		}
		pos := *p.Position
		if !g.bounds.Contains(pos.Row, pos.Col) {
			continue
		}
		if _, taken := cells[pos]; taken {
			continue
		}
		cells[pos] = p
	}
	g.cells = cells
}

func (g *Grid) ProductAt(row, col int) (*product.Product, bool) {
	p, ok := g.cells[product.Position{Row: row, Col: col}]
	return p, ok
}

func (g *Grid) OccupiedCount() int {
	return len(g.cells)
}

// FreeCell returns the first unoccupied cell in row-major order, for
// callers that need to resolve a placement collision.
func (g *Grid) FreeCell() (product.Position, bool) {
	for r := 0; r < g.bounds.Rows; r++ {
		for c := 0; c < g.bounds.Cols; c++ {
			pos := product.Position{Row: r, Col: c}
			if _, taken := g.cells[pos]; !taken {
				return pos, true
			}
		}
	}
	return product.Position{}, false
}
