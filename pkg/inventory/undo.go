package inventory

import (
	"tableflip.dev/scorta/pkg/product"
)

// DefaultUndoDepth bounds the undo stack when no depth is configured.
const DefaultUndoDepth = 20

// History is the bounded undo stack. Snapshots are full deep copies of
// the product collection taken before each mutation. There is no redo:
// popped snapshots are gone.
type History struct {
	depth int
	stack [][]*product.Product
}

func NewHistory(depth int) *History {
	if depth <= 0 {
		depth = DefaultUndoDepth
	}
	return &History{depth: depth}
}

// Snapshot pushes a deep copy. Pushing past the configured depth evicts
// the oldest snapshot, never the newest.
func (h *History) Snapshot(products []*product.Product) {
	h.stack = append(h.stack, product.CloneAll(products))
	if len(h.stack) > h.depth {
		h.stack = h.stack[1:]
	}
}

// Undo pops the most recent snapshot. The second return is false when
// the stack is empty; that is not an error.
func (h *History) Undo() ([]*product.Product, bool) {
	if len(h.stack) == 0 {
		return nil, false
	}
	top := h.stack[len(h.stack)-1]
	h.stack = h.stack[:len(h.stack)-1]
	return top, true
}

// Drop discards the newest snapshot. Used when the mutation it was
// taken for turned out to be a no-op or failed validation, so undo
// history only records real changes.
func (h *History) Drop() {
	if len(h.stack) > 0 {
		h.stack = h.stack[:len(h.stack)-1]
	}
}

// Stack returns a deep copy of the snapshots, oldest first, for
// persistence.
func (h *History) Stack() [][]*product.Product {
	out := make([][]*product.Product, len(h.stack))
	for i, s := range h.stack {
		out[i] = product.CloneAll(s)
	}
	return out
}

// Restore replaces the stack with snapshots loaded from persistence,
// keeping only the newest when there are more than the depth allows.
func (h *History) Restore(stack [][]*product.Product) {
	if len(stack) > h.depth {
		stack = stack[len(stack)-h.depth:]
	}
	h.stack = make([][]*product.Product, len(stack))
	for i, s := range stack {
		h.stack[i] = product.CloneAll(s)
	}
}

func (h *History) Len() int {
	return len(h.stack)
}

func (h *History) Depth() int {
	return h.depth
}
