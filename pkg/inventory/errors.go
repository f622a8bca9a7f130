package inventory

import "errors"

var (
	// ErrNotFound is returned when an operation names an unknown product id.
	ErrNotFound = errors.New("inventory: product not found")

	// ErrPicked is returned when editing or moving a product that is
	// currently picked for staging. Picked products are locked until returned.
	ErrPicked = errors.New("inventory: product is picked")

	// ErrNotPicked is returned when returning a product that is not picked.
	ErrNotPicked = errors.New("inventory: product is not picked")

	// ErrOutOfBounds is returned for positions outside the configured grid.
	ErrOutOfBounds = errors.New("inventory: position outside the grid")

	// ErrCellOccupied is returned when a different product already holds the
	// target cell. The caller resolves the collision; cells are never
	// silently overwritten.
	ErrCellOccupied = errors.New("inventory: cell already occupied")
)
