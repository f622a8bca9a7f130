package place

import (
	"context"
	"errors"
	"fmt"

	"tableflip.dev/scorta/pkg/app"
	"tableflip.dev/scorta/pkg/inventory"
	"tableflip.dev/scorta/pkg/printers"
)

type Place struct {
	ID  string
	Row int
	Col int

	// Shelve takes the product off the grid instead of placing it.
	Shelve bool
	// Auto picks the first free cell when the requested one is taken.
	Auto bool

	Service *app.Service
}

func (n *Place) Do(ctx context.Context) error {
	if n.Service == nil {
		return errors.New("can not place, no service")
	}

	pp := printers.PrettyPrint{}
	fmt.Println("")

	if n.Shelve {
		p, err := n.Service.Shelve(ctx, n.ID)
		if err != nil {
			return err
		}
		pp.Title("Inventory")
		pp.Products(p)
		return nil
	}

	p, err := n.Service.Place(ctx, n.ID, n.Row, n.Col)
	if errors.Is(err, inventory.ErrCellOccupied) && n.Auto {
		cell, ok := n.Service.Inventory.Grid().FreeCell()
		if !ok {
			return fmt.Errorf("the grid is full: %w", err)
		}
		p, err = n.Service.Place(ctx, n.ID, cell.Row, cell.Col)
	}
	if err != nil {
		return err
	}

	pp.Title("Inventory")
	pp.Products(p)
	pp.Grid(n.Service.Inventory.Grid())
	return nil
}
