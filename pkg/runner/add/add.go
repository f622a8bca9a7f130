package add

import (
	"context"
	"errors"
	"fmt"

	"tableflip.dev/scorta/pkg/app"
	"tableflip.dev/scorta/pkg/printers"
)

type Add struct {
	Name   string
	Lot    string
	Expiry string

	// Place drops the product straight into a cell instead of the shelf.
	Place bool
	Row   int
	Col   int

	Service *app.Service
}

func (n *Add) Do(ctx context.Context) error {
	if n.Service == nil {
		return errors.New("can not add, no service")
	}

	pp := printers.PrettyPrint{}
	fmt.Println("")

	if n.Place {
		p, err := n.Service.AddAt(ctx, n.Name, n.Lot, n.Expiry, n.Row, n.Col)
		if err != nil {
			return err
		}
		if p == nil {
			return nil
		}
		pp.Title("Inventory")
		pp.Products(p)
		return nil
	}

	p, ok, err := n.Service.Add(ctx, n.Name, n.Lot, n.Expiry)
	if err != nil {
		return err
	}
	if !ok {
		return nil
	}
	pp.Title("Inventory")
	pp.Products(p)
	return nil
}
