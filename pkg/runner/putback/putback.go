package putback

import (
	"context"
	"errors"
	"fmt"

	"github.com/fatih/color"
	"tableflip.dev/scorta/pkg/app"
	"tableflip.dev/scorta/pkg/inventory"
	"tableflip.dev/scorta/pkg/printers"
)

type Return struct {
	ID string

	Service *app.Service
}

func (n *Return) Do(ctx context.Context) error {
	if n.Service == nil {
		return errors.New("can not return, no service")
	}

	pp := printers.PrettyPrint{}
	fmt.Println("")

	p, err := n.Service.Return(ctx, n.ID)
	if errors.Is(err, inventory.ErrCellOccupied) {
		// The product came back unplaced; tell the operator why.
		w := color.New(color.FgHiYellow)
		_, _ = w.Printf("%s: the product is back on the shelf without a cell\n\n", err)
		pp.Title("Inventory")
		pp.Products(p)
		return nil
	}
	if err != nil {
		return err
	}

	pp.Title("Inventory")
	pp.Products(p)
	return nil
}
