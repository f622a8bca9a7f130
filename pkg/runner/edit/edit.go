package edit

import (
	"context"
	"errors"
	"fmt"

	"tableflip.dev/scorta/pkg/app"
	"tableflip.dev/scorta/pkg/inventory"
	"tableflip.dev/scorta/pkg/printers"
)

// Edit updates a product's free-text fields. Nil fields keep their
// current value, so the command can change one field at a time.
type Edit struct {
	ID     string
	Name   *string
	Lot    *string
	Expiry *string

	Service *app.Service
}

func (n *Edit) Do(ctx context.Context) error {
	if n.Service == nil {
		return errors.New("can not edit, no service")
	}

	cur, ok := n.Service.Inventory.Get(n.ID)
	if !ok {
		return inventory.ErrNotFound
	}

	name, lot, expiry := cur.Name, cur.Lot, cur.ExpiryText
	if n.Name != nil {
		name = *n.Name
	}
	if n.Lot != nil {
		lot = *n.Lot
	}
	if n.Expiry != nil {
		expiry = *n.Expiry
	}

	p, err := n.Service.Edit(ctx, n.ID, name, lot, expiry)
	if err != nil {
		return err
	}

	pp := printers.PrettyPrint{ShowID: true}
	fmt.Println("")
	pp.Title("Inventory")
	pp.Products(p)
	return nil
}
