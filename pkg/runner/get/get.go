package get

import (
	"context"
	"errors"
	"fmt"

	"tableflip.dev/scorta/pkg/app"
	"tableflip.dev/scorta/pkg/glyph"
	"tableflip.dev/scorta/pkg/printers"
	"tableflip.dev/scorta/pkg/product"
)

type Get struct {
	ShowID   bool
	Search   string
	Status   glyph.Status
	Unplaced bool
	Picked   bool

	Service *app.Service
}

func (n *Get) Do(ctx context.Context) error {
	if n.Service == nil {
		return errors.New("can not get, no service")
	}

	pp := printers.PrettyPrint{ShowID: n.ShowID}
	fmt.Println("")

	all := n.Service.Inventory.Filter(n.Search)
	all = n.filtered(all)

	pp.TitleWithCount("Inventory", len(all))
	pp.Products(all...)
	return nil
}

func (n *Get) filtered(all []*product.Product) []*product.Product {
	c := make([]*product.Product, 0, len(all))
	for _, p := range all {
		if n.Unplaced && (p.Position != nil || p.Picked) {
			continue
		}
		if n.Picked && !p.Picked {
			continue
		}
		if n.Status != glyph.Any && product.Classify(p.ExpiryText).Status != n.Status {
			continue
		}
		c = append(c, p)
	}
	return c
}
