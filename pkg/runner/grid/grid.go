// Package grid renders the shelf map on the terminal.
package grid

import (
	"context"
	"errors"
	"fmt"

	"tableflip.dev/scorta/pkg/app"
	"tableflip.dev/scorta/pkg/printers"
)

type Map struct {
	Legend bool

	Service *app.Service
}

func (n *Map) Do(ctx context.Context) error {
	if n.Service == nil {
		return errors.New("can not map, no service")
	}

	pp := printers.PrettyPrint{}
	fmt.Println("")
	pp.Title("Shelf map")
	pp.Grid(n.Service.Inventory.Grid())
	if n.Legend {
		pp.Legend()
	}
	return nil
}
