package undo

import (
	"context"
	"errors"
	"fmt"

	"github.com/fatih/color"
	"tableflip.dev/scorta/pkg/app"
	"tableflip.dev/scorta/pkg/printers"
)

type Undo struct {
	Service *app.Service
}

func (n *Undo) Do(ctx context.Context) error {
	if n.Service == nil {
		return errors.New("can not undo, no service")
	}

	ok, err := n.Service.Undo(ctx)
	if err != nil {
		return err
	}
	if !ok {
		f := color.New(color.Faint, color.Italic)
		_, _ = f.Println("\nnothing to undo")
		return nil
	}

	pp := printers.PrettyPrint{}
	fmt.Println("")
	pp.TitleWithCount("Inventory", n.Service.Inventory.Len())
	pp.Products(n.Service.Inventory.All()...)
	return nil
}
