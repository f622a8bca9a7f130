// Package porting moves inventory documents in and out of the store as
// JSON files.
package porting

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/fatih/color"
	"tableflip.dev/scorta/pkg/app"
	"tableflip.dev/scorta/pkg/printers"
)

type Import struct {
	Path string

	Service *app.Service
}

func (n *Import) Do(ctx context.Context) error {
	if n.Service == nil {
		return errors.New("can not import, no service")
	}
	if n.Path == "" {
		return errors.New("can not import, no file given")
	}

	data, err := os.ReadFile(n.Path)
	if err != nil {
		return fmt.Errorf("read %s: %w", n.Path, err)
	}

	count, err := n.Service.Import(ctx, data)
	if err != nil {
		return err
	}

	f := color.New(color.Faint)
	_, _ = f.Printf("\nimported %d products from %s\n", count, n.Path)

	pp := printers.PrettyPrint{}
	fmt.Println("")
	pp.TitleWithCount("Inventory", n.Service.Inventory.Len())
	pp.Products(n.Service.Inventory.All()...)
	return nil
}
