package porting

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/fatih/color"
	"tableflip.dev/scorta/pkg/app"
)

type Export struct {
	// Dir is where the export lands; empty means the working directory.
	// Path overrides the dated default filename entirely.
	Dir  string
	Path string

	Service *app.Service
}

func (n *Export) Do(ctx context.Context) error {
	if n.Service == nil {
		return errors.New("can not export, no service")
	}

	data, name, err := n.Service.Export()
	if err != nil {
		return err
	}

	target := n.Path
	if target == "" {
		target = filepath.Join(n.Dir, name)
	}
	if err := os.WriteFile(target, data, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", target, err)
	}

	f := color.New(color.Faint)
	_, _ = f.Printf("\nexported %d products to %s\n\n", n.Service.Inventory.Len(), target)
	return nil
}
