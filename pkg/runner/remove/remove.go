package remove

import (
	"context"
	"errors"

	"github.com/fatih/color"
	"tableflip.dev/scorta/pkg/app"
)

type Remove struct {
	ID string

	Service *app.Service
}

func (n *Remove) Do(ctx context.Context) error {
	if n.Service == nil {
		return errors.New("can not remove, no service")
	}

	p, err := n.Service.Remove(ctx, n.ID)
	if err != nil {
		return err
	}

	f := color.New(color.Faint)
	_, _ = f.Printf("\nremoved %s\n\n", p.Name)
	return nil
}
