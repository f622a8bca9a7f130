package pick

import (
	"context"
	"errors"
	"fmt"

	"tableflip.dev/scorta/pkg/app"
	"tableflip.dev/scorta/pkg/printers"
)

type Pick struct {
	ID string

	Service *app.Service
}

func (n *Pick) Do(ctx context.Context) error {
	if n.Service == nil {
		return errors.New("can not pick, no service")
	}

	p, err := n.Service.Pick(ctx, n.ID)
	if err != nil {
		return err
	}

	pp := printers.PrettyPrint{}
	fmt.Println("")
	pp.Title("Picked")
	pp.Products(p)
	return nil
}
