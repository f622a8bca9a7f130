package commands

import (
	"context"
	"errors"
	"strings"

	base "github.com/n3wscott/cli-base/pkg/commands/options"
	"github.com/spf13/cobra"
	"tableflip.dev/scorta/pkg/commands/options"
	"tableflip.dev/scorta/pkg/runner/add"
)

func addAdd(topLevel *cobra.Command) {
	po := &options.ProductOptions{}
	co := &options.PositionOptions{}

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add a product to the inventory",
		Example: `
scorta add "Whole milk" --lot=A113 --expiry=2026-03-01
scorta add Flour --row=2 --col=4
`,
		Args: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			if len(args) < 1 {
				return errors.New("requires a product name")
			}
			po.Name = strings.Join(args, " ")
			return nil
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmd.SilenceUsage = true
			if err := co.Validate(); err != nil {
				return err
			}
			svc, err := loadService(cmd.Context())
			if err != nil {
				return err
			}

			s := add.Add{
				Name:    po.Name,
				Lot:     po.Lot,
				Expiry:  po.Expiry,
				Place:   co.Given(),
				Row:     co.RowIndex(),
				Col:     co.ColIndex(),
				Service: svc,
			}
			err = s.Do(context.Background())
			return oo.HandleError(err)
		},
	}

	options.AddProductArgs(cmd, po)
	options.AddPositionArgs(cmd, co)

	base.AddOutputArg(cmd, oo)
	topLevel.AddCommand(cmd)
}
