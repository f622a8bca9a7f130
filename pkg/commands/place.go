package commands

import (
	"context"
	"errors"

	base "github.com/n3wscott/cli-base/pkg/commands/options"
	"github.com/spf13/cobra"
	"tableflip.dev/scorta/pkg/commands/options"
	"tableflip.dev/scorta/pkg/runner/place"
)

func addPlace(topLevel *cobra.Command) {
	co := &options.PositionOptions{}
	var id string

	cmd := &cobra.Command{
		Use:   "place",
		Short: "Place a product on a grid cell",
		Example: `
scorta place 171dff69f8b99dca --row=2 --col=4
scorta place 171dff69f8b99dca --row=2 --col=4 --auto
scorta place 171dff69f8b99dca --shelf
`,
		Args: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			if len(args) != 1 {
				return errors.New("requires a product id")
			}
			id = args[0]
			return nil
		},
		ValidArgsFunction: func(_ *cobra.Command, _ []string, toComplete string) ([]string, cobra.ShellCompDirective) {
			return productCompletions(toComplete), cobra.ShellCompDirectiveNoFileComp
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmd.SilenceUsage = true
			if !co.Shelf {
				if !co.Given() {
					return errors.New("requires --row and --col, or --shelf")
				}
				if err := co.Validate(); err != nil {
					return err
				}
			}
			svc, err := loadService(cmd.Context())
			if err != nil {
				return err
			}

			s := place.Place{
				ID:      id,
				Row:     co.RowIndex(),
				Col:     co.ColIndex(),
				Shelve:  co.Shelf,
				Auto:    co.Auto,
				Service: svc,
			}
			err = s.Do(context.Background())
			return oo.HandleError(err)
		},
	}

	options.AddPositionArgs(cmd, co)
	options.AddAutoArg(cmd, co)
	options.AddShelfArg(cmd, co)

	base.AddOutputArg(cmd, oo)
	topLevel.AddCommand(cmd)
}
