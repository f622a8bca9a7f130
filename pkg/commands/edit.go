package commands

import (
	"context"
	"errors"

	base "github.com/n3wscott/cli-base/pkg/commands/options"
	"github.com/spf13/cobra"
	"tableflip.dev/scorta/pkg/commands/options"
	"tableflip.dev/scorta/pkg/runner/edit"
)

func addEdit(topLevel *cobra.Command) {
	po := &options.ProductOptions{}
	var id string

	cmd := &cobra.Command{
		Use:   "edit",
		Short: "Edit a product's fields",
		Example: `
scorta edit 171dff69f8b99dca --name="Skim milk" --expiry=2026-06-01
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
			svc, err := loadService(cmd.Context())
			if err != nil {
				return err
			}

			s := edit.Edit{
				ID:      id,
				Service: svc,
			}
			// Only fields the operator set get touched.
			if cmd.Flags().Changed("name") {
				s.Name = &po.Name
			}
			if cmd.Flags().Changed("lot") {
				s.Lot = &po.Lot
			}
			if cmd.Flags().Changed("expiry") {
				s.Expiry = &po.Expiry
			}
			err = s.Do(context.Background())
			return oo.HandleError(err)
		},
	}

	options.AddNameArg(cmd, po)
	options.AddProductArgs(cmd, po)

	base.AddOutputArg(cmd, oo)
	topLevel.AddCommand(cmd)
}
