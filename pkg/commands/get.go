package commands

import (
	"context"
	"strings"

	base "github.com/n3wscott/cli-base/pkg/commands/options"
	"github.com/spf13/cobra"
	"tableflip.dev/scorta/pkg/commands/options"
	"tableflip.dev/scorta/pkg/glyph"
	"tableflip.dev/scorta/pkg/runner/get"
)

func addGet(topLevel *cobra.Command) {
	fo := &options.FilterOptions{}

	cmd := &cobra.Command{
		Use:   "get",
		Short: "List products",
		Example: `
scorta get
scorta get milk
scorta get --status=expired
scorta get --unplaced
`,
		Args: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			fo.Search = strings.Join(args, " ")
			return nil
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmd.SilenceUsage = true
			status, err := glyph.StatusForAlias(fo.Status)
			if err != nil {
				return err
			}
			svc, err := loadService(cmd.Context())
			if err != nil {
				return err
			}

			s := get.Get{
				ShowID:   fo.ShowID,
				Search:   fo.Search,
				Status:   status,
				Unplaced: fo.Unplaced,
				Picked:   fo.Picked,
				Service:  svc,
			}
			err = s.Do(context.Background())
			return oo.HandleError(err)
		},
	}

	options.AddFilterArgs(cmd, fo)

	base.AddOutputArg(cmd, oo)
	topLevel.AddCommand(cmd)
}
