package commands

import (
	"context"

	base "github.com/n3wscott/cli-base/pkg/commands/options"
	"github.com/spf13/cobra"
	"tableflip.dev/scorta/pkg/runner/grid"
)

func addMap(topLevel *cobra.Command) {
	var legend bool

	cmd := &cobra.Command{
		Use:   "map",
		Short: "Show the shelf grid",
		Example: `
scorta map
scorta map --legend
`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmd.SilenceUsage = true
			svc, err := loadService(cmd.Context())
			if err != nil {
				return err
			}

			s := grid.Map{
				Legend:  legend,
				Service: svc,
			}
			err = s.Do(context.Background())
			return oo.HandleError(err)
		},
	}

	cmd.Flags().BoolVar(&legend, "legend", false,
		"Show the expiry mark key below the grid.")

	base.AddOutputArg(cmd, oo)
	topLevel.AddCommand(cmd)
}
