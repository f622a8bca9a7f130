package commands

import (
	"context"
	"errors"

	base "github.com/n3wscott/cli-base/pkg/commands/options"
	"github.com/spf13/cobra"
	"tableflip.dev/scorta/pkg/runner/porting"
)

func addImport(topLevel *cobra.Command) {
	var path string

	cmd := &cobra.Command{
		Use:   "import",
		Short: "Replace the inventory with products from a JSON file",
		Long: base.Wrap80("Reads a JSON export (or a compatible document from " +
			"another tool), normalizes every entry, and replaces the whole " +
			"inventory with the result. The previous state stays one undo away."),
		Example: `
scorta import scorta-export-2026-08-30.json
`,
		Args: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			if len(args) != 1 {
				return errors.New("requires a file to import")
			}
			path = args[0]
			return nil
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmd.SilenceUsage = true
			svc, err := loadService(cmd.Context())
			if err != nil {
				return err
			}

			s := porting.Import{
				Path:    path,
				Service: svc,
			}
			err = s.Do(context.Background())
			return oo.HandleError(err)
		},
	}

	base.AddOutputArg(cmd, oo)
	topLevel.AddCommand(cmd)
}
