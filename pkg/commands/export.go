package commands

import (
	"context"

	base "github.com/n3wscott/cli-base/pkg/commands/options"
	"github.com/spf13/cobra"
	"tableflip.dev/scorta/pkg/runner/porting"
)

func addExport(topLevel *cobra.Command) {
	var dir string
	var path string

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Write the inventory to a dated JSON file",
		Example: `
scorta export
scorta export --dir=/tmp
scorta export --file=backup.json
`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmd.SilenceUsage = true
			svc, err := loadService(cmd.Context())
			if err != nil {
				return err
			}

			s := porting.Export{
				Dir:     dir,
				Path:    path,
				Service: svc,
			}
			err = s.Do(context.Background())
			return oo.HandleError(err)
		},
	}

	cmd.Flags().StringVar(&dir, "dir", "",
		"Directory for the dated export file.")
	cmd.Flags().StringVar(&path, "file", "",
		"Exact file to write, overriding the dated name.")

	base.AddOutputArg(cmd, oo)
	topLevel.AddCommand(cmd)
}
