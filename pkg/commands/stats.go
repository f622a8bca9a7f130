package commands

import (
	"context"

	base "github.com/n3wscott/cli-base/pkg/commands/options"
	"github.com/spf13/cobra"
	"tableflip.dev/scorta/pkg/runner/stats"
)

func addStats(topLevel *cobra.Command) {
	var window string
	var topN int

	cmd := &cobra.Command{
		Use:   "stats",
		Short: "Report inventory activity from the event log",
		Example: `
scorta stats
scorta stats --window=1w
scorta stats --top=10
`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmd.SilenceUsage = true
			svc, err := loadService(cmd.Context())
			if err != nil {
				return err
			}

			s := stats.Stats{
				Window:  window,
				TopN:    topN,
				Service: svc,
			}
			err = s.Do(context.Background())
			return oo.HandleError(err)
		},
	}

	cmd.Flags().StringVar(&window, "window", "",
		`Limit the report to recent events, example: --window="1w2d".`)
	cmd.Flags().IntVar(&topN, "top", 5,
		"How many names to show in the most added and removed lists.")

	base.AddOutputArg(cmd, oo)
	topLevel.AddCommand(cmd)
}
