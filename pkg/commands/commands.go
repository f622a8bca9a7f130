package commands

import (
	"context"
	"strconv"

	"github.com/spf13/cobra"

	base "github.com/n3wscott/cli-base/pkg/commands/options"
	"tableflip.dev/scorta/pkg/app"
	"tableflip.dev/scorta/pkg/store"
)

var (
	oo = &base.OutputOptions{}
)

func New() *cobra.Command {

	cmd := &cobra.Command{
		Use:   "scorta",
		Short: base.Wrap80("Track shop stock on a shelf grid from the command line."),
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	AddCommands(cmd)
	return cmd
}

func AddCommands(topLevel *cobra.Command) {
	addAdd(topLevel)
	addGet(topLevel)
	addEdit(topLevel)
	addRemove(topLevel)
	addPlace(topLevel)
	addPick(topLevel)
	addReturn(topLevel)
	addUndo(topLevel)
	addImport(topLevel)
	addExport(topLevel)
	addStats(topLevel)
	addMap(topLevel)
	addUI(topLevel)
	addVersion(topLevel)
	addCompletions(topLevel)
}

// loadService builds the service every command shares: config, the
// diskv-backed store, and the engine hydrated from it.
func loadService(ctx context.Context) (*app.Service, error) {
	cfg, err := store.LoadConfig()
	if err != nil {
		return nil, err
	}
	p, err := store.Load(cfg)
	if err != nil {
		return nil, err
	}
	svc := app.New(cfg, p)
	if err := svc.Load(ctx); err != nil {
		return nil, err
	}
	return svc, nil
}

func productCompletions(toComplete string) []string {
	svc, err := loadService(context.Background())
	if err != nil {
		return nil
	}
	var out []string
	for _, p := range svc.Inventory.Filter(toComplete) {
		out = append(out, p.ID+"\t"+strconv.Quote(p.Name))
	}
	return out
}
