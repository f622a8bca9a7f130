package printers

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/gosuri/uitable"
	"tableflip.dev/scorta/pkg/inventory"
	"tableflip.dev/scorta/pkg/timeutil"
)

// Stats renders the event log aggregation: operation counts, the most
// added and removed products, and the average shelf dwell time.
func (pp *PrettyPrint) Stats(s inventory.Stats) {
	bold := color.New(color.Bold)
	faint := color.New(color.Faint)

	tbl := uitable.New()
	tbl.Separator = "  "
	tbl.AddRow(bold.Sprint("Operation"), bold.Sprint("Count"))
	for _, a := range []inventory.Action{
		inventory.ActionAdd,
		inventory.ActionEdit,
		inventory.ActionDelete,
		inventory.ActionMove,
		inventory.ActionPick,
		inventory.ActionReturn,
	} {
		if n, ok := s.Counts[a]; ok {
			tbl.AddRow(string(a), n)
		}
	}
	_, _ = fmt.Fprintln(color.Output, tbl)
	fmt.Println("")

	pp.topList("Most added", s.TopAdded)
	pp.topList("Most removed", s.TopRemoved)

	if s.DwellSamples > 0 {
		_, _ = faint.Printf("average time on the shelf: %s (%d products)\n\n",
			timeutil.FormatWindow(s.AverageDwell), s.DwellSamples)
	}
}

func (pp *PrettyPrint) topList(title string, names []inventory.NameCount) {
	if len(names) == 0 {
		return
	}
	bold := color.New(color.Bold)

	tbl := uitable.New()
	tbl.Separator = "  "
	tbl.AddRow(bold.Sprint(title), "")
	for _, nc := range names {
		tbl.AddRow(nc.Name, nc.Count)
	}
	_, _ = fmt.Fprintln(color.Output, tbl)
	fmt.Println("")
}
