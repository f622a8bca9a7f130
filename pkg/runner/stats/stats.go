package stats

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/fatih/color"
	"tableflip.dev/scorta/pkg/app"
	"tableflip.dev/scorta/pkg/printers"
	"tableflip.dev/scorta/pkg/timeutil"
)

type Stats struct {
	// Window limits the report to recent events, "1w2d" style. Empty
	// means the whole log.
	Window string
	TopN   int

	Service *app.Service
}

func (n *Stats) Do(ctx context.Context) error {
	if n.Service == nil {
		return errors.New("can not report, no service")
	}

	topN := n.TopN
	if topN <= 0 {
		topN = 5
	}

	pp := printers.PrettyPrint{}
	fmt.Println("")

	since := time.Time{}
	title := "Activity"
	if n.Window != "" {
		window, label, err := timeutil.ParseWindow(n.Window)
		if err != nil {
			return err
		}
		since = time.Now().Add(-window)
		title = fmt.Sprintf("Activity, last %s", label)
	}

	s := n.Service.Events.StatsSince(since, topN)
	pp.Title(title)
	if len(s.Counts) == 0 {
		f := color.New(color.Faint, color.Italic)
		_, _ = f.Println(" none\n")
		return nil
	}
	pp.Stats(s)
	return nil
}
