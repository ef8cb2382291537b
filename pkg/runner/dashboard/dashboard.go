// Package dashboard provides the runner for the landing view.
package dashboard

import (
	"context"
	"errors"

	"tableflip.dev/iyilik/pkg/app"
	"tableflip.dev/iyilik/pkg/commands/options"
	"tableflip.dev/iyilik/pkg/printers"
	"tableflip.dev/iyilik/pkg/runner/get"
)

type Dashboard struct {
	// Recent also lists this many of the newest entries. Zero skips the list.
	Recent  int
	ShowID  bool
	Output  *options.OutputOptions
	Service *app.Service
}

func (n *Dashboard) Do(ctx context.Context) error {
	if n.Service == nil {
		return errors.New("can not show dashboard, no journal")
	}
	out := n.Output
	if out == nil {
		out = &options.OutputOptions{}
	}

	d, err := n.Service.Dashboard(ctx)
	if err != nil {
		return err
	}
	if out.JSON {
		return out.Print(d)
	}

	pp := printers.PrettyPrint{ShowID: n.ShowID, Out: out.Writer()}
	pp.Dashboard(d)

	if n.Recent > 0 && d.Entries > 0 {
		g := get.Get{
			ShowID:  n.ShowID,
			Limit:   n.Recent,
			Output:  out,
			Service: n.Service,
		}
		if err := g.Do(ctx); err != nil {
			return err
		}
	}
	return nil
}
