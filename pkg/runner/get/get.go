// Package get provides the runners that read entries back out of the journal.
package get

import (
	"context"
	"errors"
	"fmt"

	"tableflip.dev/iyilik/pkg/app"
	"tableflip.dev/iyilik/pkg/commands/options"
	"tableflip.dev/iyilik/pkg/entry"
	"tableflip.dev/iyilik/pkg/printers"
)

// Get lists every entry, or shows one when ID is set.
type Get struct {
	ID      string
	ShowID  bool
	Limit   int
	Output  *options.OutputOptions
	Service *app.Service
}

// ErrNotFound is returned by Get when ID matches no entry.
var ErrNotFound = errors.New("entry not found")

func (n *Get) Do(ctx context.Context) error {
	if n.Service == nil {
		return errors.New("can not get, no journal")
	}
	out := &options.OutputOptions{}
	if n.Output != nil {
		out = n.Output
	}
	pp := printers.PrettyPrint{ShowID: n.ShowID, Out: out.Writer()}

	if n.ID != "" {
		e, ok, err := n.Service.Entry(ctx, n.ID)
		if err != nil {
			return err
		}
		if !ok {
			return fmt.Errorf("%w: %s", ErrNotFound, n.ID)
		}
		if out.JSON {
			return out.Print(e)
		}
		pp.Entry(e)
		return nil
	}

	all, err := n.Service.Entries(ctx)
	if err != nil {
		return err
	}
	if n.Limit > 0 && len(all) > n.Limit {
		all = all[:n.Limit]
	}
	if out.JSON {
		return out.Print(all)
	}
	pp.Entries(all...)
	return nil
}

// Today prints today's entry, if there is one.
type Today struct {
	Output  *options.OutputOptions
	Service *app.Service
}

func (n *Today) Do(ctx context.Context) error {
	if n.Service == nil {
		return errors.New("can not get, no journal")
	}
	out := &options.OutputOptions{}
	if n.Output != nil {
		out = n.Output
	}

	e, ok, err := n.Service.Journal.TodaysEntry(ctx)
	if err != nil {
		return err
	}
	var today *entry.Entry
	if ok {
		today = &e
	}
	if out.JSON {
		return out.Print(map[string]interface{}{"today": today})
	}
	pp := printers.PrettyPrint{Out: out.Writer()}
	pp.Today(today)
	return nil
}
