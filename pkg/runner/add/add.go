// Package add provides the runner that records a new journal entry.
package add

import (
	"context"
	"errors"
	"io"

	"tableflip.dev/iyilik/pkg/app"
	"tableflip.dev/iyilik/pkg/commands/options"
	"tableflip.dev/iyilik/pkg/printers"
)

type Add struct {
	Input   app.NewEntryInput
	ShowID  bool
	Output  *options.OutputOptions
	Service *app.Service
}

func (n *Add) Do(ctx context.Context) error {
	if n.Service == nil {
		return errors.New("can not add, no journal")
	}

	e, err := n.Service.NewEntry(ctx, n.Input)
	if err != nil {
		return err
	}

	if n.Output != nil && n.Output.JSON {
		return n.Output.Print(e)
	}
	pp := printers.PrettyPrint{ShowID: n.ShowID, Out: writer(n.Output)}
	pp.Entry(e)
	return nil
}

func writer(o *options.OutputOptions) io.Writer {
	if o == nil {
		return nil
	}
	return o.Writer()
}
