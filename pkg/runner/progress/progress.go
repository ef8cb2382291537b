// Package progress provides the runner for the progress summary and its live
// watch mode.
package progress

import (
	"context"
	"errors"
	"time"

	"github.com/fatih/color"
	"go.uber.org/zap"

	"tableflip.dev/iyilik/pkg/app"
	"tableflip.dev/iyilik/pkg/commands/options"
	"tableflip.dev/iyilik/pkg/identity"
	"tableflip.dev/iyilik/pkg/journal"
	"tableflip.dev/iyilik/pkg/printers"
	"tableflip.dev/iyilik/pkg/store"
)

type Progress struct {
	Window time.Duration
	// Watch keeps running and reprints whenever Store reports a change to the
	// entries. Store must then implement store.Watcher.
	Watch   bool
	Store   store.Store
	Output  *options.OutputOptions
	Service *app.Service
	Log     *zap.Logger
}

func (n *Progress) Do(ctx context.Context) error {
	if n.Service == nil {
		return errors.New("can not show progress, no journal")
	}
	if n.Output == nil {
		n.Output = &options.OutputOptions{}
	}
	if n.Log == nil {
		n.Log = zap.NewNop()
	}

	if err := n.render(ctx); err != nil {
		return err
	}
	if !n.Watch {
		return nil
	}

	events, err := store.Watch(ctx, n.Store)
	if err != nil {
		return err
	}
	n.Log.Debug("watching for changes")
	for {
		select {
		case <-ctx.Done():
			return nil
		case ev, ok := <-events:
			if !ok {
				return nil
			}
			n.Log.Debug("store changed", zap.String("key", ev.Key))
			switch ev.Key {
			case journal.EntriesKey:
				if !n.Output.JSON {
					faint := color.New(color.Faint)
					_, _ = faint.Fprintf(n.Output.Writer(), "updated %s\n\n", time.Now().Format(time.Kitchen))
				}
				if err := n.render(ctx); err != nil {
					return err
				}
			case identity.UserKey:
				if _, err := n.Service.RequireSession(ctx); err != nil {
					return err
				}
			}
		}
	}
}

func (n *Progress) render(ctx context.Context) error {
	r, err := n.Service.Progress(ctx, n.Window)
	if err != nil {
		return err
	}
	if n.Output.JSON {
		return n.Output.Print(r)
	}
	pp := printers.PrettyPrint{Out: n.Output.Writer()}
	pp.Progress(r)
	return nil
}
