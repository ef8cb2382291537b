// Package demo provides the runner that fills a journal with sample entries.
package demo

import (
	"context"
	"errors"
	"fmt"
	"math/rand"

	"tableflip.dev/iyilik/pkg/app"
	"tableflip.dev/iyilik/pkg/commands/options"
	"tableflip.dev/iyilik/pkg/entry"
	"tableflip.dev/iyilik/pkg/printers"
)

var wins = []string{
	"went for a walk",
	"drank enough water",
	"called a friend",
	"cooked dinner",
	"finished a chapter",
	"tidied the desk",
	"slept before midnight",
	"stretched for ten minutes",
}

// Demo saves one sample entry per day for the last Days days, oldest first,
// so the journal ends up newest first like a real one.
type Demo struct {
	Days int
	// Seed makes the sample repeatable.
	Seed    int64
	Output  *options.OutputOptions
	Service *app.Service
}

func (n *Demo) Do(ctx context.Context) error {
	if n.Service == nil {
		return errors.New("can not seed, no journal")
	}
	if n.Days < 1 {
		return fmt.Errorf("days must be at least 1, got %d", n.Days)
	}
	out := n.Output
	if out == nil {
		out = &options.OutputOptions{}
	}

	r := rand.New(rand.NewSource(n.Seed))
	now := n.Service.Journal.Now()
	saved := make([]entry.Entry, 0, n.Days)
	for i := n.Days - 1; i >= 0; i-- {
		at := now.AddDate(0, 0, -i)
		e := entry.New(at, r.Intn(entry.MoodCount), 1+r.Intn(10), wins[r.Intn(len(wins))], "")
		if err := n.Service.Journal.SaveEntry(ctx, e); err != nil {
			return err
		}
		saved = append([]entry.Entry{e}, saved...)
	}

	if out.JSON {
		return out.Print(saved)
	}
	pp := printers.PrettyPrint{Out: out.Writer()}
	pp.Entries(saved...)
	return nil
}
