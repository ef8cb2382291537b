// Package calendar provides the runner that prints logged days month by month.
package calendar

import (
	"context"
	"errors"
	"time"

	"tableflip.dev/iyilik/pkg/app"
	"tableflip.dev/iyilik/pkg/commands/options"
	"tableflip.dev/iyilik/pkg/printers"
	"tableflip.dev/iyilik/pkg/timeutil"
)

// Calendar prints Months months ending with Month.
type Calendar struct {
	Month   time.Time
	Months  int
	Output  *options.OutputOptions
	Service *app.Service
}

type day struct {
	Date string `json:"date"`
	Mood string `json:"mood"`
}

func (n *Calendar) Do(ctx context.Context) error {
	if n.Service == nil {
		return errors.New("can not get, no journal")
	}
	out := n.Output
	if out == nil {
		out = &options.OutputOptions{}
	}
	months := n.Months
	if months < 1 {
		months = 1
	}

	all, err := n.Service.Entries(ctx)
	if err != nil {
		return err
	}

	first := n.Month
	for i := 1; i < months; i++ {
		first = printers.PreviousMonth(first)
	}

	if out.JSON {
		end := first.AddDate(0, months, 0)
		seen := make(map[string]bool)
		days := make([]day, 0)
		for _, e := range all {
			d, err := timeutil.ParseDate(e.Date)
			if err != nil || d.Before(first) || !d.Before(end) || seen[e.Date] {
				continue
			}
			seen[e.Date] = true
			days = append(days, day{Date: e.Date, Mood: e.Mood().String()})
		}
		return out.Print(days)
	}

	pp := printers.PrettyPrint{Out: out.Writer()}
	for m := first; months > 0; months-- {
		pp.Calendar(m, all...)
		m = m.AddDate(0, 1, 0)
	}
	return nil
}
