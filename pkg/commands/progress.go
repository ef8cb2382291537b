package commands

import (
	"time"

	"github.com/spf13/cobra"

	"tableflip.dev/iyilik/pkg/commands/options"
	"tableflip.dev/iyilik/pkg/runner/calendar"
	"tableflip.dev/iyilik/pkg/runner/progress"
)

func addProgress(topLevel *cobra.Command, e *env) {
	wo := &options.WindowOptions{}

	cmd := &cobra.Command{
		Use:     "progress",
		Aliases: []string{"stats"},
		Short:   "Streak, averages, mood distribution and recent energy",
		Example: `
iyilik progress
iyilik progress --window 2w
`,
		Args:        cobra.NoArgs,
		Annotations: gated,
		RunE: func(cmd *cobra.Command, _ []string) error {
			window, err := wo.Duration()
			if err != nil {
				return e.oo.HandleError(err)
			}
			cmd.SilenceUsage = true
			svc, err := e.Service()
			if err != nil {
				return e.oo.HandleError(err)
			}
			s := progress.Progress{
				Window:  window,
				Output:  e.oo,
				Service: svc,
				Log:     e.log,
			}
			return e.oo.HandleError(s.Do(cmd.Context()))
		},
	}

	options.AddWindowArgs(cmd, wo)
	topLevel.AddCommand(cmd)
}

func addWatch(topLevel *cobra.Command, e *env) {
	wo := &options.WindowOptions{}

	cmd := &cobra.Command{
		Use:   "watch",
		Short: "Show progress and reprint it whenever the journal changes",
		Long: `Show progress and keep running, reprinting whenever another iyilik
process adds or deletes an entry. Needs the diskv backend. Stop with Ctrl-C.`,
		Args:        cobra.NoArgs,
		Annotations: gated,
		RunE: func(cmd *cobra.Command, _ []string) error {
			window, err := wo.Duration()
			if err != nil {
				return e.oo.HandleError(err)
			}
			cmd.SilenceUsage = true
			svc, err := e.Service()
			if err != nil {
				return e.oo.HandleError(err)
			}
			s := progress.Progress{
				Window:  window,
				Watch:   true,
				Store:   e.kv,
				Output:  e.oo,
				Service: svc,
				Log:     e.log,
			}
			return e.oo.HandleError(s.Do(cmd.Context()))
		},
	}

	options.AddWindowArgs(cmd, wo)
	topLevel.AddCommand(cmd)
}

func addCalendar(topLevel *cobra.Command, e *env) {
	mo := &options.MonthOptions{}

	cmd := &cobra.Command{
		Use:     "calendar",
		Aliases: []string{"cal"},
		Short:   "Month calendar with logged days tinted by mood",
		Example: `
iyilik calendar
iyilik calendar --month 2026-9 -n 3
`,
		Args:        cobra.NoArgs,
		Annotations: gated,
		RunE: func(cmd *cobra.Command, _ []string) error {
			month, err := mo.GetMonth(time.Now())
			if err != nil {
				return e.oo.HandleError(err)
			}
			cmd.SilenceUsage = true
			svc, err := e.Service()
			if err != nil {
				return e.oo.HandleError(err)
			}
			s := calendar.Calendar{
				Month:   month,
				Months:  mo.Months,
				Output:  e.oo,
				Service: svc,
			}
			return e.oo.HandleError(s.Do(cmd.Context()))
		},
	}

	options.AddMonthArgs(cmd, mo)
	topLevel.AddCommand(cmd)
}
