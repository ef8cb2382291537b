package commands

import (
	"github.com/spf13/cobra"

	"tableflip.dev/iyilik/pkg/commands/options"
	"tableflip.dev/iyilik/pkg/runner/dashboard"
)

func addDashboard(topLevel *cobra.Command, e *env) {
	io := &options.IDOptions{}
	recent := 3

	cmd := &cobra.Command{
		Use:     "dashboard",
		Aliases: []string{"home"},
		Short:   "Greeting, today's entry and your latest entries",
		Example: `
iyilik dashboard
iyilik dashboard --recent 0
`,
		Args:        cobra.NoArgs,
		Annotations: gated,
		RunE: func(cmd *cobra.Command, _ []string) error {
			svc, err := e.Service()
			if err != nil {
				return e.oo.HandleError(err)
			}
			s := dashboard.Dashboard{
				Recent:  recent,
				ShowID:  io.ShowID,
				Output:  e.oo,
				Service: svc,
			}
			return e.oo.HandleError(s.Do(cmd.Context()))
		},
	}

	cmd.Flags().IntVar(&recent, "recent", recent, "Also list this many of the newest entries.")
	options.AddShowIDArgs(cmd, io)
	topLevel.AddCommand(cmd)
}
