package commands

import (
	"time"

	"github.com/spf13/cobra"

	"tableflip.dev/iyilik/pkg/runner/demo"
)

func addDemo(topLevel *cobra.Command, e *env) {
	days := 14
	var seed int64

	cmd := &cobra.Command{
		Use:   "demo",
		Short: "Fill the journal with sample entries, one per day",
		Long: `Fill the journal with sample entries, one per day ending today. Combine with
--ephemeral to try the progress view without touching your journal:

iyilik --ephemeral demo`,
		Args:        cobra.NoArgs,
		Annotations: gated,
		Hidden:      true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmd.SilenceUsage = true
			svc, err := e.Service()
			if err != nil {
				return e.oo.HandleError(err)
			}
			if !cmd.Flags().Changed("seed") {
				seed = time.Now().UnixNano()
			}
			s := demo.Demo{
				Days:    days,
				Seed:    seed,
				Output:  e.oo,
				Service: svc,
			}
			return e.oo.HandleError(s.Do(cmd.Context()))
		},
	}

	cmd.Flags().IntVar(&days, "days", days, "How many days of entries to create.")
	cmd.Flags().Int64Var(&seed, "seed", 0, "Seed for repeatable samples.")
	topLevel.AddCommand(cmd)
}
