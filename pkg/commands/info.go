package commands

import (
	"github.com/spf13/cobra"

	"tableflip.dev/iyilik/pkg/runner/info"
)

func addInfo(topLevel *cobra.Command, e *env) {
	cmd := &cobra.Command{
		Use:   "info",
		Short: "Details about the config and where entries are stored.",
		Example: `
iyilik info
`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmd.SilenceUsage = true
			cfg, err := e.config()
			if err != nil {
				return e.oo.HandleError(err)
			}
			svc, err := e.Service()
			if err != nil {
				return e.oo.HandleError(err)
			}
			s := info.Info{
				Config:  cfg,
				Output:  e.oo,
				Service: svc,
			}
			return e.oo.HandleError(s.Do(cmd.Context()))
		},
	}

	topLevel.AddCommand(cmd)
}
