package commands

import (
	"github.com/spf13/cobra"

	"tableflip.dev/iyilik/pkg/app"
	"tableflip.dev/iyilik/pkg/commands/options"
	"tableflip.dev/iyilik/pkg/runner/session"
)

func addLogin(topLevel *cobra.Command, e *env) {
	lo := &options.LoginOptions{}

	cmd := &cobra.Command{
		Use:   "login",
		Short: "Start using the journal under a profile name",
		Long: `Save a profile name on this device. The password is checked for length
and then forgotten; it is never stored.`,
		Example: `
iyilik login --username deniz --password abc
`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmd.SilenceUsage = true
			svc, err := e.Service()
			if err != nil {
				return e.oo.HandleError(err)
			}
			s := session.Login{
				Credentials: app.Credentials{Username: lo.Username, Password: lo.Password},
				Output:      e.oo,
				Service:     svc,
			}
			return e.oo.HandleError(s.Do(cmd.Context()))
		},
	}

	options.AddLoginArgs(cmd, lo)
	topLevel.AddCommand(cmd)
}

func addLogout(topLevel *cobra.Command, e *env) {
	cmd := &cobra.Command{
		Use:         "logout",
		Short:       "Forget the profile name; entries are kept",
		Args:        cobra.NoArgs,
		Annotations: gated,
		RunE: func(cmd *cobra.Command, _ []string) error {
			svc, err := e.Service()
			if err != nil {
				return e.oo.HandleError(err)
			}
			s := session.Logout{
				Output:  e.oo,
				Service: svc,
			}
			return e.oo.HandleError(s.Do(cmd.Context()))
		},
	}

	topLevel.AddCommand(cmd)
}

func addWhoAmI(topLevel *cobra.Command, e *env) {
	cmd := &cobra.Command{
		Use:   "whoami",
		Short: "Print the logged in profile; fails when nobody is logged in",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmd.SilenceUsage = true
			svc, err := e.Service()
			if err != nil {
				return e.oo.HandleError(err)
			}
			s := session.WhoAmI{
				Output:  e.oo,
				Service: svc,
			}
			err = s.Do(cmd.Context())
			if e.oo.JSON {
				// The session was already printed.
				return options.Quiet(err)
			}
			return err
		},
	}

	topLevel.AddCommand(cmd)
}
