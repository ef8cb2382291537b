package options

import (
	"github.com/spf13/cobra"
)

// LoginOptions
type LoginOptions struct {
	Username string
	Password string
}

func AddLoginArgs(cmd *cobra.Command, o *LoginOptions) {
	cmd.Flags().StringVarP(&o.Username, "username", "u", "",
		"Profile name to log in as.")
	cmd.Flags().StringVarP(&o.Password, "password", "p", "",
		"Password, at least 3 characters. Checked, never stored.")
}
