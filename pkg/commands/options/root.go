package options

import (
	"github.com/spf13/cobra"
)

// RootOptions are the flags every command inherits.
type RootOptions struct {
	ConfigFile string
	Verbose    bool
	Ephemeral  bool
}

func AddRootArgs(cmd *cobra.Command, o *RootOptions) {
	cmd.PersistentFlags().StringVar(&o.ConfigFile, "config", "",
		"Config file (default is $HOME/.iyilik.yaml).")
	cmd.PersistentFlags().BoolVarP(&o.Verbose, "verbose", "v", false,
		"Log debug output to stderr.")
	cmd.PersistentFlags().BoolVar(&o.Ephemeral, "ephemeral", false,
		"Keep everything in memory for this run only.")
}
