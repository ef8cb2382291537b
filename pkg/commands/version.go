package commands

import (
	"fmt"

	"github.com/spf13/cobra"
	goversion "go.hein.dev/go-version"
)

// Set with -ldflags "-X tableflip.dev/iyilik/pkg/commands.version=...".
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func addVersion(topLevel *cobra.Command, e *env) {
	short := false

	cmd := &cobra.Command{
		Use:   "version",
		Short: "Print the iyilik build",
		Long:  "Print the iyilik build as yaml, or as json with --json.",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			format := "yaml"
			if e.oo.JSON {
				format = "json"
			}
			_, _ = fmt.Fprint(cmd.OutOrStdout(), goversion.FuncWithOutput(short, version, commit, date, format))
		},
	}

	cmd.Flags().BoolVarP(&short, "short", "s", false, "Only the version number.")
	topLevel.AddCommand(cmd)
}
