package options

import (
	"time"

	"github.com/spf13/cobra"

	"tableflip.dev/iyilik/pkg/timeutil"
)

// WindowOptions
type WindowOptions struct {
	Window string
}

func AddWindowArgs(cmd *cobra.Command, o *WindowOptions) {
	cmd.Flags().StringVar(&o.Window, "window", "",
		`Only count entries from this far back, example: --window=1w or --window=10d.`)
}

func (o *WindowOptions) Duration() (time.Duration, error) {
	return timeutil.ParseWindow(o.Window)
}
