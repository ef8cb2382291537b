package options

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

// OutputOptions
type OutputOptions struct {
	JSON bool
	// Out defaults to color.Output.
	Out io.Writer
}

func AddOutputArg(cmd *cobra.Command, po *OutputOptions) {
	cmd.PersistentFlags().BoolVar(&po.JSON, "json", false,
		"Output as JSON.")
}

func (o *OutputOptions) Writer() io.Writer {
	if o.Out == nil {
		return color.Output
	}
	return o.Out
}

// Print writes v as indented JSON.
func (o *OutputOptions) Print(v interface{}) error {
	b, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(o.Writer(), string(b))
	return err
}

// HandleError reports err as {"error": "..."} in JSON mode and returns it
// unchanged otherwise.
func (o *OutputOptions) HandleError(err error) error {
	if o.JSON && err != nil {
		out := map[string]string{
			"error": err.Error(),
		}
		b, merr := json.Marshal(out)
		if merr != nil {
			return merr
		}
		_, _ = fmt.Fprintln(o.Writer(), string(b))
		return errReported{err}
	}
	return err
}

// errReported marks an error already written as JSON so main only sets the
// exit code.
type errReported struct{ error }

func (e errReported) Unwrap() error { return e.error }

// Reported is true when HandleError already printed err.
func Reported(err error) bool {
	_, ok := err.(errReported)
	return ok
}

// Quiet marks err as already reported to the user.
func Quiet(err error) error {
	if err == nil {
		return nil
	}
	return errReported{err}
}
