// Package key provides CLI helpers to display the mood and energy legend.
package key

import (
	"context"
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/gosuri/uitable"

	"tableflip.dev/iyilik/pkg/entry"
	"tableflip.dev/iyilik/pkg/stats"
)

// Key prints the mood scale and the energy bands.
type Key struct {
	Out io.Writer
}

func (k *Key) out() io.Writer {
	if k.Out == nil {
		return color.Output
	}
	return k.Out
}

// Do renders both legends.
func (k *Key) Do(ctx context.Context) error {
	_, _ = fmt.Fprintln(k.out(), "")
	k.Moods(ctx)
	_, _ = fmt.Fprintln(k.out(), "")
	k.Energy(ctx)
	_, _ = fmt.Fprintln(k.out(), "")
	return nil
}

// Moods renders the mood scale, usable with `add --mood`.
func (k *Key) Moods(_ context.Context) {
	bold := color.New(color.Bold)

	tbl := uitable.New()
	tbl.Separator = "  "
	tbl.AddRow(bold.Sprint("Mood"), bold.Sprint("Meaning"))
	for _, m := range entry.Moods() {
		tbl.AddRow(int(m), m.String())
	}
	tbl.RightAlign(0)

	_, _ = fmt.Fprintln(k.out(), tbl)
}

// Energy renders the energy level bands used by the progress view.
func (k *Key) Energy(_ context.Context) {
	bold := color.New(color.Bold)

	tbl := uitable.New()
	tbl.Separator = "  "
	tbl.AddRow(bold.Sprint("Energy"), bold.Sprint("Level"))
	start := 1
	for energy := 1; energy <= 10; energy++ {
		l := stats.EnergyLevelOf(energy)
		if energy < 10 && stats.EnergyLevelOf(energy+1) == l {
			continue
		}
		tbl.AddRow(fmt.Sprintf("%d-%d", start, energy), l.String())
		start = energy + 1
	}
	tbl.RightAlign(0)

	_, _ = fmt.Fprintln(k.out(), tbl)
}
