package printers

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/fatih/color"
	"github.com/gosuri/uitable"

	"tableflip.dev/iyilik/pkg/app"
	"tableflip.dev/iyilik/pkg/entry"
	"tableflip.dev/iyilik/pkg/identity"
)

type PrettyPrint struct {
	ShowID bool
	// Out defaults to color.Output.
	Out io.Writer
}

func (pp *PrettyPrint) out() io.Writer {
	if pp.Out == nil {
		return color.Output
	}
	return pp.Out
}

func (pp *PrettyPrint) NewLine() {
	_, _ = fmt.Fprintln(pp.out())
}

func (pp *PrettyPrint) Title(title string) {
	t := color.New(color.Bold, color.Underline)
	_, _ = t.Fprintln(pp.out(), title)
}

func (pp *PrettyPrint) TitleWithCount(title string, count int) {
	t := color.New(color.Bold, color.Underline)
	c := color.New(color.Faint)

	_, _ = t.Fprint(pp.out(), title)
	_, _ = c.Fprintf(pp.out(), " - %d", count)

	switch count {
	case 1:
		_, _ = c.Fprintln(pp.out(), " entry")
	default:
		_, _ = c.Fprintln(pp.out(), " entries")
	}
}

func (pp *PrettyPrint) none() {
	f := color.New(color.Faint, color.Italic)
	_, _ = f.Fprint(pp.out(), " none\n\n")
}

// moodColor tints a mood from red (very bad) to green (great).
func moodColor(m entry.Mood) *color.Color {
	switch m {
	case entry.VeryBad:
		return color.New(color.FgRed)
	case entry.Bad:
		return color.New(color.FgHiRed)
	case entry.Neutral:
		return color.New(color.FgYellow)
	case entry.Good:
		return color.New(color.FgHiGreen)
	case entry.Great:
		return color.New(color.FgGreen, color.Bold)
	default:
		return color.New(color.Faint)
	}
}

// Entries prints a newest-first table of entries.
func (pp *PrettyPrint) Entries(entries ...entry.Entry) {
	pp.TitleWithCount("Entries", len(entries))
	if len(entries) == 0 {
		pp.none()
		return
	}

	bold := color.New(color.Bold)
	y := color.New(color.FgHiYellow, color.Italic, color.Faint)

	tbl := uitable.New()
	tbl.Separator = "  "
	tbl.MaxColWidth = 60
	header := []interface{}{bold.Sprint("Date"), bold.Sprint("Mood"), bold.Sprint("Energy"), bold.Sprint("Small win")}
	if pp.ShowID {
		header = append([]interface{}{bold.Sprint("ID")}, header...)
	}
	tbl.AddRow(header...)
	for _, e := range entries {
		date, mood, energy, win := e.Row()
		row := []interface{}{date, moodColor(e.Mood()).Sprint(mood), energy, win}
		if pp.ShowID {
			row = append([]interface{}{y.Sprint(e.ID)}, row...)
		}
		tbl.AddRow(row...)
	}
	_, _ = fmt.Fprintln(pp.out(), tbl)
	pp.NewLine()
}

// Entry prints every field of one entry.
func (pp *PrettyPrint) Entry(e entry.Entry) {
	faint := color.New(color.Faint)

	pp.Title(e.Date)
	tbl := uitable.New()
	tbl.Separator = "  "
	tbl.Wrap = true
	tbl.MaxColWidth = 60
	tbl.AddRow(faint.Sprint("id"), e.ID)
	tbl.AddRow(faint.Sprint("mood"), moodColor(e.Mood()).Sprint(e.Mood()))
	tbl.AddRow(faint.Sprint("energy"), fmt.Sprintf("%d/10", e.EnergyLevel))
	tbl.AddRow(faint.Sprint("small win"), e.SmallWin)
	if e.Notes != "" {
		tbl.AddRow(faint.Sprint("notes"), e.Notes)
	}
	tbl.AddRow(faint.Sprint("created"), e.Created().Local().Format(time.RFC1123))
	tbl.RightAlign(0)
	_, _ = fmt.Fprintln(pp.out(), tbl)
	pp.NewLine()
}

// Today prints today's entry, or a nudge to write one.
func (pp *PrettyPrint) Today(e *entry.Entry) {
	pp.Title("Today")
	if e == nil {
		f := color.New(color.Faint, color.Italic)
		_, _ = f.Fprint(pp.out(), " no entry yet, add one with `iyilik add`\n\n")
		return
	}
	_, _ = fmt.Fprintf(pp.out(), " %s  %d/10  %s\n\n", moodColor(e.Mood()).Sprint(e.Mood()), e.EnergyLevel, e.SmallWin)
}

func (pp *PrettyPrint) Dashboard(d app.Dashboard) {
	b := color.New(color.Bold)
	_, _ = b.Fprintf(pp.out(), "%s, %s\n\n", d.Greeting, d.Session.Username)
	pp.Today(d.Today)
	c := color.New(color.Faint)
	_, _ = c.Fprintf(pp.out(), "%d %s logged\n\n", d.Entries, plural(d.Entries, "entry", "entries"))
}

func (pp *PrettyPrint) Session(s identity.Session) {
	if !s.Identified() {
		f := color.New(color.Faint, color.Italic)
		_, _ = f.Fprintln(pp.out(), "not logged in")
		return
	}
	_, _ = fmt.Fprintln(pp.out(), s.Username)
}

func plural(n int, one, many string) string {
	if n == 1 {
		return one
	}
	return many
}

func bar(ratio float64, width int) string {
	n := int(ratio*float64(width) + 0.5)
	if n < 0 {
		n = 0
	}
	if n > width {
		n = width
	}
	return strings.Repeat("█", n) + strings.Repeat("░", width-n)
}
