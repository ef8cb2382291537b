package printers

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/gosuri/uitable"

	"tableflip.dev/iyilik/pkg/app"
	"tableflip.dev/iyilik/pkg/entry"
	"tableflip.dev/iyilik/pkg/stats"
	"tableflip.dev/iyilik/pkg/timeutil"
)

const barWidth = 20

// Progress prints the headline figures, the mood distribution and the recent
// energy series of r.
func (pp *PrettyPrint) Progress(r app.ProgressReport) {
	faint := color.New(color.Faint)

	if r.Window > 0 {
		pp.Title(fmt.Sprintf("Progress, last %s", timeutil.FormatWindow(r.Window)))
	} else {
		pp.Title("Progress")
	}

	tbl := uitable.New()
	tbl.Separator = "  "
	tbl.AddRow(faint.Sprint("entries"), r.Entries)
	tbl.AddRow(faint.Sprint("streak"), fmt.Sprintf("%d %s", r.Streak, plural(r.Streak, "day", "days")))
	tbl.AddRow(faint.Sprint("average energy"), fmt.Sprintf("%.1f/10", r.AverageEnergy))
	tbl.AddRow(faint.Sprint("average mood"), moodColor(r.AverageMood).Sprint(r.MoodLabel))
	tbl.AddRow(faint.Sprint("small wins"), r.TotalWins)
	tbl.RightAlign(0)
	_, _ = fmt.Fprintln(pp.out(), tbl)
	pp.NewLine()

	pp.Distribution(r.Distribution)
	pp.Energy(r.RecentEnergy)
}

// Distribution prints one bar per mood, scaled to the fullest bucket.
func (pp *PrettyPrint) Distribution(d stats.Distribution) {
	pp.Title("Moods")
	tbl := uitable.New()
	tbl.Separator = "  "
	for _, m := range entry.Moods() {
		c := moodColor(m)
		tbl.AddRow(c.Sprint(m), c.Sprint(bar(d.Ratio(m), barWidth)), d[m])
	}
	tbl.RightAlign(0)
	_, _ = fmt.Fprintln(pp.out(), tbl)
	pp.NewLine()
}

func levelColor(l stats.Level) *color.Color {
	switch l {
	case stats.Low:
		return color.New(color.FgRed)
	case stats.Medium:
		return color.New(color.FgYellow)
	default:
		return color.New(color.FgGreen)
	}
}

// Energy prints the recent energy series oldest first.
func (pp *PrettyPrint) Energy(points []stats.EnergyPoint) {
	pp.Title("Recent energy")
	if len(points) == 0 {
		pp.none()
		return
	}
	tbl := uitable.New()
	tbl.Separator = "  "
	for _, p := range points {
		c := levelColor(p.Level)
		tbl.AddRow(p.Date, c.Sprint(bar(float64(p.Energy)/10, barWidth/2)), fmt.Sprintf("%2d", p.Energy), c.Sprint(p.Level))
	}
	_, _ = fmt.Fprintln(pp.out(), tbl)
	pp.NewLine()
}
