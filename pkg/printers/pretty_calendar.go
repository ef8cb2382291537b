package printers

import (
	"fmt"
	"strings"
	"time"

	"github.com/fatih/color"

	"tableflip.dev/iyilik/pkg/entry"
	"tableflip.dev/iyilik/pkg/timeutil"
)

const width = len("11 12 13 14 15 16 17") // an example week

// Calendar prints the month containing then, tinting each logged day with the
// mood of its newest entry.
func (pp *PrettyPrint) Calendar(then time.Time, entries ...entry.Entry) {
	moods := make(map[int]entry.Mood)
	for _, e := range entries {
		d, err := timeutil.ParseDate(e.Date)
		if err != nil || d.Year() != then.Year() || d.Month() != then.Month() {
			continue
		}
		if _, ok := moods[d.Day()]; !ok {
			moods[d.Day()] = e.Mood()
		}
	}
	pp.PrintMonth(then, moods)
}

func (pp *PrettyPrint) PrintMonth(then time.Time, moods map[int]entry.Mood) {
	out := pp.out()
	d := StartDay(then)
	tf := color.New(color.FgWhite, color.Italic)

	m := fmt.Sprintf("%s %d", then.Month(), then.Year())
	mid := (width - len(m)) / 2
	_, _ = tf.Fprintf(out, "%s%s\n", strings.Repeat(" ", mid), m)

	// Pad out the start of the month.
	for i := time.Sunday; i < d; i++ {
		_, _ = fmt.Fprint(out, "   ")
	}

	blank := color.New(color.Faint, color.FgWhite)
	for i := 1; i <= DaysIn(then); i++ {
		if mood, ok := moods[i]; ok {
			_, _ = moodColor(mood).Add(color.Bold).Fprintf(out, "%2d ", i)
		} else {
			_, _ = blank.Fprintf(out, "%2d ", i)
		}

		d++
		if d > time.Saturday {
			d = time.Sunday
			_, _ = fmt.Fprint(out, "\n")
		}
	}
	_, _ = fmt.Fprint(out, "\n\n")
}

func PreviousMonth(then time.Time) time.Time {
	return time.Date(then.Year(), then.Month()-1, 1, 0, 0, 0, 0, then.Location())
}

func DaysIn(then time.Time) int {
	return time.Date(then.Year(), then.Month()+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

func StartDay(then time.Time) time.Weekday {
	return time.Date(then.Year(), then.Month(), 1, 0, 0, 0, 0, time.UTC).Weekday()
}
