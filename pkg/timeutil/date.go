package timeutil

import "time"

// LayoutDate is the calendar date format stored on entries.
const LayoutDate = "2006-01-02"

// FormatDate renders t as a device-local calendar date.
func FormatDate(t time.Time) string {
	return t.Local().Format(LayoutDate)
}

// ParseDate reads a YYYY-MM-DD string as local midnight.
func ParseDate(s string) (time.Time, error) {
	return time.ParseInLocation(LayoutDate, s, time.Local)
}

// DaysBetween counts whole calendar days from the date of from to the date of
// to, both taken in to's location. It is negative when from is later.
func DaysBetween(from, to time.Time) int {
	from = from.In(to.Location())
	a := time.Date(from.Year(), from.Month(), from.Day(), 0, 0, 0, 0, time.UTC)
	b := time.Date(to.Year(), to.Month(), to.Day(), 0, 0, 0, 0, time.UTC)
	return int(b.Sub(a).Hours() / 24)
}
