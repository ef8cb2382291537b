// Package stats derives progress figures from a snapshot of journal entries.
//
// Every function is pure: it never mutates its input, performs no I/O and
// returns a defined value for an empty list.
package stats

import (
	"math"
	"sort"
	"time"

	"tableflip.dev/iyilik/pkg/entry"
	"tableflip.dev/iyilik/pkg/timeutil"
)

// RecentWindow is how many of the newest entries RecentEnergy reports.
const RecentWindow = 7

// AverageEnergy is the mean energy level rounded to one decimal, or 0 for no
// entries.
func AverageEnergy(entries []entry.Entry) float64 {
	if len(entries) == 0 {
		return 0
	}
	sum := 0
	for _, e := range entries {
		sum += e.EnergyLevel
	}
	return math.Round(float64(sum)/float64(len(entries))*10) / 10
}

// AverageMood is the mean mood index rounded to the nearest integer, or
// Neutral for no entries.
func AverageMood(entries []entry.Entry) entry.Mood {
	if len(entries) == 0 {
		return entry.Neutral
	}
	sum := 0
	for _, e := range entries {
		sum += e.MoodIndex
	}
	m := entry.Mood(math.Round(float64(sum) / float64(len(entries))))
	switch {
	case m < entry.VeryBad:
		return entry.VeryBad
	case m > entry.Great:
		return entry.Great
	}
	return m
}

// Distribution counts entries per mood bucket.
type Distribution [entry.MoodCount]int

// MoodDistribution buckets entries by mood index. Indexes outside the scale
// are skipped.
func MoodDistribution(entries []entry.Entry) Distribution {
	var d Distribution
	for _, e := range entries {
		if m := e.Mood(); m.Valid() {
			d[m]++
		}
	}
	return d
}

// Max is the largest bucket, never less than 1, so it can divide.
func (d Distribution) Max() int {
	top := 1
	for _, c := range d {
		if c > top {
			top = c
		}
	}
	return top
}

// Ratio is bucket m relative to Max, in [0,1].
func (d Distribution) Ratio(m entry.Mood) float64 {
	if !m.Valid() {
		return 0
	}
	return float64(d[m]) / float64(d.Max())
}

// CurrentStreak counts consecutive days with at least one entry, ending today
// or yesterday.
//
// Distinct dates are walked newest first. The date at position i continues
// the streak when it lies exactly i or i+1 days before today: i covers a run
// that includes today, i+1 a run that ended yesterday because nothing has
// been logged yet today. The first date matching neither ends the walk.
func CurrentStreak(entries []entry.Entry, today time.Time) int {
	if len(entries) == 0 {
		return 0
	}
	seen := make(map[string]struct{}, len(entries))
	dates := make([]string, 0, len(entries))
	for _, e := range entries {
		if _, ok := seen[e.Date]; ok {
			continue
		}
		seen[e.Date] = struct{}{}
		dates = append(dates, e.Date)
	}
	sort.Sort(sort.Reverse(sort.StringSlice(dates)))

	count := 0
	for i, date := range dates {
		d, err := timeutil.ParseDate(date)
		if err != nil {
			break
		}
		diff := timeutil.DaysBetween(d, today)
		if diff != i && diff != i+1 {
			break
		}
		count++
	}
	return count
}

// TotalWins counts entries that recorded a small win.
func TotalWins(entries []entry.Entry) int {
	n := 0
	for _, e := range entries {
		if e.SmallWin != "" {
			n++
		}
	}
	return n
}

// Level buckets an energy reading for display.
type Level int

const (
	Low Level = iota
	Medium
	High
)

// EnergyLevelOf maps 1-3 to Low, 4-6 to Medium and 7 and up to High.
func EnergyLevelOf(energy int) Level {
	switch {
	case energy <= 3:
		return Low
	case energy <= 6:
		return Medium
	default:
		return High
	}
}

func (l Level) String() string {
	switch l {
	case Low:
		return "low"
	case Medium:
		return "medium"
	default:
		return "high"
	}
}

func (l Level) MarshalText() ([]byte, error) {
	return []byte(l.String()), nil
}

// EnergyPoint is one bar of the recent energy chart.
type EnergyPoint struct {
	EntryID string `json:"entryId"`
	Date    string `json:"date"`
	Energy  int    `json:"energy"`
	Level   Level  `json:"level"`
}

// RecentEnergy takes the newest RecentWindow entries (entries are newest
// first) and returns them oldest first.
func RecentEnergy(entries []entry.Entry) []EnergyPoint {
	n := len(entries)
	if n > RecentWindow {
		n = RecentWindow
	}
	points := make([]EnergyPoint, n)
	for i := 0; i < n; i++ {
		e := entries[i]
		points[n-1-i] = EnergyPoint{
			EntryID: e.ID,
			Date:    e.Date,
			Energy:  e.EnergyLevel,
			Level:   EnergyLevelOf(e.EnergyLevel),
		}
	}
	return points
}

// Since keeps entries created at or after cutoff, preserving order.
func Since(entries []entry.Entry, cutoff time.Time) []entry.Entry {
	ms := cutoff.UnixMilli()
	out := make([]entry.Entry, 0, len(entries))
	for _, e := range entries {
		if e.CreatedAt >= ms {
			out = append(out, e)
		}
	}
	return out
}
