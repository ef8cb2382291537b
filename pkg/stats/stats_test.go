package stats

import (
	"fmt"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"

	"tableflip.dev/iyilik/pkg/entry"
	"tableflip.dev/iyilik/pkg/timeutil"
)

var today = time.Date(2026, 10, 19, 21, 45, 0, 0, time.Local)

func daysAgo(n int) string {
	return timeutil.FormatDate(today.AddDate(0, 0, -n))
}

func dated(dates ...string) []entry.Entry {
	out := make([]entry.Entry, len(dates))
	for i, d := range dates {
		out[i] = entry.Entry{ID: fmt.Sprintf("e%d", i), Date: d, MoodIndex: 2, EnergyLevel: 5, SmallWin: "w"}
	}
	return out
}

func TestEmptyInput(t *testing.T) {
	var none []entry.Entry
	assert.Equal(t, 0.0, AverageEnergy(none))
	assert.Equal(t, entry.Neutral, AverageMood(none))
	assert.Equal(t, 0, CurrentStreak(none, today))
	assert.Equal(t, 0, TotalWins(none))
	assert.Equal(t, Distribution{}, MoodDistribution(none))
	assert.Equal(t, 1, MoodDistribution(none).Max())
	assert.Equal(t, 0.0, MoodDistribution(none).Ratio(entry.Great))
	assert.Empty(t, RecentEnergy(none))

	s := Summarize([]entry.Entry{}, today)
	assert.Equal(t, "neutral", s.MoodLabel)
	assert.NotNil(t, s.RecentEnergy)
}

func TestCurrentStreak(t *testing.T) {
	tests := []struct {
		name  string
		dates []string
		want  int
	}{
		{"unbroken run through today", []string{daysAgo(0), daysAgo(1), daysAgo(2)}, 3},
		{"not yet logged today", []string{daysAgo(1), daysAgo(2)}, 2},
		{"gap after yesterday", []string{daysAgo(1), daysAgo(3)}, 1},
		// Position 1 may sit two days back, so one missed day right after today
		// still counts. That over-count is how the tolerance rule works.
		{"i+1 tolerance skips one gap after today", []string{daysAgo(0), daysAgo(2)}, 2},
		{"second gap after today ends the run", []string{daysAgo(0), daysAgo(2), daysAgo(4)}, 2},
		{"last entry two days ago", []string{daysAgo(2), daysAgo(3)}, 0},
		{"duplicates collapse", []string{daysAgo(0), daysAgo(0), daysAgo(1), daysAgo(1)}, 2},
		{"unsorted input", []string{daysAgo(2), daysAgo(0), daysAgo(1)}, 3},
		{"future date stops the walk", []string{daysAgo(-1), daysAgo(0)}, 0},
		{"unparseable date stops the walk", []string{daysAgo(0), "yesterday"}, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, CurrentStreak(dated(tt.dates...), today))
		})
	}
}

func TestCurrentStreakToleranceCarriesThroughRun(t *testing.T) {
	// Position i may sit i or i+1 days back, so a run started yesterday keeps
	// counting for as long as it is contiguous.
	var dates []string
	for i := 1; i <= 10; i++ {
		dates = append(dates, daysAgo(i))
	}
	assert.Equal(t, 10, CurrentStreak(dated(dates...), today))
}

func TestCurrentStreakJustAfterMidnight(t *testing.T) {
	early := time.Date(2026, 10, 19, 0, 5, 0, 0, time.Local)
	entries := dated("2026-10-19", "2026-10-18")
	assert.Equal(t, 2, CurrentStreak(entries, early))
}

func TestMoodDistribution(t *testing.T) {
	var entries []entry.Entry
	for _, m := range []int{0, 0, 3, 4, 4, 4} {
		entries = append(entries, entry.Entry{MoodIndex: m})
	}
	d := MoodDistribution(entries)
	assert.Equal(t, Distribution{2, 0, 0, 1, 3}, d)
	assert.Equal(t, 3, d.Max())
	assert.InDelta(t, 2.0/3.0, d.Ratio(entry.VeryBad), 1e-9)
	assert.Equal(t, 1.0, d.Ratio(entry.Great))
}

func TestMoodDistributionSkipsOutOfRange(t *testing.T) {
	d := MoodDistribution([]entry.Entry{{MoodIndex: -1}, {MoodIndex: 5}, {MoodIndex: 2}})
	assert.Equal(t, Distribution{0, 0, 1, 0, 0}, d)
}

func TestAverages(t *testing.T) {
	entries := []entry.Entry{
		{MoodIndex: 4, EnergyLevel: 7},
		{MoodIndex: 3, EnergyLevel: 8},
		{MoodIndex: 3, EnergyLevel: 8},
	}
	assert.Equal(t, 7.7, AverageEnergy(entries))
	assert.Equal(t, entry.Good, AverageMood(entries))

	// 2.5 rounds up, matching how the progress view always rounded.
	half := []entry.Entry{{MoodIndex: 2, EnergyLevel: 1}, {MoodIndex: 3, EnergyLevel: 2}}
	assert.Equal(t, entry.Good, AverageMood(half))
	assert.Equal(t, 1.5, AverageEnergy(half))
}

func TestTotalWins(t *testing.T) {
	entries := []entry.Entry{{SmallWin: "ran 5k"}, {SmallWin: ""}, {SmallWin: "tidied desk"}}
	assert.Equal(t, 2, TotalWins(entries))
}

func TestRecentEnergy(t *testing.T) {
	var entries []entry.Entry
	// newest first: energy 10, 9, ... 1
	for i := 0; i < 10; i++ {
		entries = append(entries, entry.Entry{ID: fmt.Sprintf("e%d", i), EnergyLevel: 10 - i})
	}
	got := RecentEnergy(entries)
	want := []EnergyPoint{
		{EntryID: "e6", Energy: 4, Level: Medium},
		{EntryID: "e5", Energy: 5, Level: Medium},
		{EntryID: "e4", Energy: 6, Level: Medium},
		{EntryID: "e3", Energy: 7, Level: High},
		{EntryID: "e2", Energy: 8, Level: High},
		{EntryID: "e1", Energy: 9, Level: High},
		{EntryID: "e0", Energy: 10, Level: High},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("recent energy (-want +got):\n%s", diff)
	}

	short := RecentEnergy(entries[7:])
	assert.Equal(t, []int{1, 2, 3}, []int{short[0].Energy, short[1].Energy, short[2].Energy})
	assert.Equal(t, Low, short[2].Level)
}

func TestEnergyLevelBoundaries(t *testing.T) {
	for energy, want := range map[int]Level{1: Low, 3: Low, 4: Medium, 6: Medium, 7: High, 10: High} {
		assert.Equal(t, want, EnergyLevelOf(energy), "energy %d", energy)
	}
}

func TestFunctionsDoNotMutateInput(t *testing.T) {
	entries := dated(daysAgo(2), daysAgo(0), daysAgo(1))
	before := append([]entry.Entry(nil), entries...)

	_ = Summarize(entries, today)
	_ = Since(entries, today)

	if diff := cmp.Diff(before, entries); diff != "" {
		t.Fatalf("input mutated (-before +after):\n%s", diff)
	}
}

func TestSince(t *testing.T) {
	cutoff := time.UnixMilli(200)
	entries := []entry.Entry{{ID: "c", CreatedAt: 300}, {ID: "b", CreatedAt: 200}, {ID: "a", CreatedAt: 100}}
	got := Since(entries, cutoff)
	assert.Equal(t, []entry.Entry{{ID: "c", CreatedAt: 300}, {ID: "b", CreatedAt: 200}}, got)
}

func TestSummarize(t *testing.T) {
	entries := []entry.Entry{
		{ID: "c", Date: daysAgo(0), MoodIndex: 4, EnergyLevel: 9, SmallWin: "shipped"},
		{ID: "b", Date: daysAgo(1), MoodIndex: 3, EnergyLevel: 6, SmallWin: "read"},
		{ID: "a", Date: daysAgo(2), MoodIndex: 2, EnergyLevel: 3, SmallWin: "slept"},
	}
	s := Summarize(entries, today)
	assert.Equal(t, 3, s.Entries)
	assert.Equal(t, 6.0, s.AverageEnergy)
	assert.Equal(t, entry.Good, s.AverageMood)
	assert.Equal(t, "good", s.MoodLabel)
	assert.Equal(t, Distribution{0, 0, 1, 1, 1}, s.Distribution)
	assert.Equal(t, 3, s.Streak)
	assert.Equal(t, 3, s.TotalWins)
	assert.Equal(t, []string{"a", "b", "c"}, []string{s.RecentEnergy[0].EntryID, s.RecentEnergy[1].EntryID, s.RecentEnergy[2].EntryID})
}
