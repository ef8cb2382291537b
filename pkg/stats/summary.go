package stats

import (
	"time"

	"tableflip.dev/iyilik/pkg/entry"
)

// Summary gathers everything the progress view shows.
type Summary struct {
	Entries       int           `json:"entries"`
	AverageEnergy float64       `json:"averageEnergy"`
	AverageMood   entry.Mood    `json:"averageMood"`
	MoodLabel     string        `json:"moodLabel"`
	Distribution  Distribution  `json:"distribution"`
	Streak        int           `json:"streak"`
	TotalWins     int           `json:"totalWins"`
	RecentEnergy  []EnergyPoint `json:"recentEnergy"`
}

// Summarize computes a Summary for entries as of today.
func Summarize(entries []entry.Entry, today time.Time) Summary {
	mood := AverageMood(entries)
	return Summary{
		Entries:       len(entries),
		AverageEnergy: AverageEnergy(entries),
		AverageMood:   mood,
		MoodLabel:     mood.String(),
		Distribution:  MoodDistribution(entries),
		Streak:        CurrentStreak(entries, today),
		TotalWins:     TotalWins(entries),
		RecentEnergy:  RecentEnergy(entries),
	}
}
