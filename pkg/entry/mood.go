package entry

import (
	"fmt"
	"strconv"
	"strings"
)

// Mood is a position on the five-point mood scale.
type Mood int

const (
	VeryBad Mood = iota
	Bad
	Neutral
	Good
	Great
)

// MoodCount is the number of buckets on the scale.
const MoodCount = 5

var moodLabels = [MoodCount]string{"very bad", "bad", "neutral", "good", "great"}

// Moods lists the scale from worst to best.
func Moods() []Mood {
	return []Mood{VeryBad, Bad, Neutral, Good, Great}
}

func (m Mood) Valid() bool {
	return m >= 0 && int(m) < MoodCount
}

func (m Mood) String() string {
	if !m.Valid() {
		return fmt.Sprintf("mood(%d)", int(m))
	}
	return moodLabels[m]
}

// ParseMood accepts either the index ("0".."4") or a label ("great",
// "very-bad", "very bad").
func ParseMood(s string) (Mood, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if i, err := strconv.Atoi(s); err == nil {
		if m := Mood(i); m.Valid() {
			return m, nil
		}
		return 0, fmt.Errorf("mood %d out of range 0-%d", i, MoodCount-1)
	}
	s = strings.ReplaceAll(s, "-", " ")
	for i, label := range moodLabels {
		if s == label {
			return Mood(i), nil
		}
	}
	return 0, fmt.Errorf("unknown mood %q", s)
}
