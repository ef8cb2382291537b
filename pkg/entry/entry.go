// Package entry defines the journal entry record and its persisted form.
package entry

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"tableflip.dev/iyilik/pkg/timeutil"
)

// Entry is one user-authored record for a calendar day. Entries are never
// edited after creation.
type Entry struct {
	ID          string `json:"id"`
	Date        string `json:"date"`
	MoodIndex   int    `json:"moodIndex"`
	EnergyLevel int    `json:"energyLevel"`
	SmallWin    string `json:"smallWin"`
	Notes       string `json:"notes"`
	// CreatedAt is epoch milliseconds and the only sort key.
	CreatedAt int64 `json:"createdAt"`
}

// New builds an entry stamped with a fresh id, the local date of now and
// now as the creation time. Inputs are not validated.
func New(now time.Time, mood, energy int, smallWin, notes string) Entry {
	return Entry{
		ID:          NewID(),
		Date:        timeutil.FormatDate(now),
		MoodIndex:   mood,
		EnergyLevel: energy,
		SmallWin:    smallWin,
		Notes:       notes,
		CreatedAt:   now.UnixMilli(),
	}
}

// NewID returns a random (v4) UUID.
func NewID() string {
	return uuid.NewString()
}

func (e Entry) Created() time.Time {
	return time.UnixMilli(e.CreatedAt)
}

func (e Entry) Mood() Mood {
	return Mood(e.MoodIndex)
}

// Row is the table projection used by list output.
func (e Entry) Row() (string, string, string, string) {
	return e.Date, e.Mood().String(), fmt.Sprintf("%d/10", e.EnergyLevel), e.SmallWin
}

func (e Entry) String() string {
	return fmt.Sprintf("%s %s %d/10  %s", e.Date, e.Mood(), e.EnergyLevel, e.SmallWin)
}
