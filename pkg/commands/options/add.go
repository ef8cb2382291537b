package options

import (
	"github.com/spf13/cobra"

	"tableflip.dev/iyilik/pkg/entry"
)

// AddOptions hold the raw new-entry fields as typed on the command line.
type AddOptions struct {
	Mood   string
	Energy float64
	Win    string
	Notes  string
	// Interactive asks for every field instead, using the flags as defaults.
	Interactive bool
}

func AddEntryArgs(cmd *cobra.Command, o *AddOptions) {
	cmd.Flags().StringVarP(&o.Mood, "mood", "m", "",
		`Mood, 0-4 or one of "very-bad", "bad", "neutral", "good", "great".`)
	cmd.Flags().Float64VarP(&o.Energy, "energy", "e", 5,
		"Energy level from 1 to 10.")
	cmd.Flags().StringVarP(&o.Win, "win", "w", "",
		"Today's small win.")
	cmd.Flags().StringVar(&o.Notes, "notes", "",
		"Optional notes.")
	cmd.Flags().BoolVarP(&o.Interactive, "interactive", "i", false,
		"Ask for each field in turn.")
}

// GetMood parses --mood. An empty flag is nil so validation can report it.
func (o *AddOptions) GetMood() (*int, error) {
	if o.Mood == "" {
		return nil, nil
	}
	m, err := entry.ParseMood(o.Mood)
	if err != nil {
		return nil, err
	}
	i := int(m)
	return &i, nil
}

// MoodCompletions lists the mood labels for shell completion.
func MoodCompletions() []string {
	out := make([]string, 0, entry.MoodCount)
	for _, m := range entry.Moods() {
		out = append(out, m.String())
	}
	return out
}
