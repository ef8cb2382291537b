// Package prompt walks a user through the new-entry fields interactively.
package prompt

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/manifoldco/promptui"

	"tableflip.dev/iyilik/pkg/commands/options"
	"tableflip.dev/iyilik/pkg/entry"
)

// Wizard asks for each field of a new entry in turn.
type Wizard struct {
	In  io.Reader
	Out io.Writer
}

var templates = &promptui.PromptTemplates{
	Prompt:  "{{ . }}: ",
	Valid:   "{{ . | green }}: ",
	Invalid: "{{ . | red }}: ",
	Success: "{{ . | bold }}: ",
}

// Entry fills o from the answers. Values already set in o become defaults.
func (w *Wizard) Entry(o *options.AddOptions) error {
	mood, err := w.mood(o.Mood)
	if err != nil {
		return err
	}
	o.Mood = strconv.Itoa(int(mood))

	energy, err := w.ask("Energy (1-10)", strconv.FormatFloat(o.Energy, 'f', -1, 64), ValidateEnergy)
	if err != nil {
		return err
	}
	o.Energy, _ = strconv.ParseFloat(strings.TrimSpace(energy), 64)

	if o.Win, err = w.ask("Small win", o.Win, ValidateWin); err != nil {
		return err
	}
	if o.Notes, err = w.ask("Notes (optional)", o.Notes, nil); err != nil {
		return err
	}
	return nil
}

func (w *Wizard) mood(current string) (entry.Mood, error) {
	cursor := int(entry.Neutral)
	if m, err := entry.ParseMood(current); err == nil {
		cursor = int(m)
	}

	sel := promptui.Select{
		HideHelp:  true,
		Label:     "How do you feel today?",
		Items:     entry.Moods(),
		CursorPos: cursor,
		Size:      entry.MoodCount,
		Templates: &promptui.SelectTemplates{
			Label:    "{{ . }}",
			Active:   "➜  {{ . | bold }}",
			Inactive: "   {{ . }}",
			Selected: "mood: {{ . | bold }}",
		},
		Stdin:  io.NopCloser(w.in()),
		Stdout: nopCloser{w.out()},
	}
	i, _, err := sel.Run()
	if err != nil {
		return 0, fmt.Errorf("prompt failed: %w", err)
	}
	return entry.Mood(i), nil
}

func (w *Wizard) ask(label, def string, validate promptui.ValidateFunc) (string, error) {
	p := promptui.Prompt{
		Label:     label,
		Default:   def,
		Templates: templates,
		Validate:  validate,
		Stdin:     io.NopCloser(w.in()),
		Stdout:    nopCloser{w.out()},
	}
	result, err := p.Run()
	if err != nil {
		return "", fmt.Errorf("prompt failed: %w", err)
	}
	return result, nil
}

// ValidateEnergy accepts a number from 1 to 10.
func ValidateEnergy(input string) error {
	v, err := strconv.ParseFloat(strings.TrimSpace(input), 64)
	if err != nil {
		return fmt.Errorf("energy must be a number")
	}
	if v < 1 || v > 10 {
		return fmt.Errorf("energy must be between 1 and 10")
	}
	return nil
}

// ValidateWin rejects blank answers.
func ValidateWin(input string) error {
	if strings.TrimSpace(input) == "" {
		return fmt.Errorf("what was today's small win?")
	}
	return nil
}

func (w *Wizard) in() io.Reader {
	if w.In == nil {
		return strings.NewReader("")
	}
	return w.In
}

func (w *Wizard) out() io.Writer {
	if w.Out == nil {
		return io.Discard
	}
	return w.Out
}

type nopCloser struct {
	io.Writer
}

func (nopCloser) Close() error { return nil }
