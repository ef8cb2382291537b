// Package mcp provides the Model Context Protocol server integration for iyilik.
package mcp

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"tableflip.dev/iyilik/pkg/app"
	"tableflip.dev/iyilik/pkg/entry"
	"tableflip.dev/iyilik/pkg/stats"
	"tableflip.dev/iyilik/pkg/timeutil"
)

// Service adapts the journal application service to transport-friendly
// values. Every call requires a logged in profile.
type Service struct {
	App *app.Service
}

// ErrEntryNotFound is returned when no entry has the requested id.
var ErrEntryNotFound = errors.New("entry not found")

// AddEntryOptions captures the raw arguments of a new entry.
type AddEntryOptions struct {
	// Mood is an index or a label, see entry.ParseMood.
	Mood     string
	Energy   float64
	SmallWin string
	Notes    string
}

// EntryDTO is a transport-friendly projection of an entry.
type EntryDTO struct {
	ID          string `json:"id"`
	Date        string `json:"date"`
	MoodIndex   int    `json:"moodIndex"`
	Mood        string `json:"mood"`
	EnergyLevel int    `json:"energyLevel"`
	EnergyBand  string `json:"energyBand"`
	SmallWin    string `json:"smallWin"`
	Notes       string `json:"notes,omitempty"`
	CreatedISO  string `json:"created"`
	CreatedUnix int64  `json:"createdAt"`
}

func NewService(a *app.Service) *Service {
	return &Service{App: a}
}

func (s *Service) ready(ctx context.Context) error {
	if s.App == nil {
		return errors.New("journal is not configured")
	}
	_, err := s.App.RequireSession(ctx)
	return err
}

// ListEntries returns entries newest first, at most limit when limit > 0.
func (s *Service) ListEntries(ctx context.Context, limit int) ([]EntryDTO, error) {
	if err := s.ready(ctx); err != nil {
		return nil, err
	}
	all, err := s.App.Entries(ctx)
	if err != nil {
		return nil, err
	}
	if limit > 0 && len(all) > limit {
		all = all[:limit]
	}
	return toDTOs(all), nil
}

func (s *Service) AddEntry(ctx context.Context, opts AddEntryOptions) (*EntryDTO, error) {
	if err := s.ready(ctx); err != nil {
		return nil, err
	}
	in := app.NewEntryInput{
		Energy:   opts.Energy,
		SmallWin: opts.SmallWin,
		Notes:    opts.Notes,
	}
	if strings.TrimSpace(opts.Mood) != "" {
		m, err := entry.ParseMood(opts.Mood)
		if err != nil {
			return nil, err
		}
		i := int(m)
		in.Mood = &i
	}
	e, err := s.App.NewEntry(ctx, in)
	if err != nil {
		return nil, err
	}
	dto := toDTO(e)
	return &dto, nil
}

// DeleteEntry removes the entry and reports whether it existed.
func (s *Service) DeleteEntry(ctx context.Context, id string) (bool, error) {
	if err := s.ready(ctx); err != nil {
		return false, err
	}
	_, ok, err := s.App.Entry(ctx, id)
	if err != nil {
		return false, err
	}
	if err := s.App.Delete(ctx, id); err != nil {
		return false, err
	}
	return ok, nil
}

// SearchEntries matches query case-insensitively against small wins and
// notes, newest first.
func (s *Service) SearchEntries(ctx context.Context, query string, limit int) ([]EntryDTO, error) {
	if err := s.ready(ctx); err != nil {
		return nil, err
	}
	query = strings.ToLower(strings.TrimSpace(query))
	if query == "" {
		return nil, errors.New("query is required")
	}
	if limit <= 0 {
		limit = 20
	}
	all, err := s.App.Entries(ctx)
	if err != nil {
		return nil, err
	}
	matches := make([]entry.Entry, 0)
	for _, e := range all {
		if strings.Contains(strings.ToLower(e.SmallWin), query) || strings.Contains(strings.ToLower(e.Notes), query) {
			matches = append(matches, e)
			if len(matches) == limit {
				break
			}
		}
	}
	return toDTOs(matches), nil
}

func (s *Service) EntryByID(ctx context.Context, id string) (*EntryDTO, error) {
	if err := s.ready(ctx); err != nil {
		return nil, err
	}
	e, ok, err := s.App.Entry(ctx, id)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrEntryNotFound, id)
	}
	dto := toDTO(e)
	return &dto, nil
}

// TodaysEntry returns nil when nothing was logged today.
func (s *Service) TodaysEntry(ctx context.Context) (*EntryDTO, error) {
	if err := s.ready(ctx); err != nil {
		return nil, err
	}
	e, ok, err := s.App.Journal.TodaysEntry(ctx)
	if err != nil || !ok {
		return nil, err
	}
	dto := toDTO(e)
	return &dto, nil
}

// Progress parses window (for example "1w"; empty means everything) and
// summarizes the journal.
func (s *Service) Progress(ctx context.Context, window string) (app.ProgressReport, error) {
	if err := s.ready(ctx); err != nil {
		return app.ProgressReport{}, err
	}
	d, err := timeutil.ParseWindow(window)
	if err != nil {
		return app.ProgressReport{}, err
	}
	return s.App.Progress(ctx, d)
}

func (s *Service) Dashboard(ctx context.Context) (app.Dashboard, error) {
	if s.App == nil {
		return app.Dashboard{}, errors.New("journal is not configured")
	}
	return s.App.Dashboard(ctx)
}

func toDTOs(entries []entry.Entry) []EntryDTO {
	out := make([]EntryDTO, 0, len(entries))
	for _, e := range entries {
		out = append(out, toDTO(e))
	}
	return out
}

func toDTO(e entry.Entry) EntryDTO {
	return EntryDTO{
		ID:          e.ID,
		Date:        e.Date,
		MoodIndex:   e.MoodIndex,
		Mood:        e.Mood().String(),
		EnergyLevel: e.EnergyLevel,
		EnergyBand:  stats.EnergyLevelOf(e.EnergyLevel).String(),
		SmallWin:    e.SmallWin,
		Notes:       e.Notes,
		CreatedISO:  e.Created().UTC().Format(time.RFC3339),
		CreatedUnix: e.CreatedAt,
	}
}
