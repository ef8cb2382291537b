package app

import (
	"context"
	"time"

	"tableflip.dev/iyilik/pkg/entry"
	"tableflip.dev/iyilik/pkg/identity"
	"tableflip.dev/iyilik/pkg/stats"
)

// Dashboard is the landing snapshot: who is logged in, what they logged
// today and how much they have logged overall.
type Dashboard struct {
	Session  identity.Session `json:"session"`
	Greeting string           `json:"greeting"`
	Today    *entry.Entry     `json:"today"`
	Entries  int              `json:"entries"`
}

// Greeting picks the salutation for the hour of t.
func Greeting(t time.Time) string {
	switch h := t.Hour(); {
	case h < 12:
		return "Good morning"
	case h < 18:
		return "Good afternoon"
	default:
		return "Good evening"
	}
}

func (s *Service) Dashboard(ctx context.Context) (Dashboard, error) {
	sess, err := s.RequireSession(ctx)
	if err != nil {
		return Dashboard{}, err
	}
	all, err := s.Journal.Entries(ctx)
	if err != nil {
		return Dashboard{}, err
	}
	d := Dashboard{
		Session:  sess,
		Greeting: Greeting(s.Journal.Now()),
		Entries:  len(all),
	}
	if today, ok, err := s.Journal.TodaysEntry(ctx); err != nil {
		return Dashboard{}, err
	} else if ok {
		d.Today = &today
	}
	return d, nil
}

// ProgressReport is a stats.Summary over the entries created within Window of
// Until. A zero Window covers everything.
type ProgressReport struct {
	Since  time.Time     `json:"since"`
	Until  time.Time     `json:"until"`
	Window time.Duration `json:"window"`
	stats.Summary
}

// Progress summarizes the journal. When window is positive only entries
// created in the last window count; the streak is still computed as of now.
func (s *Service) Progress(ctx context.Context, window time.Duration) (ProgressReport, error) {
	if err := s.ready(); err != nil {
		return ProgressReport{}, err
	}
	all, err := s.Journal.Entries(ctx)
	if err != nil {
		return ProgressReport{}, err
	}
	now := s.Journal.Now()
	r := ProgressReport{Until: now, Window: window}
	if window > 0 {
		r.Since = now.Add(-window)
		all = stats.Since(all, r.Since)
	}
	r.Summary = stats.Summarize(all, now)
	return r, nil
}
