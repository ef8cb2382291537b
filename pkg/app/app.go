package app

import (
	"context"
	"errors"
	"math"
	"strings"

	"go.uber.org/zap"

	"tableflip.dev/iyilik/pkg/entry"
	"tableflip.dev/iyilik/pkg/identity"
	"tableflip.dev/iyilik/pkg/journal"
)

// Service provides the user-facing journal flows on top of the repository
// and identity store, so the CLI and the MCP server share validation and
// session rules.
type Service struct {
	Journal  *journal.Repository
	Identity *identity.Store
	Log      *zap.Logger
}

var errNoJournal = errors.New("app: no journal configured")

func (s *Service) ready() error {
	if s.Journal == nil || s.Identity == nil {
		return errNoJournal
	}
	return nil
}

func (s *Service) logger() *zap.Logger {
	if s.Log == nil {
		return zap.NewNop()
	}
	return s.Log
}

// Credentials is what the login flow asks for. The password is checked and
// then dropped; only the username is kept.
type Credentials struct {
	Username string `validate:"required"`
	Password string `validate:"notblank,min=3"`
}

var credentialMessages = map[string]string{
	"Username":          "please enter a username",
	"Password.notblank": "please enter a password",
	"Password.min":      "password must be at least 3 characters",
}

// Login validates c and saves the trimmed username.
func (s *Service) Login(ctx context.Context, c Credentials) (identity.Session, error) {
	if err := s.ready(); err != nil {
		return identity.Session{}, err
	}
	c.Username = strings.TrimSpace(c.Username)
	if err := check(c, credentialMessages); err != nil {
		return identity.Session{}, err
	}
	if err := s.Identity.SaveUser(ctx, c.Username); err != nil {
		return identity.Session{}, err
	}
	s.logger().Info("logged in", zap.String("username", c.Username))
	return identity.Session{Username: c.Username}, nil
}

func (s *Service) Logout(ctx context.Context) error {
	if err := s.ready(); err != nil {
		return err
	}
	return s.Identity.ClearUser(ctx)
}

func (s *Service) Session(ctx context.Context) (identity.Session, error) {
	if err := s.ready(); err != nil {
		return identity.Session{}, err
	}
	return s.Identity.Session(ctx)
}

// RequireSession returns the current session, or ErrAnonymous when nobody is
// logged in.
func (s *Service) RequireSession(ctx context.Context) (identity.Session, error) {
	sess, err := s.Session(ctx)
	if err != nil {
		return identity.Session{}, err
	}
	if !sess.Identified() {
		return identity.Session{}, ErrAnonymous
	}
	return sess, nil
}

// NewEntryInput is the raw new-entry form. Mood is a pointer so "not picked"
// differs from "very bad".
type NewEntryInput struct {
	Mood     *int    `validate:"required,min=0,max=4"`
	Energy   float64 `validate:"min=1,max=10"`
	SmallWin string  `validate:"notblank"`
	Notes    string
}

var entryMessages = map[string]string{
	"Mood.required": "please pick a mood",
	"Mood":          "mood must be between 0 and 4",
	"Energy":        "energy must be between 1 and 10",
	"SmallWin":      "what was today's small win?",
}

// NewEntry validates in, builds an entry stamped with the journal clock and
// saves it.
func (s *Service) NewEntry(ctx context.Context, in NewEntryInput) (entry.Entry, error) {
	if err := s.ready(); err != nil {
		return entry.Entry{}, err
	}
	// Energy is checked as it will be stored.
	in.Energy = math.Round(in.Energy)
	if err := check(in, entryMessages); err != nil {
		return entry.Entry{}, err
	}
	e := entry.New(
		s.Journal.Now(),
		*in.Mood,
		int(in.Energy),
		strings.TrimSpace(in.SmallWin),
		strings.TrimSpace(in.Notes),
	)
	if err := s.Journal.SaveEntry(ctx, e); err != nil {
		return entry.Entry{}, err
	}
	s.logger().Info("saved entry", zap.String("id", e.ID), zap.String("date", e.Date))
	return e, nil
}

func (s *Service) Entries(ctx context.Context) ([]entry.Entry, error) {
	if err := s.ready(); err != nil {
		return nil, err
	}
	return s.Journal.Entries(ctx)
}

// Entry looks up one entry; ok is false when the id is unknown.
func (s *Service) Entry(ctx context.Context, id string) (entry.Entry, bool, error) {
	if err := s.ready(); err != nil {
		return entry.Entry{}, false, err
	}
	return s.Journal.EntryByID(ctx, id)
}

// Delete removes the entry with id. Unknown ids are not an error.
func (s *Service) Delete(ctx context.Context, id string) error {
	if err := s.ready(); err != nil {
		return err
	}
	if err := s.Journal.DeleteEntry(ctx, id); err != nil {
		return err
	}
	s.logger().Info("deleted entry", zap.String("id", id))
	return nil
}
