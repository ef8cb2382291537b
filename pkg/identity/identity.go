// Package identity keeps the single local profile name that gates the journal.
// There is no credential check: a stored name means "logged in".
package identity

import (
	"context"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"tableflip.dev/iyilik/pkg/store"
)

// UserKey is the store key holding the username.
const UserKey = "iyilik_user"

// State is where a Session sits in its Anonymous -> Identified -> Anonymous
// lifecycle.
type State int

const (
	Anonymous State = iota
	Identified
)

func (s State) String() string {
	switch s {
	case Identified:
		return "identified"
	default:
		return "anonymous"
	}
}

// Session is a snapshot of who, if anyone, is using the journal.
type Session struct {
	Username string `json:"username,omitempty"`
}

func (s Session) State() State {
	if s.Username == "" {
		return Anonymous
	}
	return Identified
}

func (s Session) Identified() bool {
	return s.State() == Identified
}

type Store struct {
	store store.Store
	log   *zap.Logger
}

func New(s store.Store, log *zap.Logger) *Store {
	if log == nil {
		log = zap.NewNop()
	}
	return &Store{store: s, log: log.Named("identity")}
}

// SaveUser stores the trimmed username, replacing any previous one. It does
// not validate; callers check the name first.
func (s *Store) SaveUser(ctx context.Context, username string) error {
	username = strings.TrimSpace(username)
	if err := s.store.Set(ctx, UserKey, username); err != nil {
		return fmt.Errorf("identity: save user: %w", err)
	}
	s.log.Debug("saved user", zap.String("username", username))
	return nil
}

// User returns the stored username. ok is false when none was saved or it was
// cleared; an empty stored value counts as none.
func (s *Store) User(ctx context.Context) (string, bool, error) {
	v, ok, err := s.store.Get(ctx, UserKey)
	if err != nil {
		return "", false, fmt.Errorf("identity: read user: %w", err)
	}
	if !ok || v == "" {
		return "", false, nil
	}
	return v, true, nil
}

func (s *Store) ClearUser(ctx context.Context) error {
	if err := s.store.Remove(ctx, UserKey); err != nil {
		return fmt.Errorf("identity: clear user: %w", err)
	}
	s.log.Debug("cleared user")
	return nil
}

func (s *Store) Session(ctx context.Context) (Session, error) {
	name, _, err := s.User(ctx)
	if err != nil {
		return Session{}, err
	}
	return Session{Username: name}, nil
}
