// Package journal persists journal entries as a single newest-first blob in a
// key/value store.
//
// Every mutation reads the whole collection, changes it, and writes the whole
// collection back. A Repository serialises its own read-modify-write cycles,
// so goroutines sharing one Repository never lose each other's writes. Two
// Repositories (or two processes) over the same store are not coordinated:
// the later write wins and silently discards the other's change.
package journal

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"go.uber.org/zap"

	"tableflip.dev/iyilik/pkg/entry"
	"tableflip.dev/iyilik/pkg/store"
	"tableflip.dev/iyilik/pkg/timeutil"
)

// EntriesKey is the store key holding the serialised entry list.
const EntriesKey = "iyilik_entries"

// ErrCorrupt is returned when the stored blob exists but cannot be decoded.
// Nothing is reset; the blob is left as found.
var ErrCorrupt = errors.New("journal: stored entries are corrupt")

type Repository struct {
	store store.Store
	now   func() time.Time
	log   *zap.Logger

	mu sync.Mutex
}

type Option func(*Repository)

// WithClock sets the clock used to decide what "today" is.
func WithClock(now func() time.Time) Option {
	return func(r *Repository) {
		r.now = now
	}
}

func WithLogger(l *zap.Logger) Option {
	return func(r *Repository) {
		if l != nil {
			r.log = l
		}
	}
}

func New(s store.Store, opts ...Option) *Repository {
	r := &Repository{
		store: s,
		now:   time.Now,
		log:   zap.NewNop(),
	}
	for _, o := range opts {
		o(r)
	}
	r.log = r.log.Named("journal")
	return r
}

// SaveEntry prepends e to the stored collection. The id is not checked for
// duplicates; callers supply a fresh one.
func (r *Repository) SaveEntry(ctx context.Context, e entry.Entry) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	entries, err := r.load(ctx)
	if err != nil {
		return err
	}
	entries = append([]entry.Entry{e}, entries...)
	if err := r.write(ctx, entries); err != nil {
		return err
	}
	r.log.Debug("saved entry", zap.String("id", e.ID), zap.String("date", e.Date), zap.Int("count", len(entries)))
	return nil
}

// Entries returns every stored entry, newest first. A store without the key
// yields an empty list.
func (r *Repository) Entries(ctx context.Context) ([]entry.Entry, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.load(ctx)
}

// EntryByID returns the first entry with id. A missing id is ok=false, not
// an error.
func (r *Repository) EntryByID(ctx context.Context, id string) (entry.Entry, bool, error) {
	entries, err := r.Entries(ctx)
	if err != nil {
		return entry.Entry{}, false, err
	}
	for _, e := range entries {
		if e.ID == id {
			return e, true, nil
		}
	}
	return entry.Entry{}, false, nil
}

// DeleteEntry removes every entry with id. Deleting an unknown id is a no-op
// and does not write.
func (r *Repository) DeleteEntry(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	entries, err := r.load(ctx)
	if err != nil {
		return err
	}
	kept := make([]entry.Entry, 0, len(entries))
	for _, e := range entries {
		if e.ID != id {
			kept = append(kept, e)
		}
	}
	removed := len(entries) - len(kept)
	if removed == 0 {
		r.log.Debug("delete: no such entry", zap.String("id", id))
		return nil
	}
	if err := r.write(ctx, kept); err != nil {
		return err
	}
	r.log.Debug("deleted entry", zap.String("id", id), zap.Int("removed", removed))
	return nil
}

// TodaysEntry returns the first stored entry dated today (local time). Only
// one is surfaced even when several share the date.
func (r *Repository) TodaysEntry(ctx context.Context) (entry.Entry, bool, error) {
	entries, err := r.Entries(ctx)
	if err != nil {
		return entry.Entry{}, false, err
	}
	today := timeutil.FormatDate(r.now())
	for _, e := range entries {
		if e.Date == today {
			return e, true, nil
		}
	}
	return entry.Entry{}, false, nil
}

// Now reads the repository clock.
func (r *Repository) Now() time.Time {
	return r.now()
}

func (r *Repository) load(ctx context.Context) ([]entry.Entry, error) {
	data, ok, err := r.store.Get(ctx, EntriesKey)
	if err != nil {
		return nil, fmt.Errorf("journal: read entries: %w", err)
	}
	if !ok {
		return []entry.Entry{}, nil
	}
	entries, err := entry.UnmarshalList([]byte(data))
	if err != nil {
		r.log.Error("stored entries do not decode", zap.Int("bytes", len(data)), zap.Error(err))
		return nil, fmt.Errorf("%w: %v", ErrCorrupt, err)
	}
	return entries, nil
}

func (r *Repository) write(ctx context.Context, entries []entry.Entry) error {
	data, err := entry.MarshalList(entries)
	if err != nil {
		return fmt.Errorf("journal: encode entries: %w", err)
	}
	if err := r.store.Set(ctx, EntriesKey, string(data)); err != nil {
		return fmt.Errorf("journal: write entries: %w", err)
	}
	return nil
}
