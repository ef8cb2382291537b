// Package store provides the string key/value backends the journal persists into.
package store

import (
	"context"
	"errors"
	"fmt"
)

// Store is a persisted mapping from string key to string value. Writes are
// per key; there are no multi-key transactions.
type Store interface {
	// Get returns the value for key. A missing key is reported with ok=false
	// and a nil error.
	Get(ctx context.Context, key string) (value string, ok bool, err error)
	// Set replaces the value for key.
	Set(ctx context.Context, key, value string) error
	// Remove deletes key. Removing a missing key is not an error.
	Remove(ctx context.Context, key string) error
	// Close releases the backend.
	Close() error
}

// Watcher is implemented by backends that can report changes made by other
// processes.
type Watcher interface {
	Watch(ctx context.Context) (<-chan Event, error)
}

var (
	// ErrClosed is returned by operations on a closed store.
	ErrClosed = errors.New("store: closed")
	// ErrWatchUnsupported is returned by Watch for backends without change
	// notification.
	ErrWatchUnsupported = errors.New("store: backend does not support watch")
	// ErrEmptyKey is returned when an operation is given an empty key.
	ErrEmptyKey = errors.New("store: empty key")
)

// Load opens the backend selected by cfg. A nil cfg is read with LoadConfig.
func Load(cfg Config) (Store, error) {
	if cfg == nil {
		var err error
		cfg, err = LoadConfig()
		if err != nil {
			return nil, err
		}
	}

	switch b := cfg.Backend(); b {
	case BackendDiskv, "":
		return NewDiskv(cfg.BasePath())
	case BackendSQLite:
		return OpenSQLite(cfg.BasePath())
	case BackendMemory:
		return NewMemory(), nil
	default:
		return nil, fmt.Errorf("store: unknown backend %q", b)
	}
}

// Watch subscribes to change events when s supports them.
func Watch(ctx context.Context, s Store) (<-chan Event, error) {
	w, ok := s.(Watcher)
	if !ok {
		return nil, ErrWatchUnsupported
	}
	return w.Watch(ctx)
}

func checkKey(ctx context.Context, key string) error {
	if key == "" {
		return ErrEmptyKey
	}
	return ctx.Err()
}
