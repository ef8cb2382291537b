package store

import (
	"context"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/peterbourgon/diskv/v3"
)

const tempDirName = ".tmp"

// NewDiskv opens a file-per-key store rooted at basePath. Writes go through a
// temp file and rename, so a failed write leaves the previous value in place.
func NewDiskv(basePath string) (*DiskvStore, error) {
	if strings.TrimSpace(basePath) == "" {
		return nil, errors.New("store: base path required")
	}
	if err := os.MkdirAll(filepath.Join(basePath, tempDirName), 0o755); err != nil {
		return nil, err
	}
	return &DiskvStore{
		d: diskv.New(diskv.Options{
			BasePath:  basePath,
			TempDir:   filepath.Join(basePath, tempDirName),
			Transform: flatTransform,
			// No read cache: other processes write the same files.
			CacheSizeMax: 0,
		}),
		basePath: basePath,
	}, nil
}

// DiskvStore is the default Store, one file per key.
type DiskvStore struct {
	d        *diskv.Diskv
	basePath string

	mu     sync.RWMutex
	closed bool
}

var _ Store = (*DiskvStore)(nil)
var _ Watcher = (*DiskvStore)(nil)

// BasePath is the directory holding the key files.
func (s *DiskvStore) BasePath() string {
	return s.basePath
}

func (s *DiskvStore) Get(ctx context.Context, key string) (string, bool, error) {
	if err := s.check(ctx, key); err != nil {
		return "", false, err
	}
	val, err := s.d.Read(key)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return "", false, nil
		}
		return "", false, err
	}
	return string(val), true, nil
}

func (s *DiskvStore) Set(ctx context.Context, key, value string) error {
	if err := s.check(ctx, key); err != nil {
		return err
	}
	return s.d.Write(key, []byte(value))
}

func (s *DiskvStore) Remove(ctx context.Context, key string) error {
	if err := s.check(ctx, key); err != nil {
		return err
	}
	if err := s.d.Erase(key); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return err
	}
	return nil
}

func (s *DiskvStore) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.closed = true
	return nil
}

func (s *DiskvStore) check(ctx context.Context, key string) error {
	s.mu.RLock()
	closed := s.closed
	s.mu.RUnlock()
	if closed {
		return ErrClosed
	}
	return checkKey(ctx, key)
}

// flatTransform keeps every key directly under the base path.
func flatTransform(string) []string {
	return []string{}
}
