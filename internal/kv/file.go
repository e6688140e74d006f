package kv

import (
	"context"
	"os"
	"path/filepath"

	ierr "github.com/billfold/billfold/internal/errors"
)

// FileStore persists each key as a JSON document at <dir>/<key>.json.
// Values are written whole-file, so a reader never observes a partial
// write from a completed Set.
type FileStore struct {
	dir string
}

// NewFileStore creates the storage directory if needed and returns a
// file-backed store rooted at dir.
func NewFileStore(dir string) (*FileStore, error) {
	if dir == "" {
		return nil, ierr.NewError("storage directory is required").
			WithHint("Configure storage.dir or use the in-memory store").
			Mark(ierr.ErrValidation)
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, ierr.WithError(err).
			WithHintf("Failed to create storage directory %s", dir).
			Mark(ierr.ErrStorage)
	}
	return &FileStore{dir: dir}, nil
}

func (s *FileStore) path(key string) string {
	return filepath.Join(s.dir, key+".json")
}

func (s *FileStore) Get(_ context.Context, key string) ([]byte, bool, error) {
	data, err := os.ReadFile(s.path(key))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, false, nil
		}
		return nil, false, ierr.WithError(err).
			WithHintf("Failed to read key %s", key).
			Mark(ierr.ErrStorage)
	}
	return data, true, nil
}

func (s *FileStore) Set(_ context.Context, key string, value []byte) error {
	if err := os.WriteFile(s.path(key), value, 0o600); err != nil {
		return ierr.WithError(err).
			WithHintf("Failed to write key %s", key).
			Mark(ierr.ErrStorage)
	}
	return nil
}

func (s *FileStore) Delete(_ context.Context, key string) error {
	if err := os.Remove(s.path(key)); err != nil && !os.IsNotExist(err) {
		return ierr.WithError(err).
			WithHintf("Failed to delete key %s", key).
			Mark(ierr.ErrStorage)
	}
	return nil
}
