// Package store provides the key-value persistence capability the
// saved list and subscription are written through.
package store

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
)

// KV is a string-keyed store. Get reports ok=false for absent keys;
// Set overwrites unconditionally.
type KV interface {
	Get(key string) (value string, ok bool, err error)
	Set(key, value string) error
}

// FileStore keeps one file per key under a directory, typically the
// user config directory.
type FileStore struct {
	Dir string
}

// NewFileStore returns a store rooted at dir. The directory is created
// lazily on the first Set.
func NewFileStore(dir string) (*FileStore, error) {
	if strings.TrimSpace(dir) == "" {
		return nil, errors.New("store directory is required")
	}
	return &FileStore{Dir: dir}, nil
}

func (s *FileStore) Get(key string) (string, bool, error) {
	data, err := os.ReadFile(s.path(key))
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return "", false, nil
		}
		return "", false, err
	}
	return string(data), true, nil
}

func (s *FileStore) Set(key, value string) error {
	if err := os.MkdirAll(s.Dir, 0o755); err != nil {
		return err
	}
	return os.WriteFile(s.path(key), []byte(value), 0o644)
}

func (s *FileStore) path(key string) string {
	return filepath.Join(s.Dir, key+".json")
}
