package storefront

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
)

// Store is the persistence surface the session and cart stores depend on.
// It mirrors the browser's local storage: opaque values under string keys,
// saved eagerly on every mutation.
type Store interface {
	Load(key string) ([]byte, bool, error)
	Save(key string, value []byte) error
	Delete(key string) error
}

// FileStore keeps one file per key under a directory.
type FileStore struct {
	Dir string
}

func NewFileStore(dir string) (*FileStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	return &FileStore{Dir: dir}, nil
}

func (s *FileStore) path(key string) string {
	// Keys are fixed identifiers; the replacement only guards against
	// separators sneaking into file names.
	safe := strings.NewReplacer("/", "_", string(filepath.Separator), "_").Replace(key)
	return filepath.Join(s.Dir, safe+".json")
}

func (s *FileStore) Load(key string) ([]byte, bool, error) {
	data, err := os.ReadFile(s.path(key))
	if errors.Is(err, os.ErrNotExist) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	return data, true, nil
}

func (s *FileStore) Save(key string, value []byte) error {
	return os.WriteFile(s.path(key), value, 0o644)
}

func (s *FileStore) Delete(key string) error {
	err := os.Remove(s.path(key))
	if errors.Is(err, os.ErrNotExist) {
		return nil
	}
	return err
}

// MemStore is an in-memory Store for tests.
type MemStore struct {
	values map[string][]byte
}

func NewMemStore() *MemStore {
	return &MemStore{values: map[string][]byte{}}
}

func (s *MemStore) Load(key string) ([]byte, bool, error) {
	value, ok := s.values[key]
	return value, ok, nil
}

func (s *MemStore) Save(key string, value []byte) error {
	s.values[key] = append([]byte(nil), value...)
	return nil
}

func (s *MemStore) Delete(key string) error {
	delete(s.values, key)
	return nil
}
