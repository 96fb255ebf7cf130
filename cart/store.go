package cart

import (
	"errors"
	"io/fs"
	"os"
)

// Store is the persisted cart store. The whole cart is read and written as
// a single blob; there are no partial updates at the storage layer.
type Store interface {
	Load() ([]byte, bool)
	Save(data []byte) error
	Clear() error
}

// FileStore keeps the serialized cart in one JSON file per browser profile,
// durable across restarts.
type FileStore struct {
	path string
}

func NewFileStore(path string) *FileStore {
	return &FileStore{path: path}
}

// Load returns (nil, false) when the file is missing or unreadable; the
// caller treats that as an empty cart.
func (s *FileStore) Load() ([]byte, bool) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		return nil, false
	}
	return data, true
}

func (s *FileStore) Save(data []byte) error {
	return os.WriteFile(s.path, data, 0o644)
}

func (s *FileStore) Clear() error {
	err := os.Remove(s.path)
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return err
	}
	return nil
}
