package store

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/pkg/errors"
)

var _ Store = (*FileStore)(nil)

// FileStore persists each key as a file under a data folder, surviving
// process restarts. Writes go to a temp file first and are renamed into
// place, so a crash never leaves a half-written value. There is no
// cross-key transaction: a crash between two Sets can leave the record
// inconsistent, which the hydration path tolerates.
type FileStore struct {
	dir string
}

// NewFileStore creates the data folder if needed.
func NewFileStore(dir string) (*FileStore, error) {
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return nil, errors.Wrap(err, "[NewFileStore] create data folder")
	}
	return &FileStore{dir: dir}, nil
}

func (fs *FileStore) Get(key string) (string, bool, error) {
	raw, err := os.ReadFile(fs.path(key))
	if os.IsNotExist(err) {
		return "", false, nil
	}
	if err != nil {
		return "", false, errors.Wrap(err, "[FileStore.Get] read "+key)
	}
	return string(raw), true, nil
}

func (fs *FileStore) Set(key, value string) error {
	path := fs.path(key)
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, []byte(value), 0o600); err != nil {
		return errors.Wrap(err, "[FileStore.Set] write "+key)
	}
	if err := os.Rename(tmp, path); err != nil {
		return errors.Wrap(err, "[FileStore.Set] rename "+key)
	}
	return nil
}

func (fs *FileStore) Delete(key string) error {
	err := os.Remove(fs.path(key))
	if err != nil && !os.IsNotExist(err) {
		return errors.Wrap(err, "[FileStore.Delete] remove "+key)
	}
	return nil
}

func (fs *FileStore) path(key string) string {
	// Keys are a closed set, but never trust them as path components.
	safe := strings.ReplaceAll(key, string(os.PathSeparator), "_")
	return filepath.Join(fs.dir, safe)
}
