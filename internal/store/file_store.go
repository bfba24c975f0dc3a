package store

import (
	"context"
	"os"
	"path/filepath"
	"sync"

	"stackmeter/internal/domain"
)

const fileMode os.FileMode = 0o600

// FileStore keeps one file per key under dir.
type FileStore struct {
	dir string
	mu  sync.Mutex
}

// NewFileStore returns a FileStore rooted at dir.
func NewFileStore(dir string) *FileStore { return &FileStore{dir: dir} }

// Dir returns the directory the store writes to.
func (s *FileStore) Dir() string { return s.dir }

// Load returns the text stored under key and whether it was present.
func (s *FileStore) Load(ctx context.Context, key string) (string, bool, error) {
	if err := validateKey(key); err != nil {
		return "", false, err
	}
	if err := ctx.Err(); err != nil {
		return "", false, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	b, err := readFile(filepath.Join(s.dir, key))
	if err != nil {
		return "", false, &StorageError{Op: "load", Key: key, Err: err}
	}
	if b == nil {
		return "", false, nil
	}
	return string(b), true, nil
}

// Save atomically replaces the value under key.
func (s *FileStore) Save(ctx context.Context, key, text string) error {
	if err := validateKey(key); err != nil {
		return err
	}
	if err := ctx.Err(); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := writeFile(filepath.Join(s.dir, key), []byte(text), fileMode); err != nil {
		return &StorageError{Op: "save", Key: key, Err: err}
	}
	return nil
}

// SaveAll stages every entry to a temp file before renaming any of them, so
// a failure while writing leaves all previous values in place.
func (s *FileStore) SaveAll(ctx context.Context, entries []domain.Entry) error {
	for _, e := range entries {
		if err := validateKey(e.Key); err != nil {
			return err
		}
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	staged := make([]string, 0, len(entries))
	defer func() {
		for _, tmp := range staged {
			_ = os.Remove(tmp)
		}
	}()

	for _, e := range entries {
		if err := ctx.Err(); err != nil {
			return err
		}
		tmp, err := stageFile(filepath.Join(s.dir, e.Key), []byte(e.Text), fileMode)
		if err != nil {
			return &StorageError{Op: "stage", Key: e.Key, Err: err}
		}
		staged = append(staged, tmp)
	}
	for i, e := range entries {
		if err := os.Rename(staged[i], filepath.Join(s.dir, e.Key)); err != nil {
			return &StorageError{Op: "commit", Key: e.Key, Err: err}
		}
	}
	return nil
}

// Compile-time assertions that FileStore implements the store contracts.
var (
	_ domain.BlobStore  = (*FileStore)(nil)
	_ domain.BatchSaver = (*FileStore)(nil)
)
