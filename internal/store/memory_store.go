package store

import (
	"context"
	"maps"
	"sync"

	"stackmeter/internal/domain"
)

// MemoryStore keeps values in a map. FailSaves makes every write fail, which
// lets tests observe that nothing was committed.
type MemoryStore struct {
	mu        sync.RWMutex
	values    map[string]string
	saves     int
	FailSaves error
}

// NewMemoryStore returns an empty MemoryStore.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{values: make(map[string]string)}
}

func (s *MemoryStore) Load(ctx context.Context, key string) (string, bool, error) {
	if err := validateKey(key); err != nil {
		return "", false, err
	}
	if err := ctx.Err(); err != nil {
		return "", false, err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	v, ok := s.values[key]
	return v, ok, nil
}

func (s *MemoryStore) Save(ctx context.Context, key, text string) error {
	return s.SaveAll(ctx, []domain.Entry{{Key: key, Text: text}})
}

// SaveAll applies every entry under one lock, or none of them.
func (s *MemoryStore) SaveAll(ctx context.Context, entries []domain.Entry) error {
	if len(entries) == 0 {
		return nil
	}
	for _, e := range entries {
		if err := validateKey(e.Key); err != nil {
			return err
		}
	}
	if err := ctx.Err(); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.FailSaves != nil {
		return &StorageError{Op: "save", Key: entries[0].Key, Err: s.FailSaves}
	}
	for _, e := range entries {
		s.values[e.Key] = e.Text
	}
	s.saves += len(entries)
	return nil
}

// Snapshot returns a copy of every stored value.
func (s *MemoryStore) Snapshot() map[string]string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return maps.Clone(s.values)
}

// Saves returns the number of values written so far.
func (s *MemoryStore) Saves() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.saves
}

// Compile-time assertions that MemoryStore implements the store contracts.
var (
	_ domain.BlobStore  = (*MemoryStore)(nil)
	_ domain.BatchSaver = (*MemoryStore)(nil)
)
