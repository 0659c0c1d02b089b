package kvstore

import (
	"context"
	"encoding/json"
	"sort"
	"strings"
	"sync"
)

// MemoryStore is an in-process Store used by tests and local development.
// Update callbacks run under the write lock, which gives the same
// serialization guarantee the postgres implementation gets from row locks.
type MemoryStore struct {
	mu   sync.RWMutex
	data map[string]json.RawMessage
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{data: make(map[string]json.RawMessage)}
}

func (s *MemoryStore) Get(ctx context.Context, key string, dest interface{}) error {
	s.mu.RLock()
	raw, ok := s.data[key]
	s.mu.RUnlock()
	if !ok {
		return ErrNotFound
	}
	return json.Unmarshal(raw, dest)
}

func (s *MemoryStore) Set(ctx context.Context, key string, value interface{}) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return err
	}
	s.mu.Lock()
	s.data[key] = raw
	s.mu.Unlock()
	return nil
}

func (s *MemoryStore) GetByPrefix(ctx context.Context, prefix string) ([]json.RawMessage, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	keys := make([]string, 0)
	for key := range s.data {
		if strings.HasPrefix(key, prefix) {
			keys = append(keys, key)
		}
	}
	sort.Strings(keys)

	values := make([]json.RawMessage, 0, len(keys))
	for _, key := range keys {
		values = append(values, s.data[key])
	}
	return values, nil
}

func (s *MemoryStore) MGet(ctx context.Context, keys []string) ([]json.RawMessage, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	values := make([]json.RawMessage, len(keys))
	for i, key := range keys {
		if raw, ok := s.data[key]; ok {
			values[i] = raw
		}
	}
	return values, nil
}

func (s *MemoryStore) Update(ctx context.Context, fn func(txn Txn) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	// Stage writes so a failed callback leaves the store untouched.
	txn := &memTxn{store: s, staged: make(map[string]json.RawMessage)}
	if err := fn(txn); err != nil {
		return err
	}
	for key, raw := range txn.staged {
		s.data[key] = raw
	}
	return nil
}

type memTxn struct {
	store  *MemoryStore
	staged map[string]json.RawMessage
}

func (t *memTxn) Get(ctx context.Context, key string, dest interface{}) error {
	if raw, ok := t.staged[key]; ok {
		return json.Unmarshal(raw, dest)
	}
	raw, ok := t.store.data[key]
	if !ok {
		return ErrNotFound
	}
	return json.Unmarshal(raw, dest)
}

func (t *memTxn) Set(ctx context.Context, key string, value interface{}) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return err
	}
	t.staged[key] = raw
	return nil
}
