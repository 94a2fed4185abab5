package store

import (
	"context"
	"slices"
	"sync"

	"github.com/ougirez/solarscope/internal/pkg/constants"
)

type memoryStore struct {
	mx      sync.RWMutex
	entries map[string][]byte
}

func NewMemoryStore() KVStore {
	return &memoryStore{entries: make(map[string][]byte)}
}

func (s *memoryStore) Get(_ context.Context, key string) ([]byte, error) {
	s.mx.RLock()
	defer s.mx.RUnlock()

	v, ok := s.entries[key]
	if !ok {
		return nil, constants.ErrDBNotFound
	}
	return slices.Clone(v), nil
}

func (s *memoryStore) Set(_ context.Context, key string, value []byte) error {
	s.mx.Lock()
	defer s.mx.Unlock()

	s.entries[key] = slices.Clone(value)
	return nil
}

func (s *memoryStore) Clear(_ context.Context, key string) error {
	s.mx.Lock()
	defer s.mx.Unlock()

	delete(s.entries, key)
	return nil
}
