package memory

import (
	"context"
	"sync"

	"github.com/jhoicas/inventario-ledger/internal/domain"
	"github.com/jhoicas/inventario-ledger/internal/domain/repository"
)

var _ repository.KeyValueStore = (*KVStore)(nil)

// KVStore keeps documents in process memory. Values are copied on the way in and out.
type KVStore struct {
	mu   sync.RWMutex
	data map[string][]byte
}

// NewKVStore builds an empty store.
func NewKVStore() *KVStore {
	return &KVStore{data: make(map[string][]byte)}
}

func (s *KVStore) Get(_ context.Context, key string) ([]byte, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	v, ok := s.data[key]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return append([]byte(nil), v...), nil
}

func (s *KVStore) Put(_ context.Context, key string, value []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data[key] = append([]byte(nil), value...)
	return nil
}

func (s *KVStore) PutMany(_ context.Context, entries map[string][]byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for k, v := range entries {
		s.data[k] = append([]byte(nil), v...)
	}
	return nil
}
