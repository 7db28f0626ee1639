package redis

import (
	"context"
	"errors"
	"fmt"

	goredis "github.com/redis/go-redis/v9"

	"github.com/jhoicas/inventario-ledger/internal/domain"
	"github.com/jhoicas/inventario-ledger/internal/domain/repository"
	"github.com/jhoicas/inventario-ledger/pkg/config"
)

var _ repository.KeyValueStore = (*KVStore)(nil)

// KVStore keeps each document as a plain string value under prefix+key.
type KVStore struct {
	client *goredis.Client
	prefix string
}

// NewClient connects to Redis and checks the connection.
func NewClient(ctx context.Context, cfg config.RedisConfig) (*goredis.Client, error) {
	client := goredis.NewClient(&goredis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("ping redis %s: %w", cfg.Addr, err)
	}
	return client, nil
}

// NewKVStore builds the adapter.
func NewKVStore(client *goredis.Client, prefix string) *KVStore {
	return &KVStore{client: client, prefix: prefix}
}

// Get returns the document stored under key, or domain.ErrNotFound.
func (s *KVStore) Get(ctx context.Context, key string) ([]byte, error) {
	val, err := s.client.Get(ctx, s.prefix+key).Bytes()
	if err != nil {
		if errors.Is(err, goredis.Nil) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("get %s: %w", key, err)
	}
	return val, nil
}

// Put stores one document without expiry.
func (s *KVStore) Put(ctx context.Context, key string, value []byte) error {
	if err := s.client.Set(ctx, s.prefix+key, value, 0).Err(); err != nil {
		return fmt.Errorf("put %s: %w", key, err)
	}
	return nil
}

// PutMany stores all entries in one MULTI/EXEC block.
func (s *KVStore) PutMany(ctx context.Context, entries map[string][]byte) error {
	if len(entries) == 0 {
		return nil
	}
	_, err := s.client.TxPipelined(ctx, func(pipe goredis.Pipeliner) error {
		for key, value := range entries {
			pipe.Set(ctx, s.prefix+key, value, 0)
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("put batch: %w", err)
	}
	return nil
}

// Ping reports whether the server is reachable.
func (s *KVStore) Ping(ctx context.Context) error {
	return s.client.Ping(ctx).Err()
}
