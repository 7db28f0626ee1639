package repository

import "context"

// KeyValueStore is the persistence port of the inventory: opaque JSON documents stored under
// fixed logical keys.
type KeyValueStore interface {
	// Get returns domain.ErrNotFound when nothing is stored under key.
	Get(ctx context.Context, key string) ([]byte, error)
	Put(ctx context.Context, key string, value []byte) error
	// PutMany writes every entry atomically where the backend allows it.
	PutMany(ctx context.Context, entries map[string][]byte) error
}
