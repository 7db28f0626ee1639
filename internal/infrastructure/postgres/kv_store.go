package postgres

import (
	"context"
	"errors"
	"fmt"
	"maps"
	"slices"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/jhoicas/inventario-ledger/internal/domain"
	"github.com/jhoicas/inventario-ledger/internal/domain/repository"
)

var _ repository.KeyValueStore = (*KVStore)(nil)

const schema = `
	CREATE TABLE IF NOT EXISTS kv_store (
		key        TEXT PRIMARY KEY,
		value      JSONB NOT NULL,
		updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
	)`

const upsert = `
	INSERT INTO kv_store (key, value, updated_at)
	VALUES ($1, $2, now())
	ON CONFLICT (key) DO UPDATE SET value = EXCLUDED.value, updated_at = EXCLUDED.updated_at`

// KVStore keeps each document as one JSONB row of the kv_store table.
type KVStore struct {
	pool *pgxpool.Pool
	tx   *TxRunner
}

// NewKVStore builds the adapter. Call EnsureSchema once before use.
func NewKVStore(pool *pgxpool.Pool) *KVStore {
	return &KVStore{pool: pool, tx: NewTxRunner(pool)}
}

// EnsureSchema creates the kv_store table if it does not exist.
func (s *KVStore) EnsureSchema(ctx context.Context) error {
	if _, err := s.pool.Exec(ctx, schema); err != nil && !isUniqueViolation(err) {
		return fmt.Errorf("create kv_store: %w", err)
	}
	return nil
}

// Get returns the document stored under key, or domain.ErrNotFound.
func (s *KVStore) Get(ctx context.Context, key string) ([]byte, error) {
	var value []byte
	err := s.pool.QueryRow(ctx, `SELECT value::text FROM kv_store WHERE key = $1`, key).Scan(&value)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("get %s: %w", key, err)
	}
	return value, nil
}

// Put stores one document.
func (s *KVStore) Put(ctx context.Context, key string, value []byte) error {
	return put(ctx, s.pool, key, value)
}

// PutMany stores all entries in one transaction.
func (s *KVStore) PutMany(ctx context.Context, entries map[string][]byte) error {
	if len(entries) == 0 {
		return nil
	}
	return s.tx.Run(ctx, func(q Querier) error {
		// fixed order keeps concurrent batches from deadlocking on row locks
		for _, key := range slices.Sorted(maps.Keys(entries)) {
			if err := put(ctx, q, key, entries[key]); err != nil {
				return err
			}
		}
		return nil
	})
}

func put(ctx context.Context, q Querier, key string, value []byte) error {
	if _, err := q.Exec(ctx, upsert, key, string(value)); err != nil {
		return fmt.Errorf("put %s: %w", key, err)
	}
	return nil
}
