package inventory

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jhoicas/inventario-ledger/internal/domain"
	"github.com/jhoicas/inventario-ledger/internal/domain/entity"
	domaininv "github.com/jhoicas/inventario-ledger/internal/domain/inventory"
	"github.com/jhoicas/inventario-ledger/internal/domain/repository"
	"github.com/jhoicas/inventario-ledger/pkg/logger"
)

// Storage keys. They match the documents written by earlier versions of the app.
const (
	KeyItems        = "inventory_app_v2"
	KeyCategories   = "inventory_categories_v1"
	KeySizes        = "inventory_sizes_v1"
	KeyColors       = "inventory_colors_v1"
	KeyOthers       = "inventory_others_v1"
	KeyTransactions = "inventory_transactions_v2"
	KeyWarehouses   = "inventory_warehouses_v1"
)

// AllKeys lists every document the inventory persists.
var AllKeys = []string{KeyItems, KeyCategories, KeySizes, KeyColors, KeyOthers, KeyTransactions, KeyWarehouses}

var catalogKeys = map[entity.CatalogKind]string{
	entity.CatalogCategories: KeyCategories,
	entity.CatalogSizes:      KeySizes,
	entity.CatalogColors:     KeyColors,
	entity.CatalogOthers:     KeyOthers,
}

// State is a snapshot of the whole inventory. Slices are replaced, never mutated in place,
// so a snapshot stays valid after later transitions.
type State struct {
	Items        []entity.Item
	Transactions []entity.Transaction
	Warehouses   []entity.Warehouse
	Catalogs     entity.Catalogs
}

// Storage maps State to and from the key-value documents.
type Storage struct {
	kv  repository.KeyValueStore
	log *logger.Logger
}

// NewStorage builds the storage over a key-value backend.
func NewStorage(kv repository.KeyValueStore, log *logger.Logger) *Storage {
	return &Storage{kv: kv, log: log}
}

// Load reads every document. Missing or unreadable documents fall back to their defaults;
// only backend failures are returned.
func (s *Storage) Load(ctx context.Context) (State, error) {
	defaults := domaininv.DefaultCatalogs()
	var (
		st  State
		err error
	)
	if st.Items, err = loadDoc(ctx, s, KeyItems, []entity.Item{}); err != nil {
		return State{}, err
	}
	if st.Transactions, err = loadDoc(ctx, s, KeyTransactions, []entity.Transaction{}); err != nil {
		return State{}, err
	}
	if st.Warehouses, err = loadDoc(ctx, s, KeyWarehouses, []entity.Warehouse{}); err != nil {
		return State{}, err
	}
	for kind, key := range catalogKeys {
		values, err := loadDoc(ctx, s, key, defaults.List(kind))
		if err != nil {
			return State{}, err
		}
		st.Catalogs = st.Catalogs.With(kind, values)
	}
	return st, nil
}

func loadDoc[T any](ctx context.Context, s *Storage, key string, def T) (T, error) {
	raw, err := s.kv.Get(ctx, key)
	if errors.Is(err, domain.ErrNotFound) {
		return def, nil
	}
	if err != nil {
		return def, fmt.Errorf("load %s: %w", key, err)
	}
	var out T
	if err := json.Unmarshal(raw, &out); err != nil {
		s.log.Warn().Err(err).Str("key", key).Msg("unreadable document, using default")
		return def, nil
	}
	return out, nil
}

// Save writes the documents for the given keys in one batch.
func (s *Storage) Save(ctx context.Context, st State, keys ...string) error {
	if len(keys) == 0 {
		return nil
	}
	entries := make(map[string][]byte, len(keys))
	for _, key := range keys {
		raw, err := encodeDoc(st, key)
		if err != nil {
			return err
		}
		entries[key] = raw
	}
	if err := s.kv.PutMany(ctx, entries); err != nil {
		return fmt.Errorf("save %v: %w", keys, err)
	}
	return nil
}

func encodeDoc(st State, key string) ([]byte, error) {
	var v any
	switch key {
	case KeyItems:
		v = nonNil(st.Items)
	case KeyTransactions:
		v = nonNil(st.Transactions)
	case KeyWarehouses:
		v = nonNil(st.Warehouses)
	default:
		kind, ok := catalogKind(key)
		if !ok {
			return nil, fmt.Errorf("unknown storage key %q", key)
		}
		v = nonNil(st.Catalogs.List(kind))
	}
	return json.Marshal(v)
}

func catalogKind(key string) (entity.CatalogKind, bool) {
	for kind, k := range catalogKeys {
		if k == key {
			return kind, true
		}
	}
	return "", false
}

// nonNil keeps empty lists encoded as [] rather than null.
func nonNil[T any](s []T) []T {
	if s == nil {
		return []T{}
	}
	return s
}
