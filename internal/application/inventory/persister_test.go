package inventory_test

import (
	"bytes"
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/inventario-ledger/internal/application/inventory"
	"github.com/jhoicas/inventario-ledger/internal/domain/entity"
	domaininv "github.com/jhoicas/inventario-ledger/internal/domain/inventory"
	"github.com/jhoicas/inventario-ledger/internal/infrastructure/memory"
	"github.com/jhoicas/inventario-ledger/pkg/logger"
)

// countingKV records every batch written.
type countingKV struct {
	*memory.KVStore
	mu      sync.Mutex
	batches [][]string
	fail    bool
}

func (c *countingKV) PutMany(ctx context.Context, entries map[string][]byte) error {
	c.mu.Lock()
	keys := make([]string, 0, len(entries))
	for k := range entries {
		keys = append(keys, k)
	}
	c.batches = append(c.batches, keys)
	fail := c.fail
	c.mu.Unlock()
	if fail {
		return errors.New("disk full")
	}
	return c.KVStore.PutMany(ctx, entries)
}

func TestPersister_DrainsOnClose(t *testing.T) {
	kv := memory.NewKVStore()
	storage := inventory.NewStorage(kv, logger.Nop())
	svc, err := inventory.NewService(context.Background(), storage, domaininv.NewEngine(domaininv.PolicyStrict), logger.Nop())
	require.NoError(t, err)

	p := inventory.NewPersister(storage, logger.Nop())
	svc.Subscribe(p)

	item, err := svc.CreateItem(tshirt())
	require.NoError(t, err)
	for i := 0; i < 5; i++ {
		_, _, err = svc.Sell(inventory.SaleInput{ItemID: item.ID, WarehouseID: entity.DefaultWarehouseID, Quantity: 1})
		require.NoError(t, err)
	}
	_, err = svc.AddCatalogValue(entity.CatalogSizes, "XXXL")
	require.NoError(t, err)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	require.NoError(t, p.Close(ctx))

	// a fresh service over the same store sees the same state
	reloaded, err := inventory.NewService(context.Background(), inventory.NewStorage(kv, logger.Nop()),
		domaininv.NewEngine(domaininv.PolicyStrict), logger.Nop())
	require.NoError(t, err)

	got, err := reloaded.Item(item.ID)
	require.NoError(t, err)
	assert.Equal(t, 5, got.Quantity)
	assert.Equal(t, entity.StockMap{entity.DefaultWarehouseID: 5}, got.Stock.(entity.SimpleStock).ByWarehouse)
	assert.Len(t, reloaded.Snapshot().Transactions, 6)
	assert.Contains(t, reloaded.Catalog(entity.CatalogSizes), "XXXL")
}

func TestPersister_CoalescesKeys(t *testing.T) {
	kv := &countingKV{KVStore: memory.NewKVStore()}
	storage := inventory.NewStorage(kv, logger.Nop())
	p := inventory.NewPersister(storage, logger.Nop())

	st := inventory.State{Warehouses: []entity.Warehouse{{ID: "W1", Name: "Main", IsDefault: true}}}
	for i := 0; i < 50; i++ {
		p.StateChanged(st, []string{inventory.KeyWarehouses})
	}
	require.NoError(t, p.Close(context.Background()))

	kv.mu.Lock()
	defer kv.mu.Unlock()
	require.NotEmpty(t, kv.batches)
	assert.LessOrEqual(t, len(kv.batches), 50)
	for _, b := range kv.batches {
		assert.Equal(t, []string{inventory.KeyWarehouses}, b)
	}

	raw, err := kv.Get(context.Background(), inventory.KeyWarehouses)
	require.NoError(t, err)
	assert.JSONEq(t, `[{"id":"W1","name":"Main","isDefault":true}]`, string(raw))
}

func TestPersister_LogsWriteFailures(t *testing.T) {
	kv := &countingKV{KVStore: memory.NewKVStore(), fail: true}
	var buf bytes.Buffer
	log := logger.New(logger.Config{Env: "production", Level: "debug", Out: &buf})
	p := inventory.NewPersister(inventory.NewStorage(kv, log), log)

	p.StateChanged(inventory.State{}, []string{inventory.KeyTransactions})
	require.NoError(t, p.Close(context.Background()))

	assert.Contains(t, buf.String(), "disk full")
	assert.Contains(t, buf.String(), "persist inventory state")

	_, err := kv.Get(context.Background(), inventory.KeyTransactions)
	assert.Error(t, err)
}

func TestPersister_CloseIsIdempotent(t *testing.T) {
	p := inventory.NewPersister(inventory.NewStorage(memory.NewKVStore(), logger.Nop()), logger.Nop())
	require.NoError(t, p.Close(context.Background()))
	require.NoError(t, p.Close(context.Background()))

	// changes after close are dropped without panicking
	p.StateChanged(inventory.State{}, []string{inventory.KeyItems})
}
