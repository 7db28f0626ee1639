package entity_test

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/inventario-ledger/internal/domain/entity"
)

const legacyItems = `[
  {"id":"a1","name":"Mug","sku":"MUG","cost":2.5,"price":6,"quantity":8,"category":"Home",
   "stockByWarehouse":{},"lastUpdated":1710498600000},
  {"id":"b2","name":"Hoodie","sku":"HD","cost":10,"price":30,"quantity":3,"category":"Clothing",
   "variants":[{"id":"v1","name":"S / Red","sku":"HD-S-RED","cost":10,"price":30,"quantity":3,
                "stockByWarehouse":{"MAIN_WAREHOUSE":3}}],
   "stockByWarehouse":{},"lastUpdated":1710498600000}
]`

func TestItem_LoadsLegacyRecords(t *testing.T) {
	var items []entity.Item
	require.NoError(t, json.Unmarshal([]byte(legacyItems), &items))
	require.Len(t, items, 2)

	simple, ok := items[0].Stock.(entity.SimpleStock)
	require.True(t, ok)
	assert.Empty(t, simple.ByWarehouse)
	assert.Equal(t, "2.5", items[0].Cost.String())
	assert.Equal(t, int64(1710498600000), items[0].LastUpdated.UnixMilli())

	vs, ok := items[1].Stock.(entity.VariantStock)
	require.True(t, ok)
	require.Len(t, vs.Variants, 1)
	assert.Equal(t, entity.StockMap{"MAIN_WAREHOUSE": 3}, vs.Variants[0].StockByWarehouse)
	v, found := items[1].FindVariant("v1")
	assert.True(t, found)
	assert.Equal(t, "S / Red", v.Name)
}

func TestItem_PersistsFlatShape(t *testing.T) {
	item := entity.Item{
		ID:          "b2",
		Name:        "Hoodie",
		Price:       decimal.NewFromInt(30),
		Quantity:    3,
		LastUpdated: time.UnixMilli(1710498600000),
		Stock: entity.VariantStock{Variants: []entity.Variant{
			{ID: "v1", Name: "S", Quantity: 3, StockByWarehouse: entity.StockMap{"W1": 3}},
		}},
	}
	raw, err := json.Marshal(item)
	require.NoError(t, err)

	var rec map[string]any
	require.NoError(t, json.Unmarshal(raw, &rec))
	assert.Equal(t, float64(1710498600000), rec["lastUpdated"])
	assert.Equal(t, map[string]any{}, rec["stockByWarehouse"])
	assert.Len(t, rec["variants"], 1)

	simple := entity.Item{ID: "a1", Quantity: 2, Stock: entity.SimpleStock{ByWarehouse: entity.StockMap{"W1": 2}}}
	raw, err = json.Marshal(simple)
	require.NoError(t, err)
	assert.NotContains(t, string(raw), `"variants"`)
	assert.Contains(t, string(raw), `"stockByWarehouse":{"W1":2}`)
}

func TestItem_CloneIsIndependent(t *testing.T) {
	item := entity.Item{Stock: entity.VariantStock{Variants: []entity.Variant{
		{ID: "v1", StockByWarehouse: entity.StockMap{"W1": 1}},
	}}}
	c := item.Clone()
	c.Variants()[0].StockByWarehouse["W1"] = 9
	c.Variants()[0].Quantity = 9

	assert.Equal(t, 1, item.Variants()[0].StockByWarehouse["W1"])
	assert.Equal(t, 0, item.Variants()[0].Quantity)
}

func TestTransaction_DateInMilliseconds(t *testing.T) {
	tx := entity.Transaction{
		ID:       "t1",
		Date:     time.UnixMilli(1710498600123),
		Type:     entity.TransactionSale,
		Quantity: 2,
		Total:    decimal.NewFromInt(40),
	}
	raw, err := json.Marshal(tx)
	require.NoError(t, err)
	assert.Contains(t, string(raw), `"date":1710498600123`)
	assert.NotContains(t, string(raw), "variantId")

	var back entity.Transaction
	require.NoError(t, json.Unmarshal(raw, &back))
	assert.True(t, back.Date.Equal(tx.Date))
	assert.True(t, back.IsSale())
	assert.Equal(t, "40", back.Total.String())
}
