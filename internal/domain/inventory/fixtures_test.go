package inventory_test

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/inventario-ledger/internal/domain/entity"
)

var (
	testNow = time.Date(2024, 3, 15, 10, 30, 0, 0, time.UTC)

	warehouses = []entity.Warehouse{
		{ID: "W1", Name: "Main", IsDefault: true},
		{ID: "W2", Name: "Annex"},
		{ID: "W3", Name: "Studio"},
	}
)

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func ptrDec(s string) *decimal.Decimal {
	d := dec(s)
	return &d
}

func ptrInt(n int) *int {
	return &n
}

func simpleItem(qty int, stock entity.StockMap) entity.Item {
	return entity.Item{
		ID:       "item-1",
		Name:     "T-Shirt",
		SKU:      "TS",
		Category: "Clothing",
		Cost:     dec("8"),
		Price:    dec("20"),
		Quantity: qty,
		Stock:    entity.SimpleStock{ByWarehouse: stock},
	}
}

func variantItem(variants ...entity.Variant) entity.Item {
	total := 0
	for _, v := range variants {
		total += v.Quantity
	}
	return entity.Item{
		ID:       "item-2",
		Name:     "Hoodie",
		SKU:      "HD",
		Category: "Clothing",
		Cost:     dec("15"),
		Price:    dec("40"),
		Quantity: total,
		Stock:    entity.VariantStock{Variants: variants},
	}
}

func variant(id, name string, stock entity.StockMap) entity.Variant {
	return entity.Variant{
		ID:               id,
		Name:             name,
		SKU:              "HD-" + id,
		Cost:             dec("12.5"),
		Price:            dec("35"),
		Quantity:         stock.Total(),
		StockByWarehouse: stock,
	}
}
