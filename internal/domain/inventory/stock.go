package inventory

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/inventario-ledger/internal/domain/entity"
)

// newID generates identifiers for items, variants, warehouses and transactions.
var newID = func() string { return uuid.NewString() }

// withdraw subtracts qty from bucket wid, floored at zero. m is not modified.
func withdraw(m entity.StockMap, wid string, qty int) entity.StockMap {
	out := m.Clone()
	out[wid] = max(0, out[wid]-qty)
	return out
}

// deposit adds qty to bucket wid. m is not modified.
func deposit(m entity.StockMap, wid string, qty int) entity.StockMap {
	out := m.Clone()
	out[wid] = max(0, out[wid]+qty)
	return out
}

// reconcileDefault makes the map declare total units by resizing the default bucket only:
// default = max(0, total - stock held elsewhere).
func reconcileDefault(m entity.StockMap, defaultID string, total int) entity.StockMap {
	out := m.Clone()
	other := 0
	for id, qty := range out {
		if id != defaultID {
			other += qty
		}
	}
	out[defaultID] = max(0, total-other)
	return out
}

// Distribution returns the units per warehouse of an item. In variant mode the variant
// maps are summed.
func Distribution(item entity.Item) entity.StockMap {
	switch st := item.Stock.(type) {
	case entity.VariantStock:
		out := entity.StockMap{}
		for _, v := range st.Variants {
			for id, qty := range v.StockByWarehouse {
				out[id] += qty
			}
		}
		return out
	case entity.SimpleStock:
		return st.ByWarehouse.Clone()
	}
	return entity.StockMap{}
}

// StockHeldIn sums the units every item keeps in the given warehouse.
func StockHeldIn(items []entity.Item, warehouseID string) int {
	total := 0
	for _, it := range items {
		total += Distribution(it)[warehouseID]
	}
	return total
}

// InventoryValue values the item at cost. In variant mode each variant contributes its own
// cost times its quantity.
func InventoryValue(item entity.Item) decimal.Decimal {
	if vs, ok := item.Stock.(entity.VariantStock); ok {
		total := decimal.Zero
		for _, v := range vs.Variants {
			total = total.Add(v.Cost.Mul(decimal.NewFromInt(int64(v.Quantity))))
		}
		return total
	}
	return item.Cost.Mul(decimal.NewFromInt(int64(item.Quantity)))
}
