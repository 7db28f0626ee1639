package inventory

import "github.com/jhoicas/inventario-ledger/internal/domain/entity"

// Repair backfills orphaned quantity: a variant (or simple item) with quantity > 0 whose
// warehouse map sums to zero gets its whole quantity in the default warehouse. Other items
// are returned as they are. Running it twice yields the same result as running it once.
// changed tells the caller to persist the repaired list.
func Repair(items []entity.Item, defaultWarehouseID string) ([]entity.Item, bool) {
	out := make([]entity.Item, len(items))
	changed := false
	for i, it := range items {
		repaired, ok := repairItem(it, defaultWarehouseID)
		out[i] = repaired
		changed = changed || ok
	}
	return out, changed
}

func repairItem(it entity.Item, defaultWarehouseID string) (entity.Item, bool) {
	switch st := it.Stock.(type) {
	case entity.VariantStock:
		touched := false
		for _, v := range st.Variants {
			if orphaned(v.Quantity, v.StockByWarehouse) {
				touched = true
				break
			}
		}
		if !touched {
			return it, false
		}
		out := it.Clone()
		for i, v := range out.Variants() {
			if orphaned(v.Quantity, v.StockByWarehouse) {
				out.Variants()[i].StockByWarehouse = entity.StockMap{defaultWarehouseID: v.Quantity}
			}
		}
		return out, true
	case entity.SimpleStock:
		if !orphaned(it.Quantity, st.ByWarehouse) {
			return it, false
		}
	default:
		if it.Quantity <= 0 {
			return it, false
		}
	}
	out := it
	out.Stock = entity.SimpleStock{ByWarehouse: entity.StockMap{defaultWarehouseID: it.Quantity}}
	return out, true
}

func orphaned(quantity int, m entity.StockMap) bool {
	return quantity > 0 && m.Total() == 0
}
