package inventory

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/inventario-ledger/internal/domain"
	"github.com/jhoicas/inventario-ledger/internal/domain/entity"
)

// VariantDraft is a variant as submitted by a client. Cost, Price and Quantity are pointers
// so a missing value can be told apart from zero. ID is only set when editing an existing
// variant.
type VariantDraft struct {
	ID       string
	Name     string
	SKU      string
	Cost     *decimal.Decimal
	Price    *decimal.Decimal
	Quantity *int
}

// ItemDraft holds the editable fields of an item. A non-empty Variants list selects variant
// mode and Quantity is then ignored.
type ItemDraft struct {
	Name     string
	SKU      string
	Category string
	Cost     decimal.Decimal
	Price    decimal.Decimal
	Quantity int
	Variants []VariantDraft
}

func validateDraft(d ItemDraft) error {
	if strings.TrimSpace(d.Name) == "" {
		return domain.ErrInvalidInput
	}
	if d.Cost.IsNegative() || d.Price.IsNegative() {
		return domain.ErrInvalidInput
	}
	if len(d.Variants) == 0 {
		if d.Quantity < 0 {
			return domain.ErrInvalidInput
		}
		return nil
	}
	if len(d.Variants) > MaxVariants {
		return domain.ErrVariantLimitExceeded
	}
	seen := make(map[string]struct{}, len(d.Variants))
	for _, v := range d.Variants {
		name := strings.TrimSpace(v.Name)
		if name == "" {
			return domain.ErrInvalidVariant
		}
		if _, dup := seen[name]; dup {
			return domain.ErrInvalidVariant
		}
		seen[name] = struct{}{}
		if v.Cost == nil || v.Price == nil || v.Quantity == nil {
			return domain.ErrInvalidVariant
		}
		if v.Cost.IsNegative() || v.Price.IsNegative() || *v.Quantity < 0 {
			return domain.ErrInvalidVariant
		}
	}
	return nil
}

// CreateItem builds a new item with all of its stock in the default warehouse and the
// IN_INITIAL ledger entries for every unit-holding variant (or the item itself).
func CreateItem(d ItemDraft, defaultWarehouse entity.Warehouse, now time.Time) (entity.Item, []entity.Transaction, error) {
	if err := validateDraft(d); err != nil {
		return entity.Item{}, nil, err
	}
	item := entity.Item{
		ID:          newID(),
		Name:        strings.TrimSpace(d.Name),
		SKU:         strings.TrimSpace(d.SKU),
		Category:    d.Category,
		Cost:        d.Cost,
		Price:       d.Price,
		LastUpdated: now,
	}

	var txns []entity.Transaction
	if len(d.Variants) == 0 {
		item.Quantity = d.Quantity
		item.Stock = entity.SimpleStock{ByWarehouse: entity.StockMap{defaultWarehouse.ID: d.Quantity}}
		if d.Quantity > 0 {
			txns = append(txns, initialEntry(item, nil, defaultWarehouse, now))
		}
		return item, txns, nil
	}

	variants := make([]entity.Variant, 0, len(d.Variants))
	for _, vd := range d.Variants {
		v := entity.Variant{
			ID:               newID(),
			Name:             strings.TrimSpace(vd.Name),
			SKU:              strings.TrimSpace(vd.SKU),
			Cost:             *vd.Cost,
			Price:            *vd.Price,
			Quantity:         *vd.Quantity,
			StockByWarehouse: entity.StockMap{defaultWarehouse.ID: *vd.Quantity},
		}
		variants = append(variants, v)
		item.Quantity += v.Quantity
	}
	item.Stock = entity.VariantStock{Variants: variants}
	for i := range variants {
		if variants[i].Quantity > 0 {
			txns = append(txns, initialEntry(item, &variants[i], defaultWarehouse, now))
		}
	}
	return item, txns, nil
}

func initialEntry(item entity.Item, v *entity.Variant, wh entity.Warehouse, now time.Time) entity.Transaction {
	u := stockUnit{sku: item.SKU, cost: item.Cost, price: item.Price, quantity: item.Quantity}
	if v != nil {
		u = variantUnit(item, *v)
	}
	t := u.entry(item, entity.TransactionInitial, u.quantity, u.cost, now)
	t.ToWarehouseID = wh.ID
	t.WarehouseName = wh.Name
	return t
}

// EditItem merges the draft into an existing item. Changes to a declared total are absorbed
// by the default warehouse bucket only: default = max(0, newTotal - stock elsewhere). The
// same rule applies per variant; variants matched by ID keep their distribution and new ones
// start in the default warehouse. No ledger entry is produced.
func EditItem(existing entity.Item, d ItemDraft, defaultWarehouseID string, now time.Time) (entity.Item, error) {
	if err := validateDraft(d); err != nil {
		return entity.Item{}, err
	}
	item := entity.Item{
		ID:          existing.ID,
		Name:        strings.TrimSpace(d.Name),
		SKU:         strings.TrimSpace(d.SKU),
		Category:    d.Category,
		Cost:        d.Cost,
		Price:       d.Price,
		LastUpdated: now,
	}

	if len(d.Variants) == 0 {
		var current entity.StockMap
		if st, ok := existing.Stock.(entity.SimpleStock); ok {
			current = st.ByWarehouse
		}
		item.Quantity = d.Quantity
		item.Stock = entity.SimpleStock{ByWarehouse: reconcileDefault(current, defaultWarehouseID, d.Quantity)}
		return item, nil
	}

	variants := make([]entity.Variant, 0, len(d.Variants))
	for _, vd := range d.Variants {
		qty := *vd.Quantity
		v := entity.Variant{
			Name:     strings.TrimSpace(vd.Name),
			SKU:      strings.TrimSpace(vd.SKU),
			Cost:     *vd.Cost,
			Price:    *vd.Price,
			Quantity: qty,
		}
		if prev, ok := existing.FindVariant(vd.ID); ok && vd.ID != "" {
			v.ID = prev.ID
			v.StockByWarehouse = reconcileDefault(prev.StockByWarehouse, defaultWarehouseID, qty)
		} else {
			v.ID = newID()
			v.StockByWarehouse = entity.StockMap{defaultWarehouseID: qty}
		}
		variants = append(variants, v)
		item.Quantity += qty
	}
	item.Stock = entity.VariantStock{Variants: variants}
	return item, nil
}
