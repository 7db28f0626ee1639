package inventory

import (
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/inventario-ledger/internal/domain"
	"github.com/jhoicas/inventario-ledger/internal/domain/entity"
)

// StockPolicy decides what happens when a sale or transfer asks for more units than the
// source warehouse holds.
type StockPolicy int

const (
	// PolicyStrict rejects the operation with ErrInsufficientStock.
	PolicyStrict StockPolicy = iota
	// PolicyClamp applies the operation and floors the warehouse bucket at zero.
	PolicyClamp
)

// ParseStockPolicy reads "strict" or "clamp". Empty means strict.
func ParseStockPolicy(s string) (StockPolicy, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "strict":
		return PolicyStrict, nil
	case "clamp":
		return PolicyClamp, nil
	}
	return PolicyStrict, fmt.Errorf("unknown stock policy %q: %w", s, domain.ErrInvalidInput)
}

func (p StockPolicy) String() string {
	if p == PolicyClamp {
		return "clamp"
	}
	return "strict"
}

// Engine applies stock movements to items. It is pure: every method returns a new item and
// the ledger entry describing the movement, leaving its inputs untouched. Zero or negative
// quantities are a no-op and return the item unchanged with a nil entry.
type Engine struct {
	Policy StockPolicy
}

// NewEngine builds an engine with the given policy.
func NewEngine(policy StockPolicy) Engine {
	return Engine{Policy: policy}
}

// stockUnit is the stock holder an operation targets: a variant, or the item itself in
// simple mode.
type stockUnit struct {
	variantIdx  int
	variantID   string
	variantName string
	sku         string
	cost        decimal.Decimal
	price       decimal.Decimal
	quantity    int
	stock       entity.StockMap
}

func variantUnit(item entity.Item, v entity.Variant) stockUnit {
	sku := v.SKU
	if sku == "" {
		sku = item.SKU
	}
	return stockUnit{
		variantID:   v.ID,
		variantName: v.Name,
		sku:         sku,
		cost:        v.Cost,
		price:       v.Price,
		quantity:    v.Quantity,
		stock:       v.StockByWarehouse,
	}
}

func resolveUnit(item entity.Item, variantID string) (stockUnit, error) {
	switch st := item.Stock.(type) {
	case entity.VariantStock:
		if variantID == "" {
			return stockUnit{}, domain.ErrVariantRequired
		}
		for i, v := range st.Variants {
			if v.ID == variantID {
				u := variantUnit(item, v)
				u.variantIdx = i
				return u, nil
			}
		}
		return stockUnit{}, domain.ErrVariantNotFound
	case entity.SimpleStock:
		if variantID != "" {
			return stockUnit{}, domain.ErrVariantNotFound
		}
		return stockUnit{variantIdx: -1, sku: item.SKU, cost: item.Cost, price: item.Price, quantity: item.Quantity, stock: st.ByWarehouse}, nil
	}
	if variantID != "" {
		return stockUnit{}, domain.ErrVariantNotFound
	}
	return stockUnit{variantIdx: -1, sku: item.SKU, cost: item.Cost, price: item.Price, quantity: item.Quantity}, nil
}

// apply writes the unit back into a copy of the item. In variant mode the item quantity is
// recomputed as the sum over all variants.
func (u stockUnit) apply(item entity.Item, now time.Time) entity.Item {
	out := item.Clone()
	out.LastUpdated = now
	if u.variantIdx < 0 {
		out.Quantity = u.quantity
		out.Stock = entity.SimpleStock{ByWarehouse: u.stock}
		return out
	}
	variants := out.Variants()
	variants[u.variantIdx].Quantity = u.quantity
	variants[u.variantIdx].StockByWarehouse = u.stock
	out.Quantity = 0
	for _, v := range variants {
		out.Quantity += v.Quantity
	}
	return out
}

func (u stockUnit) entry(item entity.Item, typ entity.TransactionType, qty int, unitCost decimal.Decimal, now time.Time) entity.Transaction {
	t := entity.Transaction{
		ID:          newID(),
		Date:        now,
		ItemID:      item.ID,
		ItemName:    item.Name,
		VariantID:   u.variantID,
		VariantName: u.variantName,
		SKU:         u.sku,
		Quantity:    qty,
		UnitCost:    unitCost,
		UnitPrice:   u.price,
		Type:        typ,
	}
	n := decimal.NewFromInt(int64(qty))
	switch typ {
	case entity.TransactionSale:
		t.Total = u.price.Mul(n)
	case entity.TransactionTransfer:
		t.UnitCost = decimal.Zero
		t.UnitPrice = decimal.Zero
		t.Total = decimal.Zero
	default:
		t.Total = unitCost.Mul(n)
	}
	return t
}

// Sell removes qty units from a warehouse and records an OUT_SALE entry at the unit's own
// cost and price.
func (e Engine) Sell(item entity.Item, variantID string, warehouses []entity.Warehouse, warehouseID string, qty int, now time.Time) (entity.Item, *entity.Transaction, error) {
	if qty <= 0 {
		return item, nil, nil
	}
	wh, ok := FindWarehouse(warehouses, warehouseID)
	if !ok {
		return item, nil, domain.ErrWarehouseNotFound
	}
	u, err := resolveUnit(item, variantID)
	if err != nil {
		return item, nil, err
	}
	if e.Policy == PolicyStrict && u.stock[warehouseID] < qty {
		return item, nil, domain.ErrInsufficientStock
	}

	u.stock = withdraw(u.stock, warehouseID, qty)
	u.quantity -= qty

	t := u.entry(item, entity.TransactionSale, qty, u.cost, now)
	t.FromWarehouseID = wh.ID
	t.WarehouseName = wh.Name
	return u.apply(item, now), &t, nil
}

// Restock adds qty units to a warehouse and records an IN_RESTOCK entry priced at the
// supplied unit cost. The stored cost of the item is not changed.
func (e Engine) Restock(item entity.Item, variantID string, warehouses []entity.Warehouse, warehouseID string, qty int, unitCost decimal.Decimal, now time.Time) (entity.Item, *entity.Transaction, error) {
	if qty <= 0 {
		return item, nil, nil
	}
	if unitCost.IsNegative() {
		return item, nil, domain.ErrInvalidInput
	}
	wh, ok := FindWarehouse(warehouses, warehouseID)
	if !ok {
		return item, nil, domain.ErrWarehouseNotFound
	}
	u, err := resolveUnit(item, variantID)
	if err != nil {
		return item, nil, err
	}

	u.stock = deposit(u.stock, warehouseID, qty)
	u.quantity += qty

	t := u.entry(item, entity.TransactionRestock, qty, unitCost, now)
	t.ToWarehouseID = wh.ID
	t.WarehouseName = wh.Name
	return u.apply(item, now), &t, nil
}

// Transfer relocates qty units between two warehouses. The unit quantity does not change
// and the TRANSFER entry carries a zero total.
func (e Engine) Transfer(item entity.Item, variantID string, warehouses []entity.Warehouse, fromID, toID string, qty int, now time.Time) (entity.Item, *entity.Transaction, error) {
	if qty <= 0 {
		return item, nil, nil
	}
	if fromID == toID {
		return item, nil, domain.ErrSameWarehouse
	}
	from, ok := FindWarehouse(warehouses, fromID)
	if !ok {
		return item, nil, domain.ErrWarehouseNotFound
	}
	to, ok := FindWarehouse(warehouses, toID)
	if !ok {
		return item, nil, domain.ErrWarehouseNotFound
	}
	u, err := resolveUnit(item, variantID)
	if err != nil {
		return item, nil, err
	}
	if e.Policy == PolicyStrict && u.stock[fromID] < qty {
		return item, nil, domain.ErrInsufficientStock
	}

	u.stock = deposit(withdraw(u.stock, fromID, qty), toID, qty)

	t := u.entry(item, entity.TransactionTransfer, qty, decimal.Zero, now)
	t.FromWarehouseID = from.ID
	t.ToWarehouseID = to.ID
	t.WarehouseName = from.Name + " -> " + to.Name
	return u.apply(item, now), &t, nil
}
