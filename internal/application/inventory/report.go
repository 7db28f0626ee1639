package inventory

import (
	"slices"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/inventario-ledger/internal/domain"
	"github.com/jhoicas/inventario-ledger/internal/domain/entity"
	domaininv "github.com/jhoicas/inventario-ledger/internal/domain/inventory"
)

// LedgerKind narrows the ledger to sales or to everything else.
type LedgerKind string

const (
	LedgerAll       LedgerKind = "ALL"
	LedgerSales     LedgerKind = "SALES"
	LedgerPurchases LedgerKind = "PURCHASES"
)

// ParseLedgerKind reads ALL, SALES or PURCHASES (case-insensitive). Empty means ALL.
func ParseLedgerKind(s string) (LedgerKind, error) {
	switch k := LedgerKind(strings.ToUpper(strings.TrimSpace(s))); k {
	case "":
		return LedgerAll, nil
	case LedgerAll, LedgerSales, LedgerPurchases:
		return k, nil
	}
	return "", domain.ErrInvalidInput
}

// LedgerFilter selects ledger entries. From and To are calendar days, both inclusive, in the
// location of the given times; zero values leave that side open.
type LedgerFilter struct {
	From   time.Time
	To     time.Time
	Kind   LedgerKind
	ItemID string
}

// LedgerReport is the filtered ledger, newest first, with its money totals.
type LedgerReport struct {
	Transactions    []entity.Transaction
	Revenue         decimal.Decimal // Σ sale totals
	Spent           decimal.Decimal // Σ totals of every other entry
	CostOfGoodsSold decimal.Decimal // Σ sale unit cost × quantity
	EstimatedProfit decimal.Decimal // revenue - cost of goods sold
}

// BuildLedgerReport filters txns and computes the totals. txns is not modified.
func BuildLedgerReport(txns []entity.Transaction, f LedgerFilter) LedgerReport {
	r := LedgerReport{
		Transactions:    []entity.Transaction{},
		Revenue:         decimal.Zero,
		Spent:           decimal.Zero,
		CostOfGoodsSold: decimal.Zero,
	}
	for _, t := range txns {
		if !f.matches(t) {
			continue
		}
		r.Transactions = append(r.Transactions, t)
		if t.IsSale() {
			r.Revenue = r.Revenue.Add(t.Total)
			r.CostOfGoodsSold = r.CostOfGoodsSold.Add(t.UnitCost.Mul(decimal.NewFromInt(int64(t.Quantity))))
		} else {
			r.Spent = r.Spent.Add(t.Total)
		}
	}
	slices.SortStableFunc(r.Transactions, func(a, b entity.Transaction) int {
		return b.Date.Compare(a.Date)
	})
	r.EstimatedProfit = r.Revenue.Sub(r.CostOfGoodsSold)
	return r
}

func (f LedgerFilter) matches(t entity.Transaction) bool {
	if !f.From.IsZero() && dayOf(t.Date, f.From.Location()).Before(dayOf(f.From, f.From.Location())) {
		return false
	}
	if !f.To.IsZero() && dayOf(t.Date, f.To.Location()).After(dayOf(f.To, f.To.Location())) {
		return false
	}
	switch f.Kind {
	case LedgerSales:
		if !t.IsSale() {
			return false
		}
	case LedgerPurchases:
		if t.IsSale() {
			return false
		}
	}
	return f.ItemID == "" || t.ItemID == f.ItemID
}

func dayOf(t time.Time, loc *time.Location) time.Time {
	y, m, d := t.In(loc).Date()
	return time.Date(y, m, d, 0, 0, 0, 0, loc)
}

// WarehouseStock is the number of units held in one warehouse.
type WarehouseStock struct {
	Warehouse entity.Warehouse
	Units     int
}

// DashboardStats summarizes the inventory.
type DashboardStats struct {
	TotalItems   int
	TotalUnits   int
	TotalValue   decimal.Decimal // at cost
	ByWarehouse  []WarehouseStock
	Transactions int
}

// BuildDashboard computes the stats of a snapshot.
func BuildDashboard(st State) DashboardStats {
	stats := DashboardStats{
		TotalItems:   len(st.Items),
		TotalValue:   decimal.Zero,
		Transactions: len(st.Transactions),
	}
	units := entity.StockMap{}
	for _, it := range st.Items {
		stats.TotalUnits += it.Quantity
		stats.TotalValue = stats.TotalValue.Add(domaininv.InventoryValue(it))
		for id, qty := range domaininv.Distribution(it) {
			units[id] += qty
		}
	}
	for _, w := range st.Warehouses {
		stats.ByWarehouse = append(stats.ByWarehouse, WarehouseStock{Warehouse: w, Units: units[w.ID]})
	}
	return stats
}

// StockReport is the data behind the printable stock report.
type StockReport struct {
	Title       string
	GeneratedAt time.Time
	Warehouses  []entity.Warehouse
	Items       []entity.Item
	Stats       DashboardStats
}
