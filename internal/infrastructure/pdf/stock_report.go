// Package pdf renders the printable stock report.
//
// Layout of the A4 page:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: title                 │  generation date           │
//	│  ─────────────────────────────────────────────────────────  │
//	│  SUMMARY: items | units | value at cost                     │
//	│  WAREHOUSES: one line per warehouse with its units          │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABLE: SKU | Item | Category | Qty | Unit cost | Value      │
//	│         distribution by warehouse under each item           │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"context"
	"fmt"
	"slices"
	"strings"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"
	"github.com/shopspring/decimal"

	appinv "github.com/jhoicas/inventario-ledger/internal/application/inventory"
	"github.com/jhoicas/inventario-ledger/internal/domain/entity"
	domaininv "github.com/jhoicas/inventario-ledger/internal/domain/inventory"
)

// ── Palette ──────────────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 0, Green: 70, Blue: 127}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
)

// ── Generator ────────────────────────────────────────────────────────────────

var _ appinv.StockReportGenerator = (*MarotoStockReport)(nil)

// MarotoStockReport implements inventory.StockReportGenerator with Maroto v2.
type MarotoStockReport struct{}

// NewMarotoStockReport builds the generator.
func NewMarotoStockReport() *MarotoStockReport { return &MarotoStockReport{} }

// GenerateStockReport renders the report and returns the PDF bytes.
func (g *MarotoStockReport) GenerateStockReport(_ context.Context, r appinv.StockReport) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle(r.Title, true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(r))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(summaryRow(r.Stats))
	m.AddRows(warehouseRows(r.Stats)...)
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))

	m.AddRows(tableHeaderRow())
	if len(r.Items) == 0 {
		m.AddRows(row.New(8).Add(col.New(12).Add(
			text.New("No items in stock.", props.Text{Size: 8, Align: align.Center, Color: colorGray, Top: 2}),
		)))
	}
	names := warehouseNames(r.Warehouses)
	for _, it := range r.Items {
		m.AddRows(itemRows(it, names)...)
	}

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generate document: %w", err)
	}
	return doc.GetBytes(), nil
}

// ── Sections ─────────────────────────────────────────────────────────────────

func headerRow(r appinv.StockReport) core.Row {
	return row.New(14).Add(
		col.New(8).Add(
			text.New(r.Title, props.Text{Style: fontstyle.Bold, Size: 14, Color: colorPrimary, Top: 2}),
		),
		col.New(4).Add(
			text.New("Generated: "+r.GeneratedAt.Format("2006-01-02 15:04"), props.Text{
				Size: 8, Align: align.Right, Top: 5, Color: colorGray,
			}),
		),
	)
}

func summaryRow(s appinv.DashboardStats) core.Row {
	cell := func(label, value string) core.Col {
		return col.New(4).Add(
			text.New(label, props.Text{Size: 7, Color: colorGray, Top: 1}),
			text.New(value, props.Text{Style: fontstyle.Bold, Size: 11, Top: 5}),
		)
	}
	return row.New(14).Add(
		cell("Items", fmt.Sprint(s.TotalItems)),
		cell("Units", fmt.Sprint(s.TotalUnits)),
		cell("Value at cost", "$"+formatMoney(s.TotalValue)),
	)
}

func warehouseRows(s appinv.DashboardStats) []core.Row {
	rows := make([]core.Row, 0, len(s.ByWarehouse))
	for _, w := range s.ByWarehouse {
		name := w.Warehouse.Name
		if w.Warehouse.IsDefault {
			name += " (default)"
		}
		rows = append(rows, row.New(5).Add(
			col.New(9).Add(text.New(name, props.Text{Size: 8, Left: 2})),
			col.New(3).Add(text.New(fmt.Sprintf("%d units", w.Units), props.Text{Size: 8, Align: align.Right, Right: 1})),
		))
	}
	return rows
}

func tableHeaderRow() core.Row {
	h := func(label string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: a, Color: colorPrimary, Top: 2, Left: 1, Right: 1,
		}))
	}
	return row.New(8).Add(
		h("SKU", 2, align.Left),
		h("Item", 4, align.Left),
		h("Category", 2, align.Left),
		h("Qty", 1, align.Right),
		h("Unit cost", 1, align.Right),
		h("Value", 2, align.Right),
	)
}

// itemRows renders one line per item followed by its distribution; variant items list
// each variant underneath.
func itemRows(it entity.Item, names map[string]string) []core.Row {
	small := props.Text{Size: 7, Color: colorGray, Left: 4}
	rows := []core.Row{row.New(6).Add(
		col.New(2).Add(text.New(it.SKU, props.Text{Size: 8, Top: 1, Left: 1})),
		col.New(4).Add(text.New(it.Name, props.Text{Size: 8, Top: 1, Left: 1})),
		col.New(2).Add(text.New(it.Category, props.Text{Size: 8, Top: 1, Left: 1})),
		col.New(1).Add(text.New(fmt.Sprint(it.Quantity), props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1})),
		col.New(1).Add(text.New(unitCost(it), props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1})),
		col.New(2).Add(text.New("$"+formatMoney(domaininv.InventoryValue(it)), props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1})),
	)}
	for _, v := range it.Variants() {
		rows = append(rows, row.New(4).Add(col.New(12).Add(text.New(
			fmt.Sprintf("%s (%s): %d  |  %s", v.Name, v.SKU, v.Quantity, distribution(v.StockByWarehouse, names)), small,
		))))
	}
	if _, ok := it.Stock.(entity.SimpleStock); ok {
		rows = append(rows, row.New(4).Add(col.New(12).Add(text.New(
			distribution(domaininv.Distribution(it), names), small,
		))))
	}
	return rows
}

// ── helpers ──────────────────────────────────────────────────────────────────

func unitCost(it entity.Item) string {
	if len(it.Variants()) > 0 {
		return "-"
	}
	return "$" + formatMoney(it.Cost)
}

func warehouseNames(ws []entity.Warehouse) map[string]string {
	names := make(map[string]string, len(ws))
	for _, w := range ws {
		names[w.ID] = w.Name
	}
	return names
}

// distribution renders non-zero buckets as "Name: n" in warehouse-name order.
func distribution(m entity.StockMap, names map[string]string) string {
	parts := make([]string, 0, len(m))
	for id, qty := range m {
		if qty == 0 {
			continue
		}
		name, ok := names[id]
		if !ok {
			name = id
		}
		parts = append(parts, fmt.Sprintf("%s: %d", name, qty))
	}
	if len(parts) == 0 {
		return "no stock"
	}
	slices.Sort(parts)
	return strings.Join(parts, ", ")
}

// formatMoney renders d with two decimals and comma thousands separators.
// Ex: 1234567.5 → "1,234,567.50"
func formatMoney(d decimal.Decimal) string {
	s := d.StringFixed(2)
	sign := ""
	if strings.HasPrefix(s, "-") {
		sign, s = "-", s[1:]
	}
	intPart, frac, _ := strings.Cut(s, ".")
	n := len(intPart)
	buf := make([]byte, 0, n+n/3)
	for i, c := range []byte(intPart) {
		if i > 0 && (n-i)%3 == 0 {
			buf = append(buf, ',')
		}
		buf = append(buf, c)
	}
	return sign + string(buf) + "." + frac
}
