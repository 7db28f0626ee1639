package export

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"strconv"
	"time"

	appinv "github.com/jhoicas/inventario-ledger/internal/application/inventory"
	"github.com/jhoicas/inventario-ledger/internal/domain/entity"
	domaininv "github.com/jhoicas/inventario-ledger/internal/domain/inventory"
)

var _ appinv.CSVExporter = (*CSVExporter)(nil)

var header = []string{
	"ID", "Name", "SKU", "Category", "UnitCost", "UnitPrice",
	"TotalQuantity", "TotalCostValue", "LastUpdated",
}

// CSVExporter writes one row per item. Money is fixed to two decimals; variant items report
// the sum of their variants' cost value.
type CSVExporter struct{}

// NewCSVExporter builds the exporter.
func NewCSVExporter() *CSVExporter { return &CSVExporter{} }

// ExportInventory renders items as CSV with a header row.
func (e *CSVExporter) ExportInventory(items []entity.Item) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	if err := w.Write(header); err != nil {
		return nil, fmt.Errorf("write csv header: %w", err)
	}
	for _, it := range items {
		rec := []string{
			it.ID,
			it.Name,
			it.SKU,
			it.Category,
			it.Cost.StringFixed(2),
			it.Price.StringFixed(2),
			strconv.Itoa(it.Quantity),
			domaininv.InventoryValue(it).StringFixed(2),
			it.LastUpdated.Format(time.DateOnly),
		}
		if err := w.Write(rec); err != nil {
			return nil, fmt.Errorf("write csv row %s: %w", it.ID, err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return nil, fmt.Errorf("flush csv: %w", err)
	}
	return buf.Bytes(), nil
}
