package inventory

import (
	"context"

	"github.com/jhoicas/inventario-ledger/internal/domain/entity"
)

// Observer is notified after every committed state transition with the new snapshot and the
// storage keys it touched. Called while the service lock is held: implementations must not
// call back into the service and must not block.
type Observer interface {
	StateChanged(st State, keys []string)
}

// CSVExporter renders the inventory as a spreadsheet-friendly CSV document.
type CSVExporter interface {
	ExportInventory(items []entity.Item) ([]byte, error)
}

// StockReportGenerator renders the printable stock report.
type StockReportGenerator interface {
	GenerateStockReport(ctx context.Context, report StockReport) ([]byte, error)
}
