package inventory

import (
	"context"
	"fmt"
	"time"
)

// ExportUseCase produces downloadable documents from the current inventory.
type ExportUseCase struct {
	svc    *Service
	csv    CSVExporter
	report StockReportGenerator
	now    func() time.Time
}

// NewExportUseCase builds the use case.
func NewExportUseCase(svc *Service, csv CSVExporter, report StockReportGenerator) *ExportUseCase {
	return &ExportUseCase{svc: svc, csv: csv, report: report, now: time.Now}
}

// ExportCSV returns the inventory CSV and its file name (inventory_export_YYYY-MM-DD.csv).
func (uc *ExportUseCase) ExportCSV(_ context.Context) ([]byte, string, error) {
	data, err := uc.csv.ExportInventory(uc.svc.Snapshot().Items)
	if err != nil {
		return nil, "", fmt.Errorf("export csv: %w", err)
	}
	return data, "inventory_export_" + uc.now().Format(time.DateOnly) + ".csv", nil
}

// ExportPDF returns the printable stock report and its file name.
func (uc *ExportUseCase) ExportPDF(ctx context.Context) ([]byte, string, error) {
	st := uc.svc.Snapshot()
	now := uc.now()
	data, err := uc.report.GenerateStockReport(ctx, StockReport{
		Title:       "Stock report",
		GeneratedAt: now,
		Warehouses:  st.Warehouses,
		Items:       FilterItems(st.Items, ListQuery{Sort: SortByName}),
		Stats:       BuildDashboard(st),
	})
	if err != nil {
		return nil, "", fmt.Errorf("export pdf: %w", err)
	}
	return data, "inventory_report_" + now.Format(time.DateOnly) + ".pdf", nil
}
