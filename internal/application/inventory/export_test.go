package inventory_test

import (
	"context"
	"errors"
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/inventario-ledger/internal/application/inventory"
	"github.com/jhoicas/inventario-ledger/internal/domain/entity"
	"github.com/jhoicas/inventario-ledger/internal/infrastructure/memory"
)

type fakeCSV struct {
	got []entity.Item
	err error
}

func (f *fakeCSV) ExportInventory(items []entity.Item) ([]byte, error) {
	f.got = items
	return []byte("csv"), f.err
}

type fakeReport struct {
	got inventory.StockReport
}

func (f *fakeReport) GenerateStockReport(_ context.Context, r inventory.StockReport) ([]byte, error) {
	f.got = r
	return []byte("%PDF"), nil
}

func TestExportUseCase(t *testing.T) {
	svc, _ := newService(t, memory.NewKVStore())
	_, err := svc.CreateItem(tshirt())
	require.NoError(t, err)

	csv := &fakeCSV{}
	report := &fakeReport{}
	uc := inventory.NewExportUseCase(svc, csv, report)

	data, name, err := uc.ExportCSV(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "csv", string(data))
	assert.Regexp(t, regexp.MustCompile(`^inventory_export_\d{4}-\d{2}-\d{2}\.csv$`), name)
	assert.Len(t, csv.got, 1)

	data, name, err = uc.ExportPDF(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "%PDF", string(data))
	assert.Regexp(t, regexp.MustCompile(`^inventory_report_\d{4}-\d{2}-\d{2}\.pdf$`), name)
	assert.Equal(t, 1, report.got.Stats.TotalItems)
	assert.Len(t, report.got.Warehouses, 1)
	assert.False(t, report.got.GeneratedAt.IsZero())
}

func TestExportUseCase_WrapsErrors(t *testing.T) {
	svc, _ := newService(t, memory.NewKVStore())
	uc := inventory.NewExportUseCase(svc, &fakeCSV{err: errors.New("boom")}, &fakeReport{})

	_, _, err := uc.ExportCSV(context.Background())
	assert.ErrorContains(t, err, "export csv: boom")
}
