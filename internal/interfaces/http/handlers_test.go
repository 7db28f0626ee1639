package http_test

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/inventario-ledger/internal/application/dto"
	"github.com/jhoicas/inventario-ledger/internal/application/inventory"
	domaininv "github.com/jhoicas/inventario-ledger/internal/domain/inventory"
	"github.com/jhoicas/inventario-ledger/internal/infrastructure/export"
	"github.com/jhoicas/inventario-ledger/internal/infrastructure/memory"
	"github.com/jhoicas/inventario-ledger/internal/infrastructure/pdf"
	apphttp "github.com/jhoicas/inventario-ledger/internal/interfaces/http"
	"github.com/jhoicas/inventario-ledger/pkg/logger"
)

// ──────────────────────────────────────────────────────────────────────────────
// Test helpers
// ──────────────────────────────────────────────────────────────────────────────

// buildTestApp wires the full router over an in-memory store.
func buildTestApp(t *testing.T) *fiber.App {
	t.Helper()
	svc, err := inventory.NewService(context.Background(),
		inventory.NewStorage(memory.NewKVStore(), logger.Nop()),
		domaininv.NewEngine(domaininv.PolicyStrict), logger.Nop())
	require.NoError(t, err)

	app := fiber.New()
	app.Use(apphttp.RequestLogger(logger.Nop()))
	apphttp.Router(app, apphttp.RouterDeps{
		Service: svc,
		Export:  inventory.NewExportUseCase(svc, export.NewCSVExporter(), pdf.NewMarotoStockReport()),
	})
	return app
}

// call sends a request with an optional JSON body and returns the response.
func call(t *testing.T, app *fiber.App, method, path string, body any) *http.Response {
	t.Helper()
	var r io.Reader
	switch b := body.(type) {
	case nil:
	case string:
		r = strings.NewReader(b)
	default:
		raw, err := json.Marshal(b)
		require.NoError(t, err)
		r = bytes.NewReader(raw)
	}
	req := httptest.NewRequest(method, path, r)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

// decode reads the JSON body into out.
func decode(t *testing.T, resp *http.Response, out any) {
	t.Helper()
	defer resp.Body.Close()
	require.NoError(t, json.NewDecoder(resp.Body).Decode(out))
}

// expectError asserts status and error code.
func expectError(t *testing.T, resp *http.Response, status int, code string) {
	t.Helper()
	assert.Equal(t, status, resp.StatusCode)
	var e dto.ErrorResponse
	decode(t, resp, &e)
	assert.Equal(t, code, e.Code)
	assert.NotEmpty(t, e.Message)
}

func createShirt(t *testing.T, app *fiber.App) dto.ProductResponse {
	t.Helper()
	resp := call(t, app, fiber.MethodPost, "/api/products", map[string]any{
		"name": "T-Shirt", "sku": "TS", "category": "Clothing",
		"cost": "8", "price": "20", "quantity": 10,
	})
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)
	var p dto.ProductResponse
	decode(t, resp, &p)
	return p
}

// ──────────────────────────────────────────────────────────────────────────────
// Warehouses
// ──────────────────────────────────────────────────────────────────────────────

func TestWarehouses(t *testing.T) {
	app := buildTestApp(t)

	var list dto.WarehouseListResponse
	decode(t, call(t, app, fiber.MethodGet, "/api/warehouses", nil), &list)
	require.Len(t, list.Items, 1)
	def := list.Items[0]
	assert.True(t, def.IsDefault)

	resp := call(t, app, fiber.MethodPost, "/api/warehouses", map[string]string{"name": "Annex"})
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)
	var annex dto.WarehouseResponse
	decode(t, resp, &annex)
	assert.Equal(t, "Annex", annex.Name)
	assert.False(t, annex.IsDefault)

	expectError(t, call(t, app, fiber.MethodPost, "/api/warehouses", map[string]string{"name": "ANNEX"}),
		fiber.StatusConflict, "DUPLICATE_NAME")
	expectError(t, call(t, app, fiber.MethodPost, "/api/warehouses", map[string]string{"name": ""}),
		fiber.StatusBadRequest, "VALIDATION")
	expectError(t, call(t, app, fiber.MethodPost, "/api/warehouses", `{"name":`),
		fiber.StatusBadRequest, "INVALID_BODY")

	resp = call(t, app, fiber.MethodPut, "/api/warehouses/"+annex.ID, map[string]string{"name": "Back room"})
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	decode(t, resp, &annex)
	assert.Equal(t, "Back room", annex.Name)

	expectError(t, call(t, app, fiber.MethodDelete, "/api/warehouses/"+def.ID, nil),
		fiber.StatusConflict, "CANNOT_DELETE_DEFAULT")
	expectError(t, call(t, app, fiber.MethodDelete, "/api/warehouses/missing", nil),
		fiber.StatusNotFound, "NOT_FOUND")

	resp = call(t, app, fiber.MethodDelete, "/api/warehouses/"+annex.ID, nil)
	assert.Equal(t, fiber.StatusNoContent, resp.StatusCode)
}

func TestWarehouses_DeleteWithStock(t *testing.T) {
	app := buildTestApp(t)
	p := createShirt(t, app)

	resp := call(t, app, fiber.MethodPost, "/api/warehouses", map[string]string{"name": "Annex"})
	var annex dto.WarehouseResponse
	decode(t, resp, &annex)

	var def string
	for id := range p.StockByWarehouse {
		def = id
	}
	resp = call(t, app, fiber.MethodPost, "/api/inventory/transfers", map[string]any{
		"product_id": p.ID, "from_warehouse_id": def, "to_warehouse_id": annex.ID, "quantity": 2,
	})
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)

	expectError(t, call(t, app, fiber.MethodDelete, "/api/warehouses/"+annex.ID, nil),
		fiber.StatusConflict, "WAREHOUSE_NOT_EMPTY")
}

// ──────────────────────────────────────────────────────────────────────────────
// Catalogs
// ──────────────────────────────────────────────────────────────────────────────

func TestCatalogs(t *testing.T) {
	app := buildTestApp(t)

	var cat dto.CatalogResponse
	decode(t, call(t, app, fiber.MethodGet, "/api/catalogs/colors", nil), &cat)
	assert.Equal(t, []string{"Black", "White", "Red", "Blue"}, cat.Values)

	resp := call(t, app, fiber.MethodPost, "/api/catalogs/colors", map[string]string{"value": "Dark Blue"})
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	decode(t, resp, &cat)
	assert.Contains(t, cat.Values, "Dark Blue")

	expectError(t, call(t, app, fiber.MethodPost, "/api/catalogs/colors", map[string]string{"value": "Red"}),
		fiber.StatusConflict, "DUPLICATE_NAME")

	decode(t, call(t, app, fiber.MethodDelete, "/api/catalogs/colors/Dark%20Blue", nil), &cat)
	assert.NotContains(t, cat.Values, "Dark Blue")

	expectError(t, call(t, app, fiber.MethodGet, "/api/catalogs/materials", nil),
		fiber.StatusNotFound, "NOT_FOUND")
}

// ──────────────────────────────────────────────────────────────────────────────
// Products and movements
// ──────────────────────────────────────────────────────────────────────────────

func TestProducts_SaleFlow(t *testing.T) {
	app := buildTestApp(t)
	p := createShirt(t, app)
	assert.Equal(t, 10, p.Quantity)
	assert.Equal(t, "80", p.InventoryValue.String())

	resp := call(t, app, fiber.MethodGet, "/api/warehouses", nil)
	var ws dto.WarehouseListResponse
	decode(t, resp, &ws)
	def := ws.Items[0].ID

	resp = call(t, app, fiber.MethodPost, "/api/inventory/sales", map[string]any{
		"product_id": p.ID, "warehouse_id": def, "quantity": 3,
	})
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)
	var mv dto.MovementResponse
	decode(t, resp, &mv)
	require.NotNil(t, mv.Transaction)
	assert.Equal(t, "OUT_SALE", mv.Transaction.Type)
	assert.Equal(t, "60", mv.Transaction.Total.String())
	assert.Equal(t, 7, mv.Product.Quantity)
	assert.Equal(t, map[string]int{def: 7}, mv.Product.StockByWarehouse)

	expectError(t, call(t, app, fiber.MethodPost, "/api/inventory/sales", map[string]any{
		"product_id": p.ID, "warehouse_id": def, "quantity": 8,
	}), fiber.StatusConflict, "INSUFFICIENT_STOCK")

	resp = call(t, app, fiber.MethodPost, "/api/inventory/sales", map[string]any{
		"product_id": p.ID, "warehouse_id": def, "quantity": 0,
	})
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	decode(t, resp, &mv)
	assert.Nil(t, mv.Transaction)

	resp = call(t, app, fiber.MethodPost, "/api/inventory/restocks", map[string]any{
		"product_id": p.ID, "warehouse_id": def, "quantity": 5, "unit_cost": "6",
	})
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)
	decode(t, resp, &mv)
	assert.Equal(t, "30", mv.Transaction.Total.String())
	assert.Equal(t, 12, mv.Product.Quantity)

	expectError(t, call(t, app, fiber.MethodPost, "/api/inventory/transfers", map[string]any{
		"product_id": p.ID, "from_warehouse_id": def, "to_warehouse_id": def, "quantity": 1,
	}), fiber.StatusBadRequest, "VALIDATION")
	expectError(t, call(t, app, fiber.MethodPost, "/api/inventory/sales", map[string]any{
		"product_id": "missing", "warehouse_id": def, "quantity": 1,
	}), fiber.StatusNotFound, "NOT_FOUND")
	expectError(t, call(t, app, fiber.MethodPost, "/api/inventory/sales", map[string]any{
		"product_id": p.ID, "quantity": 1,
	}), fiber.StatusBadRequest, "VALIDATION")

	var ledger dto.LedgerResponse
	decode(t, call(t, app, fiber.MethodGet, "/api/transactions?kind=sales", nil), &ledger)
	require.Len(t, ledger.Transactions, 1)
	assert.Equal(t, "60", ledger.Revenue.String())
	assert.Equal(t, "24", ledger.CostOfGoodsSold.String())
	assert.Equal(t, "36", ledger.EstimatedProfit.String())

	decode(t, call(t, app, fiber.MethodGet, "/api/transactions?item_id="+p.ID, nil), &ledger)
	assert.Len(t, ledger.Transactions, 3)

	expectError(t, call(t, app, fiber.MethodGet, "/api/transactions?kind=refunds", nil),
		fiber.StatusBadRequest, "VALIDATION")
	expectError(t, call(t, app, fiber.MethodGet, "/api/transactions?from=01-03-2024", nil),
		fiber.StatusBadRequest, "VALIDATION")

	resp = call(t, app, fiber.MethodDelete, "/api/transactions/"+ledger.Transactions[0].ID, nil)
	assert.Equal(t, fiber.StatusNoContent, resp.StatusCode)
	var got dto.ProductResponse
	decode(t, call(t, app, fiber.MethodGet, "/api/products/"+p.ID, nil), &got)
	assert.Equal(t, 12, got.Quantity)
}

func TestProducts_Variants(t *testing.T) {
	app := buildTestApp(t)

	resp := call(t, app, fiber.MethodPost, "/api/products/variants/generate", map[string]any{
		"base_sku": "hd", "base_cost": "10", "base_price": "30",
		"sizes": []string{"S", "M"}, "colors": []string{"Red"},
	})
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	var drafts dto.VariantDraftListResponse
	decode(t, resp, &drafts)
	require.Len(t, drafts.Items, 2)
	assert.Equal(t, "S / Red", drafts.Items[0].Name)
	assert.Equal(t, "hd-S-RED", drafts.Items[0].SKU)

	resp = call(t, app, fiber.MethodPost, "/api/products/variants/manual", map[string]any{
		"existing": 2, "base_sku": "HD",
	})
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	var manual dto.VariantDraft
	decode(t, resp, &manual)
	assert.Equal(t, "HD-3", manual.SKU)

	resp = call(t, app, fiber.MethodPost, "/api/products", map[string]any{
		"name": "Hoodie", "sku": "HD", "variants": drafts.Items,
	})
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)
	var p dto.ProductResponse
	decode(t, resp, &p)
	assert.True(t, p.HasVariants)
	assert.Len(t, p.Variants, 2)

	var ws dto.WarehouseListResponse
	decode(t, call(t, app, fiber.MethodGet, "/api/warehouses", nil), &ws)
	expectError(t, call(t, app, fiber.MethodPost, "/api/inventory/restocks", map[string]any{
		"product_id": p.ID, "warehouse_id": ws.Items[0].ID, "quantity": 1,
	}), fiber.StatusBadRequest, "VALIDATION")

	expectError(t, call(t, app, fiber.MethodPost, "/api/products", map[string]any{
		"name": "Broken", "variants": []map[string]any{{"name": "S", "price": "1", "quantity": 1}},
	}), fiber.StatusBadRequest, "INVALID_VARIANT")

	many := make([]string, 201)
	for i := range many {
		many[i] = strings.Repeat("x", i+1)
	}
	expectError(t, call(t, app, fiber.MethodPost, "/api/products/variants/generate", map[string]any{
		"sizes": many,
	}), fiber.StatusBadRequest, "VARIANT_LIMIT_EXCEEDED")
}

func TestProducts_ListAndDelete(t *testing.T) {
	app := buildTestApp(t)
	p := createShirt(t, app)
	resp := call(t, app, fiber.MethodPost, "/api/products", map[string]any{"name": "apron", "cost": "1", "price": "2"})
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)

	var list dto.ProductListResponse
	decode(t, call(t, app, fiber.MethodGet, "/api/products?sort=name&order=desc", nil), &list)
	require.Equal(t, 2, list.Total)
	assert.Equal(t, "T-Shirt", list.Items[0].Name)

	decode(t, call(t, app, fiber.MethodGet, "/api/products?q=cloth", nil), &list)
	assert.Equal(t, 1, list.Total)

	expectError(t, call(t, app, fiber.MethodGet, "/api/products?sort=weight", nil),
		fiber.StatusBadRequest, "VALIDATION")

	resp = call(t, app, fiber.MethodPut, "/api/products/"+p.ID, map[string]any{
		"name": "T-Shirt", "sku": "TS", "cost": "8", "price": "22", "quantity": 4,
	})
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	var edited dto.ProductResponse
	decode(t, resp, &edited)
	assert.Equal(t, 4, edited.Quantity)
	assert.Equal(t, "22", edited.Price.String())

	resp = call(t, app, fiber.MethodDelete, "/api/products/"+p.ID, nil)
	assert.Equal(t, fiber.StatusNoContent, resp.StatusCode)
	expectError(t, call(t, app, fiber.MethodGet, "/api/products/"+p.ID, nil), fiber.StatusNotFound, "NOT_FOUND")

	var ledger dto.LedgerResponse
	decode(t, call(t, app, fiber.MethodGet, "/api/transactions", nil), &ledger)
	assert.Len(t, ledger.Transactions, 1)
}

// ──────────────────────────────────────────────────────────────────────────────
// Dashboard and exports
// ──────────────────────────────────────────────────────────────────────────────

func TestDashboardAndExports(t *testing.T) {
	app := buildTestApp(t)
	createShirt(t, app)

	var dash dto.DashboardResponse
	decode(t, call(t, app, fiber.MethodGet, "/api/dashboard", nil), &dash)
	assert.Equal(t, 1, dash.TotalItems)
	assert.Equal(t, 10, dash.TotalUnits)
	assert.Equal(t, "80", dash.TotalValue.String())
	require.Len(t, dash.ByWarehouse, 1)
	assert.Equal(t, 10, dash.ByWarehouse[0].Units)

	resp := call(t, app, fiber.MethodGet, "/api/exports/inventory.csv", nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Contains(t, resp.Header.Get(fiber.HeaderContentType), "text/csv")
	assert.Contains(t, resp.Header.Get(fiber.HeaderContentDisposition), "inventory_export_")
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(body), "ID,Name,SKU"))

	resp = call(t, app, fiber.MethodGet, "/api/exports/inventory.pdf", nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Equal(t, "application/pdf", resp.Header.Get(fiber.HeaderContentType))
	body, err = io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(body, []byte("%PDF")))
}
