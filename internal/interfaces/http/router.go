package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/inventario-ledger/internal/application/inventory"
)

// RouterDeps holds what the routes need.
type RouterDeps struct {
	Service *inventory.Service
	Export  *inventory.ExportUseCase
}

// Router registers the API routes.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Warehouses
	warehouses := api.Group("/warehouses")
	warehouseHandler := NewWarehouseHandler(deps.Service)
	warehouses.Get("/", warehouseHandler.List)
	warehouses.Post("/", warehouseHandler.Create)
	warehouses.Put("/:id", warehouseHandler.Rename)
	warehouses.Delete("/:id", warehouseHandler.Delete)

	// Catalogs (categories, sizes, colors, others)
	catalogs := api.Group("/catalogs")
	catalogHandler := NewCatalogHandler(deps.Service)
	catalogs.Get("/:kind", catalogHandler.List)
	catalogs.Post("/:kind", catalogHandler.Add)
	catalogs.Delete("/:kind/:value", catalogHandler.Remove)

	// Products; the variant helpers go before /:id
	products := api.Group("/products")
	productHandler := NewProductHandler(deps.Service)
	products.Post("/variants/generate", productHandler.GenerateVariants)
	products.Post("/variants/manual", productHandler.ManualVariant)
	products.Get("/", productHandler.List)
	products.Post("/", productHandler.Create)
	products.Get("/:id", productHandler.GetByID)
	products.Put("/:id", productHandler.Update)
	products.Delete("/:id", productHandler.Delete)

	// Stock movements
	invGroup := api.Group("/inventory")
	inventoryHandler := NewInventoryHandler(deps.Service)
	invGroup.Post("/sales", inventoryHandler.Sell)
	invGroup.Post("/restocks", inventoryHandler.Restock)
	invGroup.Post("/transfers", inventoryHandler.Transfer)

	// Ledger
	transactions := api.Group("/transactions")
	transactionHandler := NewTransactionHandler(deps.Service)
	transactions.Get("/", transactionHandler.List)
	transactions.Delete("/:id", transactionHandler.Delete)

	api.Get("/dashboard", NewDashboardHandler(deps.Service).GetSummary)

	if deps.Export != nil {
		exports := api.Group("/exports")
		exportHandler := NewExportHandler(deps.Export)
		exports.Get("/inventory.csv", exportHandler.CSV)
		exports.Get("/inventory.pdf", exportHandler.PDF)
	}
}
