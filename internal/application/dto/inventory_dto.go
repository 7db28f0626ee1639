package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// SaleRequest is the body of POST /api/inventory/sales. VariantID is required for variant
// items. A quantity of zero or less records nothing.
type SaleRequest struct {
	ProductID   string `json:"product_id" validate:"required"`
	VariantID   string `json:"variant_id,omitempty"`
	WarehouseID string `json:"warehouse_id" validate:"required"`
	Quantity    int    `json:"quantity"`
}

// RestockRequest is the body of POST /api/inventory/restocks.
type RestockRequest struct {
	ProductID   string          `json:"product_id" validate:"required"`
	VariantID   string          `json:"variant_id,omitempty"`
	WarehouseID string          `json:"warehouse_id" validate:"required"`
	Quantity    int             `json:"quantity"`
	UnitCost    decimal.Decimal `json:"unit_cost"`
}

// TransferRequest is the body of POST /api/inventory/transfers.
type TransferRequest struct {
	ProductID       string `json:"product_id" validate:"required"`
	VariantID       string `json:"variant_id,omitempty"`
	FromWarehouseID string `json:"from_warehouse_id" validate:"required"`
	ToWarehouseID   string `json:"to_warehouse_id" validate:"required"`
	Quantity        int    `json:"quantity"`
}

// TransactionResponse is one ledger entry.
type TransactionResponse struct {
	ID              string          `json:"id"`
	Date            time.Time       `json:"date"`
	ItemID          string          `json:"item_id"`
	ItemName        string          `json:"item_name"`
	VariantID       string          `json:"variant_id,omitempty"`
	VariantName     string          `json:"variant_name,omitempty"`
	SKU             string          `json:"sku"`
	Quantity        int             `json:"quantity"`
	UnitCost        decimal.Decimal `json:"unit_cost"`
	UnitPrice       decimal.Decimal `json:"unit_price"`
	Total           decimal.Decimal `json:"total"`
	Type            string          `json:"type"`
	FromWarehouseID string          `json:"from_warehouse_id,omitempty"`
	ToWarehouseID   string          `json:"to_warehouse_id,omitempty"`
	WarehouseName   string          `json:"warehouse_name,omitempty"`
}

// MovementResponse is the reply to a sale, restock or transfer. Transaction is null when
// nothing was recorded.
type MovementResponse struct {
	Product     ProductResponse      `json:"product"`
	Transaction *TransactionResponse `json:"transaction"`
}
