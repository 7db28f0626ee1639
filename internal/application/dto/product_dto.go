package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// VariantDraft is a variant as sent by the client or proposed by the generator. Cost, price
// and quantity are required on save; the domain rejects missing ones with INVALID_VARIANT.
type VariantDraft struct {
	ID       string           `json:"id,omitempty"`
	Name     string           `json:"name"`
	SKU      string           `json:"sku"`
	Cost     *decimal.Decimal `json:"cost"`
	Price    *decimal.Decimal `json:"price"`
	Quantity *int             `json:"quantity"`
}

// ProductRequest is the body of POST /api/products and PUT /api/products/:id. When Variants
// is non-empty the item-level quantity is ignored and the total is derived from them.
type ProductRequest struct {
	Name     string          `json:"name" validate:"required,max=200"`
	SKU      string          `json:"sku" validate:"max=100"`
	Category string          `json:"category" validate:"max=100"`
	Cost     decimal.Decimal `json:"cost"`
	Price    decimal.Decimal `json:"price"`
	Quantity int             `json:"quantity" validate:"min=0"`
	Variants []VariantDraft  `json:"variants"`
}

// VariantResponse describes one stored variant.
type VariantResponse struct {
	ID               string          `json:"id"`
	Name             string          `json:"name"`
	SKU              string          `json:"sku"`
	Cost             decimal.Decimal `json:"cost"`
	Price            decimal.Decimal `json:"price"`
	Quantity         int             `json:"quantity"`
	StockByWarehouse map[string]int  `json:"stock_by_warehouse"`
}

// ProductResponse describes one item. StockByWarehouse is the aggregated distribution; for
// variant items it sums the variant maps.
type ProductResponse struct {
	ID               string            `json:"id"`
	Name             string            `json:"name"`
	SKU              string            `json:"sku"`
	Category         string            `json:"category"`
	Cost             decimal.Decimal   `json:"cost"`
	Price            decimal.Decimal   `json:"price"`
	Quantity         int               `json:"quantity"`
	HasVariants      bool              `json:"has_variants"`
	Variants         []VariantResponse `json:"variants"`
	StockByWarehouse map[string]int    `json:"stock_by_warehouse"`
	InventoryValue   decimal.Decimal   `json:"inventory_value"`
	LastUpdated      time.Time         `json:"last_updated"`
}

// ProductListResponse lists items.
type ProductListResponse struct {
	Items []ProductResponse `json:"items"`
	Total int               `json:"total"`
}

// GenerateVariantsRequest is the body of POST /api/products/variants/generate.
type GenerateVariantsRequest struct {
	BaseSKU   string           `json:"base_sku"`
	BaseCost  *decimal.Decimal `json:"base_cost"`
	BasePrice *decimal.Decimal `json:"base_price"`
	Sizes     []string         `json:"sizes"`
	Colors    []string         `json:"colors"`
	Others    []string         `json:"others"`
	Existing  []string         `json:"existing"`
}

// ManualVariantRequest is the body of POST /api/products/variants/manual.
type ManualVariantRequest struct {
	Existing  int              `json:"existing" validate:"min=0"`
	BaseSKU   string           `json:"base_sku"`
	BaseCost  *decimal.Decimal `json:"base_cost"`
	BasePrice *decimal.Decimal `json:"base_price"`
}

// VariantDraftListResponse carries generator output.
type VariantDraftListResponse struct {
	Items []VariantDraft `json:"items"`
}
