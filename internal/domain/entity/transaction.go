package entity

import (
	"encoding/json"
	"time"

	"github.com/shopspring/decimal"
)

// TransactionType is the kind of stock movement recorded in the ledger.
type TransactionType string

// Ledger entry types.
const (
	TransactionInitial  TransactionType = "IN_INITIAL"
	TransactionRestock  TransactionType = "IN_RESTOCK"
	TransactionSale     TransactionType = "OUT_SALE"
	TransactionTransfer TransactionType = "TRANSFER"
)

// Transaction is an immutable ledger entry. Items and variants are referenced by ID only;
// the entry outlives the item it points to.
type Transaction struct {
	ID              string          `json:"id"`
	Date            time.Time       `json:"date"`
	ItemID          string          `json:"itemId"`
	ItemName        string          `json:"itemName"`
	VariantID       string          `json:"variantId,omitempty"`
	VariantName     string          `json:"variantName,omitempty"`
	SKU             string          `json:"sku"`
	Quantity        int             `json:"quantity"`
	UnitCost        decimal.Decimal `json:"unitCost"`
	UnitPrice       decimal.Decimal `json:"unitPrice"`
	Total           decimal.Decimal `json:"total"`
	Type            TransactionType `json:"type"`
	FromWarehouseID string          `json:"fromWarehouseId,omitempty"`
	ToWarehouseID   string          `json:"toWarehouseId,omitempty"`
	WarehouseName   string          `json:"warehouseName,omitempty"`
}

// IsSale reports whether the entry is an outgoing sale.
func (t Transaction) IsSale() bool {
	return t.Type == TransactionSale
}

// MarshalJSON persists Date as epoch milliseconds.
func (t Transaction) MarshalJSON() ([]byte, error) {
	type alias Transaction
	return json.Marshal(struct {
		alias
		Date int64 `json:"date"`
	}{alias: alias(t), Date: t.Date.UnixMilli()})
}

// UnmarshalJSON reads Date from epoch milliseconds.
func (t *Transaction) UnmarshalJSON(data []byte) error {
	type alias Transaction
	aux := struct {
		*alias
		Date int64 `json:"date"`
	}{alias: (*alias)(t)}
	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}
	t.Date = time.UnixMilli(aux.Date)
	return nil
}
