package entity

import (
	"encoding/json"
	"time"

	"github.com/shopspring/decimal"
)

// Variant is a purchasable sub-configuration of an item (e.g. "S / Red") with its own
// SKU, pricing and per-warehouse stock.
type Variant struct {
	ID               string          `json:"id"`
	Name             string          `json:"name"`
	SKU              string          `json:"sku"`
	Cost             decimal.Decimal `json:"cost"`
	Price            decimal.Decimal `json:"price"`
	Quantity         int             `json:"quantity"`
	StockByWarehouse StockMap        `json:"stockByWarehouse"`
}

// Clone returns a copy that shares no map with v.
func (v Variant) Clone() Variant {
	v.StockByWarehouse = v.StockByWarehouse.Clone()
	return v
}

// Stocking is the stock mode of an item: SimpleStock or VariantStock.
type Stocking interface {
	stocking()
}

// SimpleStock: the item-level map and quantity are authoritative.
type SimpleStock struct {
	ByWarehouse StockMap
}

// VariantStock: each variant owns its stock; the item quantity is the sum of variants.
type VariantStock struct {
	Variants []Variant
}

func (SimpleStock) stocking()  {}
func (VariantStock) stocking() {}

// Item is an inventory product, either simple or decomposed into variants.
type Item struct {
	ID          string
	Name        string
	SKU         string
	Category    string
	Cost        decimal.Decimal
	Price       decimal.Decimal
	Quantity    int
	Stock       Stocking
	LastUpdated time.Time
}

// Variants returns the variant list, nil for simple items.
func (it Item) Variants() []Variant {
	if vs, ok := it.Stock.(VariantStock); ok {
		return vs.Variants
	}
	return nil
}

// FindVariant looks a variant up by ID.
func (it Item) FindVariant(id string) (Variant, bool) {
	for _, v := range it.Variants() {
		if v.ID == id {
			return v, true
		}
	}
	return Variant{}, false
}

// Clone deep-copies the item, including variants and stock maps.
func (it Item) Clone() Item {
	switch st := it.Stock.(type) {
	case VariantStock:
		variants := make([]Variant, len(st.Variants))
		for i, v := range st.Variants {
			variants[i] = v.Clone()
		}
		it.Stock = VariantStock{Variants: variants}
	case SimpleStock:
		it.Stock = SimpleStock{ByWarehouse: st.ByWarehouse.Clone()}
	default:
		it.Stock = SimpleStock{ByWarehouse: StockMap{}}
	}
	return it
}

// itemRecord is the persisted shape: variants plus an item-level stock map, lastUpdated in
// epoch milliseconds. Records written by earlier versions of the app load unchanged.
type itemRecord struct {
	ID               string          `json:"id"`
	Name             string          `json:"name"`
	SKU              string          `json:"sku"`
	Cost             decimal.Decimal `json:"cost"`
	Price            decimal.Decimal `json:"price"`
	Quantity         int             `json:"quantity"`
	Category         string          `json:"category"`
	Variants         []Variant       `json:"variants,omitempty"`
	StockByWarehouse StockMap        `json:"stockByWarehouse"`
	LastUpdated      int64           `json:"lastUpdated"`
}

// MarshalJSON writes the flat record format.
func (it Item) MarshalJSON() ([]byte, error) {
	rec := itemRecord{
		ID:               it.ID,
		Name:             it.Name,
		SKU:              it.SKU,
		Cost:             it.Cost,
		Price:            it.Price,
		Quantity:         it.Quantity,
		Category:         it.Category,
		StockByWarehouse: StockMap{},
		LastUpdated:      it.LastUpdated.UnixMilli(),
	}
	switch st := it.Stock.(type) {
	case VariantStock:
		rec.Variants = st.Variants
	case SimpleStock:
		if st.ByWarehouse != nil {
			rec.StockByWarehouse = st.ByWarehouse
		}
	}
	return json.Marshal(rec)
}

// UnmarshalJSON reads the flat record format; a non-empty variant list selects VariantStock.
func (it *Item) UnmarshalJSON(data []byte) error {
	var rec itemRecord
	if err := json.Unmarshal(data, &rec); err != nil {
		return err
	}
	*it = Item{
		ID:          rec.ID,
		Name:        rec.Name,
		SKU:         rec.SKU,
		Category:    rec.Category,
		Cost:        rec.Cost,
		Price:       rec.Price,
		Quantity:    rec.Quantity,
		LastUpdated: time.UnixMilli(rec.LastUpdated),
	}
	if len(rec.Variants) > 0 {
		it.Stock = VariantStock{Variants: rec.Variants}
	} else {
		it.Stock = SimpleStock{ByWarehouse: rec.StockByWarehouse}
	}
	return nil
}
