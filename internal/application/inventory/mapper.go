package inventory

import (
	"github.com/jhoicas/inventario-ledger/internal/application/dto"
	"github.com/jhoicas/inventario-ledger/internal/domain/entity"
	domaininv "github.com/jhoicas/inventario-ledger/internal/domain/inventory"
)

// ToWarehouseResponse maps a warehouse.
func ToWarehouseResponse(w entity.Warehouse) dto.WarehouseResponse {
	return dto.WarehouseResponse{ID: w.ID, Name: w.Name, IsDefault: w.IsDefault}
}

// ToWarehouseList maps the registry.
func ToWarehouseList(ws []entity.Warehouse) dto.WarehouseListResponse {
	out := dto.WarehouseListResponse{Items: make([]dto.WarehouseResponse, 0, len(ws))}
	for _, w := range ws {
		out.Items = append(out.Items, ToWarehouseResponse(w))
	}
	return out
}

// ToProductResponse maps an item with its aggregated distribution and value at cost.
func ToProductResponse(it entity.Item) dto.ProductResponse {
	resp := dto.ProductResponse{
		ID:               it.ID,
		Name:             it.Name,
		SKU:              it.SKU,
		Category:         it.Category,
		Cost:             it.Cost,
		Price:            it.Price,
		Quantity:         it.Quantity,
		Variants:         []dto.VariantResponse{},
		StockByWarehouse: domaininv.Distribution(it),
		InventoryValue:   domaininv.InventoryValue(it),
		LastUpdated:      it.LastUpdated,
	}
	for _, v := range it.Variants() {
		resp.HasVariants = true
		resp.Variants = append(resp.Variants, dto.VariantResponse{
			ID:               v.ID,
			Name:             v.Name,
			SKU:              v.SKU,
			Cost:             v.Cost,
			Price:            v.Price,
			Quantity:         v.Quantity,
			StockByWarehouse: v.StockByWarehouse.Clone(),
		})
	}
	return resp
}

// ToProductList maps a list of items.
func ToProductList(items []entity.Item) dto.ProductListResponse {
	out := dto.ProductListResponse{Items: make([]dto.ProductResponse, 0, len(items)), Total: len(items)}
	for _, it := range items {
		out.Items = append(out.Items, ToProductResponse(it))
	}
	return out
}

// ToTransactionResponse maps a ledger entry.
func ToTransactionResponse(t entity.Transaction) dto.TransactionResponse {
	return dto.TransactionResponse{
		ID:              t.ID,
		Date:            t.Date,
		ItemID:          t.ItemID,
		ItemName:        t.ItemName,
		VariantID:       t.VariantID,
		VariantName:     t.VariantName,
		SKU:             t.SKU,
		Quantity:        t.Quantity,
		UnitCost:        t.UnitCost,
		UnitPrice:       t.UnitPrice,
		Total:           t.Total,
		Type:            string(t.Type),
		FromWarehouseID: t.FromWarehouseID,
		ToWarehouseID:   t.ToWarehouseID,
		WarehouseName:   t.WarehouseName,
	}
}

// ToMovementResponse maps the result of a sale, restock or transfer.
func ToMovementResponse(it entity.Item, tx *entity.Transaction) dto.MovementResponse {
	resp := dto.MovementResponse{Product: ToProductResponse(it)}
	if tx != nil {
		t := ToTransactionResponse(*tx)
		resp.Transaction = &t
	}
	return resp
}

// ToLedgerResponse maps a ledger report.
func ToLedgerResponse(r LedgerReport) dto.LedgerResponse {
	out := dto.LedgerResponse{
		Transactions:    make([]dto.TransactionResponse, 0, len(r.Transactions)),
		Revenue:         r.Revenue,
		Spent:           r.Spent,
		CostOfGoodsSold: r.CostOfGoodsSold,
		EstimatedProfit: r.EstimatedProfit,
	}
	for _, t := range r.Transactions {
		out.Transactions = append(out.Transactions, ToTransactionResponse(t))
	}
	return out
}

// ToDashboardResponse maps dashboard stats.
func ToDashboardResponse(s DashboardStats) dto.DashboardResponse {
	out := dto.DashboardResponse{
		TotalItems:   s.TotalItems,
		TotalUnits:   s.TotalUnits,
		TotalValue:   s.TotalValue,
		ByWarehouse:  make([]dto.WarehouseStockDTO, 0, len(s.ByWarehouse)),
		Transactions: s.Transactions,
	}
	for _, w := range s.ByWarehouse {
		out.ByWarehouse = append(out.ByWarehouse, dto.WarehouseStockDTO{
			WarehouseID: w.Warehouse.ID,
			Name:        w.Warehouse.Name,
			Units:       w.Units,
		})
	}
	return out
}

// DraftFromRequest maps a product body to an item draft.
func DraftFromRequest(req dto.ProductRequest) domaininv.ItemDraft {
	d := domaininv.ItemDraft{
		Name:     req.Name,
		SKU:      req.SKU,
		Category: req.Category,
		Cost:     req.Cost,
		Price:    req.Price,
		Quantity: req.Quantity,
	}
	for _, v := range req.Variants {
		d.Variants = append(d.Variants, domaininv.VariantDraft{
			ID:       v.ID,
			Name:     v.Name,
			SKU:      v.SKU,
			Cost:     v.Cost,
			Price:    v.Price,
			Quantity: v.Quantity,
		})
	}
	return d
}

// ToVariantDrafts maps generator output.
func ToVariantDrafts(drafts []domaininv.VariantDraft) dto.VariantDraftListResponse {
	out := dto.VariantDraftListResponse{Items: make([]dto.VariantDraft, 0, len(drafts))}
	for _, d := range drafts {
		out.Items = append(out.Items, dto.VariantDraft{
			ID:       d.ID,
			Name:     d.Name,
			SKU:      d.SKU,
			Cost:     d.Cost,
			Price:    d.Price,
			Quantity: d.Quantity,
		})
	}
	return out
}
