package dto

import "github.com/shopspring/decimal"

// LedgerResponse is the reply of GET /api/transactions: the filtered entries, newest first,
// with their money totals.
type LedgerResponse struct {
	Transactions    []TransactionResponse `json:"transactions"`
	Revenue         decimal.Decimal       `json:"revenue"`
	Spent           decimal.Decimal       `json:"spent"`
	CostOfGoodsSold decimal.Decimal       `json:"cost_of_goods_sold"`
	EstimatedProfit decimal.Decimal       `json:"estimated_profit"` // revenue - cost of goods sold
}

// WarehouseStockDTO is the number of units held in one warehouse.
type WarehouseStockDTO struct {
	WarehouseID string `json:"warehouse_id"`
	Name        string `json:"name"`
	Units       int    `json:"units"`
}

// DashboardResponse is the reply of GET /api/dashboard.
type DashboardResponse struct {
	TotalItems   int                 `json:"total_items"`
	TotalUnits   int                 `json:"total_units"`
	TotalValue   decimal.Decimal     `json:"total_value"` // at cost
	ByWarehouse  []WarehouseStockDTO `json:"by_warehouse"`
	Transactions int                 `json:"transactions"`
}
