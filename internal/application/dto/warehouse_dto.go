package dto

// CreateWarehouseRequest is the body of POST /api/warehouses.
type CreateWarehouseRequest struct {
	Name string `json:"name" validate:"required,max=200"`
}

// RenameWarehouseRequest is the body of PUT /api/warehouses/:id.
type RenameWarehouseRequest struct {
	Name string `json:"name" validate:"required,max=200"`
}

// WarehouseResponse describes one warehouse.
type WarehouseResponse struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	IsDefault bool   `json:"is_default"`
}

// WarehouseListResponse lists the registry.
type WarehouseListResponse struct {
	Items []WarehouseResponse `json:"items"`
}
