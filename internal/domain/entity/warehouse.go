package entity

// DefaultWarehouseID is the fixed identifier of the warehouse synthesized when none exist.
const (
	DefaultWarehouseID   = "MAIN_WAREHOUSE"
	DefaultWarehouseName = "Main Warehouse"
)

// Warehouse is a named stock location. Exactly one warehouse carries IsDefault.
type Warehouse struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	IsDefault bool   `json:"isDefault,omitempty"`
}
