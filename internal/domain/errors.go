package domain

import "errors"

// Domain errors (no external dependencies).
var (
	ErrNotFound     = errors.New("resource not found")
	ErrInvalidInput = errors.New("invalid input")

	// Warehouse registry and attribute catalogs.
	ErrDuplicateName       = errors.New("name already exists")
	ErrCannotDeleteDefault = errors.New("the default warehouse cannot be deleted")
	ErrWarehouseNotFound   = errors.New("warehouse not found")
	ErrWarehouseNotEmpty   = errors.New("warehouse still holds stock")

	// Products and variants.
	ErrInvalidVariant       = errors.New("every variant needs a name and a non-negative cost, price and quantity")
	ErrVariantLimitExceeded = errors.New("variant limit exceeded")
	ErrVariantRequired      = errors.New("item has variants: variant_id is required")
	ErrVariantNotFound      = errors.New("variant not found")

	// Stock movements.
	ErrInsufficientStock = errors.New("insufficient stock")
	ErrSameWarehouse     = errors.New("origin and destination warehouse must differ")
)
