package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/inventario-ledger/internal/application/dto"
	"github.com/jhoicas/inventario-ledger/internal/application/inventory"
	"github.com/jhoicas/inventario-ledger/internal/domain/entity"
)

// InventoryHandler serves stock movements.
type InventoryHandler struct {
	svc *inventory.Service
}

// NewInventoryHandler builds the handler.
func NewInventoryHandler(svc *inventory.Service) *InventoryHandler {
	return &InventoryHandler{svc: svc}
}

// movementResponse answers 201 when a ledger entry was written and 200 otherwise.
func movementResponse(c *fiber.Ctx, it entity.Item, tx *entity.Transaction, err error) error {
	if err != nil {
		return respondError(c, err)
	}
	status := fiber.StatusOK
	if tx != nil {
		status = fiber.StatusCreated
	}
	return c.Status(status).JSON(inventory.ToMovementResponse(it, tx))
}

// Sell godoc
// @Summary      Register sale
// @Tags         inventory
// @Accept       json
// @Produce      json
// @Param        body  body  dto.SaleRequest  true  "product_id, variant_id for variant items, warehouse_id, quantity"
// @Success      201   {object}  dto.MovementResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/inventory/sales [post]
func (h *InventoryHandler) Sell(c *fiber.Ctx) error {
	var in dto.SaleRequest
	if err := bind(c, &in); err != nil {
		return respondError(c, err)
	}
	it, tx, err := h.svc.Sell(inventory.SaleInput{
		ItemID:      in.ProductID,
		VariantID:   in.VariantID,
		WarehouseID: in.WarehouseID,
		Quantity:    in.Quantity,
	})
	return movementResponse(c, it, tx, err)
}

// Restock godoc
// @Summary      Register restock
// @Tags         inventory
// @Accept       json
// @Produce      json
// @Param        body  body  dto.RestockRequest  true  "product_id, variant_id for variant items, warehouse_id, quantity, unit_cost"
// @Success      201   {object}  dto.MovementResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/inventory/restocks [post]
func (h *InventoryHandler) Restock(c *fiber.Ctx) error {
	var in dto.RestockRequest
	if err := bind(c, &in); err != nil {
		return respondError(c, err)
	}
	it, tx, err := h.svc.Restock(inventory.RestockInput{
		ItemID:      in.ProductID,
		VariantID:   in.VariantID,
		WarehouseID: in.WarehouseID,
		Quantity:    in.Quantity,
		UnitCost:    in.UnitCost,
	})
	return movementResponse(c, it, tx, err)
}

// Transfer godoc
// @Summary      Register transfer
// @Tags         inventory
// @Accept       json
// @Produce      json
// @Param        body  body  dto.TransferRequest  true  "product_id, variant_id for variant items, from/to warehouse, quantity"
// @Success      201   {object}  dto.MovementResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/inventory/transfers [post]
func (h *InventoryHandler) Transfer(c *fiber.Ctx) error {
	var in dto.TransferRequest
	if err := bind(c, &in); err != nil {
		return respondError(c, err)
	}
	it, tx, err := h.svc.Transfer(inventory.TransferInput{
		ItemID:          in.ProductID,
		VariantID:       in.VariantID,
		FromWarehouseID: in.FromWarehouseID,
		ToWarehouseID:   in.ToWarehouseID,
		Quantity:        in.Quantity,
	})
	return movementResponse(c, it, tx, err)
}
