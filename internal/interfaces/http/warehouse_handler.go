package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/inventario-ledger/internal/application/dto"
	"github.com/jhoicas/inventario-ledger/internal/application/inventory"
)

// WarehouseHandler serves the warehouse registry.
type WarehouseHandler struct {
	svc *inventory.Service
}

// NewWarehouseHandler builds the handler.
func NewWarehouseHandler(svc *inventory.Service) *WarehouseHandler {
	return &WarehouseHandler{svc: svc}
}

// List godoc
// @Summary      List warehouses
// @Tags         warehouses
// @Produce      json
// @Success      200  {object}  dto.WarehouseListResponse
// @Router       /api/warehouses [get]
func (h *WarehouseHandler) List(c *fiber.Ctx) error {
	return c.JSON(inventory.ToWarehouseList(h.svc.Warehouses()))
}

// Create godoc
// @Summary      Create warehouse
// @Tags         warehouses
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateWarehouseRequest  true  "Warehouse name"
// @Success      201   {object}  dto.WarehouseResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/warehouses [post]
func (h *WarehouseHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateWarehouseRequest
	if err := bind(c, &in); err != nil {
		return respondError(c, err)
	}
	w, err := h.svc.AddWarehouse(in.Name)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(inventory.ToWarehouseResponse(w))
}

// Rename godoc
// @Summary      Rename warehouse
// @Tags         warehouses
// @Accept       json
// @Produce      json
// @Param        id    path  string                      true  "Warehouse ID"
// @Param        body  body  dto.RenameWarehouseRequest  true  "New name"
// @Success      200   {object}  dto.WarehouseResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/warehouses/{id} [put]
func (h *WarehouseHandler) Rename(c *fiber.Ctx) error {
	var in dto.RenameWarehouseRequest
	if err := bind(c, &in); err != nil {
		return respondError(c, err)
	}
	w, err := h.svc.RenameWarehouse(c.Params("id"), in.Name)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(inventory.ToWarehouseResponse(w))
}

// Delete godoc
// @Summary      Delete warehouse
// @Description  The default warehouse and warehouses still holding stock cannot be deleted.
// @Tags         warehouses
// @Param        id   path  string  true  "Warehouse ID"
// @Success      204
// @Failure      404  {object}  dto.ErrorResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/warehouses/{id} [delete]
func (h *WarehouseHandler) Delete(c *fiber.Ctx) error {
	if err := h.svc.RemoveWarehouse(c.Params("id")); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
