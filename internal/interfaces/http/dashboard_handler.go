package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/inventario-ledger/internal/application/inventory"
)

// DashboardHandler serves the inventory summary.
type DashboardHandler struct {
	svc *inventory.Service
}

// NewDashboardHandler builds the handler.
func NewDashboardHandler(svc *inventory.Service) *DashboardHandler {
	return &DashboardHandler{svc: svc}
}

// GetSummary godoc
// @Summary      Inventory summary
// @Description  Item count, units, value at cost and units per warehouse.
// @Tags         dashboard
// @Produce      json
// @Success      200  {object}  dto.DashboardResponse
// @Router       /api/dashboard [get]
func (h *DashboardHandler) GetSummary(c *fiber.Ctx) error {
	return c.JSON(inventory.ToDashboardResponse(h.svc.Dashboard()))
}
