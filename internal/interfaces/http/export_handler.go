package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/inventario-ledger/internal/application/inventory"
)

// ExportHandler serves file downloads.
type ExportHandler struct {
	uc *inventory.ExportUseCase
}

// NewExportHandler builds the handler.
func NewExportHandler(uc *inventory.ExportUseCase) *ExportHandler {
	return &ExportHandler{uc: uc}
}

// CSV godoc
// @Summary      Export inventory as CSV
// @Tags         exports
// @Produce      text/csv
// @Success      200  {file}  file
// @Router       /api/exports/inventory.csv [get]
func (h *ExportHandler) CSV(c *fiber.Ctx) error {
	data, name, err := h.uc.ExportCSV(c.UserContext())
	if err != nil {
		return respondError(c, err)
	}
	c.Attachment(name)
	c.Set(fiber.HeaderContentType, "text/csv; charset=utf-8")
	return c.Send(data)
}

// PDF godoc
// @Summary      Export stock report as PDF
// @Tags         exports
// @Produce      application/pdf
// @Success      200  {file}  file
// @Router       /api/exports/inventory.pdf [get]
func (h *ExportHandler) PDF(c *fiber.Ctx) error {
	data, name, err := h.uc.ExportPDF(c.UserContext())
	if err != nil {
		return respondError(c, err)
	}
	c.Attachment(name)
	return c.Send(data)
}
