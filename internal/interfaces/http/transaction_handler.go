package http

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/inventario-ledger/internal/application/inventory"
	"github.com/jhoicas/inventario-ledger/internal/domain"
)

// TransactionHandler serves the ledger.
type TransactionHandler struct {
	svc *inventory.Service
}

// NewTransactionHandler builds the handler.
func NewTransactionHandler(svc *inventory.Service) *TransactionHandler {
	return &TransactionHandler{svc: svc}
}

// List godoc
// @Summary      Ledger report
// @Tags         transactions
// @Produce      json
// @Param        from     query  string  false  "First day, YYYY-MM-DD (inclusive)"
// @Param        to       query  string  false  "Last day, YYYY-MM-DD (inclusive)"
// @Param        kind     query  string  false  "ALL, SALES or PURCHASES"  default(ALL)
// @Param        item_id  query  string  false  "Only entries of this product"
// @Success      200      {object}  dto.LedgerResponse
// @Failure      400      {object}  dto.ErrorResponse
// @Router       /api/transactions [get]
func (h *TransactionHandler) List(c *fiber.Ctx) error {
	from, err := parseDay(c.Query("from"))
	if err != nil {
		return respondError(c, err)
	}
	to, err := parseDay(c.Query("to"))
	if err != nil {
		return respondError(c, err)
	}
	kind, err := inventory.ParseLedgerKind(c.Query("kind"))
	if err != nil {
		return respondError(c, err)
	}
	report := h.svc.Ledger(inventory.LedgerFilter{From: from, To: to, Kind: kind, ItemID: c.Query("item_id")})
	return c.JSON(inventory.ToLedgerResponse(report))
}

// Delete godoc
// @Summary      Delete ledger entry
// @Description  Stock is not affected.
// @Tags         transactions
// @Param        id   path  string  true  "Transaction ID"
// @Success      204
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/transactions/{id} [delete]
func (h *TransactionHandler) Delete(c *fiber.Ctx) error {
	if err := h.svc.DeleteTransaction(c.Params("id")); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// parseDay reads a YYYY-MM-DD day in local time. Empty means no bound.
func parseDay(s string) (time.Time, error) {
	if s == "" {
		return time.Time{}, nil
	}
	t, err := time.ParseInLocation(time.DateOnly, s, time.Local)
	if err != nil {
		return time.Time{}, domain.ErrInvalidInput
	}
	return t, nil
}
