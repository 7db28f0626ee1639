package http

import (
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/inventario-ledger/internal/application/dto"
	"github.com/jhoicas/inventario-ledger/internal/domain"
)

var errInvalidBody = errors.New("invalid body")

// errorStatus maps a domain error to its HTTP status and error code.
var errorStatus = []struct {
	err    error
	status int
	code   string
}{
	{domain.ErrDuplicateName, fiber.StatusConflict, "DUPLICATE_NAME"},
	{domain.ErrCannotDeleteDefault, fiber.StatusConflict, "CANNOT_DELETE_DEFAULT"},
	{domain.ErrWarehouseNotEmpty, fiber.StatusConflict, "WAREHOUSE_NOT_EMPTY"},
	{domain.ErrInsufficientStock, fiber.StatusConflict, "INSUFFICIENT_STOCK"},
	{domain.ErrInvalidVariant, fiber.StatusBadRequest, "INVALID_VARIANT"},
	{domain.ErrVariantLimitExceeded, fiber.StatusBadRequest, "VARIANT_LIMIT_EXCEEDED"},
	{domain.ErrVariantRequired, fiber.StatusBadRequest, "VALIDATION"},
	{domain.ErrSameWarehouse, fiber.StatusBadRequest, "VALIDATION"},
	{domain.ErrInvalidInput, fiber.StatusBadRequest, "VALIDATION"},
	{domain.ErrNotFound, fiber.StatusNotFound, "NOT_FOUND"},
	{domain.ErrWarehouseNotFound, fiber.StatusNotFound, "NOT_FOUND"},
	{domain.ErrVariantNotFound, fiber.StatusNotFound, "NOT_FOUND"},
	{errInvalidBody, fiber.StatusBadRequest, "INVALID_BODY"},
}

// respondError writes the ErrorResponse for err. Unknown errors become 500 INTERNAL.
func respondError(c *fiber.Ctx, err error) error {
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: validationMessage(verrs)})
	}
	for _, e := range errorStatus {
		if errors.Is(err, e.err) {
			return c.Status(e.status).JSON(dto.ErrorResponse{Code: e.code, Message: err.Error()})
		}
	}
	return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
}

func validationMessage(verrs validator.ValidationErrors) string {
	parts := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		parts = append(parts, fe.Field()+" failed "+fe.Tag())
	}
	return strings.Join(parts, "; ")
}
