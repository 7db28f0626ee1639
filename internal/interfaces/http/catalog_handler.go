package http

import (
	"net/url"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/inventario-ledger/internal/application/dto"
	"github.com/jhoicas/inventario-ledger/internal/application/inventory"
	"github.com/jhoicas/inventario-ledger/internal/domain"
	"github.com/jhoicas/inventario-ledger/internal/domain/entity"
)

// CatalogHandler serves the attribute vocabularies.
type CatalogHandler struct {
	svc *inventory.Service
}

// NewCatalogHandler builds the handler.
func NewCatalogHandler(svc *inventory.Service) *CatalogHandler {
	return &CatalogHandler{svc: svc}
}

func catalogKind(c *fiber.Ctx) (entity.CatalogKind, error) {
	kind, ok := entity.ParseCatalogKind(c.Params("kind"))
	if !ok {
		return "", domain.ErrNotFound
	}
	return kind, nil
}

// List godoc
// @Summary      List catalog values
// @Tags         catalogs
// @Produce      json
// @Param        kind  path  string  true  "categories, sizes, colors or others"
// @Success      200   {object}  dto.CatalogResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/catalogs/{kind} [get]
func (h *CatalogHandler) List(c *fiber.Ctx) error {
	kind, err := catalogKind(c)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.CatalogResponse{Kind: string(kind), Values: nonNil(h.svc.Catalog(kind))})
}

// Add godoc
// @Summary      Add catalog value
// @Description  Blank values are ignored. Duplicates are rejected.
// @Tags         catalogs
// @Accept       json
// @Produce      json
// @Param        kind  path  string                   true  "categories, sizes, colors or others"
// @Param        body  body  dto.CatalogValueRequest  true  "Value"
// @Success      200   {object}  dto.CatalogResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/catalogs/{kind} [post]
func (h *CatalogHandler) Add(c *fiber.Ctx) error {
	kind, err := catalogKind(c)
	if err != nil {
		return respondError(c, err)
	}
	var in dto.CatalogValueRequest
	if err := bind(c, &in); err != nil {
		return respondError(c, err)
	}
	values, err := h.svc.AddCatalogValue(kind, in.Value)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.CatalogResponse{Kind: string(kind), Values: nonNil(values)})
}

// Remove godoc
// @Summary      Remove catalog value
// @Tags         catalogs
// @Produce      json
// @Param        kind   path  string  true  "categories, sizes, colors or others"
// @Param        value  path  string  true  "Value (URL-encoded)"
// @Success      200    {object}  dto.CatalogResponse
// @Router       /api/catalogs/{kind}/{value} [delete]
func (h *CatalogHandler) Remove(c *fiber.Ctx) error {
	kind, err := catalogKind(c)
	if err != nil {
		return respondError(c, err)
	}
	value, err := url.PathUnescape(c.Params("value"))
	if err != nil {
		return respondError(c, domain.ErrInvalidInput)
	}
	return c.JSON(dto.CatalogResponse{Kind: string(kind), Values: nonNil(h.svc.RemoveCatalogValue(kind, value))})
}

func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
