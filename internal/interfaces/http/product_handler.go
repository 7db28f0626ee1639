package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/inventario-ledger/internal/application/dto"
	"github.com/jhoicas/inventario-ledger/internal/application/inventory"
	domaininv "github.com/jhoicas/inventario-ledger/internal/domain/inventory"
)

// ProductHandler serves items and the variant generator.
type ProductHandler struct {
	svc *inventory.Service
}

// NewProductHandler builds the handler.
func NewProductHandler(svc *inventory.Service) *ProductHandler {
	return &ProductHandler{svc: svc}
}

// List godoc
// @Summary      List products
// @Tags         products
// @Produce      json
// @Param        q      query  string  false  "Search in name, SKU and category"
// @Param        sort   query  string  false  "name, sku, quantity, cost or price"  default(name)
// @Param        order  query  string  false  "asc or desc"                         default(asc)
// @Success      200    {object}  dto.ProductListResponse
// @Failure      400    {object}  dto.ErrorResponse
// @Router       /api/products [get]
func (h *ProductHandler) List(c *fiber.Ctx) error {
	q, err := inventory.ParseListQuery(c.Query("q"), c.Query("sort"), c.Query("order"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(inventory.ToProductList(h.svc.Items(q)))
}

// GetByID godoc
// @Summary      Get product
// @Tags         products
// @Produce      json
// @Param        id   path  string  true  "Product ID"
// @Success      200  {object}  dto.ProductResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/products/{id} [get]
func (h *ProductHandler) GetByID(c *fiber.Ctx) error {
	it, err := h.svc.Item(c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(inventory.ToProductResponse(it))
}

// Create godoc
// @Summary      Create product
// @Description  All stock starts in the default warehouse and is recorded as IN_INITIAL.
// @Tags         products
// @Accept       json
// @Produce      json
// @Param        body  body  dto.ProductRequest  true  "Product"
// @Success      201   {object}  dto.ProductResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/products [post]
func (h *ProductHandler) Create(c *fiber.Ctx) error {
	var in dto.ProductRequest
	if err := bind(c, &in); err != nil {
		return respondError(c, err)
	}
	it, err := h.svc.CreateItem(inventory.DraftFromRequest(in))
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(inventory.ToProductResponse(it))
}

// Update godoc
// @Summary      Update product
// @Description  Quantity changes are absorbed by the default warehouse. No ledger entry is written.
// @Tags         products
// @Accept       json
// @Produce      json
// @Param        id    path  string              true  "Product ID"
// @Param        body  body  dto.ProductRequest  true  "Product"
// @Success      200   {object}  dto.ProductResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/products/{id} [put]
func (h *ProductHandler) Update(c *fiber.Ctx) error {
	var in dto.ProductRequest
	if err := bind(c, &in); err != nil {
		return respondError(c, err)
	}
	it, err := h.svc.EditItem(c.Params("id"), inventory.DraftFromRequest(in))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(inventory.ToProductResponse(it))
}

// Delete godoc
// @Summary      Delete product
// @Description  Ledger entries referencing the product are kept.
// @Tags         products
// @Param        id   path  string  true  "Product ID"
// @Success      204
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/products/{id} [delete]
func (h *ProductHandler) Delete(c *fiber.Ctx) error {
	if err := h.svc.DeleteItem(c.Params("id")); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// GenerateVariants godoc
// @Summary      Generate variants
// @Description  Cartesian product of the selected sizes, colors and others. Nothing is saved.
// @Tags         products
// @Accept       json
// @Produce      json
// @Param        body  body  dto.GenerateVariantsRequest  true  "Selections"
// @Success      200   {object}  dto.VariantDraftListResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/products/variants/generate [post]
func (h *ProductHandler) GenerateVariants(c *fiber.Ctx) error {
	var in dto.GenerateVariantsRequest
	if err := bind(c, &in); err != nil {
		return respondError(c, err)
	}
	drafts, err := h.svc.GenerateVariants(domaininv.GenerateRequest{
		BaseSKU:   in.BaseSKU,
		BaseCost:  in.BaseCost,
		BasePrice: in.BasePrice,
		Sizes:     in.Sizes,
		Colors:    in.Colors,
		Others:    in.Others,
		Existing:  in.Existing,
	})
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(inventory.ToVariantDrafts(drafts))
}

// ManualVariant godoc
// @Summary      New manual variant
// @Description  Returns an empty variant numbered after the existing ones. Nothing is saved.
// @Tags         products
// @Accept       json
// @Produce      json
// @Param        body  body  dto.ManualVariantRequest  true  "Existing count and base values"
// @Success      200   {object}  dto.VariantDraft
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/products/variants/manual [post]
func (h *ProductHandler) ManualVariant(c *fiber.Ctx) error {
	var in dto.ManualVariantRequest
	if err := bind(c, &in); err != nil {
		return respondError(c, err)
	}
	d, err := h.svc.ManualVariant(in.Existing, in.BaseSKU, in.BaseCost, in.BasePrice)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(inventory.ToVariantDrafts([]domaininv.VariantDraft{d}).Items[0])
}
