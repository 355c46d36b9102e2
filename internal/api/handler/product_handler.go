package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/webstore/store-api/internal/api/metrics"
	"github.com/webstore/store-api/internal/core/domain"
	"github.com/webstore/store-api/internal/core/ports"
)

type ProductHandler struct {
	service ports.ProductService
}

func NewProductHandler(service ports.ProductService) *ProductHandler {
	return &ProductHandler{service: service}
}

// List handles GET /api/products.
//
// @Summary      List products
// @Tags         products
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}   productResponse
// @Failure      401  {object}  errorResponse
// @Failure      403  {object}  errorResponse
// @Router       /api/products [get]
func (h *ProductHandler) List(c echo.Context) error {
	products, err := h.service.List(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toProductResponses(products))
}

// Get handles GET /api/products/:id.
//
// @Summary      Get a product
// @Tags         products
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      int  true  "Product id"
// @Success      200  {object}  productResponse
// @Failure      400  {object}  errorResponse
// @Failure      404  {object}  errorResponse
// @Router       /api/products/{id} [get]
func (h *ProductHandler) Get(c echo.Context) error {
	id, err := pathID(c, domain.ErrProductNotFound)
	if err != nil {
		return err
	}
	p, err := h.service.Get(c.Request().Context(), id)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toProductResponse(*p))
}

// Create handles POST /api/products.
//
// @Summary      Create a product
// @Tags         products
// @Accept       json
// @Produce      json
// @Param        body  body      productRequest  true  "Product"
// @Success      201   {object}  productResponse
// @Failure      422   {object}  errorResponse
// @Router       /api/products [post]
func (h *ProductHandler) Create(c echo.Context) error {
	var req productRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	p, err := h.service.Create(c.Request().Context(), req.toDomain())
	if err != nil {
		return err
	}
	metrics.RecordMutation("product", metrics.OpCreate)
	return c.JSON(http.StatusCreated, toProductResponse(*p))
}

// Update handles PUT /api/products/:id.
//
// @Summary      Update a product
// @Tags         products
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      int             true  "Product id"
// @Param        body  body      productRequest  true  "Product"
// @Success      200   {object}  productResponse
// @Failure      404   {object}  errorResponse
// @Failure      422   {object}  errorResponse
// @Router       /api/products/{id} [put]
func (h *ProductHandler) Update(c echo.Context) error {
	id, err := pathID(c, domain.ErrProductNotFound)
	if err != nil {
		return err
	}

	var req productRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	p, err := h.service.Update(c.Request().Context(), id, req.toDomain())
	if err != nil {
		return err
	}
	metrics.RecordMutation("product", metrics.OpUpdate)
	return c.JSON(http.StatusOK, toProductResponse(*p))
}

// Delete handles DELETE /api/products/:id.
//
// @Summary      Delete a product
// @Tags         products
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      int  true  "Product id"
// @Success      200  {object}  deletedResponse
// @Failure      404  {object}  errorResponse
// @Failure      409  {object}  errorResponse
// @Router       /api/products/{id} [delete]
func (h *ProductHandler) Delete(c echo.Context) error {
	id, err := pathID(c, domain.ErrProductNotFound)
	if err != nil {
		return err
	}
	n, err := h.service.Delete(c.Request().Context(), id)
	if err != nil {
		return err
	}
	metrics.RecordMutation("product", metrics.OpDelete)
	return c.JSON(http.StatusOK, deletedResponse{Deleted: n})
}
