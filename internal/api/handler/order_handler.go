package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/webstore/store-api/internal/api/metrics"
	"github.com/webstore/store-api/internal/core/domain"
	"github.com/webstore/store-api/internal/core/ports"
)

type OrderHandler struct {
	service ports.OrderService
}

func NewOrderHandler(service ports.OrderService) *OrderHandler {
	return &OrderHandler{service: service}
}

// List handles GET /api/orders.
//
// @Summary      List orders
// @Tags         orders
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}   domain.Order
// @Router       /api/orders [get]
func (h *OrderHandler) List(c echo.Context) error {
	orders, err := h.service.List(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, orders)
}

// Get handles GET /api/orders/:id.
//
// @Summary      Get an order
// @Tags         orders
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      int  true  "Order id"
// @Success      200  {object}  domain.Order
// @Failure      404  {object}  errorResponse
// @Router       /api/orders/{id} [get]
func (h *OrderHandler) Get(c echo.Context) error {
	id, err := pathID(c, domain.ErrOrderNotFound)
	if err != nil {
		return err
	}
	o, err := h.service.Get(c.Request().Context(), id)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, o)
}

// Create handles POST /api/orders.
//
// @Summary      Create an order
// @Tags         orders
// @Accept       json
// @Produce      json
// @Param        body  body      orderRequest  true  "Order"
// @Success      201   {object}  domain.Order
// @Failure      409   {object}  errorResponse
// @Failure      422   {object}  errorResponse
// @Router       /api/orders [post]
func (h *OrderHandler) Create(c echo.Context) error {
	var req orderRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	o, err := h.service.Create(c.Request().Context(), domain.Order{Username: req.Username})
	if err != nil {
		return err
	}
	metrics.RecordMutation("order", metrics.OpCreate)
	return c.JSON(http.StatusCreated, o)
}

// Update handles PUT /api/orders/:id.
//
// @Summary      Update an order
// @Tags         orders
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      int           true  "Order id"
// @Param        body  body      orderRequest  true  "Order"
// @Success      200   {object}  domain.Order
// @Failure      404   {object}  errorResponse
// @Router       /api/orders/{id} [put]
func (h *OrderHandler) Update(c echo.Context) error {
	id, err := pathID(c, domain.ErrOrderNotFound)
	if err != nil {
		return err
	}

	var req orderRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	o, err := h.service.Update(c.Request().Context(), id, domain.Order{Username: req.Username})
	if err != nil {
		return err
	}
	metrics.RecordMutation("order", metrics.OpUpdate)
	return c.JSON(http.StatusOK, o)
}

// Delete handles DELETE /api/orders/:id. Items of the order are removed with it.
//
// @Summary      Delete an order
// @Tags         orders
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      int  true  "Order id"
// @Success      200  {object}  deletedResponse
// @Failure      404  {object}  errorResponse
// @Router       /api/orders/{id} [delete]
func (h *OrderHandler) Delete(c echo.Context) error {
	id, err := pathID(c, domain.ErrOrderNotFound)
	if err != nil {
		return err
	}
	n, err := h.service.Delete(c.Request().Context(), id)
	if err != nil {
		return err
	}
	metrics.RecordMutation("order", metrics.OpDelete)
	return c.JSON(http.StatusOK, deletedResponse{Deleted: n})
}

type OrderItemHandler struct {
	service ports.OrderItemService
}

func NewOrderItemHandler(service ports.OrderItemService) *OrderItemHandler {
	return &OrderItemHandler{service: service}
}

// List handles GET /api/order-items.
//
// @Summary      List order items
// @Tags         order-items
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}   domain.OrderItem
// @Router       /api/order-items [get]
func (h *OrderItemHandler) List(c echo.Context) error {
	items, err := h.service.List(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, items)
}

// Get handles GET /api/order-items/:id.
//
// @Summary      Get an order item
// @Tags         order-items
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      int  true  "Order item id"
// @Success      200  {object}  domain.OrderItem
// @Failure      404  {object}  errorResponse
// @Router       /api/order-items/{id} [get]
func (h *OrderItemHandler) Get(c echo.Context) error {
	id, err := pathID(c, domain.ErrOrderItemNotFound)
	if err != nil {
		return err
	}
	oi, err := h.service.Get(c.Request().Context(), id)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, oi)
}

// Create handles POST /api/order-items.
//
// @Summary      Add an item to an order
// @Tags         order-items
// @Accept       json
// @Produce      json
// @Param        body  body      orderItemRequest  true  "Order item"
// @Success      201   {object}  domain.OrderItem
// @Failure      409   {object}  errorResponse
// @Failure      422   {object}  errorResponse
// @Router       /api/order-items [post]
func (h *OrderItemHandler) Create(c echo.Context) error {
	var req orderItemRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	oi, err := h.service.Create(c.Request().Context(), req.toDomain())
	if err != nil {
		return err
	}
	metrics.RecordMutation("order_item", metrics.OpCreate)
	return c.JSON(http.StatusCreated, oi)
}

// Update handles PUT /api/order-items/:id.
//
// @Summary      Update an order item
// @Tags         order-items
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      int               true  "Order item id"
// @Param        body  body      orderItemRequest  true  "Order item"
// @Success      200   {object}  domain.OrderItem
// @Failure      404   {object}  errorResponse
// @Router       /api/order-items/{id} [put]
func (h *OrderItemHandler) Update(c echo.Context) error {
	id, err := pathID(c, domain.ErrOrderItemNotFound)
	if err != nil {
		return err
	}

	var req orderItemRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	oi, err := h.service.Update(c.Request().Context(), id, req.toDomain())
	if err != nil {
		return err
	}
	metrics.RecordMutation("order_item", metrics.OpUpdate)
	return c.JSON(http.StatusOK, oi)
}

// Delete handles DELETE /api/order-items/:id.
//
// @Summary      Delete an order item
// @Tags         order-items
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      int  true  "Order item id"
// @Success      200  {object}  deletedResponse
// @Failure      404  {object}  errorResponse
// @Router       /api/order-items/{id} [delete]
func (h *OrderItemHandler) Delete(c echo.Context) error {
	id, err := pathID(c, domain.ErrOrderItemNotFound)
	if err != nil {
		return err
	}
	n, err := h.service.Delete(c.Request().Context(), id)
	if err != nil {
		return err
	}
	metrics.RecordMutation("order_item", metrics.OpDelete)
	return c.JSON(http.StatusOK, deletedResponse{Deleted: n})
}
