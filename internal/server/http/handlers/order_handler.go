package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/polkiloo/inventory/internal/server/http/dto"
)

// OrderHandler manages order headers and their persisted line items.
type OrderHandler struct {
	facade OrderFacade
}

// NewOrderHandler constructs OrderHandler.
func NewOrderHandler(facade OrderFacade) *OrderHandler {
	return &OrderHandler{facade: facade}
}

// Create handles POST /api/orders.
func (h *OrderHandler) Create(c *gin.Context) {
	var req dto.OrderRequest
	if !bindJSON(c, &req) {
		return
	}

	order, err := h.facade.CreateOrder(c.Request.Context(), req.ToOrder(0))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, dto.NewOrderResponse(*order))
}

// Get handles GET /api/orders/:id.
func (h *OrderHandler) Get(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	order, err := h.facade.Order(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.NewOrderResponse(*order))
}

// List handles GET /api/orders.
func (h *OrderHandler) List(c *gin.Context) {
	orders, err := h.facade.Orders(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	if len(orders) == 0 {
		c.Status(http.StatusNoContent)
		return
	}

	response := make([]dto.OrderResponse, 0, len(orders))
	for _, o := range orders {
		response = append(response, dto.NewOrderResponse(o))
	}
	c.JSON(http.StatusOK, response)
}

// Update handles PUT /api/orders/:id.
func (h *OrderHandler) Update(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	var req dto.OrderRequest
	if !bindJSON(c, &req) {
		return
	}

	order := req.ToOrder(id)
	if err := h.facade.UpdateOrder(c.Request.Context(), order); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.NewOrderResponse(order))
}

// Delete handles DELETE /api/orders/:id.
func (h *OrderHandler) Delete(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	if err := h.facade.DeleteOrder(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// AddItem handles POST /api/orders/:id/items.
func (h *OrderHandler) AddItem(c *gin.Context) {
	orderID, ok := pathID(c)
	if !ok {
		return
	}
	var req dto.LineItemRequest
	if !bindJSON(c, &req) {
		return
	}

	item, err := h.facade.AddLineItem(c.Request.Context(), orderID, req.ProductID, req.Quantity, req.Price)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, dto.NewLineItemResponse(*item))
}

// Items handles GET /api/orders/:id/items. Items come back in insertion order.
func (h *OrderHandler) Items(c *gin.Context) {
	orderID, ok := pathID(c)
	if !ok {
		return
	}

	items, err := h.facade.LineItems(c.Request.Context(), orderID)
	if err != nil {
		respondError(c, err)
		return
	}

	response := make([]dto.LineItemResponse, 0, len(items))
	for _, item := range items {
		response = append(response, dto.NewLineItemResponse(item))
	}
	c.JSON(http.StatusOK, response)
}
