package handlers

import (
	"net/http"

	"github.com/chokka/chokka-api/libs/go/config"
	"github.com/chokka/chokka-api/libs/go/helpers"
	"github.com/chokka/chokka-api/libs/go/interfaces"
	"github.com/chokka/chokka-api/libs/go/types/api/params"
	"github.com/chokka/chokka-api/libs/go/types/api/requests"
	"github.com/chokka/chokka-api/libs/go/types/api/responses"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// OrderHandler handles checkout and order administration
type OrderHandler struct {
	orderService interfaces.OrderService
	catalog      *config.Catalog
	logger       *zap.Logger
}

// NewOrderHandler creates a handler with interface dependencies
func NewOrderHandler(orderService interfaces.OrderService, catalog *config.Catalog, logger *zap.Logger) *OrderHandler {
	if logger == nil {
		logger = zap.L()
	}
	if catalog == nil {
		catalog = config.DefaultCatalog()
	}
	return &OrderHandler{
		orderService: orderService,
		catalog:      catalog,
		logger:       logger,
	}
}

// CreateOrder godoc
// @Summary Place a cash-on-delivery order
// @Description Prices the order on the server, stores it and alerts the admins
// @Tags checkout
// @Accept json
// @Produce json
// @Param order body requests.CreateOrderRequest true "Checkout form"
// @Success 200 {object} responses.CreateOrderResponse
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /create-order [post]
func (h *OrderHandler) CreateOrder(c *gin.Context) {
	var req requests.CreateOrderRequest
	if !bindJSON(c, &req) {
		return
	}

	order, quote, err := h.orderService.CreateOrder(c.Request.Context(), params.CreateOrderParams{
		CustomerName:    req.CustomerName,
		CustomerPhone:   req.CustomerPhone,
		CustomerAddress: req.CustomerAddress,
		CustomerEmail:   req.CustomerEmail,
		City:            req.City,
		ProductID:       req.ProductID,
		Quantity:        req.Quantity,
		CouponCode:      req.CouponCode,
		Note:            req.Note,
		ClientTotal:     req.TotalPrice,
	})
	if err != nil {
		handleServiceError(c, err, "Failed to place order")
		return
	}

	sendSuccess(c, http.StatusOK, responses.CreateOrderResponse{
		Success: true,
		OrderID: order.ID,
		Total:   quote.Total,
	})
}

// Quote godoc
// @Summary Preview the price of an order
// @Description Returns the server quote and the bundle upsell without creating an order
// @Tags checkout
// @Accept json
// @Produce json
// @Param quote body requests.QuoteRequest true "Quote request"
// @Success 200 {object} responses.QuoteResponse
// @Failure 400 {object} ErrorResponse
// @Router /checkout/quote [post]
func (h *OrderHandler) Quote(c *gin.Context) {
	var req requests.QuoteRequest
	if !bindJSON(c, &req) {
		return
	}

	quote, upsell, err := h.orderService.Quote(c.Request.Context(), params.QuoteParams{
		ProductID:  req.ProductID,
		Quantity:   req.Quantity,
		City:       req.City,
		CouponCode: req.CouponCode,
	})
	if err != nil {
		handleServiceError(c, err, "Failed to price order")
		return
	}

	sendSuccess(c, http.StatusOK, responses.QuoteResponse{Success: true, Quote: *quote, Upsell: upsell})
}

// ListOrders godoc
// @Summary List orders
// @Description Returns orders newest first
// @Tags orders
// @Produce json
// @Param status query string false "Exact status filter"
// @Param limit query int false "Number of orders to return (default 200, max 500)"
// @Param offset query int false "Number of orders to skip"
// @Success 200 {array} responses.OrderResponse
// @Failure 400 {object} ErrorResponse
// @Security BearerAuth
// @Router /orders [get]
func (h *OrderHandler) ListOrders(c *gin.Context) {
	page, err := helpers.ParsePaginationParams(c)
	if err != nil {
		sendError(c, http.StatusBadRequest, err.Error(), err)
		return
	}

	orders, err := h.orderService.ListOrders(c.Request.Context(), params.ListOrdersParams{
		Status: c.Query("status"),
		Limit:  page.Limit,
		Offset: page.Offset,
	})
	if err != nil {
		handleServiceError(c, err, "Failed to list orders")
		return
	}

	sendSuccess(c, http.StatusOK, helpers.ToOrderResponses(orders, h.catalog.ProductName))
}

// GetOrder godoc
// @Summary Get an order
// @Tags orders
// @Produce json
// @Param id path int true "Order ID"
// @Success 200 {object} responses.OrderResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /orders/{id} [get]
func (h *OrderHandler) GetOrder(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	order, err := h.orderService.GetOrder(c.Request.Context(), id)
	if err != nil {
		handleServiceError(c, err, "Failed to retrieve order")
		return
	}

	sendSuccess(c, http.StatusOK, helpers.ToOrderResponse(*order, h.catalog.ProductName))
}

// UpdateOrder godoc
// @Summary Set an order status
// @Tags orders
// @Accept json
// @Produce json
// @Param id path int true "Order ID"
// @Param order body requests.UpdateOrderRequest true "New status"
// @Success 200 {object} responses.OrderResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /orders/{id} [put]
func (h *OrderHandler) UpdateOrder(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	var req requests.UpdateOrderRequest
	if !bindJSON(c, &req) {
		return
	}

	h.updateStatus(c, params.UpdateOrderStatusParams{ID: id, Status: req.Status})
}

// UpdateOrderStatus godoc
// @Summary Set an order status and tracking code
// @Tags orders
// @Accept json
// @Produce json
// @Param id path int true "Order ID"
// @Param order body requests.UpdateOrderStatusRequest true "New status"
// @Success 200 {object} responses.OrderResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /orders/{id}/status [put]
func (h *OrderHandler) UpdateOrderStatus(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	var req requests.UpdateOrderStatusRequest
	if !bindJSON(c, &req) {
		return
	}

	h.updateStatus(c, params.UpdateOrderStatusParams{ID: id, Status: req.Status, TrackingCode: req.TrackingCode})
}

func (h *OrderHandler) updateStatus(c *gin.Context, p params.UpdateOrderStatusParams) {
	order, err := h.orderService.UpdateStatus(c.Request.Context(), p)
	if err != nil {
		handleServiceError(c, err, "Failed to update order status")
		return
	}
	sendSuccess(c, http.StatusOK, helpers.ToOrderResponse(*order, h.catalog.ProductName))
}

// UpdateOrderDetails godoc
// @Summary Edit the customer details of an order
// @Tags orders
// @Accept json
// @Produce json
// @Param id path int true "Order ID"
// @Param order body requests.UpdateOrderDetailsRequest true "Customer details"
// @Success 200 {object} responses.OrderResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /orders/{id}/details [put]
func (h *OrderHandler) UpdateOrderDetails(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	var req requests.UpdateOrderDetailsRequest
	if !bindJSON(c, &req) {
		return
	}

	order, err := h.orderService.UpdateDetails(c.Request.Context(), params.UpdateOrderDetailsParams{
		ID:              id,
		CustomerName:    req.CustomerName,
		CustomerPhone:   req.CustomerPhone,
		CustomerAddress: req.CustomerAddress,
		TotalPrice:      req.TotalPrice,
	})
	if err != nil {
		handleServiceError(c, err, "Failed to update order")
		return
	}

	sendSuccess(c, http.StatusOK, helpers.ToOrderResponse(*order, h.catalog.ProductName))
}

// DeleteOrder godoc
// @Summary Delete an order
// @Tags orders
// @Produce json
// @Param id path int true "Order ID"
// @Success 200 {object} SuccessResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /orders/{id} [delete]
func (h *OrderHandler) DeleteOrder(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	if err := h.orderService.DeleteOrder(c.Request.Context(), id); err != nil {
		handleServiceError(c, err, "Failed to delete order")
		return
	}

	h.logger.Info("Order deleted", zap.Int64("order_id", id))
	sendSuccessMessage(c, "Order deleted")
}
