package handlers

import (
	"net/http"
	"strings"

	"github.com/chokka/chokka-api/apps/api/constants"
	"github.com/chokka/chokka-api/libs/go/interfaces"
	"github.com/chokka/chokka-api/libs/go/types/api/params"
	"github.com/chokka/chokka-api/libs/go/types/api/requests"
	"github.com/chokka/chokka-api/libs/go/types/api/responses"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// CourierHandler exposes the Steadfast integration to the admin panel
type CourierHandler struct {
	courierService interfaces.CourierService
	logger         *zap.Logger
}

// NewCourierHandler creates a handler with interface dependencies
func NewCourierHandler(courierService interfaces.CourierService, logger *zap.Logger) *CourierHandler {
	if logger == nil {
		logger = zap.L()
	}
	return &CourierHandler{courierService: courierService, logger: logger}
}

// CreateShipment godoc
// @Summary Create a Steadfast consignment
// @Description When order_id is given the order is marked Steadfast_Posted with its tracking code
// @Tags courier
// @Accept json
// @Produce json
// @Param shipment body requests.CreateShipmentRequest true "Consignment"
// @Success 200 {object} steadfast.CreateOrderResponse
// @Failure 400 {object} ErrorResponse
// @Failure 502 {object} ErrorResponse
// @Security BearerAuth
// @Router /steadfast/create [post]
func (h *CourierHandler) CreateShipment(c *gin.Context) {
	var req requests.CreateShipmentRequest
	if !bindJSON(c, &req) {
		return
	}
	req.Normalize()
	if err := req.Validate(); err != nil {
		sendError(c, http.StatusBadRequest, err.Error(), nil)
		return
	}

	resp, err := h.courierService.CreateShipment(c.Request.Context(), params.CreateShipmentParams{
		OrderID:          req.OrderID,
		Invoice:          req.Invoice,
		RecipientName:    req.RecipientName,
		RecipientPhone:   req.RecipientPhone,
		RecipientAddress: req.RecipientAddress,
		CODAmount:        *req.CODAmount,
		Note:             req.Note,
	})
	if err != nil {
		handleServiceError(c, err, "Failed to create consignment")
		return
	}

	sendSuccess(c, http.StatusOK, resp)
}

// CreateBulkShipments godoc
// @Summary Send several orders to Steadfast at once
// @Tags courier
// @Accept json
// @Produce json
// @Param shipment body requests.BulkShipmentRequest true "Order ids"
// @Success 200 {object} responses.BulkShipmentResponse
// @Failure 400 {object} ErrorResponse
// @Failure 502 {object} ErrorResponse
// @Security BearerAuth
// @Router /steadfast/bulk-create [post]
func (h *CourierHandler) CreateBulkShipments(c *gin.Context) {
	var req requests.BulkShipmentRequest
	if !bindJSON(c, &req) {
		return
	}

	result, err := h.courierService.CreateBulkShipments(c.Request.Context(), req.OrderIDs)
	if err != nil {
		handleServiceError(c, err, "Failed to create bulk consignments")
		return
	}

	sendSuccess(c, http.StatusOK, responses.BulkShipmentResponse{Success: true, BulkShipmentResult: *result})
}

// GetDeliveryStatus godoc
// @Summary Get the courier status of a consignment
// @Tags courier
// @Produce json
// @Param trackingCode path string true "Tracking code"
// @Success 200 {object} responses.DeliveryStatusResponse
// @Failure 502 {object} ErrorResponse
// @Security BearerAuth
// @Router /steadfast/status/{trackingCode} [get]
func (h *CourierHandler) GetDeliveryStatus(c *gin.Context) {
	code := strings.TrimSpace(c.Param("trackingCode"))
	if code == "" {
		sendError(c, http.StatusBadRequest, constants.TrackingRequired, nil)
		return
	}

	status, err := h.courierService.GetDeliveryStatus(c.Request.Context(), code)
	if err != nil {
		handleServiceError(c, err, "Failed to fetch delivery status")
		return
	}

	sendSuccess(c, http.StatusOK, responses.DeliveryStatusResponse{DeliveryStatus: status})
}

// SyncOrder godoc
// @Summary Reconcile one order with its courier status
// @Tags courier
// @Produce json
// @Param orderId path int true "Order ID"
// @Success 200 {object} responses.SyncOrderResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /steadfast/sync/{orderId} [post]
func (h *CourierHandler) SyncOrder(c *gin.Context) {
	id, ok := parseID(c, "orderId")
	if !ok {
		return
	}

	result, err := h.courierService.SyncOrder(c.Request.Context(), id)
	if err != nil {
		handleServiceError(c, err, "Failed to sync order")
		return
	}

	sendSuccess(c, http.StatusOK, responses.SyncOrderResponse{Success: true, SyncResult: *result})
}

// SyncAll godoc
// @Summary Reconcile every open shipment with the courier
// @Tags courier
// @Produce json
// @Success 200 {object} responses.SyncAllResponse
// @Security BearerAuth
// @Router /steadfast/sync-all [post]
func (h *CourierHandler) SyncAll(c *gin.Context) {
	summary, err := h.courierService.SyncAll(c.Request.Context())
	if err != nil {
		handleServiceError(c, err, "Failed to sync orders")
		return
	}

	h.logger.Info("Courier sync finished",
		zap.Int("total", summary.Total),
		zap.Int("updated", summary.Updated),
		zap.Int("errors", len(summary.Errors)))

	sendSuccess(c, http.StatusOK, responses.SyncAllResponse{Success: true, SyncSummary: *summary})
}
