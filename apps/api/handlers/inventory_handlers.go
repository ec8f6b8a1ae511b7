package handlers

import (
	"net/http"

	"github.com/chokka/chokka-api/libs/go/helpers"
	"github.com/chokka/chokka-api/libs/go/interfaces"
	"github.com/chokka/chokka-api/libs/go/types/api/params"
	"github.com/chokka/chokka-api/libs/go/types/api/requests"

	"github.com/gin-gonic/gin"
)

// InventoryHandler handles stock of packaging and game components
type InventoryHandler struct {
	inventoryService interfaces.InventoryService
}

// NewInventoryHandler creates a handler with interface dependencies
func NewInventoryHandler(inventoryService interfaces.InventoryService) *InventoryHandler {
	return &InventoryHandler{inventoryService: inventoryService}
}

// ListItems godoc
// @Summary List inventory
// @Description Ordered by category then name
// @Tags inventory
// @Produce json
// @Success 200 {array} responses.InventoryItemResponse
// @Security BearerAuth
// @Router /inventory [get]
func (h *InventoryHandler) ListItems(c *gin.Context) {
	items, err := h.inventoryService.ListItems(c.Request.Context())
	if err != nil {
		handleServiceError(c, err, "Failed to list inventory")
		return
	}
	sendSuccess(c, http.StatusOK, helpers.ToInventoryItemResponses(items))
}

// ListLowStock godoc
// @Summary List items at or below their reorder level
// @Tags inventory
// @Produce json
// @Success 200 {array} responses.InventoryItemResponse
// @Security BearerAuth
// @Router /inventory/low-stock [get]
func (h *InventoryHandler) ListLowStock(c *gin.Context) {
	items, err := h.inventoryService.ListLowStock(c.Request.Context())
	if err != nil {
		handleServiceError(c, err, "Failed to list low stock items")
		return
	}
	sendSuccess(c, http.StatusOK, helpers.ToInventoryItemResponses(items))
}

// CreateItem godoc
// @Summary Add an inventory row
// @Tags inventory
// @Accept json
// @Produce json
// @Param item body requests.CreateInventoryItemRequest true "Inventory row"
// @Success 201 {object} responses.InventoryItemResponse
// @Failure 400 {object} ErrorResponse
// @Security BearerAuth
// @Router /inventory [post]
func (h *InventoryHandler) CreateItem(c *gin.Context) {
	var req requests.CreateInventoryItemRequest
	if !bindJSON(c, &req) {
		return
	}

	item, err := h.inventoryService.CreateItem(c.Request.Context(), params.CreateInventoryItemParams{
		Name:         req.Name,
		Category:     req.Category,
		ProductID:    req.ProductID,
		ItemType:     req.ItemType,
		Stock:        req.Stock,
		ReorderLevel: req.ReorderLevel,
		UnitCost:     req.UnitCost,
	})
	if err != nil {
		handleServiceError(c, err, "Failed to create inventory item")
		return
	}
	sendSuccess(c, http.StatusCreated, helpers.ToInventoryItemResponse(*item))
}

// UpdateItem godoc
// @Summary Update an inventory row
// @Tags inventory
// @Accept json
// @Produce json
// @Param id path int true "Inventory ID"
// @Param item body requests.UpdateInventoryItemRequest true "Fields to change"
// @Success 200 {object} responses.InventoryItemResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /inventory/{id} [put]
func (h *InventoryHandler) UpdateItem(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	var req requests.UpdateInventoryItemRequest
	if !bindJSON(c, &req) {
		return
	}

	item, err := h.inventoryService.UpdateItem(c.Request.Context(), params.UpdateInventoryItemParams{
		ID:           id,
		Name:         req.Name,
		Category:     req.Category,
		Stock:        req.Stock,
		ReorderLevel: req.ReorderLevel,
		UnitCost:     req.UnitCost,
	})
	if err != nil {
		handleServiceError(c, err, "Failed to update inventory item")
		return
	}
	sendSuccess(c, http.StatusOK, helpers.ToInventoryItemResponse(*item))
}

// DeleteItem godoc
// @Summary Delete an inventory row
// @Tags inventory
// @Produce json
// @Param id path int true "Inventory ID"
// @Success 200 {object} SuccessResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /inventory/{id} [delete]
func (h *InventoryHandler) DeleteItem(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	if err := h.inventoryService.DeleteItem(c.Request.Context(), id); err != nil {
		handleServiceError(c, err, "Failed to delete inventory item")
		return
	}
	sendSuccessMessage(c, "Inventory item deleted")
}

// Restock godoc
// @Summary Add stock to several rows in one transaction
// @Tags inventory
// @Accept json
// @Produce json
// @Param restock body requests.RestockRequest true "Rows and quantities"
// @Success 200 {array} responses.InventoryItemResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /inventory/restock [post]
func (h *InventoryHandler) Restock(c *gin.Context) {
	var req requests.RestockRequest
	if !bindJSON(c, &req) {
		return
	}

	items := make([]params.RestockItem, len(req.Items))
	for i, it := range req.Items {
		items[i] = params.RestockItem{ID: it.ID, AddQuantity: it.AddQuantity}
	}

	updated, err := h.inventoryService.Restock(c.Request.Context(), items)
	if err != nil {
		handleServiceError(c, err, "Failed to restock inventory")
		return
	}
	sendSuccess(c, http.StatusOK, helpers.ToInventoryItemResponses(updated))
}
