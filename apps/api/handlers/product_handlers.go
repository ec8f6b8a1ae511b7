package handlers

import (
	"net/http"

	"github.com/chokka/chokka-api/libs/go/helpers"
	"github.com/chokka/chokka-api/libs/go/interfaces"
	"github.com/chokka/chokka-api/libs/go/types/api/params"
	"github.com/chokka/chokka-api/libs/go/types/api/requests"

	"github.com/gin-gonic/gin"
)

// ProductHandler handles product reads and price edits
type ProductHandler struct {
	productService interfaces.ProductService
}

// NewProductHandler creates a handler with interface dependencies
func NewProductHandler(productService interfaces.ProductService) *ProductHandler {
	return &ProductHandler{productService: productService}
}

// ListProducts godoc
// @Summary List products
// @Tags products
// @Produce json
// @Success 200 {array} responses.ProductResponse
// @Router /products [get]
func (h *ProductHandler) ListProducts(c *gin.Context) {
	products, err := h.productService.ListProducts(c.Request.Context())
	if err != nil {
		handleServiceError(c, err, "Failed to list products")
		return
	}
	sendSuccess(c, http.StatusOK, helpers.ToProductResponses(products))
}

// GetProduct godoc
// @Summary Get product by ID
// @Tags products
// @Produce json
// @Param id path int true "Product ID"
// @Success 200 {object} responses.ProductResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /products/{id} [get]
func (h *ProductHandler) GetProduct(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	product, err := h.productService.GetProduct(c.Request.Context(), id)
	if err != nil {
		handleServiceError(c, err, "Failed to retrieve product")
		return
	}
	sendSuccess(c, http.StatusOK, helpers.ToProductResponse(*product))
}

// GetFirstProduct godoc
// @Summary Get the homepage product
// @Description Returns the product with the lowest id
// @Tags products
// @Produce json
// @Success 200 {object} responses.ProductResponse
// @Failure 404 {object} ErrorResponse
// @Router /product [get]
func (h *ProductHandler) GetFirstProduct(c *gin.Context) {
	product, err := h.productService.GetFirstProduct(c.Request.Context())
	if err != nil {
		handleServiceError(c, err, "Failed to retrieve product")
		return
	}
	sendSuccess(c, http.StatusOK, helpers.ToProductResponse(*product))
}

// UpdateProduct godoc
// @Summary Update price, cost, stock or delivery fees
// @Tags products
// @Accept json
// @Produce json
// @Param id path int true "Product ID"
// @Param product body requests.UpdateProductRequest true "Fields to change"
// @Success 200 {object} responses.ProductResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /products/{id} [put]
func (h *ProductHandler) UpdateProduct(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	var req requests.UpdateProductRequest
	if !bindJSON(c, &req) {
		return
	}

	product, err := h.productService.UpdateProduct(c.Request.Context(), params.UpdateProductParams{
		ID:              id,
		Price:           req.Price,
		Cost:            req.Cost,
		Stock:           req.Stock,
		DeliveryDhaka:   req.DeliveryDhaka,
		DeliveryOutside: req.DeliveryOutside,
	})
	if err != nil {
		handleServiceError(c, err, "Failed to update product")
		return
	}
	sendSuccess(c, http.StatusOK, helpers.ToProductResponse(*product))
}
