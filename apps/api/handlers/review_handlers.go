package handlers

import (
	"net/http"

	"github.com/chokka/chokka-api/libs/go/helpers"
	"github.com/chokka/chokka-api/libs/go/interfaces"
	"github.com/chokka/chokka-api/libs/go/types/api/params"
	"github.com/chokka/chokka-api/libs/go/types/api/requests"

	"github.com/gin-gonic/gin"
)

// ReviewHandler handles customer reviews
type ReviewHandler struct {
	reviewService interfaces.ReviewService
}

// NewReviewHandler creates a handler with interface dependencies
func NewReviewHandler(reviewService interfaces.ReviewService) *ReviewHandler {
	return &ReviewHandler{reviewService: reviewService}
}

// ListReviews godoc
// @Summary List reviews
// @Tags reviews
// @Produce json
// @Param product_id query int false "Only reviews of this product"
// @Success 200 {array} responses.ReviewResponse
// @Failure 400 {object} ErrorResponse
// @Router /reviews [get]
func (h *ReviewHandler) ListReviews(c *gin.Context) {
	productID, ok := optionalProductID(c)
	if !ok {
		return
	}

	reviews, err := h.reviewService.ListReviews(c.Request.Context(), productID)
	if err != nil {
		handleServiceError(c, err, "Failed to list reviews")
		return
	}
	sendSuccess(c, http.StatusOK, helpers.ToReviewResponses(reviews))
}

// CreateReview godoc
// @Summary Add a review
// @Tags reviews
// @Accept json
// @Produce json
// @Param review body requests.CreateReviewRequest true "Review"
// @Success 201 {object} responses.ReviewResponse
// @Failure 400 {object} ErrorResponse
// @Security BearerAuth
// @Router /reviews [post]
func (h *ReviewHandler) CreateReview(c *gin.Context) {
	var req requests.CreateReviewRequest
	if !bindJSON(c, &req) {
		return
	}

	review, err := h.reviewService.CreateReview(c.Request.Context(), params.CreateReviewParams{
		CustomerName: req.CustomerName,
		Rating:       req.Rating,
		Comment:      req.Comment,
		ImageURL:     req.ImageURL,
		ProductID:    req.ProductID,
	})
	if err != nil {
		handleServiceError(c, err, "Failed to create review")
		return
	}
	sendSuccess(c, http.StatusCreated, helpers.ToReviewResponse(*review))
}

// DeleteReview godoc
// @Summary Delete a review
// @Tags reviews
// @Produce json
// @Param id path int true "Review ID"
// @Success 200 {object} SuccessResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /reviews/{id} [delete]
func (h *ReviewHandler) DeleteReview(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	if err := h.reviewService.DeleteReview(c.Request.Context(), id); err != nil {
		handleServiceError(c, err, "Failed to delete review")
		return
	}
	sendSuccessMessage(c, "Review deleted")
}
