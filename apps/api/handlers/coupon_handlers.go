package handlers

import (
	"errors"
	"net/http"

	"github.com/chokka/chokka-api/apps/api/constants"
	"github.com/chokka/chokka-api/libs/go/helpers"
	"github.com/chokka/chokka-api/libs/go/interfaces"
	"github.com/chokka/chokka-api/libs/go/services"
	"github.com/chokka/chokka-api/libs/go/types/api/params"
	"github.com/chokka/chokka-api/libs/go/types/api/requests"
	"github.com/chokka/chokka-api/libs/go/types/api/responses"

	"github.com/gin-gonic/gin"
)

// CouponHandler handles discount codes
type CouponHandler struct {
	couponService interfaces.CouponService
}

// NewCouponHandler creates a handler with interface dependencies
func NewCouponHandler(couponService interfaces.CouponService) *CouponHandler {
	return &CouponHandler{couponService: couponService}
}

// VerifyCoupon godoc
// @Summary Check a coupon code
// @Description Codes are case-insensitive. Unknown codes answer "Invalid Coupon", inactive ones "Coupon Expired".
// @Tags checkout
// @Accept json
// @Produce json
// @Param coupon body requests.VerifyCouponRequest true "Coupon code"
// @Success 200 {object} responses.VerifyCouponResponse
// @Failure 400 {object} ErrorResponse
// @Router /verify-coupon [post]
func (h *CouponHandler) VerifyCoupon(c *gin.Context) {
	var req requests.VerifyCouponRequest
	if !bindJSON(c, &req) {
		return
	}

	discount, err := h.couponService.VerifyCoupon(c.Request.Context(), req.Code)
	if err != nil {
		handleServiceError(c, err, "Failed to verify coupon")
		return
	}
	sendSuccess(c, http.StatusOK, responses.VerifyCouponResponse{Success: true, Discount: discount})
}

// ListCoupons godoc
// @Summary List coupons
// @Tags coupons
// @Produce json
// @Success 200 {array} responses.CouponResponse
// @Security BearerAuth
// @Router /coupons [get]
func (h *CouponHandler) ListCoupons(c *gin.Context) {
	coupons, err := h.couponService.ListCoupons(c.Request.Context())
	if err != nil {
		handleServiceError(c, err, "Failed to list coupons")
		return
	}
	sendSuccess(c, http.StatusOK, helpers.ToCouponResponses(coupons))
}

// CreateCoupon godoc
// @Summary Create a coupon
// @Tags coupons
// @Accept json
// @Produce json
// @Param coupon body requests.CreateCouponRequest true "Coupon"
// @Success 201 {object} responses.CouponResponse
// @Failure 400 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Security BearerAuth
// @Router /coupons [post]
func (h *CouponHandler) CreateCoupon(c *gin.Context) {
	var req requests.CreateCouponRequest
	if !bindJSON(c, &req) {
		return
	}

	active := true
	if req.IsActive != nil {
		active = *req.IsActive
	}

	coupon, err := h.couponService.CreateCoupon(c.Request.Context(), params.CreateCouponParams{
		Code:     req.Code,
		Discount: req.Discount,
		IsActive: active,
	})
	if err != nil {
		h.handleCouponError(c, err, "Failed to create coupon")
		return
	}
	sendSuccess(c, http.StatusCreated, helpers.ToCouponResponse(*coupon))
}

// UpdateCoupon godoc
// @Summary Update a coupon
// @Tags coupons
// @Accept json
// @Produce json
// @Param id path int true "Coupon ID"
// @Param coupon body requests.UpdateCouponRequest true "Fields to change"
// @Success 200 {object} responses.CouponResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /coupons/{id} [put]
func (h *CouponHandler) UpdateCoupon(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	var req requests.UpdateCouponRequest
	if !bindJSON(c, &req) {
		return
	}

	coupon, err := h.couponService.UpdateCoupon(c.Request.Context(), params.UpdateCouponParams{
		ID:       id,
		Code:     req.Code,
		Discount: req.Discount,
		IsActive: req.IsActive,
	})
	if err != nil {
		h.handleCouponError(c, err, "Failed to update coupon")
		return
	}
	sendSuccess(c, http.StatusOK, helpers.ToCouponResponse(*coupon))
}

// DeleteCoupon godoc
// @Summary Delete a coupon
// @Tags coupons
// @Produce json
// @Param id path int true "Coupon ID"
// @Success 200 {object} SuccessResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /coupons/{id} [delete]
func (h *CouponHandler) DeleteCoupon(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	if err := h.couponService.DeleteCoupon(c.Request.Context(), id); err != nil {
		handleServiceError(c, err, "Failed to delete coupon")
		return
	}
	sendSuccessMessage(c, "Coupon deleted")
}

func (h *CouponHandler) handleCouponError(c *gin.Context, err error, fallback string) {
	if errors.Is(err, services.ErrDuplicateCoupon) {
		sendError(c, http.StatusConflict, constants.CouponExists, err)
		return
	}
	handleServiceError(c, err, fallback)
}
