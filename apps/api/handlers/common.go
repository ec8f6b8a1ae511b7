package handlers

import (
	"errors"
	"net/http"
	"strings"

	"github.com/chokka/chokka-api/apps/api/constants"
	"github.com/chokka/chokka-api/libs/go/client/steadfast"
	"github.com/chokka/chokka-api/libs/go/helpers"
	"github.com/chokka/chokka-api/libs/go/middleware"
	"github.com/chokka/chokka-api/libs/go/services"
	"github.com/chokka/chokka-api/libs/go/types/api/responses"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

// Use types from the centralized packages
type (
	ErrorResponse   = responses.ErrorResponse
	SuccessResponse = responses.SuccessResponse
)

// sendError logs the failure and writes the standard error body
func sendError(c *gin.Context, statusCode int, message string, err error) {
	log := middleware.LogWithCorrelationID(c.Request.Context())
	fields := []zap.Field{
		zap.Error(err),
		zap.String("path", c.Request.URL.Path),
		zap.String("method", c.Request.Method),
		zap.Int("status", statusCode),
	}
	if statusCode >= http.StatusInternalServerError {
		log.Error(message, fields...)
	} else {
		log.Warn(message, fields...)
	}

	c.JSON(statusCode, ErrorResponse{
		Success:       false,
		Error:         message,
		CorrelationID: middleware.GetCorrelationID(c),
	})
}

// handleServiceError maps service errors to HTTP status codes. fallback is
// the message used for unexpected failures.
func handleServiceError(c *gin.Context, err error, fallback string) {
	var apiErr *steadfast.APIError
	switch {
	case errors.Is(err, services.ErrInvalidInput):
		sendError(c, http.StatusBadRequest, clientMessage(err), err)
	case errors.Is(err, services.ErrInvalidCredentials), errors.Is(err, services.ErrInvalidToken):
		sendError(c, http.StatusUnauthorized, constants.InvalidCredentials, err)
	case errors.Is(err, services.ErrNotFound), errors.Is(err, pgx.ErrNoRows):
		sendError(c, http.StatusNotFound, clientMessage(err), err)
	case errors.As(err, &apiErr):
		sendError(c, http.StatusBadGateway, apiErr.Error(), err)
	case errors.Is(err, steadfast.ErrNotConfigured):
		sendError(c, http.StatusServiceUnavailable, constants.CourierNotReady, err)
	default:
		sendError(c, http.StatusInternalServerError, fallback, err)
	}
}

// clientMessage strips the sentinel prefix from validation errors so the
// storefront sees "Invalid Coupon" rather than "invalid input: Invalid Coupon".
func clientMessage(err error) string {
	return strings.TrimPrefix(err.Error(), services.ErrInvalidInput.Error()+": ")
}

// sendSuccess is a helper function that sends a success response
func sendSuccess(c *gin.Context, statusCode int, data interface{}) {
	c.JSON(statusCode, data)
}

// sendSuccessMessage acknowledges a write that returns no body
func sendSuccessMessage(c *gin.Context, message string) {
	c.JSON(http.StatusOK, SuccessResponse{Success: true, Message: message})
}

// bindJSON binds the request body and writes a 400 on failure
func bindJSON(c *gin.Context, req interface{}) bool {
	if err := c.ShouldBindJSON(req); err != nil {
		sendError(c, http.StatusBadRequest, constants.InvalidRequestBody, err)
		return false
	}
	return true
}

// parseID reads the named positive integer path parameter and writes a 400
// on failure
func parseID(c *gin.Context, name string) (int64, bool) {
	id, err := helpers.ParseIDParam(c, name)
	if err != nil {
		sendError(c, http.StatusBadRequest, "Invalid "+name, err)
		return 0, false
	}
	return id, true
}

// optionalProductID reads ?product_id= and writes a 400 when it is malformed
func optionalProductID(c *gin.Context) (*int64, bool) {
	id, ok, err := helpers.ParseOptionalInt64Query(c, "product_id")
	if err != nil {
		sendError(c, http.StatusBadRequest, "Invalid product_id parameter", err)
		return nil, false
	}
	if !ok {
		return nil, true
	}
	return &id, true
}
