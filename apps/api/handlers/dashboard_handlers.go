package handlers

import (
	"net/http"

	"github.com/chokka/chokka-api/libs/go/interfaces"

	"github.com/gin-gonic/gin"
)

// DashboardHandler serves the admin landing page figures
type DashboardHandler struct {
	dashboardService interfaces.DashboardService
}

// NewDashboardHandler creates a handler with interface dependencies
func NewDashboardHandler(dashboardService interfaces.DashboardService) *DashboardHandler {
	return &DashboardHandler{dashboardService: dashboardService}
}

// GetSummary godoc
// @Summary Today's orders, revenue, pending work and stock alerts
// @Description "Today" is the Asia/Dhaka calendar day
// @Tags dashboard
// @Produce json
// @Success 200 {object} business.DashboardSummary
// @Security BearerAuth
// @Router /dashboard/summary [get]
func (h *DashboardHandler) GetSummary(c *gin.Context) {
	summary, err := h.dashboardService.GetSummary(c.Request.Context())
	if err != nil {
		handleServiceError(c, err, "Failed to load dashboard summary")
		return
	}
	sendSuccess(c, http.StatusOK, summary)
}

// GetStats godoc
// @Summary Sales, cost and profit with a seven day order chart
// @Tags dashboard
// @Produce json
// @Success 200 {object} business.DashboardStats
// @Security BearerAuth
// @Router /dashboard/stats [get]
func (h *DashboardHandler) GetStats(c *gin.Context) {
	stats, err := h.dashboardService.GetStats(c.Request.Context())
	if err != nil {
		handleServiceError(c, err, "Failed to load dashboard stats")
		return
	}
	sendSuccess(c, http.StatusOK, stats)
}
