package handlers

import (
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/chokka/chokka-api/libs/go/helpers"
	"github.com/chokka/chokka-api/libs/go/interfaces"
	"github.com/chokka/chokka-api/libs/go/types/api/params"
	"github.com/chokka/chokka-api/libs/go/types/api/requests"
	"github.com/chokka/chokka-api/libs/go/types/api/responses"

	"github.com/gin-gonic/gin"
)

// parseDate reads a YYYY-MM-DD date. An empty string yields the zero time,
// which the services treat as today.
func parseDate(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, nil
	}
	t, err := time.Parse(time.DateOnly, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q, expected YYYY-MM-DD", s)
	}
	return t, nil
}

func parseOptionalDate(s *string) (*time.Time, error) {
	if s == nil {
		return nil, nil
	}
	t, err := parseDate(*s)
	if err != nil || t.IsZero() {
		return nil, err
	}
	return &t, nil
}

// ExpenseHandler handles production expenses
type ExpenseHandler struct {
	expenseService interfaces.ExpenseService
}

// NewExpenseHandler creates a handler with interface dependencies
func NewExpenseHandler(expenseService interfaces.ExpenseService) *ExpenseHandler {
	return &ExpenseHandler{expenseService: expenseService}
}

// ListExpenses godoc
// @Summary List expenses
// @Tags expenses
// @Produce json
// @Success 200 {array} responses.ExpenseResponse
// @Security BearerAuth
// @Router /expenses [get]
func (h *ExpenseHandler) ListExpenses(c *gin.Context) {
	expenses, err := h.expenseService.ListExpenses(c.Request.Context())
	if err != nil {
		handleServiceError(c, err, "Failed to list expenses")
		return
	}
	sendSuccess(c, http.StatusOK, helpers.ToExpenseResponses(expenses))
}

// GetTotals godoc
// @Summary Sum expenses per category
// @Tags expenses
// @Produce json
// @Success 200 {object} business.ExpenseTotals
// @Security BearerAuth
// @Router /expenses/totals [get]
func (h *ExpenseHandler) GetTotals(c *gin.Context) {
	totals, err := h.expenseService.GetTotals(c.Request.Context())
	if err != nil {
		handleServiceError(c, err, "Failed to total expenses")
		return
	}
	sendSuccess(c, http.StatusOK, totals)
}

// CreateExpense godoc
// @Summary Record an expense
// @Tags expenses
// @Accept json
// @Produce json
// @Param expense body requests.CreateExpenseRequest true "Expense"
// @Success 201 {object} responses.ExpenseResponse
// @Failure 400 {object} ErrorResponse
// @Security BearerAuth
// @Router /expenses [post]
func (h *ExpenseHandler) CreateExpense(c *gin.Context) {
	var req requests.CreateExpenseRequest
	if !bindJSON(c, &req) {
		return
	}
	date, err := parseDate(req.Date)
	if err != nil {
		sendError(c, http.StatusBadRequest, err.Error(), err)
		return
	}

	expense, err := h.expenseService.CreateExpense(c.Request.Context(), params.CreateExpenseParams{
		Date:        date,
		Category:    req.Category,
		Description: req.Description,
		Amount:      req.Amount,
	})
	if err != nil {
		handleServiceError(c, err, "Failed to record expense")
		return
	}
	sendSuccess(c, http.StatusCreated, helpers.ToExpenseResponse(*expense))
}

// UpdateExpense godoc
// @Summary Update an expense
// @Tags expenses
// @Accept json
// @Produce json
// @Param id path int true "Expense ID"
// @Param expense body requests.UpdateExpenseRequest true "Fields to change"
// @Success 200 {object} responses.ExpenseResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /expenses/{id} [put]
func (h *ExpenseHandler) UpdateExpense(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	var req requests.UpdateExpenseRequest
	if !bindJSON(c, &req) {
		return
	}
	date, err := parseOptionalDate(req.Date)
	if err != nil {
		sendError(c, http.StatusBadRequest, err.Error(), err)
		return
	}

	expense, err := h.expenseService.UpdateExpense(c.Request.Context(), params.UpdateExpenseParams{
		ID:          id,
		Date:        date,
		Category:    req.Category,
		Description: req.Description,
		Amount:      req.Amount,
	})
	if err != nil {
		handleServiceError(c, err, "Failed to update expense")
		return
	}
	sendSuccess(c, http.StatusOK, helpers.ToExpenseResponse(*expense))
}

// DeleteExpense godoc
// @Summary Delete an expense
// @Tags expenses
// @Produce json
// @Param id path int true "Expense ID"
// @Success 200 {object} SuccessResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /expenses/{id} [delete]
func (h *ExpenseHandler) DeleteExpense(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	if err := h.expenseService.DeleteExpense(c.Request.Context(), id); err != nil {
		handleServiceError(c, err, "Failed to delete expense")
		return
	}
	sendSuccessMessage(c, "Expense deleted")
}

// PayoutHandler handles courier cash-on-delivery payouts
type PayoutHandler struct {
	payoutService interfaces.PayoutService
}

// NewPayoutHandler creates a handler with interface dependencies
func NewPayoutHandler(payoutService interfaces.PayoutService) *PayoutHandler {
	return &PayoutHandler{payoutService: payoutService}
}

// ListPayouts godoc
// @Summary List payouts
// @Tags payouts
// @Produce json
// @Success 200 {array} responses.PayoutResponse
// @Security BearerAuth
// @Router /payouts [get]
func (h *PayoutHandler) ListPayouts(c *gin.Context) {
	payouts, err := h.payoutService.ListPayouts(c.Request.Context())
	if err != nil {
		handleServiceError(c, err, "Failed to list payouts")
		return
	}
	sendSuccess(c, http.StatusOK, helpers.ToPayoutResponses(payouts))
}

// GetTotal godoc
// @Summary Sum all payouts
// @Tags payouts
// @Produce json
// @Success 200 {object} responses.PayoutTotalResponse
// @Security BearerAuth
// @Router /payouts/total [get]
func (h *PayoutHandler) GetTotal(c *gin.Context) {
	total, err := h.payoutService.GetTotal(c.Request.Context())
	if err != nil {
		handleServiceError(c, err, "Failed to total payouts")
		return
	}
	sendSuccess(c, http.StatusOK, responses.PayoutTotalResponse{Total: total})
}

// CreatePayout godoc
// @Summary Record a payout
// @Tags payouts
// @Accept json
// @Produce json
// @Param payout body requests.CreatePayoutRequest true "Payout"
// @Success 201 {object} responses.PayoutResponse
// @Failure 400 {object} ErrorResponse
// @Security BearerAuth
// @Router /payouts [post]
func (h *PayoutHandler) CreatePayout(c *gin.Context) {
	var req requests.CreatePayoutRequest
	if !bindJSON(c, &req) {
		return
	}
	date, err := parseDate(req.Date)
	if err != nil {
		sendError(c, http.StatusBadRequest, err.Error(), err)
		return
	}

	payout, err := h.payoutService.CreatePayout(c.Request.Context(), params.CreatePayoutParams{
		Date:      date,
		InvoiceNo: req.InvoiceNo,
		Amount:    req.Amount,
		Note:      req.Note,
	})
	if err != nil {
		handleServiceError(c, err, "Failed to record payout")
		return
	}
	sendSuccess(c, http.StatusCreated, helpers.ToPayoutResponse(*payout))
}

// UpdatePayout godoc
// @Summary Update a payout
// @Tags payouts
// @Accept json
// @Produce json
// @Param id path int true "Payout ID"
// @Param payout body requests.UpdatePayoutRequest true "Fields to change"
// @Success 200 {object} responses.PayoutResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /payouts/{id} [put]
func (h *PayoutHandler) UpdatePayout(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	var req requests.UpdatePayoutRequest
	if !bindJSON(c, &req) {
		return
	}
	date, err := parseOptionalDate(req.Date)
	if err != nil {
		sendError(c, http.StatusBadRequest, err.Error(), err)
		return
	}

	payout, err := h.payoutService.UpdatePayout(c.Request.Context(), params.UpdatePayoutParams{
		ID:        id,
		Date:      date,
		InvoiceNo: req.InvoiceNo,
		Amount:    req.Amount,
		Note:      req.Note,
	})
	if err != nil {
		handleServiceError(c, err, "Failed to update payout")
		return
	}
	sendSuccess(c, http.StatusOK, helpers.ToPayoutResponse(*payout))
}

// DeletePayout godoc
// @Summary Delete a payout
// @Tags payouts
// @Produce json
// @Param id path int true "Payout ID"
// @Success 200 {object} SuccessResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /payouts/{id} [delete]
func (h *PayoutHandler) DeletePayout(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	if err := h.payoutService.DeletePayout(c.Request.Context(), id); err != nil {
		handleServiceError(c, err, "Failed to delete payout")
		return
	}
	sendSuccessMessage(c, "Payout deleted")
}
