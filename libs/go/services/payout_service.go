package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/chokka/chokka-api/libs/go/db"
	"github.com/chokka/chokka-api/libs/go/helpers"
	"github.com/chokka/chokka-api/libs/go/logger"
	"github.com/chokka/chokka-api/libs/go/types/api/params"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// PayoutService handles cash-on-delivery payouts received from the courier
type PayoutService struct {
	queries db.Querier
	logger  *zap.Logger
}

// NewPayoutService creates a new payout service
func NewPayoutService(queries db.Querier) *PayoutService {
	return &PayoutService{
		queries: queries,
		logger:  logger.Log,
	}
}

// ListPayouts returns payouts by date, newest first
func (s *PayoutService) ListPayouts(ctx context.Context) ([]db.Payout, error) {
	payouts, err := s.queries.ListPayouts(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list payouts: %w", err)
	}
	return payouts, nil
}

// CreatePayout records a payout. A zero date means today.
func (s *PayoutService) CreatePayout(ctx context.Context, p params.CreatePayoutParams) (*db.Payout, error) {
	if p.Amount.IsNegative() {
		return nil, invalidf("amount must not be negative")
	}

	payout, err := s.queries.CreatePayout(ctx, db.CreatePayoutParams{
		Date:      dateOrToday(p.Date),
		InvoiceNo: helpers.StringToNullableText(strings.TrimSpace(p.InvoiceNo)),
		Amount:    helpers.DecimalToNumeric(p.Amount),
		Note:      helpers.StringToNullableText(strings.TrimSpace(p.Note)),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create payout: %w", err)
	}

	s.logger.Info("Payout recorded",
		zap.Int64("payout_id", payout.ID),
		zap.String("amount", helpers.FormatTaka(p.Amount)))
	return &payout, nil
}

// UpdatePayout applies a partial update
func (s *PayoutService) UpdatePayout(ctx context.Context, p params.UpdatePayoutParams) (*db.Payout, error) {
	if p.Amount != nil && p.Amount.IsNegative() {
		return nil, invalidf("amount must not be negative")
	}
	arg := db.UpdatePayoutParams{
		ID:        p.ID,
		InvoiceNo: helpers.StringPtrToNullableText(p.InvoiceNo),
		Amount:    helpers.DecimalPtrToNumeric(p.Amount),
		Note:      helpers.StringPtrToNullableText(p.Note),
	}
	if p.Date != nil {
		arg.Date = helpers.TimeToDate(*p.Date)
	}

	payout, err := s.queries.UpdatePayout(ctx, arg)
	if err != nil {
		return nil, notFound(err, ErrPayoutNotFound, "failed to update payout")
	}
	return &payout, nil
}

// DeletePayout removes a payout
func (s *PayoutService) DeletePayout(ctx context.Context, id int64) error {
	rows, err := s.queries.DeletePayout(ctx, id)
	if err != nil {
		return fmt.Errorf("failed to delete payout: %w", err)
	}
	if rows == 0 {
		return ErrPayoutNotFound
	}
	return nil
}

// GetTotal sums every payout
func (s *PayoutService) GetTotal(ctx context.Context) (decimal.Decimal, error) {
	total, err := s.queries.GetPayoutTotal(ctx)
	if err != nil {
		return decimal.Zero, fmt.Errorf("failed to get payout total: %w", err)
	}
	return helpers.NumericToDecimal(total), nil
}
