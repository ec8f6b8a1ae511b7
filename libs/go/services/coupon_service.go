package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/chokka/chokka-api/libs/go/db"
	"github.com/chokka/chokka-api/libs/go/helpers"
	"github.com/chokka/chokka-api/libs/go/logger"
	"github.com/chokka/chokka-api/libs/go/types/api/params"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// ErrDuplicateCoupon is returned when a coupon code is already taken
var ErrDuplicateCoupon = fmt.Errorf("%w: coupon code already exists", ErrInvalidInput)

const uniqueViolation = "23505"

// CouponService handles discount codes
type CouponService struct {
	queries db.Querier
	logger  *zap.Logger
}

// NewCouponService creates a new coupon service
func NewCouponService(queries db.Querier) *CouponService {
	return &CouponService{
		queries: queries,
		logger:  logger.Log,
	}
}

// ListCoupons returns all coupons, newest first
func (s *CouponService) ListCoupons(ctx context.Context) ([]db.Coupon, error) {
	coupons, err := s.queries.ListCoupons(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list coupons: %w", err)
	}
	return coupons, nil
}

// CreateCoupon stores a coupon. Codes are kept upper-case.
func (s *CouponService) CreateCoupon(ctx context.Context, p params.CreateCouponParams) (*db.Coupon, error) {
	code := helpers.NormalizeCouponCode(p.Code)
	if code == "" {
		return nil, invalidf("code is required")
	}
	if p.Discount.IsNegative() {
		return nil, invalidf("discount must not be negative")
	}

	coupon, err := s.queries.CreateCoupon(ctx, db.CreateCouponParams{
		Code:     code,
		Discount: helpers.DecimalToNumeric(p.Discount),
		IsActive: p.IsActive,
	})
	if err != nil {
		if isUniqueViolation(err) {
			return nil, ErrDuplicateCoupon
		}
		return nil, fmt.Errorf("failed to create coupon: %w", err)
	}

	s.logger.Info("Coupon created", zap.String("code", coupon.Code))
	return &coupon, nil
}

// UpdateCoupon applies a partial update
func (s *CouponService) UpdateCoupon(ctx context.Context, p params.UpdateCouponParams) (*db.Coupon, error) {
	var code *string
	if p.Code != nil {
		normalized := helpers.NormalizeCouponCode(*p.Code)
		if normalized == "" {
			return nil, invalidf("code must not be empty")
		}
		code = &normalized
	}
	if p.Discount != nil && p.Discount.IsNegative() {
		return nil, invalidf("discount must not be negative")
	}

	coupon, err := s.queries.UpdateCoupon(ctx, db.UpdateCouponParams{
		ID:       p.ID,
		Code:     helpers.StringPtrToNullableText(code),
		Discount: helpers.DecimalPtrToNumeric(p.Discount),
		IsActive: helpers.BoolPtrToNullableBool(p.IsActive),
	})
	if err != nil {
		if isUniqueViolation(err) {
			return nil, ErrDuplicateCoupon
		}
		return nil, notFound(err, ErrCouponNotFound, "failed to update coupon")
	}
	return &coupon, nil
}

// DeleteCoupon removes a coupon
func (s *CouponService) DeleteCoupon(ctx context.Context, id int64) error {
	rows, err := s.queries.DeleteCoupon(ctx, id)
	if err != nil {
		return fmt.Errorf("failed to delete coupon: %w", err)
	}
	if rows == 0 {
		return ErrCouponNotFound
	}
	return nil
}

// VerifyCoupon returns the discount for an active code. Unknown codes give
// ErrInvalidCoupon and inactive ones ErrCouponExpired.
func (s *CouponService) VerifyCoupon(ctx context.Context, code string) (decimal.Decimal, error) {
	code = helpers.NormalizeCouponCode(code)
	if code == "" {
		return decimal.Zero, ErrInvalidCoupon
	}
	return lookupCouponDiscount(ctx, s.queries, code)
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == uniqueViolation
}
