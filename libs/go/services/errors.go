package services

import (
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
)

// Sentinel errors returned by the services. Handlers map them to HTTP
// status codes.
var (
	ErrInvalidInput       = errors.New("invalid input")
	ErrNotFound           = errors.New("not found")
	ErrOrderNotFound      = fmt.Errorf("order %w", ErrNotFound)
	ErrProductNotFound    = fmt.Errorf("product %w", ErrNotFound)
	ErrCouponNotFound     = fmt.Errorf("coupon %w", ErrNotFound)
	ErrReviewNotFound     = fmt.Errorf("review %w", ErrNotFound)
	ErrImageNotFound      = fmt.Errorf("gallery image %w", ErrNotFound)
	ErrInventoryNotFound  = fmt.Errorf("inventory item %w", ErrNotFound)
	ErrExpenseNotFound    = fmt.Errorf("expense %w", ErrNotFound)
	ErrPayoutNotFound     = fmt.Errorf("payout %w", ErrNotFound)
	ErrUnknownProduct     = fmt.Errorf("%w: unknown product", ErrInvalidInput)
	ErrInvalidCoupon      = fmt.Errorf("%w: Invalid Coupon", ErrInvalidInput)
	ErrCouponExpired      = fmt.Errorf("%w: Coupon Expired", ErrInvalidInput)
	ErrInvalidPhone       = fmt.Errorf("%w: invalid Bangladeshi mobile number", ErrInvalidInput)
	ErrMissingTracking    = fmt.Errorf("%w: order has no tracking code", ErrInvalidInput)
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrInvalidToken       = errors.New("invalid or expired token")
)

func invalidf(format string, args ...interface{}) error {
	return fmt.Errorf("%w: "+format, append([]interface{}{ErrInvalidInput}, args...)...)
}

// notFound maps pgx.ErrNoRows to sentinel and wraps everything else with msg
func notFound(err, sentinel error, msg string) error {
	if errors.Is(err, pgx.ErrNoRows) {
		return sentinel
	}
	return fmt.Errorf("%s: %w", msg, err)
}
