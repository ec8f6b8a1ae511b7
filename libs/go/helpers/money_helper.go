package helpers

import (
	"fmt"

	"github.com/shopspring/decimal"
)

func init() {
	// Storefront and admin clients read amounts as JSON numbers.
	decimal.MarshalJSONWithoutQuotes = true
}

// MaxDecimal returns the larger of a and b
func MaxDecimal(a, b decimal.Decimal) decimal.Decimal {
	if a.GreaterThan(b) {
		return a
	}
	return b
}

// MinDecimal returns the smaller of a and b
func MinDecimal(a, b decimal.Decimal) decimal.Decimal {
	if a.LessThan(b) {
		return a
	}
	return b
}

// FormatTaka renders an amount without trailing zeros, e.g. 440 or 99.5
func FormatTaka(d decimal.Decimal) string {
	return d.String()
}

// ParseAmount parses a non-negative amount
func ParseAmount(s string) (decimal.Decimal, error) {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero, fmt.Errorf("invalid amount %q: %w", s, err)
	}
	if d.IsNegative() {
		return decimal.Zero, fmt.Errorf("amount must not be negative: %s", s)
	}
	return d, nil
}
