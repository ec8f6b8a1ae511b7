package params

import "github.com/shopspring/decimal"

// CreateOrderParams contains the checkout form after binding
type CreateOrderParams struct {
	CustomerName    string
	CustomerPhone   string
	CustomerAddress string
	CustomerEmail   string
	City            string
	ProductID       int64
	Quantity        int32
	CouponCode      string
	Note            string
	// ClientTotal is the total the storefront displayed. It is only
	// compared against the server quote.
	ClientTotal *decimal.Decimal
}

// QuoteParams contains the inputs for pricing an order without creating it
type QuoteParams struct {
	ProductID  int64
	Quantity   int32
	City       string
	CouponCode string
}

// ListOrdersParams contains filters for the admin order list
type ListOrdersParams struct {
	Status string
	Limit  int32
	Offset int32
}

// UpdateOrderStatusParams sets a manual status and optionally a tracking code
type UpdateOrderStatusParams struct {
	ID           int64
	Status       string
	TrackingCode *string
}

// UpdateOrderDetailsParams edits customer details and the total
type UpdateOrderDetailsParams struct {
	ID              int64
	CustomerName    string
	CustomerPhone   string
	CustomerAddress string
	TotalPrice      decimal.Decimal
}
