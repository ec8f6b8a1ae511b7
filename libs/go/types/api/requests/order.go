package requests

import "github.com/shopspring/decimal"

// CreateOrderRequest represents the storefront checkout form
type CreateOrderRequest struct {
	CustomerName    string           `json:"customer_name" binding:"required"`
	CustomerPhone   string           `json:"customer_phone" binding:"required"`
	CustomerAddress string           `json:"customer_address" binding:"required"`
	CustomerEmail   string           `json:"customer_email,omitempty" binding:"omitempty,email"`
	City            string           `json:"city" binding:"required"`
	ProductID       int64            `json:"product_id" binding:"required"`
	Quantity        int32            `json:"quantity,omitempty" binding:"omitempty,min=1,max=50"`
	CouponCode      string           `json:"coupon_code,omitempty"`
	Note            string           `json:"note,omitempty"`
	TotalPrice      *decimal.Decimal `json:"total_price,omitempty"`
}

// QuoteRequest represents a price preview request
type QuoteRequest struct {
	ProductID  int64  `json:"product_id" binding:"required"`
	Quantity   int32  `json:"quantity,omitempty" binding:"omitempty,min=1,max=50"`
	City       string `json:"city"`
	CouponCode string `json:"coupon_code,omitempty"`
}

// VerifyCouponRequest represents a coupon check from the checkout page
type VerifyCouponRequest struct {
	Code string `json:"code" binding:"required"`
}

// UpdateOrderRequest sets an order status
type UpdateOrderRequest struct {
	Status string `json:"status" binding:"required"`
}

// UpdateOrderStatusRequest sets an order status and optionally a tracking code
type UpdateOrderStatusRequest struct {
	Status       string  `json:"status" binding:"required"`
	TrackingCode *string `json:"tracking_code,omitempty"`
}

// UpdateOrderDetailsRequest edits the customer details of an order
type UpdateOrderDetailsRequest struct {
	CustomerName    string          `json:"customer_name" binding:"required"`
	CustomerPhone   string          `json:"customer_phone" binding:"required"`
	CustomerAddress string          `json:"customer_address" binding:"required"`
	TotalPrice      decimal.Decimal `json:"total_price"`
}
