package responses

import (
	"time"

	"github.com/chokka/chokka-api/libs/go/types/business"
	"github.com/shopspring/decimal"
)

// OrderResponse is the admin view of an order
type OrderResponse struct {
	ID              int64           `json:"id"`
	CustomerName    string          `json:"customer_name"`
	CustomerPhone   string          `json:"customer_phone"`
	CustomerAddress string          `json:"customer_address"`
	CustomerEmail   string          `json:"customer_email,omitempty"`
	City            string          `json:"city"`
	ProductID       int64           `json:"product_id"`
	ProductName     string          `json:"product_name"`
	Quantity        int32           `json:"quantity"`
	Subtotal        decimal.Decimal `json:"subtotal"`
	ShippingFee     decimal.Decimal `json:"shipping_fee"`
	Discount        decimal.Decimal `json:"discount"`
	TotalPrice      decimal.Decimal `json:"total_price"`
	CouponCode      string          `json:"coupon_code,omitempty"`
	Note            string          `json:"note,omitempty"`
	Status          string          `json:"status"`
	TrackingCode    string          `json:"tracking_code,omitempty"`
	ConsignmentID   string          `json:"consignment_id,omitempty"`
	CreatedAt       time.Time       `json:"created_at"`
	UpdatedAt       time.Time       `json:"updated_at"`
}

// CreateOrderResponse is returned to the storefront after checkout
type CreateOrderResponse struct {
	Success bool            `json:"success"`
	OrderID int64           `json:"orderId"`
	Total   decimal.Decimal `json:"total"`
}

// QuoteResponse previews the price of an order
type QuoteResponse struct {
	Success bool             `json:"success"`
	Quote   business.Quote   `json:"quote"`
	Upsell  *business.Upsell `json:"upsell,omitempty"`
}

// VerifyCouponResponse is returned for a valid coupon
type VerifyCouponResponse struct {
	Success  bool            `json:"success"`
	Discount decimal.Decimal `json:"discount"`
}
