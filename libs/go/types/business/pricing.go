package business

import "github.com/shopspring/decimal"

// Deduction is one inventory row consumed by an order
type Deduction struct {
	ProductID int64
	ItemType  string
	Quantity  int32
}

// PricedProduct is the part of a product row pricing needs
type PricedProduct struct {
	ID              int64
	Price           decimal.Decimal
	DeliveryDhaka   decimal.Decimal
	DeliveryOutside decimal.Decimal
}

// QuoteInput is everything QuoteOrder needs
type QuoteInput struct {
	Product        PricedProduct
	Quantity       int32
	City           string
	CouponDiscount decimal.Decimal
}

// Quote is the authoritative price of an order
type Quote struct {
	UnitPrice decimal.Decimal `json:"unit_price"`
	Quantity  int32           `json:"quantity"`
	Subtotal  decimal.Decimal `json:"subtotal"`
	Shipping  decimal.Decimal `json:"shipping"`
	Discount  decimal.Decimal `json:"discount"`
	Total     decimal.Decimal `json:"total"`
}

// Upsell is what a single-game buyer pays extra and saves by taking the bundle
type Upsell struct {
	BundleID    int64           `json:"bundle_id"`
	BundlePrice decimal.Decimal `json:"bundle_price"`
	ExtraCost   decimal.Decimal `json:"extra_cost"`
	Savings     decimal.Decimal `json:"savings"`
}
