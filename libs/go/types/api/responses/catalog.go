package responses

import (
	"time"

	"github.com/shopspring/decimal"
)

// ProductResponse represents a sellable product
type ProductResponse struct {
	ID              int64           `json:"id"`
	Title           string          `json:"title"`
	Price           decimal.Decimal `json:"price"`
	Cost            decimal.Decimal `json:"cost"`
	Stock           int32           `json:"stock"`
	DeliveryDhaka   decimal.Decimal `json:"delivery_dhaka"`
	DeliveryOutside decimal.Decimal `json:"delivery_outside"`
	UpdatedAt       time.Time       `json:"updated_at"`
}

// CouponResponse represents a discount code
type CouponResponse struct {
	ID        int64           `json:"id"`
	Code      string          `json:"code"`
	Discount  decimal.Decimal `json:"discount"`
	IsActive  bool            `json:"is_active"`
	CreatedAt time.Time       `json:"created_at"`
}

// ReviewResponse represents a customer review
type ReviewResponse struct {
	ID           int64     `json:"id"`
	CustomerName string    `json:"customer_name"`
	Rating       int32     `json:"rating"`
	Comment      string    `json:"comment"`
	ImageURL     string    `json:"image_url,omitempty"`
	ProductID    int64     `json:"product_id"`
	IsApproved   bool      `json:"is_approved"`
	CreatedAt    time.Time `json:"created_at"`
}

// GalleryImageResponse represents a gallery image
type GalleryImageResponse struct {
	ID        int64     `json:"id"`
	ImageURL  string    `json:"image_url"`
	Caption   string    `json:"caption,omitempty"`
	ProductID int64     `json:"product_id"`
	CreatedAt time.Time `json:"created_at"`
}

// InventoryItemResponse represents an inventory row
type InventoryItemResponse struct {
	ID           int64            `json:"id"`
	Name         string           `json:"name"`
	Category     string           `json:"category"`
	ProductID    *int64           `json:"product_id,omitempty"`
	ItemType     string           `json:"item_type,omitempty"`
	Stock        int32            `json:"stock"`
	ReorderLevel int32            `json:"reorder_level"`
	UnitCost     *decimal.Decimal `json:"unit_cost,omitempty"`
	UpdatedAt    time.Time        `json:"updated_at"`
}

// ExpenseResponse represents a recorded expense
type ExpenseResponse struct {
	ID          int64           `json:"id"`
	Date        string          `json:"date"`
	Category    string          `json:"category"`
	Description string          `json:"description,omitempty"`
	Amount      decimal.Decimal `json:"amount"`
	CreatedAt   time.Time       `json:"created_at"`
}

// PayoutResponse represents a courier payout
type PayoutResponse struct {
	ID        int64           `json:"id"`
	Date      string          `json:"date"`
	InvoiceNo string          `json:"invoice_no,omitempty"`
	Amount    decimal.Decimal `json:"amount"`
	Note      string          `json:"note,omitempty"`
	CreatedAt time.Time       `json:"created_at"`
}

// PayoutTotalResponse is the sum of all payouts
type PayoutTotalResponse struct {
	Total decimal.Decimal `json:"total"`
}
