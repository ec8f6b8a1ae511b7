package requests

import "github.com/shopspring/decimal"

// UpdateProductRequest is a partial product update
type UpdateProductRequest struct {
	Price           *decimal.Decimal `json:"price,omitempty"`
	Cost            *decimal.Decimal `json:"cost,omitempty"`
	Stock           *int32           `json:"stock,omitempty" binding:"omitempty,min=0"`
	DeliveryDhaka   *decimal.Decimal `json:"delivery_dhaka,omitempty"`
	DeliveryOutside *decimal.Decimal `json:"delivery_outside,omitempty"`
}

// CreateCouponRequest represents the request body for creating a coupon
type CreateCouponRequest struct {
	Code     string          `json:"code" binding:"required"`
	Discount decimal.Decimal `json:"discount"`
	IsActive *bool           `json:"is_active,omitempty"`
}

// UpdateCouponRequest represents the request body for updating a coupon
type UpdateCouponRequest struct {
	Code     *string          `json:"code,omitempty"`
	Discount *decimal.Decimal `json:"discount,omitempty"`
	IsActive *bool            `json:"is_active,omitempty"`
}

// CreateReviewRequest represents the request body for adding a review
type CreateReviewRequest struct {
	CustomerName string `json:"customer_name" binding:"required"`
	Rating       int32  `json:"rating" binding:"required,min=1,max=5"`
	Comment      string `json:"comment"`
	ImageURL     string `json:"image_url,omitempty"`
	ProductID    int64  `json:"product_id,omitempty"`
}

// CreateGalleryImageRequest registers an externally hosted image
type CreateGalleryImageRequest struct {
	ImageURL  string `json:"image_url" binding:"required,url"`
	Caption   string `json:"caption,omitempty"`
	ProductID int64  `json:"product_id,omitempty"`
}

// CreateInventoryItemRequest represents the request body for an inventory row
type CreateInventoryItemRequest struct {
	Name         string           `json:"name" binding:"required"`
	Category     string           `json:"category"`
	ProductID    *int64           `json:"product_id,omitempty"`
	ItemType     string           `json:"item_type,omitempty"`
	Stock        int32            `json:"stock" binding:"min=0"`
	ReorderLevel *int32           `json:"reorder_level,omitempty" binding:"omitempty,min=0"`
	UnitCost     *decimal.Decimal `json:"unit_cost,omitempty"`
}

// UpdateInventoryItemRequest is a partial inventory update
type UpdateInventoryItemRequest struct {
	Name         *string          `json:"name,omitempty"`
	Category     *string          `json:"category,omitempty"`
	Stock        *int32           `json:"stock,omitempty" binding:"omitempty,min=0"`
	ReorderLevel *int32           `json:"reorder_level,omitempty" binding:"omitempty,min=0"`
	UnitCost     *decimal.Decimal `json:"unit_cost,omitempty"`
}

// RestockRequest adds stock to several inventory rows at once
type RestockRequest struct {
	Items []RestockItemRequest `json:"items" binding:"required,min=1,dive"`
}

// RestockItemRequest is one line of a restock
type RestockItemRequest struct {
	ID          int64 `json:"id" binding:"required"`
	AddQuantity int32 `json:"add_quantity" binding:"required,min=1"`
}

// CreateExpenseRequest represents the request body for an expense
type CreateExpenseRequest struct {
	Date        string          `json:"date,omitempty"`
	Category    string          `json:"category" binding:"required"`
	Description string          `json:"description,omitempty"`
	Amount      decimal.Decimal `json:"amount"`
}

// UpdateExpenseRequest is a partial expense update
type UpdateExpenseRequest struct {
	Date        *string          `json:"date,omitempty"`
	Category    *string          `json:"category,omitempty"`
	Description *string          `json:"description,omitempty"`
	Amount      *decimal.Decimal `json:"amount,omitempty"`
}

// CreatePayoutRequest represents the request body for a courier payout
type CreatePayoutRequest struct {
	Date      string          `json:"date,omitempty"`
	InvoiceNo string          `json:"invoice_no,omitempty"`
	Amount    decimal.Decimal `json:"amount"`
	Note      string          `json:"note,omitempty"`
}

// UpdatePayoutRequest is a partial payout update
type UpdatePayoutRequest struct {
	Date      *string          `json:"date,omitempty"`
	InvoiceNo *string          `json:"invoice_no,omitempty"`
	Amount    *decimal.Decimal `json:"amount,omitempty"`
	Note      *string          `json:"note,omitempty"`
}

// AdminLoginRequest represents the admin panel login form
type AdminLoginRequest struct {
	Password string `json:"password" binding:"required"`
}
