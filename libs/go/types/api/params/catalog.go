package params

import (
	"io"
	"time"

	"github.com/shopspring/decimal"
)

// UpdateProductParams is a partial product update. Nil fields are kept.
type UpdateProductParams struct {
	ID              int64
	Price           *decimal.Decimal
	Cost            *decimal.Decimal
	Stock           *int32
	DeliveryDhaka   *decimal.Decimal
	DeliveryOutside *decimal.Decimal
}

// CreateCouponParams contains parameters for creating a coupon
type CreateCouponParams struct {
	Code     string
	Discount decimal.Decimal
	IsActive bool
}

// UpdateCouponParams is a partial coupon update
type UpdateCouponParams struct {
	ID       int64
	Code     *string
	Discount *decimal.Decimal
	IsActive *bool
}

// CreateReviewParams contains parameters for creating a review
type CreateReviewParams struct {
	CustomerName string
	Rating       int32
	Comment      string
	ImageURL     string
	ProductID    int64
}

// CreateGalleryImageParams registers an image that is already hosted
type CreateGalleryImageParams struct {
	ImageURL  string
	Caption   string
	ProductID int64
}

// UploadGalleryImageParams uploads an image and registers it
type UploadGalleryImageParams struct {
	Filename    string
	ContentType string
	Size        int64
	Body        io.Reader
	Caption     string
	ProductID   int64
}

// CreateInventoryItemParams contains parameters for creating an inventory row
type CreateInventoryItemParams struct {
	Name         string
	Category     string
	ProductID    *int64
	ItemType     string
	Stock        int32
	ReorderLevel *int32
	UnitCost     *decimal.Decimal
}

// UpdateInventoryItemParams is a partial inventory update
type UpdateInventoryItemParams struct {
	ID           int64
	Name         *string
	Category     *string
	Stock        *int32
	ReorderLevel *int32
	UnitCost     *decimal.Decimal
}

// RestockItem adds AddQuantity units to inventory row ID
type RestockItem struct {
	ID          int64
	AddQuantity int32
}

// CreateExpenseParams contains parameters for recording an expense
type CreateExpenseParams struct {
	Date        time.Time
	Category    string
	Description string
	Amount      decimal.Decimal
}

// UpdateExpenseParams is a partial expense update
type UpdateExpenseParams struct {
	ID          int64
	Date        *time.Time
	Category    *string
	Description *string
	Amount      *decimal.Decimal
}

// CreatePayoutParams contains parameters for recording a courier payout
type CreatePayoutParams struct {
	Date      time.Time
	InvoiceNo string
	Amount    decimal.Decimal
	Note      string
}

// UpdatePayoutParams is a partial payout update
type UpdatePayoutParams struct {
	ID        int64
	Date      *time.Time
	InvoiceNo *string
	Amount    *decimal.Decimal
	Note      *string
}
