package interfaces

import (
	"context"

	"github.com/chokka/chokka-api/libs/go/client/events"
	"github.com/chokka/chokka-api/libs/go/client/steadfast"
	"github.com/chokka/chokka-api/libs/go/db"
	"github.com/chokka/chokka-api/libs/go/types/api/params"
	"github.com/chokka/chokka-api/libs/go/types/business"
	"github.com/shopspring/decimal"
)

// OrderService handles checkout and order administration
type OrderService interface {
	CreateOrder(ctx context.Context, params params.CreateOrderParams) (*db.Order, *business.Quote, error)
	Quote(ctx context.Context, params params.QuoteParams) (*business.Quote, *business.Upsell, error)
	ListOrders(ctx context.Context, params params.ListOrdersParams) ([]db.Order, error)
	GetOrder(ctx context.Context, id int64) (*db.Order, error)
	UpdateStatus(ctx context.Context, params params.UpdateOrderStatusParams) (*db.Order, error)
	UpdateDetails(ctx context.Context, params params.UpdateOrderDetailsParams) (*db.Order, error)
	DeleteOrder(ctx context.Context, id int64) error
}

// CourierService drives Steadfast shipments and status reconciliation
type CourierService interface {
	CreateShipment(ctx context.Context, params params.CreateShipmentParams) (*steadfast.CreateOrderResponse, error)
	CreateBulkShipments(ctx context.Context, orderIDs []int64) (*business.BulkShipmentResult, error)
	GetDeliveryStatus(ctx context.Context, trackingCode string) (string, error)
	SyncOrder(ctx context.Context, orderID int64) (*business.SyncResult, error)
	SyncAll(ctx context.Context) (*business.SyncSummary, error)
}

// NotificationService alerts admins about new orders
type NotificationService interface {
	NotifyOrderCreated(ctx context.Context, event events.OrderEvent) error
}

// EmailService sends order alert e-mails
type EmailService interface {
	SendOrderAlert(ctx context.Context, event events.OrderEvent, to string) error
}

// ProductService handles product reads and price edits
type ProductService interface {
	ListProducts(ctx context.Context) ([]db.Product, error)
	GetProduct(ctx context.Context, id int64) (*db.Product, error)
	GetFirstProduct(ctx context.Context) (*db.Product, error)
	UpdateProduct(ctx context.Context, params params.UpdateProductParams) (*db.Product, error)
}

// CouponService handles discount codes
type CouponService interface {
	ListCoupons(ctx context.Context) ([]db.Coupon, error)
	CreateCoupon(ctx context.Context, params params.CreateCouponParams) (*db.Coupon, error)
	UpdateCoupon(ctx context.Context, params params.UpdateCouponParams) (*db.Coupon, error)
	DeleteCoupon(ctx context.Context, id int64) error
	VerifyCoupon(ctx context.Context, code string) (decimal.Decimal, error)
}

// ReviewService handles customer reviews
type ReviewService interface {
	ListReviews(ctx context.Context, productID *int64) ([]db.Review, error)
	CreateReview(ctx context.Context, params params.CreateReviewParams) (*db.Review, error)
	DeleteReview(ctx context.Context, id int64) error
}

// GalleryService handles gallery images
type GalleryService interface {
	ListImages(ctx context.Context, productID *int64) ([]db.Gallery, error)
	CreateImage(ctx context.Context, params params.CreateGalleryImageParams) (*db.Gallery, error)
	UploadImage(ctx context.Context, params params.UploadGalleryImageParams) (*db.Gallery, error)
	DeleteImage(ctx context.Context, id int64) error
}

// InventoryService handles stock of packaging and game components
type InventoryService interface {
	ListItems(ctx context.Context) ([]db.Inventory, error)
	CreateItem(ctx context.Context, params params.CreateInventoryItemParams) (*db.Inventory, error)
	UpdateItem(ctx context.Context, params params.UpdateInventoryItemParams) (*db.Inventory, error)
	DeleteItem(ctx context.Context, id int64) error
	ListLowStock(ctx context.Context) ([]db.Inventory, error)
	Restock(ctx context.Context, items []params.RestockItem) ([]db.Inventory, error)
}

// ExpenseService handles production expenses
type ExpenseService interface {
	ListExpenses(ctx context.Context) ([]db.Expense, error)
	CreateExpense(ctx context.Context, params params.CreateExpenseParams) (*db.Expense, error)
	UpdateExpense(ctx context.Context, params params.UpdateExpenseParams) (*db.Expense, error)
	DeleteExpense(ctx context.Context, id int64) error
	GetTotals(ctx context.Context) (*business.ExpenseTotals, error)
}

// PayoutService handles courier cash-on-delivery payouts
type PayoutService interface {
	ListPayouts(ctx context.Context) ([]db.Payout, error)
	CreatePayout(ctx context.Context, params params.CreatePayoutParams) (*db.Payout, error)
	UpdatePayout(ctx context.Context, params params.UpdatePayoutParams) (*db.Payout, error)
	DeletePayout(ctx context.Context, id int64) error
	GetTotal(ctx context.Context) (decimal.Decimal, error)
}

// DashboardService aggregates figures for the admin landing page
type DashboardService interface {
	GetSummary(ctx context.Context) (*business.DashboardSummary, error)
	GetStats(ctx context.Context) (*business.DashboardStats, error)
}

// AuthService issues and validates admin tokens
type AuthService interface {
	Login(ctx context.Context, password string) (*business.AdminToken, error)
	ValidateToken(token string) (*business.AdminClaims, error)
}
