package handlers

import (
	"context"

	"github.com/chokka/chokka-api/libs/go/config"
	"github.com/chokka/chokka-api/libs/go/interfaces"
	"github.com/chokka/chokka-api/libs/go/logger"

	"go.uber.org/zap"
)

// Pinger checks that the datastore is reachable
type Pinger interface {
	Ping(ctx context.Context) error
}

// HandlerFactory creates handlers with proper dependency injection
type HandlerFactory struct {
	orderService     interfaces.OrderService
	courierService   interfaces.CourierService
	productService   interfaces.ProductService
	couponService    interfaces.CouponService
	reviewService    interfaces.ReviewService
	galleryService   interfaces.GalleryService
	inventoryService interfaces.InventoryService
	expenseService   interfaces.ExpenseService
	payoutService    interfaces.PayoutService
	dashboardService interfaces.DashboardService
	authService      interfaces.AuthService

	db      Pinger
	catalog *config.Catalog
	logger  *zap.Logger
}

// HandlerFactoryConfig contains all configuration for the handler factory
type HandlerFactoryConfig struct {
	OrderService     interfaces.OrderService
	CourierService   interfaces.CourierService
	ProductService   interfaces.ProductService
	CouponService    interfaces.CouponService
	ReviewService    interfaces.ReviewService
	GalleryService   interfaces.GalleryService
	InventoryService interfaces.InventoryService
	ExpenseService   interfaces.ExpenseService
	PayoutService    interfaces.PayoutService
	DashboardService interfaces.DashboardService
	AuthService      interfaces.AuthService

	// DB is pinged by /health. Optional.
	DB      Pinger
	Catalog *config.Catalog
	Logger  *zap.Logger
}

// NewHandlerFactory creates a new handler factory with all dependencies
func NewHandlerFactory(cfg HandlerFactoryConfig) *HandlerFactory {
	if cfg.Logger == nil {
		cfg.Logger = logger.Log
	}
	if cfg.Catalog == nil {
		cfg.Catalog = config.DefaultCatalog()
	}

	return &HandlerFactory{
		orderService:     cfg.OrderService,
		courierService:   cfg.CourierService,
		productService:   cfg.ProductService,
		couponService:    cfg.CouponService,
		reviewService:    cfg.ReviewService,
		galleryService:   cfg.GalleryService,
		inventoryService: cfg.InventoryService,
		expenseService:   cfg.ExpenseService,
		payoutService:    cfg.PayoutService,
		dashboardService: cfg.DashboardService,
		authService:      cfg.AuthService,
		db:               cfg.DB,
		catalog:          cfg.Catalog,
		logger:           cfg.Logger,
	}
}

// NewHealthHandler creates the health handler
func (f *HandlerFactory) NewHealthHandler() *HealthHandler {
	return NewHealthHandler(f.db)
}

// NewOrderHandler creates the checkout and order admin handler
func (f *HandlerFactory) NewOrderHandler() *OrderHandler {
	return NewOrderHandler(f.orderService, f.catalog, f.logger)
}

// NewCourierHandler creates the Steadfast handler
func (f *HandlerFactory) NewCourierHandler() *CourierHandler {
	return NewCourierHandler(f.courierService, f.logger)
}

// NewProductHandler creates the product handler
func (f *HandlerFactory) NewProductHandler() *ProductHandler {
	return NewProductHandler(f.productService)
}

// NewCouponHandler creates the coupon handler
func (f *HandlerFactory) NewCouponHandler() *CouponHandler {
	return NewCouponHandler(f.couponService)
}

// NewReviewHandler creates the review handler
func (f *HandlerFactory) NewReviewHandler() *ReviewHandler {
	return NewReviewHandler(f.reviewService)
}

// NewGalleryHandler creates the gallery handler
func (f *HandlerFactory) NewGalleryHandler() *GalleryHandler {
	return NewGalleryHandler(f.galleryService)
}

// NewInventoryHandler creates the inventory handler
func (f *HandlerFactory) NewInventoryHandler() *InventoryHandler {
	return NewInventoryHandler(f.inventoryService)
}

// NewExpenseHandler creates the expense handler
func (f *HandlerFactory) NewExpenseHandler() *ExpenseHandler {
	return NewExpenseHandler(f.expenseService)
}

// NewPayoutHandler creates the payout handler
func (f *HandlerFactory) NewPayoutHandler() *PayoutHandler {
	return NewPayoutHandler(f.payoutService)
}

// NewDashboardHandler creates the dashboard handler
func (f *HandlerFactory) NewDashboardHandler() *DashboardHandler {
	return NewDashboardHandler(f.dashboardService)
}

// NewAuthHandler creates the admin login handler
func (f *HandlerFactory) NewAuthHandler() *AuthHandler {
	return NewAuthHandler(f.authService)
}
