package server

import (
	"context"
	"errors"
	"fmt"

	"github.com/chokka/chokka-api/apps/api/constants"
	"github.com/chokka/chokka-api/apps/api/handlers"
	"github.com/chokka/chokka-api/libs/go/bootstrap"
	"github.com/chokka/chokka-api/libs/go/config"
	libconstants "github.com/chokka/chokka-api/libs/go/constants"
	"github.com/chokka/chokka-api/libs/go/helpers"
	"github.com/chokka/chokka-api/libs/go/logger"
	"github.com/chokka/chokka-api/libs/go/middleware"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"
)

var (
	appRuntime     *bootstrap.Runtime
	handlerFactory *handlers.HandlerFactory
	tokenValidator middleware.TokenValidator
	stopLimiters   func()
)

// Dependencies are everything the route table needs
type Dependencies struct {
	Factory   *handlers.HandlerFactory
	Validator middleware.TokenValidator
	Config    *config.Config
}

// InitializeHandlers builds the runtime, services and handler factory.
// envFiles are optional .env paths for local runs.
func InitializeHandlers(ctx context.Context, envFiles ...string) error {
	rt, err := bootstrap.Init(ctx, envFiles...)
	if err != nil {
		return err
	}
	appRuntime = rt

	svcs, err := rt.BuildServices(ctx)
	if err != nil {
		return fmt.Errorf("failed to build services: %w", err)
	}

	handlerFactory = handlers.NewHandlerFactory(handlers.HandlerFactoryConfig{
		OrderService:     svcs.Order,
		CourierService:   svcs.Courier,
		ProductService:   svcs.Product,
		CouponService:    svcs.Coupon,
		ReviewService:    svcs.Review,
		GalleryService:   svcs.Gallery,
		InventoryService: svcs.Inventory,
		ExpenseService:   svcs.Expense,
		PayoutService:    svcs.Payout,
		DashboardService: svcs.Dashboard,
		AuthService:      svcs.Auth,
		DB:               svcs.Pool,
		Catalog:          rt.Config.Catalog,
		Logger:           logger.Log,
	})
	tokenValidator = svcs.Auth

	logger.Info("Handlers initialised", zap.String("stage", rt.Config.Stage))
	return nil
}

// InitializeRoutes registers middleware and routes on router. It must run
// after InitializeHandlers.
func InitializeRoutes(router *gin.Engine) {
	if handlerFactory == nil {
		logger.Fatal("InitializeRoutes called before InitializeHandlers")
	}
	stopLimiters = RegisterRoutes(router, Dependencies{
		Factory:   handlerFactory,
		Validator: tokenValidator,
		Config:    appRuntime.Config,
	})
}

// Shutdown stops the rate limiters and releases the runtime
func Shutdown(ctx context.Context) error {
	if stopLimiters != nil {
		stopLimiters()
	}
	if appRuntime == nil {
		return nil
	}
	return appRuntime.Shutdown(ctx)
}

// RegisterRoutes installs the middleware chain and every route. The
// returned function stops the rate limiter janitors.
func RegisterRoutes(router *gin.Engine, deps Dependencies) func() {
	cfg := deps.Config
	if cfg == nil {
		cfg = &config.Config{Stage: helpers.StageLocal}
	}

	defaultLimiter := middleware.NewRateLimiter(middleware.DefaultRate, middleware.DefaultBurst)
	strictLimiter := middleware.NewRateLimiter(middleware.StrictRate, middleware.StrictBurst)
	adminLimiter := middleware.NewRateLimiter(middleware.AdminRate, middleware.AdminBurst)

	router.Use(configureCORS(cfg))
	router.Use(middleware.CorrelationIDMiddleware())
	router.Use(middleware.TracingMiddleware(libconstants.ServiceName))
	router.Use(defaultLimiter.Middleware())

	isDevelopment := cfg.Stage == helpers.StageLocal
	router.Use(middleware.EnhancedLoggingMiddleware(isDevelopment))
	if !isDevelopment {
		router.Use(middleware.RequestLoggingMiddleware())
	}

	f := deps.Factory
	healthHandler := f.NewHealthHandler()
	orderHandler := f.NewOrderHandler()
	courierHandler := f.NewCourierHandler()
	productHandler := f.NewProductHandler()
	couponHandler := f.NewCouponHandler()
	reviewHandler := f.NewReviewHandler()
	galleryHandler := f.NewGalleryHandler()
	inventoryHandler := f.NewInventoryHandler()
	expenseHandler := f.NewExpenseHandler()
	payoutHandler := f.NewPayoutHandler()
	dashboardHandler := f.NewDashboardHandler()
	authHandler := f.NewAuthHandler()

	router.GET(constants.SwaggerPath, ginSwagger.WrapHandler(swaggerFiles.Handler))
	router.GET(constants.HealthPath, healthHandler.Health)
	router.HEAD(constants.HealthPath, healthHandler.Health)

	if cfg.Stage == helpers.StageLocal && cfg.StorageEndpoint == "" && cfg.UploadDir != "" {
		router.Static("/uploads", cfg.UploadDir)
	}

	api := router.Group(constants.APIPrefix)
	{
		// Storefront
		api.POST("/create-order", strictLimiter.Middleware(), middleware.ValidateInput(middleware.CreateOrderValidation), orderHandler.CreateOrder)
		api.POST("/checkout/quote", middleware.ValidateInput(middleware.QuoteValidation), orderHandler.Quote)
		api.POST("/verify-coupon", strictLimiter.Middleware(), middleware.ValidateInput(middleware.VerifyCouponValidation), couponHandler.VerifyCoupon)
		api.GET("/products", productHandler.ListProducts)
		api.GET("/products/:id", productHandler.GetProduct)
		api.GET("/product", productHandler.GetFirstProduct)
		api.GET("/reviews", middleware.ValidateQueryParams(middleware.ProductFilterQueryValidation), reviewHandler.ListReviews)
		api.GET("/gallery", middleware.ValidateQueryParams(middleware.ProductFilterQueryValidation), galleryHandler.ListImages)
		api.POST("/admin/login", strictLimiter.Middleware(), middleware.ValidateInput(middleware.AdminLoginValidation), authHandler.Login)

		admin := api.Group("")
		admin.Use(middleware.RequireAdmin(deps.Validator), adminLimiter.Middleware())
		{
			// Orders
			admin.GET("/orders", middleware.ValidateQueryParams(middleware.ListOrdersQueryValidation), orderHandler.ListOrders)
			admin.GET("/orders/:id", orderHandler.GetOrder)
			admin.PUT("/orders/:id", middleware.ValidateInput(middleware.UpdateOrderStatusValidation), orderHandler.UpdateOrder)
			admin.PUT("/orders/:id/status", middleware.ValidateInput(middleware.UpdateOrderStatusValidation), orderHandler.UpdateOrderStatus)
			admin.PUT("/orders/:id/details", middleware.ValidateInput(middleware.UpdateOrderDetailsValidation), orderHandler.UpdateOrderDetails)
			admin.PUT("/orders/:id/update-details", middleware.ValidateInput(middleware.UpdateOrderDetailsValidation), orderHandler.UpdateOrderDetails)
			admin.DELETE("/orders/:id", orderHandler.DeleteOrder)

			// Steadfast courier
			steadfast := admin.Group("/steadfast")
			{
				steadfast.POST("/create", middleware.ValidateInput(middleware.CreateShipmentValidation), courierHandler.CreateShipment)
				steadfast.POST("/bulk-create", middleware.ValidateInput(middleware.BulkShipmentValidation), courierHandler.CreateBulkShipments)
				steadfast.GET("/status/:trackingCode", courierHandler.GetDeliveryStatus)
				steadfast.POST("/sync/:orderId", courierHandler.SyncOrder)
				steadfast.POST("/sync-all", courierHandler.SyncAll)
			}

			// Catalog
			admin.PUT("/products/:id", middleware.ValidateInput(middleware.UpdateProductValidation), productHandler.UpdateProduct)

			admin.GET("/coupons", couponHandler.ListCoupons)
			admin.POST("/coupons", middleware.ValidateInput(middleware.CreateCouponValidation), couponHandler.CreateCoupon)
			admin.PUT("/coupons/:id", middleware.ValidateInput(middleware.UpdateCouponValidation), couponHandler.UpdateCoupon)
			admin.DELETE("/coupons/:id", couponHandler.DeleteCoupon)

			admin.POST("/reviews", middleware.ValidateInput(middleware.CreateReviewValidation), reviewHandler.CreateReview)
			admin.DELETE("/reviews/:id", reviewHandler.DeleteReview)

			admin.POST("/gallery", middleware.ValidateInput(middleware.GalleryImageValidation), galleryHandler.CreateImage)
			admin.POST("/gallery/upload", galleryHandler.UploadImage)
			admin.DELETE("/gallery/:id", galleryHandler.DeleteImage)

			// Inventory
			admin.GET("/inventory", inventoryHandler.ListItems)
			admin.GET("/inventory/low-stock", inventoryHandler.ListLowStock)
			admin.POST("/inventory", middleware.ValidateInput(middleware.InventoryValidation), inventoryHandler.CreateItem)
			admin.POST("/inventory/restock", middleware.ValidateInput(middleware.RestockValidation), inventoryHandler.Restock)
			admin.PUT("/inventory/:id", middleware.ValidateInput(middleware.UpdateInventoryValidation), inventoryHandler.UpdateItem)
			admin.DELETE("/inventory/:id", inventoryHandler.DeleteItem)

			// Finance
			admin.GET("/expenses", expenseHandler.ListExpenses)
			admin.GET("/expenses/totals", expenseHandler.GetTotals)
			admin.POST("/expenses", middleware.ValidateInput(middleware.ExpenseValidation), expenseHandler.CreateExpense)
			admin.PUT("/expenses/:id", expenseHandler.UpdateExpense)
			admin.DELETE("/expenses/:id", expenseHandler.DeleteExpense)

			admin.GET("/payouts", payoutHandler.ListPayouts)
			admin.GET("/payouts/total", payoutHandler.GetTotal)
			admin.POST("/payouts", middleware.ValidateInput(middleware.PayoutValidation), payoutHandler.CreatePayout)
			admin.PUT("/payouts/:id", payoutHandler.UpdatePayout)
			admin.DELETE("/payouts/:id", payoutHandler.DeletePayout)

			// Dashboard
			admin.GET("/dashboard/summary", dashboardHandler.GetSummary)
			admin.GET("/dashboard/stats", dashboardHandler.GetStats)
		}
	}

	return func() {
		defaultLimiter.Stop()
		strictLimiter.Stop()
		adminLimiter.Stop()
	}
}

func configureCORS(cfg *config.Config) gin.HandlerFunc {
	corsConfig := cors.DefaultConfig()
	corsConfig.AllowOrigins = cfg.CORSAllowedOrigins
	if len(corsConfig.AllowOrigins) == 0 {
		corsConfig.AllowOrigins = []string{"http://localhost:5173"}
	}
	if len(cfg.CORSAllowedMethods) > 0 {
		corsConfig.AllowMethods = cfg.CORSAllowedMethods
	}
	if len(cfg.CORSAllowedHeaders) > 0 {
		corsConfig.AllowHeaders = cfg.CORSAllowedHeaders
	}
	corsConfig.ExposeHeaders = append([]string{"Retry-After"}, cfg.CORSExposedHeaders...)
	corsConfig.AllowCredentials = cfg.CORSAllowCreds
	if cfg.CORSMaxAge > 0 {
		corsConfig.MaxAge = cfg.CORSMaxAge
	}
	return cors.New(corsConfig)
}

// ErrNotInitialized is returned by entrypoints that run before InitializeHandlers
var ErrNotInitialized = errors.New("server handlers are not initialized")

// Config returns the loaded configuration
func Config() (*config.Config, error) {
	if appRuntime == nil {
		return nil, ErrNotInitialized
	}
	return appRuntime.Config, nil
}
