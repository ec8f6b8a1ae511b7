package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/chokka/chokka-api/libs/go/client/events"
	"github.com/chokka/chokka-api/libs/go/config"
	"github.com/chokka/chokka-api/libs/go/constants"
	"github.com/chokka/chokka-api/libs/go/db"
	"github.com/chokka/chokka-api/libs/go/helpers"
	"github.com/chokka/chokka-api/libs/go/interfaces"
	"github.com/chokka/chokka-api/libs/go/logger"
	"github.com/chokka/chokka-api/libs/go/types/api/params"
	"github.com/chokka/chokka-api/libs/go/types/business"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
)

const (
	defaultOrderLimit int32 = 200
	maxOrderLimit     int32 = 500
	maxOrderQuantity  int32 = 50

	notifyTimeout = 10 * time.Second
)

// OrderService handles checkout and order administration
type OrderService struct {
	queries   db.Querier
	tx        helpers.TxRunner
	catalog   *config.Catalog
	pricer    *Pricer
	publisher interfaces.EventPublisher
	notifier  interfaces.NotificationService
	logger    *zap.Logger
	tracer    trace.Tracer
}

// NewOrderService creates a new order service. publisher and notifier are
// optional: with a publisher the order.created event is queued, otherwise
// the notifier is called inline after commit.
func NewOrderService(
	queries db.Querier,
	tx helpers.TxRunner,
	catalog *config.Catalog,
	publisher interfaces.EventPublisher,
	notifier interfaces.NotificationService,
) *OrderService {
	if catalog == nil {
		catalog = config.DefaultCatalog()
	}
	return &OrderService{
		queries:   queries,
		tx:        tx,
		catalog:   catalog,
		pricer:    NewPricer(catalog),
		publisher: publisher,
		notifier:  notifier,
		logger:    logger.Log,
		tracer:    otel.Tracer("chokka/services/order"),
	}
}

// CreateOrder validates the checkout form, prices it on the server, stores
// the order and deducts inventory in one transaction, then announces it.
func (s *OrderService) CreateOrder(ctx context.Context, p params.CreateOrderParams) (*db.Order, *business.Quote, error) {
	ctx, span := s.tracer.Start(ctx, "OrderService.CreateOrder",
		trace.WithAttributes(attribute.Int64("product.id", p.ProductID)))
	defer span.End()

	if err := validateCheckout(&p); err != nil {
		span.SetStatus(codes.Error, err.Error())
		return nil, nil, err
	}

	var (
		order db.Order
		quote business.Quote
	)
	err := s.tx.RunInTx(ctx, func(q db.Querier) error {
		product, err := q.GetProduct(ctx, p.ProductID)
		if err != nil {
			return notFound(err, ErrUnknownProduct, "failed to load product")
		}

		discount, err := lookupCouponDiscount(ctx, q, p.CouponCode)
		if err != nil {
			return err
		}

		quote = s.pricer.QuoteOrder(business.QuoteInput{
			Product:        pricedProduct(product),
			Quantity:       p.Quantity,
			City:           p.City,
			CouponDiscount: discount,
		})

		order, err = q.CreateOrder(ctx, db.CreateOrderParams{
			CustomerName:    p.CustomerName,
			CustomerPhone:   p.CustomerPhone,
			CustomerAddress: p.CustomerAddress,
			CustomerEmail:   helpers.StringToNullableText(p.CustomerEmail),
			City:            p.City,
			ProductID:       p.ProductID,
			Quantity:        quote.Quantity,
			Subtotal:        helpers.DecimalToNumeric(quote.Subtotal),
			ShippingFee:     helpers.DecimalToNumeric(quote.Shipping),
			Discount:        helpers.DecimalToNumeric(quote.Discount),
			TotalPrice:      helpers.DecimalToNumeric(quote.Total),
			CouponCode:      helpers.StringToNullableText(p.CouponCode),
			Note:            helpers.StringToNullableText(p.Note),
			Status:          constants.OrderStatusPending,
		})
		if err != nil {
			return fmt.Errorf("failed to create order: %w", err)
		}

		return s.deductInventory(ctx, q, order.ID, p.ProductID, quote.Quantity)
	})
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "checkout failed")
		if !errors.Is(err, ErrInvalidInput) {
			s.logger.Error("Checkout failed",
				zap.Int64("product_id", p.ProductID),
				zap.Error(err))
		}
		return nil, nil, err
	}

	span.SetAttributes(attribute.Int64("order.id", order.ID))

	if p.ClientTotal != nil && !p.ClientTotal.Equal(quote.Total) {
		s.logger.Warn("Client total differs from server quote",
			zap.Int64("order_id", order.ID),
			zap.String("client_total", p.ClientTotal.String()),
			zap.String("server_total", quote.Total.String()))
	}

	s.logger.Info("Order created",
		zap.Int64("order_id", order.ID),
		zap.Int64("product_id", order.ProductID),
		zap.String("total", quote.Total.String()))

	s.announce(ctx, s.orderEvent(order, quote.Total))

	return &order, &quote, nil
}

func (s *OrderService) deductInventory(ctx context.Context, q db.Querier, orderID, productID int64, quantity int32) error {
	for _, d := range s.pricer.InventoryDeductions(productID, quantity) {
		rows, err := q.DeductInventoryStock(ctx, db.DeductInventoryStockParams{
			Quantity:  d.Quantity,
			ProductID: helpers.Int64ToNullableInt8(d.ProductID),
			ItemType:  helpers.StringToNullableText(d.ItemType),
		})
		if err != nil {
			return fmt.Errorf("failed to deduct %s for product %d: %w", d.ItemType, d.ProductID, err)
		}
		if rows == 0 {
			s.logger.Warn("No inventory row to deduct",
				zap.Int64("order_id", orderID),
				zap.Int64("product_id", d.ProductID),
				zap.String("item_type", d.ItemType))
		}
	}
	return nil
}

// announce publishes order.created, falling back to an inline notification.
// Failures are logged and never surface to the customer.
func (s *OrderService) announce(ctx context.Context, event events.OrderEvent) {
	ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), notifyTimeout)
	defer cancel()

	if s.publisher != nil {
		err := s.publisher.Publish(ctx, event)
		if err == nil {
			return
		}
		s.logger.Error("Failed to publish order event, notifying inline",
			zap.Int64("order_id", event.OrderID),
			zap.Error(err))
	}

	if s.notifier == nil {
		return
	}
	if err := s.notifier.NotifyOrderCreated(ctx, event); err != nil {
		s.logger.Error("Failed to notify admins",
			zap.Int64("order_id", event.OrderID),
			zap.Error(err))
	}
}

func (s *OrderService) orderEvent(order db.Order, total decimal.Decimal) events.OrderEvent {
	createdAt := time.Now().UTC()
	if order.CreatedAt.Valid {
		createdAt = order.CreatedAt.Time
	}
	return events.OrderEvent{
		Type:          constants.EventOrderCreated,
		OrderID:       order.ID,
		ProductID:     order.ProductID,
		ProductName:   s.catalog.ProductName(order.ProductID),
		Quantity:      order.Quantity,
		CustomerName:  order.CustomerName,
		CustomerPhone: order.CustomerPhone,
		CustomerEmail: helpers.NullableTextToString(order.CustomerEmail),
		City:          order.City,
		Address:       order.CustomerAddress,
		Total:         total,
		CouponCode:    helpers.NullableTextToString(order.CouponCode),
		CreatedAt:     createdAt,
	}
}

// Quote prices an order without writing anything and returns the bundle
// offer for single-game orders.
func (s *OrderService) Quote(ctx context.Context, p params.QuoteParams) (*business.Quote, *business.Upsell, error) {
	if p.ProductID <= 0 {
		return nil, nil, ErrUnknownProduct
	}

	products, err := s.queries.ListProducts(ctx)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to list products: %w", err)
	}

	prices := make(map[int64]decimal.Decimal, len(products))
	var (
		selected db.Product
		found    bool
	)
	for _, prod := range products {
		prices[prod.ID] = helpers.NumericToDecimal(prod.Price)
		if prod.ID == p.ProductID {
			selected, found = prod, true
		}
	}
	if !found {
		return nil, nil, ErrUnknownProduct
	}

	discount, err := lookupCouponDiscount(ctx, s.queries, helpers.NormalizeCouponCode(p.CouponCode))
	if err != nil {
		return nil, nil, err
	}

	quote := s.pricer.QuoteOrder(business.QuoteInput{
		Product:        pricedProduct(selected),
		Quantity:       p.Quantity,
		City:           p.City,
		CouponDiscount: discount,
	})
	return &quote, s.pricer.BundleUpsell(p.ProductID, prices, quote.Quantity), nil
}

// ListOrders returns orders newest first, optionally filtered by status
func (s *OrderService) ListOrders(ctx context.Context, p params.ListOrdersParams) ([]db.Order, error) {
	limit := p.Limit
	if limit <= 0 {
		limit = defaultOrderLimit
	}
	if limit > maxOrderLimit {
		limit = maxOrderLimit
	}
	offset := p.Offset
	if offset < 0 {
		offset = 0
	}

	var (
		orders []db.Order
		err    error
	)
	if status := strings.TrimSpace(p.Status); status != "" {
		orders, err = s.queries.ListOrdersByStatus(ctx, db.ListOrdersByStatusParams{Status: status, Limit: limit, Offset: offset})
	} else {
		orders, err = s.queries.ListOrders(ctx, db.ListOrdersParams{Limit: limit, Offset: offset})
	}
	if err != nil {
		return nil, fmt.Errorf("failed to list orders: %w", err)
	}
	return orders, nil
}

// GetOrder returns a single order
func (s *OrderService) GetOrder(ctx context.Context, id int64) (*db.Order, error) {
	order, err := s.queries.GetOrder(ctx, id)
	if err != nil {
		return nil, notFound(err, ErrOrderNotFound, "failed to get order")
	}
	return &order, nil
}

// UpdateStatus sets any non-empty status. A tracking code, when given, is
// stored alongside it.
func (s *OrderService) UpdateStatus(ctx context.Context, p params.UpdateOrderStatusParams) (*db.Order, error) {
	status := strings.TrimSpace(p.Status)
	if status == "" {
		return nil, invalidf("status is required")
	}

	var (
		order db.Order
		err   error
	)
	if p.TrackingCode != nil && strings.TrimSpace(*p.TrackingCode) != "" {
		order, err = s.queries.UpdateOrderCourierInfo(ctx, db.UpdateOrderCourierInfoParams{
			Status:       status,
			TrackingCode: helpers.StringToNullableText(strings.TrimSpace(*p.TrackingCode)),
			ID:           p.ID,
		})
	} else {
		order, err = s.queries.UpdateOrderStatus(ctx, db.UpdateOrderStatusParams{ID: p.ID, Status: status})
	}
	if err != nil {
		return nil, notFound(err, ErrOrderNotFound, "failed to update order status")
	}

	s.logger.Info("Order status updated",
		zap.Int64("order_id", order.ID),
		zap.String("status", status))
	return &order, nil
}

// UpdateDetails edits the customer fields and total of an order
func (s *OrderService) UpdateDetails(ctx context.Context, p params.UpdateOrderDetailsParams) (*db.Order, error) {
	name := strings.TrimSpace(p.CustomerName)
	phone := helpers.NormalizePhone(p.CustomerPhone)
	address := strings.TrimSpace(p.CustomerAddress)
	if name == "" || phone == "" || address == "" {
		return nil, invalidf("customer name, phone and address are required")
	}
	if p.TotalPrice.IsNegative() {
		return nil, invalidf("total price must not be negative")
	}

	order, err := s.queries.UpdateOrderDetails(ctx, db.UpdateOrderDetailsParams{
		ID:              p.ID,
		CustomerName:    name,
		CustomerPhone:   phone,
		CustomerAddress: address,
		TotalPrice:      helpers.DecimalToNumeric(p.TotalPrice),
	})
	if err != nil {
		return nil, notFound(err, ErrOrderNotFound, "failed to update order details")
	}
	return &order, nil
}

// DeleteOrder removes an order. Inventory is not restored.
func (s *OrderService) DeleteOrder(ctx context.Context, id int64) error {
	rows, err := s.queries.DeleteOrder(ctx, id)
	if err != nil {
		return fmt.Errorf("failed to delete order: %w", err)
	}
	if rows == 0 {
		return ErrOrderNotFound
	}
	s.logger.Info("Order deleted", zap.Int64("order_id", id))
	return nil
}

func validateCheckout(p *params.CreateOrderParams) error {
	p.CustomerName = strings.TrimSpace(p.CustomerName)
	p.CustomerAddress = strings.TrimSpace(p.CustomerAddress)
	p.City = strings.TrimSpace(p.City)
	p.CustomerEmail = strings.TrimSpace(p.CustomerEmail)
	p.Note = strings.TrimSpace(p.Note)
	p.CouponCode = helpers.NormalizeCouponCode(p.CouponCode)
	p.CustomerPhone = helpers.NormalizePhone(p.CustomerPhone)

	switch {
	case p.CustomerName == "":
		return invalidf("customer name is required")
	case p.CustomerAddress == "":
		return invalidf("customer address is required")
	case p.City == "":
		return invalidf("city is required")
	case p.ProductID <= 0:
		return ErrUnknownProduct
	}
	if !helpers.IsValidBDPhone(p.CustomerPhone) {
		return ErrInvalidPhone
	}
	if p.Quantity <= 0 {
		p.Quantity = 1
	}
	if p.Quantity > maxOrderQuantity {
		return invalidf("quantity must be at most %d", maxOrderQuantity)
	}
	return nil
}

// lookupCouponDiscount returns zero for an empty code
func lookupCouponDiscount(ctx context.Context, q db.Querier, code string) (decimal.Decimal, error) {
	if code == "" {
		return decimal.Zero, nil
	}
	coupon, err := q.GetCouponByCode(ctx, code)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return decimal.Zero, ErrInvalidCoupon
		}
		return decimal.Zero, fmt.Errorf("failed to look up coupon: %w", err)
	}
	if !coupon.IsActive {
		return decimal.Zero, ErrCouponExpired
	}
	return helpers.NumericToDecimal(coupon.Discount), nil
}

func pricedProduct(p db.Product) business.PricedProduct {
	return business.PricedProduct{
		ID:              p.ID,
		Price:           helpers.NumericToDecimal(p.Price),
		DeliveryDhaka:   helpers.NumericToDecimal(p.DeliveryDhaka),
		DeliveryOutside: helpers.NumericToDecimal(p.DeliveryOutside),
	}
}
