package events

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/propagation"
)

// OrderEvent is published after an order has been committed. It carries
// everything needed to alert admins so consumers never query the database.
type OrderEvent struct {
	Type          string          `json:"type"`
	OrderID       int64           `json:"order_id"`
	ProductID     int64           `json:"product_id"`
	ProductName   string          `json:"product_name"`
	Quantity      int32           `json:"quantity"`
	CustomerName  string          `json:"customer_name"`
	CustomerPhone string          `json:"customer_phone"`
	CustomerEmail string          `json:"customer_email,omitempty"`
	City          string          `json:"city"`
	Address       string          `json:"address"`
	Total         decimal.Decimal `json:"total"`
	CouponCode    string          `json:"coupon_code,omitempty"`
	CreatedAt     time.Time       `json:"created_at"`
}

// Publisher sends order events to a queue or topic
type Publisher interface {
	Publish(ctx context.Context, event OrderEvent) error
	Close() error
}

// InjectTraceContext returns the W3C trace headers for ctx
func InjectTraceContext(ctx context.Context) map[string]string {
	carrier := propagation.MapCarrier{}
	otel.GetTextMapPropagator().Inject(ctx, carrier)
	return carrier
}

// ExtractTraceContext restores a parent span context from message headers
func ExtractTraceContext(ctx context.Context, headers map[string]string) context.Context {
	return otel.GetTextMapPropagator().Extract(ctx, propagation.MapCarrier(headers))
}
