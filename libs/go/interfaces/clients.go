package interfaces

import (
	"context"
	"io"

	"github.com/chokka/chokka-api/libs/go/client/events"
	"github.com/chokka/chokka-api/libs/go/client/steadfast"
	"github.com/chokka/chokka-api/libs/go/client/storage"
	"github.com/chokka/chokka-api/libs/go/client/telegram"
	"github.com/resend/resend-go/v2"
)

// SteadfastClient creates consignments and reads delivery status from the courier
type SteadfastClient interface {
	CreateOrder(ctx context.Context, req steadfast.CreateOrderRequest) (*steadfast.CreateOrderResponse, error)
	CreateBulkOrders(ctx context.Context, items []steadfast.CreateOrderRequest) (*steadfast.BulkOrderResponse, error)
	GetStatusByTrackingCode(ctx context.Context, trackingCode string) (*steadfast.StatusResponse, error)
}

// TelegramClient sends bot messages
type TelegramClient interface {
	SendMessage(ctx context.Context, req telegram.SendMessageRequest) error
}

// ObjectStorage stores uploaded gallery images
type ObjectStorage interface {
	Put(ctx context.Context, r io.Reader, in storage.PutInput) (storage.PutResult, error)
	Delete(ctx context.Context, key string) error
}

// EventPublisher publishes order events to a queue or topic
type EventPublisher interface {
	Publish(ctx context.Context, event events.OrderEvent) error
	Close() error
}

// ResendEmailSender is the part of the Resend SDK used to send mail
type ResendEmailSender interface {
	SendWithContext(ctx context.Context, params *resend.SendEmailRequest) (*resend.SendEmailResponse, error)
}
