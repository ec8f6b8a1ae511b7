package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/chokka/chokka-api/libs/go/client/events"
	"github.com/chokka/chokka-api/libs/go/client/telegram"
	"github.com/chokka/chokka-api/libs/go/config"
	"github.com/chokka/chokka-api/libs/go/helpers"
	"github.com/chokka/chokka-api/libs/go/interfaces"
	"github.com/chokka/chokka-api/libs/go/logger"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
)

// ErrNoNotificationDelivered is returned when every channel failed
var ErrNoNotificationDelivered = errors.New("order notification was not delivered to any admin")

var markdownEscaper = strings.NewReplacer("_", "\\_", "*", "\\*", "`", "\\`", "[", "\\[")

// NotificationService alerts admins about new orders over Telegram and,
// optionally, e-mail
type NotificationService struct {
	telegram interfaces.TelegramClient
	email    interfaces.EmailService
	catalog  *config.Catalog
	emailTo  string
	logger   *zap.Logger
	tracer   trace.Tracer
}

// NewNotificationService creates a notification service. email may be nil.
func NewNotificationService(tg interfaces.TelegramClient, email interfaces.EmailService, catalog *config.Catalog, emailTo string) *NotificationService {
	if catalog == nil {
		catalog = config.DefaultCatalog()
	}
	return &NotificationService{
		telegram: tg,
		email:    email,
		catalog:  catalog,
		emailTo:  emailTo,
		logger:   logger.Log,
		tracer:   otel.Tracer("chokka/services/notification"),
	}
}

// FormatOrderMessage renders the Telegram alert for an order
func FormatOrderMessage(event events.OrderEvent, adminURL string) string {
	name := event.ProductName
	if name == "" {
		name = config.DefaultCatalog().ProductName(event.ProductID)
	}

	var b strings.Builder
	b.WriteString("💰 *NEW ORDER RECEIVED!* 💰\n\n")
	fmt.Fprintf(&b, "📦 *Item:* %s\n", markdownEscaper.Replace(name))
	fmt.Fprintf(&b, "👤 *Name:* %s\n", markdownEscaper.Replace(event.CustomerName))
	fmt.Fprintf(&b, "📞 *Phone:* %s\n", markdownEscaper.Replace(event.CustomerPhone))
	fmt.Fprintf(&b, "🏙️ *City:* %s\n", markdownEscaper.Replace(event.City))
	fmt.Fprintf(&b, "💵 *Total:* %s BDT\n\n", helpers.FormatTaka(event.Total))
	fmt.Fprintf(&b, "👉 [Open Admin Panel](%s)", adminURL)
	return b.String()
}

// NotifyOrderCreated sends the alert to every configured chat. A failing
// chat is logged and does not stop the others; an error is returned only
// when nothing was delivered.
func (s *NotificationService) NotifyOrderCreated(ctx context.Context, event events.OrderEvent) error {
	ctx, span := s.tracer.Start(ctx, "NotificationService.NotifyOrderCreated",
		trace.WithAttributes(attribute.Int64("order.id", event.OrderID)))
	defer span.End()

	if event.ProductName == "" {
		event.ProductName = s.catalog.ProductName(event.ProductID)
	}

	attempted, delivered := 0, 0
	var errs []error

	if s.telegram != nil {
		text := FormatOrderMessage(event, s.catalog.AdminPanelURL)
		for _, chatID := range s.catalog.TelegramChatIDs {
			attempted++
			err := s.telegram.SendMessage(ctx, telegram.SendMessageRequest{
				ChatID:    chatID,
				Text:      text,
				ParseMode: telegram.ParseModeMarkdown,
			})
			if err != nil {
				s.logger.Error("Telegram notification failed",
					zap.String("chat_id", chatID),
					zap.Int64("order_id", event.OrderID),
					zap.Error(err))
				errs = append(errs, fmt.Errorf("chat %s: %w", chatID, err))
				continue
			}
			delivered++
		}
	}

	if s.email != nil && s.emailTo != "" {
		attempted++
		if err := s.email.SendOrderAlert(ctx, event, s.emailTo); err != nil {
			errs = append(errs, fmt.Errorf("email: %w", err))
		} else {
			delivered++
		}
	}

	span.SetAttributes(attribute.Int("notify.delivered", delivered))

	if attempted == 0 {
		s.logger.Warn("No notification channel configured", zap.Int64("order_id", event.OrderID))
		return nil
	}
	if delivered == 0 {
		return fmt.Errorf("%w: %w", ErrNoNotificationDelivered, errors.Join(errs...))
	}

	s.logger.Info("Order notification sent",
		zap.Int64("order_id", event.OrderID),
		zap.Int("delivered", delivered),
		zap.Int("failed", len(errs)))
	return nil
}
