package processor

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/chokka/chokka-api/libs/go/client/events"
	"github.com/chokka/chokka-api/libs/go/constants"
	"github.com/chokka/chokka-api/libs/go/interfaces"
	"github.com/chokka/chokka-api/libs/go/observability"

	lambdaevents "github.com/aws/aws-lambda-go/events"
	"github.com/cenkalti/backoff/v4"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.uber.org/zap"
)

const defaultMaxRetries = 3

// NotificationProcessor turns order events into admin alerts
type NotificationProcessor struct {
	notifier   interfaces.NotificationService
	logger     *zap.Logger
	maxRetries uint64
	newBackOff func() backoff.BackOff
}

// Option configures a NotificationProcessor
type Option func(*NotificationProcessor)

// WithRetry sets how many times a failed notification is retried and the
// backoff between attempts
func WithRetry(maxRetries uint64, newBackOff func() backoff.BackOff) Option {
	return func(p *NotificationProcessor) {
		p.maxRetries = maxRetries
		p.newBackOff = newBackOff
	}
}

// NewNotificationProcessor creates a new notification processor
func NewNotificationProcessor(notifier interfaces.NotificationService, logger *zap.Logger, opts ...Option) *NotificationProcessor {
	p := &NotificationProcessor{
		notifier:   notifier,
		logger:     logger,
		maxRetries: defaultMaxRetries,
		newBackOff: func() backoff.BackOff {
			b := backoff.NewExponentialBackOff()
			b.InitialInterval = 500 * time.Millisecond
			b.MaxElapsedTime = 30 * time.Second
			return b
		},
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// ErrUnsupportedEvent marks messages the processor does not handle
var ErrUnsupportedEvent = errors.New("unsupported event type")

// Process decodes one message body and sends the alert. headers carry the
// publisher's trace context.
func (p *NotificationProcessor) Process(ctx context.Context, body []byte, headers map[string]string) error {
	ctx = events.ExtractTraceContext(ctx, headers)
	ctx, span := observability.Tracer("notification-processor").Start(ctx, "notification.process")
	defer span.End()

	var event events.OrderEvent
	if err := json.Unmarshal(body, &event); err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "decode failed")
		return backoff.Permanent(fmt.Errorf("failed to decode order event: %w", err))
	}
	span.SetAttributes(
		attribute.String("event.type", event.Type),
		attribute.Int64("order.id", event.OrderID),
	)

	if event.Type != constants.EventOrderCreated {
		return backoff.Permanent(fmt.Errorf("%w: %q", ErrUnsupportedEvent, event.Type))
	}

	attempt := func() error {
		return p.notifier.NotifyOrderCreated(ctx, event)
	}
	notify := func(err error, wait time.Duration) {
		p.logger.Warn("Order notification failed, retrying",
			zap.Int64("order_id", event.OrderID),
			zap.Duration("wait", wait),
			zap.Error(err))
	}

	b := backoff.WithContext(backoff.WithMaxRetries(p.newBackOff(), p.maxRetries), ctx)
	if err := backoff.RetryNotify(attempt, b, notify); err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "notification failed")
		return fmt.Errorf("failed to notify order %d: %w", event.OrderID, err)
	}

	p.logger.Info("Order notification sent", zap.Int64("order_id", event.OrderID))
	return nil
}

// HandleSQSEvent processes a batch delivered by the SQS trigger. Failed
// records are reported individually so only they are redelivered;
// malformed and unsupported messages are dropped.
func (p *NotificationProcessor) HandleSQSEvent(ctx context.Context, event lambdaevents.SQSEvent) (lambdaevents.SQSEventResponse, error) {
	p.logger.Info("Notification processor handling SQS event", zap.Int("record_count", len(event.Records)))

	var resp lambdaevents.SQSEventResponse
	for _, record := range event.Records {
		err := p.Process(ctx, []byte(record.Body), sqsHeaders(record))
		if err == nil {
			continue
		}

		var permanent *backoff.PermanentError
		if errors.As(err, &permanent) {
			p.logger.Error("Dropping undeliverable message",
				zap.String("message_id", record.MessageId),
				zap.Error(err))
			continue
		}

		p.logger.Error("Failed to process record",
			zap.String("message_id", record.MessageId),
			zap.Error(err))
		resp.BatchItemFailures = append(resp.BatchItemFailures, lambdaevents.SQSBatchItemFailure{
			ItemIdentifier: record.MessageId,
		})
	}

	p.logger.Info("SQS batch processed",
		zap.Int("total", len(event.Records)),
		zap.Int("failed", len(resp.BatchItemFailures)))
	return resp, nil
}

// RunKafka consumes order events until ctx is cancelled. A message is
// committed once it has been handled or judged undeliverable.
func (p *NotificationProcessor) RunKafka(ctx context.Context, consumer events.Consumer) error {
	p.logger.Info("Notification processor consuming from Kafka")
	for {
		msg, err := consumer.FetchMessage(ctx)
		if err != nil {
			if ctx.Err() != nil {
				return nil
			}
			return fmt.Errorf("failed to fetch kafka message: %w", err)
		}

		if err := p.Process(ctx, msg.Value, events.HeadersToMap(msg.Headers)); err != nil {
			if ctx.Err() != nil {
				return nil
			}
			p.logger.Error("Giving up on order event",
				zap.String("topic", msg.Topic),
				zap.Int("partition", msg.Partition),
				zap.Int64("offset", msg.Offset),
				zap.Error(err))
		}

		if err := consumer.CommitMessages(ctx, msg); err != nil {
			if ctx.Err() != nil {
				return nil
			}
			return fmt.Errorf("failed to commit kafka message: %w", err)
		}
	}
}

func sqsHeaders(record lambdaevents.SQSMessage) map[string]string {
	out := make(map[string]string, len(record.MessageAttributes))
	for k, v := range record.MessageAttributes {
		if v.StringValue != nil {
			out[k] = *v.StringValue
		}
	}
	return out
}
