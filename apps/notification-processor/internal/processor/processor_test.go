package processor

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/chokka/chokka-api/libs/go/client/events"
	"github.com/chokka/chokka-api/libs/go/constants"
	"github.com/chokka/chokka-api/libs/go/mocks"

	lambdaevents "github.com/aws/aws-lambda-go/events"
	"github.com/cenkalti/backoff/v4"
	"github.com/segmentio/kafka-go"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func newProcessor(t *testing.T) (*NotificationProcessor, *mocks.MockNotificationService) {
	ctrl := gomock.NewController(t)
	notifier := mocks.NewMockNotificationService(ctrl)
	p := NewNotificationProcessor(notifier, zap.NewNop(),
		WithRetry(2, func() backoff.BackOff { return &backoff.ZeroBackOff{} }))
	return p, notifier
}

func orderEventBody(t *testing.T, orderID int64, eventType string) string {
	body, err := json.Marshal(events.OrderEvent{
		Type:          eventType,
		OrderID:       orderID,
		ProductID:     1,
		ProductName:   "The Syndicate",
		Quantity:      1,
		CustomerName:  "Rahim",
		CustomerPhone: "01712345678",
		City:          "Dhaka",
		Address:       "House 1, Road 2",
		Total:         decimal.NewFromInt(440),
		CreatedAt:     time.Date(2024, 3, 11, 4, 0, 0, 0, time.UTC),
	})
	require.NoError(t, err)
	return string(body)
}

func TestProcess(t *testing.T) {
	tests := []struct {
		name          string
		body          string
		setupMock     func(m *mocks.MockNotificationService)
		wantErr       bool
		wantPermanent bool
	}{
		{
			name: "delivers order created event",
			body: orderEventBody(t, 7, constants.EventOrderCreated),
			setupMock: func(m *mocks.MockNotificationService) {
				m.EXPECT().NotifyOrderCreated(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, e events.OrderEvent) error {
						assert.Equal(t, int64(7), e.OrderID)
						assert.True(t, decimal.NewFromInt(440).Equal(e.Total))
						return nil
					})
			},
		},
		{
			name: "retries transient failures",
			body: orderEventBody(t, 8, constants.EventOrderCreated),
			setupMock: func(m *mocks.MockNotificationService) {
				gomock.InOrder(
					m.EXPECT().NotifyOrderCreated(gomock.Any(), gomock.Any()).Return(errors.New("telegram down")),
					m.EXPECT().NotifyOrderCreated(gomock.Any(), gomock.Any()).Return(nil),
				)
			},
		},
		{
			name: "gives up after max retries",
			body: orderEventBody(t, 9, constants.EventOrderCreated),
			setupMock: func(m *mocks.MockNotificationService) {
				m.EXPECT().NotifyOrderCreated(gomock.Any(), gomock.Any()).Return(errors.New("all channels failed")).Times(3)
			},
			wantErr: true,
		},
		{
			name:          "malformed body is permanent",
			body:          "{not json",
			setupMock:     func(m *mocks.MockNotificationService) {},
			wantErr:       true,
			wantPermanent: true,
		},
		{
			name:          "unknown event type is permanent",
			body:          orderEventBody(t, 10, "order.deleted"),
			setupMock:     func(m *mocks.MockNotificationService) {},
			wantErr:       true,
			wantPermanent: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, notifier := newProcessor(t)
			tt.setupMock(notifier)

			err := p.Process(context.Background(), []byte(tt.body), nil)
			if !tt.wantErr {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			var permanent *backoff.PermanentError
			assert.Equal(t, tt.wantPermanent, errors.As(err, &permanent))
		})
	}
}

func TestProcess_UnsupportedEventIsTyped(t *testing.T) {
	p, _ := newProcessor(t)

	err := p.Process(context.Background(), []byte(orderEventBody(t, 1, "order.refunded")), nil)
	assert.ErrorIs(t, err, ErrUnsupportedEvent)
}

func TestHandleSQSEvent_ReportsOnlyRetryableFailures(t *testing.T) {
	p, notifier := newProcessor(t)

	notifier.EXPECT().NotifyOrderCreated(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, e events.OrderEvent) error {
			if e.OrderID == 2 {
				return errors.New("email and telegram failed")
			}
			return nil
		}).AnyTimes()

	traceParent := "00-4bf92f3577b34da6a3ce929d0e0e4736-00f067aa0ba902b7-01"
	resp, err := p.HandleSQSEvent(context.Background(), lambdaevents.SQSEvent{
		Records: []lambdaevents.SQSMessage{
			{
				MessageId: "m-1",
				Body:      orderEventBody(t, 1, constants.EventOrderCreated),
				MessageAttributes: map[string]lambdaevents.SQSMessageAttribute{
					"traceparent": {DataType: "String", StringValue: &traceParent},
				},
			},
			{MessageId: "m-2", Body: orderEventBody(t, 2, constants.EventOrderCreated)},
			{MessageId: "m-3", Body: "garbage"},
		},
	})

	require.NoError(t, err)
	require.Len(t, resp.BatchItemFailures, 1)
	assert.Equal(t, "m-2", resp.BatchItemFailures[0].ItemIdentifier)
}

type fakeConsumer struct {
	messages  []kafka.Message
	committed []int64
	cancel    context.CancelFunc
}

func (f *fakeConsumer) FetchMessage(ctx context.Context) (kafka.Message, error) {
	if len(f.messages) == 0 {
		f.cancel()
		<-ctx.Done()
		return kafka.Message{}, ctx.Err()
	}
	msg := f.messages[0]
	f.messages = f.messages[1:]
	return msg, nil
}

func (f *fakeConsumer) CommitMessages(_ context.Context, msgs ...kafka.Message) error {
	for _, m := range msgs {
		f.committed = append(f.committed, m.Offset)
	}
	return nil
}

func (f *fakeConsumer) Close() error { return nil }

func TestRunKafka_CommitsHandledAndUndeliverableMessages(t *testing.T) {
	p, notifier := newProcessor(t)
	notifier.EXPECT().NotifyOrderCreated(gomock.Any(), gomock.Any()).Return(nil)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	consumer := &fakeConsumer{
		cancel: cancel,
		messages: []kafka.Message{
			{
				Offset:  1,
				Value:   []byte(orderEventBody(t, 1, constants.EventOrderCreated)),
				Headers: []kafka.Header{{Key: "event_type", Value: []byte(constants.EventOrderCreated)}},
			},
			{Offset: 2, Value: []byte("not json")},
		},
	}

	err := p.RunKafka(ctx, consumer)
	require.NoError(t, err)
	assert.Equal(t, []int64{1, 2}, consumer.committed)
}

func TestRunKafka_FetchError(t *testing.T) {
	p, _ := newProcessor(t)

	err := p.RunKafka(context.Background(), errConsumer{})
	assert.ErrorContains(t, err, "failed to fetch kafka message")
}

type errConsumer struct{}

func (errConsumer) FetchMessage(context.Context) (kafka.Message, error) {
	return kafka.Message{}, errors.New("broker unreachable")
}
func (errConsumer) CommitMessages(context.Context, ...kafka.Message) error { return nil }
func (errConsumer) Close() error                                           { return nil }
