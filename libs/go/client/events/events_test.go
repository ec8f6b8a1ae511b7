package events

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/sqs"
	"github.com/segmentio/kafka-go"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingSQS struct {
	inputs []*sqs.SendMessageInput
}

func (r *recordingSQS) SendMessage(_ context.Context, in *sqs.SendMessageInput, _ ...func(*sqs.Options)) (*sqs.SendMessageOutput, error) {
	r.inputs = append(r.inputs, in)
	return &sqs.SendMessageOutput{MessageId: aws.String("m-1")}, nil
}

type recordingProducer struct {
	msgs   []kafka.Message
	closed bool
}

func (r *recordingProducer) WriteMessages(_ context.Context, msgs ...kafka.Message) error {
	r.msgs = append(r.msgs, msgs...)
	return nil
}

func (r *recordingProducer) Close() error {
	r.closed = true
	return nil
}

func sampleEvent() OrderEvent {
	return OrderEvent{
		Type:          "order.created",
		OrderID:       42,
		ProductID:     3,
		ProductName:   "Chokka Bundle",
		Quantity:      1,
		CustomerName:  "Rahim",
		CustomerPhone: "01711111111",
		City:          "Dhaka",
		Total:         decimal.NewFromInt(730),
		CreatedAt:     time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC),
	}
}

func TestSQSPublisher_Publish(t *testing.T) {
	client := &recordingSQS{}
	pub := NewSQSPublisher(client, "https://sqs.ap-south-1.amazonaws.com/123/orders")

	require.NoError(t, pub.Publish(context.Background(), sampleEvent()))
	require.Len(t, client.inputs, 1)

	in := client.inputs[0]
	assert.Equal(t, "https://sqs.ap-south-1.amazonaws.com/123/orders", aws.ToString(in.QueueUrl))
	assert.Equal(t, "order.created", aws.ToString(in.MessageAttributes["EventType"].StringValue))
	assert.Equal(t, "42", aws.ToString(in.MessageAttributes["OrderID"].StringValue))

	var decoded OrderEvent
	require.NoError(t, json.Unmarshal([]byte(aws.ToString(in.MessageBody)), &decoded))
	assert.Equal(t, int64(42), decoded.OrderID)
	assert.True(t, decoded.Total.Equal(decimal.NewFromInt(730)))
}

func TestKafkaPublisher_Publish(t *testing.T) {
	producer := &recordingProducer{}
	pub := NewKafkaPublisher(producer)

	require.NoError(t, pub.Publish(context.Background(), sampleEvent()))
	require.Len(t, producer.msgs, 1)
	assert.Equal(t, "42", string(producer.msgs[0].Key))
	assert.Equal(t, "order.created", HeadersToMap(producer.msgs[0].Headers)["event_type"])

	require.NoError(t, pub.Close())
	assert.True(t, producer.closed)
}
