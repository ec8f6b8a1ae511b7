package events

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"time"

	"github.com/segmentio/kafka-go"
)

// Producer is the subset of *kafka.Writer used for publishing
type Producer interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

// Consumer is the subset of *kafka.Reader used by the notification worker
type Consumer interface {
	FetchMessage(ctx context.Context) (kafka.Message, error)
	CommitMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

// KafkaPublisher publishes order events to a Kafka topic keyed by order id
type KafkaPublisher struct {
	producer Producer
}

// NewKafkaPublisher wraps an existing producer
func NewKafkaPublisher(producer Producer) *KafkaPublisher {
	return &KafkaPublisher{producer: producer}
}

// NewKafkaWriter creates a writer for topic on the given brokers
func NewKafkaWriter(brokers []string, topic string) *kafka.Writer {
	return &kafka.Writer{
		Addr:         kafka.TCP(brokers...),
		Topic:        topic,
		Balancer:     &kafka.Hash{},
		BatchTimeout: 50 * time.Millisecond,
		RequiredAcks: kafka.RequireOne,
	}
}

// NewKafkaReader creates a consumer group reader for topic
func NewKafkaReader(brokers []string, topic, groupID string) *kafka.Reader {
	return kafka.NewReader(kafka.ReaderConfig{
		Brokers: brokers,
		Topic:   topic,
		GroupID: groupID,
	})
}

// Publish implements Publisher
func (p *KafkaPublisher) Publish(ctx context.Context, event OrderEvent) error {
	body, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal order event: %w", err)
	}

	headers := []kafka.Header{{Key: "event_type", Value: []byte(event.Type)}}
	for k, v := range InjectTraceContext(ctx) {
		headers = append(headers, kafka.Header{Key: k, Value: []byte(v)})
	}

	msg := kafka.Message{
		Key:     []byte(strconv.FormatInt(event.OrderID, 10)),
		Value:   body,
		Headers: headers,
	}
	if err := p.producer.WriteMessages(ctx, msg); err != nil {
		return fmt.Errorf("failed to write order event to kafka: %w", err)
	}
	return nil
}

// Close implements Publisher
func (p *KafkaPublisher) Close() error {
	return p.producer.Close()
}

// HeadersToMap flattens Kafka headers for trace extraction
func HeadersToMap(headers []kafka.Header) map[string]string {
	out := make(map[string]string, len(headers))
	for _, h := range headers {
		out[h.Key] = string(h.Value)
	}
	return out
}
