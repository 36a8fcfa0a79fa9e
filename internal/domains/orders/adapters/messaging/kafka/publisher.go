package kafka

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	kafkago "github.com/segmentio/kafka-go"

	"github.com/Apurer/delish-express/internal/domains/orders/domain"
	"github.com/Apurer/delish-express/internal/domains/orders/ports"
)

// DefaultTopic receives order status events when no topic is configured.
const DefaultTopic = "order-status"

// MessageWriter is the subset of *kafka.Writer the publisher needs.
type MessageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafkago.Message) error
	Close() error
}

// StatusEvent is the message value, keyed by order ID.
type StatusEvent struct {
	OrderID    string    `json:"orderId"`
	Status     string    `json:"status"`
	Index      int       `json:"index"`
	Fraction   float64   `json:"fraction"`
	OccurredAt time.Time `json:"occurredAt"`
}

// Publisher writes order status transitions to Kafka.
type Publisher struct {
	writer MessageWriter
}

// NewPublisher dials nothing up front; kafka-go connects on first write.
func NewPublisher(brokers []string, topic string) *Publisher {
	if topic == "" {
		topic = DefaultTopic
	}
	return NewPublisherWithWriter(&kafkago.Writer{
		Addr:                   kafkago.TCP(brokers...),
		Topic:                  topic,
		Balancer:               &kafkago.Hash{},
		RequiredAcks:           kafkago.RequireOne,
		AllowAutoTopicCreation: true,
	})
}

func NewPublisherWithWriter(writer MessageWriter) *Publisher {
	return &Publisher{writer: writer}
}

func (p *Publisher) Publish(ctx context.Context, change domain.StatusChange) error {
	if p == nil || p.writer == nil {
		return errors.New("kafka status publisher not configured")
	}
	payload, err := json.Marshal(StatusEvent{
		OrderID:    change.OrderID,
		Status:     string(change.Progress.Status),
		Index:      change.Progress.Index,
		Fraction:   change.Progress.Fraction,
		OccurredAt: change.OccurredAt.UTC(),
	})
	if err != nil {
		return err
	}
	return p.writer.WriteMessages(ctx, kafkago.Message{
		Key:   []byte(change.OrderID),
		Value: payload,
	})
}

func (p *Publisher) Close() error {
	if p == nil || p.writer == nil {
		return nil
	}
	return p.writer.Close()
}

var _ ports.StatusPublisher = (*Publisher)(nil)
