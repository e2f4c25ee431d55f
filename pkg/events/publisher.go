// Package events publishes order lifecycle events after their transaction
// has committed.
package events

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"time"

	"github.com/IBM/sarama"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

const (
	OrderCreated = "order.created"
	OrderUpdated = "order.updated"
	OrderDeleted = "order.deleted"
)

type (
	Event struct {
		ID         string    `json:"id"`
		Type       string    `json:"type"`
		OrderID    uint      `json:"order_id"`
		OccurredAt time.Time `json:"occurred_at"`
		Payload    any       `json:"payload,omitempty"`
	}

	Publisher interface {
		Publish(ctx context.Context, event Event) error
		Close() error
	}

	kafkaPublisher struct {
		producer sarama.SyncProducer
		topic    string
		logger   *zap.Logger
	}

	// NopPublisher drops every event.
	NopPublisher struct{}
)

func NewEvent(eventType string, orderID uint, payload any) Event {
	return Event{
		ID:         uuid.NewString(),
		Type:       eventType,
		OrderID:    orderID,
		OccurredAt: time.Now().UTC(),
		Payload:    payload,
	}
}

func NewKafkaPublisher(brokers []string, topic string, logger *zap.Logger) (Publisher, error) {
	config := sarama.NewConfig()
	config.Producer.RequiredAcks = sarama.WaitForAll
	config.Producer.Retry.Max = 5
	config.Producer.Return.Successes = true
	config.Producer.Timeout = 5 * time.Second

	producer, err := sarama.NewSyncProducer(brokers, config)
	if err != nil {
		return nil, fmt.Errorf("failed to start sarama producer: %w", err)
	}

	logger.Info("kafka producer connected", zap.Strings("brokers", brokers), zap.String("topic", topic))
	return NewKafkaPublisherWithProducer(producer, topic, logger), nil
}

func NewKafkaPublisherWithProducer(producer sarama.SyncProducer, topic string, logger *zap.Logger) Publisher {
	return &kafkaPublisher{producer: producer, topic: topic, logger: logger}
}

// Publish keys messages by order so all events of one order land on the same
// partition.
func (p *kafkaPublisher) Publish(ctx context.Context, event Event) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	value, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to encode event %s: %w", event.Type, err)
	}

	msg := &sarama.ProducerMessage{
		Topic: p.topic,
		Key:   sarama.StringEncoder(strconv.FormatUint(uint64(event.OrderID), 10)),
		Value: sarama.ByteEncoder(value),
		Headers: []sarama.RecordHeader{
			{Key: []byte("event_type"), Value: []byte(event.Type)},
		},
	}

	partition, offset, err := p.producer.SendMessage(msg)
	if err != nil {
		return fmt.Errorf("failed to send event %s: %w", event.Type, err)
	}
	p.logger.Debug("event published",
		zap.String("type", event.Type),
		zap.Uint("order_id", event.OrderID),
		zap.Int32("partition", partition),
		zap.Int64("offset", offset),
	)
	return nil
}

func (p *kafkaPublisher) Close() error {
	return p.producer.Close()
}

func (NopPublisher) Publish(context.Context, Event) error {
	return nil
}

func (NopPublisher) Close() error {
	return nil
}
