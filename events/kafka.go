package events

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	kafka "github.com/segmentio/kafka-go"

	"github.com/blogem/config-store/config"
	"github.com/blogem/config-store/models"
)

// messageWriter abstracts the kafka-go Writer so tests can capture messages
type messageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

// KafkaPublisher publishes settings change events to a Kafka topic
type KafkaPublisher struct {
	writer  messageWriter
	brokers []string
	topic   string
}

// NewKafkaPublisher creates a publisher writing to the configured topic
func NewKafkaPublisher(cfg config.KafkaConfig) *KafkaPublisher {
	w := &kafka.Writer{
		Addr:         kafka.TCP(cfg.Brokers...),
		Topic:        cfg.Topic,
		Balancer:     &kafka.Hash{},
		RequiredAcks: kafka.RequireAll,
		BatchTimeout: 10 * time.Millisecond,
	}
	return &KafkaPublisher{
		writer:  w,
		brokers: cfg.Brokers,
		topic:   cfg.Topic,
	}
}

// Publish sends a change event keyed by its setting coordinates
func (p *KafkaPublisher) Publish(ctx context.Context, event models.ChangeEvent) error {
	data, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to serialize change event: %w", err)
	}

	msg := kafka.Message{
		Key:   []byte(event.PartitionKey()),
		Value: data,
		Headers: []kafka.Header{
			{Key: "action", Value: []byte(event.Action)},
			{Key: "scope", Value: []byte(event.Scope)},
		},
	}

	if err := p.writer.WriteMessages(ctx, msg); err != nil {
		return fmt.Errorf("failed to publish change event: %w", err)
	}

	return nil
}

// Healthy dials the first reachable broker
func (p *KafkaPublisher) Healthy(ctx context.Context) error {
	if len(p.brokers) == 0 {
		return errors.New("no kafka brokers configured")
	}

	var lastErr error
	for _, broker := range p.brokers {
		conn, err := kafka.DialContext(ctx, "tcp", broker)
		if err != nil {
			lastErr = err
			continue
		}
		return conn.Close()
	}
	return fmt.Errorf("kafka unreachable: %w", lastErr)
}

// Close flushes pending messages and closes the writer
func (p *KafkaPublisher) Close() error {
	return p.writer.Close()
}
