// Package events publishes settings change notifications.
package events

import (
	"context"

	"github.com/blogem/config-store/config"
	"github.com/blogem/config-store/models"
)

// Publisher delivers change events and reports broker health
type Publisher interface {
	Publish(ctx context.Context, event models.ChangeEvent) error
	Healthy(ctx context.Context) error
	Close() error
}

// NewPublisher returns a Kafka publisher, or a no-op one when no brokers are configured
func NewPublisher(cfg config.KafkaConfig) Publisher {
	if len(cfg.Brokers) == 0 {
		return NoopPublisher{}
	}
	return NewKafkaPublisher(cfg)
}
