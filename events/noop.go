package events

import (
	"context"

	"github.com/blogem/config-store/models"
)

// NoopPublisher discards change events; used when no brokers are configured
type NoopPublisher struct{}

func (NoopPublisher) Publish(context.Context, models.ChangeEvent) error { return nil }

func (NoopPublisher) Healthy(context.Context) error { return nil }

func (NoopPublisher) Close() error { return nil }
