package events

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	kafka "github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/blogem/config-store/config"
	"github.com/blogem/config-store/models"
)

type captureWriter struct {
	messages []kafka.Message
	err      error
	closed   bool
}

func (w *captureWriter) WriteMessages(_ context.Context, msgs ...kafka.Message) error {
	if w.err != nil {
		return w.err
	}
	w.messages = append(w.messages, msgs...)
	return nil
}

func (w *captureWriter) Close() error {
	w.closed = true
	return nil
}

func testEvent() models.ChangeEvent {
	return models.ChangeEvent{
		AuditRecordID: "audit-1",
		EntryID:       "entry-1",
		Scope:         models.ScopeTenant,
		TenantID:      "acme",
		Category:      "complaint-rules",
		Key:           "auto-assignment",
		Action:        models.AuditActionUpdate,
		Actor:         "admin@example.com",
		BeforeValue:   json.RawMessage(`{"method":"manual"}`),
		AfterValue:    json.RawMessage(`{"method":"round_robin"}`),
		OccurredAt:    time.Date(2026, 3, 2, 9, 30, 0, 0, time.UTC),
	}
}

func TestKafkaPublisher_Publish(t *testing.T) {
	w := &captureWriter{}
	p := &KafkaPublisher{writer: w, topic: "settings.changes"}

	require.NoError(t, p.Publish(context.Background(), testEvent()))
	require.Len(t, w.messages, 1)

	msg := w.messages[0]
	assert.Equal(t, "tenant.acme.complaint-rules.auto-assignment", string(msg.Key))

	var decoded models.ChangeEvent
	require.NoError(t, json.Unmarshal(msg.Value, &decoded))
	assert.Equal(t, "entry-1", decoded.EntryID)
	assert.Equal(t, models.AuditActionUpdate, decoded.Action)
	assert.JSONEq(t, `{"method":"round_robin"}`, string(decoded.AfterValue))

	require.Len(t, msg.Headers, 2)
	assert.Equal(t, "UPDATE", string(msg.Headers[0].Value))
}

func TestKafkaPublisher_PublishError(t *testing.T) {
	w := &captureWriter{err: errors.New("leader not available")}
	p := &KafkaPublisher{writer: w, topic: "settings.changes"}

	err := p.Publish(context.Background(), testEvent())
	assert.ErrorContains(t, err, "failed to publish change event")
}

func TestKafkaPublisher_Close(t *testing.T) {
	w := &captureWriter{}
	p := &KafkaPublisher{writer: w}

	require.NoError(t, p.Close())
	assert.True(t, w.closed)
}

func TestKafkaPublisher_HealthyWithoutBrokers(t *testing.T) {
	p := &KafkaPublisher{writer: &captureWriter{}}
	assert.Error(t, p.Healthy(context.Background()))
}

func TestNewPublisher(t *testing.T) {
	assert.IsType(t, NoopPublisher{}, NewPublisher(config.KafkaConfig{}))
	assert.IsType(t, &KafkaPublisher{}, NewPublisher(config.KafkaConfig{Brokers: []string{"localhost:9092"}, Topic: "t"}))
}

func TestNoopPublisher(t *testing.T) {
	p := NoopPublisher{}
	assert.NoError(t, p.Publish(context.Background(), testEvent()))
	assert.NoError(t, p.Healthy(context.Background()))
	assert.NoError(t, p.Close())
}
