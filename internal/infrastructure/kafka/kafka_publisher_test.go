package kafka_test

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bibbank/signalgraph/internal/domain/event"
	"github.com/bibbank/signalgraph/internal/infrastructure/kafka"
	pkgkafka "github.com/bibbank/signalgraph/pkg/kafka"
)

type mockProducer struct {
	err      error
	topic    string
	messages []pkgkafka.Message
	calls    int
}

func (m *mockProducer) Publish(_ context.Context, topic string, messages ...pkgkafka.Message) error {
	m.calls++
	m.topic = topic
	m.messages = append(m.messages, messages...)
	return m.err
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestPublisher_Publish(t *testing.T) {
	producer := &mockProducer{}
	pub := kafka.NewPublisher(producer, "signalgraph.events", discardLogger())

	sessionID := uuid.New()
	now := time.Now()
	completed := event.NewEvaluationCompleted(sessionID, "Candidate_Synth_002", 21, "HIGH", []string{"ssn_mismatch"}, now)
	high := event.NewHighRiskDetected(sessionID, "Candidate_Synth_002", 21, []string{"ssn_mismatch"}, now)

	require.NoError(t, pub.Publish(context.Background(), completed, high))

	assert.Equal(t, 1, producer.calls)
	assert.Equal(t, "signalgraph.events", producer.topic)
	require.Len(t, producer.messages, 2)

	msg := producer.messages[0]
	assert.Equal(t, sessionID.String(), string(msg.Key))
	assert.Equal(t, event.EventTypeEvaluationCompleted, msg.Headers["event_type"])
	assert.Equal(t, completed.EventID().String(), msg.Headers["event_id"])
	assert.Equal(t, "Session", msg.Headers["aggregate_type"])

	var payload map[string]any
	require.NoError(t, json.Unmarshal(msg.Value, &payload))
	assert.Equal(t, "Candidate_Synth_002", payload["candidate_id"])
	assert.Equal(t, "HIGH", payload["tier"])
	assert.InDelta(t, 21, payload["score"], 0)

	assert.Equal(t, event.EventTypeHighRiskDetected, producer.messages[1].Headers["event_type"])
}

func TestPublisher_NothingToPublish(t *testing.T) {
	producer := &mockProducer{}
	pub := kafka.NewPublisher(producer, "t", discardLogger())

	require.NoError(t, pub.Publish(context.Background()))
	assert.Zero(t, producer.calls)
}

func TestPublisher_ProducerError(t *testing.T) {
	producer := &mockProducer{err: errors.New("leader not available")}
	pub := kafka.NewPublisher(producer, "t", discardLogger())

	evt := event.NewEvaluationCompleted(uuid.New(), "c", 0, "LOW", nil, time.Now())
	err := pub.Publish(context.Background(), evt)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to publish events to topic t")
}
