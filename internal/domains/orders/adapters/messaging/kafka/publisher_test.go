package kafka

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	kafkago "github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Apurer/delish-express/internal/domains/orders/domain"
)

type fakeWriter struct {
	messages []kafkago.Message
	err      error
	closed   bool
}

func (f *fakeWriter) WriteMessages(_ context.Context, msgs ...kafkago.Message) error {
	if f.err != nil {
		return f.err
	}
	f.messages = append(f.messages, msgs...)
	return nil
}

func (f *fakeWriter) Close() error {
	f.closed = true
	return nil
}

func TestPublisher_WritesKeyedEvent(t *testing.T) {
	writer := &fakeWriter{}
	pub := NewPublisherWithWriter(writer)
	at := time.Date(2024, 5, 1, 12, 0, 5, 0, time.UTC)

	err := pub.Publish(context.Background(), domain.StatusChange{
		OrderID:    "o-1",
		Progress:   domain.ProgressOf(domain.StatusPreparing),
		OccurredAt: at,
	})
	require.NoError(t, err)
	require.Len(t, writer.messages, 1)
	assert.Equal(t, "o-1", string(writer.messages[0].Key))

	var event StatusEvent
	require.NoError(t, json.Unmarshal(writer.messages[0].Value, &event))
	assert.Equal(t, "PREPARING", event.Status)
	assert.Equal(t, 1, event.Index)
	assert.True(t, at.Equal(event.OccurredAt))

	require.NoError(t, pub.Close())
	assert.True(t, writer.closed)
}

func TestPublisher_PropagatesWriteError(t *testing.T) {
	pub := NewPublisherWithWriter(&fakeWriter{err: errors.New("no brokers")})
	err := pub.Publish(context.Background(), domain.StatusChange{OrderID: "o-1"})
	assert.Error(t, err)
}
