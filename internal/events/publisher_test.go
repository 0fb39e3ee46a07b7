package events

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewEvent(t *testing.T) {
	event := NewEvent(TypeLineCreated, map[string]string{"id": "l1"})

	assert.NotEmpty(t, event.ID)
	assert.Equal(t, TypeLineCreated, event.Type)
	assert.Equal(t, EventSource, event.Source)
	assert.WithinDuration(t, time.Now().UTC(), event.Timestamp, time.Minute)

	other := NewEvent(TypeLineCreated, nil)
	assert.NotEqual(t, event.ID, other.ID)
}

func TestGoChannelBus_RoundTrip(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	publisher, subscriber := NewGoChannelBus(logger)
	defer publisher.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	messages, err := subscriber.Subscribe(ctx, CatalogTopic)
	require.NoError(t, err)

	sent := NewEvent(TypeProjectCreated, map[string]string{"id": "p1"})
	require.NoError(t, publisher.Publish(ctx, sent))

	select {
	case msg := <-messages:
		var got Event
		require.NoError(t, json.Unmarshal(msg.Payload, &got))
		assert.Equal(t, sent.ID, got.ID)
		assert.Equal(t, TypeProjectCreated, got.Type)
		assert.Equal(t, TypeProjectCreated, msg.Metadata.Get("type"))
		msg.Ack()
	case <-ctx.Done():
		t.Fatal("expected a message on the catalog topic")
	}
}

func TestMockEventPublisher(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	mock := NewMockEventPublisher(logger)
	ctx := context.Background()

	require.NoError(t, mock.Publish(ctx, NewEvent(TypeUserRegistered, nil)))
	require.NoError(t, mock.Publish(ctx, NewEvent(TypeCourseCreated, nil)))

	events := mock.GetPublishedEvents()
	require.Len(t, events, 2)
	assert.Equal(t, TypeUserRegistered, events[0].Type)
	assert.Equal(t, TypeCourseCreated, events[1].Type)

	mock.ClearEvents()
	assert.Empty(t, mock.GetPublishedEvents())
}
