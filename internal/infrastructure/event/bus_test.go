package event

import (
	"context"
	"errors"
	"testing"

	"github.com/bizdesk/backend/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type recordingHandler struct {
	types    []string
	received []shared.DomainEvent
	err      error
	panics   bool
}

func (h *recordingHandler) Handle(ctx context.Context, event shared.DomainEvent) error {
	if h.panics {
		panic("handler exploded")
	}
	h.received = append(h.received, event)
	return h.err
}

func (h *recordingHandler) EventTypes() []string {
	return h.types
}

func newEvent(eventType string) shared.DomainEvent {
	e := shared.NewBaseDomainEvent(eventType, "test", uuid.New(), uuid.New())
	return &e
}

func TestInMemoryEventBus_Publish(t *testing.T) {
	t.Run("delivers to matching handler", func(t *testing.T) {
		bus := NewInMemoryEventBus(zap.NewNop())
		handler := &recordingHandler{types: []string{"client.created"}}
		bus.Subscribe(handler)

		err := bus.Publish(context.Background(), newEvent("client.created"))
		require.NoError(t, err)
		require.Len(t, handler.received, 1)
		assert.Equal(t, "client.created", handler.received[0].EventType())
	})

	t.Run("skips non-matching handler", func(t *testing.T) {
		bus := NewInMemoryEventBus(zap.NewNop())
		handler := &recordingHandler{types: []string{"client.created"}}
		bus.Subscribe(handler)

		err := bus.Publish(context.Background(), newEvent("quote.created"))
		require.NoError(t, err)
		assert.Empty(t, handler.received)
	})

	t.Run("handler with no declared types receives everything", func(t *testing.T) {
		bus := NewInMemoryEventBus(zap.NewNop())
		handler := &recordingHandler{}
		bus.Subscribe(handler)

		require.NoError(t, bus.Publish(context.Background(), newEvent("client.created")))
		require.NoError(t, bus.Publish(context.Background(), newEvent("quote.created")))
		assert.Len(t, handler.received, 2)
	})

	t.Run("handler failure does not stop other handlers", func(t *testing.T) {
		bus := NewInMemoryEventBus(zap.NewNop())
		failing := &recordingHandler{types: []string{"client.created"}, err: errors.New("boom")}
		healthy := &recordingHandler{types: []string{"client.created"}}
		bus.Subscribe(failing)
		bus.Subscribe(healthy)

		err := bus.Publish(context.Background(), newEvent("client.created"))
		require.NoError(t, err)
		assert.Len(t, healthy.received, 1)
	})

	t.Run("handler panic is contained", func(t *testing.T) {
		bus := NewInMemoryEventBus(zap.NewNop())
		panicking := &recordingHandler{types: []string{"client.created"}, panics: true}
		healthy := &recordingHandler{types: []string{"client.created"}}
		bus.Subscribe(panicking)
		bus.Subscribe(healthy)

		assert.NotPanics(t, func() {
			_ = bus.Publish(context.Background(), newEvent("client.created"))
		})
		assert.Len(t, healthy.received, 1)
	})
}

func TestInMemoryEventBus_PublishAll(t *testing.T) {
	bus := NewInMemoryEventBus(zap.NewNop())
	handler := &recordingHandler{}
	bus.Subscribe(handler)

	events := []shared.DomainEvent{
		newEvent("client.created"),
		newEvent("client.updated"),
		newEvent("client.archived"),
	}
	require.NoError(t, bus.PublishAll(context.Background(), events))

	require.Len(t, handler.received, 3)
	assert.Equal(t, "client.created", handler.received[0].EventType())
	assert.Equal(t, "client.archived", handler.received[2].EventType())
}
