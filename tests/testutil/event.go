// Package testutil provides shared helpers for integration and handler tests.
package testutil

import (
	"context"
	"sync"

	"github.com/bizdesk/backend/internal/domain/shared"
)

// CapturingEventHandler records every event it receives so tests can
// assert on what a service published. It is safe for concurrent use.
type CapturingEventHandler struct {
	mu         sync.Mutex
	eventTypes []string
	captured   []shared.DomainEvent
	failWith   error
}

// NewCapturingEventHandler subscribes to the given event types. With no
// types it captures nothing; the bus only delivers subscribed types.
func NewCapturingEventHandler(eventTypes ...string) *CapturingEventHandler {
	return &CapturingEventHandler{eventTypes: eventTypes}
}

// EventTypes returns the event types this handler subscribes to.
func (h *CapturingEventHandler) EventTypes() []string {
	return h.eventTypes
}

// Handle records the event and returns the configured error, if any.
func (h *CapturingEventHandler) Handle(_ context.Context, event shared.DomainEvent) error {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.captured = append(h.captured, event)
	return h.failWith
}

// Captured returns a copy of all recorded events in delivery order.
func (h *CapturingEventHandler) Captured() []shared.DomainEvent {
	h.mu.Lock()
	defer h.mu.Unlock()
	out := make([]shared.DomainEvent, len(h.captured))
	copy(out, h.captured)
	return out
}

// CapturedTypes returns the event type of each recorded event in order.
func (h *CapturingEventHandler) CapturedTypes() []string {
	h.mu.Lock()
	defer h.mu.Unlock()
	types := make([]string, len(h.captured))
	for i, e := range h.captured {
		types[i] = e.EventType()
	}
	return types
}

// FailWith makes every subsequent Handle call return err.
func (h *CapturingEventHandler) FailWith(err error) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.failWith = err
}

// Reset discards all recorded events.
func (h *CapturingEventHandler) Reset() {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.captured = nil
}

var _ shared.EventHandler = (*CapturingEventHandler)(nil)
