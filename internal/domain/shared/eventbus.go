package shared

import "context"

// EventHandler handles domain events
type EventHandler interface {
	// Handle processes a domain event
	Handle(ctx context.Context, event DomainEvent) error
	// EventTypes returns the event types this handler is interested in.
	// An empty slice means the handler receives all events.
	EventTypes() []string
}

// EventBus publishes domain events to registered handlers
type EventBus interface {
	// Publish delivers an event to all interested handlers
	Publish(ctx context.Context, event DomainEvent) error
	// PublishAll delivers a batch of events in order
	PublishAll(ctx context.Context, events []DomainEvent) error
	// Subscribe registers a handler
	Subscribe(handler EventHandler)
}
