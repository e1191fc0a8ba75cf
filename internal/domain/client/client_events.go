package client

import (
	"github.com/bizdesk/backend/internal/domain/shared"
	"github.com/google/uuid"
)

// Aggregate type constant
const AggregateTypeClient = "Client"

// Event type constants
const (
	EventTypeClientCreated  = "ClientCreated"
	EventTypeClientUpdated  = "ClientUpdated"
	EventTypeClientArchived = "ClientArchived"
	EventTypeClientRestored = "ClientRestored"
)

// ClientCreatedEvent is published when a new client is created
type ClientCreatedEvent struct {
	shared.BaseDomainEvent
	ClientID     uuid.UUID    `json:"client_id"`
	Code         string       `json:"code"`
	BusinessName string       `json:"business_name"`
	BusinessType BusinessType `json:"business_type"`
}

// NewClientCreatedEvent creates a new ClientCreatedEvent
func NewClientCreatedEvent(c *Client, actorID uuid.UUID) *ClientCreatedEvent {
	return &ClientCreatedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypeClientCreated, AggregateTypeClient, c.ID, actorID),
		ClientID:        c.ID,
		Code:            c.Code,
		BusinessName:    c.BusinessName,
		BusinessType:    c.BusinessType,
	}
}

// ClientUpdatedEvent is published when a client's details change
type ClientUpdatedEvent struct {
	shared.BaseDomainEvent
	ClientID     uuid.UUID `json:"client_id"`
	BusinessName string    `json:"business_name"`
}

// NewClientUpdatedEvent creates a new ClientUpdatedEvent
func NewClientUpdatedEvent(c *Client, actorID uuid.UUID) *ClientUpdatedEvent {
	return &ClientUpdatedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypeClientUpdated, AggregateTypeClient, c.ID, actorID),
		ClientID:        c.ID,
		BusinessName:    c.BusinessName,
	}
}

// ClientArchivedEvent is published when a client is soft-deleted
type ClientArchivedEvent struct {
	shared.BaseDomainEvent
	ClientID uuid.UUID `json:"client_id"`
	Code     string    `json:"code"`
}

// NewClientArchivedEvent creates a new ClientArchivedEvent
func NewClientArchivedEvent(c *Client, actorID uuid.UUID) *ClientArchivedEvent {
	return &ClientArchivedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypeClientArchived, AggregateTypeClient, c.ID, actorID),
		ClientID:        c.ID,
		Code:            c.Code,
	}
}

// ClientRestoredEvent is published when a soft-deleted client is restored
type ClientRestoredEvent struct {
	shared.BaseDomainEvent
	ClientID uuid.UUID `json:"client_id"`
	Code     string    `json:"code"`
}

// NewClientRestoredEvent creates a new ClientRestoredEvent
func NewClientRestoredEvent(c *Client, actorID uuid.UUID) *ClientRestoredEvent {
	return &ClientRestoredEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypeClientRestored, AggregateTypeClient, c.ID, actorID),
		ClientID:        c.ID,
		Code:            c.Code,
	}
}
