package quote

import (
	"github.com/bizdesk/backend/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Aggregate type constant
const AggregateTypeQuote = "Quote"

// Event type constants
const (
	EventTypeQuoteCreated       = "QuoteCreated"
	EventTypeQuoteRevised       = "QuoteRevised"
	EventTypeQuoteStatusChanged = "QuoteStatusChanged"
	EventTypeQuoteArchived      = "QuoteArchived"
)

// QuoteCreatedEvent is published when a new quote is drafted
type QuoteCreatedEvent struct {
	shared.BaseDomainEvent
	QuoteID     uuid.UUID       `json:"quote_id"`
	QuoteNumber string          `json:"quote_number"`
	ClientID    uuid.UUID       `json:"client_id"`
	TotalAmount decimal.Decimal `json:"total_amount"`
}

// NewQuoteCreatedEvent creates a new QuoteCreatedEvent
func NewQuoteCreatedEvent(q *Quote, actorID uuid.UUID) *QuoteCreatedEvent {
	return &QuoteCreatedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypeQuoteCreated, AggregateTypeQuote, q.ID, actorID),
		QuoteID:         q.ID,
		QuoteNumber:     q.QuoteNumber,
		ClientID:        q.Business.ClientID,
		TotalAmount:     q.TotalAmount,
	}
}

// QuoteRevisedEvent is published when a drafted quote's items or rate change
type QuoteRevisedEvent struct {
	shared.BaseDomainEvent
	QuoteID     uuid.UUID       `json:"quote_id"`
	QuoteNumber string          `json:"quote_number"`
	TotalAmount decimal.Decimal `json:"total_amount"`
}

// NewQuoteRevisedEvent creates a new QuoteRevisedEvent
func NewQuoteRevisedEvent(q *Quote, actorID uuid.UUID) *QuoteRevisedEvent {
	return &QuoteRevisedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypeQuoteRevised, AggregateTypeQuote, q.ID, actorID),
		QuoteID:         q.ID,
		QuoteNumber:     q.QuoteNumber,
		TotalAmount:     q.TotalAmount,
	}
}

// QuoteStatusChangedEvent is published when a quote reaches an outcome
type QuoteStatusChangedEvent struct {
	shared.BaseDomainEvent
	QuoteID     uuid.UUID `json:"quote_id"`
	QuoteNumber string    `json:"quote_number"`
	OldStatus   Status    `json:"old_status"`
	NewStatus   Status    `json:"new_status"`
}

// NewQuoteStatusChangedEvent creates a new QuoteStatusChangedEvent
func NewQuoteStatusChangedEvent(q *Quote, oldStatus, newStatus Status, actorID uuid.UUID) *QuoteStatusChangedEvent {
	return &QuoteStatusChangedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypeQuoteStatusChanged, AggregateTypeQuote, q.ID, actorID),
		QuoteID:         q.ID,
		QuoteNumber:     q.QuoteNumber,
		OldStatus:       oldStatus,
		NewStatus:       newStatus,
	}
}

// QuoteArchivedEvent is published when a quote is soft-deleted
type QuoteArchivedEvent struct {
	shared.BaseDomainEvent
	QuoteID     uuid.UUID `json:"quote_id"`
	QuoteNumber string    `json:"quote_number"`
}

// NewQuoteArchivedEvent creates a new QuoteArchivedEvent
func NewQuoteArchivedEvent(q *Quote, actorID uuid.UUID) *QuoteArchivedEvent {
	return &QuoteArchivedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypeQuoteArchived, AggregateTypeQuote, q.ID, actorID),
		QuoteID:         q.ID,
		QuoteNumber:     q.QuoteNumber,
	}
}
