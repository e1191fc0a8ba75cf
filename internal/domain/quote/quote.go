package quote

import (
	"strings"
	"time"

	"github.com/bizdesk/backend/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Status represents the lifecycle status of a quote
type Status string

const (
	StatusDrafted  Status = "drafted"
	StatusAccepted Status = "accepted"
	StatusRejected Status = "rejected"
)

// IsValid checks if the status is a valid Status
func (s Status) IsValid() bool {
	switch s {
	case StatusDrafted, StatusAccepted, StatusRejected:
		return true
	}
	return false
}

// String returns the string representation of Status
func (s Status) String() string {
	return string(s)
}

// CanTransitionTo checks if the status can transition to the target status.
// Drafted is the only initial state; Accepted and Rejected are terminal.
func (s Status) CanTransitionTo(target Status) bool {
	switch s {
	case StatusDrafted:
		return target == StatusAccepted || target == StatusRejected
	case StatusAccepted, StatusRejected:
		return false
	}
	return false
}

// IsTerminal returns true once the quote outcome is settled
func (s Status) IsTerminal() bool {
	return s == StatusAccepted || s == StatusRejected
}

// LineItem is a priced service on a quote. Values are copied from the
// catalog at creation time, not referenced, so later catalog edits never
// change historical quotes.
type LineItem struct {
	ID          uuid.UUID
	QuoteID     uuid.UUID
	Position    int
	ServiceName string
	Description string
	Amount      decimal.Decimal
	CreatedAt   time.Time
}

// NewLineItem creates a new quote line item
func NewLineItem(serviceName, description string, amount decimal.Decimal) (LineItem, error) {
	if strings.TrimSpace(serviceName) == "" {
		return LineItem{}, shared.NewDomainError("INVALID_INPUT", "Service name cannot be empty")
	}
	if len(serviceName) > 200 {
		return LineItem{}, shared.NewDomainError("INVALID_INPUT", "Service name cannot exceed 200 characters")
	}
	if amount.IsNegative() {
		return LineItem{}, shared.NewDomainError("INVALID_AMOUNT", "Line item amount cannot be negative")
	}

	return LineItem{
		ID:          uuid.New(),
		ServiceName: serviceName,
		Description: description,
		Amount:      amount,
		CreatedAt:   time.Now(),
	}, nil
}

// BusinessRef is a weak reference to the quoted client: an identifier plus
// a name snapshot for display. No ownership or cascade semantics.
type BusinessRef struct {
	ClientID uuid.UUID `gorm:"type:uuid;not null;index"`
	Name     string    `gorm:"type:varchar(200);not null"`
}

// Handler identifies the user handling the quote (the "first response")
type Handler struct {
	UserID uuid.UUID `gorm:"type:uuid;not null;index"`
	Name   string    `gorm:"type:varchar(200)"`
}

// Quote represents a price quote aggregate root
type Quote struct {
	shared.OwnedAggregateRoot
	QuoteNumber     string               `gorm:"type:varchar(20);not null;uniqueIndex"`
	Business        BusinessRef          `gorm:"embedded;embeddedPrefix:business_"`
	HandledBy       Handler              `gorm:"embedded;embeddedPrefix:handler_"`
	QuoteDate       time.Time            `gorm:"not null;index"`
	LineItems       []LineItem           `gorm:"-"`
	AmountBeforeVAT decimal.Decimal      `gorm:"type:decimal(18,2);not null"`
	VATRate         decimal.Decimal      `gorm:"type:decimal(5,2);not null"`
	VATAmount       decimal.Decimal      `gorm:"type:decimal(18,2);not null"`
	TotalAmount     decimal.Decimal      `gorm:"type:decimal(18,2);not null"`
	Status          Status               `gorm:"type:varchar(10);not null;default:'drafted';index"`
	DeletionState   shared.DeletionState `gorm:"type:varchar(10);not null;default:'active';index"`
}

// TableName returns the table name for GORM
func (Quote) TableName() string {
	return "quotes"
}

// NewQuote creates a new drafted quote. Totals are computed from the line
// items and VAT rate; any caller-supplied totals are discarded upstream.
func NewQuote(quoteNumber string, business BusinessRef, handledBy Handler, quoteDate time.Time, items []LineItem, vatRate decimal.Decimal, createdBy uuid.UUID, creatorName string) (*Quote, error) {
	if quoteNumber == "" {
		return nil, shared.NewDomainError("INVALID_INPUT", "Quote number cannot be empty")
	}
	if business.ClientID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_INPUT", "Quote requires a client reference")
	}
	if handledBy.UserID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_INPUT", "Quote requires a handling user")
	}
	if quoteDate.IsZero() {
		return nil, shared.NewDomainError("INVALID_INPUT", "Quote date cannot be empty")
	}

	totals, err := Calculate(items, vatRate)
	if err != nil {
		return nil, err
	}

	q := &Quote{
		OwnedAggregateRoot: shared.NewOwnedAggregateRoot(createdBy, creatorName),
		QuoteNumber:        quoteNumber,
		Business:           business,
		HandledBy:          handledBy,
		QuoteDate:          quoteDate,
		AmountBeforeVAT:    totals.AmountBeforeVAT,
		VATRate:            vatRate,
		VATAmount:          totals.VATAmount,
		TotalAmount:        totals.TotalAmount,
		Status:             StatusDrafted,
		DeletionState:      shared.DeletionStateActive,
	}
	q.setItems(items)

	q.AddDomainEvent(NewQuoteCreatedEvent(q, createdBy))

	return q, nil
}

// Revise replaces the quote's line items and VAT rate, recomputing all
// totals. Only drafted quotes can be revised; Accepted and Rejected are
// terminal and immutable apart from soft-delete.
func (q *Quote) Revise(items []LineItem, vatRate decimal.Decimal, actorID uuid.UUID) error {
	if q.Status.IsTerminal() {
		return shared.NewDomainError("INVALID_STATE", "Cannot revise a quote that has been "+q.Status.String())
	}

	totals, err := Calculate(items, vatRate)
	if err != nil {
		return err
	}

	q.setItems(items)
	q.VATRate = vatRate
	q.AmountBeforeVAT = totals.AmountBeforeVAT
	q.VATAmount = totals.VATAmount
	q.TotalAmount = totals.TotalAmount
	q.UpdatedAt = time.Now()
	q.IncrementVersion()

	q.AddDomainEvent(NewQuoteRevisedEvent(q, actorID))

	return nil
}

// ChangeStatus moves the quote through its lifecycle. Transitions out of
// Accepted or Rejected are rejected.
func (q *Quote) ChangeStatus(target Status, actorID uuid.UUID) error {
	if !target.IsValid() {
		return shared.NewDomainError("INVALID_INPUT", "Invalid quote status")
	}
	if target == q.Status {
		return nil
	}
	if !q.Status.CanTransitionTo(target) {
		return shared.NewDomainError("INVALID_STATE", "Cannot change status from "+q.Status.String()+" to "+target.String())
	}

	oldStatus := q.Status
	q.Status = target
	q.UpdatedAt = time.Now()
	q.IncrementVersion()

	q.AddDomainEvent(NewQuoteStatusChangedEvent(q, oldStatus, target, actorID))

	return nil
}

// Archive soft-deletes the quote
func (q *Quote) Archive(actorID uuid.UUID) error {
	if q.DeletionState == shared.DeletionStateInactive {
		return shared.NewDomainError("INVALID_STATE", "Quote is already archived")
	}

	q.DeletionState = shared.DeletionStateInactive
	q.UpdatedAt = time.Now()
	q.IncrementVersion()

	q.AddDomainEvent(NewQuoteArchivedEvent(q, actorID))

	return nil
}

// IsActive returns true if the quote is visible in default listings
func (q *Quote) IsActive() bool {
	return q.DeletionState == shared.DeletionStateActive
}

// ItemCount returns the number of line items
func (q *Quote) ItemCount() int {
	return len(q.LineItems)
}

func (q *Quote) setItems(items []LineItem) {
	q.LineItems = make([]LineItem, len(items))
	copy(q.LineItems, items)
	for i := range q.LineItems {
		q.LineItems[i].QuoteID = q.ID
		q.LineItems[i].Position = i
	}
}
