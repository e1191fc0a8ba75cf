package client

import (
	"github.com/bizdesk/backend/internal/domain/shared"
	"github.com/google/uuid"
)

// Well-known history action tags. The Type field is free-form so handlers
// recording new lifecycle actions do not require a schema change.
const (
	HistoryTypeCreated  = "created"
	HistoryTypeUpdated  = "updated"
	HistoryTypeArchived = "archived"
	HistoryTypeRestored = "restored"
)

// History is an append-only audit record attached to a client. Records are
// created alongside lifecycle events, owned by exactly one client, and
// never mutated or deleted independently.
type History struct {
	shared.BaseEntity
	ClientID uuid.UUID `gorm:"type:uuid;not null;index"`
	UserID   uuid.UUID `gorm:"type:uuid;not null"`
	Type     string    `gorm:"type:varchar(50);not null"`
}

// TableName returns the table name for GORM
func (History) TableName() string {
	return "client_histories"
}

// NewHistory creates a new history record for a client
func NewHistory(clientID, userID uuid.UUID, historyType string) (*History, error) {
	if clientID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_INPUT", "Client ID cannot be empty")
	}
	if userID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_INPUT", "User ID cannot be empty")
	}
	if historyType == "" {
		return nil, shared.NewDomainError("INVALID_INPUT", "History type cannot be empty")
	}

	return &History{
		BaseEntity: shared.NewBaseEntity(),
		ClientID:   clientID,
		UserID:     userID,
		Type:       historyType,
	}, nil
}
