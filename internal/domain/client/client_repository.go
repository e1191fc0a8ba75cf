package client

import (
	"context"

	"github.com/bizdesk/backend/internal/domain/shared"
	"github.com/google/uuid"
)

// NameMatch is a lightweight projection for autocomplete lookups
type NameMatch struct {
	ID   uuid.UUID `json:"id"`
	Name string    `json:"name"`
}

// Repository defines the interface for client persistence
type Repository interface {
	// FindByID finds a client by its ID
	FindByID(ctx context.Context, id uuid.UUID) (*Client, error)

	// FindAll finds all clients matching the criteria, newest first
	FindAll(ctx context.Context, criteria shared.Criteria) ([]Client, error)

	// Count counts clients matching the criteria, ignoring pagination
	Count(ctx context.Context, criteria shared.Criteria) (int64, error)

	// SearchByName finds clients whose business name contains the query,
	// case-insensitively, returning at most limit lightweight matches
	SearchByName(ctx context.Context, query string, limit int) ([]NameMatch, error)

	// Save creates or updates a client
	Save(ctx context.Context, c *Client) error

	// ExistsByCode checks if a client with the given code exists
	ExistsByCode(ctx context.Context, code string) (bool, error)
}

// HistoryRepository defines the interface for client history persistence.
// History rows are append-only: there is no update or delete.
type HistoryRepository interface {
	// Save appends a history record
	Save(ctx context.Context, h *History) error

	// FindByClientID returns a client's history, oldest first
	FindByClientID(ctx context.Context, clientID uuid.UUID) ([]History, error)
}
