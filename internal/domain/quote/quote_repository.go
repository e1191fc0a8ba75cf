package quote

import (
	"context"

	"github.com/bizdesk/backend/internal/domain/shared"
	"github.com/google/uuid"
)

// Repository defines the interface for quote persistence
type Repository interface {
	// FindByID finds a quote with its line items
	FindByID(ctx context.Context, id uuid.UUID) (*Quote, error)

	// FindAll finds all quotes matching the criteria, quote date descending.
	// Line items are loaded for each returned quote.
	FindAll(ctx context.Context, criteria shared.Criteria) ([]Quote, error)

	// Count counts quotes matching the criteria, ignoring pagination
	Count(ctx context.Context, criteria shared.Criteria) (int64, error)

	// Save creates or updates a quote and replaces its line items
	Save(ctx context.Context, q *Quote) error
}
