package catalog

import (
	"context"
	"strings"
	"time"

	"github.com/bizdesk/backend/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Service is a catalog item with a default price. Quote line items copy
// these values at creation time; editing the catalog never touches
// historical quotes.
type Service struct {
	shared.OwnedAggregateRoot
	Name          string               `gorm:"type:varchar(200);not null;uniqueIndex"`
	Description   string               `gorm:"type:text"`
	Amount        decimal.Decimal      `gorm:"type:decimal(18,2);not null"`
	DeletionState shared.DeletionState `gorm:"type:varchar(10);not null;default:'active';index"`
}

// TableName returns the table name for GORM
func (Service) TableName() string {
	return "services"
}

// NewService creates a new catalog service
func NewService(name, description string, amount decimal.Decimal, createdBy uuid.UUID, creatorName string) (*Service, error) {
	if err := validateServiceName(name); err != nil {
		return nil, err
	}
	if amount.IsNegative() {
		return nil, shared.NewDomainError("INVALID_AMOUNT", "Service amount cannot be negative")
	}

	return &Service{
		OwnedAggregateRoot: shared.NewOwnedAggregateRoot(createdBy, creatorName),
		Name:               name,
		Description:        description,
		Amount:             amount,
		DeletionState:      shared.DeletionStateActive,
	}, nil
}

// Update changes the service's details
func (s *Service) Update(name, description string, amount decimal.Decimal) error {
	if err := validateServiceName(name); err != nil {
		return err
	}
	if amount.IsNegative() {
		return shared.NewDomainError("INVALID_AMOUNT", "Service amount cannot be negative")
	}

	s.Name = name
	s.Description = description
	s.Amount = amount
	s.UpdatedAt = time.Now()
	s.IncrementVersion()

	return nil
}

// Archive soft-deletes the service
func (s *Service) Archive() error {
	if s.DeletionState == shared.DeletionStateInactive {
		return shared.NewDomainError("INVALID_STATE", "Service is already archived")
	}

	s.DeletionState = shared.DeletionStateInactive
	s.UpdatedAt = time.Now()
	s.IncrementVersion()

	return nil
}

func validateServiceName(name string) error {
	if strings.TrimSpace(name) == "" {
		return shared.NewDomainError("INVALID_NAME", "Service name cannot be empty")
	}
	if len(name) > 200 {
		return shared.NewDomainError("INVALID_NAME", "Service name cannot exceed 200 characters")
	}
	return nil
}

// Repository defines the interface for service catalog persistence
type Repository interface {
	// FindByID finds a service by its ID
	FindByID(ctx context.Context, id uuid.UUID) (*Service, error)

	// FindAll finds all services matching the criteria
	FindAll(ctx context.Context, criteria shared.Criteria) ([]Service, error)

	// Count counts services matching the criteria, ignoring pagination
	Count(ctx context.Context, criteria shared.Criteria) (int64, error)

	// ExistsByName checks if a service with the given name exists
	ExistsByName(ctx context.Context, name string) (bool, error)

	// Save creates or updates a service
	Save(ctx context.Context, s *Service) error
}
