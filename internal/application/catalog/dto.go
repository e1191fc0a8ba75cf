package catalog

import (
	"time"

	"github.com/bizdesk/backend/internal/domain/catalog"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// CreateServiceRequest represents the request to add a catalog service
type CreateServiceRequest struct {
	Name        string          `json:"name" binding:"required,min=1,max=200"`
	Description string          `json:"description" binding:"max=2000"`
	Amount      decimal.Decimal `json:"amount" binding:"required"`
}

// UpdateServiceRequest represents the request to update a catalog service
type UpdateServiceRequest struct {
	Name        string          `json:"name" binding:"required,min=1,max=200"`
	Description string          `json:"description" binding:"max=2000"`
	Amount      decimal.Decimal `json:"amount" binding:"required"`
}

// ListServicesRequest represents list query parameters
type ListServicesRequest struct {
	Page          int    `form:"page,default=1"`
	PageSize      int    `form:"pageSize,default=20"`
	Search        string `form:"search"`
	DeletionState string `form:"deletionState" binding:"omitempty,oneof=active inactive unknown"`
}

// ServiceResponse represents a catalog service in responses
type ServiceResponse struct {
	ID            uuid.UUID       `json:"id"`
	Name          string          `json:"name"`
	Description   string          `json:"description"`
	Amount        decimal.Decimal `json:"amount"`
	DeletionState string          `json:"deletion_state"`
	CreatedBy     uuid.UUID       `json:"created_by"`
	CreatorName   string          `json:"creator_name"`
	CreatedAt     time.Time       `json:"created_at"`
	UpdatedAt     time.Time       `json:"updated_at"`
}

// ToServiceResponse converts a catalog service to a response DTO
func ToServiceResponse(s *catalog.Service) ServiceResponse {
	return ServiceResponse{
		ID:            s.ID,
		Name:          s.Name,
		Description:   s.Description,
		Amount:        s.Amount,
		DeletionState: s.DeletionState.String(),
		CreatedBy:     s.CreatedBy,
		CreatorName:   s.CreatorName,
		CreatedAt:     s.CreatedAt,
		UpdatedAt:     s.UpdatedAt,
	}
}
