package client

import (
	"time"

	"github.com/bizdesk/backend/internal/domain/client"
	"github.com/google/uuid"
)

// AddressRequest represents a client's business address in requests
type AddressRequest struct {
	Building string `json:"building" binding:"max=200"`
	Street   string `json:"street" binding:"max=200"`
	City     string `json:"city" binding:"max=100"`
	State    string `json:"state" binding:"max=100"`
	PinCode  string `json:"pin_code" binding:"max=20"`
	Country  string `json:"country" binding:"max=100"`
}

func (r AddressRequest) toDomain() client.Address {
	return client.Address{
		Building: r.Building,
		Street:   r.Street,
		City:     r.City,
		State:    r.State,
		PinCode:  r.PinCode,
		Country:  r.Country,
	}
}

// CreateClientRequest represents the request to create a client.
// The code is allocated server-side and never accepted from the caller.
type CreateClientRequest struct {
	BusinessName string         `json:"business_name" binding:"required,min=1,max=200"`
	BusinessType string         `json:"business_type" binding:"required,oneof=individual limited llp partnership limited_partnership"`
	Address      AddressRequest `json:"address"`
}

// UpdateClientRequest represents the request to update a client's
// mutable details. The code is immutable once assigned.
type UpdateClientRequest struct {
	BusinessName string         `json:"business_name" binding:"required,min=1,max=200"`
	BusinessType string         `json:"business_type" binding:"required,oneof=individual limited llp partnership limited_partnership"`
	Address      AddressRequest `json:"address"`
}

// ListClientsRequest represents list query parameters
type ListClientsRequest struct {
	Page          int    `form:"page,default=1"`
	PageSize      int    `form:"pageSize,default=20"`
	Search        string `form:"search"`
	Criteria      string `form:"criteria"`
	Value         string `form:"value"`
	DeletionState string `form:"deletionState" binding:"omitempty,oneof=active inactive unknown"`
}

// AddressResponse represents a client's business address in responses
type AddressResponse struct {
	Building string `json:"building"`
	Street   string `json:"street"`
	City     string `json:"city"`
	State    string `json:"state"`
	PinCode  string `json:"pin_code"`
	Country  string `json:"country"`
}

// ClientResponse represents a client in responses
type ClientResponse struct {
	ID            uuid.UUID       `json:"id"`
	Code          string          `json:"code"`
	BusinessName  string          `json:"business_name"`
	BusinessType  string          `json:"business_type"`
	Address       AddressResponse `json:"address"`
	DeletionState string          `json:"deletion_state"`
	CreatedBy     uuid.UUID       `json:"created_by"`
	CreatorName   string          `json:"creator_name"`
	CreatedAt     time.Time       `json:"created_at"`
	UpdatedAt     time.Time       `json:"updated_at"`
}

// HistoryResponse represents one audit entry on a client, joined with
// the acting user's display name
type HistoryResponse struct {
	ID        uuid.UUID `json:"id"`
	Type      string    `json:"type"`
	UserID    uuid.UUID `json:"user_id"`
	UserName  string    `json:"user_name"`
	CreatedAt time.Time `json:"created_at"`
}

// ClientDetailResponse is a client together with its full audit trail
type ClientDetailResponse struct {
	ClientResponse
	History []HistoryResponse `json:"history"`
}

// ExportRow is one line of the client CSV export
type ExportRow struct {
	Code         string
	BusinessName string
	BusinessType string
	CreatorName  string
	CreatedAt    time.Time
}

// ToClientResponse converts a client aggregate to a response DTO
func ToClientResponse(c *client.Client) ClientResponse {
	return ClientResponse{
		ID:           c.ID,
		Code:         c.Code,
		BusinessName: c.BusinessName,
		BusinessType: c.BusinessType.String(),
		Address: AddressResponse{
			Building: c.Address.Building,
			Street:   c.Address.Street,
			City:     c.Address.City,
			State:    c.Address.State,
			PinCode:  c.Address.PinCode,
			Country:  c.Address.Country,
		},
		DeletionState: c.DeletionState.String(),
		CreatedBy:     c.CreatedBy,
		CreatorName:   c.CreatorName,
		CreatedAt:     c.CreatedAt,
		UpdatedAt:     c.UpdatedAt,
	}
}
