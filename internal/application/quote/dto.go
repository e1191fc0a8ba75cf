package quote

import (
	"time"

	"github.com/bizdesk/backend/internal/domain/quote"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// LineItemRequest is one priced service on a submitted quote. Values are
// copied as given; catalog entries are a UI convenience, not a reference.
type LineItemRequest struct {
	ServiceName string          `json:"service_name" binding:"required,min=1,max=200"`
	Description string          `json:"description" binding:"max=2000"`
	Amount      decimal.Decimal `json:"amount" binding:"required"`
}

// CreateQuoteRequest represents the request to draft a quote. The client
// is referenced by id; totals are recomputed server-side and any
// submitted totals are ignored.
type CreateQuoteRequest struct {
	ClientID    uuid.UUID         `json:"client_id" binding:"required"`
	QuoteDate   time.Time         `json:"quote_date"`
	HandlerID   uuid.UUID         `json:"handler_id"`
	HandlerName string            `json:"handler_name" binding:"max=200"`
	LineItems   []LineItemRequest `json:"line_items" binding:"required,min=1,dive"`
	VATRate     decimal.Decimal   `json:"vat_rate"`
}

// UpdateQuoteRequest is a full replace of a quote's mutable fields.
// Only drafted quotes can change; totals are recomputed.
type UpdateQuoteRequest struct {
	Status    string            `json:"status" binding:"required,oneof=drafted accepted rejected"`
	LineItems []LineItemRequest `json:"line_items" binding:"required,min=1,dive"`
	VATRate   decimal.Decimal   `json:"vat_rate"`
}

// ListQuotesRequest represents list query parameters
type ListQuotesRequest struct {
	Page          int    `form:"page,default=1"`
	PageSize      int    `form:"pageSize,default=20"`
	Search        string `form:"search"`
	Criteria      string `form:"criteria"`
	Value         string `form:"value"`
	DeletionState string `form:"deletionState" binding:"omitempty,oneof=active inactive unknown"`
}

// LineItemResponse represents a quote line item in responses
type LineItemResponse struct {
	ID          uuid.UUID       `json:"id"`
	Position    int             `json:"position"`
	ServiceName string          `json:"service_name"`
	Description string          `json:"description"`
	Amount      decimal.Decimal `json:"amount"`
}

// QuoteResponse represents a quote in responses
type QuoteResponse struct {
	ID              uuid.UUID          `json:"id"`
	QuoteNumber     string             `json:"quote_number"`
	ClientID        uuid.UUID          `json:"client_id"`
	ClientName      string             `json:"client_name"`
	HandlerID       uuid.UUID          `json:"handler_id"`
	HandlerName     string             `json:"handler_name"`
	QuoteDate       time.Time          `json:"quote_date"`
	LineItems       []LineItemResponse `json:"line_items"`
	AmountBeforeVAT decimal.Decimal    `json:"amount_before_vat"`
	VATRate         decimal.Decimal    `json:"vat_rate"`
	VATAmount       decimal.Decimal    `json:"vat_amount"`
	TotalAmount     decimal.Decimal    `json:"total_amount"`
	Status          string             `json:"status"`
	DeletionState   string             `json:"deletion_state"`
	CreatedBy       uuid.UUID          `json:"created_by"`
	CreatorName     string             `json:"creator_name"`
	CreatedAt       time.Time          `json:"created_at"`
	UpdatedAt       time.Time          `json:"updated_at"`
}

// ClientSnapshot is the quoted client's current details, re-fetched for
// presentation alongside the stored name snapshot
type ClientSnapshot struct {
	ID           uuid.UUID `json:"id"`
	Code         string    `json:"code"`
	BusinessName string    `json:"business_name"`
	BusinessType string    `json:"business_type"`
	City         string    `json:"city"`
	State        string    `json:"state"`
	Country      string    `json:"country"`
}

// QuoteDetailResponse is a quote together with its current client
type QuoteDetailResponse struct {
	QuoteResponse
	Client ClientSnapshot `json:"client"`
}

// ToQuoteResponse converts a quote aggregate to a response DTO
func ToQuoteResponse(q *quote.Quote) QuoteResponse {
	items := make([]LineItemResponse, len(q.LineItems))
	for i, item := range q.LineItems {
		items[i] = LineItemResponse{
			ID:          item.ID,
			Position:    item.Position,
			ServiceName: item.ServiceName,
			Description: item.Description,
			Amount:      item.Amount,
		}
	}

	return QuoteResponse{
		ID:              q.ID,
		QuoteNumber:     q.QuoteNumber,
		ClientID:        q.Business.ClientID,
		ClientName:      q.Business.Name,
		HandlerID:       q.HandledBy.UserID,
		HandlerName:     q.HandledBy.Name,
		QuoteDate:       q.QuoteDate,
		LineItems:       items,
		AmountBeforeVAT: q.AmountBeforeVAT,
		VATRate:         q.VATRate,
		VATAmount:       q.VATAmount,
		TotalAmount:     q.TotalAmount,
		Status:          q.Status.String(),
		DeletionState:   q.DeletionState.String(),
		CreatedBy:       q.CreatedBy,
		CreatorName:     q.CreatorName,
		CreatedAt:       q.CreatedAt,
		UpdatedAt:       q.UpdatedAt,
	}
}
