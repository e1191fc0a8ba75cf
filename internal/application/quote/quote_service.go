package quote

import (
	"context"
	"strings"
	"time"

	"github.com/bizdesk/backend/internal/domain/client"
	"github.com/bizdesk/backend/internal/domain/identity"
	"github.com/bizdesk/backend/internal/domain/quote"
	"github.com/bizdesk/backend/internal/domain/sequence"
	"github.com/bizdesk/backend/internal/domain/shared"
	"github.com/bizdesk/backend/internal/infrastructure/telemetry"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// QuoteService handles quote lifecycle operations
type QuoteService struct {
	quoteRepo  quote.Repository
	clientRepo client.Repository
	allocator  sequence.Allocator
	eventBus   shared.EventBus
	logger     *zap.Logger
}

// NewQuoteService creates a new quote service
func NewQuoteService(
	quoteRepo quote.Repository,
	clientRepo client.Repository,
	allocator sequence.Allocator,
	eventBus shared.EventBus,
	logger *zap.Logger,
) *QuoteService {
	return &QuoteService{
		quoteRepo:  quoteRepo,
		clientRepo: clientRepo,
		allocator:  allocator,
		eventBus:   eventBus,
		logger:     logger,
	}
}

// Create drafts a new quote. The client reference is resolved first so a
// missing client fails before a sequence number is spent; the client's
// name is snapshotted onto the quote at this point and never updated.
func (s *QuoteService) Create(ctx context.Context, caller identity.Caller, req CreateQuoteRequest) (*QuoteResponse, error) {
	ctx, span := telemetry.StartServiceSpan(ctx, "quote", "create")
	defer span.End()

	c, err := s.clientRepo.FindByID(ctx, req.ClientID)
	if err != nil {
		telemetry.RecordError(span, err)
		return nil, err
	}

	items, err := toLineItems(req.LineItems)
	if err != nil {
		return nil, err
	}

	n, err := s.allocator.Next(ctx, sequence.NameQuote)
	if err != nil {
		return nil, err
	}

	handler := quote.Handler{UserID: req.HandlerID, Name: req.HandlerName}
	if handler.UserID == uuid.Nil {
		handler = quote.Handler{UserID: caller.UserID, Name: caller.Name}
	}

	quoteDate := req.QuoteDate
	if quoteDate.IsZero() {
		quoteDate = time.Now()
	}

	q, err := quote.NewQuote(
		sequence.FormatQuoteNumber(n),
		quote.BusinessRef{ClientID: c.ID, Name: c.BusinessName},
		handler,
		quoteDate,
		items,
		req.VATRate,
		caller.UserID,
		caller.Name,
	)
	if err != nil {
		return nil, err
	}

	if err := s.quoteRepo.Save(ctx, q); err != nil {
		telemetry.RecordError(span, err)
		return nil, err
	}

	telemetry.SetAttributes(span, "quote.number", q.QuoteNumber, "quote.total", q.TotalAmount.String())

	s.publishEvents(ctx, q)

	s.logger.Info("Quote created",
		zap.String("quote_id", q.ID.String()),
		zap.String("quote_number", q.QuoteNumber),
		zap.String("total_amount", q.TotalAmount.String()))

	resp := ToQuoteResponse(q)
	return &resp, nil
}

// List returns a page of quotes with the total count of the filtered
// set. Non-admin callers only see their own records.
func (s *QuoteService) List(ctx context.Context, caller identity.Caller, req ListQuotesRequest) ([]QuoteResponse, int64, error) {
	criteria, err := s.buildCriteria(caller, req)
	if err != nil {
		return nil, 0, err
	}

	quotes, err := s.quoteRepo.FindAll(ctx, criteria)
	if err != nil {
		return nil, 0, err
	}
	total, err := s.quoteRepo.Count(ctx, criteria)
	if err != nil {
		return nil, 0, err
	}

	responses := make([]QuoteResponse, len(quotes))
	for i := range quotes {
		responses[i] = ToQuoteResponse(&quotes[i])
	}
	return responses, total, nil
}

// Get returns a quote together with its client, re-fetched for current
// details rather than the stored snapshot
func (s *QuoteService) Get(ctx context.Context, id uuid.UUID) (*QuoteDetailResponse, error) {
	q, err := s.quoteRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	c, err := s.clientRepo.FindByID(ctx, q.Business.ClientID)
	if err != nil {
		return nil, err
	}

	return &QuoteDetailResponse{
		QuoteResponse: ToQuoteResponse(q),
		Client: ClientSnapshot{
			ID:           c.ID,
			Code:         c.Code,
			BusinessName: c.BusinessName,
			BusinessType: c.BusinessType.String(),
			City:         c.Address.City,
			State:        c.Address.State,
			Country:      c.Address.Country,
		},
	}, nil
}

// Update replaces a quote's mutable fields and recomputes totals.
// Accepted and rejected quotes are immutable apart from soft-delete, so
// any update against them fails. Only an admin or the creator may update.
func (s *QuoteService) Update(ctx context.Context, caller identity.Caller, id uuid.UUID, req UpdateQuoteRequest) (*QuoteResponse, error) {
	ctx, span := telemetry.StartServiceSpan(ctx, "quote", "update")
	defer span.End()

	q, err := s.quoteRepo.FindByID(ctx, id)
	if err != nil {
		telemetry.RecordError(span, err)
		return nil, err
	}

	if !caller.IsAdmin() && !q.IsOwnedBy(caller.UserID) {
		return nil, shared.NewDomainError("FORBIDDEN", "Only an admin or the creator can update this quote")
	}

	items, err := toLineItems(req.LineItems)
	if err != nil {
		return nil, err
	}

	if err := q.Revise(items, req.VATRate, caller.UserID); err != nil {
		return nil, err
	}
	if err := q.ChangeStatus(quote.Status(req.Status), caller.UserID); err != nil {
		return nil, err
	}

	if err := s.quoteRepo.Save(ctx, q); err != nil {
		return nil, err
	}

	s.publishEvents(ctx, q)

	resp := ToQuoteResponse(q)
	return &resp, nil
}

// Archive soft-deletes a quote. Only an admin or the creator may archive.
func (s *QuoteService) Archive(ctx context.Context, caller identity.Caller, id uuid.UUID) error {
	q, err := s.quoteRepo.FindByID(ctx, id)
	if err != nil {
		return err
	}

	if !caller.IsAdmin() && !q.IsOwnedBy(caller.UserID) {
		return shared.NewDomainError("FORBIDDEN", "Only an admin or the creator can archive this quote")
	}

	if err := q.Archive(caller.UserID); err != nil {
		return err
	}
	if err := s.quoteRepo.Save(ctx, q); err != nil {
		return err
	}

	s.publishEvents(ctx, q)

	s.logger.Info("Quote archived",
		zap.String("quote_id", q.ID.String()),
		zap.String("actor_id", caller.UserID.String()))

	return nil
}

func (s *QuoteService) buildCriteria(caller identity.Caller, req ListQuotesRequest) (shared.Criteria, error) {
	criteria := shared.NewCriteria()
	criteria.Page = req.Page
	criteria.PageSize = req.PageSize
	criteria.OrderBy = "quote_date"
	if err := criteria.Validate(); err != nil {
		return criteria, err
	}

	criteria.Search = strings.TrimSpace(req.Search)

	state := req.DeletionState
	if state == "" {
		state = shared.DeletionStateActive.String()
	}
	criteria = criteria.Where("deletion_state", state)

	if req.Criteria != "" {
		criteria = criteria.Where(req.Criteria, req.Value)
	}

	if !caller.IsAdmin() {
		criteria = criteria.Where("created_by", caller.UserID)
	}

	return criteria, nil
}

func toLineItems(reqs []LineItemRequest) ([]quote.LineItem, error) {
	items := make([]quote.LineItem, 0, len(reqs))
	for _, r := range reqs {
		item, err := quote.NewLineItem(r.ServiceName, r.Description, r.Amount)
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	return items, nil
}

func (s *QuoteService) publishEvents(ctx context.Context, q *quote.Quote) {
	if err := s.eventBus.PublishAll(ctx, q.GetDomainEvents()); err != nil {
		s.logger.Warn("Failed to publish quote events", zap.Error(err))
	}
	q.ClearDomainEvents()
}
