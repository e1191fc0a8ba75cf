package client

import (
	"context"
	"strings"

	"github.com/bizdesk/backend/internal/domain/client"
	"github.com/bizdesk/backend/internal/domain/identity"
	"github.com/bizdesk/backend/internal/domain/sequence"
	"github.com/bizdesk/backend/internal/domain/shared"
	"github.com/bizdesk/backend/internal/infrastructure/telemetry"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// exportPageSize bounds memory while streaming the CSV export
const exportPageSize = 500

// ClientService handles client lifecycle operations. Every method takes
// the caller identity explicitly; nothing is read from ambient state.
type ClientService struct {
	clientRepo  client.Repository
	historyRepo client.HistoryRepository
	userRepo    identity.Repository
	allocator   sequence.Allocator
	eventBus    shared.EventBus
	logger      *zap.Logger
}

// NewClientService creates a new client service
func NewClientService(
	clientRepo client.Repository,
	historyRepo client.HistoryRepository,
	userRepo identity.Repository,
	allocator sequence.Allocator,
	eventBus shared.EventBus,
	logger *zap.Logger,
) *ClientService {
	return &ClientService{
		clientRepo:  clientRepo,
		historyRepo: historyRepo,
		userRepo:    userRepo,
		allocator:   allocator,
		eventBus:    eventBus,
		logger:      logger,
	}
}

// Create allocates the next client code and persists a new client.
// A failed save after allocation leaves a gap in the sequence; the
// number is never reused.
func (s *ClientService) Create(ctx context.Context, caller identity.Caller, req CreateClientRequest) (*ClientResponse, error) {
	ctx, span := telemetry.StartServiceSpan(ctx, "client", "create")
	defer span.End()

	n, err := s.allocator.Next(ctx, sequence.NameClient)
	if err != nil {
		telemetry.RecordError(span, err)
		return nil, err
	}
	code := sequence.FormatClientCode(n)

	c, err := client.NewClient(code, req.BusinessName, client.BusinessType(req.BusinessType), req.Address.toDomain(), caller.UserID, caller.Name)
	if err != nil {
		return nil, err
	}

	if err := s.clientRepo.Save(ctx, c); err != nil {
		telemetry.RecordError(span, err)
		return nil, err
	}

	telemetry.SetAttributes(span, "client.code", c.Code)

	s.publishEvents(ctx, c)

	s.logger.Info("Client created",
		zap.String("client_id", c.ID.String()),
		zap.String("code", c.Code))

	resp := ToClientResponse(c)
	return &resp, nil
}

// List returns a page of clients with the total count of the filtered
// set. Non-admin callers only see their own records.
func (s *ClientService) List(ctx context.Context, caller identity.Caller, req ListClientsRequest) ([]ClientResponse, int64, error) {
	criteria, err := s.buildCriteria(caller, req)
	if err != nil {
		return nil, 0, err
	}

	clients, err := s.clientRepo.FindAll(ctx, criteria)
	if err != nil {
		return nil, 0, err
	}
	total, err := s.clientRepo.Count(ctx, criteria)
	if err != nil {
		return nil, 0, err
	}

	responses := make([]ClientResponse, len(clients))
	for i := range clients {
		responses[i] = ToClientResponse(&clients[i])
	}
	return responses, total, nil
}

// Get returns a client with its audit trail, history entries joined
// with the acting users' display names
func (s *ClientService) Get(ctx context.Context, id uuid.UUID) (*ClientDetailResponse, error) {
	c, err := s.clientRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	history, err := s.historyRepo.FindByClientID(ctx, id)
	if err != nil {
		return nil, err
	}

	names, err := s.resolveUserNames(ctx, history)
	if err != nil {
		return nil, err
	}

	entries := make([]HistoryResponse, len(history))
	for i, h := range history {
		entries[i] = HistoryResponse{
			ID:        h.ID,
			Type:      h.Type,
			UserID:    h.UserID,
			UserName:  names[h.UserID],
			CreatedAt: h.CreatedAt,
		}
	}

	return &ClientDetailResponse{
		ClientResponse: ToClientResponse(c),
		History:        entries,
	}, nil
}

// SearchByName returns lightweight {id, name} matches for autocomplete
func (s *ClientService) SearchByName(ctx context.Context, query string, limit int) ([]client.NameMatch, error) {
	if strings.TrimSpace(query) == "" {
		return nil, shared.NewDomainError("INVALID_INPUT", "Search query cannot be empty")
	}
	if limit <= 0 {
		limit = 10
	}
	return s.clientRepo.SearchByName(ctx, query, limit)
}

// Update changes a client's mutable details. Only an admin or the
// creator may update.
func (s *ClientService) Update(ctx context.Context, caller identity.Caller, id uuid.UUID, req UpdateClientRequest) (*ClientResponse, error) {
	c, err := s.clientRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if !caller.IsAdmin() && !c.IsOwnedBy(caller.UserID) {
		return nil, shared.NewDomainError("FORBIDDEN", "Only an admin or the creator can update this client")
	}

	if err := c.Update(req.BusinessName, client.BusinessType(req.BusinessType), req.Address.toDomain(), caller.UserID); err != nil {
		return nil, err
	}

	if err := s.clientRepo.Save(ctx, c); err != nil {
		return nil, err
	}

	s.publishEvents(ctx, c)

	resp := ToClientResponse(c)
	return &resp, nil
}

// Archive soft-deletes a client. Only an admin or the creating user may
// archive; the row is never removed.
func (s *ClientService) Archive(ctx context.Context, caller identity.Caller, id uuid.UUID) error {
	c, err := s.clientRepo.FindByID(ctx, id)
	if err != nil {
		return err
	}

	if !caller.IsAdmin() && !c.IsOwnedBy(caller.UserID) {
		return shared.NewDomainError("FORBIDDEN", "Only an admin or the creator can archive this client")
	}

	if err := c.Archive(caller.UserID); err != nil {
		return err
	}
	if err := s.clientRepo.Save(ctx, c); err != nil {
		return err
	}

	s.publishEvents(ctx, c)

	s.logger.Info("Client archived",
		zap.String("client_id", c.ID.String()),
		zap.String("actor_id", caller.UserID.String()))

	return nil
}

// Restore reverses a soft-delete, subject to the same ownership rule
// as Archive
func (s *ClientService) Restore(ctx context.Context, caller identity.Caller, id uuid.UUID) error {
	c, err := s.clientRepo.FindByID(ctx, id)
	if err != nil {
		return err
	}

	if !caller.IsAdmin() && !c.IsOwnedBy(caller.UserID) {
		return shared.NewDomainError("FORBIDDEN", "Only an admin or the creator can restore this client")
	}

	if err := c.Restore(caller.UserID); err != nil {
		return err
	}
	if err := s.clientRepo.Save(ctx, c); err != nil {
		return err
	}

	s.publishEvents(ctx, c)

	return nil
}

// Export returns all clients visible to the caller as CSV rows.
// Records whose deletion state was never resolved are excluded.
func (s *ClientService) Export(ctx context.Context, caller identity.Caller) ([]ExportRow, error) {
	ctx, span := telemetry.StartServiceSpan(ctx, "client", "export")
	defer span.End()

	criteria := shared.NewCriteria()
	criteria.PageSize = exportPageSize
	if !caller.IsAdmin() {
		criteria = criteria.Where("created_by", caller.UserID)
	}

	var rows []ExportRow
	for {
		clients, err := s.clientRepo.FindAll(ctx, criteria)
		if err != nil {
			telemetry.RecordError(span, err)
			return nil, err
		}
		for i := range clients {
			if clients[i].DeletionState == shared.DeletionStateUnknown {
				continue
			}
			rows = append(rows, ExportRow{
				Code:         clients[i].Code,
				BusinessName: clients[i].BusinessName,
				BusinessType: clients[i].BusinessType.String(),
				CreatorName:  clients[i].CreatorName,
				CreatedAt:    clients[i].CreatedAt,
			})
		}
		if len(clients) < criteria.PageSize {
			return rows, nil
		}
		criteria.Page++
	}
}

func (s *ClientService) buildCriteria(caller identity.Caller, req ListClientsRequest) (shared.Criteria, error) {
	criteria := shared.NewCriteria()
	criteria.Page = req.Page
	criteria.PageSize = req.PageSize
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
		// Field names are validated against the repository allow-list.
		criteria = criteria.Where(req.Criteria, req.Value)
	}

	if !caller.IsAdmin() {
		criteria = criteria.Where("created_by", caller.UserID)
	}

	return criteria, nil
}

func (s *ClientService) resolveUserNames(ctx context.Context, history []client.History) (map[uuid.UUID]string, error) {
	seen := make(map[uuid.UUID]bool, len(history))
	ids := make([]uuid.UUID, 0, len(history))
	for _, h := range history {
		if !seen[h.UserID] {
			seen[h.UserID] = true
			ids = append(ids, h.UserID)
		}
	}

	users, err := s.userRepo.FindByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}

	names := make(map[uuid.UUID]string, len(users))
	for i := range users {
		names[users[i].ID] = users[i].FullName()
	}
	return names, nil
}

func (s *ClientService) publishEvents(ctx context.Context, c *client.Client) {
	if err := s.eventBus.PublishAll(ctx, c.GetDomainEvents()); err != nil {
		s.logger.Warn("Failed to publish client events", zap.Error(err))
	}
	c.ClearDomainEvents()
}
