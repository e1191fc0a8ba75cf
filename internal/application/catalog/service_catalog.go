package catalog

import (
	"context"
	"strings"

	"github.com/bizdesk/backend/internal/domain/catalog"
	"github.com/bizdesk/backend/internal/domain/identity"
	"github.com/bizdesk/backend/internal/domain/shared"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// CatalogService manages the service catalog. Quote line items copy
// catalog values at creation time, so edits here never change quotes
// that were already drafted.
type CatalogService struct {
	serviceRepo catalog.Repository
	logger      *zap.Logger
}

// NewCatalogService creates a new catalog service
func NewCatalogService(serviceRepo catalog.Repository, logger *zap.Logger) *CatalogService {
	return &CatalogService{
		serviceRepo: serviceRepo,
		logger:      logger,
	}
}

// Create adds a catalog service. Duplicate names are rejected before
// any write; the unique index backstops races.
func (s *CatalogService) Create(ctx context.Context, caller identity.Caller, req CreateServiceRequest) (*ServiceResponse, error) {
	exists, err := s.serviceRepo.ExistsByName(ctx, req.Name)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, shared.NewDomainError("ALREADY_EXISTS", "A service with this name already exists")
	}

	svc, err := catalog.NewService(req.Name, req.Description, req.Amount, caller.UserID, caller.Name)
	if err != nil {
		return nil, err
	}

	if err := s.serviceRepo.Save(ctx, svc); err != nil {
		return nil, err
	}

	s.logger.Info("Catalog service created",
		zap.String("service_id", svc.ID.String()),
		zap.String("name", svc.Name))

	resp := ToServiceResponse(svc)
	return &resp, nil
}

// List returns a page of catalog services with the total count
func (s *CatalogService) List(ctx context.Context, req ListServicesRequest) ([]ServiceResponse, int64, error) {
	criteria := shared.NewCriteria()
	criteria.Page = req.Page
	criteria.PageSize = req.PageSize
	criteria.OrderBy = "name"
	criteria.OrderDir = "asc"
	if err := criteria.Validate(); err != nil {
		return nil, 0, err
	}

	criteria.Search = strings.TrimSpace(req.Search)

	state := req.DeletionState
	if state == "" {
		state = shared.DeletionStateActive.String()
	}
	criteria = criteria.Where("deletion_state", state)

	services, err := s.serviceRepo.FindAll(ctx, criteria)
	if err != nil {
		return nil, 0, err
	}
	total, err := s.serviceRepo.Count(ctx, criteria)
	if err != nil {
		return nil, 0, err
	}

	responses := make([]ServiceResponse, len(services))
	for i := range services {
		responses[i] = ToServiceResponse(&services[i])
	}
	return responses, total, nil
}

// Get returns a single catalog service
func (s *CatalogService) Get(ctx context.Context, id uuid.UUID) (*ServiceResponse, error) {
	svc, err := s.serviceRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	resp := ToServiceResponse(svc)
	return &resp, nil
}

// Update changes a catalog service's details. A rename into an existing
// name is rejected.
func (s *CatalogService) Update(ctx context.Context, caller identity.Caller, id uuid.UUID, req UpdateServiceRequest) (*ServiceResponse, error) {
	svc, err := s.serviceRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if !strings.EqualFold(svc.Name, req.Name) {
		exists, err := s.serviceRepo.ExistsByName(ctx, req.Name)
		if err != nil {
			return nil, err
		}
		if exists {
			return nil, shared.NewDomainError("ALREADY_EXISTS", "A service with this name already exists")
		}
	}

	if err := svc.Update(req.Name, req.Description, req.Amount); err != nil {
		return nil, err
	}

	if err := s.serviceRepo.Save(ctx, svc); err != nil {
		return nil, err
	}

	resp := ToServiceResponse(svc)
	return &resp, nil
}

// Archive soft-deletes a catalog service. Quotes that copied its values
// are unaffected.
func (s *CatalogService) Archive(ctx context.Context, caller identity.Caller, id uuid.UUID) error {
	svc, err := s.serviceRepo.FindByID(ctx, id)
	if err != nil {
		return err
	}

	if err := svc.Archive(); err != nil {
		return err
	}
	if err := s.serviceRepo.Save(ctx, svc); err != nil {
		return err
	}

	s.logger.Info("Catalog service archived",
		zap.String("service_id", svc.ID.String()),
		zap.String("actor_id", caller.UserID.String()))

	return nil
}
