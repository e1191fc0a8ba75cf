package catalog

import (
	"context"
	"testing"

	"github.com/bizdesk/backend/internal/domain/catalog"
	"github.com/bizdesk/backend/internal/domain/identity"
	"github.com/bizdesk/backend/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// =============================================================================
// Mock Repositories
// =============================================================================

// MockServiceRepository is a mock implementation of catalog.Repository
type MockServiceRepository struct {
	mock.Mock
}

func (m *MockServiceRepository) FindByID(ctx context.Context, id uuid.UUID) (*catalog.Service, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*catalog.Service), args.Error(1)
}

func (m *MockServiceRepository) FindAll(ctx context.Context, criteria shared.Criteria) ([]catalog.Service, error) {
	args := m.Called(ctx, criteria)
	return args.Get(0).([]catalog.Service), args.Error(1)
}

func (m *MockServiceRepository) Count(ctx context.Context, criteria shared.Criteria) (int64, error) {
	args := m.Called(ctx, criteria)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockServiceRepository) ExistsByName(ctx context.Context, name string) (bool, error) {
	args := m.Called(ctx, name)
	return args.Bool(0), args.Error(1)
}

func (m *MockServiceRepository) Save(ctx context.Context, s *catalog.Service) error {
	args := m.Called(ctx, s)
	return args.Error(0)
}

func caller() identity.Caller {
	return identity.Caller{UserID: uuid.New(), Role: identity.RoleUser, Name: "Plain User"}
}

func mustService(t *testing.T) *catalog.Service {
	t.Helper()
	svc, err := catalog.NewService("GST Filing", "Monthly filing", decimal.NewFromInt(100), uuid.New(), "Creator")
	require.NoError(t, err)
	return svc
}

// =============================================================================
// Create
// =============================================================================

func TestCatalogService_Create(t *testing.T) {
	t.Run("persists a new service", func(t *testing.T) {
		repo := new(MockServiceRepository)
		svc := NewCatalogService(repo, zap.NewNop())

		repo.On("ExistsByName", mock.Anything, "GST Filing").Return(false, nil)
		repo.On("Save", mock.Anything, mock.AnythingOfType("*catalog.Service")).Return(nil)

		resp, err := svc.Create(context.Background(), caller(), CreateServiceRequest{
			Name:   "GST Filing",
			Amount: decimal.NewFromInt(100),
		})

		require.NoError(t, err)
		assert.Equal(t, "GST Filing", resp.Name)
		assert.Equal(t, "active", resp.DeletionState)
		repo.AssertExpectations(t)
	})

	t.Run("rejects duplicate name before any write", func(t *testing.T) {
		repo := new(MockServiceRepository)
		svc := NewCatalogService(repo, zap.NewNop())

		repo.On("ExistsByName", mock.Anything, "GST Filing").Return(true, nil)

		_, err := svc.Create(context.Background(), caller(), CreateServiceRequest{
			Name:   "GST Filing",
			Amount: decimal.NewFromInt(100),
		})

		var domainErr *shared.DomainError
		assert.ErrorAs(t, err, &domainErr)
		assert.Equal(t, "ALREADY_EXISTS", domainErr.Code)
		repo.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
	})

	t.Run("rejects negative amount", func(t *testing.T) {
		repo := new(MockServiceRepository)
		svc := NewCatalogService(repo, zap.NewNop())

		repo.On("ExistsByName", mock.Anything, "GST Filing").Return(false, nil)

		_, err := svc.Create(context.Background(), caller(), CreateServiceRequest{
			Name:   "GST Filing",
			Amount: decimal.NewFromInt(-1),
		})

		var domainErr *shared.DomainError
		assert.ErrorAs(t, err, &domainErr)
		assert.Equal(t, "INVALID_AMOUNT", domainErr.Code)
	})
}

// =============================================================================
// Update
// =============================================================================

func TestCatalogService_Update(t *testing.T) {
	t.Run("rename into an existing name is rejected", func(t *testing.T) {
		repo := new(MockServiceRepository)
		svc := NewCatalogService(repo, zap.NewNop())
		existing := mustService(t)

		repo.On("FindByID", mock.Anything, existing.ID).Return(existing, nil)
		repo.On("ExistsByName", mock.Anything, "Audit").Return(true, nil)

		_, err := svc.Update(context.Background(), caller(), existing.ID, UpdateServiceRequest{
			Name:   "Audit",
			Amount: decimal.NewFromInt(200),
		})

		var domainErr *shared.DomainError
		assert.ErrorAs(t, err, &domainErr)
		assert.Equal(t, "ALREADY_EXISTS", domainErr.Code)
	})

	t.Run("keeping the same name skips the uniqueness check", func(t *testing.T) {
		repo := new(MockServiceRepository)
		svc := NewCatalogService(repo, zap.NewNop())
		existing := mustService(t)

		repo.On("FindByID", mock.Anything, existing.ID).Return(existing, nil)
		repo.On("Save", mock.Anything, existing).Return(nil)

		resp, err := svc.Update(context.Background(), caller(), existing.ID, UpdateServiceRequest{
			Name:        "GST Filing",
			Description: "Quarterly filing",
			Amount:      decimal.NewFromInt(250),
		})

		require.NoError(t, err)
		assert.Equal(t, "Quarterly filing", resp.Description)
		assert.True(t, decimal.NewFromInt(250).Equal(resp.Amount))
		repo.AssertNotCalled(t, "ExistsByName", mock.Anything, mock.Anything)
	})
}

// =============================================================================
// Archive
// =============================================================================

func TestCatalogService_Archive(t *testing.T) {
	repo := new(MockServiceRepository)
	svc := NewCatalogService(repo, zap.NewNop())
	existing := mustService(t)

	repo.On("FindByID", mock.Anything, existing.ID).Return(existing, nil)
	repo.On("Save", mock.Anything, existing).Return(nil)

	err := svc.Archive(context.Background(), caller(), existing.ID)

	assert.NoError(t, err)
	assert.Equal(t, shared.DeletionStateInactive, existing.DeletionState)

	// Archiving twice is rejected by the aggregate.
	err = svc.Archive(context.Background(), caller(), existing.ID)
	var domainErr *shared.DomainError
	assert.ErrorAs(t, err, &domainErr)
	assert.Equal(t, "INVALID_STATE", domainErr.Code)
}
