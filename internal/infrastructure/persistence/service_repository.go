package persistence

import (
	"context"
	"errors"

	"github.com/bizdesk/backend/internal/domain/catalog"
	"github.com/bizdesk/backend/internal/domain/shared"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GormServiceRepository implements catalog.Repository using GORM
type GormServiceRepository struct {
	db *gorm.DB
}

// NewGormServiceRepository creates a new GormServiceRepository
func NewGormServiceRepository(db *gorm.DB) *GormServiceRepository {
	return &GormServiceRepository{db: db}
}

// FindByID finds a service by its ID
func (r *GormServiceRepository) FindByID(ctx context.Context, id uuid.UUID) (*catalog.Service, error) {
	var s catalog.Service
	if err := r.db.WithContext(ctx).First(&s, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &s, nil
}

// FindAll finds all services matching the criteria
func (r *GormServiceRepository) FindAll(ctx context.Context, criteria shared.Criteria) ([]catalog.Service, error) {
	query, err := applyCriteria(r.db.WithContext(ctx).Model(&catalog.Service{}), criteria, serviceFields)
	if err != nil {
		return nil, err
	}

	var services []catalog.Service
	if err := query.Find(&services).Error; err != nil {
		return nil, err
	}
	return services, nil
}

// Count counts services matching the criteria, ignoring pagination
func (r *GormServiceRepository) Count(ctx context.Context, criteria shared.Criteria) (int64, error) {
	query, err := applyPredicates(r.db.WithContext(ctx).Model(&catalog.Service{}), criteria, serviceFields)
	if err != nil {
		return 0, err
	}

	var count int64
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// ExistsByName checks if a service with the given name exists
func (r *GormServiceRepository) ExistsByName(ctx context.Context, name string) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&catalog.Service{}).
		Where("name = ?", name).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

// Save creates or updates a service
func (r *GormServiceRepository) Save(ctx context.Context, s *catalog.Service) error {
	return r.db.WithContext(ctx).Save(s).Error
}

var _ catalog.Repository = (*GormServiceRepository)(nil)
