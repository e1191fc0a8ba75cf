package persistence

import (
	"context"
	"errors"
	"strings"

	"github.com/bizdesk/backend/internal/domain/client"
	"github.com/bizdesk/backend/internal/domain/shared"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GormClientRepository implements client.Repository using GORM
type GormClientRepository struct {
	db *gorm.DB
}

// NewGormClientRepository creates a new GormClientRepository
func NewGormClientRepository(db *gorm.DB) *GormClientRepository {
	return &GormClientRepository{db: db}
}

// FindByID finds a client by its ID
func (r *GormClientRepository) FindByID(ctx context.Context, id uuid.UUID) (*client.Client, error) {
	var c client.Client
	if err := r.db.WithContext(ctx).First(&c, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &c, nil
}

// FindAll finds all clients matching the criteria
func (r *GormClientRepository) FindAll(ctx context.Context, criteria shared.Criteria) ([]client.Client, error) {
	query, err := applyCriteria(r.db.WithContext(ctx).Model(&client.Client{}), criteria, clientFields)
	if err != nil {
		return nil, err
	}

	var clients []client.Client
	if err := query.Find(&clients).Error; err != nil {
		return nil, err
	}
	return clients, nil
}

// Count counts clients matching the criteria, ignoring pagination
func (r *GormClientRepository) Count(ctx context.Context, criteria shared.Criteria) (int64, error) {
	query, err := applyPredicates(r.db.WithContext(ctx).Model(&client.Client{}), criteria, clientFields)
	if err != nil {
		return 0, err
	}

	var count int64
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// SearchByName finds active clients whose business name contains the query
func (r *GormClientRepository) SearchByName(ctx context.Context, query string, limit int) ([]client.NameMatch, error) {
	if strings.TrimSpace(query) == "" {
		return []client.NameMatch{}, nil
	}

	var matches []client.NameMatch
	err := r.db.WithContext(ctx).
		Model(&client.Client{}).
		Select("id, business_name AS name").
		Where("business_name ILIKE ?", "%"+query+"%").
		Where("deletion_state = ?", shared.DeletionStateActive).
		Order("business_name ASC").
		Limit(limit).
		Find(&matches).Error
	if err != nil {
		return nil, err
	}
	return matches, nil
}

// Save creates or updates a client
func (r *GormClientRepository) Save(ctx context.Context, c *client.Client) error {
	return r.db.WithContext(ctx).Save(c).Error
}

// ExistsByCode checks if a client with the given code exists
func (r *GormClientRepository) ExistsByCode(ctx context.Context, code string) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&client.Client{}).
		Where("code = ?", strings.ToUpper(code)).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

var _ client.Repository = (*GormClientRepository)(nil)

// GormClientHistoryRepository implements client.HistoryRepository using GORM
type GormClientHistoryRepository struct {
	db *gorm.DB
}

// NewGormClientHistoryRepository creates a new GormClientHistoryRepository
func NewGormClientHistoryRepository(db *gorm.DB) *GormClientHistoryRepository {
	return &GormClientHistoryRepository{db: db}
}

// Save appends a history record
func (r *GormClientHistoryRepository) Save(ctx context.Context, h *client.History) error {
	return r.db.WithContext(ctx).Create(h).Error
}

// FindByClientID returns a client's history, oldest first
func (r *GormClientHistoryRepository) FindByClientID(ctx context.Context, clientID uuid.UUID) ([]client.History, error) {
	var histories []client.History
	err := r.db.WithContext(ctx).
		Where("client_id = ?", clientID).
		Order("created_at ASC").
		Find(&histories).Error
	if err != nil {
		return nil, err
	}
	return histories, nil
}

var _ client.HistoryRepository = (*GormClientHistoryRepository)(nil)
