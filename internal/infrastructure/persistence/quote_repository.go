package persistence

import (
	"context"
	"errors"
	"time"

	"github.com/bizdesk/backend/internal/domain/quote"
	"github.com/bizdesk/backend/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// lineItemRow is the persistence shape of a quote line item. Line items are
// value objects inside the quote aggregate, so they get a row model here
// instead of GORM tags in the domain.
type lineItemRow struct {
	ID          uuid.UUID       `gorm:"type:uuid;primary_key"`
	QuoteID     uuid.UUID       `gorm:"type:uuid;not null;index"`
	Position    int             `gorm:"not null"`
	ServiceName string          `gorm:"type:varchar(200);not null"`
	Description string          `gorm:"type:text"`
	Amount      decimal.Decimal `gorm:"type:decimal(18,2);not null"`
	CreatedAt   time.Time       `gorm:"not null"`
}

// TableName returns the table name for GORM
func (lineItemRow) TableName() string {
	return "quote_line_items"
}

func (m *lineItemRow) toDomain() quote.LineItem {
	return quote.LineItem{
		ID:          m.ID,
		QuoteID:     m.QuoteID,
		Position:    m.Position,
		ServiceName: m.ServiceName,
		Description: m.Description,
		Amount:      m.Amount,
		CreatedAt:   m.CreatedAt,
	}
}

func lineItemRowFromDomain(item quote.LineItem) lineItemRow {
	return lineItemRow(item)
}

// GormQuoteRepository implements quote.Repository using GORM
type GormQuoteRepository struct {
	db *gorm.DB
}

// NewGormQuoteRepository creates a new GormQuoteRepository
func NewGormQuoteRepository(db *gorm.DB) *GormQuoteRepository {
	return &GormQuoteRepository{db: db}
}

// FindByID finds a quote with its line items
func (r *GormQuoteRepository) FindByID(ctx context.Context, id uuid.UUID) (*quote.Quote, error) {
	var q quote.Quote
	if err := r.db.WithContext(ctx).First(&q, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}

	items, err := r.loadItems(ctx, []uuid.UUID{q.ID})
	if err != nil {
		return nil, err
	}
	q.LineItems = items[q.ID]
	return &q, nil
}

// FindAll finds all quotes matching the criteria, with line items loaded
func (r *GormQuoteRepository) FindAll(ctx context.Context, criteria shared.Criteria) ([]quote.Quote, error) {
	query, err := applyCriteria(r.db.WithContext(ctx).Model(&quote.Quote{}), criteria, quoteFields)
	if err != nil {
		return nil, err
	}

	var quotes []quote.Quote
	if err := query.Find(&quotes).Error; err != nil {
		return nil, err
	}
	if len(quotes) == 0 {
		return quotes, nil
	}

	ids := make([]uuid.UUID, len(quotes))
	for i := range quotes {
		ids[i] = quotes[i].ID
	}
	items, err := r.loadItems(ctx, ids)
	if err != nil {
		return nil, err
	}
	for i := range quotes {
		quotes[i].LineItems = items[quotes[i].ID]
	}
	return quotes, nil
}

// Count counts quotes matching the criteria, ignoring pagination
func (r *GormQuoteRepository) Count(ctx context.Context, criteria shared.Criteria) (int64, error) {
	query, err := applyPredicates(r.db.WithContext(ctx).Model(&quote.Quote{}), criteria, quoteFields)
	if err != nil {
		return 0, err
	}

	var count int64
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// Save creates or updates a quote and replaces its line items
func (r *GormQuoteRepository) Save(ctx context.Context, q *quote.Quote) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Save(q).Error; err != nil {
			return err
		}
		if err := tx.Delete(&lineItemRow{}, "quote_id = ?", q.ID).Error; err != nil {
			return err
		}
		if len(q.LineItems) == 0 {
			return nil
		}
		rows := make([]lineItemRow, len(q.LineItems))
		for i, item := range q.LineItems {
			rows[i] = lineItemRowFromDomain(item)
		}
		return tx.Create(&rows).Error
	})
}

// loadItems fetches line items for a set of quotes, keyed by quote ID and
// ordered by position
func (r *GormQuoteRepository) loadItems(ctx context.Context, quoteIDs []uuid.UUID) (map[uuid.UUID][]quote.LineItem, error) {
	var rows []lineItemRow
	err := r.db.WithContext(ctx).
		Where("quote_id IN ?", quoteIDs).
		Order("position ASC").
		Find(&rows).Error
	if err != nil {
		return nil, err
	}

	items := make(map[uuid.UUID][]quote.LineItem, len(quoteIDs))
	for _, row := range rows {
		items[row.QuoteID] = append(items[row.QuoteID], row.toDomain())
	}
	return items, nil
}

var _ quote.Repository = (*GormQuoteRepository)(nil)
