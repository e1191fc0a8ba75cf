package persistence

import (
	"context"

	"github.com/bizdesk/backend/internal/domain/sequence"
	"gorm.io/gorm"
)

// GormSequenceAllocator implements sequence.Allocator on a counters table.
// The increment-and-fetch runs as a single upsert so two racing callers can
// never be handed the same number; the row is created on first use.
type GormSequenceAllocator struct {
	db *gorm.DB
}

// NewGormSequenceAllocator creates a new GormSequenceAllocator
func NewGormSequenceAllocator(db *gorm.DB) *GormSequenceAllocator {
	return &GormSequenceAllocator{db: db}
}

// Next allocates and returns the next value for the named sequence
func (r *GormSequenceAllocator) Next(ctx context.Context, name string) (int64, error) {
	var value int64
	err := r.db.WithContext(ctx).Raw(
		`INSERT INTO counters (name, value) VALUES (?, 1)
		 ON CONFLICT (name) DO UPDATE SET value = counters.value + 1
		 RETURNING value`,
		name,
	).Scan(&value).Error
	if err != nil {
		return 0, err
	}
	return value, nil
}

var _ sequence.Allocator = (*GormSequenceAllocator)(nil)
