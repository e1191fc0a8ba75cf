package persistence

import (
	"context"
	"time"

	"github.com/bizdesk/backend/internal/domain/report"
	"github.com/bizdesk/backend/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// GormQuoteStatsRepository implements report.QuoteStatsRepository using GORM.
// All aggregations exclude soft-deleted quotes and emit sparse series: users
// or days without any quotes are simply absent from the result.
type GormQuoteStatsRepository struct {
	db *gorm.DB
}

// NewGormQuoteStatsRepository creates a new GormQuoteStatsRepository
func NewGormQuoteStatsRepository(db *gorm.DB) *GormQuoteStatsRepository {
	return &GormQuoteStatsRepository{db: db}
}

// UserQuoteStatus returns per-handler status counts, paginated by user.
// Quotes are grouped by the user handling them, not the user who entered
// them; the two differ when a quote is assigned on creation.
func (r *GormQuoteStatsRepository) UserQuoteStatus(ctx context.Context, page, pageSize int) ([]report.UserQuoteStatusRow, int64, error) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 {
		pageSize = 20
	}

	base := r.db.WithContext(ctx).Table("quotes").
		Where("deletion_state = ?", shared.DeletionStateActive)

	var total int64
	if err := base.Session(&gorm.Session{}).
		Distinct("handler_user_id").
		Count(&total).Error; err != nil {
		return nil, 0, err
	}

	type statusResult struct {
		UserID   uuid.UUID
		UserName string
		Total    int64
		Drafted  int64
		Accepted int64
		Rejected int64
	}
	var results []statusResult

	err := base.Session(&gorm.Session{}).
		Select(`
			handler_user_id AS user_id,
			MAX(handler_name) AS user_name,
			COUNT(*) AS total,
			COUNT(*) FILTER (WHERE status = 'drafted') AS drafted,
			COUNT(*) FILTER (WHERE status = 'accepted') AS accepted,
			COUNT(*) FILTER (WHERE status = 'rejected') AS rejected
		`).
		Group("handler_user_id").
		Order("total DESC, user_id ASC").
		Offset((page - 1) * pageSize).
		Limit(pageSize).
		Scan(&results).Error
	if err != nil {
		return nil, 0, err
	}

	rows := make([]report.UserQuoteStatusRow, len(results))
	for i, res := range results {
		rows[i] = report.UserQuoteStatusRow(res)
	}
	return rows, total, nil
}

// DailyQuoteTotals returns per-day counts and sums within the range
func (r *GormQuoteStatsRepository) DailyQuoteTotals(ctx context.Context, window report.MonthRange) ([]report.DailyQuoteRow, error) {
	type dailyResult struct {
		Day         time.Time
		Count       int64
		TotalAmount decimal.Decimal
	}
	var results []dailyResult

	err := r.db.WithContext(ctx).Table("quotes").
		Select(`
			DATE(quote_date) AS day,
			COUNT(*) AS count,
			COALESCE(SUM(total_amount), 0) AS total_amount
		`).
		Where("deletion_state = ?", shared.DeletionStateActive).
		Where("quote_date >= ? AND quote_date < ?", window.Start, window.End).
		Group("DATE(quote_date)").
		Order("day ASC").
		Scan(&results).Error
	if err != nil {
		return nil, err
	}

	rows := make([]report.DailyQuoteRow, len(results))
	for i, res := range results {
		rows[i] = report.DailyQuoteRow(res)
	}
	return rows, nil
}

// UserQuoteAmounts returns per-handler amount breakdowns within the range
func (r *GormQuoteStatsRepository) UserQuoteAmounts(ctx context.Context, window report.MonthRange) ([]report.UserQuoteAmountRow, error) {
	type amountResult struct {
		UserID         uuid.UUID
		UserName       string
		DraftedAmount  decimal.Decimal
		AcceptedAmount decimal.Decimal
		RejectedAmount decimal.Decimal
		TotalAmount    decimal.Decimal
	}
	var results []amountResult

	err := r.db.WithContext(ctx).Table("quotes").
		Select(`
			handler_user_id AS user_id,
			MAX(handler_name) AS user_name,
			COALESCE(SUM(total_amount) FILTER (WHERE status = 'drafted'), 0) AS drafted_amount,
			COALESCE(SUM(total_amount) FILTER (WHERE status = 'accepted'), 0) AS accepted_amount,
			COALESCE(SUM(total_amount) FILTER (WHERE status = 'rejected'), 0) AS rejected_amount,
			COALESCE(SUM(total_amount), 0) AS total_amount
		`).
		Where("deletion_state = ?", shared.DeletionStateActive).
		Where("quote_date >= ? AND quote_date < ?", window.Start, window.End).
		Group("handler_user_id").
		Order("total_amount DESC, user_id ASC").
		Scan(&results).Error
	if err != nil {
		return nil, err
	}

	rows := make([]report.UserQuoteAmountRow, len(results))
	for i, res := range results {
		rows[i] = report.UserQuoteAmountRow(res)
	}
	return rows, nil
}

var _ report.QuoteStatsRepository = (*GormQuoteStatsRepository)(nil)
