package report

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// MonthRange is a half-open [Start, End) calendar month window
type MonthRange struct {
	Start time.Time
	End   time.Time
}

// MonthOffsetRange resolves a month offset relative to now: 0 is the
// current calendar month, -1 the previous one, and so on.
func MonthOffsetRange(offset int, now time.Time) MonthRange {
	start := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location()).AddDate(0, offset, 0)
	return MonthRange{Start: start, End: start.AddDate(0, 1, 0)}
}

// UserQuoteStatusRow counts a user's quotes by status
type UserQuoteStatusRow struct {
	UserID   uuid.UUID `json:"user_id"`
	UserName string    `json:"user_name"`
	Total    int64     `json:"total"`
	Drafted  int64     `json:"drafted"`
	Accepted int64     `json:"accepted"`
	Rejected int64     `json:"rejected"`
}

// DailyQuoteRow is one day's quote volume within a month. Days with no
// quotes are omitted: the series is sparse and charting fills the gaps.
type DailyQuoteRow struct {
	Day         time.Time       `json:"day"`
	Count       int64           `json:"count"`
	TotalAmount decimal.Decimal `json:"total_amount"`
}

// UserQuoteAmountRow sums a user's quote amounts by status for a month
type UserQuoteAmountRow struct {
	UserID         uuid.UUID       `json:"user_id"`
	UserName       string          `json:"user_name"`
	DraftedAmount  decimal.Decimal `json:"drafted_amount"`
	AcceptedAmount decimal.Decimal `json:"accepted_amount"`
	RejectedAmount decimal.Decimal `json:"rejected_amount"`
	TotalAmount    decimal.Decimal `json:"total_amount"`
}

// QuoteStatsRepository reads aggregated quote statistics. All queries
// exclude soft-deleted quotes, consistently with list operations. Users
// or days without quotes are omitted rather than reported as zero.
type QuoteStatsRepository interface {
	// UserQuoteStatus returns status counts grouped by handling user,
	// paginated, with the total number of handlers having at least one quote
	UserQuoteStatus(ctx context.Context, page, pageSize int) ([]UserQuoteStatusRow, int64, error)

	// DailyQuoteTotals returns per-day counts and sums within the range
	DailyQuoteTotals(ctx context.Context, window MonthRange) ([]DailyQuoteRow, error)

	// UserQuoteAmounts returns amount breakdowns grouped by handling user
	// within the range
	UserQuoteAmounts(ctx context.Context, window MonthRange) ([]UserQuoteAmountRow, error)
}
