package report

import (
	"context"
	"time"

	"github.com/bizdesk/backend/internal/domain/identity"
	"github.com/bizdesk/backend/internal/domain/report"
	"github.com/bizdesk/backend/internal/domain/shared"
	"go.uber.org/zap"
)

// StatsService serves the admin quote statistics. Every method checks
// the caller's role even though the routes are also guarded by
// middleware, so a misconfigured route never leaks aggregates.
type StatsService struct {
	statsRepo report.QuoteStatsRepository
	logger    *zap.Logger
	now       func() time.Time
}

// NewStatsService creates a new stats service
func NewStatsService(statsRepo report.QuoteStatsRepository, logger *zap.Logger) *StatsService {
	return &StatsService{
		statsRepo: statsRepo,
		logger:    logger,
		now:       time.Now,
	}
}

// UserStatus returns quote counts by status grouped by handling user
func (s *StatsService) UserStatus(ctx context.Context, caller identity.Caller, req UserStatusRequest) ([]UserStatusResponse, int64, error) {
	if !caller.IsAdmin() {
		return nil, 0, shared.NewDomainError("FORBIDDEN", "Statistics are restricted to admins")
	}
	if req.Page < 1 || req.PageSize < 1 {
		return nil, 0, shared.NewDomainError("INVALID_INPUT", "Page and page size must be at least 1")
	}

	rows, total, err := s.statsRepo.UserQuoteStatus(ctx, req.Page, req.PageSize)
	if err != nil {
		return nil, 0, err
	}

	responses := make([]UserStatusResponse, len(rows))
	for i, row := range rows {
		responses[i] = toUserStatusResponse(row)
	}
	return responses, total, nil
}

// DailyTotals returns per-day quote counts and sums for the month
// selected by the offset. Days with no quotes are omitted.
func (s *StatsService) DailyTotals(ctx context.Context, caller identity.Caller, req MonthOffsetRequest) (*MonthlyReportResponse[DailyTotalResponse], error) {
	if !caller.IsAdmin() {
		return nil, shared.NewDomainError("FORBIDDEN", "Statistics are restricted to admins")
	}

	window := report.MonthOffsetRange(req.Offset, s.now())
	rows, err := s.statsRepo.DailyQuoteTotals(ctx, window)
	if err != nil {
		return nil, err
	}

	items := make([]DailyTotalResponse, len(rows))
	for i, row := range rows {
		items[i] = toDailyTotalResponse(row)
	}
	return &MonthlyReportResponse[DailyTotalResponse]{
		From:  window.Start,
		To:    window.End,
		Items: items,
	}, nil
}

// UserAmounts returns per-handler amount breakdowns for the month selected
// by the offset. Users with no quotes in the month are omitted.
func (s *StatsService) UserAmounts(ctx context.Context, caller identity.Caller, req MonthOffsetRequest) (*MonthlyReportResponse[UserAmountResponse], error) {
	if !caller.IsAdmin() {
		return nil, shared.NewDomainError("FORBIDDEN", "Statistics are restricted to admins")
	}

	window := report.MonthOffsetRange(req.Offset, s.now())
	rows, err := s.statsRepo.UserQuoteAmounts(ctx, window)
	if err != nil {
		return nil, err
	}

	items := make([]UserAmountResponse, len(rows))
	for i, row := range rows {
		items[i] = toUserAmountResponse(row)
	}
	return &MonthlyReportResponse[UserAmountResponse]{
		From:  window.Start,
		To:    window.End,
		Items: items,
	}, nil
}
