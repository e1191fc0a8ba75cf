package report

import (
	"time"

	"github.com/bizdesk/backend/internal/domain/report"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// UserStatusRequest represents pagination for the per-user status report
type UserStatusRequest struct {
	Page     int `form:"page,default=1"`
	PageSize int `form:"pageSize,default=20"`
}

// MonthOffsetRequest selects a reporting month relative to the current
// one: 0 is the current month, -1 the previous, and so on
type MonthOffsetRequest struct {
	Offset int `form:"offset,default=0"`
}

// UserStatusResponse is one user's quote counts by status
type UserStatusResponse struct {
	UserID   uuid.UUID `json:"user_id"`
	UserName string    `json:"user_name"`
	Total    int64     `json:"total"`
	Drafted  int64     `json:"drafted"`
	Accepted int64     `json:"accepted"`
	Rejected int64     `json:"rejected"`
}

// DailyTotalResponse is one day's quote count and amount. Days with no
// quotes are omitted from the series.
type DailyTotalResponse struct {
	Day         time.Time       `json:"day"`
	Count       int64           `json:"count"`
	TotalAmount decimal.Decimal `json:"total_amount"`
}

// UserAmountResponse is one user's quote amounts by status
type UserAmountResponse struct {
	UserID         uuid.UUID       `json:"user_id"`
	UserName       string          `json:"user_name"`
	DraftedAmount  decimal.Decimal `json:"drafted_amount"`
	AcceptedAmount decimal.Decimal `json:"accepted_amount"`
	RejectedAmount decimal.Decimal `json:"rejected_amount"`
	TotalAmount    decimal.Decimal `json:"total_amount"`
}

// MonthlyReportResponse wraps a month-scoped report with its window
type MonthlyReportResponse[T any] struct {
	From  time.Time `json:"from"`
	To    time.Time `json:"to"`
	Items []T       `json:"items"`
}

func toUserStatusResponse(row report.UserQuoteStatusRow) UserStatusResponse {
	return UserStatusResponse{
		UserID:   row.UserID,
		UserName: row.UserName,
		Total:    row.Total,
		Drafted:  row.Drafted,
		Accepted: row.Accepted,
		Rejected: row.Rejected,
	}
}

func toDailyTotalResponse(row report.DailyQuoteRow) DailyTotalResponse {
	return DailyTotalResponse{
		Day:         row.Day,
		Count:       row.Count,
		TotalAmount: row.TotalAmount,
	}
}

func toUserAmountResponse(row report.UserQuoteAmountRow) UserAmountResponse {
	return UserAmountResponse{
		UserID:         row.UserID,
		UserName:       row.UserName,
		DraftedAmount:  row.DraftedAmount,
		AcceptedAmount: row.AcceptedAmount,
		RejectedAmount: row.RejectedAmount,
		TotalAmount:    row.TotalAmount,
	}
}
